package questions

// Builtin returns the demo set used when no question file is configured.
func Builtin() *Set {
	return &Set{
		Title: "Warm-up",
		Questions: []Question{
			{Text: "The Earth orbits the Sun.", Answer: true},
			{Text: "Spiders are insects.", Answer: false, Explanation: "Spiders are arachnids: they have eight legs and two body segments."},
			{Text: "Water boils at 100 degrees Celsius at sea level.", Answer: true},
			{Text: "The Great Wall of China is visible from the Moon with the naked eye.", Answer: false},
			{Text: "Go was first released publicly in 2009.", Answer: true},
		},
	}
}
