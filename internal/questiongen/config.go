package questiongen

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Validators run in order on every generated set; the first failure
	// stops the pipeline.
	Validators []Validator

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxAttempts bounds how many times a set is requested when a
	// validator reports a retryable failure. Values below 1 mean 1.
	MaxAttempts int

	// MaxAvoid is the maximum number of Input.Avoid statements included
	// in the prompt.
	MaxAvoid int
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&DedupValidator{},
		},
		MaxTokens:   4096,
		Temperature: 0.8,
		MaxAttempts: 2,
		MaxAvoid:    20,
	}
}
