package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizzy/internal/quiz"
)

// Palette, named by role.
var (
	Brand     = lipgloss.Color("#a27ae8") // lavender
	Info      = lipgloss.Color("#14B8A6") // teal
	Highlight = lipgloss.Color("#FCCB7E") // peach
	Good      = lipgloss.Color("#50b97e")
	Bad       = lipgloss.Color("#ff7043")
	Fg        = lipgloss.Color("#F8FAFC")
	Muted     = lipgloss.Color("#94A3B8")
	Surface   = lipgloss.Color("#1E293B")
	Outline   = lipgloss.Color("#334155")
)

// Feedback returns the mood color for a machine state. Every answering
// sub-state and the checking step share one color.
func Feedback(s quiz.State) color.Color {
	switch {
	case s.Matches("answering"), s == quiz.Checking:
		return Highlight
	case s == quiz.Correct:
		return Good
	case s == quiz.Incorrect:
		return Bad
	default:
		return Brand
	}
}

// Text styles.
var (
	Title   = lipgloss.NewStyle().Bold(true).Foreground(Brand).Align(lipgloss.Center)
	Hint    = lipgloss.NewStyle().Foreground(Muted).Italic(true)
	Warning = lipgloss.NewStyle().Foreground(Bad).Bold(true)
)

// Choice styles for the true/false picker.
var (
	Selected   = lipgloss.NewStyle().Foreground(Brand).Bold(true)
	Unselected = lipgloss.NewStyle().Foreground(Fg)
	Correct    = lipgloss.NewStyle().Foreground(Good).Bold(true)
	Incorrect  = lipgloss.NewStyle().Foreground(Bad).Bold(true)
)

var (
	ProgressFilled = lipgloss.NewStyle().Background(Info)
	ProgressEmpty  = lipgloss.NewStyle().Background(Outline)

	ButtonActive   = lipgloss.NewStyle().Background(Brand).Foreground(Fg).Bold(true).Padding(0, 2)
	ButtonInactive = lipgloss.NewStyle().Background(Surface).Foreground(Muted).Padding(0, 2)
)
