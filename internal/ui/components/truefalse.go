package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizzy/internal/ui/theme"
)

// TrueFalse is a two-option radio selector. Nothing is selected until the
// user picks.
type TrueFalse struct {
	picked *bool

	// Reveal, when set, colors the expected option green and a wrong pick
	// red. Picking is disabled while revealed.
	Reveal   bool
	Expected bool
}

// Pick selects v.
func (t *TrueFalse) Pick(v bool) {
	if t.Reveal {
		return
	}
	t.picked = &v
}

// Toggle flips the selection, starting from true when nothing is picked.
func (t *TrueFalse) Toggle() {
	if t.picked == nil {
		t.Pick(true)
		return
	}
	t.Pick(!*t.picked)
}

// Reset clears the selection and the reveal.
func (t *TrueFalse) Reset() {
	t.picked = nil
	t.Reveal = false
}

// Picked returns the selection, or nil when nothing is picked.
func (t TrueFalse) Picked() *bool {
	if t.picked == nil {
		return nil
	}
	v := *t.picked
	return &v
}

// View renders "(•) True   ( ) False".
func (t TrueFalse) View() string {
	return t.option(true, "True") + "   " + t.option(false, "False")
}

func (t TrueFalse) option(v bool, label string) string {
	selected := t.picked != nil && *t.picked == v
	mark := "( ) "
	if selected {
		mark = "(•) "
	}

	style := theme.Unselected
	switch {
	case t.Reveal && v == t.Expected:
		style = theme.Correct
	case t.Reveal && selected:
		style = theme.Incorrect
	case t.Reveal:
		style = lipgloss.NewStyle().Foreground(theme.Muted)
	case selected:
		style = theme.Selected
	}
	return style.Render(mark + label)
}
