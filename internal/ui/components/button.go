package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizzy/internal/ui/theme"
)

// Button is a styled action label. Only the active button reacts to
// enter; the owning screen decides which one that is.
type Button struct {
	Label  string
	Active bool
}

// NewButton creates a new button.
func NewButton(label string, active bool) Button {
	return Button{Label: label, Active: active}
}

// View renders the button.
func (b Button) View() string {
	label := " ▸ " + b.Label + " "
	if b.Active {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render("   " + b.Label + " ")
}

// ButtonRow renders buttons side by side separated by two spaces.
func ButtonRow(buttons ...Button) string {
	views := make([]string, 0, 2*len(buttons))
	for i, b := range buttons {
		if i > 0 {
			views = append(views, "  ")
		}
		views = append(views, b.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, views...)
}
