// Package screen defines what the router needs from a screen.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizzy/internal/ui/layout"
)

// Screen is one page of the program. View draws only the area between
// the header and the footer.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string
	Title() string
}

// KeyHintProvider is implemented by screens that list their keys in the
// footer.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider is implemented by screens that show a short status, such
// as the running score, on the right of the header.
type StatusProvider interface {
	Status() string
}
