package quiz

import (
	"charm.land/bubbles/v2/key"

	machine "github.com/abhisek/quizzy/internal/quiz"
)

type keyMap struct {
	True   key.Binding
	False  key.Binding
	Toggle key.Binding
	Enter  key.Binding
	Next   key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		True:   key.NewBinding(key.WithKeys("t", "y"), key.WithHelp("t", "True")),
		False:  key.NewBinding(key.WithKeys("f", "n"), key.WithHelp("f", "False")),
		Toggle: key.NewBinding(key.WithKeys("left", "right", "up", "down", "tab"), key.WithHelp("←→", "Toggle")),
		Enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Start")),
		Next:   key.NewBinding(key.WithKeys("space"), key.WithHelp("Space", "Next")),
		Quit:   key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("Esc", "Quit")),
	}
}

// actionLabel is the label of the one active button for a state.
func actionLabel(s machine.State) string {
	switch {
	case s == machine.Uninitialized:
		return "START"
	case s.Matches("answering"):
		return "ANSWER"
	case s.IsResult():
		return "NEXT"
	default:
		return ""
	}
}

// syncTo enables the bindings that act in state s.
func (k *keyMap) syncTo(s machine.State) {
	answering := s == machine.Idle
	k.True.SetEnabled(answering)
	k.False.SetEnabled(answering)
	k.Toggle.SetEnabled(answering)
	k.Next.SetEnabled(s.IsResult())

	k.Enter.SetEnabled(true)
	switch {
	case s == machine.Uninitialized:
		k.Enter.SetHelp("Enter", "Start")
	case answering:
		k.Enter.SetHelp("Enter", "Answer")
	case s.IsResult():
		k.Enter.SetHelp("Enter", "Next")
	case s.IsFinal():
		k.Enter.SetHelp("Enter", "Summary")
	default:
		k.Enter.SetEnabled(false)
	}
}

func (k keyMap) bindings() []key.Binding {
	return []key.Binding{k.True, k.False, k.Toggle, k.Enter, k.Next, k.Quit}
}
