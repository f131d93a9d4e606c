// Package router keeps the stack of screens. The quiz screen sits at the
// bottom; the summary is pushed on top when a round ends and a restart
// resets the stack to a fresh quiz.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizzy/internal/screen"
)

// PushScreenMsg puts Screen on top of the stack.
type PushScreenMsg struct {
	Screen screen.Screen
}

// ResetScreenMsg drops the whole stack and starts over from Screen.
type ResetScreenMsg struct {
	Screen screen.Screen
}

type Router struct {
	stack []screen.Screen
}

func New(initial screen.Screen) *Router {
	return &Router{stack: []screen.Screen{initial}}
}

// Active returns the top screen, or nil for an empty router.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

func (r *Router) Depth() int {
	return len(r.stack)
}

// Update applies navigation messages and forwards everything else to the
// active screen. Screens entering the stack get their Init command run.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		r.stack = append(r.stack, msg.Screen)
		return msg.Screen.Init()
	case ResetScreenMsg:
		r.stack = []screen.Screen{msg.Screen}
		return msg.Screen.Init()
	}

	active := r.Active()
	if active == nil {
		return nil
	}
	next, cmd := active.Update(msg)
	r.stack[len(r.stack)-1] = next
	return cmd
}

func (r *Router) View(width, height int) string {
	if active := r.Active(); active != nil {
		return active.View(width, height)
	}
	return ""
}
