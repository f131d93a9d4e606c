package app

import (
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/quizzy/internal/questions"
	"github.com/abhisek/quizzy/internal/quiz"
	"github.com/abhisek/quizzy/internal/router"
	"github.com/abhisek/quizzy/internal/screen"
	quizscreen "github.com/abhisek/quizzy/internal/screens/quiz"
	"github.com/abhisek/quizzy/internal/ui/layout"
)

// Options configures the interactive program.
type Options struct {
	// Provider supplies the questions. Required.
	Provider questions.Provider

	// NewSession creates the session for each attempt. Defaults to quiz.New.
	NewSession func() *quiz.Session

	// Logger receives diagnostics. The terminal is owned by the UI, so this
	// should write to a file or be a no-op logger.
	Logger *zap.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel with the quiz screen.
func newAppModel(opts Options) AppModel {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return AppModel{
		router: router.New(quizscreen.New(opts.Provider, opts.NewSession, log)),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render composes the full frame for the current terminal size.
func (m AppModel) render() string {
	active := m.router.Active()
	frame := layout.Frame{Hints: m.footerHints(active)}
	if active != nil {
		frame.Title = active.Title()
	}
	if sp, ok := active.(screen.StatusProvider); ok {
		frame.Status = sp.Status()
	}
	return frame.Render(m.width, m.height, m.router.View)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	var hints []layout.KeyHint
	if kp, ok := active.(screen.KeyHintProvider); ok {
		hints = append(hints, kp.KeyHints()...)
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Exit"})
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(opts Options) error {
	if opts.Provider == nil {
		return errors.New("app: a question provider is required")
	}

	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
