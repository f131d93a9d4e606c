// Package quiz is the interactive screen that plays one quiz session.
package quiz

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/quizzy/internal/questions"
	machine "github.com/abhisek/quizzy/internal/quiz"
	"github.com/abhisek/quizzy/internal/router"
	"github.com/abhisek/quizzy/internal/screen"
	"github.com/abhisek/quizzy/internal/screens/summary"
	"github.com/abhisek/quizzy/internal/ui/components"
	"github.com/abhisek/quizzy/internal/ui/layout"
)

// SessionFactory creates a fresh session for each attempt.
type SessionFactory func() *machine.Session

// QuizScreen implements screen.Screen for an active quiz.
type QuizScreen struct {
	session    *machine.Session
	provider   questions.Provider
	newSession SessionFactory
	log        *zap.Logger

	snap    machine.Snapshot
	choice  components.TrueFalse
	keys    keyMap
	loadErr string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)

// New creates a QuizScreen over provider with a session from newSession.
// A nil factory uses quiz.New with default options.
func New(provider questions.Provider, newSession SessionFactory, log *zap.Logger) *QuizScreen {
	if newSession == nil {
		newSession = func() *machine.Session { return machine.New() }
	}
	if log == nil {
		log = zap.NewNop()
	}

	s := &QuizScreen{
		provider:   provider,
		newSession: newSession,
		log:        log,
		keys:       newKeyMap(),
	}
	s.session = newSession()
	s.apply(s.session.Current())
	s.session.Subscribe(s.apply)
	return s
}

// Session returns the session this screen drives.
func (s *QuizScreen) Session() *machine.Session {
	return s.session
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	if set, ok := s.provider.(*questions.Set); ok && set.Title != "" {
		return set.Title
	}
	return "Quiz"
}

func (s *QuizScreen) Status() string {
	return fmt.Sprintf("✓ %d  ✗ %d", s.snap.Context.CorrectCount, s.snap.Context.IncorrectCount)
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	return layout.HintsFor(s.keys.bindings()...)
}

// apply receives every snapshot the session publishes.
func (s *QuizScreen) apply(snap machine.Snapshot) {
	prev := s.snap.State
	s.snap = snap
	s.keys.syncTo(snap.State)

	switch {
	case snap.State == machine.Idle && prev != machine.Idle:
		// New question: clear the radio.
		s.choice.Reset()
	case snap.State.IsResult():
		if q, ok := s.currentQuestion(); ok {
			s.choice.Reveal = true
			s.choice.Expected = q.Answer
		}
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if key.Matches(kmsg, s.keys.Quit) {
		return s, tea.Quit
	}

	state := s.snap.State
	switch {
	case state == machine.Uninitialized:
		if key.Matches(kmsg, s.keys.Enter) {
			if err := s.session.Start(s.provider.Len()); err != nil {
				s.loadErr = "This question set is empty."
				s.log.Warn("cannot start quiz", zap.Error(err))
			}
		}

	case state == machine.Idle:
		switch {
		case key.Matches(kmsg, s.keys.True):
			s.choice.Pick(true)
		case key.Matches(kmsg, s.keys.False):
			s.choice.Pick(false)
		case key.Matches(kmsg, s.keys.Toggle):
			s.choice.Toggle()
		case key.Matches(kmsg, s.keys.Enter):
			s.submit()
		}

	case state.IsResult():
		if key.Matches(kmsg, s.keys.Enter, s.keys.Next) {
			if err := s.session.Advance(); err != nil {
				s.log.Debug("advance rejected", zap.Error(err))
			}
			if s.snap.State.IsFinal() {
				return s, s.showSummary()
			}
		}

	case state.IsFinal():
		if key.Matches(kmsg, s.keys.Enter) {
			return s, s.showSummary()
		}
	}

	return s, nil
}

func (s *QuizScreen) submit() {
	q, ok := s.currentQuestion()
	if !ok {
		return
	}

	a := machine.NoPick(q.Answer)
	if p := s.choice.Picked(); p != nil {
		a = machine.Pick(*p, q.Answer)
	}
	// A missing pick is reported through ErrorMessage in the next snapshot.
	if err := s.session.Submit(a); err != nil {
		s.log.Debug("submit rejected", zap.Error(err))
	}
}

func (s *QuizScreen) currentQuestion() (questions.Question, bool) {
	q, err := s.provider.At(s.snap.Context.CurrentQuestionIndex)
	if err != nil {
		s.loadErr = err.Error()
		return questions.Question{}, false
	}
	return q, true
}

func (s *QuizScreen) showSummary() tea.Cmd {
	sum := s.session.Summary()
	restart := func() screen.Screen {
		return New(s.provider, s.newSession, s.log)
	}
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: summary.New(sum, restart)}
	}
}
