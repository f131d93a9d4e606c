package quiz

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/quizzy/internal/logger"
)

// Snapshot is a read-only copy of the machine at one point in time.
type Snapshot struct {
	State   State
	Context Context
}

// Matches is shorthand for s.State.Matches(path).
func (s Snapshot) Matches(path string) bool {
	return s.State.Matches(path)
}

// Listener receives a snapshot after every processed event.
type Listener func(Snapshot)

// Session is one quiz attempt. It owns the machine context exclusively;
// collaborators read snapshots and send events.
//
// Events are processed one at a time. An event sent while another is being
// processed (including from inside a Listener) is rejected with
// ErrReentrantDispatch.
type Session struct {
	id        string
	log       *zap.Logger
	validator Validator

	mu          sync.Mutex
	state       State
	ctx         Context
	dispatching bool
	listeners   []listenerEntry
	nextID      int
}

type listenerEntry struct {
	id int
	fn Listener
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for transition tracing.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithValidator replaces the submission validator.
func WithValidator(v Validator) Option {
	return func(s *Session) {
		if v != nil {
			s.validator = v
		}
	}
}

// WithID overrides the generated session ID.
func WithID(id string) Option {
	return func(s *Session) {
		if id != "" {
			s.id = id
		}
	}
}

// New creates a session in the uninitialized state.
func New(opts ...Option) *Session {
	s := &Session{
		id:        uuid.New().String(),
		log:       zap.NewNop(),
		validator: RequirePick,
		state:     Uninitialized,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.Named(logger.ComponentSession).With(zap.String("session_id", s.id))
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Start begins the session over questionCount questions.
func (s *Session) Start(questionCount int) error {
	_, err := s.Send(StartEvent{QuestionCount: questionCount})
	return err
}

// Submit sends the user's answer for the current question.
func (s *Session) Submit(a Answer) error {
	_, err := s.Send(SubmitEvent{Answer: &a})
	return err
}

// Advance moves past a scored question.
func (s *Session) Advance() error {
	_, err := s.Send(AdvanceEvent{})
	return err
}

// Current returns the current state and a copy of the context.
func (s *Session) Current() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Send processes ev to completion and notifies listeners. The returned
// error is advisory; the returned snapshot is always the current state.
func (s *Session) Send(ev Event) (Snapshot, error) {
	ev, ok := normalize(ev)
	if !ok {
		s.log.Debug("malformed event ignored")
		return s.Current(), ErrUnexpectedEvent
	}

	s.mu.Lock()
	if s.dispatching {
		snap := s.snapshotLocked()
		s.mu.Unlock()
		s.log.Debug("event rejected during dispatch", zap.String("event", ev.Type()))
		return snap, ErrReentrantDispatch
	}
	s.dispatching = true
	locked := true
	defer func() {
		if !locked {
			s.mu.Lock()
		}
		s.dispatching = false
		s.mu.Unlock()
	}()

	from := s.state
	next, ctx, out := Transition(s.state, s.ctx, ev, s.validator)
	s.state = next
	s.ctx = ctx
	snap := s.snapshotLocked()
	listeners := make([]Listener, len(s.listeners))
	for i, e := range s.listeners {
		listeners[i] = e.fn
	}
	s.mu.Unlock()
	locked = false

	s.logOutcome(ev, from, snap, out)

	for _, fn := range listeners {
		fn(snap)
	}

	return snap, out.Err
}

// Subscribe registers fn to be called after every processed event.
// The returned function removes it; calling it more than once is safe.
func (s *Session) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, listenerEntry{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, e := range s.listeners {
				if e.id == id {
					s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
					return
				}
			}
		})
	}
}

func (s *Session) snapshotLocked() Snapshot {
	return Snapshot{State: s.state, Context: s.ctx.clone()}
}

func (s *Session) logOutcome(ev Event, from State, snap Snapshot, out Outcome) {
	fields := []zap.Field{
		zap.String("event", ev.Type()),
		zap.Stringer("from", from),
		zap.Stringer("to", snap.State),
	}

	switch {
	case out.Err == ErrInvalidSessionStart:
		s.log.Warn("invalid session start ignored", fields...)
	case out.Err == ErrUnexpectedEvent:
		s.log.Debug("event ignored", fields...)
	case out.Changed:
		path := make([]string, len(out.Path))
		for i, p := range out.Path {
			path[i] = p.String()
		}
		fields = append(fields,
			zap.Strings("path", path),
			zap.Int("question_index", snap.Context.CurrentQuestionIndex),
			zap.Int("correct", snap.Context.CorrectCount),
			zap.Int("incorrect", snap.Context.IncorrectCount),
		)
		if out.Err != nil {
			fields = append(fields, zap.Error(out.Err))
		}
		s.log.Debug("transition", fields...)
	}
}
