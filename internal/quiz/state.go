package quiz

import "strings"

// StateKind is the outer discriminant of the machine state.
type StateKind int

const (
	KindUninitialized StateKind = iota // Waiting for Start
	KindAnswering                      // Composite: see Substate
	KindChecking                       // Transient correctness router
	KindCorrect                        // Last answer was right
	KindIncorrect                      // Last answer was wrong
	KindFinish                         // Session over
)

// Substate is the active child of the answering composite state.
// It is meaningful only when Kind is KindAnswering.
type Substate int

const (
	SubIdle       Substate = iota // Accepts Submit
	SubSubmitting                 // Running answer validation
	SubComplete                   // Final child; completes the composite
)

// State is a position in the session graph.
type State struct {
	Kind StateKind
	Sub  Substate
}

// Named states used throughout the package.
var (
	Uninitialized = State{Kind: KindUninitialized}
	Idle          = State{Kind: KindAnswering, Sub: SubIdle}
	Submitting    = State{Kind: KindAnswering, Sub: SubSubmitting}
	Complete      = State{Kind: KindAnswering, Sub: SubComplete}
	Checking      = State{Kind: KindChecking}
	Correct       = State{Kind: KindCorrect}
	Incorrect     = State{Kind: KindIncorrect}
	Finish        = State{Kind: KindFinish}
)

func (k StateKind) String() string {
	switch k {
	case KindUninitialized:
		return "uninitialized"
	case KindAnswering:
		return "answering"
	case KindChecking:
		return "checking"
	case KindCorrect:
		return "correct"
	case KindIncorrect:
		return "incorrect"
	case KindFinish:
		return "finish"
	default:
		return "unknown"
	}
}

func (s Substate) String() string {
	switch s {
	case SubIdle:
		return "idle"
	case SubSubmitting:
		return "submitting"
	case SubComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// String returns the dot-path of the state, e.g. "answering.idle".
func (s State) String() string {
	if s.Kind == KindAnswering {
		return s.Kind.String() + "." + s.Sub.String()
	}
	return s.Kind.String()
}

// Matches reports whether path names this state or one of its ancestors.
// "answering" matches every answering sub-state; "answering.idle" matches
// only idle.
func (s State) Matches(path string) bool {
	full := s.String()
	if full == path {
		return true
	}
	return strings.HasPrefix(full, path+".")
}

// IsFinal reports whether no event can move the machine out of s.
func (s State) IsFinal() bool {
	return s.Kind == KindFinish
}

// IsResult reports whether s is one of the per-question result states.
func (s State) IsResult() bool {
	return s.Kind == KindCorrect || s.Kind == KindIncorrect
}

// ParseState converts a dot-path back into a State.
func ParseState(path string) (State, bool) {
	for _, s := range allStates {
		if s.String() == path {
			return s, true
		}
	}
	return State{}, false
}

var allStates = []State{
	Uninitialized, Idle, Submitting, Complete, Checking, Correct, Incorrect, Finish,
}
