package quiz

import "errors"

// MissingAnswerMessage is the text placed in Context.ErrorMessage when a
// submission has no selection.
const MissingAnswerMessage = "Please select answer."

var (
	// ErrInvalidSessionStart is reported when Start carries a non-positive
	// question count. The machine stays uninitialized.
	ErrInvalidSessionStart = errors.New("question count must be positive")

	// ErrMissingAnswer is reported when a submission has no selection.
	// The machine returns to answering.idle with ErrorMessage set.
	ErrMissingAnswer = errors.New(MissingAnswerMessage)

	// ErrUnexpectedEvent is reported when the current state does not accept
	// the event. Nothing changes.
	ErrUnexpectedEvent = errors.New("event not accepted in current state")

	// ErrReentrantDispatch is reported when an event is sent from inside a
	// subscriber while another event is being processed.
	ErrReentrantDispatch = errors.New("dispatch already in progress")
)
