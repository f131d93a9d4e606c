package quiz

// Event is one input to the machine. The set of events is closed.
type Event interface {
	// Type returns the event name used in logs: START, SUBMIT or ADVANCE.
	Type() string
	isEvent()
}

// StartEvent begins a session over QuestionCount questions.
type StartEvent struct {
	QuestionCount int
}

// SubmitEvent carries the user's answer. A nil Answer counts as no pick.
type SubmitEvent struct {
	Answer *Answer
}

// AdvanceEvent moves past a scored question.
type AdvanceEvent struct{}

func (StartEvent) Type() string   { return "START" }
func (SubmitEvent) Type() string  { return "SUBMIT" }
func (AdvanceEvent) Type() string { return "ADVANCE" }

func (StartEvent) isEvent()   {}
func (SubmitEvent) isEvent()  {}
func (AdvanceEvent) isEvent() {}

// normalize turns pointer events into their value form. ok is false for a
// nil event or a nil pointer, which carry nothing to process.
func normalize(ev Event) (Event, bool) {
	switch e := ev.(type) {
	case nil:
		return nil, false
	case *StartEvent:
		if e == nil {
			return nil, false
		}
		return *e, true
	case *SubmitEvent:
		if e == nil {
			return nil, false
		}
		return *e, true
	case *AdvanceEvent:
		if e == nil {
			return nil, false
		}
		return *e, true
	}
	return ev, true
}
