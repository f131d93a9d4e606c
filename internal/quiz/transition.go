package quiz

// Outcome describes what a single Transition call did.
type Outcome struct {
	// Changed is true when the state or context differs from the input.
	Changed bool

	// Err is one of the package sentinels when the event was rejected or
	// validation failed. It is advisory: the returned state is always valid.
	Err error

	// Path lists every state entered while processing the event, in order.
	// Empty when no transition fired.
	Path []State
}

// Transition applies ev to (s, ctx) and returns the resulting state and
// context. It runs every automatic follow-up transition before returning,
// so the result is never answering.submitting, answering.complete or
// checking. A nil validator means RequirePick.
//
// ctx is treated as a value: the caller's copy is never mutated.
func Transition(s State, ctx Context, ev Event, v Validator) (State, Context, Outcome) {
	if v == nil {
		v = RequirePick
	}
	ctx = ctx.clone()
	t := &transition{state: s, ctx: ctx, validator: v}

	ev, ok := normalize(ev)
	if !ok {
		return s, ctx, Outcome{Err: ErrUnexpectedEvent}
	}

	switch e := ev.(type) {
	case StartEvent:
		t.start(e)
	case SubmitEvent:
		t.submit(e)
	case AdvanceEvent:
		t.advance()
	default:
		t.out.Err = ErrUnexpectedEvent
	}

	t.out.Changed = len(t.out.Path) > 0
	return t.state, t.ctx, t.out
}

// transition is the scratch space for one Transition call.
type transition struct {
	state     State
	ctx       Context
	validator Validator
	out       Outcome
}

// enter moves to next and runs its entry action.
func (t *transition) enter(next State) {
	if t.state == Idle && next != Idle {
		t.exitIdle()
	}
	t.state = next
	t.out.Path = append(t.out.Path, next)
	if next == Idle {
		t.enterIdle()
	}
}

func (t *transition) enterIdle() {
	t.ctx.ErrorMessage = ""
}

func (t *transition) exitIdle() {
	t.ctx.ErrorMessage = ""
}

func (t *transition) start(e StartEvent) {
	if t.state != Uninitialized {
		t.out.Err = ErrUnexpectedEvent
		return
	}
	if e.QuestionCount <= 0 {
		t.out.Err = ErrInvalidSessionStart
		return
	}
	t.ctx = Context{TotalQuestions: e.QuestionCount - 1}
	t.enter(Idle)
}

func (t *transition) submit(e SubmitEvent) {
	if t.state != Idle {
		t.out.Err = ErrUnexpectedEvent
		return
	}
	if e.Answer != nil {
		t.ctx.PendingAnswer = e.Answer.clone()
	} else {
		t.ctx.PendingAnswer = nil
	}
	t.enter(Submitting)
	t.validate()
}

// validate is the submitting state's invoked step.
func (t *transition) validate() {
	var a Answer
	if t.ctx.PendingAnswer != nil {
		a = *t.ctx.PendingAnswer
	}
	if err := t.validator.Validate(a); err != nil {
		t.out.Err = err
		t.enter(Idle)
		t.ctx.ErrorMessage = err.Error()
		return
	}
	t.enter(Complete)
	// Complete is the final child of answering; reaching it completes the
	// composite and the parent moves on.
	t.enter(Checking)
	t.check()
}

// check is the checking state's automatic router.
func (t *transition) check() {
	if t.ctx.PendingAnswer != nil && t.ctx.PendingAnswer.IsCorrect() {
		t.ctx.CorrectCount++
		t.enter(Correct)
		return
	}
	t.ctx.IncorrectCount++
	t.enter(Incorrect)
}

func (t *transition) advance() {
	if !t.state.IsResult() {
		t.out.Err = ErrUnexpectedEvent
		return
	}
	if t.ctx.CurrentQuestionIndex < t.ctx.TotalQuestions {
		t.ctx.CurrentQuestionIndex++
		t.enter(Idle)
		return
	}
	t.enter(Finish)
}
