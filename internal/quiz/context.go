package quiz

// Answer is a single submission: what the user picked and what the
// current question expects. Picked is nil when nothing was selected.
type Answer struct {
	Picked   *bool `json:"picked"`
	Expected bool  `json:"expected"`
}

// Pick returns an Answer with a selection.
func Pick(picked, expected bool) Answer {
	return Answer{Picked: &picked, Expected: expected}
}

// NoPick returns an Answer with no selection.
func NoPick(expected bool) Answer {
	return Answer{Expected: expected}
}

// HasPick reports whether a selection was made.
func (a Answer) HasPick() bool {
	return a.Picked != nil
}

// IsCorrect reports whether the selection matches the expected value.
// An answer without a pick is never correct.
func (a Answer) IsCorrect() bool {
	return a.Picked != nil && *a.Picked == a.Expected
}

func (a Answer) clone() *Answer {
	c := Answer{Expected: a.Expected}
	if a.Picked != nil {
		p := *a.Picked
		c.Picked = &p
	}
	return &c
}

// Context is the extended state carried across transitions.
type Context struct {
	// CurrentQuestionIndex is the 0-based index of the active question.
	CurrentQuestionIndex int `json:"currentQuestionIndex"`

	CorrectCount   int `json:"correctCount"`
	IncorrectCount int `json:"incorrectCount"`

	// TotalQuestions is the maximum valid index (question count - 1),
	// not a count.
	TotalQuestions int `json:"totalQuestions"`

	// ErrorMessage is set only while the latest submission failed validation.
	ErrorMessage string `json:"errorMessage,omitempty"`

	// PendingAnswer is the most recent submission. Stale between questions.
	PendingAnswer *Answer `json:"pendingAnswer,omitempty"`
}

// QuestionCount returns the number of questions in the session.
func (c Context) QuestionCount() int {
	return c.TotalQuestions + 1
}

// Answered returns how many questions have been scored.
func (c Context) Answered() int {
	return c.CorrectCount + c.IncorrectCount
}

// Accuracy returns the fraction of scored answers that were correct.
func (c Context) Accuracy() float64 {
	n := c.Answered()
	if n == 0 {
		return 0
	}
	return float64(c.CorrectCount) / float64(n)
}

// clone returns a deep copy so callers cannot alias machine-owned memory.
func (c Context) clone() Context {
	out := c
	if c.PendingAnswer != nil {
		out.PendingAnswer = c.PendingAnswer.clone()
	}
	return out
}
