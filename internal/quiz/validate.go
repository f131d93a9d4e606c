package quiz

// Validator decides whether a submission may be scored. It is the single
// suspension point of the machine: answering.submitting hosts it and
// leaves through exactly one of two outcomes.
//
// A nil error moves the machine to answering.complete. A non-nil error
// sends it back to answering.idle with the error text as ErrorMessage.
type Validator interface {
	Validate(a Answer) error
}

// ValidatorFunc adapts a plain function to Validator.
type ValidatorFunc func(a Answer) error

func (f ValidatorFunc) Validate(a Answer) error { return f(a) }

// RequirePick is the default validator: an answer must have a selection.
var RequirePick Validator = ValidatorFunc(func(a Answer) error {
	if !a.HasPick() {
		return ErrMissingAnswer
	}
	return nil
})
