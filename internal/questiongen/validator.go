package questiongen

import (
	"fmt"

	"github.com/abhisek/quizzy/internal/questions"
)

// Validator checks a generated set.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier used in errors and logs,
	// e.g. "structural", "dedup".
	Name() string

	// Validate returns nil if the set passes.
	Validate(set *questions.Set, input Input) *ValidationError
}

// ValidationError describes why a set failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
	Retryable bool   // Whether regeneration is likely to fix this
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}
