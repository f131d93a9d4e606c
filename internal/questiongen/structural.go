package questiongen

import (
	"fmt"
	"strings"

	"github.com/abhisek/quizzy/internal/questions"
)

const (
	maxStatementLen   = 300
	maxExplanationLen = 600

	// Sets at least this large must mix true and false answers.
	minMixedCount = 4
)

// StructuralValidator checks the shape of a set: the requested count,
// non-empty statements within length limits, and a mix of answers.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(set *questions.Set, input Input) *ValidationError {
	fail := func(format string, args ...any) *ValidationError {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf(format, args...),
			Retryable: true,
		}
	}

	if set.Len() != input.Count {
		return fail("expected %d questions, got %d", input.Count, set.Len())
	}

	trues := 0
	for i, q := range set.Questions {
		if strings.TrimSpace(q.Text) == "" {
			return fail("question %d: statement is empty", i+1)
		}
		if len(q.Text) > maxStatementLen {
			return fail("question %d: statement exceeds %d characters", i+1, maxStatementLen)
		}
		if len(q.Explanation) > maxExplanationLen {
			return fail("question %d: explanation exceeds %d characters", i+1, maxExplanationLen)
		}
		if q.Answer {
			trues++
		}
	}

	if set.Len() >= minMixedCount && (trues == 0 || trues == set.Len()) {
		return fail("all %d answers are %t", set.Len(), trues > 0)
	}
	return nil
}
