package questiongen

import (
	"fmt"
	"strings"

	"github.com/abhisek/quizzy/internal/questions"
)

// DedupValidator rejects sets that repeat a statement, either within the
// set or from Input.Avoid. Comparison ignores case, surrounding space and
// a trailing period.
type DedupValidator struct{}

func (v *DedupValidator) Name() string { return "dedup" }

func (v *DedupValidator) Validate(set *questions.Set, input Input) *ValidationError {
	seen := make(map[string]int, set.Len()+len(input.Avoid))
	for _, a := range input.Avoid {
		seen[normalizeStatement(a)] = 0
	}

	for i, q := range set.Questions {
		key := normalizeStatement(q.Text)
		if first, dup := seen[key]; dup {
			msg := fmt.Sprintf("question %d repeats an avoided statement", i+1)
			if first > 0 {
				msg = fmt.Sprintf("question %d duplicates question %d", i+1, first)
			}
			return &ValidationError{Validator: v.Name(), Message: msg, Retryable: true}
		}
		seen[key] = i + 1
	}
	return nil
}

func normalizeStatement(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimSuffix(s, ".")
	return strings.Join(strings.Fields(s), " ")
}

// buildAvoid formats avoided statements for the prompt, keeping the
// last max entries. Returns "None" when empty.
func buildAvoid(statements []string, max int) string {
	if len(statements) == 0 {
		return "None"
	}
	if max > 0 && len(statements) > max {
		statements = statements[len(statements)-max:]
	}

	var b strings.Builder
	for i, s := range statements {
		fmt.Fprintf(&b, "%d. %s\n", i+1, s)
	}
	return strings.TrimRight(b.String(), "\n")
}
