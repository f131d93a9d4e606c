package questions

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
)

// ErrEmptySet is returned by Validate for a set with no questions.
var ErrEmptySet = errors.New("question set is empty")

// Validate checks that a set can drive a session: at least one question
// and no blank question text.
func Validate(set *Set) error {
	if set.Len() == 0 {
		return ErrEmptySet
	}
	var problems []string
	for i, q := range set.Questions {
		if strings.TrimSpace(q.Text) == "" {
			problems = append(problems, fmt.Sprintf("question %d: text is empty", i+1))
		}
	}
	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

// Shuffle returns a shuffled copy of set. When limit is positive and
// smaller than the set, only the first limit shuffled questions are kept.
// A nil rng uses the package-level source.
func Shuffle(set *Set, rng *rand.Rand, limit int) *Set {
	out := &Set{Title: set.Title, Questions: make([]Question, set.Len())}
	copy(out.Questions, set.Questions)

	for i := len(out.Questions) - 1; i > 0; i-- {
		var j int
		if rng != nil {
			j = rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		out.Questions[i], out.Questions[j] = out.Questions[j], out.Questions[i]
	}

	if limit > 0 && limit < len(out.Questions) {
		out.Questions = out.Questions[:limit]
	}
	return out
}
