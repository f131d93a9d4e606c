package questions

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned by At for an index outside the set.
var ErrOutOfRange = errors.New("question index out of range")

// Question is a single true/false prompt.
type Question struct {
	Text string `json:"text" yaml:"text"`

	// Answer is the correct response to Text.
	Answer bool `json:"answer" yaml:"answer"`

	// Explanation is optional text shown after the question is scored.
	Explanation string `json:"explanation,omitempty" yaml:"explanation,omitempty"`
}

// Set is an ordered, 0-indexed list of questions.
type Set struct {
	Title     string     `json:"title,omitempty" yaml:"title,omitempty"`
	Questions []Question `json:"questions" yaml:"questions"`
}

// Provider exposes questions by index. The quiz session references
// questions only through the current index.
type Provider interface {
	Len() int
	At(i int) (Question, error)
}

var _ Provider = (*Set)(nil)

// Len returns the number of questions.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Questions)
}

// At returns the question at index i.
func (s *Set) At(i int) (Question, error) {
	if i < 0 || i >= s.Len() {
		return Question{}, fmt.Errorf("%w: %d (have %d)", ErrOutOfRange, i, s.Len())
	}
	return s.Questions[i], nil
}
