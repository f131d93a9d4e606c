package questiongen

import (
	"context"
	"errors"

	"github.com/abhisek/quizzy/internal/questions"
)

// MaxCount caps how many questions one request may ask for.
const MaxCount = 50

// ErrInvalidInput is returned before any provider call when the Input
// cannot produce a set.
var ErrInvalidInput = errors.New("invalid generation input")

// Generator produces true/false question sets.
type Generator interface {
	// Generate produces a set for the given input. All configured
	// validators pass before a set is returned.
	Generate(ctx context.Context, input Input) (*questions.Set, error)
}

// Input describes the set to generate.
type Input struct {
	// Topic is the subject of every statement, e.g. "the solar system".
	Topic string

	// Count is the exact number of statements wanted.
	Count int

	// Audience optionally tunes vocabulary and difficulty,
	// e.g. "primary school" or "senior engineers".
	Audience string

	// Avoid lists statements that must not be repeated, typically the
	// contents of an existing set being extended.
	Avoid []string
}
