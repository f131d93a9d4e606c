package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/quizzy/internal/questions"
	"github.com/abhisek/quizzy/internal/quiz"
)

func twoQuestions() *questions.Set {
	return &questions.Set{
		Title: "Demo",
		Questions: []questions.Question{
			{Text: "Is the sky blue?", Answer: true},
			{Text: "Is 2 + 2 = 5?", Answer: false, Explanation: "It is 4."},
		},
	}
}

func TestRun_FullSession(t *testing.T) {
	s := quiz.New()
	var out bytes.Buffer
	// start, answer true (correct), next, answer true (wrong), next
	in := strings.NewReader("\nt\n\ntrue\n\n")

	err := Run(context.Background(), s, twoQuestions(), in, &out)
	require.NoError(t, err)

	snap := s.Current()
	assert.Equal(t, quiz.Finish, snap.State)
	assert.Equal(t, 1, snap.Context.CorrectCount)
	assert.Equal(t, 1, snap.Context.IncorrectCount)

	text := out.String()
	assert.Contains(t, text, "Demo")
	assert.Contains(t, text, "2 questions. Press enter to START.")
	assert.Contains(t, text, "── Question 1/2 ──\nIs the sky blue?")
	assert.Contains(t, text, "✓ Correct!")
	assert.Contains(t, text, "✗ Wrong. Answer: false")
	assert.Contains(t, text, "Explanation: It is 4.")
	assert.Contains(t, text, "Summary: 1/2 correct (50%)")
}

func TestRun_MissingPickShowsMessage(t *testing.T) {
	s := quiz.New()
	set := &questions.Set{Questions: []questions.Question{{Text: "Q?", Answer: false}}}
	var out bytes.Buffer
	// start, empty submit, then f, next
	in := strings.NewReader("\n\nf\n\n")

	require.NoError(t, Run(context.Background(), s, set, in, &out))

	text := out.String()
	assert.Contains(t, text, quiz.MissingAnswerMessage)
	assert.Equal(t, 2, strings.Count(text, "── Question 1/1 ──"), "question is shown again after the error")
	assert.Equal(t, 1, s.Current().Context.CorrectCount)
}

func TestRun_UnrecognizedInputIsNotSubmitted(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	s := quiz.New()
	set := &questions.Set{Questions: []questions.Question{{Text: "Q?", Answer: true}}}
	var out bytes.Buffer
	in := strings.NewReader("\nmaybe\ny\n\n")

	require.NoError(t, Run(context.Background(), s, set, in, &out, WithLogger(zap.New(core))))

	assert.Contains(t, out.String(), "Type t or f")
	assert.Equal(t, 1, s.Current().Context.CorrectCount)
	assert.Equal(t, 0, s.Current().Context.IncorrectCount)
	assert.Equal(t, 1, logs.FilterMessage("unrecognized input").Len())
}

func TestRun_EOFBeforeFinish(t *testing.T) {
	s := quiz.New()
	var out bytes.Buffer
	err := Run(context.Background(), s, twoQuestions(), strings.NewReader("\nt\n"), &out)

	require.Error(t, err)
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
	assert.Equal(t, quiz.Correct, s.Current().State)
	assert.Contains(t, out.String(), "(input closed)")
}

func TestRun_AlreadyFinished(t *testing.T) {
	s := quiz.New()
	require.NoError(t, s.Start(1))
	require.NoError(t, s.Submit(quiz.Pick(true, true)))
	require.NoError(t, s.Advance())

	var out bytes.Buffer
	err := Run(context.Background(), s, twoQuestions(), strings.NewReader(""), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Summary: 1/1 correct")
}

func TestRun_EmptyProvider(t *testing.T) {
	s := quiz.New()
	var out bytes.Buffer
	err := Run(context.Background(), s, &questions.Set{}, strings.NewReader("\n"), &out)

	assert.ErrorIs(t, err, quiz.ErrInvalidSessionStart)
	assert.Equal(t, quiz.Uninitialized, s.Current().State)
}

func TestRun_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Run(ctx, quiz.New(), twoQuestions(), strings.NewReader("\n"), io.Discard)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_WithColor(t *testing.T) {
	s := quiz.New()
	var out bytes.Buffer
	in := strings.NewReader("\nt\n\nf\n\n")

	require.NoError(t, Run(context.Background(), s, twoQuestions(), in, &out, WithColor(true)))
	assert.Contains(t, out.String(), "\x1b[")
}

func TestParseChoice(t *testing.T) {
	tests := []struct {
		in     string
		want   *bool
		wantOK bool
	}{
		{"", nil, true},
		{"  ", nil, true},
		{"t", ptr(true), true},
		{"TRUE", ptr(true), true},
		{"y", ptr(true), true},
		{"1", ptr(true), true},
		{"f", ptr(false), true},
		{"No", ptr(false), true},
		{"0", ptr(false), true},
		{"maybe", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseChoice(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func ptr(b bool) *bool { return &b }
