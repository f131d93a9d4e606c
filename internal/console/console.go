// Package console drives a quiz session over plain line-oriented I/O.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/quizzy/internal/logger"
	"github.com/abhisek/quizzy/internal/questions"
	"github.com/abhisek/quizzy/internal/quiz"
	"github.com/abhisek/quizzy/internal/ui/theme"
)

// Option configures a console run.
type Option func(*runner)

// WithLogger sets the logger for input diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(r *runner) {
		if l != nil {
			r.log = l.Named(logger.ComponentConsole)
		}
	}
}

// WithColor enables ANSI styling using the theme palette.
func WithColor(on bool) Option {
	return func(r *runner) { r.color = on }
}

type runner struct {
	session  *quiz.Session
	provider questions.Provider
	in       *bufio.Scanner
	out      io.Writer
	log      *zap.Logger
	color    bool
}

// Run plays session to completion against provider, reading answers from
// in and writing prompts to out. It returns nil once the session reaches
// finish. If in is exhausted first, the error wraps io.ErrUnexpectedEOF.
func Run(ctx context.Context, session *quiz.Session, provider questions.Provider, in io.Reader, out io.Writer, opts ...Option) error {
	r := &runner{
		session:  session,
		provider: provider,
		in:       bufio.NewScanner(in),
		out:      out,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r.run(ctx)
}

func (r *runner) run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		snap := r.session.Current()
		var err error
		switch {
		case snap.State == quiz.Uninitialized:
			err = r.start()
		case snap.State == quiz.Idle:
			err = r.answer(snap)
		case snap.State.IsResult():
			err = r.result(snap)
		case snap.State.IsFinal():
			r.finish(snap)
			return nil
		default:
			// Transient states complete inside a single dispatch.
			return fmt.Errorf("console: unexpected state %s", snap.State)
		}
		if err != nil {
			return err
		}
	}
}

func (r *runner) start() error {
	if set, ok := r.provider.(*questions.Set); ok && set.Title != "" {
		r.printf("%s\n", r.style(theme.Title, set.Title))
	}
	r.printf("%d questions. Press enter to START.", r.provider.Len())
	if _, err := r.readLine(); err != nil {
		return err
	}
	if err := r.session.Start(r.provider.Len()); err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	return nil
}

func (r *runner) answer(snap quiz.Snapshot) error {
	q, err := r.question(snap)
	if err != nil {
		return err
	}

	r.printf("\n── Question %d/%d ──\n", snap.Context.CurrentQuestionIndex+1, snap.Context.QuestionCount())
	r.printf("%s\n", q.Text)
	if snap.Context.ErrorMessage != "" {
		r.printf("%s\n", r.style(theme.Warning, snap.Context.ErrorMessage))
	}

	for {
		r.printf("ANSWER [t/f]: ")
		line, err := r.readLine()
		if err != nil {
			return err
		}
		picked, ok := ParseChoice(line)
		if !ok {
			r.log.Debug("unrecognized input", zap.String("line", line))
			r.printf("Type t or f, or press enter to submit without a pick.\n")
			continue
		}

		a := quiz.NoPick(q.Answer)
		if picked != nil {
			a = quiz.Pick(*picked, q.Answer)
		}
		// A missing pick leaves the session in idle with ErrorMessage set;
		// the next loop iteration shows it.
		if err := r.session.Submit(a); err != nil && !errors.Is(err, quiz.ErrMissingAnswer) {
			return fmt.Errorf("submit answer: %w", err)
		}
		return nil
	}
}

func (r *runner) result(snap quiz.Snapshot) error {
	q, err := r.question(snap)
	if err != nil {
		return err
	}

	if snap.State == quiz.Correct {
		r.printf("%s\n", r.style(theme.Correct, "✓ Correct!"))
	} else {
		r.printf("%s Answer: %t\n", r.style(theme.Incorrect, "✗ Wrong."), q.Answer)
	}
	if q.Explanation != "" {
		r.printf("Explanation: %s\n", q.Explanation)
	}

	r.printf("Press enter for NEXT.")
	if _, err := r.readLine(); err != nil {
		return err
	}
	if err := r.session.Advance(); err != nil {
		return fmt.Errorf("advance: %w", err)
	}
	return nil
}

func (r *runner) finish(snap quiz.Snapshot) {
	sum := snap.Summary()
	r.printf("\n── Summary: %d/%d correct (%.0f%%) ──\n",
		sum.Correct, sum.TotalQuestions, sum.Accuracy*100)
}

func (r *runner) question(snap quiz.Snapshot) (questions.Question, error) {
	q, err := r.provider.At(snap.Context.CurrentQuestionIndex)
	if err != nil {
		return questions.Question{}, fmt.Errorf("load question: %w", err)
	}
	return q, nil
}

func (r *runner) readLine() (string, error) {
	if !r.in.Scan() {
		if err := r.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		r.printf("\n(input closed)\n")
		return "", fmt.Errorf("input closed before the quiz finished: %w", io.ErrUnexpectedEOF)
	}
	return strings.TrimSpace(r.in.Text()), nil
}

func (r *runner) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

func (r *runner) style(s lipgloss.Style, text string) string {
	if !r.color {
		return text
	}
	return s.Render(text)
}

// ParseChoice interprets a line of user input. An empty line is a valid
// submission without a pick (nil, true). Unrecognized input returns ok
// false.
func ParseChoice(line string) (picked *bool, ok bool) {
	yes, no := true, false
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "":
		return nil, true
	case "t", "true", "y", "yes", "1":
		return &yes, true
	case "f", "false", "n", "no", "0":
		return &no, true
	default:
		return nil, false
	}
}
