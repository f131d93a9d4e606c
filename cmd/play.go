package cmd

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/quizzy/internal/app"
	"github.com/abhisek/quizzy/internal/console"
	"github.com/abhisek/quizzy/internal/questions"
	"github.com/abhisek/quizzy/internal/quiz"
)

type playOptions struct {
	plain   bool
	shuffle bool
	limit   int
}

func newPlayCmd() *cobra.Command {
	var opts playOptions
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a quiz",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, opts)
		},
	}
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "Use line-oriented prompts instead of the full-screen UI")
	cmd.Flags().BoolVar(&opts.shuffle, "shuffle", false, "Shuffle the question order")
	cmd.Flags().IntVar(&opts.limit, "limit", 0, "Ask at most this many questions (0 for all)")
	return cmd
}

// runPlay loads the questions, builds the session factory and launches
// either the console loop or the TUI.
func runPlay(cmd *cobra.Command, opts playOptions) error {
	if opts.limit < 0 {
		return fmt.Errorf("--limit must not be negative, got %d", opts.limit)
	}

	set, err := loadQuestions(cmd)
	if err != nil {
		return err
	}
	set = arrange(set, opts, nil)

	log, closeLog, err := openLogger(cmd, !opts.plain)
	if err != nil {
		return err
	}
	defer closeLog()

	newSession := func() *quiz.Session {
		return quiz.New(quiz.WithLogger(log))
	}
	log.Debug("starting quiz",
		zap.Int("questions", set.Len()),
		zap.Bool("plain", opts.plain),
		zap.Bool("shuffle", opts.shuffle))

	if opts.plain {
		return console.Run(cmd.Context(), newSession(), set, cmd.InOrStdin(), cmd.OutOrStdout(),
			console.WithLogger(log),
			console.WithColor(isTerminal(cmd.OutOrStdout())))
	}

	return app.Run(app.Options{
		Provider:   set,
		NewSession: newSession,
		Logger:     log,
	})
}

// arrange applies --shuffle and --limit. rng may be nil.
func arrange(set *questions.Set, opts playOptions, rng *rand.Rand) *questions.Set {
	if opts.shuffle {
		return questions.Shuffle(set, rng, opts.limit)
	}
	if opts.limit > 0 && opts.limit < set.Len() {
		return &questions.Set{Title: set.Title, Questions: set.Questions[:opts.limit]}
	}
	return set
}

func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(f.Fd())
}
