package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/quizzy/internal/logger"
	"github.com/abhisek/quizzy/internal/questions"
)

// EnvQuestions names the question file used when --questions is not given.
const EnvQuestions = "QUIZZY_QUESTIONS"

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "quizzy",
		Short: "True/false quiz in the terminal",
		Long:  "Quizzy plays true/false quizzes in the terminal and can generate new question sets with an LLM.",
		// Bare "quizzy" plays with the default play flags.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, playOptions{})
		},
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.String("questions", "", "Path to a question file (overrides "+EnvQuestions+"; default is the built-in set)")
	pf.String("log-level", "", "Log level: DEBUG, INFO, WARN or ERROR (overrides "+logger.EnvLevel+")")
	pf.String("log-format", "", "Log format: CONSOLE or JSON (overrides "+logger.EnvFormat+")")
	pf.String("log-file", "", "Append logs to this file")

	root.AddCommand(newPlayCmd())
	root.AddCommand(newGenerateCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func Execute() error {
	return rootCmd.Execute()
}

// resolveQuestionsPath returns the question file using --questions (highest
// priority), then QUIZZY_QUESTIONS. An empty result means the built-in set.
func resolveQuestionsPath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("questions"); p != "" {
		return p
	}
	return strings.TrimSpace(os.Getenv(EnvQuestions))
}

// loadQuestions loads the configured question set.
func loadQuestions(cmd *cobra.Command) (*questions.Set, error) {
	path := resolveQuestionsPath(cmd)
	if path == "" {
		return questions.Builtin(), nil
	}
	set, err := questions.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}
	return set, nil
}

// logConfig resolves the logging flags against the environment.
type logConfig struct {
	level  string
	format logger.Format
	file   string
}

func resolveLogConfig(cmd *cobra.Command) logConfig {
	flags := cmd.Flags()
	lc := logConfig{}
	lc.level, _ = flags.GetString("log-level")
	if lc.level == "" {
		lc.level = os.Getenv(logger.EnvLevel)
	}
	format, _ := flags.GetString("log-format")
	if format == "" {
		format = os.Getenv(logger.EnvFormat)
	}
	lc.format = logger.ParseFormat(format)
	lc.file, _ = flags.GetString("log-file")
	return lc
}

// openLogger builds the command logger. Without --log-file it writes to
// stderr, or discards everything when quiet is set because the terminal
// belongs to the UI.
func openLogger(cmd *cobra.Command, quiet bool) (*zap.Logger, func(), error) {
	lc := resolveLogConfig(cmd)
	if lc.file != "" {
		l, closeFn, err := logger.OpenFile(lc.file, lc.level, lc.format)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		return l.Named(logger.ComponentCLI), func() { _ = closeFn() }, nil
	}
	if quiet {
		return zap.NewNop(), func() {}, nil
	}
	l := logger.New(lc.level, lc.format, cmd.ErrOrStderr())
	return l.Named(logger.ComponentCLI), func() { _ = l.Sync() }, nil
}
