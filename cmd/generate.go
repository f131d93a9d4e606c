package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/quizzy/internal/llm"
	"github.com/abhisek/quizzy/internal/questiongen"
	"github.com/abhisek/quizzy/internal/questions"
)

// newProvider is swapped out in tests.
var newProvider = llm.NewProvider

type generateOptions struct {
	topic    string
	count    int
	audience string
	out      string
	extend   bool
}

func newGenerateCmd() *cobra.Command {
	var opts generateOptions
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a question set with an LLM",
		Long: `Generate a true/false question set on a topic.

The provider is chosen from QUIZZY_LLM_PROVIDER and its QUIZZY_<PROVIDER>_API_KEY,
or discovered from GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY or
OPENROUTER_API_KEY. The set is written as YAML to stdout unless --out is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := llm.Resolve()
			if err != nil {
				return fmt.Errorf("LLM provider not configured: %w", err)
			}
			return runGenerate(cmd, opts, cfg)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.topic, "topic", "", "Subject of the questions (required)")
	f.IntVar(&opts.count, "count", 10, fmt.Sprintf("Number of questions, 1 to %d", questiongen.MaxCount))
	f.StringVar(&opts.audience, "audience", "", "Who the quiz is for, e.g. \"primary school\"")
	f.StringVarP(&opts.out, "out", "o", "", "Write to this file (.yaml, .yml, .json, .db or .sqlite)")
	f.BoolVar(&opts.extend, "extend", false, "Append to the --questions set, avoiding its statements")
	_ = cmd.MarkFlagRequired("topic")
	return cmd
}

func runGenerate(cmd *cobra.Command, opts generateOptions, cfg llm.Config) error {
	ctx := cmd.Context()

	log, closeLog, err := openLogger(cmd, false)
	if err != nil {
		return err
	}
	defer closeLog()

	var base *questions.Set
	if opts.extend {
		if resolveQuestionsPath(cmd) == "" {
			return fmt.Errorf("--extend needs --questions or %s", EnvQuestions)
		}
		if base, err = loadQuestions(cmd); err != nil {
			return err
		}
	}

	provider, err := newProvider(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("create LLM provider: %w", err)
	}
	gen := questiongen.New(provider, questiongen.DefaultConfig(), questiongen.WithLogger(log))

	input := questiongen.Input{
		Topic:    opts.topic,
		Count:    opts.count,
		Audience: opts.audience,
	}
	if base != nil {
		for _, q := range base.Questions {
			input.Avoid = append(input.Avoid, q.Text)
		}
	}

	log.Info("generating question set",
		zap.String("provider", cfg.Provider),
		zap.String("model", provider.ModelID()),
		zap.String("topic", opts.topic),
		zap.Int("count", opts.count))

	set, err := gen.Generate(ctx, input)
	if err != nil {
		return fmt.Errorf("generate questions: %w", err)
	}
	if base != nil {
		set = &questions.Set{
			Title:     base.Title,
			Questions: append(append([]questions.Question{}, base.Questions...), set.Questions...),
		}
	}

	return writeSet(cmd, opts.out, set)
}

// writeSet saves set to out, or prints it as YAML when out is empty.
func writeSet(cmd *cobra.Command, out string, set *questions.Set) error {
	if out != "" {
		if err := questions.Save(cmd.Context(), out, set); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d questions to %s\n", set.Len(), out)
		return nil
	}

	data, err := questions.Marshal(set, questions.FormatYAML)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
