package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizzy/internal/questions"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check PATH",
		Short: "Validate a question file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := questions.Load(args[0])
			if err != nil {
				return err
			}

			title := set.Title
			if title == "" {
				title = "(untitled)"
			}
			trueCount := 0
			for _, q := range set.Questions {
				if q.Answer {
					trueCount++
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s, %d questions (%d true, %d false)\n",
				args[0], title, set.Len(), trueCount, set.Len()-trueCount)
			return nil
		},
	}
}
