package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/degreekit/advisor/internal/cli/formatter"
)

func newExplainCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "explain <student-id> <course-id>",
		Short: "Explain why a course is or is not plannable for a student",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := a.Explain.Explain(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatExplain(report))
			return nil
		},
	}
}
