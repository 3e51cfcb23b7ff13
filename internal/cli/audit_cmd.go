package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/degreekit/advisor/internal/cli/formatter"
)

func newAuditCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "audit <student-id>",
		Short: "Audit a student's standing against their declared track",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := a.Audit.Audit(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatAudit(report))
			return nil
		},
	}
}
