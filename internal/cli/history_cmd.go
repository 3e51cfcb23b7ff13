package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/degreekit/advisor/internal/cli/formatter"
)

func newHistoryCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse saved plan runs",
	}

	cmd.AddCommand(newHistoryListCmd(a), newHistoryShowCmd(a))
	return cmd
}

func newHistoryListCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list <student-id>",
		Short: "List a student's saved plan runs, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, err := a.History.ListRuns(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatHistory(runs))
			return nil
		},
	}
}

func newHistoryShowCmd(a *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show one saved plan run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := a.History.GetRun(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if asJSON {
				data, err := json.MarshalIndent(run, "", "  ")
				if err != nil {
					return fmt.Errorf("encoding plan run: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPlan(run))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the plan run as JSON")
	return cmd
}
