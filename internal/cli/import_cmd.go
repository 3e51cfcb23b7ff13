package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/degreekit/advisor/internal/cli/formatter"
)

func newImportCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <transcript.json>",
		Short: "Import a transcript file, creating or updating the student",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.Import.ImportTranscript(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			verb := "Updated"
			if result.Created {
				verb = "Created"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s student %s (%s) with %d transcript rows\n",
				verb, result.Student.Name, result.Student.ID, result.CourseCount)
			for _, w := range result.Warnings {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleYellow.Render("  WARNING: "+w))
			}
			return nil
		},
	}
}
