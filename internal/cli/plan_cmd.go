package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/degreekit/advisor/internal/app"
	"github.com/degreekit/advisor/internal/cli/formatter"
	"github.com/degreekit/advisor/internal/domain"
)

func newPlanCmd(a *App) *cobra.Command {
	var (
		studentID string
		track     string
		start     string
		maxCred   int
		semesters int
		summer    bool
		save      bool
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate a multi-semester course plan",
		Long: `Generate a semester-by-semester plan for a student. Flags override
the stored constraints for this run only; the profile itself is never
changed. Use --save to keep the run in the plan history.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := app.NewPlanRequest(studentID)
			req.TrackOverride = track
			req.Save = save

			if start != "" {
				term, err := domain.ParseTerm(start)
				if err != nil {
					return err
				}
				req.StartTerm = &term
			}
			if cmd.Flags().Changed("max-credits") {
				req.MaxCredits = &maxCred
			}
			if cmd.Flags().Changed("semesters") {
				req.MaxSemesters = &semesters
			}
			if cmd.Flags().Changed("summer") {
				req.Summer = &summer
			}

			run, err := a.Plan.Plan(cmd.Context(), req)
			if err != nil {
				return err
			}

			if asJSON {
				data, err := json.MarshalIndent(run, "", "  ")
				if err != nil {
					return fmt.Errorf("encoding plan: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPlan(run))
			return nil
		},
	}

	cmd.Flags().StringVar(&studentID, "student", "", "Student ID")
	cmd.Flags().StringVar(&track, "track", "", "Plan against this track instead of the declared one")
	cmd.Flags().StringVar(&start, "start", "", "Start term override, e.g. fall-2026")
	cmd.Flags().IntVar(&maxCred, "max-credits", 15, "Credit cap per semester for this run")
	cmd.Flags().IntVar(&semesters, "semesters", 8, "Semester limit for this run")
	cmd.Flags().BoolVar(&summer, "summer", false, "Allow summer terms for this run")
	cmd.Flags().BoolVar(&save, "save", false, "Save the run to plan history")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the plan run as JSON")
	_ = cmd.MarkFlagRequired("student")

	return cmd
}
