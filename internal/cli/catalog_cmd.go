package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/degreekit/advisor/internal/cli/formatter"
)

func newCatalogCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the course catalog",
	}

	cmd.AddCommand(
		newCatalogLoadCmd(a),
		newCatalogValidateCmd(a),
		newCatalogCoursesCmd(a),
		newCatalogShowCmd(a),
	)

	return cmd
}

func newCatalogLoadCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "load <file>",
		Short: "Load a catalog definition file, replacing the stored catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.Catalog.LoadCatalog(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d courses, %d prerequisite rules, %d tracks\n",
				result.CourseCount, result.RuleCount, result.TrackCount)
			return nil
		},
	}
}

func newCatalogValidateCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a catalog file without loading it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			errs := a.Catalog.ValidateCatalog(cmd.Context(), args[0])
			if len(errs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Catalog file is valid")
				return nil
			}
			for _, e := range errs {
				fmt.Fprintf(cmd.OutOrStdout(), "  - %v\n", e)
			}
			return fmt.Errorf("catalog file has %d problem(s)", len(errs))
		},
	}
}

func newCatalogCoursesCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "courses",
		Short: "List catalog courses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			courses, err := a.Catalog.ListCourses(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCourseList(courses))
			return nil
		},
	}
}

func newCatalogShowCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <course-id>",
		Short: "Show one catalog entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			course, err := a.Catalog.GetCourse(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCourse(course))
			return nil
		},
	}
}
