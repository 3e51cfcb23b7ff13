package cli

import (
	"github.com/spf13/cobra"

	"github.com/degreekit/advisor/internal/app"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Plan     app.PlanUseCase
	Audit    app.AuditUseCase
	Explain  app.ExplainUseCase
	Catalog  app.CatalogUseCase
	Students app.StudentUseCase
	Import   app.ImportUseCase
	History  app.HistoryUseCase
}

// NewRootCmd creates the top-level "advisor" command and registers all
// subcommands against the provided App.
func NewRootCmd(a *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "advisor",
		Short: "Degree planning and course recommendation",
		Long: `advisor plans multi-semester course schedules: it loads a course
catalog, tracks requirement progress against a declared specialization,
and generates semester-by-semester plans that honor prerequisites,
seasonal offerings, and credit limits.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newCatalogCmd(a),
		newTrackCmd(a),
		newStudentCmd(a),
		newImportCmd(a),
		newPlanCmd(a),
		newAuditCmd(a),
		newExplainCmd(a),
		newHistoryCmd(a),
	)

	return root
}
