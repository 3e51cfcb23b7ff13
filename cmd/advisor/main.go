package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/degreekit/advisor/internal/cli"
	"github.com/degreekit/advisor/internal/cli/formatter"
	"github.com/degreekit/advisor/internal/db"
	"github.com/degreekit/advisor/internal/repository"
	"github.com/degreekit/advisor/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.advisor/advisor.db
	dbPath := os.Getenv("ADVISOR_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".advisor", "advisor.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	catalogRepo := repository.NewSQLiteCatalogRepo(database)
	trackRepo := repository.NewSQLiteTrackRepo(database)
	studentRepo := repository.NewSQLiteStudentRepo(database)
	runRepo := repository.NewSQLitePlanRunRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Use-case telemetry goes to stderr when verbose mode is on.
	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if os.Getenv("ADVISOR_VERBOSE") != "" {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	engines := service.NewEngineProvider(catalogRepo)

	app := &cli.App{
		Plan:     service.NewPlanService(studentRepo, trackRepo, runRepo, engines, observer),
		Audit:    service.NewAuditService(studentRepo, trackRepo, engines),
		Explain:  service.NewExplainService(studentRepo, trackRepo, engines),
		Catalog:  service.NewCatalogService(catalogRepo, trackRepo, uow, engines, observer),
		Students: service.NewStudentService(studentRepo, trackRepo),
		Import:   service.NewImportService(studentRepo, trackRepo, catalogRepo, uow, observer),
		History:  service.NewHistoryService(studentRepo, runRepo),
	}

	// Styled output only when stdout is a real terminal.
	formatter.SetColorEnabled(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
