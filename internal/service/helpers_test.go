package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/degreekit/advisor/internal/db"
	"github.com/degreekit/advisor/internal/domain"
	"github.com/degreekit/advisor/internal/repository"
	"github.com/degreekit/advisor/internal/testutil"
)

// testEnv wires every service over one in-memory database, the same
// shape main assembles in production.
type testEnv struct {
	db       *sql.DB
	catalog  *repository.SQLiteCatalogRepo
	tracks   *repository.SQLiteTrackRepo
	students *repository.SQLiteStudentRepo
	runs     *repository.SQLitePlanRunRepo
	engines  *EngineProvider
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	catalog := repository.NewSQLiteCatalogRepo(database)
	return &testEnv{
		db:       database,
		catalog:  catalog,
		tracks:   repository.NewSQLiteTrackRepo(database),
		students: repository.NewSQLiteStudentRepo(database),
		runs:     repository.NewSQLitePlanRunRepo(database),
		engines:  NewEngineProvider(catalog),
	}
}

func (e *testEnv) uow() db.UnitOfWork {
	return testutil.NewTestUoW(e.db)
}

// seedCatalog loads the shared sample catalog and tracks.
func (e *testEnv) seedCatalog(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, e.catalog.ReplaceAll(ctx, testutil.SampleCatalog(), testutil.SampleRules()))
	require.NoError(t, e.tracks.ReplaceAll(ctx, testutil.SampleTracks()))
}

func (e *testEnv) seedStudent(t *testing.T, s *domain.StudentProfile) {
	t.Helper()
	require.NoError(t, e.students.Create(context.Background(), s))
}
