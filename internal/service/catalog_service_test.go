package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/degreekit/advisor/internal/app"
)

const miniCatalogYAML = `catalog:
  - id: CS18000
    title: Problem Solving and Object-Oriented Programming
    credits: 4
    level: 100
    seasons: [fall, spring]
  - id: CS18200
    title: Foundations of Computer Science
    credits: 3
    level: 100
    seasons: [spring]
  - id: CS24000
    title: Programming in C
    credits: 3
    level: 100
    seasons: [fall, spring]
prerequisites:
  - course: CS18200
    kind: all_of
    terms: [[CS18000]]
  - course: CS24000
    kind: all_of
    terms: [[CS18000]]
tracks:
  - id: starter
    name: Starter
    groups:
      - key: core
        kind: required
        need: 2
        options:
          - course: CS18000
          - course: CS18200
          - course: CS24000
`

func writeCatalogFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func catalogServiceUnder(env *testEnv) app.CatalogUseCase {
	return NewCatalogService(env.catalog, env.tracks, env.uow(), env.engines)
}

func TestCatalogService_LoadCatalog(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	path := writeCatalogFile(t, miniCatalogYAML)

	result, err := catalogServiceUnder(env).LoadCatalog(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 3, result.CourseCount)
	assert.Equal(t, 2, result.RuleCount)
	assert.Equal(t, 1, result.TrackCount)

	courses, err := env.catalog.ListCourses(ctx)
	require.NoError(t, err)
	assert.Len(t, courses, 3)
	tracks, err := env.tracks.List(ctx)
	require.NoError(t, err)
	require.Len(t, tracks, 1)
	assert.Equal(t, "Starter", tracks[0].Name)
}

func TestCatalogService_ReloadReplacesAndInvalidatesEngine(t *testing.T) {
	env := newTestEnv(t)
	env.seedCatalog(t)
	ctx := context.Background()
	svc := catalogServiceUnder(env)

	// Prime the cached engine on the seeded catalog.
	_, err := env.engines.Engine(ctx)
	require.NoError(t, err)

	_, err = svc.LoadCatalog(ctx, writeCatalogFile(t, miniCatalogYAML))
	require.NoError(t, err)

	eng, err := env.engines.Engine(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, eng.Graph().Len(), "engine must rebuild on the replaced catalog")

	courses, err := env.catalog.ListCourses(ctx)
	require.NoError(t, err)
	assert.Len(t, courses, 3, "the old catalog rows are gone")
}

func TestCatalogService_BadFileLeavesCatalogUntouched(t *testing.T) {
	env := newTestEnv(t)
	env.seedCatalog(t)
	ctx := context.Background()

	// The rule references a course the file never defines.
	bad := `catalog:
  - id: CS18000
    title: Problem Solving
    credits: 4
    level: 100
    seasons: [fall]
prerequisites:
  - course: CS18000
    kind: all_of
    terms: [[CS99999]]
`
	_, err := catalogServiceUnder(env).LoadCatalog(ctx, writeCatalogFile(t, bad))
	require.Error(t, err)

	courses, err := env.catalog.ListCourses(ctx)
	require.NoError(t, err)
	assert.Len(t, courses, 11, "a rejected file must not disturb the stored catalog")
}

func TestCatalogService_ValidateCatalogReportsAllErrors(t *testing.T) {
	env := newTestEnv(t)
	bad := `catalog:
  - id: bad id
    title: ""
    credits: 0
    level: 100
    seasons: [fall]
`
	errs := catalogServiceUnder(env).ValidateCatalog(context.Background(), writeCatalogFile(t, bad))
	assert.GreaterOrEqual(t, len(errs), 3, "id, title and credits should each be reported")
}

func TestCatalogService_ValidateCatalogDetectsCycle(t *testing.T) {
	env := newTestEnv(t)
	cyclic := `catalog:
  - id: CS10000
    title: A
    credits: 3
    level: 100
    seasons: [fall]
  - id: CS20000
    title: B
    credits: 3
    level: 200
    seasons: [fall]
prerequisites:
  - course: CS10000
    kind: all_of
    terms: [[CS20000]]
  - course: CS20000
    kind: all_of
    terms: [[CS10000]]
`
	errs := catalogServiceUnder(env).ValidateCatalog(context.Background(), writeCatalogFile(t, cyclic))
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "cycle")
}

func TestCatalogService_ValidateCatalogAcceptsGoodFile(t *testing.T) {
	env := newTestEnv(t)
	errs := catalogServiceUnder(env).ValidateCatalog(context.Background(), writeCatalogFile(t, miniCatalogYAML))
	assert.Empty(t, errs)
}

func TestCatalogService_GetCourseNotFound(t *testing.T) {
	env := newTestEnv(t)
	env.seedCatalog(t)

	_, err := catalogServiceUnder(env).GetCourse(context.Background(), "CS99999")
	var planErr *app.PlanError
	require.ErrorAs(t, err, &planErr)
	assert.Equal(t, app.PlanErrCourseNotFound, planErr.Code)
}

func TestCatalogService_GetTrack(t *testing.T) {
	env := newTestEnv(t)
	env.seedCatalog(t)
	ctx := context.Background()
	svc := catalogServiceUnder(env)

	track, err := svc.GetTrack(ctx, "machine-intelligence")
	require.NoError(t, err)
	assert.Equal(t, "Machine Intelligence", track.Name)

	_, err = svc.GetTrack(ctx, "nope")
	var planErr *app.PlanError
	require.ErrorAs(t, err, &planErr)
	assert.Equal(t, app.PlanErrTrackNotFound, planErr.Code)
}
