package repository

import (
	"context"
	"testing"
	"time"

	"github.com/degreekit/advisor/internal/app"
	"github.com/degreekit/advisor/internal/domain"
	"github.com/degreekit/advisor/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedStudent(t *testing.T, repo *SQLiteStudentRepo) *domain.StudentProfile {
	t.Helper()
	student := testutil.NewStudent("Runner")
	require.NoError(t, repo.Create(context.Background(), student))
	return student
}

func samplePlan() *app.Plan {
	return &app.Plan{
		TrackID: "machine-intelligence",
		Status:  domain.PlanComplete,
		IsValid: true,
		Semesters: []app.SemesterPlan{{
			Index: 0,
			Term:  testutil.FallTerm(2026),
			Label: "Fall 2026",
			Selections: []app.Selection{{
				CourseID:     "CS18000",
				Title:        "Problem Solving and Object-Oriented Programming",
				Credits:      4,
				Reason:       "foundations",
				Score:        0.42,
				CriticalPath: true,
			}},
			TotalCredits: 4,
		}},
		UnmetRequirements: []string{},
		UnmetTrackGroups:  []app.UnmetGroup{},
		Advisories:        []app.Advisory{},
		Bottlenecks:       []app.Bottleneck{{CourseID: "CS25100", DownstreamDegree: 3}},
	}
}

func TestPlanRunRepo_CreateAndGet_RoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	students := NewSQLiteStudentRepo(db)
	repo := NewSQLitePlanRunRepo(db)
	ctx := context.Background()

	student := seedStudent(t, students)
	run := &app.PlanRun{
		ID:          uuid.New().String(),
		StudentID:   student.ID,
		TrackID:     "machine-intelligence",
		GeneratedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Plan:        samplePlan(),
	}
	require.NoError(t, repo.Create(ctx, run))

	got, err := repo.GetByID(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StudentID, got.StudentID)
	assert.Equal(t, run.GeneratedAt, got.GeneratedAt)
	require.NotNil(t, got.Plan)
	assert.Equal(t, domain.PlanComplete, got.Plan.Status)
	require.Len(t, got.Plan.Semesters, 1)
	assert.Equal(t, "CS18000", got.Plan.Semesters[0].Selections[0].CourseID)
	assert.True(t, got.Plan.Semesters[0].Selections[0].CriticalPath)
	assert.Equal(t, run.Plan.Bottlenecks, got.Plan.Bottlenecks)
}

func TestPlanRunRepo_ListByStudent_NewestFirst(t *testing.T) {
	db := testutil.NewTestDB(t)
	students := NewSQLiteStudentRepo(db)
	repo := NewSQLitePlanRunRepo(db)
	ctx := context.Background()

	student := seedStudent(t, students)
	older := &app.PlanRun{
		ID: uuid.New().String(), StudentID: student.ID,
		GeneratedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Plan:        samplePlan(),
	}
	newer := &app.PlanRun{
		ID: uuid.New().String(), StudentID: student.ID,
		GeneratedAt: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		Plan:        samplePlan(),
	}
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	runs, err := repo.ListByStudent(ctx, student.ID)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, newer.ID, runs[0].ID)
	assert.Equal(t, older.ID, runs[1].ID)
}

func TestPlanRunRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePlanRunRepo(db)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPlanRunRepo_CascadeOnStudentDelete(t *testing.T) {
	db := testutil.NewTestDB(t)
	students := NewSQLiteStudentRepo(db)
	repo := NewSQLitePlanRunRepo(db)
	ctx := context.Background()

	student := seedStudent(t, students)
	run := &app.PlanRun{
		ID: uuid.New().String(), StudentID: student.ID,
		GeneratedAt: time.Now().UTC().Truncate(time.Second),
		Plan:        samplePlan(),
	}
	require.NoError(t, repo.Create(ctx, run))

	_, err := db.Exec(`DELETE FROM students WHERE id = ?`, student.ID)
	require.NoError(t, err)

	_, err = repo.GetByID(ctx, run.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
