package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/degreekit/advisor/internal/app"
	"github.com/degreekit/advisor/internal/domain"
	"github.com/degreekit/advisor/internal/testutil"
)

func explainServiceUnder(env *testEnv) app.ExplainUseCase {
	return NewExplainService(env.students, env.tracks, env.engines)
}

func TestExplainService_MissingPrereqsListedPerTerm(t *testing.T) {
	env := newTestEnv(t)
	env.seedCatalog(t)
	student := testutil.NewStudent("Dana Osei",
		testutil.WithCompleted("CS18200", domain.GradeB, testutil.SpringTerm(2026)))
	env.seedStudent(t, student)

	report, err := explainServiceUnder(env).Explain(context.Background(), student.ID, "CS25100")
	require.NoError(t, err)

	assert.Equal(t, "CS25100", report.CourseID)
	assert.Equal(t, "Data Structures and Algorithms", report.Title)
	assert.Equal(t, string(domain.RuleAllOf), report.RuleKind)
	assert.Equal(t, string(domain.GradeC), report.MinGrade)
	assert.False(t, report.PrereqsMet)
	require.Len(t, report.Terms, 2)
	assert.True(t, report.Terms[0].Satisfied)
	assert.False(t, report.Terms[1].Satisfied)
	assert.Equal(t, []string{"CS24000"}, report.Terms[1].Missing)
}

func TestExplainService_OneOfSatisfiedByAlternative(t *testing.T) {
	env := newTestEnv(t)
	env.seedCatalog(t)
	student := testutil.NewStudent("Ira Malik",
		testutil.WithCompleted("CS18200", domain.GradeA, testutil.SpringTerm(2026)),
		testutil.WithCompleted("CS24000", domain.GradeB, testutil.SpringTerm(2026)))
	env.seedStudent(t, student)

	report, err := explainServiceUnder(env).Explain(context.Background(), student.ID, "CS37300")
	require.NoError(t, err)

	assert.Equal(t, string(domain.RuleOneOf), report.RuleKind)
	assert.True(t, report.PrereqsMet, "the CS18200+CS24000 alternative satisfies the rule")
	require.Len(t, report.Terms, 2)
	assert.False(t, report.Terms[0].Satisfied)
	assert.True(t, report.Terms[1].Satisfied)
}

func TestExplainService_NoRuleMeansOpenEnrollment(t *testing.T) {
	env := newTestEnv(t)
	env.seedCatalog(t)
	student := testutil.NewStudent("Lee Santos")
	env.seedStudent(t, student)

	report, err := explainServiceUnder(env).Explain(context.Background(), student.ID, "CS18000")
	require.NoError(t, err)

	assert.True(t, report.PrereqsMet)
	assert.Empty(t, report.RuleKind)
	assert.Empty(t, report.Terms)
	assert.Equal(t, 2, report.DownstreamDegree)
}

func TestExplainService_BottleneckFlag(t *testing.T) {
	env := newTestEnv(t)
	env.seedCatalog(t)
	student := testutil.NewStudent("Lee Santos")
	env.seedStudent(t, student)

	// CS18200 feeds CS25000, CS25100 and a CS37300 alternative.
	report, err := explainServiceUnder(env).Explain(context.Background(), student.ID, "CS18200")
	require.NoError(t, err)

	assert.Equal(t, 3, report.DownstreamDegree)
	assert.True(t, report.Bottleneck)
}

func TestExplainService_CompletedAndTrackGroups(t *testing.T) {
	env := newTestEnv(t)
	env.seedCatalog(t)
	student := testutil.NewStudent("Noa Brandt",
		testutil.WithTrack("machine-intelligence"),
		testutil.WithCompleted("CS18000", domain.GradeAMinus, testutil.FallTerm(2025)))
	env.seedStudent(t, student)

	report, err := explainServiceUnder(env).Explain(context.Background(), student.ID, "CS18000")
	require.NoError(t, err)

	assert.True(t, report.Completed)
	assert.Equal(t, "A-", report.Grade)
	assert.Equal(t, []string{"foundations"}, report.Groups)
}

func TestExplainService_PairMemberReportsItsGroup(t *testing.T) {
	env := newTestEnv(t)
	env.seedCatalog(t)
	student := testutil.NewStudent("Noa Brandt", testutil.WithTrack("machine-intelligence"))
	env.seedStudent(t, student)

	report, err := explainServiceUnder(env).Explain(context.Background(), student.ID, "CS41100")
	require.NoError(t, err)

	assert.Equal(t, []string{"mi-electives"}, report.Groups)
}

func TestExplainService_InProgressFlag(t *testing.T) {
	env := newTestEnv(t)
	env.seedCatalog(t)
	student := testutil.NewStudent("Dana Osei", testutil.WithInProgress("CS18000"))
	env.seedStudent(t, student)

	report, err := explainServiceUnder(env).Explain(context.Background(), student.ID, "CS18000")
	require.NoError(t, err)

	assert.True(t, report.InProgress)
	assert.False(t, report.Completed)
}

func TestExplainService_UnknownCourse(t *testing.T) {
	env := newTestEnv(t)
	env.seedCatalog(t)
	student := testutil.NewStudent("Dana Osei")
	env.seedStudent(t, student)

	_, err := explainServiceUnder(env).Explain(context.Background(), student.ID, "CS99999")
	var planErr *app.PlanError
	require.ErrorAs(t, err, &planErr)
	assert.Equal(t, app.PlanErrCourseNotFound, planErr.Code)
}
