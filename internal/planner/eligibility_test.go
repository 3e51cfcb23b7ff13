package planner

import (
	"testing"

	"github.com/degreekit/advisor/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eligibilityGraph(t *testing.T) *Graph {
	t.Helper()
	catalog := []domain.Course{
		course("CS18000", 4, 100, domain.SeasonFall, domain.SeasonSpring),
		course("CS18200", 3, 100, domain.SeasonSpring),
		course("CS24000", 3, 200, domain.SeasonFall),
		course("CS25000", 4, 200, domain.SeasonFall),
		course("MA16100", 5, 100, domain.SeasonFall, domain.SeasonSpring),
		course("MA16200", 5, 100, domain.SeasonFall, domain.SeasonSpring),
	}
	rules := []domain.PrereqRule{
		allOf("CS18200", "CS18000"),
		allOf("CS25000", "CS18200", "CS24000"),
	}
	g, err := BuildGraph(catalog, rules)
	require.NoError(t, err)
	return g
}

func TestRuleSatisfied_AllOf(t *testing.T) {
	rule := allOf("CS25000", "CS18200", "CS24000")

	assert.False(t, RuleSatisfied(rule, nil))
	assert.False(t, RuleSatisfied(rule, map[string]domain.Grade{"CS18200": domain.GradeA}))
	assert.True(t, RuleSatisfied(rule, map[string]domain.Grade{
		"CS18200": domain.GradeA,
		"CS24000": domain.GradeC,
	}))
}

func TestRuleSatisfied_AllOfMinGrade(t *testing.T) {
	rule := allOf("CS25000", "CS18200")
	rule.MinGrade = domain.GradeB

	assert.False(t, RuleSatisfied(rule, map[string]domain.Grade{"CS18200": domain.GradeC}))
	assert.True(t, RuleSatisfied(rule, map[string]domain.Grade{"CS18200": domain.GradeB}))
}

func TestRuleSatisfied_OneOfSimpleAlternatives(t *testing.T) {
	rule := oneOf("CS37300", []string{"STAT35000"}, []string{"STAT51100"})

	assert.False(t, RuleSatisfied(rule, nil))
	assert.True(t, RuleSatisfied(rule, map[string]domain.Grade{"STAT35000": domain.GradeC}))
	assert.True(t, RuleSatisfied(rule, map[string]domain.Grade{"STAT51100": domain.GradeA}))
}

func TestRuleSatisfied_OneOfMultiCourseTerm(t *testing.T) {
	// One alternative is a two-course sequence: both members required.
	rule := oneOf("CS47100", []string{"CS37300"}, []string{"MA26100", "MA26500"})

	assert.False(t, RuleSatisfied(rule, map[string]domain.Grade{"MA26100": domain.GradeA}),
		"half of a multi-course alternative is not enough")
	assert.True(t, RuleSatisfied(rule, map[string]domain.Grade{
		"MA26100": domain.GradeA,
		"MA26500": domain.GradeB,
	}))
	assert.True(t, RuleSatisfied(rule, map[string]domain.Grade{"CS37300": domain.GradeC}))
}

func TestRuleSatisfied_PlannedGradeCounts(t *testing.T) {
	rule := allOf("CS18200", "CS18000")
	assert.True(t, RuleSatisfied(rule, map[string]domain.Grade{"CS18000": domain.GradePlanned}))
}

func TestEvaluateEligibility_FiltersCompleted(t *testing.T) {
	g := eligibilityGraph(t)
	completed := map[string]domain.Grade{"MA16100": domain.GradeA}
	eligible, deferred := EvaluateEligibility(g,
		[]Candidate{{CourseID: "MA16100", GroupKey: "math"}},
		completed, domain.SeasonFall)
	assert.Empty(t, eligible)
	assert.Empty(t, deferred)
}

func TestEvaluateEligibility_PrereqsGate(t *testing.T) {
	g := eligibilityGraph(t)
	cands := []Candidate{{CourseID: "CS18200", GroupKey: "core"}}

	eligible, _ := EvaluateEligibility(g, cands, nil, domain.SeasonSpring)
	assert.Empty(t, eligible, "CS18200 needs CS18000 first")

	eligible, _ = EvaluateEligibility(g, cands,
		map[string]domain.Grade{"CS18000": domain.GradeB}, domain.SeasonSpring)
	require.Len(t, eligible, 1)
	assert.Equal(t, "CS18200", eligible[0].Course.ID)
	assert.Equal(t, "core", eligible[0].GroupKey)
}

func TestEvaluateEligibility_SeasonDefers(t *testing.T) {
	g := eligibilityGraph(t)
	completed := map[string]domain.Grade{"CS18000": domain.GradeB}
	cands := []Candidate{{CourseID: "CS18200", GroupKey: "core"}}

	eligible, deferred := EvaluateEligibility(g, cands, completed, domain.SeasonFall)
	assert.Empty(t, eligible)
	require.Len(t, deferred, 1)
	assert.Equal(t, "CS18200", deferred[0].CourseID)
	assert.Equal(t, []domain.Season{domain.SeasonSpring}, deferred[0].Seasons)
}

func TestEvaluateEligibility_FailedPrereqNotDeferred(t *testing.T) {
	g := eligibilityGraph(t)
	// CS25000 lacks prereqs AND is out of season; the prereq failure wins
	// and nothing is deferred.
	eligible, deferred := EvaluateEligibility(g,
		[]Candidate{{CourseID: "CS25000", GroupKey: "core"}},
		nil, domain.SeasonSpring)
	assert.Empty(t, eligible)
	assert.Empty(t, deferred)
}

func TestEvaluateEligibility_NoRuleIsTriviallySatisfied(t *testing.T) {
	g := eligibilityGraph(t)
	eligible, _ := EvaluateEligibility(g,
		[]Candidate{{CourseID: "MA16100", GroupKey: "math"}},
		nil, domain.SeasonFall)
	require.Len(t, eligible, 1)
	assert.Equal(t, "MA16100", eligible[0].Course.ID)
}

func TestEvaluateEligibility_PreservesCandidateOrder(t *testing.T) {
	g := eligibilityGraph(t)
	cands := []Candidate{
		{CourseID: "MA16200", GroupKey: "math"},
		{CourseID: "MA16100", GroupKey: "math"},
		{CourseID: "CS18000", GroupKey: "core"},
	}
	eligible, _ := EvaluateEligibility(g, cands, nil, domain.SeasonFall)
	require.Len(t, eligible, 3)
	assert.Equal(t, "MA16200", eligible[0].Course.ID)
	assert.Equal(t, "MA16100", eligible[1].Course.ID)
	assert.Equal(t, "CS18000", eligible[2].Course.ID)
}

func TestRuleStatus_ReportsMissingPerTerm(t *testing.T) {
	rule := oneOf("CS47100", []string{"CS37300"}, []string{"MA26100", "MA26500"})
	completed := map[string]domain.Grade{"MA26100": domain.GradeA}

	statuses := RuleStatus(rule, completed)
	require.Len(t, statuses, 2)

	assert.False(t, statuses[0].Satisfied)
	assert.Equal(t, []string{"CS37300"}, statuses[0].Missing)

	assert.False(t, statuses[1].Satisfied)
	assert.Equal(t, []string{"MA26500"}, statuses[1].Missing)
}

func TestRuleStatus_SatisfiedTermHasNoMissing(t *testing.T) {
	rule := allOf("CS18200", "CS18000")
	statuses := RuleStatus(rule, map[string]domain.Grade{"CS18000": domain.GradeA})
	require.Len(t, statuses, 1)
	assert.True(t, statuses[0].Satisfied)
	assert.Empty(t, statuses[0].Missing)
}
