package planner

import "github.com/degreekit/advisor/internal/domain"

// Eligible is a candidate that cleared every eligibility check for the
// semester under evaluation.
type Eligible struct {
	Course   domain.Course
	GroupKey string
}

// Deferred is a candidate whose prerequisites are met but which is not
// offered in the attempted season. The simulator reconsiders it whenever
// a matching season comes around.
type Deferred struct {
	CourseID string
	Seasons  []domain.Season
}

// EvaluateEligibility filters the candidate pool for one semester: a
// candidate passes when it is not already completed, its prerequisite
// expression is satisfied by the completed-set, and it is offered in the
// semester's season. Candidates failing only the season check come back
// as deferred.
func EvaluateEligibility(g *Graph, candidates []Candidate, completed map[string]domain.Grade, season domain.Season) ([]Eligible, []Deferred) {
	var eligible []Eligible
	var deferred []Deferred
	for _, cand := range candidates {
		course, ok := g.Course(cand.CourseID)
		if !ok {
			continue
		}
		if _, done := completed[cand.CourseID]; done {
			continue
		}
		if rule, hasRule := g.Rule(cand.CourseID); hasRule && !RuleSatisfied(rule, completed) {
			continue
		}
		if !course.OfferedIn(season) {
			deferred = append(deferred, Deferred{CourseID: cand.CourseID, Seasons: course.Seasons})
			continue
		}
		eligible = append(eligible, Eligible{Course: course, GroupKey: cand.GroupKey})
	}
	return eligible, deferred
}

// RuleSatisfied evaluates a prerequisite expression against the
// completed-set. AllOf requires every member of every term; OneOf
// requires at least one term fully satisfied.
func RuleSatisfied(rule domain.PrereqRule, completed map[string]domain.Grade) bool {
	min := rule.EffectiveMinGrade()
	switch rule.Kind {
	case domain.RuleAllOf:
		for _, term := range rule.Terms {
			if !termSatisfied(term, min, completed) {
				return false
			}
		}
		return true
	case domain.RuleOneOf:
		for _, term := range rule.Terms {
			if termSatisfied(term, min, completed) {
				return true
			}
		}
		return false
	}
	return false
}

// termSatisfied reports whether every course of one term is completed
// with a passing grade.
func termSatisfied(term []string, min domain.Grade, completed map[string]domain.Grade) bool {
	for _, id := range term {
		g, ok := completed[id]
		if !ok || !g.AtLeast(min) {
			return false
		}
	}
	return true
}

// TermStatus is the per-term progress detail behind RuleSatisfied, used
// for eligibility explanations.
type TermStatus struct {
	Members   []string
	Missing   []string
	Satisfied bool
}

// RuleStatus expands a rule into per-term progress against the
// completed-set.
func RuleStatus(rule domain.PrereqRule, completed map[string]domain.Grade) []TermStatus {
	min := rule.EffectiveMinGrade()
	statuses := make([]TermStatus, 0, len(rule.Terms))
	for _, term := range rule.Terms {
		ts := TermStatus{Members: term, Satisfied: true}
		for _, id := range term {
			g, ok := completed[id]
			if !ok || !g.AtLeast(min) {
				ts.Missing = append(ts.Missing, id)
				ts.Satisfied = false
			}
		}
		statuses = append(statuses, ts)
	}
	return statuses
}
