package planner

import (
	"fmt"
	"sort"

	"github.com/degreekit/advisor/internal/app"
	"github.com/degreekit/advisor/internal/domain"
)

// DefaultGateCourse is the course whose completion institutionally
// requires a declared track before further planning.
const DefaultGateCourse = "CS25200"

const maxBottlenecks = 5

// Engine runs single-student planning simulations over one immutable
// catalog snapshot. Construct it once and share it freely: concurrent
// runs are safe because every run allocates fresh state.
type Engine struct {
	graph   *Graph
	weights ScoringWeights
	gate    string
}

// NewEngine validates the catalog and rules, builds the prerequisite
// graph, and wires the default weights and gate course.
func NewEngine(catalog []domain.Course, rules []domain.PrereqRule) (*Engine, error) {
	return NewEngineWith(catalog, rules, DefaultWeights(), DefaultGateCourse)
}

// NewEngineWith is NewEngine with explicit weights and gate course,
// for callers that need non-default behavior.
func NewEngineWith(catalog []domain.Course, rules []domain.PrereqRule, weights ScoringWeights, gateCourseID string) (*Engine, error) {
	g, err := BuildGraph(catalog, rules)
	if err != nil {
		return nil, err
	}
	return &Engine{graph: g, weights: weights, gate: gateCourseID}, nil
}

// Graph exposes the immutable prerequisite graph for read-only callers.
func (e *Engine) Graph() *Graph {
	return e.graph
}

// GateCourse returns the configured gate course id.
func (e *Engine) GateCourse() string {
	return e.gate
}

// Plan is the single-shot simulation: it packs semesters until the
// track's requirements are exhausted, the semester cap is hit, or the
// gate blocks planning. A nil track means no specialization is declared.
// Blocked and capped outcomes are normal plans; errors are reserved for
// malformed or inconsistent inputs.
func (e *Engine) Plan(track *domain.Track, student domain.StudentProfile, constraints domain.Constraints) (*app.Plan, error) {
	if err := constraints.Validate(); err != nil {
		return nil, configErrorf("%v", err)
	}

	// Gate check comes first, unconditionally: nothing else may run
	// when planning is blocked.
	if track == nil {
		if student.HasTaken(e.gate) {
			return e.blockedPlan(), nil
		}
		return e.noTrackPlan(student), nil
	}

	if err := ValidateTrack(*track, e.graph); err != nil {
		return nil, err
	}

	completed := e.assumedComplete(student)

	plan := &app.Plan{
		TrackID:    track.ID,
		Semesters:  []app.SemesterPlan{},
		Advisories: []app.Advisory{},
	}

	term := constraints.StartTerm
	report := EvaluateRequirements(*track, completed)

	for idx := 0; idx < constraints.MaxSemesters && !report.Complete(); idx++ {
		candidates := report.Candidates(completed)
		eligible, deferred := EvaluateEligibility(e.graph, candidates, completed, term.Season)

		scored := e.scoreAll(eligible, report, completed, idx)
		CanonicalSort(scored)
		selected := PackSemester(scored, constraints.MaxCreditsPerSemester)

		plan.Semesters = append(plan.Semesters, semesterArtifact(idx, term, selected))
		if len(selected) == 0 {
			plan.Advisories = append(plan.Advisories, emptyTermAdvisory(term, deferred))
		}

		for _, sc := range selected {
			completed[sc.Course.ID] = domain.GradePlanned
		}
		report = EvaluateRequirements(*track, completed)
		term = term.Next(constraints.SummerAllowed)
	}

	if report.Complete() {
		plan.Status = domain.PlanComplete
	} else {
		plan.Status = domain.PlanCapped
		plan.Advisories = append(plan.Advisories, app.Advisory{
			Code: app.AdvisoryMaxSemestersReached,
			Message: fmt.Sprintf("Reached the %d-semester limit with %d requirement slot(s) still open.",
				constraints.MaxSemesters, report.OutstandingSlots()),
		})
	}
	plan.IsValid = plan.Status == domain.PlanComplete
	plan.UnmetRequirements = unmetRequirements(report, completed)
	plan.UnmetTrackGroups = unmetGroups(report)
	plan.Bottlenecks = e.bottlenecks(completed)

	return plan, nil
}

// assumedComplete collapses the student history to best grade per course
// and merges in-progress enrollment as assumed-pass.
func (e *Engine) assumedComplete(student domain.StudentProfile) map[string]domain.Grade {
	completed := student.BestGrades()
	for _, id := range student.InProgress {
		if cur, ok := completed[id]; !ok || domain.GradePlanned.Points() > cur.Points() {
			completed[id] = domain.GradePlanned
		}
	}
	return completed
}

func (e *Engine) scoreAll(eligible []Eligible, report RequirementReport, completed map[string]domain.Grade, semesterIndex int) []ScoredCourse {
	maxCoverage := MaxCoverage(e.graph, report, completed)
	scored := make([]ScoredCourse, 0, len(eligible))
	for _, el := range eligible {
		scored = append(scored, ScoreCourse(ScoringInput{
			Course:               el.Course,
			GroupKey:             el.GroupKey,
			SemesterIndex:        semesterIndex,
			DownstreamDegree:     e.graph.DownstreamDegree(el.Course.ID),
			MaxDownstreamDegree:  e.graph.MaxDownstreamDegree(),
			CoverageCount:        CoverageCount(report, el.Course.ID, completed),
			MaxCoverageCount:     maxCoverage,
			AvgSeasonalFrequency: e.graph.AvgSeasonalFrequency(el.Course.ID),
			Weights:              e.weights,
		}))
	}
	return scored
}

// blockedPlan is the terminal gate-violation outcome: an empty plan,
// produced before any other computation.
func (e *Engine) blockedPlan() *app.Plan {
	return &app.Plan{
		Status:            domain.PlanBlocked,
		IsValid:           false,
		Semesters:         []app.SemesterPlan{},
		UnmetRequirements: []string{},
		UnmetTrackGroups:  []app.UnmetGroup{},
		Advisories: []app.Advisory{{
			Code: app.AdvisoryTrackNotDeclared,
			Message: fmt.Sprintf("%s has been taken but no track is declared; track declaration is required before planning can continue.",
				e.gate),
		}},
		Bottlenecks: []app.Bottleneck{},
	}
}

// noTrackPlan is the benign no-track outcome: nothing to plan toward, so
// the empty plan is complete and valid.
func (e *Engine) noTrackPlan(student domain.StudentProfile) *app.Plan {
	completed := e.assumedComplete(student)
	return &app.Plan{
		Status:            domain.PlanComplete,
		IsValid:           true,
		Semesters:         []app.SemesterPlan{},
		UnmetRequirements: []string{},
		UnmetTrackGroups:  []app.UnmetGroup{},
		Advisories: []app.Advisory{{
			Code:    app.AdvisoryNoTrackDeclared,
			Message: "No track declared; declare one to plan toward its requirements.",
		}},
		Bottlenecks: e.bottlenecks(completed),
	}
}

func emptyTermAdvisory(term domain.Term, deferred []Deferred) app.Advisory {
	msg := fmt.Sprintf("Nothing could be scheduled for %s.", term.Label())
	if len(deferred) > 0 {
		msg = fmt.Sprintf("Nothing could be scheduled for %s: %d candidate(s) are not offered that season.",
			term.Label(), len(deferred))
	}
	return app.Advisory{Code: app.AdvisoryEmptyTerm, Message: msg}
}

func semesterArtifact(index int, term domain.Term, selected []ScoredCourse) app.SemesterPlan {
	selections := make([]app.Selection, 0, len(selected))
	total := 0
	for _, sc := range selected {
		selections = append(selections, app.Selection{
			CourseID:     sc.Course.ID,
			Title:        sc.Course.Title,
			Credits:      sc.Course.CreditHours,
			Reason:       sc.GroupKey,
			Score:        sc.Total,
			CriticalPath: sc.CriticalPath,
		})
		total += sc.Course.CreditHours
	}
	return app.SemesterPlan{
		Index:        index,
		Term:         term,
		Label:        term.Label(),
		Selections:   selections,
		TotalCredits: total,
	}
}

// unmetRequirements flattens the remaining hint options to a sorted,
// deduplicated list of still-needed course ids.
func unmetRequirements(report RequirementReport, completed map[string]domain.Grade) []string {
	seen := map[string]bool{}
	ids := []string{}
	for _, gs := range report.Groups {
		for _, opt := range gs.Available {
			for _, id := range opt.Members() {
				if _, done := completed[id]; done {
					continue
				}
				if seen[id] {
					continue
				}
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	sort.Strings(ids)
	return ids
}

func unmetGroups(report RequirementReport) []app.UnmetGroup {
	out := []app.UnmetGroup{}
	for _, gs := range report.Groups {
		if gs.Missing == 0 {
			continue
		}
		opts := make([]string, 0, len(gs.Available))
		for _, opt := range gs.Available {
			opts = append(opts, opt.Key())
		}
		out = append(out, app.UnmetGroup{
			Key:       gs.Group.Key,
			Kind:      string(gs.Group.Kind),
			Need:      gs.Group.Need,
			Satisfied: gs.Satisfied,
			Missing:   gs.Missing,
			Options:   opts,
		})
	}
	return out
}

// bottlenecks lists the heaviest uncompleted prerequisites: downstream
// degree at or above the critical threshold, highest degree first, ties
// by id, capped at five.
func (e *Engine) bottlenecks(completed map[string]domain.Grade) []app.Bottleneck {
	out := []app.Bottleneck{}
	for _, id := range e.graph.CourseIDs() {
		if _, done := completed[id]; done {
			continue
		}
		if e.graph.IsBottleneck(id) {
			out = append(out, app.Bottleneck{CourseID: id, DownstreamDegree: e.graph.DownstreamDegree(id)})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DownstreamDegree != out[j].DownstreamDegree {
			return out[i].DownstreamDegree > out[j].DownstreamDegree
		}
		return out[i].CourseID < out[j].CourseID
	})
	if len(out) > maxBottlenecks {
		out = out[:maxBottlenecks]
	}
	return out
}
