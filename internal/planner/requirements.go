package planner

import "github.com/degreekit/advisor/internal/domain"

// GroupStatus is the tracker's verdict on one requirement group.
// Available holds the first Missing still-unsatisfied options in declared
// order; it is a planning hint and the candidate pool, never a hard
// constraint.
type GroupStatus struct {
	Group     domain.RequirementGroup
	Satisfied int
	Missing   int
	Available []domain.RequirementOption
}

// RequirementReport is the full tracker output for one track against one
// completed-set. It is recomputed from scratch after every packed
// semester.
type RequirementReport struct {
	Groups []GroupStatus
}

// OutstandingSlots sums the missing slot counts across all groups.
func (r RequirementReport) OutstandingSlots() int {
	total := 0
	for _, gs := range r.Groups {
		total += gs.Missing
	}
	return total
}

// Complete reports whether every group is fully satisfied.
func (r RequirementReport) Complete() bool {
	return r.OutstandingSlots() == 0
}

// EvaluateRequirements scores a track's groups against the completed-set.
// Pure function: identical inputs always produce the identical report.
func EvaluateRequirements(track domain.Track, completed map[string]domain.Grade) RequirementReport {
	report := RequirementReport{Groups: make([]GroupStatus, 0, len(track.Groups))}
	for _, group := range track.Groups {
		min := group.EffectiveMinGrade()
		satisfied := 0
		for _, opt := range group.Options {
			if optionSatisfied(opt, min, completed) {
				satisfied++
			}
		}
		missing := group.Need - satisfied
		if missing < 0 {
			missing = 0
		}
		gs := GroupStatus{Group: group, Satisfied: satisfied, Missing: missing}
		if missing > 0 {
			for _, opt := range group.Options {
				if len(gs.Available) == missing {
					break
				}
				if !optionSatisfied(opt, min, completed) {
					gs.Available = append(gs.Available, opt)
				}
			}
		}
		report.Groups = append(report.Groups, gs)
	}
	return report
}

// optionSatisfied reports whether every member of the option is completed
// with a passing grade. A pair fills its single slot only when both
// members pass.
func optionSatisfied(opt domain.RequirementOption, min domain.Grade, completed map[string]domain.Grade) bool {
	return optionSatisfiedWith(opt, min, completed, "")
}

// optionSatisfiedWith is optionSatisfied with one extra course assumed
// completed and passing, used for coverage projection.
func optionSatisfiedWith(opt domain.RequirementOption, min domain.Grade, completed map[string]domain.Grade, extra string) bool {
	for _, id := range opt.Members() {
		if id == extra {
			continue
		}
		g, ok := completed[id]
		if !ok || !g.AtLeast(min) {
			return false
		}
	}
	return true
}

// Candidate is one course the planner may schedule, tagged with the
// requirement group that proposed it.
type Candidate struct {
	CourseID string
	GroupKey string
}

// Candidates extracts the semester's candidate pool from the report's
// hint options: every not-yet-completed member course, deduplicated, in
// group declaration order. A course proposed by two groups keeps the
// first group as its reason.
func (r RequirementReport) Candidates(completed map[string]domain.Grade) []Candidate {
	seen := map[string]bool{}
	var out []Candidate
	for _, gs := range r.Groups {
		for _, opt := range gs.Available {
			for _, id := range opt.Members() {
				if _, done := completed[id]; done {
					continue
				}
				if seen[id] {
					continue
				}
				seen[id] = true
				out = append(out, Candidate{CourseID: id, GroupKey: gs.Group.Key})
			}
		}
	}
	return out
}

// CoverageCount counts the outstanding groups whose satisfied count would
// increase if the course were completed now: a single-option membership,
// or a pair membership whose partner already passes.
func CoverageCount(report RequirementReport, courseID string, completed map[string]domain.Grade) int {
	n := 0
	for _, gs := range report.Groups {
		if gs.Missing == 0 {
			continue
		}
		min := gs.Group.EffectiveMinGrade()
		for _, opt := range gs.Group.Options {
			if optionSatisfied(opt, min, completed) {
				continue
			}
			if !optionReferences(opt, courseID) {
				continue
			}
			if optionSatisfiedWith(opt, min, completed, courseID) {
				n++
				break
			}
		}
	}
	return n
}

// MaxCoverage is the catalog-wide coverage normalizer for one semester:
// the maximum CoverageCount over every uncompleted catalog course.
func MaxCoverage(g *Graph, report RequirementReport, completed map[string]domain.Grade) int {
	max := 0
	for _, id := range g.CourseIDs() {
		if _, done := completed[id]; done {
			continue
		}
		if n := CoverageCount(report, id, completed); n > max {
			max = n
		}
	}
	return max
}

func optionReferences(opt domain.RequirementOption, courseID string) bool {
	for _, id := range opt.Members() {
		if id == courseID {
			return true
		}
	}
	return false
}

// ValidateTrack checks a track's structure (ConfigError) and its catalog
// references (IntegrityError) before a run.
func ValidateTrack(track domain.Track, g *Graph) error {
	if err := track.Validate(); err != nil {
		return configErrorf("%v", err)
	}
	for _, group := range track.Groups {
		for _, id := range group.MemberIDs() {
			if _, ok := g.Course(id); !ok {
				return integrityErrorf("track %s group %s references unknown course %s", track.ID, group.Key, id)
			}
		}
	}
	return nil
}
