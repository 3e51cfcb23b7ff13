package planner

import (
	"sort"

	"github.com/degreekit/advisor/internal/domain"
)

// Graph is the immutable prerequisite graph over one catalog snapshot.
// Build it once per process and share it across runs; it is never
// mutated after construction.
type Graph struct {
	courses       map[string]domain.Course
	rules         map[string]domain.PrereqRule
	downstream    map[string]int
	maxDownstream int
	courseIDs     []string
}

// BuildGraph validates the catalog and prerequisite rules and computes
// the derived measures the scorer needs. Rules referencing unknown
// courses and cyclic prerequisite data fail with IntegrityError;
// malformed definitions fail with ConfigError.
func BuildGraph(catalog []domain.Course, rules []domain.PrereqRule) (*Graph, error) {
	if len(catalog) == 0 {
		return nil, configErrorf("catalog is empty")
	}

	g := &Graph{
		courses:    make(map[string]domain.Course, len(catalog)),
		rules:      make(map[string]domain.PrereqRule, len(rules)),
		downstream: make(map[string]int),
	}

	for _, c := range catalog {
		if err := c.Validate(); err != nil {
			return nil, configErrorf("%v", err)
		}
		if _, dup := g.courses[c.ID]; dup {
			return nil, configErrorf("duplicate course %s in catalog", c.ID)
		}
		g.courses[c.ID] = c
		g.courseIDs = append(g.courseIDs, c.ID)
	}
	sort.Strings(g.courseIDs)

	for _, r := range rules {
		if err := r.Validate(); err != nil {
			return nil, configErrorf("%v", err)
		}
		if _, dup := g.rules[r.Course]; dup {
			return nil, configErrorf("duplicate prerequisite rule for %s", r.Course)
		}
		if _, ok := g.courses[r.Course]; !ok {
			return nil, integrityErrorf("prerequisite rule references unknown course %s", r.Course)
		}
		for _, id := range r.MemberIDs() {
			if _, ok := g.courses[id]; !ok {
				return nil, integrityErrorf("prerequisite rule for %s references unknown course %s", r.Course, id)
			}
		}
		g.rules[r.Course] = r
	}

	// Downstream degree: distinct destination courses per prerequisite,
	// one per rule regardless of how many terms repeat the member.
	for _, id := range g.courseIDs {
		r, ok := g.rules[id]
		if !ok {
			continue
		}
		for _, member := range r.MemberIDs() {
			g.downstream[member]++
		}
	}
	for _, id := range g.courseIDs {
		if d := g.downstream[id]; d > g.maxDownstream {
			g.maxDownstream = d
		}
	}

	if err := g.detectCycles(); err != nil {
		return nil, err
	}
	return g, nil
}

// Course looks up a catalog entry by id.
func (g *Graph) Course(id string) (domain.Course, bool) {
	c, ok := g.courses[id]
	return c, ok
}

// Rule looks up the prerequisite rule for a destination course. Courses
// without a rule have a trivially satisfied prerequisite expression.
func (g *Graph) Rule(courseID string) (domain.PrereqRule, bool) {
	r, ok := g.rules[courseID]
	return r, ok
}

// CourseIDs returns every catalog id in sorted order.
func (g *Graph) CourseIDs() []string {
	return g.courseIDs
}

// Len returns the catalog size.
func (g *Graph) Len() int {
	return len(g.courseIDs)
}

// DownstreamDegree is the count of distinct courses directly requiring
// the given course as a prerequisite.
func (g *Graph) DownstreamDegree(courseID string) int {
	return g.downstream[courseID]
}

// MaxDownstreamDegree is the catalog-wide maximum downstream degree, the
// scorer's normalizer.
func (g *Graph) MaxDownstreamDegree() int {
	return g.maxDownstream
}

// IsBottleneck reports whether the course unlocks enough downstream work
// to be treated as critical path.
func (g *Graph) IsBottleneck(courseID string) bool {
	return g.downstream[courseID] >= criticalDownstreamDegree
}

// AvgSeasonalFrequency is the fraction of the three seasons in which the
// course is offered. Unknown courses score zero.
func (g *Graph) AvgSeasonalFrequency(courseID string) float64 {
	c, ok := g.courses[courseID]
	if !ok {
		return 0
	}
	return float64(len(c.Seasons)) / float64(len(domain.AllSeasons))
}

// detectCycles walks the prereq->course edges with white/gray/black
// marking. Acyclic data is expected but never trusted; a cycle fails the
// build rather than looping later.
func (g *Graph) detectCycles() error {
	edges := make(map[string][]string, len(g.rules))
	for dst, r := range g.rules {
		edges[dst] = r.MemberIDs()
	}

	const (
		white = 0 // unvisited
		gray  = 1 // in current path
		black = 2 // fully processed
	)

	color := make(map[string]int, len(g.courseIDs))
	var cycleErr error

	var visit func(id string, path []string) bool
	visit = func(id string, path []string) bool {
		color[id] = gray
		path = append(path, id)
		for _, dep := range edges[id] {
			if color[dep] == gray {
				cycleErr = integrityErrorf("prerequisite cycle detected: %s", cycleString(path, dep))
				return true
			}
			if color[dep] == white {
				if visit(dep, path) {
					return true
				}
			}
		}
		color[id] = black
		return false
	}

	for _, id := range g.courseIDs {
		if color[id] == white {
			if visit(id, nil) {
				return cycleErr
			}
		}
	}
	return nil
}

// cycleString renders the closing portion of a cycle path, e.g.
// "CS30100 -> CS20100 -> CS30100".
func cycleString(path []string, repeat string) string {
	start := 0
	for i, id := range path {
		if id == repeat {
			start = i
			break
		}
	}
	s := ""
	for _, id := range path[start:] {
		s += id + " -> "
	}
	return s + repeat
}
