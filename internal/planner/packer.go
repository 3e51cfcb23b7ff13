package planner

import "sort"

// CanonicalSort orders scored courses by the deterministic canonical rules:
// 1. Total score: higher first
// 2. Critical path: flagged first
// 3. Course id: lexical ascending
func CanonicalSort(scored []ScoredCourse) {
	sort.SliceStable(scored, func(i, j int) bool {
		a, b := scored[i], scored[j]

		if a.Total != b.Total {
			return a.Total > b.Total
		}
		if a.CriticalPath != b.CriticalPath {
			return a.CriticalPath
		}
		return a.Course.ID < b.Course.ID
	})
}

// PackSemester greedily fills the semester from sorted candidates under
// the credit cap: take each course that still fits, skip the ones that
// do not, stop when the cap is exactly reached or the list runs out.
func PackSemester(scored []ScoredCourse, maxCredits int) []ScoredCourse {
	var selected []ScoredCourse
	remaining := maxCredits
	for _, c := range scored {
		if c.Course.CreditHours > remaining {
			continue
		}
		selected = append(selected, c)
		remaining -= c.Course.CreditHours
		if remaining == 0 {
			break
		}
	}
	return selected
}
