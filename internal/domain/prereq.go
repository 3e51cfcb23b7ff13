package domain

import "fmt"

// PrereqRule declares the prerequisite expression for one destination
// course. Terms is a uniform nested expression: for AllOf every course of
// every term is required; for OneOf at least one term must be fully
// satisfied, where a multi-course term is a sequence requiring all of its
// members.
type PrereqRule struct {
	Course   string     `json:"course"`
	Kind     RuleKind   `json:"kind"`
	Terms    [][]string `json:"terms"`
	MinGrade Grade      `json:"min_grade,omitempty"`
}

// MemberIDs returns every course id referenced anywhere in the expression,
// in declaration order, without duplicates.
func (r PrereqRule) MemberIDs() []string {
	seen := map[string]bool{}
	var ids []string
	for _, term := range r.Terms {
		for _, id := range term {
			if seen[id] {
				continue
			}
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids
}

// EffectiveMinGrade resolves the rule's minimum, falling back to the
// scale-wide default when unset.
func (r PrereqRule) EffectiveMinGrade() Grade {
	if r.MinGrade == "" {
		return DefaultMinGrade
	}
	return r.MinGrade
}

// Validate checks the structural invariants of a rule; referential checks
// against the catalog happen during graph construction.
func (r PrereqRule) Validate() error {
	if !ValidCourseID(r.Course) {
		return fmt.Errorf("prereq rule: invalid destination course id %q", r.Course)
	}
	if !r.Kind.Valid() {
		return fmt.Errorf("prereq rule for %s: invalid kind %q", r.Course, r.Kind)
	}
	if len(r.Terms) == 0 {
		return fmt.Errorf("prereq rule for %s: empty expression", r.Course)
	}
	for i, term := range r.Terms {
		if len(term) == 0 {
			return fmt.Errorf("prereq rule for %s: term %d is empty", r.Course, i)
		}
		for _, id := range term {
			if !ValidCourseID(id) {
				return fmt.Errorf("prereq rule for %s: invalid member course id %q", r.Course, id)
			}
			if id == r.Course {
				return fmt.Errorf("prereq rule for %s: course cannot require itself", r.Course)
			}
		}
	}
	if r.MinGrade != "" && !r.MinGrade.Valid() {
		return fmt.Errorf("prereq rule for %s: invalid minimum grade %q", r.Course, r.MinGrade)
	}
	return nil
}
