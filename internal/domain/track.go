package domain

import "fmt"

// RequirementOption is one way to fill a slot in a requirement group:
// either a single course, or a linked pair of courses that jointly count
// as exactly one slot. The two forms are kept as an explicit tagged
// variant so satisfaction rules stay exhaustive.
type RequirementOption struct {
	pair bool
	a, b string
}

// Single builds an option satisfied by completing one course.
func Single(courseID string) RequirementOption {
	return RequirementOption{a: courseID}
}

// Pair builds an option satisfied only when both courses are completed
// and passing; it still fills exactly one slot.
func Pair(a, b string) RequirementOption {
	return RequirementOption{pair: true, a: a, b: b}
}

// IsPair reports whether the option is a linked pair.
func (o RequirementOption) IsPair() bool { return o.pair }

// Members returns the course ids the option references: one for a single
// option, two for a pair.
func (o RequirementOption) Members() []string {
	if o.pair {
		return []string{o.a, o.b}
	}
	return []string{o.a}
}

// Key renders a stable identity for the option, used in reports and for
// duplicate detection ("CS31100" or "CS31100+CS41100").
func (o RequirementOption) Key() string {
	if o.pair {
		return o.a + "+" + o.b
	}
	return o.a
}

// Validate checks the option's structural invariants.
func (o RequirementOption) Validate() error {
	if !ValidCourseID(o.a) {
		return fmt.Errorf("option: invalid course id %q", o.a)
	}
	if o.pair {
		if !ValidCourseID(o.b) {
			return fmt.Errorf("option: invalid course id %q", o.b)
		}
		if o.a == o.b {
			return fmt.Errorf("option: pair members must be distinct, got %q twice", o.a)
		}
	}
	return nil
}

// RequirementGroup is one block of a track's degree requirements: Need
// slots to fill from Options. MinGrade applies to every member course and
// defaults to C when unset.
type RequirementGroup struct {
	Key      string              `json:"key"`
	Kind     GroupKind           `json:"kind"`
	Options  []RequirementOption `json:"options"`
	Need     int                 `json:"need"`
	MinGrade Grade               `json:"min_grade,omitempty"`
}

// EffectiveMinGrade resolves the group's minimum, falling back to the
// scale-wide default when unset.
func (g RequirementGroup) EffectiveMinGrade() Grade {
	if g.MinGrade == "" {
		return DefaultMinGrade
	}
	return g.MinGrade
}

// MemberIDs returns every course id referenced by the group's options, in
// declaration order, without duplicates.
func (g RequirementGroup) MemberIDs() []string {
	seen := map[string]bool{}
	var ids []string
	for _, opt := range g.Options {
		for _, id := range opt.Members() {
			if seen[id] {
				continue
			}
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids
}

// Validate checks the group's structural invariants. A group that asks
// for more slots than it has options can never be satisfied and is
// rejected up front.
func (g RequirementGroup) Validate() error {
	if g.Key == "" {
		return fmt.Errorf("requirement group: key is required")
	}
	if !g.Kind.Valid() {
		return fmt.Errorf("requirement group %s: invalid kind %q", g.Key, g.Kind)
	}
	if g.Need < 1 {
		return fmt.Errorf("requirement group %s: need must be at least 1, got %d", g.Key, g.Need)
	}
	if len(g.Options) == 0 {
		return fmt.Errorf("requirement group %s: at least one option is required", g.Key)
	}
	if g.Need > len(g.Options) {
		return fmt.Errorf("requirement group %s: need %d exceeds %d available options", g.Key, g.Need, len(g.Options))
	}
	seen := map[string]bool{}
	for _, opt := range g.Options {
		if err := opt.Validate(); err != nil {
			return fmt.Errorf("requirement group %s: %w", g.Key, err)
		}
		if seen[opt.Key()] {
			return fmt.Errorf("requirement group %s: duplicate option %s", g.Key, opt.Key())
		}
		seen[opt.Key()] = true
	}
	if g.MinGrade != "" && !g.MinGrade.Valid() {
		return fmt.Errorf("requirement group %s: invalid minimum grade %q", g.Key, g.MinGrade)
	}
	return nil
}

// Track is a specialization with its ordered requirement groups. Group
// order is preserved from declaration and drives deterministic truncation
// of planning hints.
type Track struct {
	ID     string             `json:"id"`
	Name   string             `json:"name"`
	Groups []RequirementGroup `json:"groups"`
}

// Validate checks the track and all of its groups.
func (t Track) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("track: id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("track %s: name is required", t.ID)
	}
	if len(t.Groups) == 0 {
		return fmt.Errorf("track %s: at least one requirement group is required", t.ID)
	}
	seen := map[string]bool{}
	for _, g := range t.Groups {
		if err := g.Validate(); err != nil {
			return fmt.Errorf("track %s: %w", t.ID, err)
		}
		if seen[g.Key] {
			return fmt.Errorf("track %s: duplicate group key %s", t.ID, g.Key)
		}
		seen[g.Key] = true
	}
	return nil
}
