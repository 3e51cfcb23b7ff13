package domain

type Season string

const (
	SeasonFall   Season = "fall"
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
)

// AllSeasons is the canonical season order used everywhere a fixed
// iteration order matters.
var AllSeasons = []Season{SeasonFall, SeasonSpring, SeasonSummer}

// Valid reports whether s is one of the known seasons.
func (s Season) Valid() bool {
	switch s {
	case SeasonFall, SeasonSpring, SeasonSummer:
		return true
	}
	return false
}

// Label returns the season with a leading capital, e.g. "Fall".
func (s Season) Label() string {
	switch s {
	case SeasonFall:
		return "Fall"
	case SeasonSpring:
		return "Spring"
	case SeasonSummer:
		return "Summer"
	}
	return string(s)
}

type RuleKind string

const (
	RuleAllOf RuleKind = "allof"
	RuleOneOf RuleKind = "oneof"
)

func (k RuleKind) Valid() bool {
	return k == RuleAllOf || k == RuleOneOf
}

type GroupKind string

const (
	GroupRequired GroupKind = "required"
	GroupElective GroupKind = "elective"
)

func (k GroupKind) Valid() bool {
	return k == GroupRequired || k == GroupElective
}

// PlanStatus is the terminal state of a planning run.
type PlanStatus string

const (
	PlanComplete PlanStatus = "complete"
	PlanCapped   PlanStatus = "capped"
	PlanBlocked  PlanStatus = "blocked"
)
