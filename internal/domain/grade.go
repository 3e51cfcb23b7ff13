package domain

import (
	"fmt"
	"strings"
)

// Grade is a letter grade on the fixed ordinal scale used for all
// minimum-grade comparisons.
type Grade string

const (
	GradeAPlus  Grade = "A+"
	GradeA      Grade = "A"
	GradeAMinus Grade = "A-"
	GradeBPlus  Grade = "B+"
	GradeB      Grade = "B"
	GradeBMinus Grade = "B-"
	GradeCPlus  Grade = "C+"
	GradeC      Grade = "C"
	GradeCMinus Grade = "C-"
	GradeDPlus  Grade = "D+"
	GradeD      Grade = "D"
	GradeDMinus Grade = "D-"
	GradeF      Grade = "F"

	// GradePlanned marks a course the simulator scheduled (or current
	// enrollment assumed to pass). It satisfies any minimum and is never
	// accepted from transcripts.
	GradePlanned Grade = "PLANNED"
)

// DefaultMinGrade is the minimum applied when a rule or requirement group
// does not set one.
const DefaultMinGrade = GradeC

var gradePoints = map[Grade]float64{
	GradeAPlus:  4.0,
	GradeA:      4.0,
	GradeAMinus: 3.7,
	GradeBPlus:  3.3,
	GradeB:      3.0,
	GradeBMinus: 2.7,
	GradeCPlus:  2.3,
	GradeC:      2.0,
	GradeCMinus: 1.7,
	GradeDPlus:  1.3,
	GradeD:      1.0,
	GradeDMinus: 0.7,
	GradeF:      0.0,
	// Assumed-pass: always clears a minimum.
	GradePlanned: 4.0,
}

// Points returns the 4.0-scale value for g. Unknown grades return -1 so
// that they never satisfy a minimum.
func (g Grade) Points() float64 {
	if p, ok := gradePoints[g]; ok {
		return p
	}
	return -1
}

// Valid reports whether g is a letter grade a transcript may carry.
// GradePlanned is internal and deliberately not valid here.
func (g Grade) Valid() bool {
	_, ok := gradePoints[g]
	return ok && g != GradePlanned
}

// AtLeast reports whether g meets the given minimum on the ordinal scale.
// An empty minimum falls back to DefaultMinGrade.
func (g Grade) AtLeast(min Grade) bool {
	if min == "" {
		min = DefaultMinGrade
	}
	return g.Points() >= min.Points()
}

// ParseGrade normalizes and validates a transcript grade string such as
// "b+" or "A-".
func ParseGrade(s string) (Grade, error) {
	g := Grade(strings.ToUpper(strings.TrimSpace(s)))
	if !g.Valid() {
		return "", fmt.Errorf("unknown grade %q", s)
	}
	return g, nil
}
