package domain

import (
	"fmt"
	"regexp"
)

// courseIDPattern matches catalog identifiers like "CS18000" or "MA26100":
// a department prefix followed by the course number.
var courseIDPattern = regexp.MustCompile(`^[A-Z]{2,5}[0-9]{3,5}$`)

// ValidCourseID reports whether id is a well-formed catalog identifier.
func ValidCourseID(id string) bool {
	return courseIDPattern.MatchString(id)
}

// Course is a single catalog entry. Level is the numeric tier of the
// course number (100, 200, ...) used for cohort alignment.
type Course struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	CreditHours int      `json:"credit_hours"`
	Level       int      `json:"level"`
	Capstone    bool     `json:"capstone,omitempty"`
	Seasons     []Season `json:"seasons"`
}

// OfferedIn reports whether the course runs in the given season.
func (c Course) OfferedIn(season Season) bool {
	for _, s := range c.Seasons {
		if s == season {
			return true
		}
	}
	return false
}

// Validate checks the structural invariants of a catalog entry.
func (c Course) Validate() error {
	if !ValidCourseID(c.ID) {
		return fmt.Errorf("course id %q is not a valid identifier", c.ID)
	}
	if c.Title == "" {
		return fmt.Errorf("course %s: title is required", c.ID)
	}
	if c.CreditHours <= 0 {
		return fmt.Errorf("course %s: credit hours must be positive, got %d", c.ID, c.CreditHours)
	}
	if c.Level <= 0 || c.Level%100 != 0 {
		return fmt.Errorf("course %s: level must be a positive multiple of 100, got %d", c.ID, c.Level)
	}
	if len(c.Seasons) == 0 {
		return fmt.Errorf("course %s: at least one offered season is required", c.ID)
	}
	seen := map[Season]bool{}
	for _, s := range c.Seasons {
		if !s.Valid() {
			return fmt.Errorf("course %s: invalid season %q", c.ID, s)
		}
		if seen[s] {
			return fmt.Errorf("course %s: duplicate season %q", c.ID, s)
		}
		seen[s] = true
	}
	return nil
}
