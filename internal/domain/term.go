package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Term is an academic term identified by season and calendar year.
type Term struct {
	Season Season `json:"season"`
	Year   int    `json:"year"`
}

// Label renders the term for display, e.g. "Fall 2026".
func (t Term) Label() string {
	return fmt.Sprintf("%s %d", t.Season.Label(), t.Year)
}

// Key renders the term in the compact machine form "fall-2026" used in
// transcripts and plan artifacts.
func (t Term) Key() string {
	return fmt.Sprintf("%s-%d", t.Season, t.Year)
}

// IsZero reports whether the term is unset.
func (t Term) IsZero() bool {
	return t.Season == "" && t.Year == 0
}

// Next advances one term. Fall rolls into Spring of the following year.
// Summer is only visited when summerAllowed is set; otherwise Spring
// rolls straight into Fall of the same year.
func (t Term) Next(summerAllowed bool) Term {
	switch t.Season {
	case SeasonFall:
		return Term{Season: SeasonSpring, Year: t.Year + 1}
	case SeasonSpring:
		if summerAllowed {
			return Term{Season: SeasonSummer, Year: t.Year}
		}
		return Term{Season: SeasonFall, Year: t.Year}
	case SeasonSummer:
		return Term{Season: SeasonFall, Year: t.Year}
	}
	return t
}

// Validate checks the term carries a real season and a plausible year.
func (t Term) Validate() error {
	if !t.Season.Valid() {
		return fmt.Errorf("invalid season %q", t.Season)
	}
	if t.Year < 1900 || t.Year > 2200 {
		return fmt.Errorf("invalid year %d", t.Year)
	}
	return nil
}

// ParseTerm parses the compact form produced by Key, e.g. "fall-2026".
func ParseTerm(s string) (Term, error) {
	parts := strings.SplitN(strings.TrimSpace(s), "-", 2)
	if len(parts) != 2 {
		return Term{}, fmt.Errorf("invalid term %q: want <season>-<year>", s)
	}
	season := Season(strings.ToLower(parts[0]))
	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return Term{}, fmt.Errorf("invalid term %q: %w", s, err)
	}
	t := Term{Season: season, Year: year}
	if err := t.Validate(); err != nil {
		return Term{}, fmt.Errorf("invalid term %q: %w", s, err)
	}
	return t, nil
}
