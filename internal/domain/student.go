package domain

import "fmt"

// CompletedCourse is one row of a student's append-only course history.
// Transfer credits may reference courses outside the catalog; they count
// toward GPA but never toward requirement slots.
type CompletedCourse struct {
	CourseID string `json:"course_id"`
	Grade    Grade  `json:"grade"`
	Term     Term   `json:"term"`
}

// Validate checks one history row.
func (c CompletedCourse) Validate() error {
	if !ValidCourseID(c.CourseID) {
		return fmt.Errorf("completed course: invalid course id %q", c.CourseID)
	}
	if !c.Grade.Valid() {
		return fmt.Errorf("completed course %s: invalid grade %q", c.CourseID, c.Grade)
	}
	if err := c.Term.Validate(); err != nil {
		return fmt.Errorf("completed course %s: %w", c.CourseID, err)
	}
	return nil
}

// Constraints bound a single planning run.
type Constraints struct {
	StartTerm             Term `json:"start_term"`
	MaxCreditsPerSemester int  `json:"max_credits_per_semester"`
	MaxSemesters          int  `json:"max_semesters"`
	SummerAllowed         bool `json:"summer_allowed"`
}

// DefaultConstraints returns the constraints applied when a student has
// none stored: a 15-credit cap over at most 8 semesters, no summers.
func DefaultConstraints(start Term) Constraints {
	return Constraints{
		StartTerm:             start,
		MaxCreditsPerSemester: 15,
		MaxSemesters:          8,
		SummerAllowed:         false,
	}
}

// Validate checks the constraint bounds.
func (c Constraints) Validate() error {
	if err := c.StartTerm.Validate(); err != nil {
		return fmt.Errorf("constraints: start term: %w", err)
	}
	if c.MaxCreditsPerSemester < 1 {
		return fmt.Errorf("constraints: max credits per semester must be at least 1, got %d", c.MaxCreditsPerSemester)
	}
	if c.MaxSemesters < 1 {
		return fmt.Errorf("constraints: max semesters must be at least 1, got %d", c.MaxSemesters)
	}
	return nil
}

// StudentProfile is the planning snapshot of one student. TrackID may be
// empty when no specialization has been declared yet.
type StudentProfile struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	TrackID     string            `json:"track_id,omitempty"`
	Completed   []CompletedCourse `json:"completed"`
	InProgress  []string          `json:"in_progress"`
	Constraints Constraints       `json:"constraints"`
}

// HasTaken reports whether the course appears in the student's completed
// history or current enrollment, regardless of grade.
func (s StudentProfile) HasTaken(courseID string) bool {
	for _, c := range s.Completed {
		if c.CourseID == courseID {
			return true
		}
	}
	for _, id := range s.InProgress {
		if id == courseID {
			return true
		}
	}
	return false
}

// BestGrades collapses the history to the best grade per course. Retakes
// keep whichever attempt scored higher on the ordinal scale.
func (s StudentProfile) BestGrades() map[string]Grade {
	best := make(map[string]Grade, len(s.Completed))
	for _, c := range s.Completed {
		if cur, ok := best[c.CourseID]; !ok || c.Grade.Points() > cur.Points() {
			best[c.CourseID] = c.Grade
		}
	}
	return best
}

// GPA computes the credit-weighted grade point average over the best
// attempt per course, using credit hours from the catalog lookup. Courses
// missing from the lookup (transfer credits) weigh in at the default
// three hours.
func (s StudentProfile) GPA(credits func(courseID string) (int, bool)) float64 {
	best := s.BestGrades()
	var points float64
	var hours int
	for id, g := range best {
		h, ok := credits(id)
		if !ok {
			h = 3
		}
		points += g.Points() * float64(h)
		hours += h
	}
	if hours == 0 {
		return 0
	}
	return points / float64(hours)
}

// Validate checks the profile's structural invariants. Duplicate course
// ids in Completed are allowed (retakes); duplicates in InProgress are
// not.
func (s StudentProfile) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("student: id is required")
	}
	if s.Name == "" {
		return fmt.Errorf("student %s: name is required", s.ID)
	}
	for _, c := range s.Completed {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("student %s: %w", s.ID, err)
		}
	}
	seen := map[string]bool{}
	for _, id := range s.InProgress {
		if !ValidCourseID(id) {
			return fmt.Errorf("student %s: invalid in-progress course id %q", s.ID, id)
		}
		if seen[id] {
			return fmt.Errorf("student %s: duplicate in-progress course %s", s.ID, id)
		}
		seen[id] = true
	}
	if err := s.Constraints.Validate(); err != nil {
		return fmt.Errorf("student %s: %w", s.ID, err)
	}
	return nil
}
