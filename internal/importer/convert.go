package importer

import (
	"fmt"
	"time"

	"github.com/degreekit/advisor/internal/domain"
	"github.com/google/uuid"
)

// ConvertedCatalog is the domain form of a validated catalog file.
type ConvertedCatalog struct {
	Courses []domain.Course
	Rules   []domain.PrereqRule
	Tracks  []domain.Track
}

// ConvertCatalog translates a validated catalog file into domain types.
// Call ValidateCatalogFile first; conversion re-checks the domain-level
// invariants as a backstop but reports only the first failure.
func ConvertCatalog(f *CatalogFile) (*ConvertedCatalog, error) {
	out := &ConvertedCatalog{
		Courses: make([]domain.Course, 0, len(f.Courses)),
		Rules:   make([]domain.PrereqRule, 0, len(f.Prereqs)),
		Tracks:  make([]domain.Track, 0, len(f.Tracks)),
	}

	for _, c := range f.Courses {
		seasons := make([]domain.Season, 0, len(c.Seasons))
		for _, s := range c.Seasons {
			seasons = append(seasons, domain.Season(s))
		}
		course := domain.Course{
			ID:          c.ID,
			Title:       c.Title,
			CreditHours: c.Credits,
			Level:       c.Level,
			Capstone:    c.Capstone,
			Seasons:     seasons,
		}
		if err := course.Validate(); err != nil {
			return nil, err
		}
		out.Courses = append(out.Courses, course)
	}

	for _, p := range f.Prereqs {
		rule := domain.PrereqRule{
			Course:   p.Course,
			Kind:     domain.RuleKind(p.Kind),
			Terms:    p.Terms,
			MinGrade: domain.Grade(p.MinGrade),
		}
		if p.MinGrade != "" {
			g, err := domain.ParseGrade(p.MinGrade)
			if err != nil {
				return nil, fmt.Errorf("prereq rule for %s: %w", p.Course, err)
			}
			rule.MinGrade = g
		}
		if err := rule.Validate(); err != nil {
			return nil, err
		}
		out.Rules = append(out.Rules, rule)
	}

	for _, tr := range f.Tracks {
		track := domain.Track{ID: tr.ID, Name: tr.Name}
		for _, g := range tr.Groups {
			group := domain.RequirementGroup{
				Key:      g.Key,
				Kind:     domain.GroupKind(g.Kind),
				Need:     g.Need,
				MinGrade: domain.Grade(g.MinGrade),
			}
			for _, opt := range g.Options {
				if len(opt.Pair) == 2 {
					group.Options = append(group.Options, domain.Pair(opt.Pair[0], opt.Pair[1]))
				} else {
					group.Options = append(group.Options, domain.Single(opt.Course))
				}
			}
			track.Groups = append(track.Groups, group)
		}
		if err := track.Validate(); err != nil {
			return nil, err
		}
		out.Tracks = append(out.Tracks, track)
	}

	return out, nil
}

// ConvertTranscript translates a validated transcript into a student
// profile. A missing student id gets a fresh uuid; missing constraints
// fall back to the defaults starting the upcoming fall term.
func ConvertTranscript(f *TranscriptFile) (*domain.StudentProfile, error) {
	s := &domain.StudentProfile{
		ID:      f.Student.ID,
		Name:    f.Student.Name,
		TrackID: f.TrackID,
	}
	if s.ID == "" {
		s.ID = uuid.New().String()
	}

	for _, c := range f.Completed {
		grade, err := domain.ParseGrade(c.Grade)
		if err != nil {
			return nil, fmt.Errorf("completed course %s: %w", c.CourseID, err)
		}
		term, err := domain.ParseTerm(c.Term)
		if err != nil {
			return nil, fmt.Errorf("completed course %s: %w", c.CourseID, err)
		}
		s.Completed = append(s.Completed, domain.CompletedCourse{
			CourseID: c.CourseID,
			Grade:    grade,
			Term:     term,
		})
	}
	s.InProgress = append(s.InProgress, f.InProgress...)

	s.Constraints = domain.DefaultConstraints(domain.Term{Season: domain.SeasonFall, Year: time.Now().Year()})
	if c := f.Constraints; c != nil {
		if c.StartTerm != "" {
			term, err := domain.ParseTerm(c.StartTerm)
			if err != nil {
				return nil, fmt.Errorf("constraints: %w", err)
			}
			s.Constraints.StartTerm = term
		}
		if c.MaxCreditsPerSemester > 0 {
			s.Constraints.MaxCreditsPerSemester = c.MaxCreditsPerSemester
		}
		if c.MaxSemesters > 0 {
			s.Constraints.MaxSemesters = c.MaxSemesters
		}
		s.Constraints.SummerAllowed = c.SummerAllowed
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}
