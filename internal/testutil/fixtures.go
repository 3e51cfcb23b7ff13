package testutil

import (
	"github.com/degreekit/advisor/internal/domain"
	"github.com/google/uuid"
)

// SampleCatalog returns the compact CS catalog shared by integration
// tests: a foundation chain into the CS25200 gate course, a 300/400
// tier behind it, and a linked competitive-programming pair.
func SampleCatalog() []domain.Course {
	return []domain.Course{
		{ID: "CS18000", Title: "Problem Solving and Object-Oriented Programming", CreditHours: 4, Level: 100, Seasons: []domain.Season{domain.SeasonFall, domain.SeasonSpring}},
		{ID: "CS18200", Title: "Foundations of Computer Science", CreditHours: 3, Level: 100, Seasons: []domain.Season{domain.SeasonSpring}},
		{ID: "CS24000", Title: "Programming in C", CreditHours: 3, Level: 100, Seasons: []domain.Season{domain.SeasonFall, domain.SeasonSpring}},
		{ID: "CS25000", Title: "Computer Architecture", CreditHours: 4, Level: 200, Seasons: []domain.Season{domain.SeasonFall, domain.SeasonSpring}},
		{ID: "CS25100", Title: "Data Structures and Algorithms", CreditHours: 3, Level: 200, Seasons: []domain.Season{domain.SeasonFall, domain.SeasonSpring}},
		{ID: "CS25200", Title: "Systems Programming", CreditHours: 4, Level: 200, Seasons: []domain.Season{domain.SeasonFall, domain.SeasonSpring}},
		{ID: "CS30700", Title: "Software Engineering I", CreditHours: 3, Level: 300, Seasons: []domain.Season{domain.SeasonFall}},
		{ID: "CS31100", Title: "Competitive Programming I", CreditHours: 2, Level: 300, Seasons: []domain.Season{domain.SeasonFall}},
		{ID: "CS37300", Title: "Data Mining and Machine Learning", CreditHours: 3, Level: 300, Seasons: []domain.Season{domain.SeasonFall, domain.SeasonSpring}},
		{ID: "CS41100", Title: "Competitive Programming II", CreditHours: 2, Level: 400, Seasons: []domain.Season{domain.SeasonSpring}},
		{ID: "CS49000", Title: "Senior Software Project", CreditHours: 3, Level: 400, Capstone: true, Seasons: []domain.Season{domain.SeasonSpring}},
	}
}

// SampleRules returns the prerequisite rules matching SampleCatalog.
func SampleRules() []domain.PrereqRule {
	return []domain.PrereqRule{
		{Course: "CS18200", Kind: domain.RuleAllOf, Terms: [][]string{{"CS18000"}}},
		{Course: "CS24000", Kind: domain.RuleAllOf, Terms: [][]string{{"CS18000"}}},
		{Course: "CS25000", Kind: domain.RuleAllOf, Terms: [][]string{{"CS18200"}, {"CS24000"}}},
		{Course: "CS25100", Kind: domain.RuleAllOf, Terms: [][]string{{"CS18200"}, {"CS24000"}}},
		{Course: "CS25200", Kind: domain.RuleAllOf, Terms: [][]string{{"CS25000"}, {"CS25100"}}},
		{Course: "CS30700", Kind: domain.RuleAllOf, Terms: [][]string{{"CS25200"}}},
		{Course: "CS37300", Kind: domain.RuleOneOf, Terms: [][]string{{"CS25100"}, {"CS18200", "CS24000"}}},
		{Course: "CS41100", Kind: domain.RuleAllOf, Terms: [][]string{{"CS31100"}}},
		{Course: "CS49000", Kind: domain.RuleAllOf, Terms: [][]string{{"CS30700"}}},
	}
}

// SampleTracks returns the specialization tracks matching SampleCatalog.
// The machine-intelligence track carries the linked CS31100/CS41100 pair.
func SampleTracks() []domain.Track {
	return []domain.Track{
		{
			ID:   "machine-intelligence",
			Name: "Machine Intelligence",
			Groups: []domain.RequirementGroup{
				{Key: "foundations", Kind: domain.GroupRequired, Need: 3, Options: []domain.RequirementOption{
					domain.Single("CS18000"), domain.Single("CS18200"), domain.Single("CS24000"),
				}},
				{Key: "systems-core", Kind: domain.GroupRequired, Need: 3, Options: []domain.RequirementOption{
					domain.Single("CS25000"), domain.Single("CS25100"), domain.Single("CS25200"),
				}},
				{Key: "mi-electives", Kind: domain.GroupElective, Need: 2, Options: []domain.RequirementOption{
					domain.Single("CS37300"), domain.Single("CS30700"), domain.Pair("CS31100", "CS41100"),
				}},
				{Key: "capstone", Kind: domain.GroupRequired, Need: 1, Options: []domain.RequirementOption{
					domain.Single("CS49000"),
				}},
			},
		},
		{
			ID:   "software-engineering",
			Name: "Software Engineering",
			Groups: []domain.RequirementGroup{
				{Key: "se-core", Kind: domain.GroupRequired, Need: 2, Options: []domain.RequirementOption{
					domain.Single("CS25200"), domain.Single("CS30700"),
				}},
				{Key: "capstone", Kind: domain.GroupRequired, Need: 1, Options: []domain.RequirementOption{
					domain.Single("CS49000"),
				}},
			},
		},
	}
}

// StudentOption mutates a fixture student profile.
type StudentOption func(*domain.StudentProfile)

func WithTrack(trackID string) StudentOption {
	return func(s *domain.StudentProfile) {
		s.TrackID = trackID
	}
}

func WithCompleted(courseID string, grade domain.Grade, term domain.Term) StudentOption {
	return func(s *domain.StudentProfile) {
		s.Completed = append(s.Completed, domain.CompletedCourse{CourseID: courseID, Grade: grade, Term: term})
	}
}

func WithInProgress(courseIDs ...string) StudentOption {
	return func(s *domain.StudentProfile) {
		s.InProgress = append(s.InProgress, courseIDs...)
	}
}

func WithConstraints(c domain.Constraints) StudentOption {
	return func(s *domain.StudentProfile) {
		s.Constraints = c
	}
}

// NewStudent builds a fixture student starting Fall 2026 with default
// constraints.
func NewStudent(name string, opts ...StudentOption) *domain.StudentProfile {
	s := &domain.StudentProfile{
		ID:          uuid.New().String(),
		Name:        name,
		Constraints: domain.DefaultConstraints(FallTerm(2026)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FallTerm is shorthand for a fall term in history fixtures.
func FallTerm(year int) domain.Term {
	return domain.Term{Season: domain.SeasonFall, Year: year}
}

// SpringTerm is shorthand for a spring term in history fixtures.
func SpringTerm(year int) domain.Term {
	return domain.Term{Season: domain.SeasonSpring, Year: year}
}
