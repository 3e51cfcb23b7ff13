package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fall2026() Term { return Term{Season: SeasonFall, Year: 2026} }

func TestStudentHasTaken(t *testing.T) {
	s := StudentProfile{
		Completed:  []CompletedCourse{{CourseID: "CS18000", Grade: GradeA, Term: fall2026()}},
		InProgress: []string{"CS18200"},
	}
	assert.True(t, s.HasTaken("CS18000"))
	assert.True(t, s.HasTaken("CS18200"))
	assert.False(t, s.HasTaken("CS24000"))
}

func TestBestGrades_RetakeKeepsBest(t *testing.T) {
	s := StudentProfile{Completed: []CompletedCourse{
		{CourseID: "CS18000", Grade: GradeD, Term: Term{Season: SeasonFall, Year: 2025}},
		{CourseID: "CS18000", Grade: GradeB, Term: Term{Season: SeasonSpring, Year: 2026}},
		{CourseID: "MA16100", Grade: GradeA, Term: Term{Season: SeasonFall, Year: 2025}},
	}}
	best := s.BestGrades()
	assert.Equal(t, GradeB, best["CS18000"])
	assert.Equal(t, GradeA, best["MA16100"])
	assert.Len(t, best, 2)
}

func TestBestGrades_RetakeOrderIndependent(t *testing.T) {
	s := StudentProfile{Completed: []CompletedCourse{
		{CourseID: "CS18000", Grade: GradeB, Term: Term{Season: SeasonSpring, Year: 2026}},
		{CourseID: "CS18000", Grade: GradeD, Term: Term{Season: SeasonFall, Year: 2025}},
	}}
	assert.Equal(t, GradeB, s.BestGrades()["CS18000"])
}

func TestGPA_CreditWeighted(t *testing.T) {
	s := StudentProfile{Completed: []CompletedCourse{
		{CourseID: "CS18000", Grade: GradeA, Term: fall2026()},  // 4cr, 4.0
		{CourseID: "MA16100", Grade: GradeC, Term: fall2026()},  // 5cr, 2.0
	}}
	credits := func(id string) (int, bool) {
		switch id {
		case "CS18000":
			return 4, true
		case "MA16100":
			return 5, true
		}
		return 0, false
	}
	// (4*4.0 + 5*2.0) / 9
	assert.InDelta(t, 26.0/9.0, s.GPA(credits), 1e-9)
}

func TestGPA_TransferCreditDefaultsToThreeHours(t *testing.T) {
	s := StudentProfile{Completed: []CompletedCourse{
		{CourseID: "XFER10100", Grade: GradeA, Term: fall2026()},
	}}
	none := func(string) (int, bool) { return 0, false }
	assert.InDelta(t, 4.0, s.GPA(none), 1e-9)
}

func TestGPA_EmptyHistory(t *testing.T) {
	var s StudentProfile
	assert.Zero(t, s.GPA(func(string) (int, bool) { return 3, true }))
}

func TestDefaultConstraints(t *testing.T) {
	c := DefaultConstraints(fall2026())
	assert.Equal(t, fall2026(), c.StartTerm)
	assert.Equal(t, 15, c.MaxCreditsPerSemester)
	assert.Equal(t, 8, c.MaxSemesters)
	assert.False(t, c.SummerAllowed)
	require.NoError(t, c.Validate())
}

func TestConstraintsValidate_Errors(t *testing.T) {
	c := DefaultConstraints(fall2026())
	c.MaxCreditsPerSemester = 0
	require.Error(t, c.Validate())

	c = DefaultConstraints(fall2026())
	c.MaxSemesters = 0
	require.Error(t, c.Validate())

	c = DefaultConstraints(Term{})
	require.Error(t, c.Validate())
}

func TestStudentValidate_OK(t *testing.T) {
	s := StudentProfile{
		ID:          "c2f1b1ce-3bd8-4c2a-9d3e-2f6b8a1c0d44",
		Name:        "Ada",
		Completed:   []CompletedCourse{{CourseID: "CS18000", Grade: GradeA, Term: fall2026()}},
		InProgress:  []string{"CS18200"},
		Constraints: DefaultConstraints(fall2026()),
	}
	require.NoError(t, s.Validate())
}

func TestStudentValidate_DuplicateInProgress(t *testing.T) {
	s := StudentProfile{
		ID:          "id",
		Name:        "Ada",
		InProgress:  []string{"CS18200", "CS18200"},
		Constraints: DefaultConstraints(fall2026()),
	}
	err := s.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate in-progress")
}

func TestStudentValidate_RetakesAllowed(t *testing.T) {
	s := StudentProfile{
		ID:   "id",
		Name: "Ada",
		Completed: []CompletedCourse{
			{CourseID: "CS18000", Grade: GradeF, Term: Term{Season: SeasonFall, Year: 2025}},
			{CourseID: "CS18000", Grade: GradeB, Term: Term{Season: SeasonSpring, Year: 2026}},
		},
		Constraints: DefaultConstraints(fall2026()),
	}
	require.NoError(t, s.Validate())
}
