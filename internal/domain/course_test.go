package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCourse() Course {
	return Course{
		ID:          "CS18000",
		Title:       "Problem Solving and Object-Oriented Programming",
		CreditHours: 4,
		Level:       100,
		Seasons:     []Season{SeasonFall, SeasonSpring},
	}
}

func TestValidCourseID(t *testing.T) {
	cases := []struct {
		id string
		ok bool
	}{
		{"CS18000", true},
		{"MA26100", true},
		{"STAT35000", true},
		{"cs18000", false},
		{"CS", false},
		{"18000", false},
		{"C18000", false},
		{"CS18000X", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, ValidCourseID(tc.id), "id=%s", tc.id)
	}
}

func TestCourseOfferedIn(t *testing.T) {
	c := validCourse()
	assert.True(t, c.OfferedIn(SeasonFall))
	assert.True(t, c.OfferedIn(SeasonSpring))
	assert.False(t, c.OfferedIn(SeasonSummer))
}

func TestCourseValidate_OK(t *testing.T) {
	require.NoError(t, validCourse().Validate())
}

func TestCourseValidate_Errors(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Course)
		wantMsg string
	}{
		{"bad id", func(c *Course) { c.ID = "x" }, "not a valid identifier"},
		{"no title", func(c *Course) { c.Title = "" }, "title is required"},
		{"zero credits", func(c *Course) { c.CreditHours = 0 }, "credit hours"},
		{"negative credits", func(c *Course) { c.CreditHours = -3 }, "credit hours"},
		{"zero level", func(c *Course) { c.Level = 0 }, "level"},
		{"odd level", func(c *Course) { c.Level = 150 }, "level"},
		{"no seasons", func(c *Course) { c.Seasons = nil }, "season"},
		{"bad season", func(c *Course) { c.Seasons = []Season{"winter"} }, "invalid season"},
		{"dup season", func(c *Course) { c.Seasons = []Season{SeasonFall, SeasonFall} }, "duplicate season"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := validCourse()
			tc.mutate(&c)
			err := c.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantMsg)
		})
	}
}
