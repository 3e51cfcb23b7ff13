package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/degreekit/advisor/internal/app"
)

func TestFormatAudit_DeclaredTrack(t *testing.T) {
	report := &app.AuditReport{
		StudentID:        "stu-12345678",
		StudentName:      "Dana Osei",
		TrackID:          "machine-intelligence",
		TrackName:        "Machine Intelligence",
		GPA:              3.71,
		CreditsEarned:    24,
		CoursesCompleted: 7,
		InProgress:       []string{"CS25100"},
		Groups: []app.GroupAudit{
			{Key: "foundations", Kind: "required", Need: 3, Satisfied: 3, Missing: 0},
			{Key: "mi-electives", Kind: "elective", Need: 2, Satisfied: 0, Missing: 2, Options: []string{"CS37300", "CS30700"}},
		},
		OutstandingSlots: 2,
	}

	out := FormatAudit(report)

	assert.Contains(t, out, "Dana Osei")
	assert.Contains(t, out, "Machine Intelligence")
	assert.Contains(t, out, "3.71")
	assert.Contains(t, out, "3/3 ✔")
	assert.Contains(t, out, "0/2")
	assert.Contains(t, out, "CS37300, CS30700")
	assert.Contains(t, out, "2 requirement slot(s) still open")
	assert.Contains(t, out, "In progress: CS25100")
}

func TestFormatAudit_NoTrack(t *testing.T) {
	report := &app.AuditReport{
		StudentID:   "stu-1",
		StudentName: "Lee Santos",
		GPA:         2.5,
	}

	out := FormatAudit(report)
	assert.Contains(t, out, "No track declared")
	assert.NotContains(t, out, "Requirement groups")
}

func TestFormatAudit_CompleteTrack(t *testing.T) {
	report := &app.AuditReport{
		StudentName: "Noa Brandt",
		TrackName:   "Software Engineering",
		Groups: []app.GroupAudit{
			{Key: "se-core", Kind: "required", Need: 2, Satisfied: 2},
		},
		Complete: true,
	}

	out := FormatAudit(report)
	assert.Contains(t, out, "All requirement groups satisfied")
}
