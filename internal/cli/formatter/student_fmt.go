package formatter

import (
	"fmt"
	"strings"

	"github.com/degreekit/advisor/internal/domain"
)

// FormatStudentList renders all students as a table.
func FormatStudentList(students []domain.StudentProfile) string {
	if len(students) == 0 {
		return Dim("No students yet. Create one with 'advisor student create'.")
	}

	headers := []string{"ID", "NAME", "TRACK", "COMPLETED", "IN PROGRESS"}
	rows := make([][]string, 0, len(students))
	for _, s := range students {
		track := Dim("--")
		if s.TrackID != "" {
			track = StylePurple.Render(s.TrackID)
		}
		rows = append(rows, []string{
			TruncID(s.ID),
			Bold(s.Name),
			track,
			fmt.Sprintf("%d", len(s.Completed)),
			fmt.Sprintf("%d", len(s.InProgress)),
		})
	}
	return strings.TrimRight(RenderTable(headers, rows), "\n")
}

// FormatStudent renders one student's profile, history and constraints.
func FormatStudent(s *domain.StudentProfile) string {
	var b strings.Builder

	b.WriteString(Bold(s.Name) + "  " + Dim(s.ID) + "\n")
	if s.TrackID != "" {
		b.WriteString(Dim("Track: ") + StylePurple.Render(s.TrackID) + "\n")
	} else {
		b.WriteString(Dim("No track declared") + "\n")
	}

	c := s.Constraints
	b.WriteString(Dim(fmt.Sprintf("Constraints: start %s, %d cr/semester, %d semesters max, summers %s",
		c.StartTerm.Label(), c.MaxCreditsPerSemester, c.MaxSemesters, onOff(c.SummerAllowed))) + "\n")

	if len(s.Completed) > 0 {
		b.WriteString("\n" + Header("Completed") + "\n")
		headers := []string{"COURSE", "GRADE", "TERM"}
		rows := make([][]string, 0, len(s.Completed))
		for _, row := range s.Completed {
			rows = append(rows, []string{
				StyleBlue.Render(row.CourseID),
				GradeStyled(row.Grade),
				row.Term.Label(),
			})
		}
		b.WriteString(RenderTable(headers, rows))
	}

	if len(s.InProgress) > 0 {
		b.WriteString("\n" + Dim("In progress: ") + strings.Join(s.InProgress, ", ") + "\n")
	}

	return RenderBox("Student", strings.TrimRight(b.String(), "\n"))
}

func onOff(v bool) string {
	if v {
		return "allowed"
	}
	return "off"
}
