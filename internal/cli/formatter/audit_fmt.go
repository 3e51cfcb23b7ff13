package formatter

import (
	"fmt"
	"strings"

	"github.com/degreekit/advisor/internal/app"
)

// FormatAudit renders a requirement audit as the styled standing view.
func FormatAudit(report *app.AuditReport) string {
	var b strings.Builder

	b.WriteString(Bold(report.StudentName) + "  " + TruncID(report.StudentID) + "\n")
	if report.TrackName != "" {
		b.WriteString(Dim("Track: ") + StylePurple.Render(report.TrackName) + "\n")
	} else {
		b.WriteString(Dim("No track declared") + "\n")
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("%s %s   %s %d   %s %d\n",
		Dim("GPA"), Bold(GPA(report.GPA)),
		Dim("Credits"), report.CreditsEarned,
		Dim("Courses"), report.CoursesCompleted,
	))
	if len(report.InProgress) > 0 {
		b.WriteString(Dim("In progress: ") + strings.Join(report.InProgress, ", ") + "\n")
	}

	if len(report.Groups) > 0 {
		b.WriteString("\n" + Header("Requirement groups") + "\n")
		headers := []string{"GROUP", "KIND", "PROGRESS", "STILL NEEDED"}
		rows := make([][]string, 0, len(report.Groups))
		for _, g := range report.Groups {
			progress := fmt.Sprintf("%d/%d", g.Satisfied, g.Need)
			if g.Missing == 0 {
				progress = StyleGreen.Render(progress + " ✔")
			} else {
				progress = StyleYellow.Render(progress)
			}
			needed := Dim("--")
			if len(g.Options) > 0 {
				needed = strings.Join(g.Options, ", ")
			}
			rows = append(rows, []string{
				Bold(g.Key),
				Dim(g.Kind),
				progress,
				needed,
			})
		}
		b.WriteString(RenderTable(headers, rows))

		b.WriteString("\n")
		if report.Complete {
			b.WriteString(StyleGreen.Render("All requirement groups satisfied."))
		} else {
			b.WriteString(StyleYellow.Render(fmt.Sprintf("%d requirement slot(s) still open.", report.OutstandingSlots)))
		}
		b.WriteString("\n")
	}

	return RenderBox("Audit", strings.TrimRight(b.String(), "\n"))
}
