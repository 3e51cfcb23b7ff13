package formatter

import (
	"fmt"
	"strings"

	"github.com/degreekit/advisor/internal/app"
	"github.com/degreekit/advisor/internal/domain"
)

// FormatExplain renders the eligibility detail for one course.
func FormatExplain(report *app.ExplainReport) string {
	var b strings.Builder

	b.WriteString(StyleBlue.Render(report.CourseID) + "  " + Bold(report.Title) + "\n")
	detail := fmt.Sprintf("%s, level %d, offered %s", Credits(report.Credits), report.Level, strings.Join(report.Seasons, "/"))
	if report.Capstone {
		detail += ", capstone"
	}
	b.WriteString(Dim(detail) + "\n\n")

	switch {
	case report.Completed:
		b.WriteString(fmt.Sprintf("%s completed with grade %s\n", CheckMark(true), GradeStyled(domain.Grade(report.Grade))))
	case report.InProgress:
		b.WriteString(StyleYellow.Render("◐ currently enrolled") + "\n")
	case report.PrereqsMet:
		b.WriteString(CheckMark(true) + " prerequisites satisfied\n")
	default:
		b.WriteString(CheckMark(false) + " prerequisites not yet satisfied\n")
	}

	if report.RuleKind != "" {
		b.WriteString("\n" + Header("Prerequisites") + "\n")
		label := "all of the following"
		if report.RuleKind == string(domain.RuleOneOf) {
			label = "any one of the following"
		}
		b.WriteString(Dim(fmt.Sprintf("%s, minimum grade %s:", label, report.MinGrade)) + "\n")
		for _, term := range report.Terms {
			members := make([]string, len(term.Members))
			for i, id := range term.Members {
				if contains(term.Missing, id) {
					members[i] = StyleRed.Render(id)
				} else {
					members[i] = StyleGreen.Render(id)
				}
			}
			b.WriteString(fmt.Sprintf("  %s %s\n", CheckMark(term.Satisfied), strings.Join(members, " + ")))
		}
	}

	b.WriteString("\n")
	if report.Bottleneck {
		b.WriteString(StyleRed.Render(fmt.Sprintf("▲ bottleneck: unlocks %d downstream courses", report.DownstreamDegree)) + "\n")
	} else if report.DownstreamDegree > 0 {
		b.WriteString(Dim(fmt.Sprintf("Unlocks %d downstream course(s)", report.DownstreamDegree)) + "\n")
	}
	if len(report.Groups) > 0 {
		b.WriteString(Dim("Counts toward: ") + StylePurple.Render(strings.Join(report.Groups, ", ")) + "\n")
	}

	return RenderBox("Explain", strings.TrimRight(b.String(), "\n"))
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
