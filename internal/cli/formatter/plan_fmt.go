package formatter

import (
	"fmt"
	"strings"

	"github.com/degreekit/advisor/internal/app"
)

// FormatPlan renders a plan run as the styled semester-by-semester view.
func FormatPlan(run *app.PlanRun) string {
	plan := run.Plan
	var b strings.Builder

	b.WriteString(StatusIndicator(plan.Status))
	if plan.TrackID != "" {
		b.WriteString(Dim("  track: ") + StylePurple.Render(plan.TrackID))
	}
	b.WriteString(Dim(fmt.Sprintf("  run: %s", shortID(run.ID))))
	b.WriteString("\n\n")

	for _, sem := range plan.Semesters {
		b.WriteString(Bold(fmt.Sprintf("Semester %d", sem.Index+1)))
		b.WriteString(Dim(" — " + sem.Label))
		b.WriteString(Dim(fmt.Sprintf("  (%d cr)", sem.TotalCredits)))
		b.WriteString("\n")

		if len(sem.Selections) == 0 {
			b.WriteString(Dim("  nothing eligible this term") + "\n")
		}
		for _, sel := range sem.Selections {
			marker := "  "
			if sel.CriticalPath {
				marker = StyleRed.Render("▲ ")
			}
			b.WriteString(fmt.Sprintf("  %s%s %s %s\n",
				marker,
				StyleBlue.Render(sel.CourseID),
				StyleFg.Render(sel.Title),
				Dim(fmt.Sprintf("(%d cr, %s)", sel.Credits, sel.Reason)),
			))
		}
		b.WriteString("\n")
	}

	b.WriteString(Dim(fmt.Sprintf("Total: %d credits over %d semesters",
		plan.TotalCredits(), len(plan.Semesters))) + "\n")

	if len(plan.UnmetTrackGroups) > 0 {
		b.WriteString("\n" + Header("Unmet requirements") + "\n")
		for _, g := range plan.UnmetTrackGroups {
			b.WriteString(fmt.Sprintf("  %s %s %s\n",
				StyleYellow.Render(g.Key),
				Dim(fmt.Sprintf("%d/%d", g.Satisfied, g.Need)),
				Dim("options: "+strings.Join(g.Options, ", ")),
			))
		}
	}

	if len(plan.Bottlenecks) > 0 {
		b.WriteString("\n" + Header("Bottlenecks") + "\n")
		for _, bn := range plan.Bottlenecks {
			b.WriteString(fmt.Sprintf("  %s %s\n",
				StyleRed.Render(bn.CourseID),
				Dim(fmt.Sprintf("unlocks %d courses", bn.DownstreamDegree)),
			))
		}
	}

	for _, adv := range plan.Advisories {
		b.WriteString("\n" + StyleYellow.Render("▸ "+adv.Message))
	}
	if len(plan.Advisories) > 0 {
		b.WriteString("\n")
	}

	return RenderBox("Plan", strings.TrimRight(b.String(), "\n"))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
