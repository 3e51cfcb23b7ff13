package formatter

import (
	"fmt"
	"strings"

	"github.com/degreekit/advisor/internal/app"
)

// FormatHistory renders saved plan runs newest first.
func FormatHistory(runs []app.PlanRun) string {
	if len(runs) == 0 {
		return Dim("No saved plan runs.")
	}

	headers := []string{"RUN", "GENERATED", "TRACK", "STATUS", "SEMESTERS", "CREDITS"}
	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		track := Dim("--")
		if run.TrackID != "" {
			track = StylePurple.Render(run.TrackID)
		}
		rows = append(rows, []string{
			TruncID(run.ID),
			HumanTimestamp(run.GeneratedAt),
			track,
			StatusIndicator(run.Plan.Status),
			fmt.Sprintf("%d", len(run.Plan.Semesters)),
			fmt.Sprintf("%d", run.Plan.TotalCredits()),
		})
	}
	return strings.TrimRight(RenderTable(headers, rows), "\n")
}
