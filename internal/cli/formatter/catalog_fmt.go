package formatter

import (
	"fmt"
	"strings"

	"github.com/degreekit/advisor/internal/domain"
)

// FormatCourseList renders the catalog as a table.
func FormatCourseList(courses []domain.Course) string {
	if len(courses) == 0 {
		return Dim("Catalog is empty. Load one with 'advisor catalog load'.")
	}

	headers := []string{"COURSE", "TITLE", "CREDITS", "LEVEL", "SEASONS"}
	rows := make([][]string, 0, len(courses))
	for _, c := range courses {
		title := c.Title
		if c.Capstone {
			title += " " + StylePurple.Render("[capstone]")
		}
		rows = append(rows, []string{
			StyleBlue.Render(c.ID),
			title,
			fmt.Sprintf("%d", c.CreditHours),
			fmt.Sprintf("%d", c.Level),
			SeasonList(c.Seasons),
		})
	}
	return strings.TrimRight(RenderTable(headers, rows), "\n")
}

// FormatTrackList renders available tracks with their group counts.
func FormatTrackList(tracks []domain.Track) string {
	if len(tracks) == 0 {
		return Dim("No tracks loaded.")
	}

	headers := []string{"TRACK", "NAME", "GROUPS", "SLOTS"}
	rows := make([][]string, 0, len(tracks))
	for _, t := range tracks {
		slots := 0
		for _, g := range t.Groups {
			slots += g.Need
		}
		rows = append(rows, []string{
			StylePurple.Render(t.ID),
			Bold(t.Name),
			fmt.Sprintf("%d", len(t.Groups)),
			fmt.Sprintf("%d", slots),
		})
	}
	return strings.TrimRight(RenderTable(headers, rows), "\n")
}

// FormatTrack renders one track's full requirement structure.
func FormatTrack(t *domain.Track) string {
	var b strings.Builder
	b.WriteString(Bold(t.Name) + "  " + Dim(t.ID) + "\n\n")

	for _, g := range t.Groups {
		b.WriteString(StyleHeader.Render(g.Key))
		b.WriteString(Dim(fmt.Sprintf("  (%s, need %d, min grade %s)", g.Kind, g.Need, g.EffectiveMinGrade())))
		b.WriteString("\n")
		for _, opt := range g.Options {
			if opt.IsPair() {
				members := opt.Members()
				b.WriteString(fmt.Sprintf("  %s %s\n",
					StyleBlue.Render(strings.Join(members, " + ")),
					Dim("(linked pair, one slot)")))
			} else {
				b.WriteString("  " + StyleBlue.Render(opt.Key()) + "\n")
			}
		}
		b.WriteString("\n")
	}
	return RenderBox("Track", strings.TrimRight(b.String(), "\n"))
}

// FormatCourse renders one catalog entry in detail.
func FormatCourse(c *domain.Course) string {
	var b strings.Builder
	b.WriteString(StyleBlue.Render(c.ID) + "  " + Bold(c.Title) + "\n")
	detail := fmt.Sprintf("%s, level %d, offered %s", Credits(c.CreditHours), c.Level, SeasonList(c.Seasons))
	if c.Capstone {
		detail += ", capstone"
	}
	b.WriteString(Dim(detail))
	return b.String()
}
