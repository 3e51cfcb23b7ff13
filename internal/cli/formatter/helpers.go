package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/degreekit/advisor/internal/domain"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// TermLabel renders a term for display, dimming the zero term.
func TermLabel(t domain.Term) string {
	if t.IsZero() {
		return StyleDim.Render("--")
	}
	return StyleFg.Render(t.Label())
}

// SeasonList joins seasons in catalog order, e.g. "fall, spring".
func SeasonList(seasons []domain.Season) string {
	if len(seasons) == 0 {
		return Dim("--")
	}
	parts := make([]string, len(seasons))
	for i, s := range seasons {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}

// Credits renders a credit-hour count, e.g. "3 cr".
func Credits(hours int) string {
	return fmt.Sprintf("%d cr", hours)
}

// GPA renders a grade point average to two decimals.
func GPA(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// HumanTimestamp returns a human-friendly relative timestamp string.
func HumanTimestamp(t time.Time) string {
	now := time.Now()
	diff := now.Sub(t)

	switch {
	case diff < 0:
		return t.Format("Jan 2, 2006")
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return t.Format("Jan 2, 2006")
	}
}

// CheckMark renders a satisfied/unsatisfied marker.
func CheckMark(ok bool) string {
	if ok {
		return StyleGreen.Render("✔")
	}
	return StyleRed.Render("✘")
}
