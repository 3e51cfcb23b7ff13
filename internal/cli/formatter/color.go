package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/degreekit/advisor/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// SetColorEnabled strips every style down to plain text when disabled.
// Called once at startup based on terminal detection; not safe to call
// concurrently with rendering.
func SetColorEnabled(enabled bool) {
	if enabled {
		return
	}
	plain := lipgloss.NewStyle()
	StyleGreen = plain
	StyleYellow = plain
	StyleRed = plain
	StyleBlue = plain
	StylePurple = plain
	StyleDim = plain
	StyleFg = plain
	StyleHeader = plain
	StyleBold = plain
}

// StatusIndicator returns a colored plan status string such as "● COMPLETE".
func StatusIndicator(status domain.PlanStatus) string {
	switch status {
	case domain.PlanComplete:
		return StyleGreen.Render("● COMPLETE")
	case domain.PlanCapped:
		return StyleYellow.Render("◐ CAPPED")
	case domain.PlanBlocked:
		return StyleRed.Render("■ BLOCKED")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// GradeStyled colors a letter grade by how comfortably it passes.
func GradeStyled(g domain.Grade) string {
	switch {
	case g.AtLeast(domain.GradeB):
		return StyleGreen.Render(string(g))
	case g.AtLeast(domain.DefaultMinGrade):
		return StyleYellow.Render(string(g))
	default:
		return StyleRed.Render(string(g))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
