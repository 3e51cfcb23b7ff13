package repository

import (
	"strings"
	"time"

	"github.com/degreekit/advisor/internal/domain"
)

// joinSeasons flattens a season set to its CSV storage form, e.g.
// "fall,spring".
func joinSeasons(seasons []domain.Season) string {
	parts := make([]string, 0, len(seasons))
	for _, s := range seasons {
		parts = append(parts, string(s))
	}
	return strings.Join(parts, ",")
}

// splitSeasons parses the CSV storage form back into a season set.
func splitSeasons(s string) []domain.Season {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	seasons := make([]domain.Season, 0, len(parts))
	for _, p := range parts {
		seasons = append(seasons, domain.Season(p))
	}
	return seasons
}

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
