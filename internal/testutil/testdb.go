package testutil

import (
	"database/sql"
	"testing"

	"github.com/degreekit/advisor/internal/db"
)

// NewTestDB opens an in-memory SQLite database with the full advisor schema
// migrated, closed automatically when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestUoW wraps the test database in a real unit of work.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
