package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is idempotent, so
// the full slice re-runs safely on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS courses (
		id           TEXT PRIMARY KEY,
		title        TEXT NOT NULL,
		credit_hours INTEGER NOT NULL CHECK(credit_hours > 0),
		level        INTEGER NOT NULL CHECK(level > 0),
		capstone     INTEGER NOT NULL DEFAULT 0,
		seasons      TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS prereq_rules (
		course_id TEXT PRIMARY KEY REFERENCES courses(id) ON DELETE CASCADE,
		kind      TEXT NOT NULL CHECK(kind IN ('allof','oneof')),
		terms     TEXT NOT NULL,
		min_grade TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS tracks (
		id   TEXT PRIMARY KEY,
		name TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS track_groups (
		track_id    TEXT NOT NULL REFERENCES tracks(id) ON DELETE CASCADE,
		group_key   TEXT NOT NULL,
		kind        TEXT NOT NULL CHECK(kind IN ('required','elective')),
		need        INTEGER NOT NULL CHECK(need > 0),
		min_grade   TEXT NOT NULL DEFAULT '',
		order_index INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (track_id, group_key)
	)`,

	`CREATE TABLE IF NOT EXISTS track_group_options (
		track_id    TEXT NOT NULL,
		group_key   TEXT NOT NULL,
		order_index INTEGER NOT NULL,
		course_a    TEXT NOT NULL,
		course_b    TEXT,
		PRIMARY KEY (track_id, group_key, order_index),
		FOREIGN KEY (track_id, group_key)
			REFERENCES track_groups(track_id, group_key) ON DELETE CASCADE
	)`,

	`CREATE TABLE IF NOT EXISTS students (
		id             TEXT PRIMARY KEY,
		name           TEXT NOT NULL,
		track_id       TEXT NOT NULL DEFAULT '',
		start_term     TEXT NOT NULL,
		max_credits    INTEGER NOT NULL CHECK(max_credits > 0),
		max_semesters  INTEGER NOT NULL CHECK(max_semesters > 0),
		summer_allowed INTEGER NOT NULL DEFAULT 0,
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS student_courses (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		student_id TEXT NOT NULL REFERENCES students(id) ON DELETE CASCADE,
		course_id  TEXT NOT NULL,
		grade      TEXT NOT NULL,
		term       TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_student_courses_student ON student_courses(student_id)`,

	`CREATE TABLE IF NOT EXISTS student_in_progress (
		student_id TEXT NOT NULL REFERENCES students(id) ON DELETE CASCADE,
		course_id  TEXT NOT NULL,
		PRIMARY KEY (student_id, course_id)
	)`,

	`CREATE TABLE IF NOT EXISTS plan_runs (
		id           TEXT PRIMARY KEY,
		student_id   TEXT NOT NULL REFERENCES students(id) ON DELETE CASCADE,
		track_id     TEXT NOT NULL DEFAULT '',
		generated_at TEXT NOT NULL,
		status       TEXT NOT NULL CHECK(status IN ('complete','capped','blocked')),
		is_valid     INTEGER NOT NULL,
		plan_json    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_plan_runs_student ON plan_runs(student_id)`,
}
