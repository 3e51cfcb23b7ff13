package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/degreekit/advisor/internal/app"
	"github.com/degreekit/advisor/internal/db"
)

// SQLitePlanRunRepo implements PlanRunRepo using a SQLite database. The
// Plan artifact is stored as its JSON encoding; the columns duplicate
// only what listings need.
type SQLitePlanRunRepo struct {
	db db.DBTX
}

// NewSQLitePlanRunRepo creates a new SQLitePlanRunRepo.
func NewSQLitePlanRunRepo(conn db.DBTX) *SQLitePlanRunRepo {
	return &SQLitePlanRunRepo{db: conn}
}

func (r *SQLitePlanRunRepo) Create(ctx context.Context, run *app.PlanRun) error {
	encoded, err := json.Marshal(run.Plan)
	if err != nil {
		return fmt.Errorf("encoding plan: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO plan_runs (id, student_id, track_id, generated_at, status, is_valid, plan_json)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.StudentID, run.TrackID,
		run.GeneratedAt.UTC().Format(time.RFC3339),
		string(run.Plan.Status), boolToInt(run.Plan.IsValid), string(encoded),
	)
	if err != nil {
		return fmt.Errorf("inserting plan run: %w", err)
	}
	return nil
}

func (r *SQLitePlanRunRepo) GetByID(ctx context.Context, id string) (*app.PlanRun, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, student_id, track_id, generated_at, plan_json FROM plan_runs WHERE id = ?`, id)

	run, err := scanPlanRun(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("plan run %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return run, nil
}

func (r *SQLitePlanRunRepo) ListByStudent(ctx context.Context, studentID string) ([]app.PlanRun, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, student_id, track_id, generated_at, plan_json FROM plan_runs
		 WHERE student_id = ? ORDER BY generated_at DESC, id`, studentID)
	if err != nil {
		return nil, fmt.Errorf("listing plan runs: %w", err)
	}
	defer rows.Close()

	var runs []app.PlanRun
	for rows.Next() {
		run, err := scanPlanRun(rows.Scan)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plan runs: %w", err)
	}
	return runs, nil
}

func scanPlanRun(scan func(dest ...any) error) (*app.PlanRun, error) {
	var run app.PlanRun
	var generatedAt, planJSON string
	if err := scan(&run.ID, &run.StudentID, &run.TrackID, &generatedAt, &planJSON); err != nil {
		return nil, err
	}
	t, err := time.Parse(time.RFC3339, generatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing generated_at: %w", err)
	}
	run.GeneratedAt = t
	var plan app.Plan
	if err := json.Unmarshal([]byte(planJSON), &plan); err != nil {
		return nil, fmt.Errorf("decoding plan: %w", err)
	}
	run.Plan = &plan
	return &run, nil
}
