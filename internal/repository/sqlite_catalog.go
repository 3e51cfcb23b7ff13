package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/degreekit/advisor/internal/db"
	"github.com/degreekit/advisor/internal/domain"
)

// SQLiteCatalogRepo implements CatalogRepo using a SQLite database.
// Prerequisite terms are stored as a JSON-encoded [][]string per rule.
type SQLiteCatalogRepo struct {
	db db.DBTX
}

// NewSQLiteCatalogRepo creates a new SQLiteCatalogRepo.
func NewSQLiteCatalogRepo(conn db.DBTX) *SQLiteCatalogRepo {
	return &SQLiteCatalogRepo{db: conn}
}

func (r *SQLiteCatalogRepo) ReplaceAll(ctx context.Context, courses []domain.Course, rules []domain.PrereqRule) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM prereq_rules`); err != nil {
		return fmt.Errorf("clearing prereq rules: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM courses`); err != nil {
		return fmt.Errorf("clearing courses: %w", err)
	}

	for _, c := range courses {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO courses (id, title, credit_hours, level, capstone, seasons) VALUES (?, ?, ?, ?, ?, ?)`,
			c.ID, c.Title, c.CreditHours, c.Level, boolToInt(c.Capstone), joinSeasons(c.Seasons),
		)
		if err != nil {
			return fmt.Errorf("inserting course %s: %w", c.ID, err)
		}
	}

	for _, rule := range rules {
		terms, err := json.Marshal(rule.Terms)
		if err != nil {
			return fmt.Errorf("encoding terms for %s: %w", rule.Course, err)
		}
		_, err = r.db.ExecContext(ctx,
			`INSERT INTO prereq_rules (course_id, kind, terms, min_grade) VALUES (?, ?, ?, ?)`,
			rule.Course, string(rule.Kind), string(terms), string(rule.MinGrade),
		)
		if err != nil {
			return fmt.Errorf("inserting prereq rule for %s: %w", rule.Course, err)
		}
	}
	return nil
}

func (r *SQLiteCatalogRepo) ListCourses(ctx context.Context) ([]domain.Course, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, credit_hours, level, capstone, seasons FROM courses ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing courses: %w", err)
	}
	defer rows.Close()

	var courses []domain.Course
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating courses: %w", err)
	}
	return courses, nil
}

func (r *SQLiteCatalogRepo) GetCourse(ctx context.Context, id string) (*domain.Course, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, title, credit_hours, level, capstone, seasons FROM courses WHERE id = ?`, id)

	var c domain.Course
	var capstone int
	var seasons string
	err := row.Scan(&c.ID, &c.Title, &c.CreditHours, &c.Level, &capstone, &seasons)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("course %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning course: %w", err)
	}
	c.Capstone = intToBool(capstone)
	c.Seasons = splitSeasons(seasons)
	return &c, nil
}

func (r *SQLiteCatalogRepo) ListRules(ctx context.Context) ([]domain.PrereqRule, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT course_id, kind, terms, min_grade FROM prereq_rules ORDER BY course_id`)
	if err != nil {
		return nil, fmt.Errorf("listing prereq rules: %w", err)
	}
	defer rows.Close()

	var rules []domain.PrereqRule
	for rows.Next() {
		var rule domain.PrereqRule
		var kind, terms, minGrade string
		if err := rows.Scan(&rule.Course, &kind, &terms, &minGrade); err != nil {
			return nil, fmt.Errorf("scanning prereq rule: %w", err)
		}
		if err := json.Unmarshal([]byte(terms), &rule.Terms); err != nil {
			return nil, fmt.Errorf("decoding terms for %s: %w", rule.Course, err)
		}
		rule.Kind = domain.RuleKind(kind)
		rule.MinGrade = domain.Grade(minGrade)
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating prereq rules: %w", err)
	}
	return rules, nil
}

func (r *SQLiteCatalogRepo) CountCourses(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM courses`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting courses: %w", err)
	}
	return count, nil
}

func scanCourse(rows *sql.Rows) (domain.Course, error) {
	var c domain.Course
	var capstone int
	var seasons string
	if err := rows.Scan(&c.ID, &c.Title, &c.CreditHours, &c.Level, &capstone, &seasons); err != nil {
		return domain.Course{}, fmt.Errorf("scanning course: %w", err)
	}
	c.Capstone = intToBool(capstone)
	c.Seasons = splitSeasons(seasons)
	return c, nil
}
