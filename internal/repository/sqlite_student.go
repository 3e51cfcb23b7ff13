package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/degreekit/advisor/internal/db"
	"github.com/degreekit/advisor/internal/domain"
)

// SQLiteStudentRepo implements StudentRepo using a SQLite database.
type SQLiteStudentRepo struct {
	db db.DBTX
}

// NewSQLiteStudentRepo creates a new SQLiteStudentRepo.
func NewSQLiteStudentRepo(conn db.DBTX) *SQLiteStudentRepo {
	return &SQLiteStudentRepo{db: conn}
}

func (r *SQLiteStudentRepo) Create(ctx context.Context, s *domain.StudentProfile) error {
	now := nowUTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO students (id, name, track_id, start_term, max_credits, max_semesters, summer_allowed, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.Name, s.TrackID, s.Constraints.StartTerm.Key(),
		s.Constraints.MaxCreditsPerSemester, s.Constraints.MaxSemesters,
		boolToInt(s.Constraints.SummerAllowed), now, now,
	)
	if err != nil {
		return fmt.Errorf("inserting student: %w", err)
	}
	if err := r.insertHistory(ctx, s); err != nil {
		return err
	}
	return nil
}

// Upsert writes the whole profile, replacing the stored history and
// in-progress sets. Used by transcript import, which owns the full
// snapshot.
func (r *SQLiteStudentRepo) Upsert(ctx context.Context, s *domain.StudentProfile) error {
	now := nowUTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO students (id, name, track_id, start_term, max_credits, max_semesters, summer_allowed, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			track_id = excluded.track_id,
			start_term = excluded.start_term,
			max_credits = excluded.max_credits,
			max_semesters = excluded.max_semesters,
			summer_allowed = excluded.summer_allowed,
			updated_at = excluded.updated_at`,
		s.ID, s.Name, s.TrackID, s.Constraints.StartTerm.Key(),
		s.Constraints.MaxCreditsPerSemester, s.Constraints.MaxSemesters,
		boolToInt(s.Constraints.SummerAllowed), now, now,
	)
	if err != nil {
		return fmt.Errorf("upserting student: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM student_courses WHERE student_id = ?`, s.ID); err != nil {
		return fmt.Errorf("clearing student history: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM student_in_progress WHERE student_id = ?`, s.ID); err != nil {
		return fmt.Errorf("clearing in-progress courses: %w", err)
	}
	return r.insertHistory(ctx, s)
}

func (r *SQLiteStudentRepo) insertHistory(ctx context.Context, s *domain.StudentProfile) error {
	for _, c := range s.Completed {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO student_courses (student_id, course_id, grade, term) VALUES (?, ?, ?, ?)`,
			s.ID, c.CourseID, string(c.Grade), c.Term.Key(),
		)
		if err != nil {
			return fmt.Errorf("inserting completed course %s: %w", c.CourseID, err)
		}
	}
	for _, id := range s.InProgress {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO student_in_progress (student_id, course_id) VALUES (?, ?)`, s.ID, id)
		if err != nil {
			return fmt.Errorf("inserting in-progress course %s: %w", id, err)
		}
	}
	return nil
}

func (r *SQLiteStudentRepo) GetByID(ctx context.Context, id string) (*domain.StudentProfile, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, track_id, start_term, max_credits, max_semesters, summer_allowed FROM students WHERE id = ?`, id)

	s, err := scanStudent(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("student %s: %w", id, ErrNotFound)
		}
		return nil, err
	}

	if err := r.loadHistory(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *SQLiteStudentRepo) List(ctx context.Context) ([]domain.StudentProfile, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, track_id, start_term, max_credits, max_semesters, summer_allowed FROM students ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("listing students: %w", err)
	}
	defer rows.Close()

	var students []domain.StudentProfile
	for rows.Next() {
		s, err := scanStudent(rows.Scan)
		if err != nil {
			return nil, err
		}
		students = append(students, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating students: %w", err)
	}

	for i := range students {
		if err := r.loadHistory(ctx, &students[i]); err != nil {
			return nil, err
		}
	}
	return students, nil
}

func (r *SQLiteStudentRepo) SetTrack(ctx context.Context, id, trackID string) error {
	return r.exec(ctx, id, `UPDATE students SET track_id = ?, updated_at = ? WHERE id = ?`, trackID, nowUTC(), id)
}

func (r *SQLiteStudentRepo) SetConstraints(ctx context.Context, id string, c domain.Constraints) error {
	return r.exec(ctx, id,
		`UPDATE students SET start_term = ?, max_credits = ?, max_semesters = ?, summer_allowed = ?, updated_at = ? WHERE id = ?`,
		c.StartTerm.Key(), c.MaxCreditsPerSemester, c.MaxSemesters, boolToInt(c.SummerAllowed), nowUTC(), id,
	)
}

func (r *SQLiteStudentRepo) AddCompletedCourse(ctx context.Context, id string, course domain.CompletedCourse) error {
	// Verify the student exists first; history rows are append-only.
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO student_courses (student_id, course_id, grade, term) VALUES (?, ?, ?, ?)`,
		id, course.CourseID, string(course.Grade), course.Term.Key(),
	)
	if err != nil {
		return fmt.Errorf("inserting completed course %s: %w", course.CourseID, err)
	}
	return nil
}

func (r *SQLiteStudentRepo) SetInProgress(ctx context.Context, id string, courseIDs []string) error {
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM student_in_progress WHERE student_id = ?`, id); err != nil {
		return fmt.Errorf("clearing in-progress courses: %w", err)
	}
	for _, courseID := range courseIDs {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO student_in_progress (student_id, course_id) VALUES (?, ?)`, id, courseID)
		if err != nil {
			return fmt.Errorf("inserting in-progress course %s: %w", courseID, err)
		}
	}
	return nil
}

// exec runs an UPDATE and converts a zero-row result into ErrNotFound.
func (r *SQLiteStudentRepo) exec(ctx context.Context, id, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating student: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("student %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteStudentRepo) loadHistory(ctx context.Context, s *domain.StudentProfile) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT course_id, grade, term FROM student_courses WHERE student_id = ? ORDER BY id`, s.ID)
	if err != nil {
		return fmt.Errorf("listing completed courses: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c domain.CompletedCourse
		var grade, term string
		if err := rows.Scan(&c.CourseID, &grade, &term); err != nil {
			return fmt.Errorf("scanning completed course: %w", err)
		}
		c.Grade = domain.Grade(grade)
		t, err := domain.ParseTerm(term)
		if err != nil {
			return fmt.Errorf("parsing term for %s: %w", c.CourseID, err)
		}
		c.Term = t
		s.Completed = append(s.Completed, c)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating completed courses: %w", err)
	}

	inProg, err := r.db.QueryContext(ctx,
		`SELECT course_id FROM student_in_progress WHERE student_id = ? ORDER BY course_id`, s.ID)
	if err != nil {
		return fmt.Errorf("listing in-progress courses: %w", err)
	}
	defer inProg.Close()

	for inProg.Next() {
		var id string
		if err := inProg.Scan(&id); err != nil {
			return fmt.Errorf("scanning in-progress course: %w", err)
		}
		s.InProgress = append(s.InProgress, id)
	}
	if err := inProg.Err(); err != nil {
		return fmt.Errorf("iterating in-progress courses: %w", err)
	}
	return nil
}

func scanStudent(scan func(dest ...any) error) (*domain.StudentProfile, error) {
	var s domain.StudentProfile
	var startTerm string
	var summer int
	err := scan(&s.ID, &s.Name, &s.TrackID, &startTerm,
		&s.Constraints.MaxCreditsPerSemester, &s.Constraints.MaxSemesters, &summer)
	if err != nil {
		return nil, err
	}
	term, err := domain.ParseTerm(startTerm)
	if err != nil {
		return nil, fmt.Errorf("parsing start term: %w", err)
	}
	s.Constraints.StartTerm = term
	s.Constraints.SummerAllowed = intToBool(summer)
	return &s, nil
}
