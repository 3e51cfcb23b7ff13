package repository

import (
	"context"
	"errors"

	"github.com/degreekit/advisor/internal/app"
	"github.com/degreekit/advisor/internal/domain"
)

// ErrNotFound is the sentinel wrapped by every repository when a lookup
// misses. Callers test with errors.Is.
var ErrNotFound = errors.New("not found")

// CatalogRepo stores the immutable course catalog and its prerequisite
// rules. Reloads replace the whole snapshot; nothing is ever edited in
// place.
type CatalogRepo interface {
	ReplaceAll(ctx context.Context, courses []domain.Course, rules []domain.PrereqRule) error
	ListCourses(ctx context.Context) ([]domain.Course, error)
	GetCourse(ctx context.Context, id string) (*domain.Course, error)
	ListRules(ctx context.Context) ([]domain.PrereqRule, error)
	CountCourses(ctx context.Context) (int, error)
}

// TrackRepo stores specialization tracks with their requirement groups.
// Like the catalog, tracks are replaced wholesale on reload.
type TrackRepo interface {
	ReplaceAll(ctx context.Context, tracks []domain.Track) error
	List(ctx context.Context) ([]domain.Track, error)
	GetByID(ctx context.Context, id string) (*domain.Track, error)
}

type StudentRepo interface {
	Create(ctx context.Context, s *domain.StudentProfile) error
	Upsert(ctx context.Context, s *domain.StudentProfile) error
	GetByID(ctx context.Context, id string) (*domain.StudentProfile, error)
	List(ctx context.Context) ([]domain.StudentProfile, error)
	SetTrack(ctx context.Context, id, trackID string) error
	SetConstraints(ctx context.Context, id string, c domain.Constraints) error
	AddCompletedCourse(ctx context.Context, id string, course domain.CompletedCourse) error
	SetInProgress(ctx context.Context, id string, courseIDs []string) error
}

type PlanRunRepo interface {
	Create(ctx context.Context, run *app.PlanRun) error
	GetByID(ctx context.Context, id string) (*app.PlanRun, error)
	ListByStudent(ctx context.Context, studentID string) ([]app.PlanRun, error)
}
