package app

import (
	"context"

	"github.com/degreekit/advisor/internal/domain"
)

type PlanUseCase interface {
	Plan(ctx context.Context, req PlanRequest) (*PlanRun, error)
}

type AuditUseCase interface {
	Audit(ctx context.Context, studentID string) (*AuditReport, error)
}

type ExplainUseCase interface {
	Explain(ctx context.Context, studentID, courseID string) (*ExplainReport, error)
}

// CatalogImportResult reports what a catalog load brought in.
type CatalogImportResult struct {
	CourseCount int
	RuleCount   int
	TrackCount  int
}

type CatalogUseCase interface {
	LoadCatalog(ctx context.Context, filePath string) (*CatalogImportResult, error)
	ValidateCatalog(ctx context.Context, filePath string) []error
	ListCourses(ctx context.Context) ([]domain.Course, error)
	GetCourse(ctx context.Context, courseID string) (*domain.Course, error)
	ListTracks(ctx context.Context) ([]domain.Track, error)
	GetTrack(ctx context.Context, trackID string) (*domain.Track, error)
}

type StudentUseCase interface {
	CreateStudent(ctx context.Context, name string) (*domain.StudentProfile, error)
	GetStudent(ctx context.Context, studentID string) (*domain.StudentProfile, error)
	ListStudents(ctx context.Context) ([]domain.StudentProfile, error)
	SetTrack(ctx context.Context, studentID, trackID string) error
	AddCompletedCourse(ctx context.Context, studentID string, course domain.CompletedCourse) error
	SetConstraints(ctx context.Context, studentID string, c domain.Constraints) error
}

// TranscriptImportResult reports what a transcript import changed.
type TranscriptImportResult struct {
	Student     *domain.StudentProfile
	Created     bool
	CourseCount int
	Warnings    []string
}

type ImportUseCase interface {
	ImportTranscript(ctx context.Context, filePath string) (*TranscriptImportResult, error)
}

type HistoryUseCase interface {
	ListRuns(ctx context.Context, studentID string) ([]PlanRun, error)
	GetRun(ctx context.Context, runID string) (*PlanRun, error)
}
