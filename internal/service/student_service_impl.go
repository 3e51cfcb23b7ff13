package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/degreekit/advisor/internal/app"
	"github.com/degreekit/advisor/internal/domain"
	"github.com/degreekit/advisor/internal/repository"
)

type studentService struct {
	students repository.StudentRepo
	tracks   repository.TrackRepo
}

func NewStudentService(
	students repository.StudentRepo,
	tracks repository.TrackRepo,
) app.StudentUseCase {
	return &studentService{students: students, tracks: tracks}
}

func (s *studentService) CreateStudent(ctx context.Context, name string) (*domain.StudentProfile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, planErrorf(app.PlanErrConfiguration, "student name is required")
	}
	student := &domain.StudentProfile{
		ID:          uuid.NewString(),
		Name:        name,
		Constraints: domain.DefaultConstraints(upcomingFall(time.Now())),
	}
	if err := s.students.Create(ctx, student); err != nil {
		return nil, wrapRepoErr("creating student", err)
	}
	return student, nil
}

func (s *studentService) GetStudent(ctx context.Context, studentID string) (*domain.StudentProfile, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, notFoundOr(err, app.PlanErrStudentNotFound, "student %s not found", studentID)
	}
	return student, nil
}

func (s *studentService) ListStudents(ctx context.Context) ([]domain.StudentProfile, error) {
	students, err := s.students.List(ctx)
	if err != nil {
		return nil, wrapRepoErr("listing students", err)
	}
	return students, nil
}

func (s *studentService) SetTrack(ctx context.Context, studentID, trackID string) error {
	if _, err := s.tracks.GetByID(ctx, trackID); err != nil {
		return notFoundOr(err, app.PlanErrTrackNotFound, "track %s not found", trackID)
	}
	if err := s.students.SetTrack(ctx, studentID, trackID); err != nil {
		return notFoundOr(err, app.PlanErrStudentNotFound, "student %s not found", studentID)
	}
	return nil
}

func (s *studentService) AddCompletedCourse(ctx context.Context, studentID string, course domain.CompletedCourse) error {
	if err := course.Validate(); err != nil {
		return planErrorf(app.PlanErrConfiguration, "%v", err)
	}
	if err := s.students.AddCompletedCourse(ctx, studentID, course); err != nil {
		return notFoundOr(err, app.PlanErrStudentNotFound, "student %s not found", studentID)
	}
	return nil
}

func (s *studentService) SetConstraints(ctx context.Context, studentID string, c domain.Constraints) error {
	if err := c.Validate(); err != nil {
		return planErrorf(app.PlanErrConfiguration, "%v", err)
	}
	if err := s.students.SetConstraints(ctx, studentID, c); err != nil {
		return notFoundOr(err, app.PlanErrStudentNotFound, "student %s not found", studentID)
	}
	return nil
}

// upcomingFall picks the default planning start for brand-new students:
// the fall term of the current calendar year.
func upcomingFall(now time.Time) domain.Term {
	return domain.Term{Season: domain.SeasonFall, Year: now.Year()}
}
