package service

import (
	"context"

	"github.com/degreekit/advisor/internal/app"
	"github.com/degreekit/advisor/internal/repository"
)

type historyService struct {
	students repository.StudentRepo
	runs     repository.PlanRunRepo
}

func NewHistoryService(
	students repository.StudentRepo,
	runs repository.PlanRunRepo,
) app.HistoryUseCase {
	return &historyService{students: students, runs: runs}
}

func (s *historyService) ListRuns(ctx context.Context, studentID string) ([]app.PlanRun, error) {
	if _, err := s.students.GetByID(ctx, studentID); err != nil {
		return nil, notFoundOr(err, app.PlanErrStudentNotFound, "student %s not found", studentID)
	}
	runs, err := s.runs.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, wrapRepoErr("listing plan runs", err)
	}
	return runs, nil
}

func (s *historyService) GetRun(ctx context.Context, runID string) (*app.PlanRun, error) {
	run, err := s.runs.GetByID(ctx, runID)
	if err != nil {
		return nil, notFoundOr(err, app.PlanErrRunNotFound, "plan run %s not found", runID)
	}
	return run, nil
}
