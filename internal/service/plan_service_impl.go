package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/degreekit/advisor/internal/app"
	"github.com/degreekit/advisor/internal/domain"
	"github.com/degreekit/advisor/internal/repository"
)

type planService struct {
	students repository.StudentRepo
	tracks   repository.TrackRepo
	runs     repository.PlanRunRepo
	engines  *EngineProvider
	observer UseCaseObserver
}

func NewPlanService(
	students repository.StudentRepo,
	tracks repository.TrackRepo,
	runs repository.PlanRunRepo,
	engines *EngineProvider,
	observers ...UseCaseObserver,
) app.PlanUseCase {
	return &planService{
		students: students,
		tracks:   tracks,
		runs:     runs,
		engines:  engines,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *planService) Plan(ctx context.Context, req app.PlanRequest) (run *app.PlanRun, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"student": req.StudentID}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "plan",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	student, err := s.students.GetByID(ctx, req.StudentID)
	if err != nil {
		return nil, notFoundOr(err, app.PlanErrStudentNotFound, "student %s not found", req.StudentID)
	}

	engine, err := s.engines.Engine(ctx)
	if err != nil {
		return nil, err
	}

	trackID := student.TrackID
	if req.TrackOverride != "" {
		trackID = req.TrackOverride
	}
	var track *domain.Track
	if trackID != "" {
		track, err = s.tracks.GetByID(ctx, trackID)
		if err != nil {
			return nil, notFoundOr(err, app.PlanErrTrackNotFound, "track %s not found", trackID)
		}
		fields["track"] = trackID
	}

	constraints := applyOverrides(student.Constraints, req)

	plan, err := engine.Plan(track, *student, constraints)
	if err != nil {
		return nil, mapPlannerError(err)
	}
	fields["status"] = string(plan.Status)
	fields["semesters"] = len(plan.Semesters)

	run = &app.PlanRun{
		ID:          uuid.NewString(),
		StudentID:   student.ID,
		TrackID:     trackID,
		GeneratedAt: time.Now().UTC(),
		Plan:        plan,
	}
	if req.Save {
		if err = s.runs.Create(ctx, run); err != nil {
			return nil, wrapRepoErr("saving plan run", err)
		}
		fields["saved"] = true
	}
	return run, nil
}

// applyOverrides layers the request's what-if values over the stored
// constraints without touching the profile.
func applyOverrides(c domain.Constraints, req app.PlanRequest) domain.Constraints {
	if req.StartTerm != nil {
		c.StartTerm = *req.StartTerm
	}
	if req.MaxCredits != nil {
		c.MaxCreditsPerSemester = *req.MaxCredits
	}
	if req.MaxSemesters != nil {
		c.MaxSemesters = *req.MaxSemesters
	}
	if req.Summer != nil {
		c.SummerAllowed = *req.Summer
	}
	return c
}
