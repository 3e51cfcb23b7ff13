package service

import (
	"context"

	"github.com/degreekit/advisor/internal/app"
	"github.com/degreekit/advisor/internal/planner"
	"github.com/degreekit/advisor/internal/repository"
)

type auditService struct {
	students repository.StudentRepo
	tracks   repository.TrackRepo
	engines  *EngineProvider
}

func NewAuditService(
	students repository.StudentRepo,
	tracks repository.TrackRepo,
	engines *EngineProvider,
) app.AuditUseCase {
	return &auditService{students: students, tracks: tracks, engines: engines}
}

// Audit reports a student's standing from the transcript alone: only
// graded history counts, in-progress enrollment is listed but assumed
// nothing.
func (s *auditService) Audit(ctx context.Context, studentID string) (*app.AuditReport, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, notFoundOr(err, app.PlanErrStudentNotFound, "student %s not found", studentID)
	}

	engine, err := s.engines.Engine(ctx)
	if err != nil {
		return nil, err
	}
	graph := engine.Graph()

	best := student.BestGrades()
	catalogCredits := func(id string) (int, bool) {
		c, ok := graph.Course(id)
		return c.CreditHours, ok
	}
	report := &app.AuditReport{
		StudentID:        student.ID,
		StudentName:      student.Name,
		TrackID:          student.TrackID,
		GPA:              student.GPA(catalogCredits),
		CoursesCompleted: len(best),
		InProgress:       student.InProgress,
	}
	for id, g := range best {
		if g.Points() <= 0 {
			continue
		}
		if c, ok := graph.Course(id); ok {
			report.CreditsEarned += c.CreditHours
		} else {
			report.CreditsEarned += 3
		}
	}

	if student.TrackID == "" {
		return report, nil
	}

	track, err := s.tracks.GetByID(ctx, student.TrackID)
	if err != nil {
		return nil, notFoundOr(err, app.PlanErrTrackNotFound, "track %s not found", student.TrackID)
	}
	report.TrackName = track.Name

	req := planner.EvaluateRequirements(*track, best)
	for _, gs := range req.Groups {
		ga := app.GroupAudit{
			Key:       gs.Group.Key,
			Kind:      string(gs.Group.Kind),
			Need:      gs.Group.Need,
			Satisfied: gs.Satisfied,
			Missing:   gs.Missing,
		}
		for _, opt := range gs.Available {
			ga.Options = append(ga.Options, opt.Key())
		}
		report.Groups = append(report.Groups, ga)
	}
	report.OutstandingSlots = req.OutstandingSlots()
	report.Complete = req.Complete()
	return report, nil
}
