package service

import (
	"context"

	"github.com/degreekit/advisor/internal/app"
	"github.com/degreekit/advisor/internal/planner"
	"github.com/degreekit/advisor/internal/repository"
)

type explainService struct {
	students repository.StudentRepo
	tracks   repository.TrackRepo
	engines  *EngineProvider
}

func NewExplainService(
	students repository.StudentRepo,
	tracks repository.TrackRepo,
	engines *EngineProvider,
) app.ExplainUseCase {
	return &explainService{students: students, tracks: tracks, engines: engines}
}

// Explain answers "why can or can't this student take this course now":
// transcript standing, prerequisite progress term by term, and where the
// course sits in the dependency graph and the declared track.
func (s *explainService) Explain(ctx context.Context, studentID, courseID string) (*app.ExplainReport, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, notFoundOr(err, app.PlanErrStudentNotFound, "student %s not found", studentID)
	}

	engine, err := s.engines.Engine(ctx)
	if err != nil {
		return nil, err
	}
	graph := engine.Graph()

	course, ok := graph.Course(courseID)
	if !ok {
		return nil, planErrorf(app.PlanErrCourseNotFound, "course %s is not in the catalog", courseID)
	}

	best := student.BestGrades()
	report := &app.ExplainReport{
		CourseID:         course.ID,
		Title:            course.Title,
		Credits:          course.CreditHours,
		Level:            course.Level,
		Capstone:         course.Capstone,
		DownstreamDegree: graph.DownstreamDegree(course.ID),
		Bottleneck:       graph.IsBottleneck(course.ID),
	}
	for _, season := range course.Seasons {
		report.Seasons = append(report.Seasons, string(season))
	}

	if g, taken := best[course.ID]; taken {
		report.Completed = true
		report.Grade = string(g)
	}
	for _, id := range student.InProgress {
		if id == course.ID {
			report.InProgress = true
		}
	}

	if rule, has := graph.Rule(course.ID); has {
		report.RuleKind = string(rule.Kind)
		report.MinGrade = string(rule.EffectiveMinGrade())
		report.PrereqsMet = planner.RuleSatisfied(rule, best)
		for _, ts := range planner.RuleStatus(rule, best) {
			report.Terms = append(report.Terms, app.TermExplain{
				Members:   ts.Members,
				Missing:   ts.Missing,
				Satisfied: ts.Satisfied,
			})
		}
	} else {
		report.PrereqsMet = true
	}

	if student.TrackID != "" {
		track, err := s.tracks.GetByID(ctx, student.TrackID)
		if err != nil {
			return nil, notFoundOr(err, app.PlanErrTrackNotFound, "track %s not found", student.TrackID)
		}
		for _, group := range track.Groups {
			for _, opt := range group.Options {
				if optionMentions(opt.Members(), course.ID) {
					report.Groups = append(report.Groups, group.Key)
					break
				}
			}
		}
	}
	return report, nil
}

func optionMentions(members []string, courseID string) bool {
	for _, id := range members {
		if id == courseID {
			return true
		}
	}
	return false
}
