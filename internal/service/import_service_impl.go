package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/degreekit/advisor/internal/app"
	"github.com/degreekit/advisor/internal/db"
	"github.com/degreekit/advisor/internal/domain"
	"github.com/degreekit/advisor/internal/importer"
	"github.com/degreekit/advisor/internal/repository"
)

type importService struct {
	students repository.StudentRepo
	tracks   repository.TrackRepo
	catalog  repository.CatalogRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewImportService(
	students repository.StudentRepo,
	tracks repository.TrackRepo,
	catalog repository.CatalogRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) app.ImportUseCase {
	return &importService{
		students: students,
		tracks:   tracks,
		catalog:  catalog,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

// ImportTranscript loads a transcript file and upserts the student it
// describes in one transaction. Courses the catalog does not know are
// accepted as transfer credit and reported as warnings.
func (s *importService) ImportTranscript(ctx context.Context, filePath string) (result *app.TranscriptImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"file": filePath}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "import-transcript",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	f, err := importer.LoadTranscript(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading transcript: %w", err)
	}
	if errs := importer.ValidateTranscript(f); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}
	profile, err := importer.ConvertTranscript(f)
	if err != nil {
		return nil, planErrorf(app.PlanErrConfiguration, "converting transcript: %v", err)
	}

	if profile.TrackID != "" {
		if _, err = s.tracks.GetByID(ctx, profile.TrackID); err != nil {
			return nil, notFoundOr(err, app.PlanErrTrackNotFound, "track %s not found", profile.TrackID)
		}
	}

	warnings, err := s.transferWarnings(ctx, profile.Completed, profile.InProgress)
	if err != nil {
		return nil, err
	}

	created := false
	if _, err = s.students.GetByID(ctx, profile.ID); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, wrapRepoErr("checking for existing student", err)
		}
		created = true
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteStudentRepo(tx).Upsert(ctx, profile)
	})
	if err != nil {
		return nil, fmt.Errorf("importing transcript: %w", err)
	}

	fields["student"] = profile.ID
	fields["created"] = created
	fields["courses"] = len(profile.Completed)
	return &app.TranscriptImportResult{
		Student:     profile,
		Created:     created,
		CourseCount: len(profile.Completed),
		Warnings:    warnings,
	}, nil
}

// transferWarnings flags transcript courses missing from the catalog.
// An empty catalog produces no warnings; there is nothing to check
// against yet.
func (s *importService) transferWarnings(ctx context.Context, completed []domain.CompletedCourse, inProgress []string) ([]string, error) {
	courses, err := s.catalog.ListCourses(ctx)
	if err != nil {
		return nil, wrapRepoErr("loading catalog", err)
	}
	if len(courses) == 0 {
		return nil, nil
	}
	known := make(map[string]bool, len(courses))
	for _, c := range courses {
		known[c.ID] = true
	}

	unknown := map[string]bool{}
	for _, c := range completed {
		if !known[c.CourseID] {
			unknown[c.CourseID] = true
		}
	}
	for _, id := range inProgress {
		if !known[id] {
			unknown[id] = true
		}
	}

	ids := make([]string, 0, len(unknown))
	for id := range unknown {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	warnings := make([]string, 0, len(ids))
	for _, id := range ids {
		warnings = append(warnings, fmt.Sprintf("course %s is not in the catalog; treated as transfer credit", id))
	}
	return warnings, nil
}
