package service

import (
	"context"
	"fmt"
	"time"

	"github.com/degreekit/advisor/internal/app"
	"github.com/degreekit/advisor/internal/db"
	"github.com/degreekit/advisor/internal/domain"
	"github.com/degreekit/advisor/internal/importer"
	"github.com/degreekit/advisor/internal/planner"
	"github.com/degreekit/advisor/internal/repository"
)

type catalogService struct {
	catalog  repository.CatalogRepo
	tracks   repository.TrackRepo
	uow      db.UnitOfWork
	engines  *EngineProvider
	observer UseCaseObserver
}

func NewCatalogService(
	catalog repository.CatalogRepo,
	tracks repository.TrackRepo,
	uow db.UnitOfWork,
	engines *EngineProvider,
	observers ...UseCaseObserver,
) app.CatalogUseCase {
	return &catalogService{
		catalog:  catalog,
		tracks:   tracks,
		uow:      uow,
		engines:  engines,
		observer: useCaseObserverOrNoop(observers),
	}
}

// LoadCatalog replaces the stored catalog and tracks with the file's
// contents in one transaction. The file is fully validated, including a
// dry graph build, before anything is written; a bad file leaves the
// previous catalog untouched.
func (s *catalogService) LoadCatalog(ctx context.Context, filePath string) (result *app.CatalogImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"file": filePath}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "catalog-load",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	conv, err := s.loadAndCheck(filePath)
	if err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteCatalogRepo(tx).ReplaceAll(ctx, conv.Courses, conv.Rules); err != nil {
			return fmt.Errorf("replacing catalog: %w", err)
		}
		if err := repository.NewSQLiteTrackRepo(tx).ReplaceAll(ctx, conv.Tracks); err != nil {
			return fmt.Errorf("replacing tracks: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.engines.Invalidate()

	result = &app.CatalogImportResult{
		CourseCount: len(conv.Courses),
		RuleCount:   len(conv.Rules),
		TrackCount:  len(conv.Tracks),
	}
	fields["courses"] = result.CourseCount
	fields["rules"] = result.RuleCount
	fields["tracks"] = result.TrackCount
	return result, nil
}

// ValidateCatalog runs the full load pipeline without writing anything
// and reports every problem it finds.
func (s *catalogService) ValidateCatalog(ctx context.Context, filePath string) []error {
	f, err := importer.LoadCatalogFile(filePath)
	if err != nil {
		return []error{err}
	}
	if errs := importer.ValidateCatalogFile(f); len(errs) > 0 {
		return errs
	}
	conv, err := importer.ConvertCatalog(f)
	if err != nil {
		return []error{err}
	}
	return checkCatalogConsistency(conv)
}

func (s *catalogService) loadAndCheck(filePath string) (*importer.ConvertedCatalog, error) {
	f, err := importer.LoadCatalogFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading catalog file: %w", err)
	}
	if errs := importer.ValidateCatalogFile(f); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}
	conv, err := importer.ConvertCatalog(f)
	if err != nil {
		return nil, planErrorf(app.PlanErrConfiguration, "converting catalog: %v", err)
	}
	if errs := checkCatalogConsistency(conv); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}
	return conv, nil
}

// checkCatalogConsistency dry-builds the prerequisite graph and checks
// every track against it, collecting the cross-entity failures the
// per-entity validation cannot see.
func checkCatalogConsistency(conv *importer.ConvertedCatalog) []error {
	eng, err := planner.NewEngine(conv.Courses, conv.Rules)
	if err != nil {
		return []error{mapPlannerError(err)}
	}
	var errs []error
	for _, track := range conv.Tracks {
		if err := planner.ValidateTrack(track, eng.Graph()); err != nil {
			errs = append(errs, mapPlannerError(err))
		}
	}
	return errs
}

func (s *catalogService) ListCourses(ctx context.Context) ([]domain.Course, error) {
	courses, err := s.catalog.ListCourses(ctx)
	if err != nil {
		return nil, wrapRepoErr("listing courses", err)
	}
	return courses, nil
}

func (s *catalogService) GetCourse(ctx context.Context, courseID string) (*domain.Course, error) {
	course, err := s.catalog.GetCourse(ctx, courseID)
	if err != nil {
		return nil, notFoundOr(err, app.PlanErrCourseNotFound, "course %s not found", courseID)
	}
	return course, nil
}

func (s *catalogService) ListTracks(ctx context.Context) ([]domain.Track, error) {
	tracks, err := s.tracks.List(ctx)
	if err != nil {
		return nil, wrapRepoErr("listing tracks", err)
	}
	return tracks, nil
}

func (s *catalogService) GetTrack(ctx context.Context, trackID string) (*domain.Track, error) {
	track, err := s.tracks.GetByID(ctx, trackID)
	if err != nil {
		return nil, notFoundOr(err, app.PlanErrTrackNotFound, "track %s not found", trackID)
	}
	return track, nil
}
