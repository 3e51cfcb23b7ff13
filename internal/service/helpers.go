package service

import (
	"errors"
	"fmt"

	"github.com/degreekit/advisor/internal/app"
	"github.com/degreekit/advisor/internal/planner"
	"github.com/degreekit/advisor/internal/repository"
)

func planErrorf(code app.PlanErrorCode, format string, args ...any) *app.PlanError {
	return &app.PlanError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// mapPlannerError translates the engine's typed failures into use-case
// error codes. Anything else passes through unchanged.
func mapPlannerError(err error) error {
	var cfg *planner.ConfigError
	if errors.As(err, &cfg) {
		return &app.PlanError{Code: app.PlanErrConfiguration, Message: cfg.Error()}
	}
	var integ *planner.IntegrityError
	if errors.As(err, &integ) {
		return &app.PlanError{Code: app.PlanErrDataIntegrity, Message: integ.Error()}
	}
	return err
}

// notFoundOr maps a repository miss to the given use-case code and wraps
// everything else with context.
func notFoundOr(err error, code app.PlanErrorCode, format string, args ...any) error {
	if errors.Is(err, repository.ErrNotFound) {
		return planErrorf(code, format, args...)
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

func wrapRepoErr(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
