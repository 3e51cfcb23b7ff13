package service

import (
	"context"
	"sync"

	"github.com/degreekit/advisor/internal/app"
	"github.com/degreekit/advisor/internal/planner"
	"github.com/degreekit/advisor/internal/repository"
)

// EngineProvider lazily builds the planning engine from the stored
// catalog and caches it until the catalog changes. The engine itself is
// immutable, so a cached instance is safe to share across goroutines.
type EngineProvider struct {
	catalog repository.CatalogRepo

	mu     sync.RWMutex
	engine *planner.Engine
}

func NewEngineProvider(catalog repository.CatalogRepo) *EngineProvider {
	return &EngineProvider{catalog: catalog}
}

// Engine returns the cached engine, building it from the stored catalog
// on first use or after Invalidate.
func (p *EngineProvider) Engine(ctx context.Context) (*planner.Engine, error) {
	p.mu.RLock()
	if eng := p.engine; eng != nil {
		p.mu.RUnlock()
		return eng, nil
	}
	p.mu.RUnlock()

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.engine != nil {
		return p.engine, nil
	}

	courses, err := p.catalog.ListCourses(ctx)
	if err != nil {
		return nil, wrapRepoErr("loading catalog", err)
	}
	if len(courses) == 0 {
		return nil, &app.PlanError{Code: app.PlanErrEmptyCatalog, Message: "no catalog loaded; run 'catalog load' first"}
	}
	rules, err := p.catalog.ListRules(ctx)
	if err != nil {
		return nil, wrapRepoErr("loading prerequisite rules", err)
	}

	eng, err := planner.NewEngine(courses, rules)
	if err != nil {
		return nil, mapPlannerError(err)
	}
	p.engine = eng
	return eng, nil
}

// Invalidate drops the cached engine so the next run rebuilds from
// storage. Call it after every catalog reload.
func (p *EngineProvider) Invalidate() {
	p.mu.Lock()
	p.engine = nil
	p.mu.Unlock()
}
