package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"rudresh.dev/internal/config"
	"rudresh.dev/internal/models"
)

// PortfolioService assembles the whole page's data
type PortfolioService struct {
	store    *config.Store
	projects *ProjectService
	stats    *StatsService
}

// NewPortfolioService creates a new PortfolioService
func NewPortfolioService(store *config.Store, ps *ProjectService, ss *StatsService) *PortfolioService {
	return &PortfolioService{store: store, projects: ps, stats: ss}
}

// Snapshot loads projects and stats concurrently. The loaders absorb their
// own failures, so the only error is a cancelled context.
func (s *PortfolioService) Snapshot(ctx context.Context) (*models.Portfolio, error) {
	out := &models.Portfolio{Profile: s.store.Current().ProfileView()}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		out.Projects = s.projects.Load(gctx)
		return nil
	})
	g.Go(func() error {
		out.Stats = s.stats.Load(gctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
