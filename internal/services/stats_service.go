package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.uber.org/zap"

	"rudresh.dev/internal/config"
	"rudresh.dev/internal/models"
)

// StatsService loads coding statistics from the LeetCode stats API
type StatsService struct {
	fetcher *Fetcher
	store   *config.Store
	logger  *zap.Logger
}

// NewStatsService creates a new StatsService
func NewStatsService(f *Fetcher, store *config.Store, logger *zap.Logger) *StatsService {
	return &StatsService{fetcher: f, store: store, logger: logger}
}

// Load returns the current stats snapshot, or nil when none is available
func (s *StatsService) Load(ctx context.Context) *models.CodingStats {
	cfg := s.store.Current()
	endpoint := fmt.Sprintf("%s/%s", cfg.Upstream.LeetCodeAPI, url.PathEscape(cfg.Accounts.LeetCode))

	ctx, cancel := withTimeout(ctx, cfg.Upstream.Timeout)
	defer cancel()

	stats, err := resolveStats(s.fetcher.Fetch(ctx, endpoint, nil))
	switch {
	case errors.Is(err, errStatsRejected):
		s.logger.Debug("LeetCode stats unavailable", zap.Error(err))
	case err != nil:
		s.logger.Error("Error fetching LeetCode stats", zap.Error(err))
	}
	return stats
}
