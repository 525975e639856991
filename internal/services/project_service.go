package services

import (
	"context"
	"fmt"
	"net/url"

	"go.uber.org/zap"

	"rudresh.dev/internal/config"
	"rudresh.dev/internal/models"
)

// ProjectService loads the projects grid from GitHub
type ProjectService struct {
	fetcher *Fetcher
	store   *config.Store
	logger  *zap.Logger
}

// NewProjectService creates a new ProjectService
func NewProjectService(f *Fetcher, store *config.Store, logger *zap.Logger) *ProjectService {
	return &ProjectService{fetcher: f, store: store, logger: logger}
}

// Load fetches the user's repositories and resolves the displayed set.
// It always returns a usable result; upstream failures become fallback data.
func (s *ProjectService) Load(ctx context.Context) models.ProjectsResult {
	cfg := s.store.Current()
	endpoint := fmt.Sprintf("%s/users/%s/repos?sort=stars&per_page=100",
		cfg.Upstream.GitHubAPI, url.PathEscape(cfg.Accounts.GitHub))

	ctx, cancel := withTimeout(ctx, cfg.Upstream.Timeout)
	defer cancel()

	outcome := s.fetcher.Fetch(ctx, endpoint, map[string]string{"Accept": "application/vnd.github+json"})
	result := ResolveProjects(outcome)

	switch result.Source {
	case models.SourceRateLimited:
		s.logger.Warn("GitHub API rate limit exceeded, using fallback projects")
	case models.SourceUpstreamError:
		s.logger.Error("Error fetching GitHub repos, using fallback projects",
			zap.Int("status", outcome.StatusCode), zap.Error(outcome.Err))
	case models.SourceUnmatched:
		s.logger.Debug("No pipeline repository in GitHub response, using fallback projects")
	default:
		s.logger.Debug("Loaded projects from GitHub", zap.Int("count", len(result.Projects)))
	}
	return result
}

// GetByID returns a project from a freshly loaded set
func (s *ProjectService) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	result := s.Load(ctx)
	for i := range result.Projects {
		if result.Projects[i].ID == id {
			return &result.Projects[i], nil
		}
	}
	return nil, fmt.Errorf("project not found: %d", id)
}
