package handlers

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"rudresh.dev/internal/config"
	"rudresh.dev/internal/models"
	"rudresh.dev/internal/services"
)

// currentStreak is shown as-is; the stats API does not report streaks
const currentStreak = "15 Days"

// PageHandler renders the page and its lazily loaded fragments
type PageHandler struct {
	store    *config.Store
	projects *services.ProjectService
	stats    *services.StatsService
	logger   *zap.Logger
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(store *config.Store, ps *services.ProjectService, ss *services.StatsService, logger *zap.Logger) *PageHandler {
	return &PageHandler{store: store, projects: ps, stats: ss, logger: logger}
}

type indexView struct {
	Profile   models.Profile
	Skeletons []struct{}
	Year      int
}

type projectsView struct {
	models.ProjectsResult
	ProfileURL string
	// shown in place of the cards while a reload is in flight
	Skeletons []struct{}
}

type statsView struct {
	Available          bool
	TotalSolved        int
	Breakdown          []models.DifficultySlice
	Ranking            string
	ContributionPoints int
	Reputation         int
	Streak             string
}

// Index handles GET / - the page shell with one skeleton per project card
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	render(w, h.logger, http.StatusOK, "index.html", indexView{
		Profile:   h.store.Current().ProfileView(),
		Skeletons: make([]struct{}, services.MaxDisplayedProjects),
		Year:      time.Now().Year(),
	})
}

// ProjectsPartial handles GET /partials/projects and its retry POST.
// Both run the same fetch; retrying has no backoff of its own.
func (h *PageHandler) ProjectsPartial(w http.ResponseWriter, r *http.Request) {
	result := h.projects.Load(r.Context())
	render(w, h.logger, http.StatusOK, "projects.html", projectsView{
		ProjectsResult: result,
		ProfileURL:     h.store.Current().ProfileView().Contact.GitHubURL,
		Skeletons:      make([]struct{}, services.MaxDisplayedProjects),
	})
}

// StatsPartial handles GET /partials/stats
func (h *PageHandler) StatsPartial(w http.ResponseWriter, r *http.Request) {
	render(w, h.logger, http.StatusOK, "stats.html", newStatsView(h.stats.Load(r.Context())))
}

func newStatsView(s *models.CodingStats) statsView {
	v := statsView{
		Available: s != nil,
		Ranking:   s.RankingLabel(),
		Breakdown: s.Breakdown(),
		Streak:    currentStreak,
	}
	if s != nil {
		v.TotalSolved = s.TotalSolved
		v.ContributionPoints = s.ContributionPoints
		v.Reputation = s.Reputation
	}
	return v
}
