package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"rudresh.dev/internal/services"
)

// StatsHandler serves coding statistics
type StatsHandler struct {
	statsService *services.StatsService
	logger       *zap.Logger
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(ss *services.StatsService, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{statsService: ss, logger: logger}
}

// GetStats handles GET /api/stats - null when the API has no data
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, h.logger, http.StatusOK, h.statsService.Load(r.Context()))
}
