package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"rudresh.dev/internal/services"
)

// PortfolioHandler serves the aggregated page data
type PortfolioHandler struct {
	portfolioService *services.PortfolioService
	logger           *zap.Logger
}

// NewPortfolioHandler creates a new PortfolioHandler
func NewPortfolioHandler(ps *services.PortfolioService, logger *zap.Logger) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: ps, logger: logger}
}

// GetPortfolio handles GET /api/portfolio
func (h *PortfolioHandler) GetPortfolio(w http.ResponseWriter, r *http.Request) {
	snap, err := h.portfolioService.Snapshot(r.Context())
	if err != nil {
		// only a departed client gets here
		respondError(w, h.logger, http.StatusServiceUnavailable, err.Error())
		return
	}
	respondJSON(w, h.logger, http.StatusOK, snap)
}
