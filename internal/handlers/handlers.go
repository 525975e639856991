package handlers

import (
	"embed"
	"encoding/json"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"rudresh.dev/internal/config"
	"rudresh.dev/internal/middleware"
	"rudresh.dev/internal/services"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// SetupRoutes configures all routes and returns the router
func SetupRoutes(store *config.Store, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))

	// Initialize services
	fetcher := services.NewFetcher()
	projectService := services.NewProjectService(fetcher, store, logger)
	statsService := services.NewStatsService(fetcher, store, logger)
	portfolioService := services.NewPortfolioService(store, projectService, statsService)
	contactService := services.NewContactService(logger)

	// Initialize handlers
	pageHandler := NewPageHandler(store, projectService, statsService, logger)
	projectHandler := NewProjectHandler(projectService, logger)
	statsHandler := NewStatsHandler(statsService, logger)
	portfolioHandler := NewPortfolioHandler(portfolioService, logger)
	typewriterHandler := NewTypewriterHandler(store, logger)
	contactHandler := NewContactHandler(contactService, logger)

	// HTML fragments loaded by the page after first paint
	r.Route("/partials", func(r chi.Router) {
		r.Get("/projects", pageHandler.ProjectsPartial)
		r.Post("/projects/retry", pageHandler.ProjectsPartial)
		r.Get("/stats", pageHandler.StatsPartial)
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{id}", projectHandler.GetProject)
		r.Get("/stats", statsHandler.GetStats)
		r.Get("/portfolio", portfolioHandler.GetPortfolio)
		r.Get("/typewriter/stream", typewriterHandler.Stream)
		r.Post("/contact", contactHandler.Submit)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, logger, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	// Static files
	static, _ := fs.Sub(staticFS, "static")
	r.Handle("/static/*", http.StripPrefix("/static", http.FileServer(http.FS(static))))

	r.Get("/", pageHandler.Index)

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, logger *zap.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Warn("Error encoding JSON", zap.Error(err))
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, logger *zap.Logger, status int, message string) {
	respondJSON(w, logger, status, map[string]string{"error": message})
}

// render executes a named template
func render(w http.ResponseWriter, logger *zap.Logger, status int, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		logger.Error("Error rendering template", zap.String("template", name), zap.Error(err))
	}
}
