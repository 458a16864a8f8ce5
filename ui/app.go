package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"bloodgas/app"
	"bloodgas/internal"
	"bloodgas/internal/config"
)

// App represents the HTTP application
type App struct {
	router    *chi.Mux
	generator *app.GeneratorService
	batches   *app.BatchService
	config    *config.Config
	logger    *internal.Logger
}

// NewApp creates a new HTTP application
func NewApp(cfg *config.Config, generator *app.GeneratorService, batches *app.BatchService) *App {
	a := &App{
		router:    chi.NewRouter(),
		generator: generator,
		batches:   batches,
		config:    cfg,
		logger:    internal.DefaultLogger.Named("ui"),
	}

	a.setupMiddleware()
	a.setupRoutes()
	return a
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/healthz", a.handleHealth)

	// Generation endpoints
	a.router.Post("/api/results", a.handleGenerate)
	a.router.Get("/api/results", a.handleListResults)
	a.router.Get("/api/results/{id}", a.handleGetResult)
	a.router.Get("/api/results/{id}/report", a.handleResultReport)

	// Batch endpoints
	a.router.Post("/api/batches", a.handleGenerateBatch)

	// Condition catalog
	a.router.Get("/api/conditions", a.handleListConditions)
	a.router.Get("/api/conditions/{condition}", a.handleGetCondition)
}

// Start starts the HTTP server
func (a *App) Start() error {
	addr := ":" + a.config.Server.Port
	a.logger.Info("Starting blood gas generator server on %s", addr)
	return http.ListenAndServe(addr, a.router)
}

// Router exposes the mux for tests and embedding callers
func (a *App) Router() http.Handler {
	return a.router
}
