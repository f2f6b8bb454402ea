package ui

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"underwrite/app"
	"underwrite/internal"
)

//go:embed templates/*
var embeddedFiles embed.FS

// App is the audit console: a read-mostly web view over the session book
// for underwriters reviewing decisions.
type App struct {
	router    *chi.Mux
	sessions  *app.SessionService
	templates *template.Template
	logger    *internal.Logger
	exportDir string
}

// Config holds audit console configuration
type Config struct {
	Port      string
	ExportDir string
}

// NewApp creates a new audit console application
func NewApp(sessions *app.SessionService, config Config, logger *internal.Logger) (*App, error) {
	funcMap := template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"pct": func(part, whole int) string {
			if whole == 0 {
				return "0%"
			}
			return fmt.Sprintf("%.0f%%", float64(part)/float64(whole)*100)
		},
		"f1": func(v float64) string { return fmt.Sprintf("%.1f", v) },
		"f2": func(v float64) string { return fmt.Sprintf("%.2f", v) },
	}
	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	a := &App{
		router:    chi.NewRouter(),
		sessions:  sessions,
		templates: templates,
		logger:    logger,
		exportDir: config.ExportDir,
	}

	a.setupMiddleware()
	a.setupRoutes()

	return a, nil
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

// setupRoutes configures the console routes
func (a *App) setupRoutes() {
	// Pages
	a.router.Get("/", a.handleIndex)
	a.router.Get("/sessions/{id}", a.handleSessionDetail)
	a.router.Get("/analytics", a.handleAnalytics)

	// Actions
	a.router.Post("/sessions/{id}/recompute", a.handleRecompute)

	// Reports and exports
	a.router.Get("/sessions/{id}/report.md", a.handleSessionReport)
	a.router.Get("/sessions/{id}/report.xlsx", a.handleSessionExcel)
	a.router.Get("/export/sessions.xlsx", a.handleExcelExport)

	// JSON endpoints
	a.router.Get("/api/analytics", a.handleAnalyticsJSON)
}

// Router exposes the chi mux for embedding in another server
func (a *App) Router() http.Handler {
	return a.router
}

// Start starts the HTTP server
func (a *App) Start(addr string) error {
	a.logger.Info("audit console listening on %s", addr)
	return http.ListenAndServe(addr, a.router)
}

// Template helpers
func (a *App) renderTemplate(w http.ResponseWriter, templateName string, data interface{}) {
	w.Header().Set("Content-Type", "text/html")
	if err := a.templates.ExecuteTemplate(w, templateName, data); err != nil {
		a.logger.Error("template %s: %v", templateName, err)
		http.Error(w, "Template error", http.StatusInternalServerError)
	}
}
