// Package server exposes the content-calendar dashboard as a JSON API.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"seedtech-calendar/internal/content"
	"seedtech-calendar/internal/i18n"
	"seedtech-calendar/internal/ideas"
	"seedtech-calendar/internal/metrics"
	"seedtech-calendar/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"
)

// Server wires the content store, resolver, sessions and the AI
// generator behind the HTTP surface.
type Server struct {
	store        *content.Store
	translator   *i18n.Translator
	sessions     *session.Manager
	generator    *ideas.Generator
	metricsStore *metrics.Store
	collector    *metrics.Collector
	registry     *prometheus.Registry
	limiter      *rate.Limiter
	logger       *slog.Logger
}

// Options configures a Server.
type Options struct {
	Store        *content.Store
	Translator   *i18n.Translator
	Sessions     *session.Manager
	Generator    *ideas.Generator
	MetricsStore *metrics.Store
	Logger       *slog.Logger

	// GenerationsPerMinute caps outbound AI calls process-wide to stay
	// under the upstream quota. Zero disables the cap.
	GenerationsPerMinute int
}

// New creates a Server.
func New(opts Options) *Server {
	registry := prometheus.NewRegistry()

	var limiter *rate.Limiter
	if opts.GenerationsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(opts.GenerationsPerMinute)/60.0), opts.GenerationsPerMinute)
	}

	return &Server{
		store:        opts.Store,
		translator:   opts.Translator,
		sessions:     opts.Sessions,
		generator:    opts.Generator,
		metricsStore: opts.MetricsStore,
		collector:    metrics.NewCollector(registry),
		registry:     registry,
		limiter:      limiter,
		logger:       opts.Logger,
	}
}

// Router builds the chi router with the full route table.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(recoverer(s.logger))
	r.Use(requestLogger(s.logger, s.collector))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	r.Handle("/metrics", metrics.Handler(s.registry))

	r.Route("/api", func(r chi.Router) {
		r.Get("/countries", s.handleListCountries)
		r.Route("/countries/{country}", func(r chi.Router) {
			r.Get("/", s.handleCountry)
			r.Get("/calendar/{year}/{month}", s.handleMonthGrid)
			r.Get("/calendar/{year}/{month}/{day}", s.handleDayDetail)
		})

		r.Post("/sessions", s.handleCreateSession)
		r.Route("/sessions/{session}", func(r chi.Router) {
			r.Get("/", s.handleGetSession)
			r.Patch("/", s.handleUpdateSession)
			r.Post("/day/open", s.handleOpenDay)
			r.Post("/day/close", s.handleCloseDay)
			r.Post("/ideas", s.handleGenerateIdeas)
		})
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
