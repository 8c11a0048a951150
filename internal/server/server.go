// Package server provides the HTTP server and routing for CreditSense.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/nileshkr/creditsense/internal/config"
	"github.com/nileshkr/creditsense/internal/database"
	"github.com/nileshkr/creditsense/internal/modules/advisor"
	"github.com/nileshkr/creditsense/internal/modules/affordability"
	"github.com/nileshkr/creditsense/internal/modules/analysis"
	"github.com/nileshkr/creditsense/internal/modules/creditscore"
	"github.com/nileshkr/creditsense/internal/modules/history"
	"github.com/nileshkr/creditsense/internal/modules/recommendations"
)

// Config holds server configuration
type Config struct {
	Log     zerolog.Logger
	DB      *database.DB
	Config  *config.Config
	Port    int
	DevMode bool

	CreditScoreHandler     *creditscore.Handler
	AffordabilityHandler   *affordability.Handler
	RecommendationsHandler *recommendations.Handler
	AnalysisHandler        *analysis.Handler
	AdvisorHandler         *advisor.Handler
	HistoryHandler         *history.Handler
}

// Server represents the HTTP server
type Server struct {
	router *chi.Mux
	server *http.Server
	log    zerolog.Logger
	db     *database.DB
	cfg    *config.Config

	creditScoreHandler     *creditscore.Handler
	affordabilityHandler   *affordability.Handler
	recommendationsHandler *recommendations.Handler
	analysisHandler        *analysis.Handler
	advisorHandler         *advisor.Handler
	historyHandler         *history.Handler
	systemHandlers         *SystemHandlers
}

// New creates a new HTTP server
func New(cfg Config) *Server {
	s := &Server{
		router:                 chi.NewRouter(),
		log:                    cfg.Log.With().Str("component", "server").Logger(),
		db:                     cfg.DB,
		cfg:                    cfg.Config,
		creditScoreHandler:     cfg.CreditScoreHandler,
		affordabilityHandler:   cfg.AffordabilityHandler,
		recommendationsHandler: cfg.RecommendationsHandler,
		analysisHandler:        cfg.AnalysisHandler,
		advisorHandler:         cfg.AdvisorHandler,
		historyHandler:         cfg.HistoryHandler,
		systemHandlers:         NewSystemHandlers(cfg.Log, cfg.Config.DataDir, cfg.DB),
	}

	s.setupMiddleware(cfg.DevMode)
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupMiddleware configures middleware
func (s *Server) setupMiddleware(devMode bool) {
	// Recovery from panics
	s.router.Use(middleware.Recoverer)

	// Request ID
	s.router.Use(middleware.RequestID)

	// Real IP
	s.router.Use(middleware.RealIP)

	// Logging
	s.router.Use(s.loggingMiddleware)

	// Timeout
	s.router.Use(middleware.Timeout(60 * time.Second))

	// CORS
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Compress responses
	if !devMode {
		s.router.Use(middleware.Compress(5))
	}
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		r.Route("/system", func(r chi.Router) {
			r.Get("/status", s.systemHandlers.HandleSystemStatus)
			r.Get("/database/stats", s.systemHandlers.HandleDatabaseStats)
		})

		r.Route("/analysis", func(r chi.Router) {
			r.Post("/credit-score", s.creditScoreHandler.Analyze)
			r.Post("/affordability", s.affordabilityHandler.Assess)
			r.Post("/recommendations", s.recommendationsHandler.Recommend)
			r.Post("/full", s.analysisHandler.Full)
		})

		r.Get("/catalog", s.recommendationsHandler.Catalog)

		r.Post("/advisor/ask", s.advisorHandler.Ask)

		r.Route("/history", func(r chi.Router) {
			r.Get("/", s.historyHandler.List)
			r.Get("/{uuid}", s.historyHandler.Get)
		})
	})
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.log.Info().Int("port", s.cfg.Port).Msg("Starting HTTP server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// Router returns the configured router. Used by tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// loggingMiddleware logs HTTP requests
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration_ms", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("HTTP request")
	})
}
