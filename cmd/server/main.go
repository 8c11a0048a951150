// Package main is the entry point for the CreditSense financial analysis
// and recommendation engine. The service decomposes credit scores into
// weighted factors, assesses loan affordability with full amortization
// schedules, ranks credit card recommendations against a seeded catalog,
// and optionally relays advisory questions to a text completion provider.
//
// The application follows clean architecture principles:
// - Analysis engines are pure (no infrastructure dependencies)
// - Repository pattern for data access
// - Service layer for business logic
// - HTTP handlers for API endpoints
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/nileshkr/creditsense/internal/clients/openai"
	"github.com/nileshkr/creditsense/internal/config"
	"github.com/nileshkr/creditsense/internal/database"
	"github.com/nileshkr/creditsense/internal/modules/advisor"
	"github.com/nileshkr/creditsense/internal/modules/affordability"
	"github.com/nileshkr/creditsense/internal/modules/analysis"
	"github.com/nileshkr/creditsense/internal/modules/creditscore"
	"github.com/nileshkr/creditsense/internal/modules/history"
	"github.com/nileshkr/creditsense/internal/modules/recommendations"
	"github.com/nileshkr/creditsense/internal/scheduler"
	"github.com/nileshkr/creditsense/internal/server"
	"github.com/nileshkr/creditsense/pkg/logger"
)

func main() {
	// Load configuration first to get log level
	cfg, err := config.Load()
	if err != nil {
		fallbackLog := logger.New(logger.Config{
			Level:  "info",
			Pretty: true,
		})
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})

	log.Info().Msg("Starting CreditSense")

	// Single SQLite database holds the card catalog and analysis snapshots
	db, err := database.New(database.Config{
		Path: filepath.Join(cfg.DataDir, "creditsense.db"),
		Name: "creditsense",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	defer db.Close()

	// Repositories
	catalogRepo := recommendations.NewCatalogRepository(db.Conn(), log)
	if err := catalogRepo.EnsureSchema(); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize catalog schema")
	}
	if err := catalogRepo.Seed(recommendations.DefaultCatalog()); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed card catalog")
	}

	historyRepo := history.NewRepository(db.Conn(), log)
	if err := historyRepo.EnsureSchema(); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize history schema")
	}

	// Analysis engines
	analyzer := creditscore.NewAnalyzer(creditscore.DefaultConfig())
	affordSvc := affordability.NewService(affordability.DefaultConfig())
	recommender := recommendations.NewService(recommendations.DefaultScoringWeights())
	analysisSvc := analysis.NewService(analyzer, affordSvc, recommender, catalogRepo, log)

	// Advisor (optional: requires an API key)
	var provider advisor.TextCompletionProvider
	if cfg.OpenAIAPIKey != "" {
		provider = openai.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, log)
		log.Info().Str("model", cfg.OpenAIModel).Msg("Advisor provider configured")
	} else {
		log.Warn().Msg("OPENAI_API_KEY not set - advisor endpoint will report unavailable")
	}
	advisorSvc := advisor.NewService(provider, log)

	// Background jobs
	sched := scheduler.New(log)
	retentionJob := history.NewRetentionJob(historyRepo, cfg.SnapshotRetentionDays, log)
	if err := sched.AddJob("@daily", retentionJob); err != nil {
		log.Fatal().Err(err).Msg("Failed to register retention job")
	}
	sched.Start()
	defer sched.Stop()

	// HTTP server
	srv := server.New(server.Config{
		Log:     log,
		DB:      db,
		Config:  cfg,
		Port:    cfg.Port,
		DevMode: cfg.DevMode,

		CreditScoreHandler:     creditscore.NewHandler(analyzer, log),
		AffordabilityHandler:   affordability.NewHandler(affordSvc, log),
		RecommendationsHandler: recommendations.NewHandler(recommender, catalogRepo, log),
		AnalysisHandler:        analysis.NewHandler(analysisSvc, historyRepo, log),
		AdvisorHandler:         advisor.NewHandler(advisorSvc, analysisSvc, log),
		HistoryHandler:         history.NewHandler(historyRepo, log),
	})

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Int("port", cfg.Port).Msg("Server started successfully")

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server shutdown failed")
	}

	// Truncate the WAL so the next startup opens a compact database
	if err := db.WALCheckpoint("TRUNCATE"); err != nil {
		log.Warn().Err(err).Msg("WAL checkpoint on shutdown failed")
	}

	log.Info().Msg("CreditSense stopped")
}
