package main

import (
	"context"
	"log"
	"time"

	"nfe-tracker/internal/core/cache"
	"nfe-tracker/internal/core/config"
	"nfe-tracker/internal/core/logger"
	"nfe-tracker/internal/core/server"
	exporthandler "nfe-tracker/internal/features/export/handler"
	historyadapter "nfe-tracker/internal/features/history/adapters"
	historyhandler "nfe-tracker/internal/features/history/handler"
	historyservice "nfe-tracker/internal/features/history/service"
	summaryadapter "nfe-tracker/internal/features/summary/adapters"
	summaryhandler "nfe-tracker/internal/features/summary/handler"
	summaryservice "nfe-tracker/internal/features/summary/service"
	trackingadapter "nfe-tracker/internal/features/tracking/adapters"
	trackinghandler "nfe-tracker/internal/features/tracking/handler"
	trackingservice "nfe-tracker/internal/features/tracking/service"

	"go.uber.org/zap"
)

// @title NFe Tracker API
// @version 1.0
// @description This API tracks NF-e shipments by access key, normalizing carrier responses into a single format.
// @contact.name API Support
// @contact.email support@nfetracker.com
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	// Initialize Redis-backed lookup journal
	redisCache, err := cache.NewRedisAdapter(cfg.Redis.URL)
	if err != nil {
		l.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisCache.Close()

	if err := redisCache.Ping(context.Background()); err != nil {
		l.Fatal("Redis ping failed", zap.Error(err))
	}
	l.Info("Redis connection verified")

	journalRepo := historyadapter.NewRedisJournalRepository(redisCache, cfg.Redis.HistoryLimit)
	historySvc := historyservice.NewHistoryService(journalRepo)
	historyHdl := historyhandler.NewHistoryHandler(historySvc)

	// Initialize Tracking Provider, Service & Handler
	sswAdapter := trackingadapter.NewSSWAdapter(
		cfg.Tracking.APIURL,
		time.Duration(cfg.Tracking.TimeoutSeconds)*time.Second,
	)
	trackingSvc := trackingservice.NewTrackingService(sswAdapter, historySvc)
	trackingHdl := trackinghandler.NewTrackingHandler(trackingSvc)

	// Initialize Summary Service & Handler. Without an API key the service
	// degrades to a placeholder summary.
	summarySvc := summaryservice.NewSummaryService(nil)
	if cfg.Gemini.APIKey != "" {
		geminiAdapter, err := summaryadapter.NewGeminiAdapter(context.Background(), cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			l.Warn("Gemini client initialization failed, summaries disabled", zap.Error(err))
		} else {
			summarySvc = summaryservice.NewSummaryService(geminiAdapter)
		}
	} else {
		l.Warn("GEMINI_API_KEY not set, summaries disabled")
	}
	summaryHdl := summaryhandler.NewSummaryHandler(trackingSvc, summarySvc)

	// Initialize PDF Export Handler
	exportHdl := exporthandler.NewExportHandler(trackingSvc)

	srv := server.New(cfg)

	// Register Routes
	srv.App.Get("/tracking/:key", trackingHdl.GetTracking)
	srv.App.Post("/tracking/xml", trackingHdl.TrackFromXML)
	srv.App.Get("/tracking/:key/summary", summaryHdl.GetSummary)
	srv.App.Get("/tracking/:key/pdf", exportHdl.GetPDF)
	srv.App.Get("/history", historyHdl.GetHistory)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
