package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hke-expeditions/trip-backend/internal/api/router"
	appconfig "github.com/hke-expeditions/trip-backend/internal/config"
	"github.com/hke-expeditions/trip-backend/internal/leads"
	"github.com/hke-expeditions/trip-backend/internal/notify"
	"github.com/hke-expeditions/trip-backend/internal/observability/metrics"
	"github.com/hke-expeditions/trip-backend/internal/planner"
	"github.com/hke-expeditions/trip-backend/internal/sheets"
	"github.com/hke-expeditions/trip-backend/pkg/logging"
)

func main() {
	// Local development convenience; absent .env is fine.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting hke-trip-backend API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	registry := prometheus.NewRegistry()
	leadMetrics := metrics.NewLeadMetrics(registry)
	plannerMetrics := metrics.NewPlannerMetrics(registry)

	// Lead write path. Credentials are resolved per call, so a writer built
	// from an incomplete config still starts; the insert fails with a
	// configuration error instead.
	writer := sheets.NewWriter(sheets.Config{
		CredentialsJSON: cfg.GoogleCredentialsJSON,
		CredentialsFile: cfg.GoogleCredentialsFile,
		SpreadsheetID:   cfg.SheetID,
		SheetTab:        cfg.SheetTab,
		ValueInput:      cfg.SheetsValueInput,
		Timeout:         cfg.SheetsTimeout,
	}, logger)

	var notifier leads.Notifier
	if sender := notify.NewSendGridSender(notify.SendGridConfig{
		APIKey:    cfg.SendGridAPIKey,
		FromEmail: cfg.SendGridFromEmail,
		FromName:  cfg.SendGridFromName,
	}, logger); sender != nil && len(cfg.LeadNotifyEmails) > 0 {
		notifier = notify.NewService(sender, cfg.LeadNotifyEmails, logger)
	} else {
		logger.Info("lead email notifications disabled")
	}

	leadService := leads.NewService(writer, notifier, leadMetrics, logger)
	leadsHandler := leads.NewHandler(leadService, logger)

	plannerHandler := buildPlannerHandler(cfg, plannerMetrics, logger)

	r := router.New(&router.Config{
		Logger:             logger,
		LeadsHandler:       leadsHandler,
		PlannerHandler:     plannerHandler,
		MetricsHandler:     promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimitPerSecond: cfg.RateLimitPerSecond,
		RateLimitBurst:     cfg.RateLimitBurst,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
	fmt.Println("Server exited gracefully")
}

// buildPlannerHandler wires the itinerary LLM chain: OpenAI as primary,
// Gemini as fallback when both are configured. Returns nil when no provider
// key is present, which leaves the /api/ai routes unregistered.
func buildPlannerHandler(cfg *appconfig.Config, m *metrics.PlannerMetrics, logger *logging.Logger) *planner.Handler {
	var clients []planner.Client

	if cfg.OpenAIAPIKey != "" {
		c, err := planner.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
		if err != nil {
			logger.Error("openai client init failed", "error", err)
		} else {
			clients = append(clients, c)
			logger.Info("openai planner configured", "model", cfg.OpenAIModel)
		}
	}

	if cfg.GeminiAPIKey != "" {
		c, err := planner.NewGeminiClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Error("gemini client init failed", "error", err)
		} else {
			clients = append(clients, c)
			logger.Info("gemini planner configured", "model", cfg.GeminiModel)
		}
	}

	var llm planner.Client
	switch len(clients) {
	case 0:
		logger.Info("no LLM provider configured, itinerary endpoints disabled")
		return nil
	case 1:
		llm = clients[0]
	default:
		llm = planner.NewFallbackClient(clients[0], clients[1], logger)
	}

	svc := planner.NewService(llm, cfg.PlannerMaxTokens, m, logger)
	return planner.NewHandler(svc, logger)
}
