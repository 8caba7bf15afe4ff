package api

import (
	"encoding/json"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/novavoice/nova-core/internal/api/handlers"
	mw "github.com/novavoice/nova-core/internal/api/middleware"
	"github.com/novavoice/nova-core/internal/buildconfig"
	"github.com/novavoice/nova-core/internal/classify"
	"github.com/novavoice/nova-core/internal/config"
	"github.com/novavoice/nova-core/internal/domain"
	"github.com/novavoice/nova-core/internal/embedding"
	"github.com/novavoice/nova-core/internal/llm"
	"github.com/novavoice/nova-core/internal/platform"
	"github.com/novavoice/nova-core/internal/service"
	"github.com/novavoice/nova-core/internal/store"
)

// App holds the router and background services for lifecycle management.
type App struct {
	Router    *chi.Mux
	Reminders *service.ReminderService

	history      *service.HistoryService
	startTime    time.Time
	requestCount atomic.Int64
	errorCount   atomic.Int64
}

func NewApp(db *pgxpool.Pool, logger *zap.Logger) *App {
	// Stores
	reminderStore := store.NewReminderStore(db)
	utteranceStore := store.NewUtteranceStore(db)

	// External clients via provider factory
	var embeddingClient domain.EmbeddingClient
	var llmClient domain.LLMClient

	llmProvider := config.LLMProvider()
	embeddingProvider := config.EmbeddingProvider()

	var err error
	llmClient, err = llm.NewClient(llmProvider, config.LLMAPIKey(), config.OllamaURL())
	if err != nil {
		logger.Warn("LLM client initialization failed", zap.String("provider", llmProvider), zap.Error(err))
	} else {
		logger.Info("LLM client initialized", zap.String("provider", llmProvider))
	}

	embeddingClient, err = embedding.NewClient(embeddingProvider, config.OpenAIAPIKey(), config.EmbeddingModel())
	if err != nil {
		logger.Warn("Embedding client initialization failed", zap.String("provider", embeddingProvider), zap.Error(err))
	} else if embeddingClient != nil {
		logger.Info("Embedding client initialized", zap.String("provider", embeddingProvider))
	}

	// Platform collaborators. Real launch, device, and notification effects
	// happen on the client; the server records them.
	launcher := platform.NewLogLauncher(logger)
	device := platform.NewLogDevice(logger)
	notifier := platform.NewLogNotifier(logger)

	// Core pipeline
	resolver := classify.NewAppResolver(nil)
	classifier := classify.New(resolver, classify.WithCacheSize(config.ClassifyCacheSize()))
	useAI := config.UseAIExtraction()

	// Services
	reminderSvc := service.NewReminderService(reminderStore, notifier, logger)
	analyzerSvc := service.NewAnalyzerService(llmClient, logger)
	executorSvc := service.NewExecutorService(launcher, device, reminderSvc, resolver, logger)
	historySvc := service.NewHistoryService(utteranceStore, embeddingClient, logger)
	ctxLog := service.NewContextLog(config.ContextMaxTurns(), 8*1024)
	routerSvc := service.NewRouterService(classifier, executorSvc, analyzerSvc, reminderSvc, llmClient, ctxLog, historySvc, useAI, logger)

	// Handlers
	classifyHandler := handlers.NewClassifyHandler(classifier, logger)
	queryHandler := handlers.NewQueryHandler(routerSvc, logger)
	timeParseHandler := handlers.NewTimeParseHandler(logger)
	reminderHandler := handlers.NewReminderHandler(analyzerSvc, reminderSvc, useAI, logger)
	utteranceHandler := handlers.NewUtteranceHandler(historySvc, logger)

	r := chi.NewRouter()

	app := &App{
		Router:    r,
		Reminders: reminderSvc,
		history:   historySvc,
		startTime: time.Now(),
	}

	// Metrics collector for middleware
	metricsCollector := mw.NewMetricsCollector(&app.requestCount, &app.errorCount)

	// Global middleware (order matters)
	r.Use(mw.RequestID)
	r.Use(middleware.RealIP)
	r.Use(metricsCollector.Middleware)
	r.Use(mw.Logging(logger))
	r.Use(middleware.Recoverer)
	r.Use(mw.RateLimit(config.RateLimitRPS(), config.RateLimitBurst()))

	r.Get("/health", healthHandler(db))
	r.Get("/stats", app.statsHandler())

	r.Route("/v1", func(r chi.Router) {
		r.Post("/classify", classifyHandler.Classify)
		r.Post("/query", queryHandler.Query)
		r.Post("/parse-time", timeParseHandler.Parse)

		r.Route("/reminders", func(r chi.Router) {
			r.Post("/analyze", reminderHandler.Analyze)
			r.Post("/", reminderHandler.Create)
			r.Get("/", reminderHandler.List)
			r.Delete("/{id}", reminderHandler.Delete)
		})

		r.Post("/utterances/similar", utteranceHandler.Similar)
	})

	return app
}

func healthHandler(db *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if err := db.Ping(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(map[string]string{"status": "error", "error": err.Error()})
			return
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"status":  "ok",
			"version": buildconfig.Version,
			"commit":  buildconfig.Commit,
		})
	}
}

func (app *App) statsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var memStats runtime.MemStats
		runtime.ReadMemStats(&memStats)

		uptime := time.Since(app.startTime)

		response := map[string]any{
			"uptime_seconds": uptime.Seconds(),
			"uptime_human":   uptime.Round(time.Second).String(),
			"request_count":  app.requestCount.Load(),
			"error_count":    app.errorCount.Load(),
			"goroutines":     runtime.NumGoroutine(),
			"memory": map[string]any{
				"alloc_mb": float64(memStats.Alloc) / 1024 / 1024,
				"sys_mb":   float64(memStats.Sys) / 1024 / 1024,
				"num_gc":   memStats.NumGC,
			},
		}

		if counts, err := app.history.IntentCounts(r.Context()); err == nil {
			response["intent_counts"] = counts
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}
