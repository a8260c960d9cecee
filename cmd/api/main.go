package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"advanx_funnel_backend/internal/admin"
	adminrepo "advanx_funnel_backend/internal/admin/repository"
	"advanx_funnel_backend/internal/diagnostic"
	"advanx_funnel_backend/internal/funnel"
	"advanx_funnel_backend/internal/funnel/store"
	apphttp "advanx_funnel_backend/internal/http"
	"advanx_funnel_backend/internal/http/router"
	"advanx_funnel_backend/internal/notification"
	"advanx_funnel_backend/internal/tracking"
	"advanx_funnel_backend/platform/ai/openaicompat"
	"advanx_funnel_backend/platform/config"
	"advanx_funnel_backend/platform/db"
	"advanx_funnel_backend/platform/events"
	"advanx_funnel_backend/platform/logger"
	"advanx_funnel_backend/platform/metrics"
	"advanx_funnel_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	if err := withRetry(ctx, log, "database migrations", 5, 2*time.Second, func() error {
		return db.RunMigrations(ctx, cfg, "migrations")
	}); err != nil {
		log.Error("failed to run database migrations", "error", err)
		panic("failed to run database migrations: " + err.Error())
	}
	log.Info("database migrations complete")

	var pool *pgxpool.Pool
	if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
		p, err := db.NewPool(ctx, cfg)
		if err != nil {
			return err
		}
		pool = p
		return nil
	}); err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()
	log.Info("database connection established")

	// Session store: Redis when configured, in-memory otherwise
	sessions, closeSessions := initSessionStore(ctx, cfg, log)
	if closeSessions != nil {
		defer closeSessions()
	}

	// Event bus for decoupled communication between modules
	eventBus := events.NewInMemoryBus(log)

	// Shared validator instance for dependency injection
	val := validator.New()

	// Prometheus metrics registry
	met := metrics.New()

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	// Tracking dispatcher, seeded with pixel configurations from the database
	var sink tracking.Sink
	if cfg.GetTrackingCollectorURL() != "" {
		sink = tracking.NewHTTPSink(cfg.GetTrackingCollectorURL())
		log.Info("tracking collector enabled", "url", cfg.GetTrackingCollectorURL())
	}
	dispatcher := tracking.NewDispatcher(sink, eventBus, log, met)
	loadPixelConfigs(ctx, pool, dispatcher, log)

	// Diagnostic generator: AI provider when configured, rules otherwise
	generator := initDiagnosticGenerator(ctx, cfg, log, met)

	// Notification module subscribes to domain events (not HTTP-facing)
	notificationModule := notification.New(notification.NewSMTPSender(cfg), cfg.GetLeadNotifyAddress(), cfg.IsEmailEnabled(), log)
	notificationModule.RegisterHandlers(eventBus)

	// Initialize domain modules
	funnelModule := funnel.NewModule(pool, sessions, dispatcher, generator, eventBus, val, log, met, cfg.WhatsAppGroupLink)
	adminModule := admin.NewModule(pool, dispatcher, sessions, eventBus, cfg, val, log, met)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:   cfg,
		Logger:   log,
		Health:   db.NewPoolAdapter(pool),
		EventBus: eventBus,
		Metrics:  met,
		Modules: []apphttp.Module{
			funnelModule,
			adminModule,
		},
	}

	engine := router.New(app)

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- engine.Run(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = shutdownCtx
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

func initSessionStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (store.Store, func()) {
	if !cfg.IsRedisEnabled() {
		log.Warn("REDIS_URL not configured; using in-memory session store")
		return store.NewMemoryStore(), nil
	}

	opts, err := redis.ParseURL(cfg.GetRedisURL())
	if err != nil {
		log.Error("invalid REDIS_URL", "error", err)
		panic("invalid REDIS_URL: " + err.Error())
	}
	client := redis.NewClient(opts)

	if err := withRetry(ctx, log, "redis connection", 5, 2*time.Second, func() error {
		return client.Ping(ctx).Err()
	}); err != nil {
		log.Error("failed to connect to redis", "error", err)
		panic("failed to connect to redis: " + err.Error())
	}
	log.Info("redis connection established", "sessionTTL", cfg.GetSessionTTL())

	return store.NewRedisStore(client, cfg.GetSessionTTL()), func() {
		_ = client.Close()
	}
}

func initDiagnosticGenerator(ctx context.Context, cfg config.DiagnosticConfig, log *logger.Logger, met *metrics.Metrics) diagnostic.Generator {
	if !cfg.IsDiagnosticEnabled() {
		log.Warn("no AI provider configured; diagnostics use rule-based generation")
		return diagnostic.NewRuleBasedGenerator(met)
	}

	switch cfg.GetDiagnosticProvider() {
	case "gemini":
		client, err := diagnostic.NewGeminiClient(ctx, cfg.GetGeminiAPIKey(), cfg.GetGeminiModel())
		if err != nil {
			log.Error("failed to initialize gemini client; falling back to rules", "error", err)
			return diagnostic.NewRuleBasedGenerator(met)
		}
		log.Info("diagnostic generator initialized", "provider", "gemini", "model", cfg.GetGeminiModel())
		return diagnostic.NewAIGenerator(client, cfg.GetDiagnosticTimeout(), log, met)
	default:
		client := openaicompat.New(openaicompat.Config{
			APIKey:  cfg.GetOpenAIAPIKey(),
			BaseURL: cfg.GetOpenAIBaseURL(),
			Model:   cfg.GetOpenAIModel(),
		})
		log.Info("diagnostic generator initialized", "provider", "openai", "model", cfg.GetOpenAIModel())
		return diagnostic.NewAIGenerator(diagnostic.NewOpenAIClient(client), cfg.GetDiagnosticTimeout(), log, met)
	}
}

// loadPixelConfigs seeds the dispatcher with the persisted pixel set. A
// failure here is not fatal: the admin can re-save pixels once the
// database recovers.
func loadPixelConfigs(ctx context.Context, pool *pgxpool.Pool, dispatcher *tracking.Dispatcher, log *logger.Logger) {
	configs, err := adminrepo.New(pool).GetPixelConfigs(ctx)
	if err != nil {
		log.Error("failed to load pixel configurations", "error", err)
		return
	}
	dispatcher.SetConfigurations(configs)
	log.Info("pixel configurations loaded", "count", len(configs))
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return errors.New(name + ": " + lastErr.Error())
}
