package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apphttp "tradequote_backend/internal/http"
	"tradequote_backend/internal/http/router"
	"tradequote_backend/internal/quotes"
	"tradequote_backend/internal/quotes/repository"
	"tradequote_backend/internal/quotes/service"
	"tradequote_backend/platform/ai/provider"
	"tradequote_backend/platform/config"
	"tradequote_backend/platform/logger"
	"tradequote_backend/platform/metrics"
	"tradequote_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr, "provider", cfg.GeneratorProvider)
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	store, closeStore := initStore(ctx, cfg, log)
	if closeStore != nil {
		defer closeStore()
	}

	generator, err := provider.New(ctx, cfg)
	if err != nil {
		log.Error("failed to initialize generator", "error", err)
		panic("failed to initialize generator: " + err.Error())
	}
	if generator == nil {
		log.Warn("no generator credential configured; every quote uses the fallback items", "provider", cfg.GeneratorProvider)
	}

	quoteMetrics := metrics.NewQuoteMetrics(prometheus.DefaultRegisterer)

	// Shared validator instance for dependency injection
	val := validator.New()

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	quoteService := service.New(store, log)
	quoteService.SetGenerator(generator, cfg.GetGenerationTimeout())
	quoteService.SetMetrics(quoteMetrics)
	quotesModule := quotes.NewModule(quoteService, val, cfg, log)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:  cfg,
		Logger:  log,
		Metrics: promhttp.Handler(),
		Modules: []apphttp.Module{
			quotesModule,
		},
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router.New(app),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// initStore picks the redis store when REDIS_URL is set and the in-process store
// otherwise. The returned func closes the redis client.
func initStore(ctx context.Context, cfg config.StoreConfig, log *logger.Logger) (repository.Store, func()) {
	if !cfg.IsRedisEnabled() {
		log.Warn("REDIS_URL not configured; saved quotes are kept in memory only")
		return repository.NewMemoryStore(), nil
	}

	var client *redis.Client
	if err := withRetry(ctx, log, "redis connection", 5, 2*time.Second, func() error {
		c, err := repository.OpenRedis(ctx, cfg.GetRedisURL())
		if err != nil {
			return err
		}
		client = c
		return nil
	}); err != nil {
		log.Error("failed to connect to redis", "error", err)
		panic("failed to connect to redis: " + err.Error())
	}
	log.Info("redis quote store ready", "ttl", cfg.GetQuoteTTL().String())

	return repository.NewRedisStore(client, cfg.GetQuoteTTL()), func() {
		_ = client.Close()
	}
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
