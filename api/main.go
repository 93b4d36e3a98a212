package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/smart-retail-ops/internal/classifier"
	"github.com/rogerio-castellano/smart-retail-ops/internal/classlog"
	"github.com/rogerio-castellano/smart-retail-ops/internal/config"
	"github.com/rogerio-castellano/smart-retail-ops/internal/http/handlers"
	rl "github.com/rogerio-castellano/smart-retail-ops/internal/http/rate_limiter"
	"github.com/rogerio-castellano/smart-retail-ops/internal/http/router"
	"github.com/rogerio-castellano/smart-retail-ops/internal/inventory"
	"github.com/rogerio-castellano/smart-retail-ops/internal/logging"
	"github.com/rogerio-castellano/smart-retail-ops/internal/repo"
)

// @title Smart Retail Ops API
// @version 1.0
// @description Inventory with ABC classification, stock thresholds and CSV/PDF reports.
// @host localhost:8080
// @BasePath /
func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := repo.Open(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer store.Close()
	slog.Info("inventory store ready", "driver", cfg.Database.Driver)

	completer := classifier.NewOpenAICompleter(classifier.OpenAIConfig{
		BaseURL:            cfg.Classifier.BaseURL,
		APIKey:             cfg.Classifier.APIKey,
		Model:              cfg.Classifier.Model,
		Timeout:            cfg.Classifier.Timeout,
		InsecureSkipVerify: cfg.Classifier.InsecureSkipVerify,
	})

	recorder, closeLog, err := openClassificationLog(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer closeLog()

	svc := inventory.NewService(inventory.Deps{
		Items:      store.Items,
		Thresholds: store.Thresholds,
		Classifier: classifier.New(completer),
		Log:        recorder,
		Model:      completer.Model(),
	})

	var limiter *rl.Limiter
	if cfg.RateLimit.Enabled {
		limiter = rl.New(cfg.RateLimit.RPS, cfg.RateLimit.Burst, cfg.RateLimit.IdleTTL)
		go limiter.StartCleanupLoop(ctx, time.Minute)
	}

	srv := &http.Server{
		Addr: cfg.Server.Addr,
		Handler: router.NewRouter(handlers.NewHandler(svc), router.Options{
			AllowedOrigins: cfg.Server.AllowedOrigins,
			TrustProxy:     cfg.Server.TrustProxy,
			Limiter:        limiter,
		}),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server running", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openClassificationLog uses Redis when an address is configured and falls
// back to an in-process log otherwise.
func openClassificationLog(ctx context.Context, cfg config.RedisConfig) (classlog.Recorder, func(), error) {
	if cfg.Addr == "" {
		slog.Info("classification log kept in memory")
		return classlog.NewMemoryRecorder(cfg.LogSize), func() {}, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		rdb.Close()
		return nil, nil, err
	}
	slog.Info("classification log in redis", "addr", cfg.Addr)
	return classlog.NewRedisRecorder(rdb, cfg.LogSize), func() { rdb.Close() }, nil
}
