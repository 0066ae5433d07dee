package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"transaction-tree/internal/config"
	"transaction-tree/internal/database"
	"transaction-tree/internal/handlers"
	"transaction-tree/internal/middleware"
	"transaction-tree/internal/repositories"
	"transaction-tree/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg := config.Load()

	logger := setupLogging(cfg.Logging)

	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	metrics := services.NewPrometheusMetrics(prometheus.DefaultRegisterer)
	aggregationLogger := services.NewAggregationLogger(logger)

	transactionRepo := repositories.NewTransactionRepository(db.DB)

	aggregator, err := services.NewSubtreeAggregator(transactionRepo, &cfg.Aggregation, metrics, aggregationLogger)
	if err != nil {
		log.Fatalf("Failed to build subtree aggregator: %v", err)
	}
	transactionService := services.NewTransactionService(transactionRepo, aggregator, metrics, aggregationLogger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiter(ctx, cfg.Security))

	handlers.RegisterRoutes(e,
		handlers.NewTransactionHandler(transactionService, aggregator),
		handlers.NewHealthCheckHandler(db.DB, aggregator.Strategy()),
		prometheus.DefaultGatherer,
	)

	srv := &http.Server{
		Addr:         cfg.Address(),
		Handler:      e,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("server starting",
			"address", srv.Addr,
			"environment", cfg.Server.Environment,
			"db_driver", cfg.Database.Driver,
			"aggregation_strategy", aggregator.Strategy(),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server stopped")
}

// setupLogging installs the process-wide slog handler and returns it
func setupLogging(cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
