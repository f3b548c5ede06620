package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/DanielPopoola/bambora-gateway/internal/application"
	"github.com/DanielPopoola/bambora-gateway/internal/application/services"
	"github.com/DanielPopoola/bambora-gateway/internal/config"
	"github.com/DanielPopoola/bambora-gateway/internal/gateway"
	"github.com/DanielPopoola/bambora-gateway/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/bambora-gateway/internal/interfaces/rest/server"
	"github.com/DanielPopoola/bambora-gateway/internal/journal"
	"github.com/DanielPopoola/bambora-gateway/internal/observability/metrics"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting gateway service",
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
		"journal_enabled", cfg.Database.Enabled,
	)

	ctx := context.Background()

	var (
		txJournal application.Journal
		pinger    handlers.Pinger
	)
	if cfg.Database.Enabled {
		db, err := journal.Connect(ctx, &cfg.Database, logger)
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		if err := db.Migrate(ctx); err != nil {
			logger.Error("failed to migrate database", "error", err)
			os.Exit(1)
		}

		txJournal = journal.NewRepository(db.Pool)
		pinger = db
	}

	gw, err := gateway.NewFromConfig(gateway.Config{
		MerchantID:     cfg.Bambora.MerchantID,
		PaymentsAPIKey: cfg.Bambora.PaymentsAPIKey,
		BaseURL:        cfg.Bambora.BaseURL,
		Timeout:        cfg.Bambora.Timeout,
	}, logger)
	if err != nil {
		logger.Error("failed to build gateway", "error", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	gatewayMetrics := metrics.NewGatewayMetrics(registry, metrics.Config{
		ServiceName: "bambora-gateway",
		Environment: cfg.Primary.Env,
	})

	paymentService := services.NewPaymentService(gw, txJournal, gatewayMetrics, logger)

	handler, err := server.NewHandler(ctx, server.Deps{
		Service:        paymentService,
		Pinger:         pinger,
		Gatherer:       registry,
		Logger:         logger,
		RequestTimeout: cfg.Server.RequestTimeout,
	})
	if err != nil {
		logger.Error("failed to build http handler", "error", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
