package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/sandeepmed2/property-registration/pkg/bootstrap"
	"github.com/sandeepmed2/property-registration/pkg/config"
	"github.com/sandeepmed2/property-registration/pkg/metrics"
	"github.com/sandeepmed2/property-registration/pkg/registry"
	"github.com/sandeepmed2/property-registration/pkg/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx := context.Background()

	ledger, closeLedger, err := bootstrap.NewLedger(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("unable to open ledger: %v", err)
	}
	defer closeLedger()

	publisher, closePublisher, err := bootstrap.NewPublisher(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("unable to create event publisher: %v", err)
	}
	defer closePublisher()

	svc := registry.NewService(ledger,
		registry.WithPublisher(publisher),
		registry.WithRecorder(metrics.NewPrometheus(prometheus.DefaultRegisterer)),
		registry.WithLogger(logger),
	)

	router := server.NewRouter(svc, prometheus.DefaultGatherer, logger)

	logger.Info("Starting server", "port", cfg.HTTPPort, "ledger", cfg.LedgerBackend, "events", cfg.EventsBackend)

	if err := http.ListenAndServe(":"+cfg.HTTPPort, router); err != nil {
		logger.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
