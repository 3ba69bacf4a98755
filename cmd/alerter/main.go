package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/smukkama/crop-advisory/internal/advisory"
	"github.com/smukkama/crop-advisory/internal/app"
	"github.com/smukkama/crop-advisory/internal/queue"
	"github.com/smukkama/crop-advisory/pkg/config"
	"github.com/smukkama/crop-advisory/pkg/metrics"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := app.Logger(cfg, "alerter")
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("starting alerter",
		zap.Float64("latitude", cfg.Farm.Latitude),
		zap.Float64("longitude", cfg.Farm.Longitude),
		zap.Duration("poll_interval", cfg.Farm.PollInterval),
		zap.String("timezone", cfg.Farm.Timezone),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	collector := metrics.NewCollector("advisory", prometheus.DefaultRegisterer)

	store, closeStore, err := app.OpenHistory(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to open alert history", zap.Error(err))
	}
	defer closeStore()

	if err := queue.CreateTopic(cfg.Kafka.Brokers, cfg.Kafka.TopicAlerts, 1, 1); err != nil {
		logger.Warn("could not create alerts topic", zap.String("topic", cfg.Kafka.TopicAlerts), zap.Error(err))
	}

	producer := queue.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.TopicAlerts)
	defer producer.Close()
	logger.Info("alert producer initialized", zap.String("topic", cfg.Kafka.TopicAlerts))

	farmZone, err := app.FarmLocation(cfg)
	if err != nil {
		logger.Fatal("failed to load farm timezone", zap.Error(err))
	}

	source := app.WeatherClient(cfg, logger, collector)
	service := advisory.NewService(source, store, producer, collector, logger, nil, advisory.WithLocation(farmZone))

	// Metrics endpoint
	metricsServer := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           promhttp.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	poll := func() {
		result, err := service.Run(ctx, cfg.Farm.Latitude, cfg.Farm.Longitude, cfg.Farm.Language)
		if err != nil {
			logger.Error("advisory run failed", zap.Error(err))
		}
		logger.Info("advisory run complete",
			zap.Int("sent", result.Sent),
			zap.Int("suppressed", result.Suppressed),
			zap.Int("failed", result.Failed),
		)
	}

	poll()

	ticker := time.NewTicker(cfg.Farm.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			poll()
		case <-ctx.Done():
			logger.Info("shutting down alerter")

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			if err := metricsServer.Shutdown(shutdownCtx); err != nil {
				logger.Warn("metrics server shutdown", zap.Error(err))
			}
			return
		}
	}
}
