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

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/smukkama/crop-advisory/internal/advisory"
	"github.com/smukkama/crop-advisory/internal/api"
	"github.com/smukkama/crop-advisory/internal/app"
	"github.com/smukkama/crop-advisory/pkg/config"
	"github.com/smukkama/crop-advisory/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := app.Logger(cfg, "advisory-api")
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	collector := metrics.NewCollector("advisory", prometheus.DefaultRegisterer)

	store, closeStore, err := app.OpenHistory(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to open alert history", zap.Error(err))
	}
	defer closeStore()

	farmZone, err := app.FarmLocation(cfg)
	if err != nil {
		logger.Fatal("failed to load farm timezone", zap.Error(err))
	}

	// The API only reads advisories; the alerter owns dispatch.
	source := app.WeatherClient(cfg, logger, collector)
	service := advisory.NewService(source, store, nil, collector, logger, nil, advisory.WithLocation(farmZone))

	router := mux.NewRouter()
	api.NewAdvisoryHandler(service, logger, collector).RegisterRoutes(router)
	router.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down HTTP server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}
	logger.Info("server exited")
}
