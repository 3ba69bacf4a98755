// Package app holds the start-up wiring shared by the binaries.
package app

import (
	"context"
	"fmt"
	"time"
	_ "time/tzdata" // zone names resolve in minimal images

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/smukkama/crop-advisory/internal/database"
	"github.com/smukkama/crop-advisory/internal/history"
	"github.com/smukkama/crop-advisory/internal/weather"
	"github.com/smukkama/crop-advisory/pkg/config"
	"github.com/smukkama/crop-advisory/pkg/logger"
	"github.com/smukkama/crop-advisory/pkg/metrics"
)

// Logger builds the service logger from the Log section
func Logger(cfg *config.Config, defaultService string) (*zap.Logger, error) {
	service := cfg.Log.ServiceName
	if service == "" {
		service = defaultService
	}
	return logger.NewLogger(cfg.Log.Level, cfg.Log.Format, service)
}

// OpenHistory connects whatever the configured history backend needs.
// The returned func releases those connections.
func OpenHistory(ctx context.Context, cfg *config.Config, log *zap.Logger) (history.Backend, func(), error) {
	var (
		redisClient *redis.Client
		db          *database.DB
		closers     []func()
	)
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	switch cfg.Farm.HistoryBackend {
	case history.BackendRedis:
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		closers = append(closers, func() { redisClient.Close() })

		if err := redisClient.Ping(ctx).Err(); err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		log.Info("connected to Redis", zap.String("addr", cfg.Redis.Addr))

	case history.BackendPostgres:
		var err error
		db, err = database.Connect(cfg.Database.ConnectionString(), log)
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, func() { db.Close() })

		if err := db.RunMigrations("migrations"); err != nil {
			closeAll()
			return nil, nil, err
		}
		log.Info("connected to database", zap.String("host", cfg.Database.Host))
	}

	store, err := history.Open(cfg.Farm.HistoryBackend, redisClient, db, nil)
	if err != nil {
		closeAll()
		return nil, nil, err
	}

	log.Info("history store ready", zap.String("backend", cfg.Farm.HistoryBackend))
	return store, closeAll, nil
}

// WeatherClient builds the Open-Meteo client from the Weather section
func WeatherClient(cfg *config.Config, log *zap.Logger, m *metrics.Collector) *weather.Client {
	opts := []weather.Option{weather.WithMetrics(m)}
	if cfg.Weather.GeocodeURL != "" {
		opts = append(opts, weather.WithGeocoder(cfg.Weather.GeocodeURL))
	}
	return weather.NewClient(cfg.Weather.BaseURL, cfg.Weather.Timeout, log, opts...)
}

// FarmLocation loads the farm's time zone from the Farm section
func FarmLocation(cfg *config.Config) (*time.Location, error) {
	loc, err := time.LoadLocation(cfg.Farm.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid farm timezone %q: %w", cfg.Farm.Timezone, err)
	}
	return loc, nil
}
