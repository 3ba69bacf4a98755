package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "farm.alerts", cfg.Kafka.TopicAlerts)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "en", cfg.Farm.Language)
	assert.Equal(t, 30*time.Minute, cfg.Farm.PollInterval)
	assert.Equal(t, "redis", cfg.Farm.HistoryBackend)
	assert.Equal(t, "https://api.open-meteo.com", cfg.Weather.BaseURL)
	assert.Equal(t, "https://nominatim.openstreetmap.org", cfg.Weather.GeocodeURL)
	assert.Equal(t, "Asia/Kolkata", cfg.Farm.Timezone)
	assert.Equal(t, "farm.alerts.dead-letter", cfg.Kafka.TopicDeadLetter)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("FARM_LATITUDE", "19.9975")
	t.Setenv("FARM_LONGITUDE", "73.7898")
	t.Setenv("FARM_LANGUAGE", "mr")
	t.Setenv("FARM_POLL_INTERVAL", "15m")
	t.Setenv("HISTORY_BACKEND", "postgres")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")

	cfg, err := Load()
	require.NoError(t, err)

	assert.InDelta(t, 19.9975, cfg.Farm.Latitude, 1e-9)
	assert.InDelta(t, 73.7898, cfg.Farm.Longitude, 1e-9)
	assert.Equal(t, "mr", cfg.Farm.Language)
	assert.Equal(t, 15*time.Minute, cfg.Farm.PollInterval)
	assert.Equal(t, "postgres", cfg.Farm.HistoryBackend)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"latitude out of range", "FARM_LATITUDE", "91"},
		{"unknown history backend", "HISTORY_BACKEND", "sqlite"},
		{"poll interval too short", "FARM_POLL_INTERVAL", "10s"},
		{"bad log level", "LOG_LEVEL", "trace"},
		{"weather url not a url", "WEATHER_BASE_URL", "open-meteo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "configuration validation failed")
		})
	}
}

func TestLoad_SkipValidation(t *testing.T) {
	t.Setenv("HISTORY_BACKEND", "sqlite")
	t.Setenv("CONFIG_SKIP_VALIDATION", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Farm.HistoryBackend)
}

func TestDatabaseConnectionString(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "advisory", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=advisory sslmode=disable", d.ConnectionString())
}
