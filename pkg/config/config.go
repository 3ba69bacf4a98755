package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	SMTP     SMTPConfig
	Weather  WeatherConfig
	Farm     FarmConfig
	HTTP     HTTPConfig
	Log      LogConfig
}

type DatabaseConfig struct {
	Host     string `validate:"required"`
	Port     int    `validate:"min=1,max=65535"`
	User     string
	Password string
	DBName   string `validate:"required"`
	SSLMode  string
}

func (d DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type RedisConfig struct {
	Addr     string `validate:"required"`
	Password string
	DB       int `validate:"min=0"`
}

type KafkaConfig struct {
	Brokers         []string `validate:"required,min=1,dive,required"`
	TopicAlerts     string   `validate:"required"`
	TopicDeadLetter string
	GroupID         string `validate:"required"`
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
}

// WeatherConfig points at the Open-Meteo forecast API
type WeatherConfig struct {
	BaseURL    string        `validate:"required,url"`
	GeocodeURL string        `validate:"omitempty,url"`
	Timeout    time.Duration `validate:"min=0"`
}

// FarmConfig is the single location the alerter watches
type FarmConfig struct {
	Latitude       float64       `validate:"min=-90,max=90"`
	Longitude      float64       `validate:"min=-180,max=180"`
	Language       string        `validate:"required"`
	Timezone       string        `validate:"required"` // IANA name; alert days follow it
	PollInterval   time.Duration `validate:"min=1m"`
	HistoryBackend string        `validate:"oneof=memory redis postgres"`
}

type HTTPConfig struct {
	Addr string `validate:"required"`
}

type LogConfig struct {
	Level       string `validate:"oneof=debug info warn error"`
	Format      string `validate:"oneof=json console"`
	ServiceName string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not present)
	_ = godotenv.Load()

	config := &Config{
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "advisory_user"),
			Password: getEnv("DB_PASSWORD", "advisory_pass"),
			DBName:   getEnv("DB_NAME", "advisory_db"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Kafka: KafkaConfig{
			Brokers:         strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
			TopicAlerts:     getEnv("KAFKA_TOPIC_ALERTS", "farm.alerts"),
			TopicDeadLetter: getEnv("KAFKA_TOPIC_DEAD_LETTER", "farm.alerts.dead-letter"),
			GroupID:         getEnv("KAFKA_GROUP_ID", "alert-notification"),
		},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", "smtp.gmail.com"),
			Port:     getEnvAsInt("SMTP_PORT", 587),
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("SMTP_FROM", "crop-advisory@example.com"),
			To:       getEnv("SMTP_TO", "farmer@example.com"),
		},
		Weather: WeatherConfig{
			BaseURL:    getEnv("WEATHER_BASE_URL", "https://api.open-meteo.com"),
			GeocodeURL: getEnv("WEATHER_GEOCODE_URL", "https://nominatim.openstreetmap.org"),
			Timeout:    getEnvAsDuration("WEATHER_TIMEOUT", 10*time.Second),
		},
		Farm: FarmConfig{
			Latitude:       getEnvAsFloat("FARM_LATITUDE", 18.5204),
			Longitude:      getEnvAsFloat("FARM_LONGITUDE", 73.8567),
			Language:       getEnv("FARM_LANGUAGE", "en"),
			Timezone:       getEnv("FARM_TIMEZONE", "Asia/Kolkata"),
			PollInterval:   getEnvAsDuration("FARM_POLL_INTERVAL", 30*time.Minute),
			HistoryBackend: getEnv("HISTORY_BACKEND", "redis"),
		},
		HTTP: HTTPConfig{
			Addr: getEnv("HTTP_ADDR", ":8080"),
		},
		Log: LogConfig{
			Level:       getEnv("LOG_LEVEL", "info"),
			Format:      getEnv("LOG_FORMAT", "json"),
			ServiceName: getEnv("SERVICE_NAME", ""),
		},
	}

	if getEnvAsBool("CONFIG_SKIP_VALIDATION", false) {
		return config, nil
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the struct tags of every section
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
