package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector provides application metrics collection
type Collector struct {
	// Rule engine
	AlertsFiredTotal *prometheus.CounterVec
	PestRisksTotal   *prometheus.CounterVec

	// Notification dispatch
	NotificationsSentTotal       *prometheus.CounterVec
	NotificationsSuppressedTotal *prometheus.CounterVec
	NotificationErrorsTotal      *prometheus.CounterVec

	// Weather upstream
	WeatherFetchDuration    prometheus.Histogram
	WeatherFetchErrorsTotal *prometheus.CounterVec

	// API
	APIRequestsTotal   *prometheus.CounterVec
	APIRequestDuration *prometheus.HistogramVec
}

// NewCollector registers the collector's metrics with reg.
// A nil reg uses the default registerer.
func NewCollector(namespace string, reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Collector{
		AlertsFiredTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "alerts_fired_total",
				Help:      "Weather alerts produced by the evaluator by type and severity",
			},
			[]string{"type", "severity"},
		),

		PestRisksTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "pest_risks_total",
				Help:      "Pest and disease risks reported by risk level",
			},
			[]string{"risk"},
		),

		NotificationsSentTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "notifications_sent_total",
				Help:      "Alert notifications delivered by type",
			},
			[]string{"type"},
		),

		NotificationsSuppressedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "notifications_suppressed_total",
				Help:      "Alert notifications skipped because the type already notified today",
			},
			[]string{"type"},
		),

		NotificationErrorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "notification_errors_total",
				Help:      "Alert notifications that failed by type",
			},
			[]string{"type"},
		),

		WeatherFetchDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "weather_fetch_duration_seconds",
				Help:      "Duration of upstream weather forecast requests in seconds",
				Buckets:   []float64{0.05, 0.1, 0.2, 0.5, 1.0, 2.0, 5.0, 10.0},
			},
		),

		WeatherFetchErrorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "weather_fetch_errors_total",
				Help:      "Failed upstream weather requests by error type",
			},
			[]string{"error_type"},
		),

		APIRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "api_requests_total",
				Help:      "Total number of API requests by endpoint, method, and status",
			},
			[]string{"endpoint", "method", "status"},
		),

		APIRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "api_request_duration_seconds",
				Help:      "API request duration in seconds",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 2.0, 5.0},
			},
			[]string{"endpoint"},
		),
	}
}

// Timer provides timing functionality for operations
type Timer struct {
	start    time.Time
	observer prometheus.Observer
}

// NewTimer creates a new timer
func (c *Collector) NewTimer(histogram prometheus.Observer) *Timer {
	return &Timer{
		start:    time.Now(),
		observer: histogram,
	}
}

// ObserveDuration records the elapsed time since timer creation
func (t *Timer) ObserveDuration() time.Duration {
	duration := time.Since(t.start)
	if t.observer != nil {
		t.observer.Observe(duration.Seconds())
	}
	return duration
}

// RecordAlert increments the fired alert counter
func (c *Collector) RecordAlert(alertType, severity string) {
	c.AlertsFiredTotal.WithLabelValues(alertType, severity).Inc()
}

// RecordPestRisk increments the pest risk counter
func (c *Collector) RecordPestRisk(risk string) {
	c.PestRisksTotal.WithLabelValues(risk).Inc()
}

// RecordNotification counts one dispatch outcome: sent, suppressed or failed
func (c *Collector) RecordNotification(alertType string, sent bool, err error) {
	switch {
	case err != nil:
		c.NotificationErrorsTotal.WithLabelValues(alertType).Inc()
	case sent:
		c.NotificationsSentTotal.WithLabelValues(alertType).Inc()
	default:
		c.NotificationsSuppressedTotal.WithLabelValues(alertType).Inc()
	}
}

// RecordWeatherError increments the upstream error counter
func (c *Collector) RecordWeatherError(errorType string) {
	c.WeatherFetchErrorsTotal.WithLabelValues(errorType).Inc()
}

// RecordAPIRequest increments API request counter
func (c *Collector) RecordAPIRequest(endpoint, method, status string) {
	c.APIRequestsTotal.WithLabelValues(endpoint, method, status).Inc()
}
