// Package advisory ties the weather provider, the rule engine and the alert
// history together: it builds the farm advisory for a location and dispatches
// its alerts at most once per type and calendar day.
package advisory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/smukkama/crop-advisory/internal/alerting"
	"github.com/smukkama/crop-advisory/internal/history"
	"github.com/smukkama/crop-advisory/internal/i18n"
	"github.com/smukkama/crop-advisory/internal/pests"
	"github.com/smukkama/crop-advisory/internal/protocol"
	"github.com/smukkama/crop-advisory/internal/weather"
	"github.com/smukkama/crop-advisory/pkg/metrics"
)

// WeatherSource supplies the current conditions and upcoming days
type WeatherSource interface {
	Fetch(ctx context.Context, lat, lon float64) (*weather.Report, error)
}

// Publisher hands a notification to the delivery pipeline
type Publisher interface {
	PublishAlert(ctx context.Context, n *protocol.AlertNotification) error
}

// Location identifies the farm an advisory is for
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Name      string  `json:"name,omitempty"`
}

// Advisory is everything the farmer sees for one location and language
type Advisory struct {
	Location    Location                `json:"location"`
	Language    i18n.Language           `json:"language"`
	Current     weather.CurrentWeather  `json:"current"`
	Forecast    []weather.ForecastDay   `json:"forecast"`
	Alerts      []alerting.WeatherAlert `json:"alerts"` // rule order, one per type
	Banner      []alerting.WeatherAlert `json:"banner"` // not dismissed today, most severe first
	PestAlerts  []pests.PestAlert       `json:"pestAlerts"`
	GeneratedAt time.Time               `json:"generatedAt"`
}

// DispatchResult counts what Dispatch did with each alert
type DispatchResult struct {
	Sent       int
	Suppressed int
	Failed     int
}

// Service builds and dispatches advisories
type Service struct {
	weather   WeatherSource
	store     history.Backend
	publisher Publisher
	metrics   *metrics.Collector
	logger    *zap.Logger
	clock     history.Clock
	location  *time.Location
}

// Option configures a Service
type Option func(*Service)

// WithLocation sets the time zone whose calendar day the once-per-day
// suppression and banner dismissals use. The default is UTC.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.location = loc
		}
	}
}

// NewService creates an advisory service. publisher may be nil when the
// caller never dispatches; a nil collector registers on a private registry.
func NewService(
	source WeatherSource,
	store history.Backend,
	publisher Publisher,
	m *metrics.Collector,
	logger *zap.Logger,
	clock history.Clock,
	opts ...Option,
) *Service {
	if m == nil {
		m = metrics.NewCollector("advisory", prometheus.NewRegistry())
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if clock == nil {
		clock = history.RealClock{}
	}
	s := &Service{
		weather:   source,
		store:     store,
		publisher: publisher,
		metrics:   m,
		logger:    logger,
		clock:     clock,
		location:  time.UTC,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// today is the current time in the farm's zone; stores key on its date
func (s *Service) today() time.Time {
	return s.clock.Now().In(s.location)
}

// Assemble runs both rule engines over a report. It performs no I/O.
func Assemble(report *weather.Report, language string) *Advisory {
	bundle := i18n.Resolve(language)
	alerts := alerting.NewEvaluator(language).Evaluate(report.Forecast, &report.Current)

	return &Advisory{
		Location:   Location{Name: report.Location},
		Language:   bundle.Language,
		Current:    report.Current,
		Forecast:   report.Forecast,
		Alerts:     alerts,
		Banner:     alerting.SortBySeverity(alerts),
		PestAlerts: pests.Analyze(report.Current, report.Forecast, language),
	}
}

// Build fetches the weather and assembles the advisory. Alert types the
// user dismissed today are left out of the banner.
func (s *Service) Build(ctx context.Context, lat, lon float64, language string) (*Advisory, error) {
	report, err := s.weather.Fetch(ctx, lat, lon)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch weather: %w", err)
	}

	adv := Assemble(report, language)
	adv.Location.Latitude = lat
	adv.Location.Longitude = lon
	adv.GeneratedAt = s.clock.Now()

	dismissed, err := s.store.Dismissed(ctx, s.today())
	if err != nil {
		s.logger.Warn("failed to read dismissals", zap.Error(err))
	} else {
		adv.Banner = history.Visible(adv.Banner, dismissed)
	}

	for _, a := range adv.Alerts {
		s.metrics.RecordAlert(string(a.Type), string(a.Severity))
	}
	for _, p := range adv.PestAlerts {
		s.metrics.RecordPestRisk(string(p.Risk))
	}

	fields := []zap.Field{
		zap.String("location", adv.Location.Name),
		zap.String("language", string(adv.Language)),
		zap.Int("alerts", len(adv.Alerts)),
		zap.Int("pest_alerts", len(adv.PestAlerts)),
	}
	if headline, ok := alerting.MostSevere(adv.Alerts); ok {
		fields = append(fields, zap.String("headline", string(headline.Type)))
	}
	s.logger.Debug("advisory built", fields...)

	return adv, nil
}

// Dispatch publishes every alert whose type has not notified today. A failed
// publish does not stop the remaining alerts; all failures are returned joined.
func (s *Service) Dispatch(ctx context.Context, adv *Advisory) (DispatchResult, error) {
	var result DispatchResult
	if s.publisher == nil {
		return result, errors.New("no publisher configured")
	}

	today := s.today()
	var errs []error

	for _, alert := range adv.Alerts {
		deliver := func(ctx context.Context, a alerting.WeatherAlert) error {
			n := protocol.NewAlertNotification(a, today, s.clock.Now())
			n.Location = adv.Location.Name
			n.Latitude = adv.Location.Latitude
			n.Longitude = adv.Location.Longitude
			n.Language = string(adv.Language)
			return s.publisher.PublishAlert(ctx, n)
		}

		sent, err := history.NotifyOnce(ctx, s.store, alert, today, deliver)
		s.metrics.RecordNotification(string(alert.Type), sent, err)

		switch {
		case err != nil:
			result.Failed++
			errs = append(errs, err)
			s.logger.Error("failed to dispatch alert",
				zap.String("type", string(alert.Type)),
				zap.Error(err))
		case sent:
			result.Sent++
			s.logger.Info("alert dispatched",
				zap.String("type", string(alert.Type)),
				zap.String("severity", string(alert.Severity)))
		default:
			result.Suppressed++
			s.logger.Debug("alert already notified today", zap.String("type", string(alert.Type)))
		}
	}

	return result, errors.Join(errs...)
}

// Run builds the advisory for a location and dispatches its alerts
func (s *Service) Run(ctx context.Context, lat, lon float64, language string) (DispatchResult, error) {
	adv, err := s.Build(ctx, lat, lon, language)
	if err != nil {
		return DispatchResult{}, err
	}
	return s.Dispatch(ctx, adv)
}

// History returns the notified alerts, newest first
func (s *Service) History(ctx context.Context) ([]history.Entry, error) {
	return s.store.List(ctx)
}

// ClearHistory empties the log so recorded types may notify again today
func (s *Service) ClearHistory(ctx context.Context) error {
	return s.store.Clear(ctx)
}

// Dismiss hides an alert type from today's banner
func (s *Service) Dismiss(ctx context.Context, alertType alerting.AlertType) error {
	if !alertType.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownAlertType, alertType)
	}
	return s.store.Dismiss(ctx, alertType, s.today())
}

// ErrUnknownAlertType is returned when dismissing a type the evaluator never produces
var ErrUnknownAlertType = errors.New("unknown alert type")
