package advisory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/smukkama/crop-advisory/internal/alerting"
	"github.com/smukkama/crop-advisory/internal/history"
	"github.com/smukkama/crop-advisory/internal/i18n"
	"github.com/smukkama/crop-advisory/internal/protocol"
	"github.com/smukkama/crop-advisory/internal/weather"
	"github.com/smukkama/crop-advisory/pkg/metrics"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

var now = time.Date(2026, 5, 31, 6, 30, 0, 0, time.UTC)

type stubWeather struct {
	report *weather.Report
	err    error
}

func (s *stubWeather) Fetch(context.Context, float64, float64) (*weather.Report, error) {
	return s.report, s.err
}

type recordingPublisher struct {
	mu       sync.Mutex
	messages []*protocol.AlertNotification
	failFor  map[alerting.AlertType]bool
}

func (p *recordingPublisher) PublishAlert(_ context.Context, n *protocol.AlertNotification) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.failFor[n.Alert.Type] {
		return errors.New("broker unavailable")
	}
	p.messages = append(p.messages, n)
	return nil
}

func calmDay(name string) weather.ForecastDay {
	return weather.ForecastDay{DayName: name, TempMin: 15, TempMax: 24, Temperature: 20, Humidity: 50, WindSpeed: 2}
}

// mondayReport is the scenario where every weather rule fires on the first day
func mondayReport() *weather.Report {
	return &weather.Report{
		Current: weather.CurrentWeather{Temperature: 26, Humidity: 85, Rainfall: 25},
		Forecast: []weather.ForecastDay{
			{Date: "2026-06-01", DayName: "Monday", TempMin: 3, TempMax: 41, Temperature: 22, Humidity: 88, Rainfall: 25, WindSpeed: 12},
			calmDay("Tuesday"),
			calmDay("Wednesday"),
			calmDay("Thursday"),
			calmDay("Friday"),
		},
		Location: "Nashik, Maharashtra",
	}
}

func newTestService(t *testing.T, src WeatherSource, pub Publisher) (*Service, *history.MemoryStore) {
	t.Helper()
	clock := fixedClock{t: now}
	store := history.NewMemoryStore(clock)
	m := metrics.NewCollector("test", prometheus.NewRegistry())
	return NewService(src, store, pub, m, zap.NewNop(), clock), store
}

func alertTypes(alerts []alerting.WeatherAlert) []alerting.AlertType {
	out := make([]alerting.AlertType, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, a.Type)
	}
	return out
}

func TestBuild(t *testing.T) {
	svc, _ := newTestService(t, &stubWeather{report: mondayReport()}, nil)

	adv, err := svc.Build(context.Background(), 19.99, 73.79, "en")
	require.NoError(t, err)

	assert.Equal(t, []alerting.AlertType{
		alerting.TypeHeavyRain,
		alerting.TypeFrost,
		alerting.TypeHeat,
		alerting.TypeStrongWind,
		alerting.TypeDiseaseRisk,
		alerting.TypePestAlert,
	}, alertTypes(adv.Alerts))

	require.Len(t, adv.Banner, len(adv.Alerts))
	assert.Equal(t, alerting.TypeFrost, adv.Banner[0].Type)
	assert.Equal(t, alerting.TypeHeat, adv.Banner[1].Type)
	assert.Equal(t, alerting.TypeHeavyRain, adv.Banner[2].Type)

	assert.NotEmpty(t, adv.PestAlerts)
	assert.LessOrEqual(t, len(adv.PestAlerts), 4)

	assert.Equal(t, i18n.EN, adv.Language)
	assert.Equal(t, Location{Latitude: 19.99, Longitude: 73.79, Name: "Nashik, Maharashtra"}, adv.Location)
	assert.Equal(t, now, adv.GeneratedAt)
}

func TestBuild_LocalizedAndFallback(t *testing.T) {
	svc, _ := newTestService(t, &stubWeather{report: mondayReport()}, nil)

	hi, err := svc.Build(context.Background(), 19.99, 73.79, "hi-IN")
	require.NoError(t, err)
	assert.Equal(t, i18n.HI, hi.Language)
	assert.Equal(t, i18n.Resolve("hi").Frost.Title, hi.Alerts[1].Title)

	unknown, err := svc.Build(context.Background(), 19.99, 73.79, "fr")
	require.NoError(t, err)
	assert.Equal(t, i18n.EN, unknown.Language)
}

func TestBuild_DismissedTypesLeaveBannerOnly(t *testing.T) {
	svc, _ := newTestService(t, &stubWeather{report: mondayReport()}, nil)
	ctx := context.Background()

	require.NoError(t, svc.Dismiss(ctx, alerting.TypeStrongWind))

	adv, err := svc.Build(ctx, 19.99, 73.79, "en")
	require.NoError(t, err)

	assert.Contains(t, alertTypes(adv.Alerts), alerting.TypeStrongWind)
	assert.NotContains(t, alertTypes(adv.Banner), alerting.TypeStrongWind)
	assert.Len(t, adv.Banner, len(adv.Alerts)-1)
}

func TestBuild_WeatherError(t *testing.T) {
	svc, _ := newTestService(t, &stubWeather{err: weather.ErrUpstream}, nil)

	_, err := svc.Build(context.Background(), 19.99, 73.79, "en")
	require.Error(t, err)
	assert.ErrorIs(t, err, weather.ErrUpstream)
}

func TestDispatch_NotifiesOncePerDay(t *testing.T) {
	pub := &recordingPublisher{}
	svc, store := newTestService(t, &stubWeather{report: mondayReport()}, pub)
	ctx := context.Background()

	result, err := svc.Run(ctx, 19.99, 73.79, "en")
	require.NoError(t, err)
	assert.Equal(t, DispatchResult{Sent: 6}, result)
	require.Len(t, pub.messages, 6)

	first := pub.messages[0]
	assert.Equal(t, alerting.TypeHeavyRain, first.Alert.Type)
	assert.Equal(t, "2026-05-31", first.Day)
	assert.Equal(t, "Nashik, Maharashtra", first.Location)
	assert.Equal(t, "en", first.Language)
	assert.NotEmpty(t, first.ID)

	result, err = svc.Run(ctx, 19.99, 73.79, "en")
	require.NoError(t, err)
	assert.Equal(t, DispatchResult{Suppressed: 6}, result)
	assert.Len(t, pub.messages, 6)

	entries, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 6)
	assert.Equal(t, alerting.TypePestAlert, entries[0].Type, "newest entry first")
}

type movingClock struct{ t time.Time }

func (c *movingClock) Now() time.Time { return c.t }

func TestDispatch_OncePerFarmLocalDay(t *testing.T) {
	ist := time.FixedZone("IST", 5*60*60+30*60)
	ctx := context.Background()

	tests := []struct {
		name       string
		first      time.Time
		second     time.Time
		wantSecond DispatchResult
		wantDays   []string
	}{
		{
			name:       "same local day across UTC midnight",
			first:      time.Date(2026, 6, 1, 1, 30, 0, 0, ist),
			second:     time.Date(2026, 6, 1, 7, 30, 0, 0, ist),
			wantSecond: DispatchResult{Suppressed: 6},
			wantDays:   []string{"2026-06-01"},
		},
		{
			name:       "new local day within one UTC day",
			first:      time.Date(2026, 6, 1, 23, 0, 0, 0, ist),
			second:     time.Date(2026, 6, 2, 0, 30, 0, 0, ist),
			wantSecond: DispatchResult{Sent: 6},
			wantDays:   []string{"2026-06-01", "2026-06-02"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := &movingClock{t: tt.first.UTC()}
			store := history.NewMemoryStore(clock)
			pub := &recordingPublisher{}
			m := metrics.NewCollector("test", prometheus.NewRegistry())
			svc := NewService(&stubWeather{report: mondayReport()}, store, pub, m, zap.NewNop(), clock, WithLocation(ist))

			result, err := svc.Run(ctx, 19.99, 73.79, "en")
			require.NoError(t, err)
			assert.Equal(t, DispatchResult{Sent: 6}, result)

			clock.t = tt.second.UTC()
			result, err = svc.Run(ctx, 19.99, 73.79, "en")
			require.NoError(t, err)
			assert.Equal(t, tt.wantSecond, result)

			days := map[string]bool{}
			for _, n := range pub.messages {
				days[n.Day] = true
			}
			assert.Len(t, days, len(tt.wantDays))
			for _, d := range tt.wantDays {
				assert.True(t, days[d], "notification day %s", d)
			}
		})
	}
}

func TestDismiss_FollowsFarmLocalDay(t *testing.T) {
	ist := time.FixedZone("IST", 5*60*60+30*60)
	ctx := context.Background()

	// Both builds fall on Jun 1 in UTC
	clock := &movingClock{t: time.Date(2026, 6, 1, 23, 0, 0, 0, ist).UTC()}
	store := history.NewMemoryStore(clock)
	svc := NewService(&stubWeather{report: mondayReport()}, store, nil, nil, zap.NewNop(), clock, WithLocation(ist))

	require.NoError(t, svc.Dismiss(ctx, alerting.TypeFrost))

	adv, err := svc.Build(ctx, 19.99, 73.79, "en")
	require.NoError(t, err)
	assert.NotContains(t, alertTypes(adv.Banner), alerting.TypeFrost)

	clock.t = time.Date(2026, 6, 2, 0, 30, 0, 0, ist).UTC()
	adv, err = svc.Build(ctx, 19.99, 73.79, "en")
	require.NoError(t, err)
	assert.Contains(t, alertTypes(adv.Banner), alerting.TypeFrost, "dismissal ends at local midnight")
}

func TestDispatch_FailedPublishIsRetried(t *testing.T) {
	pub := &recordingPublisher{failFor: map[alerting.AlertType]bool{alerting.TypeFrost: true}}
	svc, _ := newTestService(t, &stubWeather{report: mondayReport()}, pub)
	ctx := context.Background()

	result, err := svc.Run(ctx, 19.99, 73.79, "en")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broker unavailable")
	assert.Equal(t, DispatchResult{Sent: 5, Failed: 1}, result)

	pub.failFor = nil
	result, err = svc.Run(ctx, 19.99, 73.79, "en")
	require.NoError(t, err)
	assert.Equal(t, DispatchResult{Sent: 1, Suppressed: 5}, result)
	assert.Equal(t, alerting.TypeFrost, pub.messages[len(pub.messages)-1].Alert.Type)
}

func TestClearHistory_AllowsRenotify(t *testing.T) {
	pub := &recordingPublisher{}
	svc, _ := newTestService(t, &stubWeather{report: mondayReport()}, pub)
	ctx := context.Background()

	_, err := svc.Run(ctx, 19.99, 73.79, "en")
	require.NoError(t, err)

	require.NoError(t, svc.ClearHistory(ctx))

	entries, err := svc.History(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)

	result, err := svc.Run(ctx, 19.99, 73.79, "en")
	require.NoError(t, err)
	assert.Equal(t, 6, result.Sent)
}

func TestDispatch_WithoutPublisher(t *testing.T) {
	svc, _ := newTestService(t, &stubWeather{report: mondayReport()}, nil)

	_, err := svc.Run(context.Background(), 19.99, 73.79, "en")
	assert.Error(t, err)
}

func TestDismiss_UnknownType(t *testing.T) {
	svc, _ := newTestService(t, &stubWeather{report: mondayReport()}, nil)

	err := svc.Dismiss(context.Background(), "tornado")
	assert.ErrorIs(t, err, ErrUnknownAlertType)
}

func TestAssemble_CalmWeek(t *testing.T) {
	report := &weather.Report{
		Current:  weather.CurrentWeather{Temperature: 20, Humidity: 50},
		Forecast: []weather.ForecastDay{calmDay("Monday"), calmDay("Tuesday")},
	}

	adv := Assemble(report, "mr")
	assert.Empty(t, adv.Alerts)
	assert.NotNil(t, adv.Alerts)
	assert.Empty(t, adv.Banner)
	assert.Equal(t, i18n.MR, adv.Language)
}
