package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"github.com/smukkama/crop-advisory/pkg/metrics"
)

var (
	// ErrUpstream wraps every failure of the forecast provider
	ErrUpstream = errors.New("weather upstream unavailable")
	// ErrInvalidLocation is returned for coordinates outside the globe
	ErrInvalidLocation = errors.New("invalid location")
)

const (
	// ForecastDays is how many upcoming days a report carries; today is skipped
	ForecastDays = 5

	userAgent       = "crop-advisory/1.0"
	unknownLocation = "Unknown Location"
	defaultHumidity = 50
)

// Client fetches reports from the Open-Meteo forecast API
type Client struct {
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[*http.Response]
	geoBreaker *gobreaker.CircuitBreaker[*http.Response]
	baseURL    string
	geocodeURL string
	logger     *zap.Logger
	metrics    *metrics.Collector
}

// Option configures a Client
type Option func(*Client)

// WithGeocoder enables reverse geocoding of the location name
func WithGeocoder(baseURL string) Option {
	return func(c *Client) {
		c.geocodeURL = baseURL
	}
}

// WithMetrics records fetch durations and failures
func WithMetrics(m *metrics.Collector) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a forecast client for baseURL
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		logger:     logger,
	}
	c.breaker = newBreaker("open-meteo", logger)
	c.geoBreaker = newBreaker("geocoder", logger)

	for _, opt := range opts {
		opt(c)
	}
	return c
}

func newBreaker(name string, logger *zap.Logger) *gobreaker.CircuitBreaker[*http.Response] {
	return gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})
}

// ValidateLocation checks latitude and longitude ranges
func ValidateLocation(lat, lon float64) error {
	if math.IsNaN(lat) || math.IsNaN(lon) || lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return fmt.Errorf("%w: lat=%v lon=%v", ErrInvalidLocation, lat, lon)
	}
	return nil
}

// Fetch returns current conditions and the next ForecastDays days for a location
func (c *Client) Fetch(ctx context.Context, lat, lon float64) (*Report, error) {
	if err := ValidateLocation(lat, lon); err != nil {
		return nil, err
	}

	if c.metrics != nil {
		timer := c.metrics.NewTimer(c.metrics.WeatherFetchDuration)
		defer timer.ObserveDuration()
	}

	var body openMeteoResponse
	if err := c.getJSON(ctx, c.breaker, c.forecastURL(lat, lon), &body); err != nil {
		c.recordError(err)
		return nil, err
	}

	report := body.report()
	report.Location = c.locationName(ctx, lat, lon)

	c.logger.Debug("weather fetched",
		zap.Float64("lat", lat),
		zap.Float64("lon", lon),
		zap.Int("forecast_days", len(report.Forecast)))

	return report, nil
}

func (c *Client) forecastURL(lat, lon float64) string {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("current", "temperature_2m,relative_humidity_2m,precipitation,weather_code,wind_speed_10m")
	q.Set("daily", "temperature_2m_max,temperature_2m_min,precipitation_sum,weather_code,wind_speed_10m_max,relative_humidity_2m_max")
	q.Set("wind_speed_unit", "ms")
	q.Set("timezone", "auto")
	q.Set("forecast_days", strconv.Itoa(ForecastDays+1))
	return c.baseURL + "/v1/forecast?" + q.Encode()
}

// fetchError tags an upstream failure with a metrics label
type fetchError struct {
	kind string
	err  error
}

func (e *fetchError) Error() string { return e.err.Error() }
func (e *fetchError) Unwrap() error { return e.err }

func (c *Client) getJSON(ctx context.Context, cb *gobreaker.CircuitBreaker[*http.Response], rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := cb.Execute(func() (*http.Response, error) {
		r, doErr := c.httpClient.Do(req)
		if doErr != nil {
			return nil, doErr
		}
		if r.StatusCode >= 500 || r.StatusCode == http.StatusTooManyRequests {
			r.Body.Close()
			return nil, fmt.Errorf("upstream returned %d", r.StatusCode)
		}
		return r, nil
	})
	if err != nil {
		kind := "request"
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			kind = "breaker_open"
		}
		return &fetchError{kind, fmt.Errorf("%w: %v", ErrUpstream, err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &fetchError{"status", fmt.Errorf("%w: upstream returned %d", ErrUpstream, resp.StatusCode)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &fetchError{"decode", fmt.Errorf("%w: failed to decode response: %v", ErrUpstream, err)}
	}
	return nil
}

func (c *Client) recordError(err error) {
	if c.metrics == nil {
		return
	}
	var fe *fetchError
	if errors.As(err, &fe) {
		c.metrics.RecordWeatherError(fe.kind)
	}
}

// locationName reverse geocodes the coordinates. Failures are not fatal.
func (c *Client) locationName(ctx context.Context, lat, lon float64) string {
	if c.geocodeURL == "" {
		return unknownLocation
	}

	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("format", "json")

	var body geocodeResponse
	if err := c.getJSON(ctx, c.geoBreaker, c.geocodeURL+"/reverse?"+q.Encode(), &body); err != nil {
		c.logger.Warn("reverse geocoding failed", zap.Error(err))
		return unknownLocation
	}
	return body.name()
}

type openMeteoResponse struct {
	Current struct {
		Temperature   float64  `json:"temperature_2m"`
		Humidity      *float64 `json:"relative_humidity_2m"`
		Precipitation *float64 `json:"precipitation"`
		WeatherCode   int      `json:"weather_code"`
		WindSpeed     *float64 `json:"wind_speed_10m"`
	} `json:"current"`
	Daily *struct {
		Time        []string   `json:"time"`
		TempMax     []*float64 `json:"temperature_2m_max"`
		TempMin     []*float64 `json:"temperature_2m_min"`
		Rain        []*float64 `json:"precipitation_sum"`
		WeatherCode []*int     `json:"weather_code"`
		WindMax     []*float64 `json:"wind_speed_10m_max"`
		HumidityMax []*float64 `json:"relative_humidity_2m_max"`
	} `json:"daily"`
}

func (r *openMeteoResponse) report() *Report {
	cur := r.Current
	info := Describe(cur.WeatherCode)

	report := &Report{
		Current: CurrentWeather{
			Temperature: round(cur.Temperature),
			Humidity:    orDefault(cur.Humidity, defaultHumidity),
			Rainfall:    orDefault(cur.Precipitation, 0),
			Description: info.Description,
			Icon:        info.Icon,
			WindSpeed:   round1(orDefault(cur.WindSpeed, 0)),
		},
		Forecast: []ForecastDay{},
	}

	d := r.Daily
	if d == nil {
		return report
	}

	// index 0 is today
	for i := 1; i < len(d.Time) && i <= ForecastDays; i++ {
		tmax := at(d.TempMax, i, 0)
		tmin := at(d.TempMin, i, 0)
		code := 0
		if i < len(d.WeatherCode) && d.WeatherCode[i] != nil {
			code = *d.WeatherCode[i]
		}
		info := Describe(code)

		report.Forecast = append(report.Forecast, ForecastDay{
			Date:        d.Time[i],
			DayName:     dayName(d.Time[i]),
			Temperature: round((tmax + tmin) / 2),
			TempMin:     round(tmin),
			TempMax:     round(tmax),
			Humidity:    round(at(d.HumidityMax, i, defaultHumidity)),
			Rainfall:    round1(at(d.Rain, i, 0)),
			Description: info.Description,
			Icon:        info.Icon,
			WindSpeed:   round1(at(d.WindMax, i, 0)),
		})
	}

	return report
}

type geocodeResponse struct {
	Address struct {
		City    string `json:"city"`
		Town    string `json:"town"`
		Village string `json:"village"`
		County  string `json:"county"`
		State   string `json:"state"`
	} `json:"address"`
}

func (g *geocodeResponse) name() string {
	a := g.Address
	city := firstNonEmpty(a.City, a.Town, a.Village, a.County)

	switch {
	case city != "" && a.State != "":
		return city + ", " + a.State
	case city != "":
		return city
	case a.State != "":
		return a.State
	default:
		return unknownLocation
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func dayName(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return ""
	}
	return t.Weekday().String()
}

// at returns values[i], or def when missing or null
func at(values []*float64, i int, def float64) float64 {
	if i >= len(values) {
		return def
	}
	return orDefault(values[i], def)
}

// orDefault treats null and zero as missing
func orDefault(v *float64, def float64) float64 {
	if v == nil || *v == 0 {
		return def
	}
	return *v
}

// round rounds half up
func round(v float64) float64 {
	return math.Floor(v + 0.5)
}

// round1 rounds half up to one decimal place
func round1(v float64) float64 {
	return math.Floor(v*10+0.5) / 10
}
