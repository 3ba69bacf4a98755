package protocol

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smukkama/crop-advisory/internal/alerting"
)

func TestAlertNotification_RoundTrip(t *testing.T) {
	day := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	created := day.Add(7 * time.Hour)

	n := NewAlertNotification(alerting.WeatherAlert{
		Type:           alerting.TypeFrost,
		Title:          "Frost Warning",
		Message:        "Temperature may drop to 3°C on Monday",
		Severity:       alerting.SeverityDanger,
		Recommendation: "Cover sensitive crops",
	}, day, created)
	n.Location = "Nashik, Maharashtra"

	require.NotEmpty(t, n.ID)
	assert.Equal(t, "2026-06-01", n.Day)
	assert.Equal(t, "frost", n.Key())

	data, err := EncodeAlertNotification(n)
	require.NoError(t, err)

	decoded, err := DecodeAlertNotification(data)
	require.NoError(t, err)
	assert.Equal(t, n.ID, decoded.ID)
	assert.Equal(t, n.Alert, decoded.Alert)
	assert.True(t, created.Equal(decoded.CreatedAt))
}

func TestNewAlertNotification_UniqueIDs(t *testing.T) {
	a := NewAlertNotification(alerting.WeatherAlert{Type: alerting.TypeHeat}, time.Now(), time.Now())
	b := NewAlertNotification(alerting.WeatherAlert{Type: alerting.TypeHeat}, time.Now(), time.Now())
	assert.NotEqual(t, a.ID, b.ID)
}

func TestDecodeAlertNotification_Rejects(t *testing.T) {
	_, err := DecodeAlertNotification([]byte(`{"id":"x","alert":{"type":"tornado"}}`))
	assert.Error(t, err)

	_, err = DecodeAlertNotification([]byte(`not json`))
	assert.Error(t, err)
}
