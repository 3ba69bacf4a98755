package protocol

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/smukkama/crop-advisory/internal/alerting"
)

// AlertNotification is the message published for every alert that passed
// same-day suppression
type AlertNotification struct {
	ID        string                `json:"id"`
	Day       string                `json:"day"` // YYYY-MM-DD the suppression key was taken for
	Location  string                `json:"location,omitempty"`
	Latitude  float64               `json:"latitude"`
	Longitude float64               `json:"longitude"`
	Language  string                `json:"language"`
	Alert     alerting.WeatherAlert `json:"alert"`
	CreatedAt time.Time             `json:"created_at"`
}

// Key partitions notifications by alert type
func (n *AlertNotification) Key() string {
	return string(n.Alert.Type)
}

// NewAlertNotification stamps a fresh ID on alert
func NewAlertNotification(alert alerting.WeatherAlert, day time.Time, createdAt time.Time) *AlertNotification {
	return &AlertNotification{
		ID:        uuid.NewString(),
		Day:       day.Format("2006-01-02"),
		Alert:     alert,
		CreatedAt: createdAt,
	}
}

// EncodeAlertNotification encodes an AlertNotification to JSON
func EncodeAlertNotification(n *AlertNotification) ([]byte, error) {
	return json.Marshal(n)
}

// DecodeAlertNotification decodes JSON to AlertNotification
func DecodeAlertNotification(data []byte) (*AlertNotification, error) {
	var n AlertNotification
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, err
	}
	if !n.Alert.Type.Valid() {
		return nil, fmt.Errorf("unknown alert type %q", n.Alert.Type)
	}
	return &n, nil
}
