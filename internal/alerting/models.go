package alerting

import "time"

// AlertType identifies the weather condition an alert is about
type AlertType string

const (
	TypeHeavyRain          AlertType = "heavy_rain"
	TypeFrost              AlertType = "frost"
	TypeHeat               AlertType = "heat"
	TypeStrongWind         AlertType = "strong_wind"
	TypeHighHumidity       AlertType = "high_humidity"
	TypeDiseaseRisk        AlertType = "disease_risk"
	TypePestAlert          AlertType = "pest_alert"
	TypeIrrigationAdvisory AlertType = "irrigation_advisory"
)

// Valid reports whether t is one of the known alert types
func (t AlertType) Valid() bool {
	switch t {
	case TypeHeavyRain, TypeFrost, TypeHeat, TypeStrongWind, TypeHighHumidity,
		TypeDiseaseRisk, TypePestAlert, TypeIrrigationAdvisory:
		return true
	}
	return false
}

// Severity is the urgency of an alert: info < warning < danger
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

// Rank orders severities; unknown values rank below info
func (s Severity) Rank() int {
	switch s {
	case SeverityDanger:
		return 3
	case SeverityWarning:
		return 2
	case SeverityInfo:
		return 1
	default:
		return 0
	}
}

// WeatherAlert is a localized, severity-tagged alert for one condition
type WeatherAlert struct {
	Type           AlertType  `json:"type"`
	Title          string     `json:"title"`
	Message        string     `json:"message"`
	Severity       Severity   `json:"severity"`
	Recommendation string     `json:"recommendation,omitempty"`
	Action         string     `json:"action,omitempty"`
	Timestamp      *time.Time `json:"timestamp,omitempty"` // set only when stored in history
}
