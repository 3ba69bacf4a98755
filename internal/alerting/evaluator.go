// Package alerting turns a weather forecast into de-duplicated,
// severity-tagged alerts.
package alerting

import (
	"fmt"
	"math"

	"github.com/smukkama/crop-advisory/internal/i18n"
	"github.com/smukkama/crop-advisory/internal/thresholds"
	"github.com/smukkama/crop-advisory/internal/weather"
)

// rule inspects one forecast day and returns an alert if it fires
type rule func(day weather.ForecastDay, b *i18n.Bundle) (WeatherAlert, bool)

// rules run in this order for every examined day
var rules = []rule{
	heavyRainRule,
	frostRule,
	heatRule,
	strongWindRule,
	humidityRule,
	lowRainfallRule,
	pestActivityRule,
}

// Evaluator evaluates forecast days against the alert thresholds
type Evaluator struct {
	bundle i18n.Bundle
}

// NewEvaluator creates an evaluator producing text in the given language.
// Unknown languages fall back to English.
func NewEvaluator(language string) *Evaluator {
	return &Evaluator{bundle: i18n.Resolve(language)}
}

// Language returns the language the evaluator writes alerts in
func (e *Evaluator) Language() i18n.Language {
	return e.bundle.Language
}

// Evaluate scans the first three forecast days and returns at most one
// alert per type, taken from the earliest day it fired on.
//
// current is accepted so callers can pass what they have; the rules only
// read forecast days.
func (e *Evaluator) Evaluate(forecast []weather.ForecastDay, current *weather.CurrentWeather) []WeatherAlert {
	alerts := make([]WeatherAlert, 0)

	days := forecast
	if len(days) > thresholds.ForecastWindowDays {
		days = days[:thresholds.ForecastWindowDays]
	}

	for _, day := range days {
		for _, r := range rules {
			if alert, ok := r(day, &e.bundle); ok {
				alerts = append(alerts, alert)
			}
		}
	}

	return Deduplicate(alerts)
}

// Evaluate runs an English evaluator over forecast
func Evaluate(forecast []weather.ForecastDay, current *weather.CurrentWeather) []WeatherAlert {
	return NewEvaluator(string(i18n.Default)).Evaluate(forecast, current)
}

// WindKMH converts a wind speed in m/s to km/h
func WindKMH(metersPerSecond float64) float64 {
	return metersPerSecond * thresholds.MetersPerSecondToKMH
}

func newAlert(t AlertType, severity Severity, text i18n.AlertText, args ...any) WeatherAlert {
	return WeatherAlert{
		Type:           t,
		Title:          text.Title,
		Message:        fmt.Sprintf(text.Message, args...),
		Severity:       severity,
		Recommendation: text.Recommendation,
		Action:         text.Action,
	}
}

// Every rule compares in the firing direction so NaN inputs never fire.

func heavyRainRule(day weather.ForecastDay, b *i18n.Bundle) (WeatherAlert, bool) {
	if day.Rainfall >= thresholds.HeavyRainMM {
		return newAlert(TypeHeavyRain, SeverityWarning, b.HeavyRain, day.Rainfall, day.DayName), true
	}
	return WeatherAlert{}, false
}

func frostRule(day weather.ForecastDay, b *i18n.Bundle) (WeatherAlert, bool) {
	if day.TempMin <= thresholds.FrostTempC {
		return newAlert(TypeFrost, SeverityDanger, b.Frost, day.TempMin, day.DayName), true
	}
	return WeatherAlert{}, false
}

func heatRule(day weather.ForecastDay, b *i18n.Bundle) (WeatherAlert, bool) {
	if day.TempMax >= thresholds.HeatTempC {
		return newAlert(TypeHeat, SeverityDanger, b.Heat, day.TempMax, day.DayName), true
	}
	return WeatherAlert{}, false
}

func strongWindRule(day weather.ForecastDay, b *i18n.Bundle) (WeatherAlert, bool) {
	kmh := WindKMH(day.WindSpeed)
	if kmh >= thresholds.StrongWindKMH {
		return newAlert(TypeStrongWind, SeverityWarning, b.StrongWind, int(math.Round(kmh)), day.DayName), true
	}
	return WeatherAlert{}, false
}

// humidityRule emits disease_risk; high_humidity stays a known type so
// older history entries still decode, but nothing produces it.
func humidityRule(day weather.ForecastDay, b *i18n.Bundle) (WeatherAlert, bool) {
	if day.Humidity >= thresholds.HighHumidityPercent {
		return newAlert(TypeDiseaseRisk, SeverityWarning, b.DiseaseRisk, day.Humidity, day.DayName), true
	}
	return WeatherAlert{}, false
}

// lowRainfallRule does not fire on exactly zero rainfall: zero is what the
// provider reports when it has no precipitation figure for the day.
func lowRainfallRule(day weather.ForecastDay, b *i18n.Bundle) (WeatherAlert, bool) {
	if day.Rainfall > 0 && day.Rainfall < thresholds.LowRainfallMM {
		return newAlert(TypeIrrigationAdvisory, SeverityInfo, b.Irrigation, day.Rainfall, day.DayName), true
	}
	return WeatherAlert{}, false
}

func pestActivityRule(day weather.ForecastDay, b *i18n.Bundle) (WeatherAlert, bool) {
	if day.TempMax >= thresholds.PestActivityTempMaxC && day.Humidity >= thresholds.PestActivityHumidity {
		return newAlert(TypePestAlert, SeverityWarning, b.PestActivity, day.TempMax, day.Humidity, day.DayName), true
	}
	return WeatherAlert{}, false
}
