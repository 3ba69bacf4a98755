// Package pests derives ranked pest and disease risk advisories from the
// current weather and aggregate forecast statistics.
package pests

import (
	"sort"

	"github.com/smukkama/crop-advisory/internal/i18n"
	"github.com/smukkama/crop-advisory/internal/thresholds"
	"github.com/smukkama/crop-advisory/internal/weather"
)

// Risk is the likelihood of an outbreak: low < medium < high
type Risk string

const (
	RiskLow    Risk = "low"
	RiskMedium Risk = "medium"
	RiskHigh   Risk = "high"
)

// Score orders risks for ranking; unknown values score 0
func (r Risk) Score() int {
	switch r {
	case RiskHigh:
		return 3
	case RiskMedium:
		return 2
	case RiskLow:
		return 1
	default:
		return 0
	}
}

// Label returns the localized badge text for r
func (r Risk) Label(b i18n.Bundle) string {
	switch r {
	case RiskHigh:
		return b.RiskHigh
	case RiskMedium:
		return b.RiskMedium
	default:
		return b.RiskLow
	}
}

// PestAlert is one localized pest or disease advisory
type PestAlert struct {
	Pest       string   `json:"pest"`
	Risk       Risk     `json:"risk"`
	Conditions string   `json:"conditions"`
	Prevention []string `json:"prevention"`
}

// Stats are the aggregate forecast statistics the rules read
type Stats struct {
	AvgHumidity float64 // mean over the whole forecast, current humidity when empty
	AvgTemp     float64 // mean over the whole forecast, current temperature when empty
	TotalRain   float64 // sum over the whole forecast, 0 when empty
}

// Aggregate computes Stats over every forecast day, not just the alert window
func Aggregate(current weather.CurrentWeather, forecast []weather.ForecastDay) Stats {
	if len(forecast) == 0 {
		return Stats{
			AvgHumidity: current.Humidity,
			AvgTemp:     current.Temperature,
		}
	}

	var humidity, temp, rain float64
	for _, day := range forecast {
		humidity += day.Humidity
		temp += day.Temperature
		rain += day.Rainfall
	}

	n := float64(len(forecast))
	return Stats{
		AvgHumidity: humidity / n,
		AvgTemp:     temp / n,
		TotalRain:   rain,
	}
}

// conditions is what each rule sees
type conditions struct {
	temp     float64
	humidity float64
	rainfall float64
	stats    Stats
}

// rule returns the risk level it assigns, or false when it does not fire
type rule struct {
	text func(b *i18n.Bundle) i18n.PestText
	eval func(c conditions) (Risk, bool)
}

// rules are evaluated in this order; ranking keeps it among equal risks
var rules = []rule{
	{func(b *i18n.Bundle) i18n.PestText { return b.Fungal }, fungal},
	{func(b *i18n.Bundle) i18n.PestText { return b.Aphids }, aphids},
	{func(b *i18n.Bundle) i18n.PestText { return b.SpiderMites }, spiderMites},
	{func(b *i18n.Bundle) i18n.PestText { return b.Whiteflies }, whiteflies},
	{func(b *i18n.Bundle) i18n.PestText { return b.Bacterial }, bacterial},
	{func(b *i18n.Bundle) i18n.PestText { return b.RootRot }, rootRot},
	{func(b *i18n.Bundle) i18n.PestText { return b.FruitFlies }, fruitFlies},
	{func(b *i18n.Bundle) i18n.PestText { return b.Caterpillars }, caterpillars},
}

// Analyze evaluates every pest rule and returns at most four advisories,
// highest risk first. Unknown languages fall back to English.
func Analyze(current weather.CurrentWeather, forecast []weather.ForecastDay, language string) []PestAlert {
	bundle := i18n.Resolve(language)
	c := conditions{
		temp:     current.Temperature,
		humidity: current.Humidity,
		rainfall: current.Rainfall,
		stats:    Aggregate(current, forecast),
	}

	alerts := make([]PestAlert, 0, len(rules))
	for _, r := range rules {
		risk, ok := r.eval(c)
		if !ok {
			continue
		}
		text := r.text(&bundle)
		alerts = append(alerts, PestAlert{
			Pest:       text.Name,
			Risk:       risk,
			Conditions: text.Conditions,
			Prevention: append([]string(nil), text.Prevention...),
		})
	}

	return Rank(alerts)
}

// Rank stable-sorts alerts by descending risk and keeps the first four
func Rank(alerts []PestAlert) []PestAlert {
	ranked := make([]PestAlert, len(alerts))
	copy(ranked, alerts)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Risk.Score() > ranked[j].Risk.Score()
	})

	if len(ranked) > thresholds.MaxPestAlerts {
		ranked = ranked[:thresholds.MaxPestAlerts]
	}
	return ranked
}

func between(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}

func fungal(c conditions) (Risk, bool) {
	if c.humidity > thresholds.FungalHumidityMin && between(c.temp, thresholds.FungalTempMinC, thresholds.FungalTempMaxC) {
		if c.humidity > thresholds.FungalHumidityHigh {
			return RiskHigh, true
		}
		return RiskMedium, true
	}
	return "", false
}

func aphids(c conditions) (Risk, bool) {
	if between(c.temp, thresholds.AphidTempMinC, thresholds.AphidTempMaxC) &&
		c.humidity < thresholds.AphidHumidityMax && c.rainfall < thresholds.AphidRainMaxMM {
		if c.temp > thresholds.AphidHighTempC && c.humidity < thresholds.AphidHighHumidityMax {
			return RiskHigh, true
		}
		return RiskMedium, true
	}
	return "", false
}

func spiderMites(c conditions) (Risk, bool) {
	if c.temp >= thresholds.MiteTempMinC && c.humidity < thresholds.MiteHumidityMax && c.rainfall < thresholds.MiteRainMaxMM {
		return RiskHigh, true
	}
	return "", false
}

func whiteflies(c conditions) (Risk, bool) {
	if between(c.temp, thresholds.WhiteflyTempMinC, thresholds.WhiteflyTempMaxC) &&
		between(c.humidity, thresholds.WhiteflyHumidityMin, thresholds.WhiteflyHumidityMax) {
		return RiskMedium, true
	}
	return "", false
}

func bacterial(c conditions) (Risk, bool) {
	wet := c.rainfall > thresholds.BacterialRainMM || c.stats.TotalRain > thresholds.BacterialTotalRainMM
	if wet && c.stats.AvgHumidity > thresholds.BacterialAvgHumidity {
		if c.stats.TotalRain > thresholds.BacterialHighTotalMM {
			return RiskHigh, true
		}
		return RiskMedium, true
	}
	return "", false
}

func rootRot(c conditions) (Risk, bool) {
	if c.rainfall > thresholds.RootRotRainMM || c.stats.TotalRain > thresholds.RootRotTotalRainMM {
		return RiskHigh, true
	}
	return "", false
}

func fruitFlies(c conditions) (Risk, bool) {
	if between(c.temp, thresholds.FruitFlyTempMinC, thresholds.FruitFlyTempMaxC) && c.humidity >= thresholds.FruitFlyHumidityMin {
		if c.humidity > thresholds.FruitFlyHumidityHigh {
			return RiskHigh, true
		}
		return RiskMedium, true
	}
	return "", false
}

func caterpillars(c conditions) (Risk, bool) {
	if between(c.temp, thresholds.CaterpillarTempMinC, thresholds.CaterpillarTempMaxC) &&
		(c.rainfall > thresholds.CaterpillarRainMM || c.stats.TotalRain > thresholds.CaterpillarTotalRainMM) {
		return RiskMedium, true
	}
	return "", false
}
