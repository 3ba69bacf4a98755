package alerting

import "sort"

// Deduplicate keeps the first alert of each type and preserves input order
func Deduplicate(alerts []WeatherAlert) []WeatherAlert {
	seen := make(map[AlertType]bool, len(alerts))
	unique := make([]WeatherAlert, 0, len(alerts))

	for _, alert := range alerts {
		if seen[alert.Type] {
			continue
		}
		seen[alert.Type] = true
		unique = append(unique, alert)
	}

	return unique
}

// SortBySeverity returns a copy of alerts ordered danger first.
// Alerts of equal severity keep their relative order.
func SortBySeverity(alerts []WeatherAlert) []WeatherAlert {
	sorted := make([]WeatherAlert, len(alerts))
	copy(sorted, alerts)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Severity.Rank() > sorted[j].Severity.Rank()
	})

	return sorted
}

// MostSevere returns the first alert with the highest severity
func MostSevere(alerts []WeatherAlert) (WeatherAlert, bool) {
	if len(alerts) == 0 {
		return WeatherAlert{}, false
	}

	best := alerts[0]
	for _, alert := range alerts[1:] {
		if alert.Severity.Rank() > best.Severity.Rank() {
			best = alert
		}
	}
	return best, true
}

// Filter returns the alerts for which keep returns true
func Filter(alerts []WeatherAlert, keep func(WeatherAlert) bool) []WeatherAlert {
	out := make([]WeatherAlert, 0, len(alerts))
	for _, alert := range alerts {
		if keep(alert) {
			out = append(out, alert)
		}
	}
	return out
}
