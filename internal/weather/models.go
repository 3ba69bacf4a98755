package weather

// ForecastDay is one day's weather summary as supplied by the weather provider
type ForecastDay struct {
	Date        string  `json:"date"`    // YYYY-MM-DD
	DayName     string  `json:"dayName"` // weekday label
	Temperature float64 `json:"temperature"`
	TempMin     float64 `json:"tempMin"`
	TempMax     float64 `json:"tempMax"`
	Humidity    float64 `json:"humidity"` // percent, 0-100
	Rainfall    float64 `json:"rainfall"` // mm
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	WindSpeed   float64 `json:"windSpeed"` // m/s
}

// CurrentWeather is the "now" snapshot
type CurrentWeather struct {
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	Rainfall    float64 `json:"rainfall"`
	Description string  `json:"description,omitempty"`
	Icon        string  `json:"icon,omitempty"`
	WindSpeed   float64 `json:"windSpeed"`
}

// Report is the provider response: current conditions plus the upcoming days
type Report struct {
	Current  CurrentWeather `json:"current"`
	Forecast []ForecastDay  `json:"forecast"`
	Location string         `json:"location,omitempty"`
}
