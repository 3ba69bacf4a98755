package weather

// Condition is the description and icon for a WMO weather code
type Condition struct {
	Description string
	Icon        string
}

var conditions = map[int]Condition{
	0:  {"Clear sky", "01d"},
	1:  {"Mainly clear", "02d"},
	2:  {"Partly cloudy", "03d"},
	3:  {"Overcast", "04d"},
	45: {"Foggy", "50d"},
	48: {"Depositing rime fog", "50d"},
	51: {"Light drizzle", "09d"},
	53: {"Moderate drizzle", "09d"},
	55: {"Dense drizzle", "09d"},
	56: {"Light freezing drizzle", "09d"},
	57: {"Dense freezing drizzle", "09d"},
	61: {"Slight rain", "10d"},
	63: {"Moderate rain", "10d"},
	65: {"Heavy rain", "10d"},
	66: {"Light freezing rain", "13d"},
	67: {"Heavy freezing rain", "13d"},
	71: {"Slight snow", "13d"},
	73: {"Moderate snow", "13d"},
	75: {"Heavy snow", "13d"},
	77: {"Snow grains", "13d"},
	80: {"Slight rain showers", "09d"},
	81: {"Moderate rain showers", "09d"},
	82: {"Violent rain showers", "09d"},
	85: {"Slight snow showers", "13d"},
	86: {"Heavy snow showers", "13d"},
	95: {"Thunderstorm", "11d"},
	96: {"Thunderstorm with slight hail", "11d"},
	99: {"Thunderstorm with heavy hail", "11d"},
}

// Describe maps a WMO weather code; unknown codes are "Unknown" with a clear icon
func Describe(code int) Condition {
	if c, ok := conditions[code]; ok {
		return c
	}
	return Condition{Description: "Unknown", Icon: "01d"}
}
