package alerting

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smukkama/crop-advisory/internal/i18n"
	"github.com/smukkama/crop-advisory/internal/weather"
)

// calmDay fires no rule
func calmDay(name string) weather.ForecastDay {
	return weather.ForecastDay{
		Date:        "2026-10-19",
		DayName:     name,
		Temperature: 20,
		TempMin:     15,
		TempMax:     24,
		Humidity:    50,
		Rainfall:    0,
		WindSpeed:   2,
	}
}

func types(alerts []WeatherAlert) []AlertType {
	out := make([]AlertType, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, a.Type)
	}
	return out
}

func TestEvaluate_EmptyForecast(t *testing.T) {
	alerts := Evaluate(nil, nil)
	require.NotNil(t, alerts)
	assert.Empty(t, alerts)

	alerts = Evaluate([]weather.ForecastDay{}, &weather.CurrentWeather{Temperature: 45})
	assert.Empty(t, alerts)
}

func TestEvaluate_CalmForecast(t *testing.T) {
	forecast := []weather.ForecastDay{calmDay("Monday"), calmDay("Tuesday"), calmDay("Wednesday")}
	assert.Empty(t, Evaluate(forecast, nil))
}

func TestEvaluate_EndToEndScenario(t *testing.T) {
	monday := weather.ForecastDay{
		DayName:   "Monday",
		TempMin:   3,
		TempMax:   41,
		Humidity:  88,
		Rainfall:  25,
		WindSpeed: 12,
	}
	forecast := []weather.ForecastDay{monday, calmDay("Tuesday"), calmDay("Wednesday"), calmDay("Thursday")}

	alerts := Evaluate(forecast, nil)

	assert.Equal(t, []AlertType{
		TypeHeavyRain,
		TypeFrost,
		TypeHeat,
		TypeStrongWind,
		TypeDiseaseRisk,
		TypePestAlert,
	}, types(alerts))

	byType := make(map[AlertType]WeatherAlert)
	for _, a := range alerts {
		byType[a.Type] = a
	}

	assert.Equal(t, SeverityWarning, byType[TypeHeavyRain].Severity)
	assert.Equal(t, SeverityDanger, byType[TypeFrost].Severity)
	assert.Equal(t, SeverityDanger, byType[TypeHeat].Severity)
	assert.Equal(t, SeverityWarning, byType[TypeStrongWind].Severity)
	assert.Equal(t, SeverityWarning, byType[TypeDiseaseRisk].Severity)
	assert.Equal(t, SeverityWarning, byType[TypePestAlert].Severity)

	assert.Equal(t, "Heavy rainfall of 25mm expected on Monday. This may cause waterlogging and crop damage.", byType[TypeHeavyRain].Message)
	assert.Equal(t, "Temperature dropping to 3°C on Monday. Risk of crop damage from frost.", byType[TypeFrost].Message)
	assert.Equal(t, "Strong winds of 43 km/h expected on Monday.", byType[TypeStrongWind].Message)
	assert.Equal(t, "High humidity of 88% on Monday. Increased risk of fungal diseases.", byType[TypeDiseaseRisk].Message)
	assert.Contains(t, byType[TypePestAlert].Message, "(41°C, 88% humidity)")
	assert.NotEmpty(t, byType[TypeHeat].Recommendation)
	assert.NotEmpty(t, byType[TypeHeat].Action)
	assert.Nil(t, byType[TypeHeat].Timestamp)
}

func TestEvaluate_OnlyFirstThreeDays(t *testing.T) {
	frosty := calmDay("Thursday")
	frosty.TempMin = -2

	forecast := []weather.ForecastDay{calmDay("Monday"), calmDay("Tuesday"), calmDay("Wednesday"), frosty}
	assert.Empty(t, Evaluate(forecast, nil))

	// Same day moved into the window fires
	forecast = []weather.ForecastDay{calmDay("Monday"), calmDay("Tuesday"), frosty}
	assert.Equal(t, []AlertType{TypeFrost}, types(Evaluate(forecast, nil)))
}

func TestEvaluate_ShortForecast(t *testing.T) {
	wet := calmDay("Monday")
	wet.Rainfall = 30

	assert.Equal(t, []AlertType{TypeHeavyRain}, types(Evaluate([]weather.ForecastDay{wet}, nil)))

	cold := calmDay("Tuesday")
	cold.TempMin = 1
	assert.Equal(t, []AlertType{TypeHeavyRain, TypeFrost}, types(Evaluate([]weather.ForecastDay{wet, cold}, nil)))
}

func TestEvaluate_DeduplicatesKeepingEarliestDay(t *testing.T) {
	monday := calmDay("Monday")
	monday.TempMin = 2

	tuesday := calmDay("Tuesday")
	tuesday.Rainfall = 22
	tuesday.TempMin = 0

	wednesday := calmDay("Wednesday")
	wednesday.Rainfall = 40

	alerts := Evaluate([]weather.ForecastDay{monday, tuesday, wednesday}, nil)

	require.Equal(t, []AlertType{TypeFrost, TypeHeavyRain}, types(alerts))
	assert.Contains(t, alerts[0].Message, "2°C on Monday")
	assert.Contains(t, alerts[1].Message, "22mm expected on Tuesday")
}

func TestEvaluate_Boundaries(t *testing.T) {
	tests := []struct {
		name   string
		modify func(d *weather.ForecastDay)
		want   []AlertType
	}{
		{"heavy rain at threshold", func(d *weather.ForecastDay) { d.Rainfall = 20 }, []AlertType{TypeHeavyRain}},
		{"heavy rain below threshold", func(d *weather.ForecastDay) { d.Rainfall = 19.9 }, nil},
		{"frost at threshold", func(d *weather.ForecastDay) { d.TempMin = 5 }, []AlertType{TypeFrost}},
		{"frost just above threshold", func(d *weather.ForecastDay) { d.TempMin = 5.1 }, nil},
		{"heat at threshold", func(d *weather.ForecastDay) { d.TempMax = 40 }, []AlertType{TypeHeat}},
		{"heat below threshold", func(d *weather.ForecastDay) { d.TempMax = 39.9 }, nil},
		{"wind 11.2 m/s is 40 km/h", func(d *weather.ForecastDay) { d.WindSpeed = 11.2 }, []AlertType{TypeStrongWind}},
		{"wind 11.1 m/s is below 40 km/h", func(d *weather.ForecastDay) { d.WindSpeed = 11.1 }, nil},
		{"humidity at threshold", func(d *weather.ForecastDay) { d.Humidity = 85 }, []AlertType{TypeDiseaseRisk}},
		{"humidity below threshold", func(d *weather.ForecastDay) { d.Humidity = 84.9 }, nil},
		{"zero rainfall is not low rainfall", func(d *weather.ForecastDay) { d.Rainfall = 0 }, nil},
		{"rainfall 4.9 needs irrigation", func(d *weather.ForecastDay) { d.Rainfall = 4.9 }, []AlertType{TypeIrrigationAdvisory}},
		{"rainfall 5 is not low", func(d *weather.ForecastDay) { d.Rainfall = 5 }, nil},
		{"rainfall 0.1 needs irrigation", func(d *weather.ForecastDay) { d.Rainfall = 0.1 }, []AlertType{TypeIrrigationAdvisory}},
		{"pest at thresholds", func(d *weather.ForecastDay) { d.TempMax = 25; d.Humidity = 70 }, []AlertType{TypePestAlert}},
		{"pest humidity too low", func(d *weather.ForecastDay) { d.TempMax = 25; d.Humidity = 69.9 }, nil},
		{"pest too cool", func(d *weather.ForecastDay) { d.TempMax = 24.9; d.Humidity = 80 }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day := calmDay("Monday")
			tt.modify(&day)

			got := types(Evaluate([]weather.ForecastDay{day}, nil))
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluate_WindDisplaysRoundedKMH(t *testing.T) {
	day := calmDay("Friday")
	day.WindSpeed = 11.2

	alerts := Evaluate([]weather.ForecastDay{day}, nil)
	require.Len(t, alerts, 1)
	assert.Equal(t, "Strong winds of 40 km/h expected on Friday.", alerts[0].Message)
	assert.Equal(t, 40.0, math.Round(WindKMH(11.2)))
}

func TestEvaluate_IrrigationMessage(t *testing.T) {
	day := calmDay("Sunday")
	day.Rainfall = 4.9

	alerts := Evaluate([]weather.ForecastDay{day}, nil)
	require.Len(t, alerts, 1)
	assert.Equal(t, SeverityInfo, alerts[0].Severity)
	assert.Equal(t, "Only 4.9mm rainfall expected on Sunday. Plan supplemental irrigation.", alerts[0].Message)
}

func TestEvaluate_NaNNeverFires(t *testing.T) {
	nan := math.NaN()
	day := weather.ForecastDay{
		DayName:   "Monday",
		TempMin:   nan,
		TempMax:   nan,
		Humidity:  nan,
		Rainfall:  nan,
		WindSpeed: nan,
	}
	assert.Empty(t, Evaluate([]weather.ForecastDay{day}, nil))
}

func TestEvaluator_Localized(t *testing.T) {
	day := calmDay("सोमवार")
	day.Rainfall = 25
	day.TempMin = 4

	en := NewEvaluator("en").Evaluate([]weather.ForecastDay{day}, nil)
	hi := NewEvaluator("hi").Evaluate([]weather.ForecastDay{day}, nil)

	require.Equal(t, types(en), types(hi))
	for i := range en {
		assert.Equal(t, en[i].Severity, hi[i].Severity)
		assert.NotEqual(t, en[i].Title, hi[i].Title)
	}

	b := i18n.Resolve("hi")
	assert.Equal(t, b.HeavyRain.Title, hi[0].Title)
	assert.Contains(t, hi[0].Message, "सोमवार")
	assert.Contains(t, hi[0].Message, "25")
}

func TestNewEvaluator_UnknownLanguageFallsBack(t *testing.T) {
	e := NewEvaluator("fr")
	assert.Equal(t, i18n.EN, e.Language())
}
