// Package thresholds holds the numeric limits shared by the weather alert
// evaluator and the pest risk analyzer. Changing a value here changes when
// rules fire, in both evaluators and in their tests.
package thresholds

// Weather alert thresholds
const (
	HeavyRainMM         = 20.0 // rainfall >= fires heavy_rain
	FrostTempC          = 5.0  // tempMin <= fires frost
	HeatTempC           = 40.0 // tempMax >= fires heat
	StrongWindKMH       = 40.0 // wind km/h >= fires strong_wind
	HighHumidityPercent = 85.0 // humidity >= fires disease_risk
	LowRainfallMM       = 5.0  // 0 < rainfall < fires irrigation_advisory

	PestActivityTempMaxC = 25.0
	PestActivityHumidity = 70.0

	MetersPerSecondToKMH = 3.6
	ForecastWindowDays   = 3
	AlertHistoryLimit    = 30
	MaxPestAlerts        = 4
)

// Pest and disease risk bands. Comments mark the strict comparisons;
// everything else is inclusive.
const (
	FungalHumidityMin  = 80.0 // >
	FungalHumidityHigh = 90.0 // >
	FungalTempMinC     = 18.0
	FungalTempMaxC     = 28.0

	AphidTempMinC        = 25.0
	AphidTempMaxC        = 35.0
	AphidHumidityMax     = 60.0 // <
	AphidRainMaxMM       = 2.0  // <
	AphidHighTempC       = 30.0 // >
	AphidHighHumidityMax = 50.0 // <

	MiteTempMinC    = 30.0
	MiteHumidityMax = 50.0 // <
	MiteRainMaxMM   = 1.0  // <

	WhiteflyTempMinC    = 22.0
	WhiteflyTempMaxC    = 32.0
	WhiteflyHumidityMin = 60.0
	WhiteflyHumidityMax = 80.0

	BacterialRainMM      = 10.0 // >
	BacterialTotalRainMM = 30.0 // >
	BacterialAvgHumidity = 75.0 // >
	BacterialHighTotalMM = 50.0 // >

	RootRotRainMM      = 20.0 // >
	RootRotTotalRainMM = 40.0 // >

	FruitFlyTempMinC     = 25.0
	FruitFlyTempMaxC     = 35.0
	FruitFlyHumidityMin  = 60.0
	FruitFlyHumidityHigh = 75.0 // >

	CaterpillarTempMinC    = 20.0
	CaterpillarTempMaxC    = 30.0
	CaterpillarRainMM      = 5.0  // >
	CaterpillarTotalRainMM = 15.0 // >
)
