package i18n

var english = Bundle{
	Language: EN,

	HeavyRain: AlertText{
		Title:          "🌧️ Heavy Rain Warning",
		Message:        "Heavy rainfall of %[1]vmm expected on %[2]s. This may cause waterlogging and crop damage.",
		Recommendation: "Avoid irrigation, ensure proper drainage, delay pesticide application",
		Action:         "Prepare drainage channels and cover vulnerable crops",
	},
	Frost: AlertText{
		Title:          "❄️ Frost Warning",
		Message:        "Temperature dropping to %[1]v°C on %[2]s. Risk of crop damage from frost.",
		Recommendation: "Cover crops, use frost protection cloth, increase irrigation",
		Action:         "Apply protective measures before sunset",
	},
	Heat: AlertText{
		Title:          "🔥 Heat Warning",
		Message:        "Extreme heat of %[1]v°C expected on %[2]s. High risk of crop stress.",
		Recommendation: "Increase irrigation frequency, provide shade, mulch soil",
		Action:         "Water early morning and evening, check soil moisture daily",
	},
	StrongWind: AlertText{
		Title:          "💨 Strong Wind Warning",
		Message:        "Strong winds of %[1]d km/h expected on %[2]s.",
		Recommendation: "Suspend spraying, secure structures, support tall crops",
		Action:         "Tie up climbing crops, store loose materials safely",
	},
	DiseaseRisk: AlertText{
		Title:          "🦠 Disease Risk Alert",
		Message:        "High humidity of %[1]v%% on %[2]s. Increased risk of fungal diseases.",
		Recommendation: "Improve air circulation, apply fungicide preventively, reduce irrigation",
		Action:         "Scout fields for disease signs, apply fungicide if needed",
	},
	Irrigation: AlertText{
		Title:          "💧 Low Rainfall - Irrigation Needed",
		Message:        "Only %[1]vmm rainfall expected on %[2]s. Plan supplemental irrigation.",
		Recommendation: "Schedule irrigation, increase water supply, check soil moisture",
		Action:         "Arrange water supply and irrigation equipment",
	},
	PestActivity: AlertText{
		Title:          "🐛 Pest Activity Alert",
		Message:        "Favorable conditions for pest multiplication on %[3]s (%[1]v°C, %[2]v%% humidity).",
		Recommendation: "Monitor crops closely, use integrated pest management, apply insecticides if needed",
		Action:         "Scout field for pests, maintain crop hygiene",
	},

	Fungal: PestText{
		Name:       "Fungal Diseases (Blight, Mildew)",
		Conditions: "High humidity with moderate temperatures favors fungal spore growth",
		Prevention: []string{
			"Apply preventive fungicide such as Mancozeb or copper oxychloride",
			"Improve air circulation by proper plant spacing",
			"Avoid overhead irrigation and water in the morning",
			"Remove and destroy infected leaves",
		},
	},
	Aphids: PestText{
		Name:       "Aphids",
		Conditions: "Warm and dry weather favors rapid aphid multiplication",
		Prevention: []string{
			"Spray neem oil (5 ml per litre of water)",
			"Check the underside of leaves twice a week",
			"Encourage ladybirds and other natural predators",
			"Use yellow sticky traps",
		},
	},
	SpiderMites: PestText{
		Name:       "Spider Mites",
		Conditions: "Hot, dry conditions with no rain favor mite outbreaks",
		Prevention: []string{
			"Spray water on the underside of leaves to raise humidity",
			"Apply sulphur dust or a recommended miticide",
			"Remove heavily infested leaves",
		},
	},
	Whiteflies: PestText{
		Name:       "Whiteflies",
		Conditions: "Warm temperatures with moderate humidity favor whitefly activity",
		Prevention: []string{
			"Install yellow sticky traps across the field",
			"Spray neem-based insecticide in the evening",
			"Remove weeds that host whiteflies",
		},
	},
	Bacterial: PestText{
		Name:       "Bacterial Diseases (Leaf Spot, Wilt)",
		Conditions: "Heavy rain with sustained high humidity spreads bacterial infection",
		Prevention: []string{
			"Avoid working in the field while plants are wet",
			"Spray copper-based bactericide after the rain",
			"Ensure good field drainage",
			"Use disease-free seed for the next sowing",
		},
	},
	RootRot: PestText{
		Name:       "Root Rot",
		Conditions: "Excess rainfall causes waterlogging around the roots",
		Prevention: []string{
			"Clear drainage channels to remove standing water",
			"Stop irrigation until the soil dries",
			"Apply Trichoderma to the soil around the roots",
		},
	},
	FruitFlies: PestText{
		Name:       "Fruit Flies",
		Conditions: "Warm and humid weather favors fruit fly breeding",
		Prevention: []string{
			"Set up pheromone or methyl eugenol traps",
			"Collect and destroy fallen and damaged fruits",
			"Harvest ripe fruits on time",
		},
	},
	Caterpillars: PestText{
		Name:       "Caterpillars and Borers",
		Conditions: "Mild temperatures after rain favor egg hatching and larval feeding",
		Prevention: []string{
			"Inspect plants for eggs and larvae every few days",
			"Spray Bt (Bacillus thuringiensis) or neem extract",
			"Install pheromone traps and bird perches",
		},
	},

	RiskLow:    "Low Risk",
	RiskMedium: "Medium Risk",
	RiskHigh:   "High Risk",
}
