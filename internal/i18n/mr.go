package i18n

var marathi = Bundle{
	Language: MR,

	HeavyRain: AlertText{
		Title:          "🌧️ मुसळधार पावसाचा इशारा",
		Message:        "%[2]s रोजी %[1]v मिमी मुसळधार पावसाची शक्यता आहे. यामुळे पाणी साचून पिकांचे नुकसान होऊ शकते.",
		Recommendation: "पाणी देणे टाळा, योग्य निचरा ठेवा, कीटकनाशक फवारणी पुढे ढकला",
		Action:         "निचऱ्याचे चर तयार करा आणि नाजूक पिके झाका",
	},
	Frost: AlertText{
		Title:          "❄️ दंव चेतावणी",
		Message:        "%[2]s रोजी तापमान %[1]v°C पर्यंत खाली येऊ शकते. दंवामुळे पिकांच्या नुकसानीचा धोका आहे.",
		Recommendation: "पिके झाका, दंव संरक्षण कापड वापरा, पाणी देणे वाढवा",
		Action:         "सूर्यास्तापूर्वी संरक्षणाचे उपाय करा",
	},
	Heat: AlertText{
		Title:          "🔥 उष्णतेचा इशारा",
		Message:        "%[2]s रोजी %[1]v°C इतकी तीव्र उष्णता अपेक्षित आहे. पिकांवर ताण येण्याचा मोठा धोका आहे.",
		Recommendation: "पाणी देण्याची वारंवारता वाढवा, सावली द्या, जमिनीवर आच्छादन करा",
		Action:         "सकाळी लवकर आणि संध्याकाळी पाणी द्या, दररोज जमिनीतील ओलावा तपासा",
	},
	StrongWind: AlertText{
		Title:          "💨 जोरदार वाऱ्याचा इशारा",
		Message:        "%[2]s रोजी %[1]d किमी/तास वेगाने जोरदार वारे वाहण्याची शक्यता आहे.",
		Recommendation: "फवारणी थांबवा, रचना सुरक्षित करा, उंच पिकांना आधार द्या",
		Action:         "वेलवर्गीय पिके बांधा, सुटे सामान सुरक्षित ठेवा",
	},
	DiseaseRisk: AlertText{
		Title:          "🦠 रोग धोका अलर्ट",
		Message:        "%[2]s रोजी %[1]v%% जास्त आर्द्रता राहील. बुरशीजन्य रोगांचा धोका वाढला आहे.",
		Recommendation: "हवा खेळती ठेवा, प्रतिबंधात्मक बुरशीनाशक वापरा, पाणी कमी द्या",
		Action:         "शेतात रोगाची लक्षणे तपासा, गरज असल्यास बुरशीनाशक वापरा",
	},
	Irrigation: AlertText{
		Title:          "💧 कमी पाऊस - सिंचन आवश्यक",
		Message:        "%[2]s रोजी फक्त %[1]v मिमी पावसाची शक्यता आहे. पूरक सिंचनाचे नियोजन करा.",
		Recommendation: "सिंचनाचे वेळापत्रक ठरवा, पाणीपुरवठा वाढवा, जमिनीतील ओलावा तपासा",
		Action:         "पाणी आणि सिंचन साधनांची व्यवस्था करा",
	},
	PestActivity: AlertText{
		Title:          "🐛 कीड प्रादुर्भाव अलर्ट",
		Message:        "%[3]s रोजी किडींच्या वाढीस अनुकूल परिस्थिती (%[1]v°C, %[2]v%% आर्द्रता).",
		Recommendation: "पिकांवर बारकाईने लक्ष ठेवा, एकात्मिक कीड व्यवस्थापन वापरा, गरज असल्यास कीटकनाशक फवारा",
		Action:         "शेतात किडींची पाहणी करा, पिकांची स्वच्छता राखा",
	},

	Fungal: PestText{
		Name:       "बुरशीजन्य रोग (करपा, भुरी)",
		Conditions: "जास्त आर्द्रता आणि मध्यम तापमानात बुरशीचे बीजाणू वेगाने वाढतात",
		Prevention: []string{
			"मॅन्कोझेब किंवा कॉपर ऑक्सिक्लोराइडसारख्या बुरशीनाशकाची प्रतिबंधात्मक फवारणी करा",
			"योग्य अंतर ठेवून हवा खेळती ठेवा",
			"वरून पाणी देणे टाळा आणि सकाळी पाणी द्या",
			"रोगग्रस्त पाने काढून नष्ट करा",
		},
	},
	Aphids: PestText{
		Name:       "मावा",
		Conditions: "उष्ण आणि कोरडे हवामान माव्याच्या जलद वाढीस अनुकूल आहे",
		Prevention: []string{
			"निंबोळी तेलाची फवारणी करा (५ मिली प्रति लिटर पाणी)",
			"आठवड्यातून दोनदा पानांच्या खालच्या बाजूची पाहणी करा",
			"लेडीबर्डसारख्या नैसर्गिक शत्रूंना प्रोत्साहन द्या",
			"पिवळे चिकट सापळे लावा",
		},
	},
	SpiderMites: PestText{
		Name:       "लाल कोळी",
		Conditions: "पाऊस नसलेले उष्ण आणि कोरडे हवामान कोळीच्या प्रादुर्भावास अनुकूल आहे",
		Prevention: []string{
			"आर्द्रता वाढवण्यासाठी पानांच्या खालच्या बाजूस पाणी फवारा",
			"गंधक भुकटी किंवा शिफारस केलेले कोळीनाशक वापरा",
			"जास्त प्रादुर्भाव झालेली पाने काढून टाका",
		},
	},
	Whiteflies: PestText{
		Name:       "पांढरी माशी",
		Conditions: "उबदार तापमान आणि मध्यम आर्द्रतेत पांढरी माशी सक्रिय राहते",
		Prevention: []string{
			"संपूर्ण शेतात पिवळे चिकट सापळे लावा",
			"संध्याकाळी निंबोळीयुक्त कीटकनाशकाची फवारणी करा",
			"पांढऱ्या माशीला आश्रय देणारे तण काढून टाका",
		},
	},
	Bacterial: PestText{
		Name:       "जिवाणूजन्य रोग (पानांवरील ठिपके, मर)",
		Conditions: "मुसळधार पाऊस आणि सतत जास्त आर्द्रतेमुळे जिवाणू संसर्ग पसरतो",
		Prevention: []string{
			"झाडे ओली असताना शेतात काम करू नका",
			"पावसानंतर तांबेयुक्त जिवाणूनाशकाची फवारणी करा",
			"शेतात चांगला निचरा ठेवा",
			"पुढील पेरणीसाठी रोगमुक्त बियाणे वापरा",
		},
	},
	RootRot: PestText{
		Name:       "मूळकुज",
		Conditions: "जास्त पावसामुळे मुळांभोवती पाणी साचते",
		Prevention: []string{
			"साचलेले पाणी काढण्यासाठी चर स्वच्छ करा",
			"जमीन कोरडी होईपर्यंत पाणी देणे थांबवा",
			"मुळांभोवतीच्या मातीत ट्रायकोडर्मा मिसळा",
		},
	},
	FruitFlies: PestText{
		Name:       "फळमाशी",
		Conditions: "उष्ण आणि दमट हवामान फळमाशीच्या प्रजननास अनुकूल आहे",
		Prevention: []string{
			"फेरोमोन किंवा मिथाइल युजेनॉल सापळे लावा",
			"गळलेली आणि खराब फळे गोळा करून नष्ट करा",
			"पिकलेल्या फळांची वेळेवर काढणी करा",
		},
	},
	Caterpillars: PestText{
		Name:       "अळी आणि खोडकिडा",
		Conditions: "पावसानंतरच्या मध्यम तापमानात अंडी उबतात आणि अळ्या पाने खातात",
		Prevention: []string{
			"दर काही दिवसांनी अंडी आणि अळ्यांसाठी झाडांची पाहणी करा",
			"बीटी (बॅसिलस थुरिंजिएन्सिस) किंवा निंबोळी अर्काची फवारणी करा",
			"फेरोमोन सापळे आणि पक्षी थांबे लावा",
		},
	},

	RiskLow:    "कमी धोका",
	RiskMedium: "मध्यम धोका",
	RiskHigh:   "उच्च धोका",
}
