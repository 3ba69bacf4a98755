package i18n

var hindi = Bundle{
	Language: HI,

	HeavyRain: AlertText{
		Title:          "🌧️ भारी बारिश की चेतावनी",
		Message:        "%[2]s को %[1]v मिमी भारी बारिश की संभावना है। इससे जलभराव और फसल को नुकसान हो सकता है।",
		Recommendation: "सिंचाई न करें, उचित जल निकासी सुनिश्चित करें, कीटनाशक का छिड़काव टालें",
		Action:         "जल निकासी नालियां तैयार करें और कमजोर फसलों को ढकें",
	},
	Frost: AlertText{
		Title:          "❄️ पाला चेतावनी",
		Message:        "%[2]s को तापमान %[1]v°C तक गिर सकता है। पाले से फसल को नुकसान का खतरा है।",
		Recommendation: "फसलों को ढकें, पाला सुरक्षा कपड़े का उपयोग करें, सिंचाई बढ़ाएं",
		Action:         "सूर्यास्त से पहले सुरक्षा उपाय करें",
	},
	Heat: AlertText{
		Title:          "🔥 गर्मी चेतावनी",
		Message:        "%[2]s को %[1]v°C की अत्यधिक गर्मी की संभावना है। फसल पर तनाव का अधिक खतरा है।",
		Recommendation: "सिंचाई की आवृत्ति बढ़ाएं, छाया दें, मिट्टी पर मल्च बिछाएं",
		Action:         "सुबह जल्दी और शाम को पानी दें, रोज मिट्टी की नमी जांचें",
	},
	StrongWind: AlertText{
		Title:          "💨 तेज हवा की चेतावनी",
		Message:        "%[2]s को %[1]d किमी/घंटा की तेज हवा चलने की संभावना है।",
		Recommendation: "छिड़काव रोकें, ढांचों को सुरक्षित करें, ऊंची फसलों को सहारा दें",
		Action:         "बेल वाली फसलों को बांधें, खुला सामान सुरक्षित रखें",
	},
	DiseaseRisk: AlertText{
		Title:          "🦠 रोग जोखिम अलर्ट",
		Message:        "%[2]s को %[1]v%% अधिक नमी रहेगी। फफूंद रोगों का खतरा बढ़ा है।",
		Recommendation: "हवा का संचार बढ़ाएं, पहले से फफूंदनाशक डालें, सिंचाई कम करें",
		Action:         "खेत में रोग के लक्षण देखें, जरूरत हो तो फफूंदनाशक डालें",
	},
	Irrigation: AlertText{
		Title:          "💧 कम बारिश - सिंचाई आवश्यक",
		Message:        "%[2]s को केवल %[1]v मिमी बारिश की संभावना है। अतिरिक्त सिंचाई की योजना बनाएं।",
		Recommendation: "सिंचाई का समय तय करें, पानी की आपूर्ति बढ़ाएं, मिट्टी की नमी जांचें",
		Action:         "पानी और सिंचाई उपकरण की व्यवस्था करें",
	},
	PestActivity: AlertText{
		Title:          "🐛 कीट गतिविधि अलर्ट",
		Message:        "%[3]s को कीटों के बढ़ने के लिए अनुकूल स्थितियां (%[1]v°C, %[2]v%% नमी)।",
		Recommendation: "फसलों पर करीबी नजर रखें, एकीकृत कीट प्रबंधन अपनाएं, जरूरत हो तो कीटनाशक डालें",
		Action:         "खेत में कीटों की जांच करें, फसल की स्वच्छता बनाए रखें",
	},

	Fungal: PestText{
		Name:       "फफूंद रोग (झुलसा, चूर्णिल आसिता)",
		Conditions: "अधिक नमी और मध्यम तापमान में फफूंद के बीजाणु तेजी से बढ़ते हैं",
		Prevention: []string{
			"मैन्कोज़ेब या कॉपर ऑक्सीक्लोराइड जैसे फफूंदनाशक का पहले से छिड़काव करें",
			"पौधों के बीच उचित दूरी रखकर हवा का संचार बढ़ाएं",
			"ऊपर से सिंचाई न करें और सुबह पानी दें",
			"संक्रमित पत्तियों को हटाकर नष्ट करें",
		},
	},
	Aphids: PestText{
		Name:       "माहू (एफिड)",
		Conditions: "गर्म और सूखा मौसम माहू के तेजी से बढ़ने के लिए अनुकूल है",
		Prevention: []string{
			"नीम तेल का छिड़काव करें (5 मिली प्रति लीटर पानी)",
			"सप्ताह में दो बार पत्तियों के नीचे की ओर जांच करें",
			"लेडीबर्ड जैसे प्राकृतिक शत्रुओं को बढ़ावा दें",
			"पीले चिपचिपे ट्रैप लगाएं",
		},
	},
	SpiderMites: PestText{
		Name:       "लाल मकड़ी (माइट)",
		Conditions: "बिना बारिश के गर्म और सूखा मौसम माइट के प्रकोप को बढ़ाता है",
		Prevention: []string{
			"नमी बढ़ाने के लिए पत्तियों के नीचे पानी का छिड़काव करें",
			"सल्फर पाउडर या अनुशंसित माइटनाशक डालें",
			"अधिक प्रभावित पत्तियों को हटा दें",
		},
	},
	Whiteflies: PestText{
		Name:       "सफेद मक्खी",
		Conditions: "गर्म तापमान और मध्यम नमी में सफेद मक्खी सक्रिय रहती है",
		Prevention: []string{
			"पूरे खेत में पीले चिपचिपे ट्रैप लगाएं",
			"शाम को नीम आधारित कीटनाशक का छिड़काव करें",
			"सफेद मक्खी को आश्रय देने वाले खरपतवार हटाएं",
		},
	},
	Bacterial: PestText{
		Name:       "जीवाणु रोग (पत्ती धब्बा, उकठा)",
		Conditions: "भारी बारिश और लगातार अधिक नमी से जीवाणु संक्रमण फैलता है",
		Prevention: []string{
			"पौधे गीले हों तब खेत में काम न करें",
			"बारिश के बाद कॉपर आधारित जीवाणुनाशक का छिड़काव करें",
			"खेत में अच्छी जल निकासी रखें",
			"अगली बुवाई के लिए रोगमुक्त बीज का उपयोग करें",
		},
	},
	RootRot: PestText{
		Name:       "जड़ सड़न",
		Conditions: "अधिक बारिश से जड़ों के पास जलभराव होता है",
		Prevention: []string{
			"रुका हुआ पानी निकालने के लिए नालियां साफ करें",
			"मिट्टी सूखने तक सिंचाई बंद रखें",
			"जड़ों के आसपास मिट्टी में ट्राइकोडर्मा डालें",
		},
	},
	FruitFlies: PestText{
		Name:       "फल मक्खी",
		Conditions: "गर्म और नम मौसम फल मक्खी के प्रजनन के लिए अनुकूल है",
		Prevention: []string{
			"फेरोमोन या मिथाइल यूजेनॉल ट्रैप लगाएं",
			"गिरे और खराब फलों को इकट्ठा करके नष्ट करें",
			"पके फलों की समय पर तुड़ाई करें",
		},
	},
	Caterpillars: PestText{
		Name:       "इल्ली और छेदक",
		Conditions: "बारिश के बाद मध्यम तापमान में अंडे फूटते हैं और इल्लियां पत्ते खाती हैं",
		Prevention: []string{
			"हर कुछ दिनों में अंडों और इल्लियों के लिए पौधों की जांच करें",
			"बीटी (बैसिलस थुरिंजिएंसिस) या नीम अर्क का छिड़काव करें",
			"फेरोमोन ट्रैप और पक्षियों के बैठने के स्थान लगाएं",
		},
	},

	RiskLow:    "कम जोखिम",
	RiskMedium: "मध्यम जोखिम",
	RiskHigh:   "उच्च जोखिम",
}
