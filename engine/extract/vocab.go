package extract

// Fixed vocabularies for deterministic matching. Entries are scanned in
// order, so longer phrases must come before their prefixes.

type vocabEntry struct {
	phrase    string
	canonical string
}

var cityVocab = []vocabEntry{
	{"new york city", "New York"},
	{"new york", "New York"},
	{"hong kong", "Hong Kong"},
	{"hongkong", "Hong Kong"},
	{"luang prabang", "Luang Prabang"},
	{"tokyo", "Tokyo"},
	{"osaka", "Osaka"},
	{"kyoto", "Kyoto"},
	{"shanghai", "Shanghai"},
	{"beijing", "Beijing"},
	{"shenzhen", "Shenzhen"},
	{"bangkok", "Bangkok"},
	{"singapore", "Singapore"},
	{"lisbon", "Lisbon"},
	{"lisboa", "Lisbon"},
	{"london", "London"},
	{"paris", "Paris"},
	{"seoul", "Seoul"},
	{"taipei", "Taipei"},
	{"barcelona", "Barcelona"},
	{"porto", "Porto"},
	{"nara", "Nara"},
	{"hakone", "Hakone"},
}

var locationVocab = []vocabEntry{
	{"old town", "old town"},
	{"city center", "city center"},
	{"city centre", "city center"},
	{"downtown", "downtown"},
	{"near the airport", "near the airport"},
	{"riverside", "riverside"},
	{"shinjuku", "Shinjuku"},
	{"shibuya", "Shibuya"},
	{"ginza", "Ginza"},
}

var tagVocab = []vocabEntry{
	{"newly opened", "newly opened"},
	{"recently opened", "newly opened"},
	{"near transit", "near transit"},
	{"near the metro", "near transit"},
	{"near the subway", "near transit"},
	{"close to the station", "near transit"},
	{"instagrammable", "trending"},
	{"trending", "trending"},
	{"luxurious", "luxury"},
	{"luxury", "luxury"},
	{"high-end", "luxury"},
	{"upscale", "luxury"},
	{"family friendly", "family friendly"},
	{"family-friendly", "family friendly"},
	{"business hotel", "business"},
	{"business trip", "business"},
}

var brandVocab = []vocabEntry{
	{"four seasons", "Four Seasons"},
	{"ritz-carlton", "Ritz-Carlton"},
	{"ritz carlton", "Ritz-Carlton"},
	{"intercontinental", "InterContinental"},
	{"st regis", "St. Regis"},
	{"st. regis", "St. Regis"},
	{"hilton", "Hilton"},
	{"marriott", "Marriott"},
	{"hyatt", "Hyatt"},
	{"sheraton", "Sheraton"},
	{"aman", "Aman"},
}

var viewVocab = []vocabEntry{
	{"sea view", "sea"},
	{"ocean view", "sea"},
	{"city view", "city"},
	{"mountain view", "mountain"},
	{"landmark view", "landmark"},
	{"tower view", "landmark"},
	{"garden view", "garden"},
}

var facilityVocab = []vocabEntry{
	{"swimming pool", "pool"},
	{"hot spring", "hot spring"},
	{"onsen", "hot spring"},
	{"executive lounge", "executive lounge"},
	{"fitness", "gym"},
	{"pool", "pool"},
	{"spa", "spa"},
	{"gym", "gym"},
}
