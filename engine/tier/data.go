package tier

// Reference data, held in memory so classification never touches disk.
// Counts are inventory estimates, not live numbers.
var cities = []cityEntry{
	// Large inventory: narrowing questions are mandatory, brand included.
	{key: "Tokyo", aliases: []string{"tokio", "tyo"}, tier: Large, count: 4200},
	{key: "Bangkok", aliases: []string{"krung thep"}, tier: Large, count: 3800},
	{key: "Shanghai", aliases: nil, tier: Large, count: 3500},
	{key: "Beijing", aliases: []string{"peking"}, tier: Large, count: 3100},
	{key: "London", aliases: nil, tier: Large, count: 3000},
	{key: "Singapore", aliases: nil, tier: Large, count: 2900},
	{key: "Paris", aliases: nil, tier: Large, count: 2800},
	{key: "New York", aliases: []string{"nyc", "new york city"}, tier: Large, count: 2700},
	{key: "Hong Kong", aliases: []string{"hongkong", "hk"}, tier: Large, count: 2400},

	// Medium inventory: narrowing still required, brand optional.
	{key: "Osaka", aliases: nil, tier: Medium, count: 1400},
	{key: "Seoul", aliases: nil, tier: Medium, count: 1300},
	{key: "Kyoto", aliases: nil, tier: Medium, count: 900},
	{key: "Shenzhen", aliases: nil, tier: Medium, count: 850},
	{key: "Taipei", aliases: nil, tier: Medium, count: 800},
	{key: "Lisbon", aliases: []string{"lisboa"}, tier: Medium, count: 600},
	{key: "Barcelona", aliases: nil, tier: Medium, count: 750},

	// Small inventory: recommend from the handful that exists.
	{key: "Nara", aliases: nil, tier: Small, count: 120},
	{key: "Hakone", aliases: nil, tier: Small, count: 90},
	{key: "Porto", aliases: []string{"oporto"}, tier: Small, count: 260},
	{key: "Luang Prabang", aliases: nil, tier: Small, count: 80},
}
