package lexicon

// relevanceWeights is grouped by how macro-specific a phrase is
var relevanceWeights = []pattern{
	// macro-specific
	phrasePattern("macro", 10),
	phrasePattern("macroeconomic", 10),
	phrasePattern("economic outlook", 10),
	phrasePattern("economic forecast", 10),
	phrasePattern("federal reserve", 8),
	phrasePattern("fed", 7),
	phrasePattern("fomc", 8),
	phrasePattern("monetary policy", 8),
	phrasePattern("inflation", 7),
	phrasePattern("recession", 8),
	phrasePattern("gdp", 7),

	// medium
	phrasePattern("interest rate", 5),
	phrasePattern("rate cut", 6),
	phrasePattern("rate hike", 6),
	phrasePattern("unemployment", 5),
	phrasePattern("labor market", 5),
	phrasePattern("fiscal policy", 5),
	phrasePattern("trade", 4),
	phrasePattern("outlook", 4),
	phrasePattern("forecast", 4),

	// context
	phrasePattern("economic", 2),
	phrasePattern("market", 2),
	phrasePattern("growth", 2),
	phrasePattern("policy", 2),
}

var macroKeywords = phrasePatterns(
	// economic indicators
	"macro", "macroeconomic", "macroeconomics", "economic outlook", "economic forecast",
	"gdp", "growth", "recession", "expansion", "contraction",
	// central banks
	"federal reserve", "fed", "fomc", "ecb", "central bank", "monetary policy",
	"interest rate", "rate cut", "rate hike", "quantitative easing", "qe",
	"jerome powell", "inflation target", "policy rate",
	// prices
	"inflation", "deflation", "disinflation", "cpi", "pce", "price level",
	"inflationary", "price pressures",
	// employment
	"employment", "unemployment", "labor market", "jobs report", "nonfarm payrolls",
	"unemployment rate", "wage growth",
	// fiscal
	"fiscal policy", "government spending", "budget", "deficit", "stimulus",
	"fiscal stimulus",
	// trade and global
	"trade", "trade war", "tariffs", "trade deficit", "geopolitical", "sanctions",
	// outlook
	"market outlook", "economic forecast", "economic prediction", "economic view",
	"outlook", "forecast", "prediction", "view", "perspective",
	// key macro themes
	"yield curve", "bond yield", "treasury", "10-year", "30-year",
	"housing market", "real estate", "consumer spending", "retail sales",
	"corporate earnings", "profit margins",
)

// minRelevantMatches is how many macro keywords make a text relevant
const minRelevantMatches = 2

// ScoreMacroRelevance sums weighted phrase matches and clamps the result to 0..100
func ScoreMacroRelevance(text string) int {
	lower := normalize(text)
	if lower == "" {
		return 0
	}

	score := 0
	for _, p := range relevanceWeights {
		score += p.count(lower) * p.weight
	}
	return min(100, score)
}

// IsMacroRelevant checks for at least two matches of the broader macro keyword list
func IsMacroRelevant(text string) bool {
	lower := normalize(text)
	if lower == "" {
		return false
	}
	return total(macroKeywords, lower) >= minRelevantMatches
}
