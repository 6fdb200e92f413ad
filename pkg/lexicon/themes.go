package lexicon

// themeDef is a canonical macro theme and phrases signalling it
type themeDef struct {
	name     string
	patterns []pattern
}

// canonicalThemes are checked in declaration order, which is also the output order
var canonicalThemes = []themeDef{
	{"Inflation", phrasePatterns(
		"inflation", "cpi", "consumer price index", "price level", "price pressures",
		"deflation", "disinflation", "inflationary", "inflationary pressures",
		"core inflation", "headline inflation", "pce", "personal consumption")},
	{"Fed Policy", phrasePatterns(
		"federal reserve", "fed", "fomc", "interest rate", "rate cut", "rate hike",
		"monetary policy", "quantitative easing", "qe", "tapering", "balance sheet",
		"jerome powell", "fed chair", "federal funds rate", "fed meeting")},
	{"Interest Rates", phrasePatterns(
		"interest rate", "yield", "treasury", "bond yield", "10-year", "30-year",
		"rate cut", "rate hike", "rate increase", "rate decrease", "basis points",
		"yield curve", "inverted yield", "fed funds")},
	{"Recession", phrasePatterns(
		"recession", "economic downturn", "economic contraction", "gdp decline",
		"negative growth", "economic slowdown", "bear market", "economic crisis")},
	{"GDP Growth", phrasePatterns(
		"gdp", "gross domestic product", "economic growth", "growth rate",
		"economic expansion", "gdp growth", "economic output")},
	{"Employment", phrasePatterns(
		"employment", "unemployment", "job market", "labor market", "jobs report",
		"nonfarm payrolls", "unemployment rate", "jobless claims", "hiring",
		"layoffs", "wage growth", "labor force")},
	{"Monetary Policy", phrasePatterns(
		"monetary policy", "central bank", "policy rate", "policy stance",
		"accommodative", "restrictive", "hawkish", "dovish")},
	{"Fiscal Policy", phrasePatterns(
		"fiscal policy", "government spending", "budget", "deficit", "surplus",
		"stimulus", "fiscal stimulus", "tax policy", "government debt")},
	{"Trade", phrasePatterns(
		"trade", "trade war", "tariffs", "trade deficit", "trade surplus",
		"imports", "exports", "trade policy", "trade agreement")},
	{"Geopolitics", phrasePatterns(
		"geopolitical", "geopolitics", "sanctions", "war", "conflict",
		"tensions", "diplomatic", "international relations")},
	{"Energy", phrasePatterns(
		"oil", "crude", "energy prices", "gasoline", "natural gas", "energy market",
		"opec", "energy crisis", "energy supply")},
	{"Technology", phrasePatterns(
		"tech", "technology", "ai", "artificial intelligence", "tech stocks",
		"innovation", "digital", "semiconductors", "tech sector")},
	{"Housing", phrasePatterns(
		"housing", "real estate", "home prices", "housing market", "mortgage",
		"housing starts", "home sales", "real estate market")},
	{"Consumer Spending", phrasePatterns(
		"consumer spending", "retail sales", "consumer confidence", "consumer sentiment",
		"retail", "consumption", "consumer demand")},
	{"Corporate Earnings", phrasePatterns(
		"earnings", "corporate earnings", "profit", "revenue", "earnings season",
		"corporate profits", "company earnings")},
}

// ExtractMacroThemes returns canonical themes with at least one phrase match, in declaration order
func ExtractMacroThemes(text string) []string {
	lower := normalize(text)
	if lower == "" {
		return []string{}
	}

	res := []string{}
	seen := make(map[string]bool, len(canonicalThemes))
	for _, th := range canonicalThemes {
		if seen[th.name] || total(th.patterns, lower) == 0 {
			continue
		}
		seen[th.name] = true
		res = append(res, th.name)
	}
	return res
}

// CanonicalThemes lists the names of all known macro themes
func CanonicalThemes() []string {
	res := make([]string, len(canonicalThemes))
	for i, th := range canonicalThemes {
		res[i] = th.name
	}
	return res
}
