package lexicon

import "regexp"

// cashtagRe matches tickers like $AAPL, $TSLA, $BRK.B
var cashtagRe = regexp.MustCompile(`\$([A-Z]{1,5}(?:\.[A-Z])?)\b`)

// ExtractTickers finds cashtags in text and returns them without the $ prefix,
// deduplicated in order of first appearance
func ExtractTickers(text string) []string {
	matches := cashtagRe.FindAllStringSubmatch(text, -1)
	seen := make(map[string]bool, len(matches))
	var res []string
	for _, m := range matches {
		if len(m) < 2 || seen[m[1]] {
			continue
		}
		seen[m[1]] = true
		res = append(res, m[1])
	}
	return res
}
