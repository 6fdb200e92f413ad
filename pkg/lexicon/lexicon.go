// Package lexicon scores free text against fixed keyword tables: sentiment stems, timeframe
// phrases, canonical macro themes and weighted macro-relevance phrases.
// All matching is case-insensitive, word-boundary delimited and counts every occurrence.
package lexicon

import (
	"regexp"
	"strings"
)

// pattern is a compiled keyword with the weight it contributes per match
type pattern struct {
	keyword string
	re      *regexp.Regexp
	weight  int
}

// count returns the number of non-overlapping matches in text
func (p pattern) count(text string) int {
	return len(p.re.FindAllStringIndex(text, -1))
}

// stemPatterns compiles keywords matching the stem and any trailing word characters
func stemPatterns(keywords ...string) []pattern {
	res := make([]pattern, 0, len(keywords))
	for _, k := range keywords {
		res = append(res, pattern{keyword: k, weight: 1, re: regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(k) + `\w*`)})
	}
	return res
}

// phrasePatterns compiles keywords matching the exact escaped phrase between word boundaries
func phrasePatterns(keywords ...string) []pattern {
	res := make([]pattern, 0, len(keywords))
	for _, k := range keywords {
		res = append(res, phrasePattern(k, 1))
	}
	return res
}

func phrasePattern(keyword string, weight int) pattern {
	return pattern{keyword: keyword, weight: weight, re: regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(keyword) + `\b`)}
}

// total sums match counts of all patterns
func total(patterns []pattern, text string) int {
	res := 0
	for _, p := range patterns {
		res += p.count(text)
	}
	return res
}

// normalize lower-cases text, empty result means nothing to score
func normalize(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	return strings.ToLower(text)
}
