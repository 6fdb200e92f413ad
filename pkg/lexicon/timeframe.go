package lexicon

import "github.com/umputun/makro/pkg/domain"

var longTermPhrases = phrasePatterns(
	"long-term", "long term", "over the next year", "next year", "in 2025", "in 2026",
	"over the coming year", "next 12 months", "next 18 months", "next 24 months",
	"over the next few years", "years ahead", "longer-term", "longer term",
	"sustained", "structural", "secular", "permanent", "enduring",
)

var shortTermPhrases = phrasePatterns(
	"short-term", "short term", "near-term", "near term", "immediate", "in the coming weeks",
	"next few weeks", "next few months", "in the next quarter", "next quarter",
	"over the next month", "next month", "this quarter", "current quarter",
	"temporary", "transitory", "near-term", "immediate term",
)

// ExtractTimeframe picks the horizon with more phrase matches, unknown on tie or no matches
func ExtractTimeframe(text string) domain.Timeframe {
	lower := normalize(text)
	if lower == "" {
		return domain.TimeframeUnknown
	}

	long, short := total(longTermPhrases, lower), total(shortTermPhrases, lower)
	switch {
	case long > short:
		return domain.TimeframeLongTerm
	case short > long:
		return domain.TimeframeShortTerm
	default:
		return domain.TimeframeUnknown
	}
}
