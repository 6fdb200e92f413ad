package lexicon

import (
	"math"

	"github.com/umputun/makro/pkg/domain"
)

// signalBoostThreshold is the number of matches starting from which confidence gets boosted
const signalBoostThreshold = 5

// duplicates are intentional, every listed stem counts on its own
var positiveStems = stemPatterns(
	"bullish", "bull", "growth", "optimistic", "positive", "strong", "rally",
	"surge", "gain", "rise", "increase", "improve", "recovery", "rebound",
	"outperform", "buy", "upgrade", "beat", "exceed", "outperform", "momentum",
	"opportunity", "upside", "favorable", "supportive", "constructive",
)

var negativeStems = stemPatterns(
	"bearish", "bear", "decline", "pessimistic", "negative", "weak", "crash",
	"drop", "fall", "decrease", "worsen", "recession", "crisis", "collapse",
	"underperform", "sell", "downgrade", "miss", "disappoint", "risk",
	"concern", "worry", "threat", "challenge", "headwind", "pressure",
)

// SentimentScore is the result of keyword sentiment scoring
type SentimentScore struct {
	Sentiment  domain.Sentiment `json:"sentiment"`
	Confidence int              `json:"confidence"`
	Positive   int              `json:"positive"`
	Negative   int              `json:"negative"`
}

// AnalyzeSentiment scores text polarity by counting positive and negative stems.
// Confidence is the winning share of matches in percent, ties give 50, no matches give 0.
// Five or more matches add a flat 10 points, capped at 100.
func AnalyzeSentiment(text string) SentimentScore {
	lower := normalize(text)
	if lower == "" {
		return SentimentScore{Sentiment: domain.SentimentNeutral}
	}

	pos, neg := total(positiveStems, lower), total(negativeStems, lower)
	res := SentimentScore{Sentiment: domain.SentimentNeutral, Positive: pos, Negative: neg}
	all := pos + neg

	switch {
	case all == 0:
		return res
	case pos > neg:
		res.Sentiment = domain.SentimentPositive
		res.Confidence = percent(pos, all)
	case neg > pos:
		res.Sentiment = domain.SentimentNegative
		res.Confidence = percent(neg, all)
	default:
		res.Confidence = 50
	}

	if all >= signalBoostThreshold {
		res.Confidence = min(100, res.Confidence+10)
	}
	return res
}

// percent returns round(part/whole*100) capped at 100, 0 for empty whole
func percent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return min(100, int(math.Round(float64(part)/float64(whole)*100)))
}
