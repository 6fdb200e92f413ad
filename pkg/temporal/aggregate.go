package temporal

import (
	"math"
	"strings"

	"github.com/umputun/makro/pkg/domain"
)

// AggregateByAsset combines sentiment of items tagged with the ticker, matched case-insensitively
func AggregateByAsset(items []domain.ContentItem, ticker string) domain.SentimentAggregate {
	return aggregate(items, domain.EntityTicker, ticker)
}

// AggregateByTheme combines sentiment of items carrying a theme entity with the given name
func AggregateByTheme(items []domain.ContentItem, theme string) domain.SentimentAggregate {
	return aggregate(items, domain.EntityTheme, theme)
}

func aggregate(items []domain.ContentItem, typ domain.EntityType, name string) domain.SentimentAggregate {
	var relevant []domain.ContentItem
	for _, it := range items {
		for _, e := range it.Entities {
			if e.Type == typ && strings.EqualFold(e.Name, name) {
				relevant = append(relevant, it)
				break
			}
		}
	}

	res := domain.SentimentAggregate{Sentiment: domain.SentimentNeutral, Count: len(relevant)}
	if len(relevant) == 0 {
		return res
	}

	rated := 0
	for _, it := range relevant {
		if it.Sentiment != "" {
			rated++
		}
	}
	res.Breakdown = countSentiments(relevant)

	b := res.Breakdown
	switch {
	case b.Positive > b.Negative && b.Positive > b.Neutral:
		res.Sentiment = domain.SentimentPositive
	case b.Negative > b.Positive && b.Negative > b.Neutral:
		res.Sentiment = domain.SentimentNegative
	}
	if rated > 0 {
		res.Confidence = int(math.Round(float64(max(b.Positive, b.Negative)) / float64(rated) * 100))
	}
	return res
}

// mood labels
const (
	MoodBullish           = "bullish"
	MoodBearish           = "bearish"
	MoodCautiouslyBullish = "cautiously-bullish"
	MoodCautiouslyBearish = "cautiously-bearish"
	MoodNeutral           = "neutral"
)

// MarketMood derives the overall mood from sentiment shares of all items, unset sentiment
// counts as neutral
func MarketMood(items []domain.ContentItem) domain.Mood {
	res := domain.Mood{Mood: MoodNeutral, Total: len(items)}
	if len(items) == 0 {
		return res
	}

	var pos, neg, neu int
	for _, it := range items {
		switch it.Sentiment.OrNeutral() {
		case domain.SentimentPositive:
			pos++
		case domain.SentimentNegative:
			neg++
		case domain.SentimentNeutral:
			neu++
		}
	}
	total := float64(len(items))
	res.PositivePercent = float64(pos) / total * 100
	res.NegativePercent = float64(neg) / total * 100
	res.NeutralPercent = float64(neu) / total * 100

	switch {
	case res.PositivePercent > 50:
		res.Mood = MoodBullish
	case res.NegativePercent > 50:
		res.Mood = MoodBearish
	case res.PositivePercent > res.NegativePercent:
		res.Mood = MoodCautiouslyBullish
	case res.NegativePercent > res.PositivePercent:
		res.Mood = MoodCautiouslyBearish
	}
	return res
}
