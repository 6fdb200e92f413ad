// Package temporal answers time-oriented questions over a content snapshot: daily sentiment
// timeline, mention rankings, conflicts between items, narrative shifts and changes since a date.
package temporal

import (
	"math"
	"sort"

	"github.com/umputun/makro/pkg/domain"
)

// SentimentOverTime buckets items by the calendar day of their date. Items without a parseable
// date or without sentiment are skipped. Buckets are sorted by day ascending.
func SentimentOverTime(items []domain.ContentItem) []domain.SentimentBucket {
	byDay := map[string]*domain.SentimentBucket{}
	for _, it := range items {
		t, ok := domain.ParseDate(it.Date)
		if !ok || it.Sentiment == "" {
			continue
		}
		day := t.Format("2006-01-02")
		b, ok := byDay[day]
		if !ok {
			b = &domain.SentimentBucket{Date: day}
			byDay[day] = b
		}
		switch it.Sentiment {
		case domain.SentimentPositive:
			b.Positive++
		case domain.SentimentNegative:
			b.Negative++
		case domain.SentimentNeutral:
			b.Neutral++
		default:
			continue
		}
		b.Total++
	}

	res := make([]domain.SentimentBucket, 0, len(byDay))
	for _, b := range byDay {
		if b.Total == 0 {
			continue
		}
		b.PositivePercent = roundPercent(b.Positive, b.Total)
		b.NegativePercent = roundPercent(b.Negative, b.Total)
		b.NeutralPercent = roundPercent(b.Neutral, b.Total)
		b.NetSentiment = b.Positive - b.Negative
		res = append(res, *b)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Date < res[j].Date })
	return res
}

func roundPercent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
