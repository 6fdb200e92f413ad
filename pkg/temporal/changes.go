package temporal

import (
	"time"

	"github.com/umputun/makro/pkg/domain"
)

// ChangesSince splits items into recent (on or after since) and old ones by their date, falling
// back to creation time, and reports themes that appeared or disappeared along with the change
// in sentiment counts. Items without any usable time are in neither group.
func ChangesSince(items []domain.ContentItem, since time.Time) domain.Changes {
	var recent, old []domain.ContentItem
	for _, it := range items {
		t := it.EventTime()
		if t.IsZero() {
			continue
		}
		if t.Before(since) {
			old = append(old, it)
			continue
		}
		recent = append(recent, it)
	}

	oldThemes, newThemes := themeSet(old), themeSet(recent)
	res := domain.Changes{
		RecentContentCount: len(recent),
		OldContentCount:    len(old),
		AddedThemes:        []string{},
		RemovedThemes:      []string{},
		RecentContent:      []domain.ContentItem{},
	}
	for _, t := range newThemes.vals {
		if !oldThemes.has(t) {
			res.AddedThemes = append(res.AddedThemes, t)
		}
	}
	for _, t := range oldThemes.vals {
		if !newThemes.has(t) {
			res.RemovedThemes = append(res.RemovedThemes, t)
		}
	}

	was, now := countSentiments(old), countSentiments(recent)
	res.SentimentShift = domain.SentimentCounts{
		Positive: now.Positive - was.Positive,
		Negative: now.Negative - was.Negative,
		Neutral:  now.Neutral - was.Neutral,
	}
	res.RecentContent = append(res.RecentContent, recent...)
	return res
}

// WindowStart returns the start of a named comparison window ending at now
func WindowStart(window string, now time.Time) (time.Time, bool) {
	switch window {
	case "day":
		return now.AddDate(0, 0, -1), true
	case "week":
		return now.AddDate(0, 0, -7), true
	case "month":
		return now.AddDate(0, -1, 0), true
	}
	return time.Time{}, false
}

// countSentiments counts explicitly set sentiments only
func countSentiments(items []domain.ContentItem) domain.SentimentCounts {
	var res domain.SentimentCounts
	for _, it := range items {
		switch it.Sentiment {
		case domain.SentimentPositive:
			res.Positive++
		case domain.SentimentNegative:
			res.Negative++
		case domain.SentimentNeutral:
			res.Neutral++
		}
	}
	return res
}

type stringSet struct {
	seen map[string]bool
	vals []string
}

func (s *stringSet) has(v string) bool { return s.seen[v] }

func themeSet(items []domain.ContentItem) *stringSet {
	s := &stringSet{seen: map[string]bool{}}
	for _, it := range items {
		for _, t := range it.Themes {
			if !s.seen[t] {
				s.seen[t] = true
				s.vals = append(s.vals, t)
			}
		}
	}
	return s
}
