package narrative

import (
	"fmt"

	"github.com/umputun/makro/pkg/domain"
)

// SourcePerspective collects everything a source said, grouped by theme
func SourcePerspective(items []domain.ContentItem, sourceID string, sources []domain.Source) domain.SourcePerspective {
	res := domain.SourcePerspective{
		Source:     domain.Source{ID: sourceID, Name: "Unknown"},
		Narratives: []domain.ContentItem{},
		ByTheme:    map[string][]domain.ContentItem{},
	}
	for _, s := range sources {
		if s.ID == sourceID {
			res.Source = s
			break
		}
	}

	for _, it := range items {
		if it.SourceID != sourceID {
			continue
		}
		if it.Themes == nil {
			it.Themes = []string{}
		}
		if it.Entities == nil {
			it.Entities = []domain.Entity{}
		}
		res.Narratives = append(res.Narratives, it)
		for _, theme := range it.Themes {
			res.ByTheme[theme] = append(res.ByTheme[theme], it)
		}
		switch it.Sentiment.OrNeutral() {
		case domain.SentimentPositive:
			res.SentimentBreakdown.Positive++
		case domain.SentimentNegative:
			res.SentimentBreakdown.Negative++
		case domain.SentimentNeutral:
			res.SentimentBreakdown.Neutral++
		}
	}
	res.TotalContent = len(res.Narratives)
	return res
}

// CheckInvalidations finds items contradicted by other items on the same theme. Pairs already
// present in known are skipped.
func CheckInvalidations(items []domain.ContentItem, known []domain.Invalidation) []domain.Invalidation {
	seen := make(map[string]bool, len(known))
	for _, inv := range known {
		seen[invalidationKey(inv.ContentID, inv.InvalidatedBy)] = true
	}

	res := []domain.Invalidation{}
	for _, it := range items {
		for _, theme := range it.Themes {
			for _, related := range items {
				if related.ID == it.ID || !related.HasTheme(theme) || !it.Sentiment.Opposes(related.Sentiment) {
					continue
				}
				if seen[invalidationKey(related.ID, it.ID)] {
					continue
				}
				res = append(res, domain.Invalidation{
					ContentID:     related.ID,
					InvalidatedBy: it.ID,
					Theme:         theme,
					Reason:        "sentiment_contradiction",
					Date:          it.EventTime(),
				})
			}
		}
	}
	return res
}

func invalidationKey(contentID, by string) string {
	return fmt.Sprintf("%s\x00%s", contentID, by)
}
