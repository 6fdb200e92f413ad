package temporal

import (
	"math"
	"sort"

	"github.com/umputun/makro/pkg/domain"
)

// DefaultShiftThreshold is used when a non-positive threshold is requested
const DefaultShiftThreshold = 0.3

// minShiftItems is the smallest number of items on a theme to look for a shift
const minShiftItems = 3

// DetectNarrativeShifts compares the positive share of the older and recent half of each theme's
// items, in date order. Themes whose share moved by at least threshold are reported, in the order
// the themes were first seen.
func DetectNarrativeShifts(items []domain.ContentItem, threshold float64) []domain.NarrativeShift {
	if threshold <= 0 {
		threshold = DefaultShiftThreshold
	}

	var order []string
	byTheme := map[string][]domain.ContentItem{}
	for _, it := range items {
		for _, theme := range it.Themes {
			if _, ok := byTheme[theme]; !ok {
				order = append(order, theme)
			}
			byTheme[theme] = append(byTheme[theme], it)
		}
	}

	res := []domain.NarrativeShift{}
	for _, theme := range order {
		tracked := byTheme[theme]
		if len(tracked) < minShiftItems {
			continue
		}
		sort.SliceStable(tracked, func(i, j int) bool { return tracked[i].EventTime().Before(tracked[j].EventTime()) })

		mid := len(tracked) / 2
		older, recent := tracked[:mid], tracked[mid:]
		olderRatio, recentRatio := positiveRatio(older), positiveRatio(recent)
		shift := recentRatio - olderRatio
		if math.Abs(shift) < threshold {
			continue
		}

		direction := domain.SentimentNegative
		if shift > 0 {
			direction = domain.SentimentPositive
		}
		res = append(res, domain.NarrativeShift{
			Theme:           theme,
			Shift:           direction,
			Magnitude:       math.Abs(shift),
			OlderSentiment:  ratioLabel(olderRatio),
			RecentSentiment: ratioLabel(recentRatio),
			OlderCount:      len(older),
			RecentCount:     len(recent),
		})
	}
	return res
}

func positiveRatio(items []domain.ContentItem) float64 {
	if len(items) == 0 {
		return 0
	}
	pos := 0
	for _, it := range items {
		if it.Sentiment == domain.SentimentPositive {
			pos++
		}
	}
	return float64(pos) / float64(len(items))
}

// ratioLabel labels a positive share, exactly one half is neutral
func ratioLabel(r float64) domain.Sentiment {
	switch {
	case r > 0.5:
		return domain.SentimentPositive
	case r < 0.5:
		return domain.SentimentNegative
	default:
		return domain.SentimentNeutral
	}
}
