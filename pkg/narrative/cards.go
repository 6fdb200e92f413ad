package narrative

import (
	"fmt"
	"sort"

	"github.com/umputun/makro/pkg/domain"
)

// BuildCards groups items by theme into narrative cards, in order of first theme appearance.
// Positive items are supporting voices, negative ones are counter arguments, everything else
// only counts toward the total.
func BuildCards(items []domain.ContentItem, sources []domain.Source) []domain.NarrativeCard {
	var order []string
	byTheme := map[string]*domain.NarrativeCard{}

	for _, it := range items {
		for _, theme := range it.Themes {
			card, ok := byTheme[theme]
			if !ok {
				card = &domain.NarrativeCard{Theme: theme, SupportingVoices: []domain.Voice{}, CounterArguments: []domain.Voice{}}
				byTheme[theme] = card
				order = append(order, theme)
			}
			card.Items = append(card.Items, it)

			voice := domain.Voice{Source: domain.SourceName(it, sources), Content: it, Date: it.EventTime()}
			switch it.Sentiment {
			case domain.SentimentPositive:
				card.SupportingVoices = append(card.SupportingVoices, voice)
			case domain.SentimentNegative:
				card.CounterArguments = append(card.CounterArguments, voice)
			}
		}
	}

	res := make([]domain.NarrativeCard, 0, len(order))
	for _, theme := range order {
		card := byTheme[theme]
		card.Total = len(card.Items)
		card.Positive = len(card.SupportingVoices)
		card.Negative = len(card.CounterArguments)
		card.Neutral = card.Total - card.Positive - card.Negative
		card.Consensus, card.ConsensusPercent = consensusLabel(card.Positive, card.Negative, card.Neutral)

		// latest supporting voice goes first
		sort.SliceStable(card.SupportingVoices, func(i, j int) bool {
			return card.SupportingVoices[i].Date.After(card.SupportingVoices[j].Date)
		})
		card.Thesis = thesis(card)
		res = append(res, *card)
	}
	return res
}

// consensusLabel names the plurality bucket, positive wins ties over negative and negative over neutral
func consensusLabel(positive, negative, neutral int) (label string, percent float64) {
	total := positive + negative + neutral
	if total == 0 {
		return "mixed", 0
	}

	maxCount := max(positive, negative, neutral)
	percent = float64(maxCount) / float64(total) * 100

	bucket := "neutral"
	switch maxCount {
	case positive:
		bucket = "positive"
	case negative:
		bucket = "negative"
	}

	switch {
	case percent >= 70:
		return "consensus_" + bucket, percent
	case percent >= 50:
		return "majority_" + bucket, percent
	default:
		return "dissent", percent
	}
}

func thesis(card *domain.NarrativeCard) string {
	if len(card.SupportingVoices) > 0 && card.SupportingVoices[0].Content.Title != "" {
		return card.SupportingVoices[0].Content.Title
	}
	if len(card.Items) > 0 && card.Items[0].Title != "" {
		return card.Items[0].Title
	}
	return fmt.Sprintf("Narrative about %s", card.Theme)
}
