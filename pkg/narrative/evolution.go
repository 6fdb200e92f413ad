package narrative

import (
	"sort"
	"time"

	"github.com/umputun/makro/pkg/domain"
)

// TrackEvolution walks a theme's items chronologically and splits them into phases of equal
// sentiment. Each sentiment change between adjacent items closes the running phase and, when
// both sentiments are set, records an inflection. The last phase is open and ends at now.
func TrackEvolution(items []domain.ContentItem, theme string, sources []domain.Source, now time.Time) domain.Evolution {
	var tracked []domain.ContentItem
	for _, it := range items {
		if it.HasTheme(theme) {
			tracked = append(tracked, it)
		}
	}
	sort.SliceStable(tracked, func(i, j int) bool { return tracked[i].EventTime().Before(tracked[j].EventTime()) })

	res := domain.Evolution{Theme: theme, Entries: []domain.EvolutionEntry{}, TotalItems: len(tracked)}
	if len(tracked) == 0 {
		return res
	}

	var current domain.Sentiment
	var phaseStart time.Time
	phaseFrom := 0

	for idx, it := range tracked {
		date := it.EventTime()

		if idx == 0 || it.Sentiment != current {
			if idx > 0 {
				res.Entries = append(res.Entries, domain.EvolutionEntry{Phase: &domain.PhaseSegment{
					Phase:     phaseOf(current),
					Sentiment: current,
					StartDate: phaseStart,
					EndDate:   date,
					Items:     tracked[phaseFrom:idx],
				}})
				phaseFrom = idx
			}
			current, phaseStart = it.Sentiment, date
		}

		if idx > 0 {
			prev := tracked[idx-1]
			if prev.Sentiment != "" && it.Sentiment != "" && prev.Sentiment != it.Sentiment {
				res.Entries = append(res.Entries, domain.EvolutionEntry{Inflection: &domain.Inflection{
					From:    prev.Sentiment,
					To:      it.Sentiment,
					Date:    date,
					Source:  domain.SourceName(it, sources),
					Content: it,
				}})
			}
		}
	}

	res.Entries = append(res.Entries, domain.EvolutionEntry{Phase: &domain.PhaseSegment{
		Phase:     phaseOf(current),
		Sentiment: current,
		StartDate: phaseStart,
		EndDate:   now,
		Items:     tracked[phaseFrom:],
	}})
	res.CurrentSentiment = current
	return res
}

func phaseOf(s domain.Sentiment) domain.Phase {
	switch s {
	case domain.SentimentPositive:
		return domain.PhaseBullish
	case domain.SentimentNegative:
		return domain.PhaseBearish
	default:
		return domain.PhaseNeutral
	}
}
