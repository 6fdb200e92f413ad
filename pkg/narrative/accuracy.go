package narrative

import "github.com/umputun/makro/pkg/domain"

// SourceAccuracy scores each source by the share of its resolved calls marked correct.
// Pending outcomes and items without a record are not resolved. Sources are listed in order
// of their first item.
func SourceAccuracy(items []domain.ContentItem, sources []domain.Source, records map[string]domain.TrackRecord) []domain.SourceAccuracy {
	var order []string
	stats := map[string]*domain.SourceAccuracy{}

	for _, it := range items {
		if it.SourceID == "" {
			continue
		}
		st, ok := stats[it.SourceID]
		if !ok {
			st = &domain.SourceAccuracy{SourceID: it.SourceID, Name: domain.SourceName(it, sources)}
			stats[it.SourceID] = st
			order = append(order, it.SourceID)
		}

		rec, ok := records[it.ID]
		if !ok || rec.Outcome == domain.OutcomePending {
			continue
		}
		st.Total++
		if rec.Outcome == domain.OutcomeCorrect {
			st.Correct++
		}
	}

	res := make([]domain.SourceAccuracy, 0, len(order))
	for _, id := range order {
		st := stats[id]
		if st.Total > 0 {
			st.Accuracy = float64(st.Correct) / float64(st.Total) * 100
		}
		res = append(res, *st)
	}
	return res
}

// ValidOutcome checks the outcome is one of the known values
func ValidOutcome(o domain.Outcome) bool {
	switch o {
	case domain.OutcomeCorrect, domain.OutcomeIncorrect, domain.OutcomePartial, domain.OutcomePending:
		return true
	}
	return false
}
