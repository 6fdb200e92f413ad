// Package alert turns narrative shifts and invalidations into dismissable alerts
package alert

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/umputun/makro/pkg/domain"
	"github.com/umputun/makro/pkg/narrative"
	"github.com/umputun/makro/pkg/temporal"
)

// alert types
const (
	TypeNarrativeShift = "narrative_shift"
	TypeInvalidation   = "invalidation"
)

// alert severities
const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
)

// Params defines what Build needs besides the items
type Params struct {
	ShiftThreshold float64               // threshold for narrative shifts, non-positive means default
	Known          []domain.Invalidation // invalidations already reported
	Dismissed      []string              // ids of dismissed alerts
	Now            time.Time             // date of shift alerts
}

// Build makes shift alerts followed by invalidation alerts, skipping dismissed ones.
// Alert ids are unique, a pair contradicting on several themes yields one alert.
func Build(items []domain.ContentItem, p Params) []domain.Alert {
	dismissed := make(map[string]bool, len(p.Dismissed))
	for _, id := range p.Dismissed {
		dismissed[id] = true
	}

	res := []domain.Alert{}
	added := map[string]bool{}
	add := func(a domain.Alert) {
		if dismissed[a.ID] || added[a.ID] {
			return
		}
		added[a.ID] = true
		res = append(res, a)
	}

	for _, s := range temporal.DetectNarrativeShifts(items, p.ShiftThreshold) {
		add(ShiftAlert(s, p.Now))
	}
	for _, inv := range narrative.CheckInvalidations(items, p.Known) {
		add(InvalidationAlert(inv))
	}
	return res
}

// ShiftAlert makes a medium severity alert for a narrative shift
func ShiftAlert(s domain.NarrativeShift, now time.Time) domain.Alert {
	return domain.Alert{
		ID:       "shift-" + s.Theme,
		Type:     TypeNarrativeShift,
		Severity: SeverityMedium,
		Title:    "Narrative Shift: " + s.Theme,
		Message: fmt.Sprintf("Sentiment shifted from %s to %s (%d%% change)",
			s.OlderSentiment, s.RecentSentiment, int(math.Round(s.Magnitude*100))),
		Theme: s.Theme,
		Date:  now,
	}
}

// InvalidationAlert makes a high severity alert for a contradicted item
func InvalidationAlert(inv domain.Invalidation) domain.Alert {
	return domain.Alert{
		ID:       fmt.Sprintf("invalidation-%s-%s", inv.ContentID, inv.InvalidatedBy),
		Type:     TypeInvalidation,
		Severity: SeverityHigh,
		Title:    "Narrative Invalidation Detected",
		Message:  "Content contradicts existing narrative on theme: " + inv.Theme,
		Theme:    inv.Theme,
		Date:     inv.Date,
	}
}

// Dismiss adds id to the dismissed list, keeping it sorted and unique
func Dismiss(dismissed []string, id string) []string {
	res := make([]string, 0, len(dismissed)+1)
	seen := map[string]bool{}
	for _, d := range append(dismissed, id) {
		if d == "" || seen[d] {
			continue
		}
		seen[d] = true
		res = append(res, d)
	}
	sort.Strings(res)
	return res
}
