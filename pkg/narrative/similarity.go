// Package narrative groups content into narratives: similarity scoring, greedy clustering,
// per-theme narrative cards, evolution timelines and related read-only views.
// Every function is a pure projection of the snapshot it receives.
package narrative

import (
	"strings"

	"github.com/umputun/makro/pkg/domain"
)

// factor weights of the similarity score
const (
	sentimentWeight = 0.3
	entityWeight    = 0.5
	themeWeight     = 0.2
)

// Similarity scores how alike two items are in 0..1.
// Only factors present on both items are evaluated, and the score is normalized by the weights
// of evaluated factors, so missing data doesn't drag the score down.
func Similarity(a, b domain.ContentItem) float64 {
	score, factors := 0.0, 0.0

	if a.Sentiment != "" && b.Sentiment != "" {
		if a.Sentiment == b.Sentiment {
			score += sentimentWeight
		}
		factors += sentimentWeight
	}

	if a.Entities != nil && b.Entities != nil {
		score += jaccard(entityNames(a.Entities), entityNames(b.Entities)) * entityWeight
		factors += entityWeight
	}

	if a.Themes != nil && b.Themes != nil {
		score += jaccard(lowerSet(a.Themes), lowerSet(b.Themes)) * themeWeight
		factors += themeWeight
	}

	if factors == 0 {
		return 0
	}
	return score / factors
}

// jaccard returns |a∩b|/|a∪b|, 0 for two empty sets
func jaccard(a, b map[string]struct{}) float64 {
	union := len(a)
	inter := 0
	for k := range b {
		if _, ok := a[k]; ok {
			inter++
			continue
		}
		union++
	}
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

func entityNames(entities []domain.Entity) map[string]struct{} {
	res := make(map[string]struct{}, len(entities))
	for _, e := range entities {
		res[strings.ToLower(e.Name)] = struct{}{}
	}
	return res
}

func lowerSet(vals []string) map[string]struct{} {
	res := make(map[string]struct{}, len(vals))
	for _, v := range vals {
		res[strings.ToLower(v)] = struct{}{}
	}
	return res
}

// orderedSet keeps unique strings in insertion order
type orderedSet struct {
	seen map[string]bool
	vals []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: map[string]bool{}, vals: []string{}}
}

func (s *orderedSet) add(v string) {
	if s.seen[v] {
		return
	}
	s.seen[v] = true
	s.vals = append(s.vals, v)
}

func (s *orderedSet) has(v string) bool { return s.seen[v] }
