package narrative

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/umputun/makro/pkg/domain"
)

// clusterThreshold is the similarity to the seed an item needs to join its cluster
const clusterThreshold = 0.3

// Cluster groups items in a single greedy pass. Each unassigned item seeds a new cluster and
// pulls in every later unassigned item similar enough to the seed. Only the seed is compared,
// so the result depends on input order.
func Cluster(items []domain.ContentItem) []domain.Cluster {
	res, _ := cluster(context.Background(), items, func(_ context.Context, seed domain.ContentItem, cands []domain.ContentItem) ([]float64, error) {
		sims := make([]float64, len(cands))
		for i, c := range cands {
			sims[i] = Similarity(seed, c)
		}
		return sims, nil
	})
	return res
}

// ClusterParallel is Cluster with seed-to-candidate similarities computed by a bounded
// worker pool. The result is identical to Cluster for the same input.
func ClusterParallel(ctx context.Context, items []domain.ContentItem, workers int) ([]domain.Cluster, error) {
	if workers <= 0 {
		workers = 1
	}
	return cluster(ctx, items, func(ctx context.Context, seed domain.ContentItem, cands []domain.ContentItem) ([]float64, error) {
		sims := make([]float64, len(cands))
		g, ctx := errgroup.WithContext(ctx)
		g.SetLimit(workers)
		for i := range cands {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				sims[i] = Similarity(seed, cands[i])
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, fmt.Errorf("score candidates: %w", err)
		}
		return sims, nil
	})
}

type scoreFunc func(ctx context.Context, seed domain.ContentItem, cands []domain.ContentItem) ([]float64, error)

func cluster(ctx context.Context, items []domain.ContentItem, score scoreFunc) ([]domain.Cluster, error) {
	res := []domain.Cluster{}
	assigned := make(map[string]bool, len(items))

	for idx, seed := range items {
		if assigned[seed.ID] {
			continue
		}

		var cands []domain.ContentItem
		for _, other := range items[idx+1:] {
			if !assigned[other.ID] {
				cands = append(cands, other)
			}
		}
		sims, err := score(ctx, seed, cands)
		if err != nil {
			return nil, err
		}

		c := domain.Cluster{
			ID:        fmt.Sprintf("cluster-%d", idx),
			Items:     []domain.ContentItem{seed},
			Sentiment: seed.Sentiment.OrNeutral(),
		}
		themes, entities := newOrderedSet(), newOrderedSet()
		collect := func(it domain.ContentItem) {
			for _, e := range it.Entities {
				if e.Type == domain.EntityTheme {
					themes.add(e.Name)
				}
				entities.add(e.Name)
			}
		}
		collect(seed)

		agree := 1 // the seed always agrees with itself
		for i, other := range cands {
			// an earlier candidate of this seed may share the id
			if sims[i] <= clusterThreshold || assigned[other.ID] {
				continue
			}
			c.Items = append(c.Items, other)
			assigned[other.ID] = true
			collect(other)
			if other.Sentiment == c.Sentiment {
				agree++
			}
		}
		assigned[seed.ID] = true

		c.Themes, c.Entities = themes.vals, entities.vals
		c.ConsensusRatio = float64(agree) / float64(len(c.Items))
		c.IsContrarian = len(c.Items) <= 2 && c.ConsensusRatio < 0.5
		res = append(res, c)
	}
	return res, nil
}

// ClassifyConsensus rates agreement inside a cluster by the share of its plurality sentiment,
// independently of the seed-relative consensus ratio
func ClassifyConsensus(c domain.Cluster) domain.ConsensusLevel {
	if len(c.Items) == 0 {
		return domain.ConsensusUnknown
	}

	var counts domain.SentimentCounts
	for _, it := range c.Items {
		switch it.Sentiment.OrNeutral() {
		case domain.SentimentPositive:
			counts.Positive++
		case domain.SentimentNegative:
			counts.Negative++
		case domain.SentimentNeutral:
			counts.Neutral++
		}
	}

	ratio := float64(max(counts.Positive, counts.Negative, counts.Neutral)) / float64(len(c.Items))
	switch {
	case ratio >= 0.7:
		return domain.ConsensusStrong
	case ratio >= 0.5:
		return domain.ConsensusModerate
	default:
		return domain.ConsensusContrarian
	}
}
