package temporal

import (
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/umputun/makro/pkg/domain"
)

// DetectConflicts compares a new item against existing ones. Opposite polar sentiment on a
// shared theme is a sentiment conflict, on a shared ticker a ticker conflict. Both can fire for
// the same pair.
func DetectConflicts(newItem domain.ContentItem, existing []domain.ContentItem) []domain.Conflict {
	res := []domain.Conflict{}
	if len(existing) == 0 {
		return res
	}

	newTickers := newItem.Tickers()
	for _, ex := range existing {
		if !newItem.Sentiment.Opposes(ex.Sentiment) {
			continue
		}

		var themes []string
		for _, t := range newItem.Themes {
			if ex.HasTheme(t) {
				themes = append(themes, t)
			}
		}
		if len(themes) > 0 {
			res = append(res, domain.Conflict{
				Type:              domain.ConflictSentiment,
				NewContentID:      newItem.ID,
				ExistingContentID: ex.ID,
				Themes:            themes,
				NewSentiment:      newItem.Sentiment,
				ExistingSentiment: ex.Sentiment,
				Severity:          "high",
			})
		}

		if newItem.Entities == nil || ex.Entities == nil {
			continue
		}
		exTickers := ex.Tickers()
		var tickers []string
		for _, t := range newTickers {
			if slices.Contains(exTickers, t) {
				tickers = append(tickers, t)
			}
		}
		if len(tickers) > 0 {
			res = append(res, domain.Conflict{
				Type:              domain.ConflictTickerSentiment,
				NewContentID:      newItem.ID,
				ExistingContentID: ex.ID,
				Tickers:           tickers,
				NewSentiment:      newItem.Sentiment,
				ExistingSentiment: ex.Sentiment,
				Severity:          "high",
			})
		}
	}
	return res
}

// ScanConflicts checks every unordered pair of items once, each item against all items after it,
// with rows spread over a bounded worker pool. The result is in row order.
func ScanConflicts(ctx context.Context, items []domain.ContentItem, workers int) ([]domain.Conflict, error) {
	if workers <= 0 {
		workers = 1
	}

	rows := make([][]domain.Conflict, len(items))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var later []domain.ContentItem
			for _, it := range items[i+1:] {
				if it.ID != items[i].ID {
					later = append(later, it)
				}
			}
			rows[i] = DetectConflicts(items[i], later)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("scan conflicts: %w", err)
	}

	res := []domain.Conflict{}
	for _, row := range rows {
		res = append(res, row...)
	}
	return res, nil
}
