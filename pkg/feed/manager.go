// Package feed fetches RSS/Atom feeds into articles and renders narrative RSS feeds
package feed

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/makro/pkg/content"
	"github.com/umputun/makro/pkg/domain"
)

//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . Fetcher
//go:generate moq -out mocks/extractor.go -pkg mocks -skip-ensure -fmt goimports . Extractor

// Fetcher retrieves and parses a single feed
type Fetcher interface {
	Fetch(ctx context.Context, f domain.Feed) ([]domain.Article, error)
}

// Extractor extracts full content from article URLs
type Extractor interface {
	Extract(ctx context.Context, url string) (content.Extracted, error)
}

// Result holds articles from all feeds and errors of feeds that failed
type Result struct {
	Articles []domain.Article  `json:"articles"`
	Errors   []domain.FeedError `json:"errors"`
}

// Manager fetches many feeds in parallel
type Manager struct {
	fetcher     Fetcher
	extractor   Extractor
	concurrency int
}

// NewManager creates a feed manager. Extractor is optional, without it articles keep feed descriptions.
func NewManager(fetcher Fetcher, extractor Extractor, concurrency int) *Manager {
	if concurrency <= 0 {
		concurrency = 4
	}
	return &Manager{fetcher: fetcher, extractor: extractor, concurrency: concurrency}
}

// FetchAll fetches every feed. A failed feed is reported in Errors and doesn't stop others.
// Articles are de-duplicated by link, keeping the first, and sorted newest first.
func (m *Manager) FetchAll(ctx context.Context, feeds []domain.Feed) Result {
	perFeed := make([][]domain.Article, len(feeds))
	errs := make([]error, len(feeds))

	g := errgroup.Group{}
	g.SetLimit(m.concurrency)
	for i, f := range feeds {
		g.Go(func() error {
			lgr.Printf("[DEBUG] fetching feed %s", f.URL)
			articles, err := m.fetcher.Fetch(ctx, f)
			if err != nil {
				lgr.Printf("[WARN] failed to fetch %s: %v", f.URL, err)
				errs[i] = err
				return nil
			}
			lgr.Printf("[DEBUG] fetched %d articles from %s", len(articles), f.URL)
			perFeed[i] = articles
			return nil
		})
	}
	_ = g.Wait()

	res := Result{Articles: []domain.Article{}, Errors: []domain.FeedError{}}
	seen := map[string]bool{}
	for i := range feeds {
		if errs[i] != nil {
			res.Errors = append(res.Errors, domain.FeedError{URL: feeds[i].URL, Error: errs[i].Error()})
			continue
		}
		for _, a := range perFeed[i] {
			if seen[a.Link] {
				continue
			}
			seen[a.Link] = true
			res.Articles = append(res.Articles, a)
		}
	}
	sort.SliceStable(res.Articles, func(i, j int) bool { return res.Articles[i].Published.After(res.Articles[j].Published) })

	lgr.Printf("[INFO] fetched %d articles from %d feeds, %d failed", len(res.Articles), len(feeds), len(res.Errors))
	return res
}

// ExtractAll replaces feed descriptions with full page text where extraction works.
// Failed extractions keep the description.
func (m *Manager) ExtractAll(ctx context.Context, articles []domain.Article) ([]domain.Article, error) {
	if m.extractor == nil {
		return articles, nil
	}

	res := make([]domain.Article, len(articles))
	copy(res, articles)

	var mu sync.Mutex
	extracted := 0
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.concurrency)
	for i := range res {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ex, err := m.extractor.Extract(ctx, res[i].Link)
			if err != nil {
				lgr.Printf("[DEBUG] can't extract %s: %v", res[i].Link, err)
				return nil
			}
			res[i].ExtractedText = ex.Text
			mu.Lock()
			extracted++
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("extract articles: %w", err)
	}
	lgr.Printf("[INFO] content extracted from %d/%d articles", extracted, len(res))
	return res, nil
}
