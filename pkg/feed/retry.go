package feed

import (
	"context"
	"time"

	"github.com/go-pkgz/repeater/v2"

	"github.com/umputun/makro/pkg/domain"
)

// RetryFetcher retries a failed feed fetch with exponential backoff
type RetryFetcher struct {
	Fetcher
	attempts int
	delay    time.Duration
}

// NewRetryFetcher wraps fetcher, attempts below 1 mean a single try
func NewRetryFetcher(fetcher Fetcher, attempts int, delay time.Duration) *RetryFetcher {
	if attempts < 1 {
		attempts = 1
	}
	if delay <= 0 {
		delay = time.Second
	}
	return &RetryFetcher{Fetcher: fetcher, attempts: attempts, delay: delay}
}

// Fetch calls the wrapped fetcher until it succeeds, attempts run out or ctx is done
func (r *RetryFetcher) Fetch(ctx context.Context, f domain.Feed) ([]domain.Article, error) {
	var res []domain.Article
	err := repeater.NewBackoff(r.attempts, r.delay, repeater.WithMaxDelay(30*time.Second)).Do(ctx, func() error {
		articles, err := r.Fetcher.Fetch(ctx, f)
		if err != nil {
			return err
		}
		res = articles
		return nil
	})
	return res, err
}
