// Package scheduler polls macro feeds on an interval and ingests relevant articles
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/makro/pkg/domain"
	"github.com/umputun/makro/pkg/feed"
)

//go:generate moq -out mocks/feed_store.go -pkg mocks -skip-ensure -fmt goimports . FeedStore
//go:generate moq -out mocks/setting_store.go -pkg mocks -skip-ensure -fmt goimports . SettingStore
//go:generate moq -out mocks/feed_manager.go -pkg mocks -skip-ensure -fmt goimports . FeedManager
//go:generate moq -out mocks/ingester.go -pkg mocks -skip-ensure -fmt goimports . Ingester

// FeedStore keeps user-added feeds and the fetch status of every polled feed
type FeedStore interface {
	GetFeeds(ctx context.Context) ([]domain.Feed, error)
	UpdateFeedFetched(ctx context.Context, url string, fetched time.Time) error
	UpdateFeedError(ctx context.Context, url, errMsg string) error
}

// SettingStore persists key-value settings
type SettingStore interface {
	SetSetting(ctx context.Context, key, value string) error
}

// FeedManager fetches feeds in parallel and optionally extracts full article text
type FeedManager interface {
	FetchAll(ctx context.Context, feeds []domain.Feed) feed.Result
	ExtractAll(ctx context.Context, articles []domain.Article) ([]domain.Article, error)
}

// Ingester analyzes and stores articles not seen before
type Ingester interface {
	AddArticles(ctx context.Context, articles []domain.Article) (int, error)
}

// Params holds scheduler dependencies and settings
type Params struct {
	FeedStore    FeedStore
	SettingStore SettingStore
	FeedManager  FeedManager
	Ingester     Ingester

	Feeds          []domain.Feed // configured and predefined feeds, user-added ones come from FeedStore
	UpdateInterval time.Duration
	MinRelevance   int
	Extract        bool
}

// Scheduler runs feed updates periodically
type Scheduler struct {
	processor      *FeedProcessor
	updateInterval time.Duration

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// NewScheduler creates a new scheduler
func NewScheduler(params Params) *Scheduler {
	if params.UpdateInterval <= 0 {
		params.UpdateInterval = 30 * time.Minute
	}
	return &Scheduler{
		processor:      newFeedProcessor(params),
		updateInterval: params.UpdateInterval,
	}
}

// Start runs the first update right away and then one per interval until Stop or ctx cancellation
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.feedUpdateWorker(ctx)

	lgr.Printf("[INFO] scheduler started with update interval %v", s.updateInterval)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// UpdateNow runs a single update and waits for it. Concurrent calls are serialized.
func (s *Scheduler) UpdateNow(ctx context.Context) (Report, error) {
	return s.processor.Update(ctx)
}

// Feeds returns every polled feed with its fetch status
func (s *Scheduler) Feeds(ctx context.Context) ([]domain.Feed, error) {
	return s.processor.feeds(ctx)
}

func (s *Scheduler) feedUpdateWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	s.update(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.update(ctx)
		}
	}
}

func (s *Scheduler) update(ctx context.Context) {
	if _, err := s.processor.Update(ctx); err != nil && ctx.Err() == nil {
		lgr.Printf("[ERROR] feed update failed: %v", err)
	}
}
