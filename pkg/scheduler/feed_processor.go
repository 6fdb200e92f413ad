package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/makro/pkg/analysis"
	"github.com/umputun/makro/pkg/domain"
	"github.com/umputun/makro/pkg/feed"
)

// Report summarizes a single feed update
type Report struct {
	Feeds    int                `json:"feeds"`
	Articles int                `json:"articles"`
	Relevant int                `json:"relevant"`
	Added    int                `json:"added"`
	Errors   []domain.FeedError `json:"errors"`
}

// FeedProcessor runs one update: fetch due feeds, record their status, keep macro-relevant
// articles and hand them to the ingester
type FeedProcessor struct {
	feedStore    FeedStore
	settingStore SettingStore
	manager      FeedManager
	ingester     Ingester

	configured   []domain.Feed
	minRelevance int
	extract      bool
	now          func() time.Time

	mu sync.Mutex // one update at a time
}

func newFeedProcessor(p Params) *FeedProcessor {
	return &FeedProcessor{
		feedStore:    p.FeedStore,
		settingStore: p.SettingStore,
		manager:      p.FeedManager,
		ingester:     p.Ingester,
		configured:   p.Feeds,
		minRelevance: p.MinRelevance,
		extract:      p.Extract,
		now:          time.Now,
	}
}

// Update fetches every due feed and ingests relevant articles
func (fp *FeedProcessor) Update(ctx context.Context) (Report, error) {
	fp.mu.Lock()
	defer fp.mu.Unlock()

	all, err := fp.feeds(ctx)
	if err != nil {
		return Report{}, err
	}

	now := fp.now().UTC()
	due := make([]domain.Feed, 0, len(all))
	for _, f := range all {
		if isDue(f, now) {
			due = append(due, f)
		}
	}
	if len(due) == 0 {
		lgr.Printf("[DEBUG] no feeds due for update")
		return Report{Errors: []domain.FeedError{}}, nil
	}

	lgr.Printf("[INFO] updating %d of %d feeds", len(due), len(all))
	res := fp.manager.FetchAll(ctx, due)
	fp.recordStatus(ctx, due, res.Errors, now)

	relevant := analysis.FilterMacroRelevant(res.Articles, fp.minRelevance)
	if fp.extract && len(relevant) > 0 {
		if relevant, err = fp.manager.ExtractAll(ctx, relevant); err != nil {
			return Report{}, fmt.Errorf("extract articles: %w", err)
		}
	}

	added, err := fp.ingester.AddArticles(ctx, relevant)
	if err != nil {
		return Report{}, fmt.Errorf("ingest articles: %w", err)
	}

	if err := fp.settingStore.SetSetting(ctx, domain.SettingLastFeedUpdate, now.Format(time.RFC3339)); err != nil {
		lgr.Printf("[WARN] failed to save last feed update time: %v", err)
	}

	lgr.Printf("[INFO] feed update completed: %d articles, %d relevant, %d added, %d feeds failed",
		len(res.Articles), len(relevant), added, len(res.Errors))
	return Report{Feeds: len(due), Articles: len(res.Articles), Relevant: len(relevant), Added: added, Errors: res.Errors}, nil
}

// feeds merges configured and user-added feeds by url, configured first, and attaches stored fetch status.
// Stored rows without a name only carry the status of configured feeds.
func (fp *FeedProcessor) feeds(ctx context.Context) ([]domain.Feed, error) {
	stored, err := fp.feedStore.GetFeeds(ctx)
	if err != nil {
		return nil, fmt.Errorf("get feeds: %w", err)
	}

	status := make(map[string]domain.Feed, len(stored))
	user := make([]domain.Feed, 0, len(stored))
	for _, f := range stored {
		status[f.URL] = f
		if f.Name != "" {
			user = append(user, f)
		}
	}

	res := feed.Merge(fp.configured, user)
	for i, f := range res {
		if st, ok := status[f.URL]; ok {
			res[i].LastFetched, res[i].LastError, res[i].ErrorCount = st.LastFetched, st.LastError, st.ErrorCount
		}
	}
	return res, nil
}

func (fp *FeedProcessor) recordStatus(ctx context.Context, feeds []domain.Feed, errs []domain.FeedError, now time.Time) {
	failed := make(map[string]string, len(errs))
	for _, e := range errs {
		failed[e.URL] = e.Error
	}

	for _, f := range feeds {
		var err error
		if msg, ok := failed[f.URL]; ok {
			err = fp.feedStore.UpdateFeedError(ctx, f.URL, msg)
		} else {
			err = fp.feedStore.UpdateFeedFetched(ctx, f.URL, now)
		}
		if err != nil {
			lgr.Printf("[WARN] failed to update status of feed %s: %v", f.URL, err)
		}
	}
}

// isDue reports whether a feed with its own interval should be fetched now.
// Feeds without interval or never fetched are always due.
func isDue(f domain.Feed, now time.Time) bool {
	if f.Interval <= 0 || f.LastFetched == nil {
		return true
	}
	return !now.Before(f.LastFetched.Add(f.Interval))
}
