package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/makro/pkg/domain"
)

func setupTestDB(t *testing.T) *Repositories {
	t.Helper()
	repos, err := NewRepositories(context.Background(), Config{DSN: ":memory:", MaxOpenConns: 1, MaxIdleConns: 1})
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, repos.Close()) })
	return repos
}

func TestRepositories_Ping(t *testing.T) {
	repos := setupTestDB(t)
	require.NoError(t, repos.Ping(context.Background()))
}

func TestContentRepository(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	items := []domain.ContentItem{
		{
			ID: "b", Title: "Fed pivot", SourceID: "s1", Date: "2024-01-02", ContentType: domain.ContentArticle,
			Link: "https://example.com/fed", Entities: []domain.Entity{{ID: "e1", Name: "SPY", Type: domain.EntityTicker}},
			Themes: []string{"Fed Policy"}, Sentiment: domain.SentimentPositive, SentimentConfidence: 80,
			Timeframe: domain.TimeframeShortTerm, Conviction: domain.ConvictionHigh, MacroRelevanceScore: 30,
			CreatedAt: created, UpdatedAt: created,
		},
		{ID: "a", Title: "no tags", ContentType: domain.ContentTweet, CreatedAt: created, UpdatedAt: created},
		{ID: "c", Title: "empty tags", Themes: []string{}, Entities: []domain.Entity{}, CreatedAt: created, UpdatedAt: created},
	}

	t.Run("save and load all", func(t *testing.T) {
		require.NoError(t, repos.Content.SaveAll(ctx, items))
		loaded, err := repos.Content.LoadAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, items, loaded)
		assert.Nil(t, loaded[1].Themes, "absent themes stay absent")
		assert.NotNil(t, loaded[2].Themes, "empty themes stay present")
	})

	t.Run("save all replaces collection", func(t *testing.T) {
		require.NoError(t, repos.Content.SaveAll(ctx, items[:1]))
		count, err := repos.Content.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("create appends", func(t *testing.T) {
		require.NoError(t, repos.Content.Create(ctx, domain.ContentItem{ID: "z", Title: "new"}))
		loaded, err := repos.Content.LoadAll(ctx)
		require.NoError(t, err)
		require.Len(t, loaded, 2)
		assert.Equal(t, "z", loaded[1].ID)
		assert.False(t, loaded[1].CreatedAt.IsZero())

		err = repos.Content.Create(ctx, domain.ContentItem{ID: "z"})
		require.Error(t, err, "duplicate id")
	})

	t.Run("get", func(t *testing.T) {
		it, err := repos.Content.Get(ctx, "b")
		require.NoError(t, err)
		assert.Equal(t, items[0], it)

		_, err = repos.Content.Get(ctx, "missing")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("has link", func(t *testing.T) {
		ok, err := repos.Content.HasLink(ctx, "https://example.com/fed")
		require.NoError(t, err)
		assert.True(t, ok)
		ok, err = repos.Content.HasLink(ctx, "https://example.com/other")
		require.NoError(t, err)
		assert.False(t, ok)
		ok, err = repos.Content.HasLink(ctx, "")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("delete removes track record", func(t *testing.T) {
		require.NoError(t, repos.TrackRecord.SetOutcome(ctx, "b", domain.OutcomeCorrect, created))
		require.NoError(t, repos.Content.Delete(ctx, "b"))
		recs, err := repos.TrackRecord.LoadAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, recs)

		err = repos.Content.Delete(ctx, "b")
		assert.True(t, errors.Is(err, ErrNotFound))
	})
}

func TestSourceRepository(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	sources := []domain.Source{
		{ID: "s2", Name: "Quant Desk", Type: domain.SourceQuant},
		{ID: "s1", Name: "Macro Guy", Type: domain.SourceMacro, Background: "ex-Fed"},
	}
	require.NoError(t, repos.Source.SaveAll(ctx, sources))

	loaded, err := repos.Source.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, sources, loaded)

	require.NoError(t, repos.Source.Create(ctx, domain.Source{ID: "s3", Name: "Anon"}))
	s, err := repos.Source.Get(ctx, "s3")
	require.NoError(t, err)
	assert.Equal(t, domain.SourceOther, s.Type, "default type")

	loaded, err = repos.Source.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 3)
	assert.Equal(t, "s3", loaded[2].ID)

	_, err = repos.Source.Get(ctx, "nope")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestSettingRepository(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	val, err := repos.Setting.GetSetting(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, val)

	require.NoError(t, repos.Setting.SetSetting(ctx, domain.SettingLastFeedUpdate, "2024-01-01"))
	require.NoError(t, repos.Setting.SetSetting(ctx, domain.SettingLastFeedUpdate, "2024-01-02"))
	val, err = repos.Setting.GetSetting(ctx, domain.SettingLastFeedUpdate)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-02", val)

	list, err := repos.Setting.GetList(ctx, domain.SettingDismissedAlerts)
	require.NoError(t, err)
	assert.Empty(t, list)
	require.NoError(t, repos.Setting.SetList(ctx, domain.SettingDismissedAlerts, []string{"shift-Fed", "shift-Oil"}))
	list, err = repos.Setting.GetList(ctx, domain.SettingDismissedAlerts)
	require.NoError(t, err)
	assert.Equal(t, []string{"shift-Fed", "shift-Oil"}, list)

	require.NoError(t, repos.Setting.SetSetting(ctx, "broken", "{not json"))
	_, err = repos.Setting.GetList(ctx, "broken")
	require.Error(t, err)
}

func TestTrackRecordRepository(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()
	ts := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repos.TrackRecord.SetOutcome(ctx, "c1", domain.OutcomePending, ts))
	require.NoError(t, repos.TrackRecord.SetOutcome(ctx, "c1", domain.OutcomeCorrect, ts.Add(time.Hour)))
	require.NoError(t, repos.TrackRecord.SetOutcome(ctx, "c2", domain.OutcomeIncorrect, ts))

	recs, err := repos.TrackRecord.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, domain.TrackRecord{ContentID: "c1", Outcome: domain.OutcomeCorrect, UpdatedAt: ts.Add(time.Hour)}, recs["c1"])
	assert.Equal(t, domain.OutcomeIncorrect, recs["c2"].Outcome)
}

func TestFeedRepository(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()
	ts := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repos.Feed.AddFeed(ctx, domain.Feed{URL: "https://b.example.com/rss", Name: "B feed", Category: "macro"}))
	require.NoError(t, repos.Feed.AddFeed(ctx, domain.Feed{URL: "https://a.example.com/rss", Name: "A feed"}))
	require.NoError(t, repos.Feed.AddFeed(ctx, domain.Feed{URL: "https://a.example.com/rss", Name: "A feed renamed"}))

	require.NoError(t, repos.Feed.UpdateFeedError(ctx, "https://b.example.com/rss", "timeout"))
	require.NoError(t, repos.Feed.UpdateFeedError(ctx, "https://b.example.com/rss", "timeout again"))
	require.NoError(t, repos.Feed.UpdateFeedFetched(ctx, "https://a.example.com/rss", ts))

	feeds, err := repos.Feed.GetFeeds(ctx)
	require.NoError(t, err)
	require.Len(t, feeds, 2)
	assert.Equal(t, "A feed renamed", feeds[0].Name)
	require.NotNil(t, feeds[0].LastFetched)
	assert.Equal(t, ts, *feeds[0].LastFetched)
	assert.Equal(t, "timeout again", feeds[1].LastError)
	assert.Equal(t, 2, feeds[1].ErrorCount)
	assert.Nil(t, feeds[1].LastFetched)

	require.NoError(t, repos.Feed.UpdateFeedFetched(ctx, "https://b.example.com/rss", ts))
	feeds, err = repos.Feed.GetFeeds(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, feeds[1].ErrorCount)
	assert.Empty(t, feeds[1].LastError)

	require.NoError(t, repos.Feed.DeleteFeed(ctx, "https://a.example.com/rss"))
	err = repos.Feed.DeleteFeed(ctx, "https://a.example.com/rss")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestIsLockError(t *testing.T) {
	assert.False(t, isLockError(nil))
	assert.True(t, isLockError(errors.New("database is locked (5) (SQLITE_BUSY)")))
	assert.True(t, isLockError(errors.New("database table is locked")))
	assert.False(t, isLockError(errors.New("constraint failed")))
}

func TestWithLockRetry(t *testing.T) {
	t.Run("retries lock errors", func(t *testing.T) {
		calls := 0
		err := withLockRetry(context.Background(), "op", func() error {
			calls++
			if calls < 3 {
				return errors.New("database is locked")
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("stops on other errors", func(t *testing.T) {
		calls := 0
		err := withLockRetry(context.Background(), "op", func() error {
			calls++
			return ErrNotFound
		})
		require.Error(t, err)
		assert.Equal(t, 1, calls)
		assert.True(t, errors.Is(err, ErrNotFound))
		assert.Equal(t, "op: not found", err.Error())
	})
}
