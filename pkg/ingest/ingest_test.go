package ingest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/makro/pkg/content"
	"github.com/umputun/makro/pkg/domain"
	"github.com/umputun/makro/pkg/ingest/mocks"
)

var testNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func newTestService(store Store, ex Extractor) *Service {
	s := NewService(store, ex)
	s.now = func() time.Time { return testNow }
	n := 0
	s.newID = func() string {
		n++
		return "id-" + string(rune('0'+n))
	}
	return s
}

func TestService_Add(t *testing.T) {
	existing := domain.ContentItem{ID: "old", Themes: []string{"Fed Policy"}, Sentiment: domain.SentimentNegative,
		Entities: []domain.Entity{{ID: "t1", Name: "SPY", Type: domain.EntityTicker}}}
	store := &mocks.StoreMock{
		LoadAllFunc: func(ctx context.Context) ([]domain.ContentItem, error) { return []domain.ContentItem{existing}, nil },
		CreateFunc:  func(ctx context.Context, item domain.ContentItem) error { return nil },
	}
	svc := newTestService(store, nil)

	res, err := svc.Add(context.Background(), domain.ContentItem{
		Title:   "  Fed   rally continues ",
		Content: "Markets strong after the Fed, $SPY leads",
		Themes:  []string{"My Theme"},
	})
	require.NoError(t, err)

	item := res.Item
	assert.Equal(t, "id-1", item.ID)
	assert.Equal(t, "Fed rally continues", item.Title)
	assert.Equal(t, domain.ContentArticle, item.ContentType)
	assert.Equal(t, domain.SentimentPositive, item.Sentiment)
	assert.Positive(t, item.SentimentConfidence)
	assert.Equal(t, []string{"My Theme", "Fed Policy"}, item.Themes)
	assert.Equal(t, []domain.Entity{{ID: "ticker-spy", Name: "SPY", Type: domain.EntityTicker}}, item.Entities)
	assert.Equal(t, testNow, item.CreatedAt)
	assert.Equal(t, testNow, item.UpdatedAt)

	require.Len(t, res.Conflicts, 2)
	assert.Equal(t, domain.ConflictSentiment, res.Conflicts[0].Type)
	assert.Equal(t, []string{"Fed Policy"}, res.Conflicts[0].Themes)
	assert.Equal(t, domain.ConflictTickerSentiment, res.Conflicts[1].Type)
	assert.Equal(t, []string{"spy"}, res.Conflicts[1].Tickers)

	require.Len(t, store.CreateCalls(), 1)
	assert.Equal(t, item, store.CreateCalls()[0].Item)
}

func TestService_Add_KeepsUserValues(t *testing.T) {
	store := &mocks.StoreMock{
		LoadAllFunc: func(ctx context.Context) ([]domain.ContentItem, error) { return nil, nil },
		CreateFunc:  func(ctx context.Context, item domain.ContentItem) error { return nil },
	}
	created := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	res, err := newTestService(store, nil).Add(context.Background(), domain.ContentItem{
		ID: "mine", Title: "Strong rally everywhere", Sentiment: domain.SentimentNeutral, SentimentConfidence: 42,
		Timeframe: domain.TimeframeLongTerm, ContentType: domain.ContentTweet, CreatedAt: created,
	})
	require.NoError(t, err)
	assert.Equal(t, "mine", res.Item.ID)
	assert.Equal(t, domain.SentimentNeutral, res.Item.Sentiment)
	assert.Equal(t, 42, res.Item.SentimentConfidence)
	assert.Equal(t, domain.TimeframeLongTerm, res.Item.Timeframe)
	assert.Equal(t, created, res.Item.CreatedAt)
	assert.Nil(t, res.Item.Entities, "no tickers, entities stay absent")
	assert.Empty(t, res.Conflicts)
}

func TestService_Add_Link(t *testing.T) {
	store := &mocks.StoreMock{
		LoadAllFunc: func(ctx context.Context) ([]domain.ContentItem, error) { return nil, nil },
		CreateFunc:  func(ctx context.Context, item domain.ContentItem) error { return nil },
	}
	ex := &mocks.ExtractorMock{ExtractFunc: func(ctx context.Context, url string) (content.Extracted, error) {
		return content.Extracted{Title: "Inflation cools", Text: "Inflation and CPI decline", SiteName: "Macro Blog",
			Date: time.Date(2024, 4, 2, 9, 0, 0, 0, time.UTC)}, nil
	}}

	res, err := newTestService(store, ex).Add(context.Background(),
		domain.ContentItem{ContentType: domain.ContentLink, Content: "https://example.com/cpi"})
	require.NoError(t, err)
	require.Len(t, ex.ExtractCalls(), 1)
	assert.Equal(t, "https://example.com/cpi", ex.ExtractCalls()[0].URL)
	assert.Equal(t, "https://example.com/cpi", res.Item.Link)
	assert.Equal(t, "https://example.com/cpi", res.Item.Content)
	assert.Equal(t, "Inflation cools", res.Item.Title)
	assert.Equal(t, "Macro Blog", res.Item.Source)
	assert.Equal(t, "2024-04-02", res.Item.Date)
	assert.Contains(t, res.Item.Themes, "Inflation")
	assert.Equal(t, domain.SentimentNegative, res.Item.Sentiment)

	t.Run("extraction failure keeps item", func(t *testing.T) {
		ex := &mocks.ExtractorMock{ExtractFunc: func(ctx context.Context, url string) (content.Extracted, error) {
			return content.Extracted{}, errors.New("blocked")
		}}
		res, err := newTestService(store, ex).Add(context.Background(),
			domain.ContentItem{ContentType: domain.ContentLink, Content: "https://example.com/x"})
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/x", res.Item.Title)
		assert.Empty(t, res.Item.ExtractedText)
	})
}

func TestService_Add_Errors(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, err := newTestService(&mocks.StoreMock{}, nil).Add(context.Background(), domain.ContentItem{Title: "  "})
		require.Error(t, err)
	})

	t.Run("load fails", func(t *testing.T) {
		store := &mocks.StoreMock{LoadAllFunc: func(ctx context.Context) ([]domain.ContentItem, error) {
			return nil, errors.New("db down")
		}}
		_, err := newTestService(store, nil).Add(context.Background(), domain.ContentItem{Title: "x"})
		require.EqualError(t, err, "load content: db down")
	})

	t.Run("create fails", func(t *testing.T) {
		store := &mocks.StoreMock{
			LoadAllFunc: func(ctx context.Context) ([]domain.ContentItem, error) { return nil, nil },
			CreateFunc:  func(ctx context.Context, item domain.ContentItem) error { return errors.New("locked") },
		}
		_, err := newTestService(store, nil).Add(context.Background(), domain.ContentItem{Title: "x"})
		require.EqualError(t, err, "save content id-1: locked")
	})
}

func TestService_AddArticles(t *testing.T) {
	var created []domain.ContentItem
	store := &mocks.StoreMock{
		LoadAllFunc: func(ctx context.Context) ([]domain.ContentItem, error) { return created, nil },
		HasLinkFunc: func(ctx context.Context, link string) (bool, error) { return link == "https://x.com/known", nil },
		CreateFunc: func(ctx context.Context, item domain.ContentItem) error {
			if item.Title == "broken" {
				return errors.New("constraint")
			}
			created = append(created, item)
			return nil
		},
	}
	ex := &mocks.ExtractorMock{}
	articles := []domain.Article{
		{Title: "GDP growth beats", Link: "https://x.com/gdp", Source: "Wire", Date: "2024-04-30",
			Description: "GDP growth strong", ExtractedText: "GDP growth strong", MacroRelevanceScore: 7},
		{Title: "old news", Link: "https://x.com/known"},
		{Title: "broken", Link: "https://x.com/broken"},
	}

	added, err := newTestService(store, ex).AddArticles(context.Background(), articles)
	require.NoError(t, err)
	assert.Equal(t, 1, added)
	assert.Len(t, store.HasLinkCalls(), 3)
	assert.Empty(t, ex.ExtractCalls(), "articles are not link items")

	require.Len(t, created, 1)
	it := created[0]
	assert.Equal(t, "GDP growth beats", it.Title)
	assert.Equal(t, "Wire", it.Source)
	assert.Equal(t, "2024-04-30", it.Date)
	assert.Equal(t, "https://x.com/gdp", it.Link)
	assert.Equal(t, 7, it.MacroRelevanceScore)
	assert.Contains(t, it.Themes, "GDP Growth")

	t.Run("link check fails", func(t *testing.T) {
		store := &mocks.StoreMock{HasLinkFunc: func(ctx context.Context, link string) (bool, error) {
			return false, errors.New("db down")
		}}
		_, err := newTestService(store, nil).AddArticles(context.Background(), articles)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "check link https://x.com/gdp")
	})
}

func TestWithTickers(t *testing.T) {
	assert.Nil(t, withTickers(nil, nil))
	assert.Equal(t, []domain.Entity{}, withTickers([]domain.Entity{}, nil))

	ents := []domain.Entity{{ID: "e1", Name: "aapl", Type: domain.EntityTicker}, {ID: "p", Name: "Powell", Type: domain.EntityPerson}}
	res := withTickers(ents, []string{"AAPL", "TSLA"})
	require.Len(t, res, 3)
	assert.Equal(t, domain.Entity{ID: "ticker-tsla", Name: "TSLA", Type: domain.EntityTicker}, res[2])
}

func TestAnalysisText(t *testing.T) {
	assert.Equal(t, "title desc", analysisText(domain.ContentItem{Title: "title", Description: " desc ", Content: "https://x.com"}))
	assert.Equal(t, "title note body", analysisText(domain.ContentItem{Title: "title", Notes: "note", Content: "body"}))
}
