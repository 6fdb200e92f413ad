package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/makro/pkg/domain"
	"github.com/umputun/makro/pkg/ingest"
	"github.com/umputun/makro/pkg/scheduler"
	"github.com/umputun/makro/server/mocks"
)

func TestServer_StatusHandler(t *testing.T) {
	db := &mocks.DatabaseMock{
		CountContentFunc: func(ctx context.Context) (int, error) { return 5, nil },
		LoadSourcesFunc: func(ctx context.Context) ([]domain.Source, error) {
			return []domain.Source{{ID: "s1"}, {ID: "s2"}}, nil
		},
		GetSettingFunc: func(ctx context.Context, key string) (string, error) {
			assert.Equal(t, domain.SettingLastFeedUpdate, key)
			return "2024-03-15T11:00:00Z", nil
		},
	}
	srv := testServer(t, db, &mocks.IngesterMock{}, nil)

	w := do(srv, http.MethodGet, "/api/v1/status", "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, "test", resp["version"])
	assert.InDelta(t, 5, resp["content"], 0)
	assert.InDelta(t, 2, resp["sources"], 0)
	assert.Equal(t, "2024-03-15T11:00:00Z", resp["lastFeedUpdate"])
	assert.Equal(t, "2024-03-15T12:00:00Z", resp["time"])

	db.CountContentFunc = func(ctx context.Context) (int, error) { return 0, errors.New("db error") }
	w = do(srv, http.MethodGet, "/api/v1/status", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestServer_ContentHandlers(t *testing.T) {
	items := []domain.ContentItem{
		{ID: "c1", Title: "first", Themes: []string{"fed"}},
		{ID: "c2", Title: "second"},
	}
	db := &mocks.DatabaseMock{
		LoadContentFunc: func(ctx context.Context) ([]domain.ContentItem, error) { return items, nil },
		GetContentFunc: func(ctx context.Context, id string) (domain.ContentItem, error) {
			for _, it := range items {
				if it.ID == id {
					return it, nil
				}
			}
			return domain.ContentItem{}, fmt.Errorf("get content %s: %w", id, ErrNotFound)
		},
		DeleteContentFunc: func(ctx context.Context, id string) error {
			if id == "c1" {
				return nil
			}
			return fmt.Errorf("delete content %s: %w", id, ErrNotFound)
		},
	}
	srv := testServer(t, db, &mocks.IngesterMock{}, nil)

	t.Run("list", func(t *testing.T) {
		w := do(srv, http.MethodGet, "/api/v1/content", "")
		require.Equal(t, http.StatusOK, w.Code)
		var resp []domain.ContentItem
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp, 2)
		assert.Equal(t, "c1", resp[0].ID)
	})

	t.Run("get", func(t *testing.T) {
		w := do(srv, http.MethodGet, "/api/v1/content/c2", "")
		require.Equal(t, http.StatusOK, w.Code)
		var resp domain.ContentItem
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "second", resp.Title)
	})

	t.Run("get missing", func(t *testing.T) {
		w := do(srv, http.MethodGet, "/api/v1/content/nope", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"content not found"}`, w.Body.String())
	})

	t.Run("delete", func(t *testing.T) {
		w := do(srv, http.MethodDelete, "/api/v1/content/c1", "")
		assert.Equal(t, http.StatusNoContent, w.Code)
		w = do(srv, http.MethodDelete, "/api/v1/content/nope", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestServer_CreateContentHandler(t *testing.T) {
	ingester := &mocks.IngesterMock{
		AddFunc: func(ctx context.Context, item domain.ContentItem) (ingest.Result, error) {
			item.ID = "new-id"
			return ingest.Result{Item: item, Conflicts: []domain.Conflict{}}, nil
		},
	}
	srv := testServer(t, &mocks.DatabaseMock{}, ingester, nil)

	tests := []struct {
		name          string
		body          string
		wantCode      int
		wantErr       string
		wantType      domain.ContentType
		wantSentiment domain.Sentiment
	}{
		{name: "valid", body: `{"title":"Fed cuts","content":"bullish on stocks","contentType":"tweet","sentiment":"positive"}`,
			wantCode: http.StatusCreated, wantType: domain.ContentTweet, wantSentiment: domain.SentimentPositive},
		{name: "unknown content type", body: `{"title":"Fed cuts","contentType":"video"}`,
			wantCode: http.StatusCreated, wantType: domain.ContentArticle},
		{name: "unknown sentiment", body: `{"title":"Fed cuts","sentiment":"euphoric"}`,
			wantCode: http.StatusCreated, wantType: domain.ContentArticle},
		{name: "bad json", body: `{bad`, wantCode: http.StatusBadRequest, wantErr: "invalid request body"},
		{name: "bad confidence", body: `{"title":"x","sentimentConfidence":120}`, wantCode: http.StatusBadRequest, wantErr: "sentiment confidence must be between 0 and 100"},
		{name: "bad date", body: `{"title":"x","date":"yesterday"}`, wantCode: http.StatusBadRequest, wantErr: `invalid date "yesterday"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(srv, http.MethodPost, "/api/v1/content", tt.body)
			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantErr != "" {
				var resp map[string]string
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Contains(t, resp["error"], tt.wantErr)
				return
			}
			var resp ingest.Result
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "new-id", resp.Item.ID)
			assert.Equal(t, "Fed cuts", resp.Item.Title)
			assert.Equal(t, tt.wantType, resp.Item.ContentType)
			assert.Equal(t, tt.wantSentiment, resp.Item.Sentiment)
			assert.Empty(t, resp.Conflicts)
		})
	}
	assert.Len(t, ingester.AddCalls(), 1)

	ingester.AddFunc = func(ctx context.Context, item domain.ContentItem) (ingest.Result, error) {
		return ingest.Result{}, errors.New("save failed")
	}
	w := do(srv, http.MethodPost, "/api/v1/content", `{"title":"x"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestServer_OutcomeHandler(t *testing.T) {
	db := &mocks.DatabaseMock{
		GetContentFunc: func(ctx context.Context, id string) (domain.ContentItem, error) {
			if id == "c1" {
				return domain.ContentItem{ID: "c1"}, nil
			}
			return domain.ContentItem{}, ErrNotFound
		},
		SetOutcomeFunc: func(ctx context.Context, contentID string, outcome domain.Outcome, ts time.Time) error {
			return nil
		},
	}
	srv := testServer(t, db, &mocks.IngesterMock{}, nil)

	w := do(srv, http.MethodPut, "/api/v1/content/c1/outcome", `{"outcome":"correct"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var rec domain.TrackRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
	assert.Equal(t, domain.OutcomeCorrect, rec.Outcome)
	require.Len(t, db.SetOutcomeCalls(), 1)
	assert.Equal(t, "c1", db.SetOutcomeCalls()[0].ContentID)
	assert.Equal(t, time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC), db.SetOutcomeCalls()[0].Ts)

	w = do(srv, http.MethodPut, "/api/v1/content/c1/outcome", `{"outcome":"great"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(srv, http.MethodPut, "/api/v1/content/nope/outcome", `{"outcome":"partial"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Len(t, db.SetOutcomeCalls(), 1)
}

func TestServer_SourceHandlers(t *testing.T) {
	db := &mocks.DatabaseMock{
		LoadSourcesFunc: func(ctx context.Context) ([]domain.Source, error) {
			return []domain.Source{{ID: "s1", Name: "Macro Guy", Type: domain.SourceMacro}}, nil
		},
		CreateSourceFunc: func(ctx context.Context, s domain.Source) error { return nil },
	}
	srv := testServer(t, db, &mocks.IngesterMock{}, nil)

	w := do(srv, http.MethodGet, "/api/v1/sources", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Macro Guy")

	tests := []struct {
		name     string
		body     string
		wantCode int
		wantType domain.SourceType
	}{
		{name: "typed", body: `{"name":"Quant Desk","type":"quant"}`, wantCode: http.StatusCreated, wantType: domain.SourceQuant},
		{name: "default type", body: `{"name":" Someone "}`, wantCode: http.StatusCreated, wantType: domain.SourceOther},
		{name: "missing name", body: `{"name":"  "}`, wantCode: http.StatusBadRequest},
		{name: "bad type", body: `{"name":"x","type":"guru"}`, wantCode: http.StatusBadRequest},
		{name: "bad json", body: `nope`, wantCode: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(srv, http.MethodPost, "/api/v1/sources", tt.body)
			require.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode != http.StatusCreated {
				return
			}
			var src domain.Source
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &src))
			assert.Equal(t, tt.wantType, src.Type)
			assert.NotEmpty(t, src.ID)
		})
	}
	require.Len(t, db.CreateSourceCalls(), 2)
	assert.Equal(t, "Someone", db.CreateSourceCalls()[1].S.Name)
}

func TestServer_AnalyzeHandler(t *testing.T) {
	srv := testServer(t, &mocks.DatabaseMock{}, &mocks.IngesterMock{}, nil)

	w := do(srv, http.MethodPost, "/api/v1/analyze", `{"text":"Bullish rally as the Fed signals rate cuts"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var res domain.AnalysisResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, domain.SentimentPositive, res.Sentiment)
	assert.Contains(t, res.Themes, "Fed Policy")

	w = do(srv, http.MethodPost, "/api/v1/analyze", `{"text":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServer_AlertHandlers(t *testing.T) {
	dismissed := []string{"shift-old"}
	db := &mocks.DatabaseMock{
		LoadContentFunc: func(ctx context.Context) ([]domain.ContentItem, error) { return []domain.ContentItem{}, nil },
		GetListFunc: func(ctx context.Context, key string) ([]string, error) {
			assert.Equal(t, domain.SettingDismissedAlerts, key)
			return dismissed, nil
		},
		SetListFunc: func(ctx context.Context, key string, vals []string) error {
			dismissed = vals
			return nil
		},
	}
	srv := testServer(t, db, &mocks.IngesterMock{}, nil)

	w := do(srv, http.MethodGet, "/api/v1/alerts", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = do(srv, http.MethodPost, "/api/v1/alerts/shift-fed/dismiss", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, []string{"shift-fed", "shift-old"}, dismissed)

	db.GetListFunc = func(ctx context.Context, key string) ([]string, error) { return nil, errors.New("db error") }
	w = do(srv, http.MethodPost, "/api/v1/alerts/shift-fed/dismiss", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	w = do(srv, http.MethodGet, "/api/v1/alerts", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestServer_FeedHandlers(t *testing.T) {
	db := &mocks.DatabaseMock{
		AddFeedFunc: func(ctx context.Context, f domain.Feed) error { return nil },
		DeleteFeedFunc: func(ctx context.Context, url string) error {
			if url == "https://example.com/rss" {
				return nil
			}
			return fmt.Errorf("delete feed %s: %w", url, ErrNotFound)
		},
	}
	sched := &mocks.SchedulerMock{
		FeedsFunc: func(ctx context.Context) ([]domain.Feed, error) {
			return []domain.Feed{{ID: "https://example.com/rss", URL: "https://example.com/rss", Name: "Example"}}, nil
		},
		UpdateNowFunc: func(ctx context.Context) (scheduler.Report, error) {
			return scheduler.Report{Feeds: 1, Articles: 3, Relevant: 2, Added: 2, Errors: []domain.FeedError{}}, nil
		},
	}
	srv := testServer(t, db, &mocks.IngesterMock{}, sched)

	t.Run("list", func(t *testing.T) {
		w := do(srv, http.MethodGet, "/api/v1/feeds", "")
		require.Equal(t, http.StatusOK, w.Code)
		var feeds []domain.Feed
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &feeds))
		require.Len(t, feeds, 1)
		assert.Equal(t, "Example", feeds[0].Name)
	})

	t.Run("create", func(t *testing.T) {
		w := do(srv, http.MethodPost, "/api/v1/feeds", `{"url":" https://example.com/rss ","lastError":"x"}`)
		require.Equal(t, http.StatusCreated, w.Code)
		require.Len(t, db.AddFeedCalls(), 1)
		f := db.AddFeedCalls()[0].F
		assert.Equal(t, "https://example.com/rss", f.URL)
		assert.Equal(t, "https://example.com/rss", f.Name)
		assert.Equal(t, f.URL, f.ID)
		assert.Empty(t, f.LastError)

		w = do(srv, http.MethodPost, "/api/v1/feeds", `{"url":"ftp://example.com/rss"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("delete", func(t *testing.T) {
		w := do(srv, http.MethodDelete, "/api/v1/feeds?url=https://example.com/rss", "")
		assert.Equal(t, http.StatusNoContent, w.Code)
		w = do(srv, http.MethodDelete, "/api/v1/feeds?url=https://other.com/rss", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		w = do(srv, http.MethodDelete, "/api/v1/feeds", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("refresh", func(t *testing.T) {
		w := do(srv, http.MethodPost, "/api/v1/feeds/refresh", "")
		require.Equal(t, http.StatusOK, w.Code)
		var rep scheduler.Report
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rep))
		assert.Equal(t, 2, rep.Added)
		assert.Len(t, sched.UpdateNowCalls(), 1)
	})
}

func TestServer_FeedHandlersNoScheduler(t *testing.T) {
	srv := testServer(t, &mocks.DatabaseMock{}, &mocks.IngesterMock{}, nil)

	w := do(srv, http.MethodGet, "/api/v1/feeds", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = do(srv, http.MethodPost, "/api/v1/feeds/refresh", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"error":"feed polling is disabled"}`, w.Body.String())
}

func TestNormalizeContent(t *testing.T) {
	item := domain.ContentItem{ContentType: "video", Sentiment: "euphoric"}
	normalizeContent(&item)
	assert.Equal(t, domain.ContentArticle, item.ContentType)
	assert.Equal(t, domain.Sentiment(""), item.Sentiment)

	item = domain.ContentItem{ContentType: domain.ContentLink, Sentiment: domain.SentimentNeutral}
	normalizeContent(&item)
	assert.Equal(t, domain.ContentLink, item.ContentType)
	assert.Equal(t, domain.SentimentNeutral, item.Sentiment)
}

func TestValidateContent(t *testing.T) {
	tests := []struct {
		name    string
		item    domain.ContentItem
		wantErr bool
	}{
		{name: "empty", item: domain.ContentItem{}},
		{name: "full", item: domain.ContentItem{ContentType: domain.ContentTweet, Sentiment: domain.SentimentNegative,
			Timeframe: domain.TimeframeLongTerm, Conviction: domain.ConvictionHigh, SentimentConfidence: 80, Date: "2024-03-01"}},
		{name: "bad timeframe", item: domain.ContentItem{Timeframe: "forever"}, wantErr: true},
		{name: "bad conviction", item: domain.ContentItem{Conviction: "extreme"}, wantErr: true},
		{name: "negative confidence", item: domain.ContentItem{SentimentConfidence: -1}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateContent(tt.item)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
