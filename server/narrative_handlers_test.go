package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/makro/pkg/domain"
	"github.com/umputun/makro/server/mocks"
)

// narrativeDB returns a database mock with three items on the same theme, two of them bullish
func narrativeDB() *mocks.DatabaseMock {
	spy := domain.Entity{ID: "ticker-spy", Name: "SPY", Type: domain.EntityTicker}
	fed := domain.Entity{ID: "theme-fed-policy", Name: "Fed Policy", Type: domain.EntityTheme}
	items := []domain.ContentItem{
		{ID: "c1", Title: "Cuts are coming", SourceID: "s1", Date: "2024-03-01", Sentiment: domain.SentimentPositive,
			Themes: []string{"Fed Policy"}, Entities: []domain.Entity{spy, fed}},
		{ID: "c2", Title: "Powell turns dovish", Source: "Desk Note", Date: "2024-03-05", Sentiment: domain.SentimentPositive,
			Themes: []string{"Fed Policy"}},
		{ID: "c3", Title: "Sticky prices, no cuts", SourceID: "s2", Date: "2024-03-12", Sentiment: domain.SentimentNegative,
			Themes: []string{"Fed Policy", "Inflation"}, Entities: []domain.Entity{spy}},
	}
	sources := []domain.Source{
		{ID: "s1", Name: "Macro Guy", Type: domain.SourceMacro},
		{ID: "s2", Name: "Quant Desk", Type: domain.SourceQuant},
	}
	return &mocks.DatabaseMock{
		LoadContentFunc: func(ctx context.Context) ([]domain.ContentItem, error) { return items, nil },
		LoadSourcesFunc: func(ctx context.Context) ([]domain.Source, error) { return sources, nil },
		GetSourceFunc: func(ctx context.Context, id string) (domain.Source, error) {
			for _, s := range sources {
				if s.ID == id {
					return s, nil
				}
			}
			return domain.Source{}, fmt.Errorf("get source %s: %w", id, ErrNotFound)
		},
		LoadTrackRecordsFunc: func(ctx context.Context) (map[string]domain.TrackRecord, error) {
			return map[string]domain.TrackRecord{"c1": {ContentID: "c1", Outcome: domain.OutcomeCorrect}}, nil
		},
	}
}

func TestServer_ClustersHandler(t *testing.T) {
	srv := testServer(t, narrativeDB(), &mocks.IngesterMock{}, nil)

	w := do(srv, http.MethodGet, "/api/v1/clusters", "")
	require.Equal(t, http.StatusOK, w.Code)
	var clusters []clusterView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &clusters))
	require.NotEmpty(t, clusters)
	total := 0
	for _, c := range clusters {
		total += len(c.Items)
		assert.NotEmpty(t, c.Consensus)
	}
	assert.Equal(t, 3, total, "every item lands in exactly one cluster")
}

func TestServer_CardsHandler(t *testing.T) {
	srv := testServer(t, narrativeDB(), &mocks.IngesterMock{}, nil)

	w := do(srv, http.MethodGet, "/api/v1/cards", "")
	require.Equal(t, http.StatusOK, w.Code)
	var cards []domain.NarrativeCard
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cards))
	require.Len(t, cards, 2)
	assert.Equal(t, "Fed Policy", cards[0].Theme)
	assert.Equal(t, 3, cards[0].Total)
	assert.Equal(t, 2, cards[0].Positive)
	assert.Equal(t, 1, cards[0].Negative)
	assert.Equal(t, "Inflation", cards[1].Theme)
}

func TestServer_EvolutionHandler(t *testing.T) {
	srv := testServer(t, narrativeDB(), &mocks.IngesterMock{}, nil)

	w := do(srv, http.MethodGet, "/api/v1/evolution/Fed%20Policy", "")
	require.Equal(t, http.StatusOK, w.Code)
	var evo domain.Evolution
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &evo))
	assert.Equal(t, "Fed Policy", evo.Theme)
	assert.Equal(t, 3, evo.TotalItems)
	assert.Equal(t, domain.SentimentNegative, evo.CurrentSentiment)

	w = do(srv, http.MethodGet, "/api/v1/evolution/Housing", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &evo))
	assert.Equal(t, 0, evo.TotalItems)
	assert.Empty(t, evo.Entries)
}

func TestServer_SentimentHandlers(t *testing.T) {
	srv := testServer(t, narrativeDB(), &mocks.IngesterMock{}, nil)

	w := do(srv, http.MethodGet, "/api/v1/sentiment/timeline", "")
	require.Equal(t, http.StatusOK, w.Code)
	var buckets []domain.SentimentBucket
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &buckets))
	assert.NotEmpty(t, buckets)

	w = do(srv, http.MethodGet, "/api/v1/sentiment/mood", "")
	require.Equal(t, http.StatusOK, w.Code)
	var mood domain.Mood
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &mood))
	assert.Equal(t, "bullish", mood.Mood)
	assert.Equal(t, 3, mood.Total)
}

func TestServer_MentionsHandlers(t *testing.T) {
	srv := testServer(t, narrativeDB(), &mocks.IngesterMock{}, nil)

	tests := []struct {
		name     string
		target   string
		wantCode int
		want     []domain.Mention
	}{
		{name: "themes", target: "/api/v1/mentions/themes", wantCode: http.StatusOK,
			want: []domain.Mention{{Name: "Fed Policy", Count: 3}, {Name: "Inflation", Count: 1}}},
		{name: "themes limited", target: "/api/v1/mentions/themes?limit=1", wantCode: http.StatusOK,
			want: []domain.Mention{{Name: "Fed Policy", Count: 3}}},
		{name: "tickers", target: "/api/v1/mentions/tickers", wantCode: http.StatusOK,
			want: []domain.Mention{{Name: "SPY", Count: 2}}},
		{name: "bad limit", target: "/api/v1/mentions/themes?limit=abc", wantCode: http.StatusBadRequest},
		{name: "zero limit", target: "/api/v1/mentions/tickers?limit=0", wantCode: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(srv, http.MethodGet, tt.target, "")
			require.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode != http.StatusOK {
				return
			}
			var res []domain.Mention
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
			assert.Equal(t, tt.want, res)
		})
	}
}

func TestServer_ConflictsHandler(t *testing.T) {
	srv := testServer(t, narrativeDB(), &mocks.IngesterMock{}, nil)

	w := do(srv, http.MethodGet, "/api/v1/conflicts", "")
	require.Equal(t, http.StatusOK, w.Code)
	var conflicts []domain.Conflict
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &conflicts))
	require.Len(t, conflicts, 3)
	assert.Equal(t, domain.ConflictSentiment, conflicts[0].Type)
	assert.Equal(t, "c1", conflicts[0].NewContentID)
	assert.Equal(t, "c3", conflicts[0].ExistingContentID)
	assert.Equal(t, domain.ConflictTickerSentiment, conflicts[1].Type)
	assert.Equal(t, []string{"spy"}, conflicts[1].Tickers)
	assert.Equal(t, "c2", conflicts[2].NewContentID)
}

func TestServer_ShiftsHandler(t *testing.T) {
	srv := testServer(t, narrativeDB(), &mocks.IngesterMock{}, nil)

	w := do(srv, http.MethodGet, "/api/v1/shifts?threshold=0.2", "")
	require.Equal(t, http.StatusOK, w.Code)
	var shifts []domain.NarrativeShift
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &shifts))

	for _, v := range []string{"2", "-0.1", "abc"} {
		w = do(srv, http.MethodGet, "/api/v1/shifts?threshold="+v, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, v)
	}
}

func TestServer_ChangesHandler(t *testing.T) {
	srv := testServer(t, narrativeDB(), &mocks.IngesterMock{}, nil)

	tests := []struct {
		name       string
		target     string
		wantCode   int
		wantRecent int
		wantOld    int
	}{
		{name: "since date", target: "/api/v1/changes?since=2024-03-04", wantCode: http.StatusOK, wantRecent: 2, wantOld: 1},
		{name: "default week window", target: "/api/v1/changes", wantCode: http.StatusOK, wantRecent: 1, wantOld: 2},
		{name: "month window", target: "/api/v1/changes?window=month", wantCode: http.StatusOK, wantRecent: 3, wantOld: 0},
		{name: "bad window", target: "/api/v1/changes?window=year", wantCode: http.StatusBadRequest},
		{name: "bad since", target: "/api/v1/changes?since=soon", wantCode: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(srv, http.MethodGet, tt.target, "")
			require.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode != http.StatusOK {
				return
			}
			var ch domain.Changes
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ch))
			assert.Equal(t, tt.wantRecent, ch.RecentContentCount)
			assert.Equal(t, tt.wantOld, ch.OldContentCount)
		})
	}
}

func TestServer_GraphHandler(t *testing.T) {
	srv := testServer(t, narrativeDB(), &mocks.IngesterMock{}, nil)

	w := do(srv, http.MethodGet, "/api/v1/graph", "")
	require.Equal(t, http.StatusOK, w.Code)
	var g domain.Graph
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &g))
	assert.NotEmpty(t, g.Nodes)
	assert.NotEmpty(t, g.Links)
}

func TestServer_PerspectiveHandler(t *testing.T) {
	srv := testServer(t, narrativeDB(), &mocks.IngesterMock{}, nil)

	w := do(srv, http.MethodGet, "/api/v1/perspective/s1", "")
	require.Equal(t, http.StatusOK, w.Code)
	var p domain.SourcePerspective
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	assert.Equal(t, "Macro Guy", p.Source.Name)

	w = do(srv, http.MethodGet, "/api/v1/perspective/nobody", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"source not found"}`, w.Body.String())
}

func TestServer_AccuracyHandler(t *testing.T) {
	db := narrativeDB()
	srv := testServer(t, db, &mocks.IngesterMock{}, nil)

	w := do(srv, http.MethodGet, "/api/v1/accuracy", "")
	require.Equal(t, http.StatusOK, w.Code)
	var acc []domain.SourceAccuracy
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &acc))
	require.NotEmpty(t, acc)
	assert.Equal(t, "s1", acc[0].SourceID)
	assert.Equal(t, 1, acc[0].Correct)

	db.LoadTrackRecordsFunc = func(ctx context.Context) (map[string]domain.TrackRecord, error) {
		return nil, errors.New("db error")
	}
	w = do(srv, http.MethodGet, "/api/v1/accuracy", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestServer_InvalidationsHandler(t *testing.T) {
	srv := testServer(t, narrativeDB(), &mocks.IngesterMock{}, nil)

	w := do(srv, http.MethodGet, "/api/v1/invalidations", "")
	require.Equal(t, http.StatusOK, w.Code)
	var inv []domain.Invalidation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &inv))
}

func TestServer_AggregateHandlers(t *testing.T) {
	srv := testServer(t, narrativeDB(), &mocks.IngesterMock{}, nil)

	w := do(srv, http.MethodGet, "/api/v1/aggregate/theme/fed%20policy", "")
	require.Equal(t, http.StatusOK, w.Code)
	var agg domain.SentimentAggregate
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &agg))
	assert.Equal(t, 1, agg.Count)
	assert.Equal(t, domain.SentimentPositive, agg.Sentiment)

	w = do(srv, http.MethodGet, "/api/v1/aggregate/asset/SPY", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &agg))
	assert.Equal(t, 2, agg.Count)
	assert.Equal(t, 50, agg.Confidence)
}

func TestServer_NarrativeHandlersLoadError(t *testing.T) {
	db := &mocks.DatabaseMock{
		LoadContentFunc: func(ctx context.Context) ([]domain.ContentItem, error) { return nil, errors.New("db error") },
	}
	srv := testServer(t, db, &mocks.IngesterMock{}, nil)

	targets := []string{
		"/api/v1/clusters", "/api/v1/cards", "/api/v1/evolution/x", "/api/v1/sentiment/timeline",
		"/api/v1/sentiment/mood", "/api/v1/mentions/themes", "/api/v1/conflicts", "/api/v1/shifts",
		"/api/v1/changes", "/api/v1/graph", "/api/v1/accuracy", "/api/v1/invalidations",
		"/api/v1/aggregate/theme/x", "/rss/x",
	}
	for _, target := range targets {
		w := do(srv, http.MethodGet, target, "")
		assert.Equal(t, http.StatusInternalServerError, w.Code, target)
	}
}
