package narrative

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/makro/pkg/domain"
)

func TestTrackEvolution(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	day := func(d int) time.Time { return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC) }
	fed := []string{"Fed"}

	items := []domain.ContentItem{
		{ID: "c", Date: "2024-01-10", Themes: fed, Sentiment: domain.SentimentNegative, SourceID: "s1"},
		{ID: "a", Date: "2024-01-01", Themes: fed, Sentiment: domain.SentimentPositive},
		{ID: "e", Date: "2024-01-20", Themes: fed},
		{ID: "b", Date: "2024-01-05", Themes: fed, Sentiment: domain.SentimentPositive},
		{ID: "f", Date: "2024-01-25", Themes: fed, Sentiment: domain.SentimentPositive},
		{ID: "d", Date: "2024-01-12", Themes: fed, Sentiment: domain.SentimentNegative},
		{ID: "g", Date: "2024-01-02", Themes: []string{"Oil"}, Sentiment: domain.SentimentNegative},
	}

	res := TrackEvolution(items, "Fed", testSources, now)
	assert.Equal(t, "Fed", res.Theme)
	assert.Equal(t, 6, res.TotalItems)
	assert.Equal(t, domain.SentimentPositive, res.CurrentSentiment)
	require.Len(t, res.Entries, 5)

	p := res.Entries[0].Phase
	require.NotNil(t, p)
	assert.Equal(t, domain.PhaseBullish, p.Phase)
	assert.Equal(t, day(1), p.StartDate)
	assert.Equal(t, day(10), p.EndDate)
	assert.Equal(t, []string{"a", "b"}, ids(p.Items))

	inf := res.Entries[1].Inflection
	require.NotNil(t, inf)
	assert.Nil(t, res.Entries[1].Phase)
	assert.Equal(t, domain.SentimentPositive, inf.From)
	assert.Equal(t, domain.SentimentNegative, inf.To)
	assert.Equal(t, day(10), inf.Date)
	assert.Equal(t, "Macro Guy", inf.Source)
	assert.Equal(t, "c", inf.Content.ID)

	p = res.Entries[2].Phase
	require.NotNil(t, p)
	assert.Equal(t, domain.PhaseBearish, p.Phase)
	assert.Equal(t, day(10), p.StartDate)
	assert.Equal(t, day(20), p.EndDate)
	assert.Equal(t, []string{"c", "d"}, ids(p.Items))

	// unset sentiment opens a neutral phase without an inflection
	p = res.Entries[3].Phase
	require.NotNil(t, p)
	assert.Equal(t, domain.PhaseNeutral, p.Phase)
	assert.Equal(t, domain.Sentiment(""), p.Sentiment)
	assert.Equal(t, []string{"e"}, ids(p.Items))
	assert.Equal(t, day(25), p.EndDate)

	p = res.Entries[4].Phase
	require.NotNil(t, p)
	assert.Equal(t, domain.PhaseBullish, p.Phase)
	assert.Equal(t, day(25), p.StartDate)
	assert.Equal(t, now, p.EndDate)
	assert.Equal(t, []string{"f"}, ids(p.Items))
}

func TestTrackEvolution_Empty(t *testing.T) {
	res := TrackEvolution([]domain.ContentItem{{ID: "a", Themes: []string{"Oil"}}}, "Fed", nil, time.Now())
	assert.Equal(t, "Fed", res.Theme)
	assert.Equal(t, 0, res.TotalItems)
	assert.Empty(t, res.Entries)
	assert.NotNil(t, res.Entries)
	assert.Equal(t, domain.Sentiment(""), res.CurrentSentiment)
}

func TestTrackEvolution_SinglePhase(t *testing.T) {
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	items := []domain.ContentItem{
		{ID: "a", Date: "2024-01-01", Themes: []string{"Fed"}, Sentiment: domain.SentimentNegative},
		{ID: "b", Date: "2024-01-02", Themes: []string{"Fed"}, Sentiment: domain.SentimentNegative},
	}
	res := TrackEvolution(items, "Fed", nil, now)
	require.Len(t, res.Entries, 1)
	require.NotNil(t, res.Entries[0].Phase)
	assert.Equal(t, domain.PhaseBearish, res.Entries[0].Phase.Phase)
	assert.Equal(t, now, res.Entries[0].Phase.EndDate)
	assert.Len(t, res.Entries[0].Phase.Items, 2)
}
