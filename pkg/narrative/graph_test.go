package narrative

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/umputun/makro/pkg/domain"
)

func TestBuildGraph(t *testing.T) {
	e1 := domain.Entity{ID: "e1", Name: "Powell", Type: domain.EntityPerson}
	e2 := domain.Entity{ID: "e2", Name: "SPY", Type: domain.EntityTicker}
	items := []domain.ContentItem{
		{ID: "i1", Title: "Cuts", SourceID: "s1", ContentType: domain.ContentArticle, Entities: []domain.Entity{e1}},
		{ID: "i2", Title: "Rally", SourceID: "missing", ContentType: domain.ContentTweet, Entities: []domain.Entity{e1, e2}},
		{ID: "i3", ContentType: domain.ContentLink},
	}

	g := BuildGraph(items, testSources)

	assert.Equal(t, []domain.GraphNode{
		{ID: "source-s1", Label: "Macro Guy", Type: "source", Group: "macro"},
		{ID: "content-i1", Label: "Cuts", Type: "content", Group: "article"},
		{ID: "entity-e1", Label: "Powell", Type: "entity", Group: "person"},
		{ID: "content-i2", Label: "Rally", Type: "content", Group: "tweet"},
		{ID: "entity-e2", Label: "SPY", Type: "entity", Group: "ticker"},
		{ID: "content-i3", Label: "Untitled", Type: "content", Group: "link"},
	}, g.Nodes)

	assert.Equal(t, []domain.GraphLink{
		{Source: "source-s1", Target: "content-i1", Type: "source-content"},
		{Source: "content-i1", Target: "entity-e1", Type: "content-entity"},
		{Source: "content-i2", Target: "entity-e1", Type: "content-entity"},
		{Source: "content-i2", Target: "entity-e2", Type: "content-entity"},
	}, g.Links)

	empty := BuildGraph(nil, nil)
	assert.NotNil(t, empty.Nodes)
	assert.NotNil(t, empty.Links)
}
