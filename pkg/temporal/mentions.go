package temporal

import (
	"sort"

	"github.com/umputun/makro/pkg/domain"
)

// DefaultMentionLimit is used when a non-positive limit is requested
const DefaultMentionLimit = 10

// MostMentionedThemes ranks themes by the number of items tagged with them
func MostMentionedThemes(items []domain.ContentItem, limit int) []domain.Mention {
	c := newCounter()
	for _, it := range items {
		for _, theme := range it.Themes {
			c.inc(theme)
		}
	}
	return c.top(limit)
}

// MostMentionedTickers ranks ticker entities by name, as tagged
func MostMentionedTickers(items []domain.ContentItem, limit int) []domain.Mention {
	c := newCounter()
	for _, it := range items {
		for _, e := range it.Entities {
			if e.Type == domain.EntityTicker {
				c.inc(e.Name)
			}
		}
	}
	return c.top(limit)
}

// counter counts names, remembering the order they were first seen
type counter struct {
	idx  map[string]int
	vals []domain.Mention
}

func newCounter() *counter {
	return &counter{idx: map[string]int{}, vals: []domain.Mention{}}
}

func (c *counter) inc(name string) {
	if i, ok := c.idx[name]; ok {
		c.vals[i].Count++
		return
	}
	c.idx[name] = len(c.vals)
	c.vals = append(c.vals, domain.Mention{Name: name, Count: 1})
}

// top returns mentions by count descending, ties kept in first-seen order
func (c *counter) top(limit int) []domain.Mention {
	if limit <= 0 {
		limit = DefaultMentionLimit
	}
	sort.SliceStable(c.vals, func(i, j int) bool { return c.vals[i].Count > c.vals[j].Count })
	if len(c.vals) > limit {
		return c.vals[:limit]
	}
	return c.vals
}
