package domain

import "time"

// SourceType classifies where a narrative comes from
type SourceType string

const (
	SourceMacro       SourceType = "macro"
	SourceQuant       SourceType = "quant"
	SourceFundamental SourceType = "fundamental"
	SourceInstitution SourceType = "institution"
	SourceOther       SourceType = "other"
)

// Source represents a voice content is attributed to
type Source struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Type       SourceType `json:"type"`
	Background string     `json:"background,omitempty"`
}

// SourceName resolves a display name for the item: linked source, free-text source, or "Unknown"
func SourceName(item ContentItem, sources []Source) string {
	if item.SourceID != "" {
		for _, s := range sources {
			if s.ID == item.SourceID && s.Name != "" {
				return s.Name
			}
		}
	}
	if item.Source != "" {
		return item.Source
	}
	return "Unknown"
}

// Feed represents an RSS/Atom feed polled for macro content
type Feed struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	URL      string        `json:"url"`
	Category string        `json:"category,omitempty"`
	Priority string        `json:"priority,omitempty"`
	Interval time.Duration `json:"interval,omitempty"`

	// fetch status, set for stored feeds only
	LastFetched *time.Time `json:"lastFetched,omitempty"`
	LastError   string     `json:"lastError,omitempty"`
	ErrorCount  int        `json:"errorCount,omitempty"`
}

// Article is a feed entry before it becomes a content item
type Article struct {
	ID                  string    `json:"id"`
	Title               string    `json:"title"`
	Link                string    `json:"link"`
	Description         string    `json:"description"`
	Date                string    `json:"date"`
	Source              string    `json:"source"`
	Published           time.Time `json:"published"`
	FetchedAt           time.Time `json:"fetchedAt"`
	ExtractedText       string    `json:"extractedText,omitempty"`
	MacroRelevanceScore int       `json:"macroRelevanceScore"`
}

// FeedError describes a feed that could not be fetched
type FeedError struct {
	URL   string `json:"url"`
	Error string `json:"error"`
}
