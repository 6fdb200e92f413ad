package domain

import (
	"strings"
	"time"
)

// ContentType represents the kind of logged content
type ContentType string

const (
	ContentArticle ContentType = "article"
	ContentLink    ContentType = "link"
	ContentFile    ContentType = "file"
	ContentTweet   ContentType = "tweet"
)

// Sentiment represents polarity of a content item. Empty value means sentiment was never set.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// OrNeutral returns the sentiment, treating absent value as neutral
func (s Sentiment) OrNeutral() Sentiment {
	if s == "" {
		return SentimentNeutral
	}
	return s
}

// Opposes reports whether both sentiments are polar and point in different directions
func (s Sentiment) Opposes(other Sentiment) bool {
	return (s == SentimentPositive && other == SentimentNegative) ||
		(s == SentimentNegative && other == SentimentPositive)
}

// Timeframe is the horizon a narrative talks about
type Timeframe string

const (
	TimeframeUnknown   Timeframe = ""
	TimeframeShortTerm Timeframe = "short-term"
	TimeframeLongTerm  Timeframe = "long-term"
)

// Conviction is the author's stated conviction level
type Conviction string

const (
	ConvictionNone   Conviction = ""
	ConvictionLow    Conviction = "low"
	ConvictionMedium Conviction = "medium"
	ConvictionHigh   Conviction = "high"
)

// EntityType represents the type of a tagged entity
type EntityType string

const (
	EntityPerson      EntityType = "person"
	EntityInstitution EntityType = "institution"
	EntityTicker      EntityType = "ticker"
	EntitySector      EntityType = "sector"
	EntityTheme       EntityType = "theme"
)

// Entity is a tagged reference within content
type Entity struct {
	ID   string     `json:"id"`
	Name string     `json:"name"`
	Type EntityType `json:"type"`
}

// ContentItem represents a logged piece of content with its tags.
// Nil Entities or Themes mean the field is absent, an empty slice means present but empty.
type ContentItem struct {
	ID                  string      `json:"id"`
	Title               string      `json:"title"`
	Source              string      `json:"source,omitempty"`
	SourceID            string      `json:"sourceId,omitempty"`
	Date                string      `json:"date,omitempty"`
	ContentType         ContentType `json:"contentType"`
	Content             string      `json:"content,omitempty"`
	Link                string      `json:"link,omitempty"`
	Description         string      `json:"description,omitempty"`
	ExtractedText       string      `json:"extractedText,omitempty"`
	Notes               string      `json:"notes,omitempty"`
	Entities            []Entity    `json:"entities,omitempty"`
	Themes              []string    `json:"themes,omitempty"`
	Sentiment           Sentiment   `json:"sentiment,omitempty"`
	SentimentConfidence int         `json:"sentimentConfidence"`
	Timeframe           Timeframe   `json:"timeframe"`
	Conviction          Conviction  `json:"conviction"`
	MacroRelevanceScore int         `json:"macroRelevanceScore,omitempty"`
	CreatedAt           time.Time   `json:"createdAt"`
	UpdatedAt           time.Time   `json:"updatedAt"`
}

// EventTime returns the narrative date of the item, falling back to CreatedAt.
// Zero time is returned if neither is usable.
func (c ContentItem) EventTime() time.Time {
	if t, ok := ParseDate(c.Date); ok {
		return t
	}
	return c.CreatedAt
}

// HasTheme checks if the item is tagged with the exact theme label
func (c ContentItem) HasTheme(theme string) bool {
	for _, t := range c.Themes {
		if t == theme {
			return true
		}
	}
	return false
}

// Tickers returns lower-cased names of ticker entities in entity order
func (c ContentItem) Tickers() []string {
	var res []string
	for _, e := range c.Entities {
		if e.Type == EntityTicker {
			res = append(res, strings.ToLower(e.Name))
		}
	}
	return res
}

// dateLayouts are accepted formats for the Date field, most specific first
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate parses an ISO date or timestamp string
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// AnalysisResult is the per-text output of the content analyzer
type AnalysisResult struct {
	Sentiment           Sentiment `json:"sentiment"`
	SentimentConfidence int       `json:"sentimentConfidence"`
	Timeframe           Timeframe `json:"timeframe"`
	Themes              []string  `json:"themes"`
}
