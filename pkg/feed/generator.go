package feed

import (
	"encoding/xml"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/umputun/makro/pkg/domain"
)

// rssDoc is the root RSS 2.0 element
type rssDoc struct {
	XMLName xml.Name    `xml:"rss"`
	Version string      `xml:"version,attr"`
	Atom    string      `xml:"xmlns:atom,attr"`
	Channel *rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title         string     `xml:"title"`
	Link          string     `xml:"link"`
	Description   string     `xml:"description"`
	AtomLink      *atomLink  `xml:"atom:link"`
	Generator     string     `xml:"generator"`
	LastBuildDate string     `xml:"lastBuildDate"`
	Items         []*rssItem `xml:"item"`
}

type atomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
}

type rssItem struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link,omitempty"`
	GUID        rssGUID  `xml:"guid"`
	Description string   `xml:"description"`
	Author      string   `xml:"author,omitempty"`
	PubDate     string   `xml:"pubDate,omitempty"`
	Categories  []string `xml:"category"`
}

type rssGUID struct {
	Value       string `xml:",chardata"`
	IsPermaLink bool   `xml:"isPermaLink,attr"`
}

// Generator renders a theme's narrative as an RSS feed
type Generator struct {
	baseURL string
}

// NewGenerator creates a new feed generator
func NewGenerator(baseURL string) *Generator {
	return &Generator{baseURL: strings.TrimRight(baseURL, "/")}
}

// GenerateRSS renders the items of a narrative card, newest first as they come, with the
// card's consensus in the channel description
func (g *Generator) GenerateRSS(card domain.NarrativeCard, sources []domain.Source, now time.Time) (string, error) {
	selfLink := fmt.Sprintf("%s/rss/%s", g.baseURL, url.PathEscape(card.Theme))

	items := make([]*rssItem, 0, len(card.Items))
	for _, it := range card.Items {
		items = append(items, g.toRSSItem(it, sources))
	}

	doc := &rssDoc{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		Channel: &rssChannel{
			Title: "Makro - " + card.Theme,
			Link:  g.baseURL + "/",
			Description: fmt.Sprintf("%s: %s (%.0f%%), %d positive, %d negative, %d neutral",
				card.Thesis, card.Consensus, card.ConsensusPercent, card.Positive, card.Negative, card.Neutral),
			AtomLink:      &atomLink{Href: selfLink, Rel: "self", Type: "application/rss+xml"},
			Generator:     "makro",
			LastBuildDate: now.Format(time.RFC1123Z),
			Items:         items,
		},
	}

	output, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}
	return xml.Header + string(output), nil
}

func (g *Generator) toRSSItem(it domain.ContentItem, sources []domain.Source) *rssItem {
	title := it.Title
	if title == "" {
		title = "Untitled"
	}
	if it.Sentiment != "" {
		title = fmt.Sprintf("[%s] %s", it.Sentiment, title)
	}

	var desc strings.Builder
	desc.WriteString("Source: " + domain.SourceName(it, sources))
	if it.Sentiment != "" {
		fmt.Fprintf(&desc, "\nSentiment: %s (%d%%)", it.Sentiment, it.SentimentConfidence)
	}
	if it.Timeframe != "" {
		desc.WriteString("\nTimeframe: " + string(it.Timeframe))
	}
	if text := firstNonEmpty(it.Description, it.ExtractedText, it.Content); text != "" {
		desc.WriteString("\n\n" + text)
	}

	res := &rssItem{
		Title:       title,
		Link:        it.Link,
		GUID:        rssGUID{Value: it.ID},
		Description: desc.String(),
		Author:      domain.SourceName(it, sources),
		Categories:  it.Themes,
	}
	if ts := it.EventTime(); !ts.IsZero() {
		res.PubDate = ts.Format(time.RFC1123Z)
	}
	return res
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
