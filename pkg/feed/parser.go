package feed

import (
	"context"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"github.com/umputun/makro/pkg/domain"
)

// defaultSourceName is used when a feed has neither a configured nor a published title
const defaultSourceName = "RSS Feed"

// Parser fetches RSS/Atom feeds and turns their entries into articles
type Parser struct {
	client    *http.Client
	userAgent string
	strip     *bluemonday.Policy
	now       func() time.Time
}

// NewParser creates a new feed parser
func NewParser(timeout time.Duration, userAgent string) *Parser {
	if userAgent == "" {
		userAgent = "Mozilla/5.0 (compatible; Makro/1.0)"
	}
	return &Parser{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent: userAgent,
		strip:     bluemonday.StrictPolicy(),
		now:       time.Now,
	}
}

// Fetch downloads the feed and parses it into articles
func (p *Parser) Fetch(ctx context.Context, f domain.Feed) ([]domain.Article, error) {
	body, err := p.fetch(ctx, f.URL)
	if err != nil {
		return nil, fmt.Errorf("fetch feed %s: %w", f.URL, err)
	}
	defer body.Close()

	articles, err := p.Parse(body, f.Name)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", f.URL, err)
	}
	return articles, nil
}

// Parse reads an RSS/Atom document. Entries without title or link are dropped, descriptions are
// stripped of markup and entries without a publication date are dated now.
func (p *Parser) Parse(r io.Reader, sourceName string) ([]domain.Article, error) {
	feed, err := gofeed.NewParser().Parse(r)
	if err != nil {
		return nil, err
	}

	if sourceName == "" {
		sourceName = strings.TrimSpace(feed.Title)
	}
	if sourceName == "" {
		sourceName = defaultSourceName
	}

	fetchedAt := p.now().UTC()
	res := make([]domain.Article, 0, len(feed.Items))
	for _, item := range feed.Items {
		title, link := strings.TrimSpace(item.Title), strings.TrimSpace(item.Link)
		if title == "" || link == "" {
			continue
		}

		published := fetchedAt
		switch {
		case item.PublishedParsed != nil:
			published = item.PublishedParsed.UTC()
		case item.UpdatedParsed != nil:
			published = item.UpdatedParsed.UTC()
		}

		desc := item.Description
		if desc == "" {
			desc = item.Content
		}
		desc = p.CleanHTML(desc)

		guid := item.GUID
		if guid == "" {
			guid = link
		}

		res = append(res, domain.Article{
			ID:            "rss-" + guid,
			Title:         title,
			Link:          link,
			Description:   desc,
			Date:          published.Format("2006-01-02"),
			Source:        sourceName,
			Published:     published,
			FetchedAt:     fetchedAt,
			ExtractedText: desc,
		})
	}
	return res, nil
}

// CleanHTML strips all markup and decodes entities
func (p *Parser) CleanHTML(s string) string {
	return strings.TrimSpace(html.UnescapeString(p.strip.Sanitize(s)))
}

func (p *Parser) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", p.userAgent)
	req.Header.Set("Accept", "application/rss+xml,application/atom+xml,application/xml;q=0.9,text/xml;q=0.8,*/*;q=0.5")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return resp.Body, nil
}
