// Package content pulls readable article text out of web pages for link items
package content

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/markusmobius/go-trafilatura"
)

// maxPageSize limits how much of a page is read for extraction
const maxPageSize = 5 * 1024 * 1024

// Extracted is the readable part of a web page with its metadata
type Extracted struct {
	Title    string
	Text     string
	Author   string
	SiteName string
	Date     time.Time
}

// HTTPExtractor extracts article content from URLs using trafilatura
type HTTPExtractor struct {
	client    *http.Client
	userAgent string
}

// NewHTTPExtractor creates a new content extractor
func NewHTTPExtractor(timeout time.Duration, userAgent string) *HTTPExtractor {
	if userAgent == "" {
		userAgent = "Mozilla/5.0 (compatible; Makro/1.0)"
	}
	return &HTTPExtractor{client: &http.Client{Timeout: timeout}, userAgent: userAgent}
}

// Extract retrieves the page and returns its main text with title, author, site and date
func (e *HTTPExtractor) Extract(ctx context.Context, urlStr string) (Extracted, error) {
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return Extracted{}, fmt.Errorf("parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return Extracted{}, fmt.Errorf("invalid URL: %q", urlStr)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, http.NoBody)
	if err != nil {
		return Extracted{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", e.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := e.client.Do(req)
	if err != nil {
		return Extracted{}, fmt.Errorf("fetch URL %s: %w", urlStr, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Extracted{}, fmt.Errorf("unexpected status code %d for URL %s", resp.StatusCode, urlStr)
	}

	result, err := trafilatura.Extract(io.LimitReader(resp.Body, maxPageSize), trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
		Deduplicate:     true,
		OriginalURL:     parsedURL,
	})
	if err != nil {
		return Extracted{}, fmt.Errorf("extract content from %s: %w", urlStr, err)
	}
	if result == nil || strings.TrimSpace(result.ContentText) == "" {
		return Extracted{}, fmt.Errorf("no text content extracted from %s", urlStr)
	}

	return Extracted{
		Title:    strings.TrimSpace(result.Metadata.Title),
		Text:     strings.TrimSpace(result.ContentText),
		Author:   strings.TrimSpace(result.Metadata.Author),
		SiteName: strings.TrimSpace(result.Metadata.Sitename),
		Date:     result.Metadata.Date,
	}, nil
}
