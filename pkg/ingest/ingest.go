// Package ingest turns user submissions and feed articles into analyzed content items and stores them
package ingest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/google/uuid"

	"github.com/umputun/makro/pkg/analysis"
	"github.com/umputun/makro/pkg/content"
	"github.com/umputun/makro/pkg/domain"
	"github.com/umputun/makro/pkg/lexicon"
	"github.com/umputun/makro/pkg/temporal"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/extractor.go -pkg mocks -skip-ensure -fmt goimports . Extractor

// Store persists content items
type Store interface {
	LoadAll(ctx context.Context) ([]domain.ContentItem, error)
	Create(ctx context.Context, item domain.ContentItem) error
	HasLink(ctx context.Context, link string) (bool, error)
}

// Extractor pulls readable text from a page
type Extractor interface {
	Extract(ctx context.Context, url string) (content.Extracted, error)
}

// Result is a stored item with conflicts it raised against existing content
type Result struct {
	Item      domain.ContentItem `json:"item"`
	Conflicts []domain.Conflict  `json:"conflicts"`
}

// Service analyzes and stores content
type Service struct {
	store     Store
	extractor Extractor
	now       func() time.Time
	newID     func() string
}

// NewService makes an ingest service. Extractor is optional, link items are stored as-is without it.
func NewService(store Store, extractor Extractor) *Service {
	return &Service{
		store:     store,
		extractor: extractor,
		now:       time.Now,
		newID:     func() string { return uuid.New().String() },
	}
}

// Add analyzes the item and stores it. Values set by the caller win over analysis results,
// themes from analysis are appended to the caller's.
func (s *Service) Add(ctx context.Context, item domain.ContentItem) (Result, error) {
	if strings.TrimSpace(item.Title) == "" && strings.TrimSpace(item.Content) == "" && item.Link == "" {
		return Result{}, fmt.Errorf("empty content item")
	}

	existing, err := s.store.LoadAll(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("load content: %w", err)
	}

	item = s.prepare(ctx, item)
	conflicts := temporal.DetectConflicts(item, existing)
	for _, c := range conflicts {
		lgr.Printf("[INFO] %s between %s (%s) and %s (%s), severity %s", c.Type,
			c.NewContentID, c.NewSentiment, c.ExistingContentID, c.ExistingSentiment, c.Severity)
	}

	if err := s.store.Create(ctx, item); err != nil {
		return Result{}, fmt.Errorf("save content %s: %w", item.ID, err)
	}
	lgr.Printf("[DEBUG] stored content %s %q, sentiment %s, themes %v", item.ID, item.Title, item.Sentiment, item.Themes)
	return Result{Item: item, Conflicts: conflicts}, nil
}

// AddArticles stores feed articles whose links are not known yet and returns how many were stored.
// A failed article is logged and skipped.
func (s *Service) AddArticles(ctx context.Context, articles []domain.Article) (int, error) {
	added := 0
	for _, a := range articles {
		if err := ctx.Err(); err != nil {
			return added, err
		}
		known, err := s.store.HasLink(ctx, a.Link)
		if err != nil {
			return added, fmt.Errorf("check link %s: %w", a.Link, err)
		}
		if known {
			continue
		}
		if _, err := s.Add(ctx, FromArticle(a)); err != nil {
			lgr.Printf("[WARN] failed to ingest article %s: %v", a.Link, err)
			continue
		}
		added++
	}
	return added, nil
}

// FromArticle converts a feed article into a content item ready for Add
func FromArticle(a domain.Article) domain.ContentItem {
	return domain.ContentItem{
		Title:               a.Title,
		Source:              a.Source,
		Date:                a.Date,
		ContentType:         domain.ContentArticle,
		Content:             a.Link,
		Link:                a.Link,
		Description:         a.Description,
		ExtractedText:       a.ExtractedText,
		MacroRelevanceScore: a.MacroRelevanceScore,
	}
}

// prepare fills ID, timestamps, link text and analysis results
func (s *Service) prepare(ctx context.Context, item domain.ContentItem) domain.ContentItem {
	if item.ID == "" {
		item.ID = s.newID()
	}
	if item.ContentType == "" {
		item.ContentType = domain.ContentArticle
	}
	item.Title = analysis.CleanText(item.Title, domain.ContentArticle)
	item.Content = analysis.CleanText(item.Content, item.ContentType)
	if item.ContentType == domain.ContentLink && item.Link == "" && isURL(item.Content) {
		item.Link = item.Content
	}
	s.extract(ctx, &item)
	if item.Title == "" {
		item.Title = analysis.Truncate(firstNonEmpty(item.Description, item.ExtractedText, item.Content), 80)
	}

	text := analysisText(item)
	analysis.Apply(&item, analysis.Analyze(text))
	item.Entities = withTickers(item.Entities, lexicon.ExtractTickers(text))
	if item.MacroRelevanceScore == 0 {
		item.MacroRelevanceScore = lexicon.ScoreMacroRelevance(text)
	}

	now := s.now().UTC()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	item.UpdatedAt = now
	return item
}

// extract loads page text for link items without text of their own
func (s *Service) extract(ctx context.Context, item *domain.ContentItem) {
	if s.extractor == nil || item.ContentType != domain.ContentLink || item.Link == "" || item.ExtractedText != "" {
		return
	}
	ex, err := s.extractor.Extract(ctx, item.Link)
	if err != nil {
		lgr.Printf("[WARN] can't extract %s: %v", item.Link, err)
		return
	}
	item.ExtractedText = ex.Text
	if item.Title == "" {
		item.Title = ex.Title
	}
	if item.Source == "" && item.SourceID == "" {
		item.Source = ex.SiteName
	}
	if item.Date == "" && !ex.Date.IsZero() {
		item.Date = ex.Date.UTC().Format("2006-01-02")
	}
}

// analysisText joins every text field of the item, skipping a content field that only holds the link
func analysisText(item domain.ContentItem) string {
	parts := []string{item.Title, item.Description, item.ExtractedText, item.Notes}
	if !isURL(item.Content) {
		parts = append(parts, item.Content)
	}
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			res = append(res, p)
		}
	}
	return strings.Join(res, " ")
}

// withTickers adds ticker entities not present yet. Entities stay nil when there is nothing to add.
func withTickers(entities []domain.Entity, tickers []string) []domain.Entity {
	for _, t := range tickers {
		found := false
		for _, e := range entities {
			if e.Type == domain.EntityTicker && strings.EqualFold(e.Name, t) {
				found = true
				break
			}
		}
		if !found {
			entities = append(entities, domain.Entity{ID: "ticker-" + strings.ToLower(t), Name: t, Type: domain.EntityTicker})
		}
	}
	return entities
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
