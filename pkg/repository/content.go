package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/makro/pkg/domain"
)

// ContentRepository handles content-related database operations
type ContentRepository struct {
	db *sqlx.DB
}

// contentSQL represents a content item for SQL operations
type contentSQL struct {
	ID                  string                    `db:"id"`
	Title               string                    `db:"title"`
	Source              string                    `db:"source"`
	SourceID            string                    `db:"source_id"`
	Date                string                    `db:"date"`
	ContentType         string                    `db:"content_type"`
	Content             string                    `db:"content"`
	Link                string                    `db:"link"`
	Description         string                    `db:"description"`
	ExtractedText       string                    `db:"extracted_text"`
	Notes               string                    `db:"notes"`
	Entities            jsonColumn[domain.Entity] `db:"entities"`
	Themes              jsonColumn[string]        `db:"themes"`
	Sentiment           string                    `db:"sentiment"`
	SentimentConfidence int                       `db:"sentiment_confidence"`
	Timeframe           string                    `db:"timeframe"`
	Conviction          string                    `db:"conviction"`
	MacroRelevanceScore int                       `db:"macro_relevance_score"`
	Seq                 int64                     `db:"seq"`
	CreatedAt           time.Time                 `db:"created_at"`
	UpdatedAt           time.Time                 `db:"updated_at"`
}

const insertContentQuery = `
	INSERT INTO content (
		id, title, source, source_id, date, content_type, content, link, description,
		extracted_text, notes, entities, themes, sentiment, sentiment_confidence,
		timeframe, conviction, macro_relevance_score, seq, created_at, updated_at
	) VALUES (
		:id, :title, :source, :source_id, :date, :content_type, :content, :link, :description,
		:extracted_text, :notes, :entities, :themes, :sentiment, :sentiment_confidence,
		:timeframe, :conviction, :macro_relevance_score, :seq, :created_at, :updated_at
	)`

// NewContentRepository creates a new content repository
func NewContentRepository(db *sqlx.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

// LoadAll returns the whole content collection in stored order
func (r *ContentRepository) LoadAll(ctx context.Context) ([]domain.ContentItem, error) {
	var rows []contentSQL
	if err := r.db.SelectContext(ctx, &rows, "SELECT * FROM content ORDER BY seq, created_at"); err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	res := make([]domain.ContentItem, 0, len(rows))
	for _, row := range rows {
		res = append(res, row.toDomain())
	}
	return res, nil
}

// SaveAll replaces the whole content collection, keeping the given order
func (r *ContentRepository) SaveAll(ctx context.Context, items []domain.ContentItem) error {
	return withLockRetry(ctx, "save content", func() error {
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin: %w", err)
		}
		defer tx.Rollback() //nolint:errcheck // no-op after commit

		if _, err := tx.ExecContext(ctx, "DELETE FROM content"); err != nil {
			return fmt.Errorf("clear: %w", err)
		}
		for i, it := range items {
			row := toContentSQL(it)
			row.Seq = int64(i + 1)
			if _, err := tx.NamedExecContext(ctx, insertContentQuery, row); err != nil {
				return fmt.Errorf("insert %s: %w", it.ID, err)
			}
		}
		return tx.Commit()
	})
}

// Create appends a single item to the collection
func (r *ContentRepository) Create(ctx context.Context, item domain.ContentItem) error {
	return withLockRetry(ctx, "create content", func() error {
		var seq int64
		if err := r.db.GetContext(ctx, &seq, "SELECT COALESCE(MAX(seq), 0) + 1 FROM content"); err != nil {
			return fmt.Errorf("next seq: %w", err)
		}
		row := toContentSQL(item)
		row.Seq = seq
		_, err := r.db.NamedExecContext(ctx, insertContentQuery, row)
		return err
	})
}

// Get returns a single item by id
func (r *ContentRepository) Get(ctx context.Context, id string) (domain.ContentItem, error) {
	var row contentSQL
	err := r.db.GetContext(ctx, &row, "SELECT * FROM content WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ContentItem{}, fmt.Errorf("get content %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return domain.ContentItem{}, fmt.Errorf("get content %s: %w", id, err)
	}
	return row.toDomain(), nil
}

// Delete removes an item and its track record
func (r *ContentRepository) Delete(ctx context.Context, id string) error {
	var affected int64
	err := withLockRetry(ctx, "delete content", func() error {
		res, err := r.db.ExecContext(ctx, "DELETE FROM content WHERE id = ?", id)
		if err != nil {
			return err
		}
		if affected, err = res.RowsAffected(); err != nil {
			return err
		}
		_, err = r.db.ExecContext(ctx, "DELETE FROM track_records WHERE content_id = ?", id)
		return err
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("delete content %s: %w", id, ErrNotFound)
	}
	return nil
}

// HasLink checks if an item with the link is already stored
func (r *ContentRepository) HasLink(ctx context.Context, link string) (bool, error) {
	if link == "" {
		return false, nil
	}
	var exists bool
	if err := r.db.GetContext(ctx, &exists, "SELECT EXISTS(SELECT 1 FROM content WHERE link = ?)", link); err != nil {
		return false, fmt.Errorf("check content link: %w", err)
	}
	return exists, nil
}

// Count returns the number of stored items
func (r *ContentRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM content"); err != nil {
		return 0, fmt.Errorf("count content: %w", err)
	}
	return count, nil
}

func toContentSQL(it domain.ContentItem) contentSQL {
	now := time.Now().UTC()
	if it.CreatedAt.IsZero() {
		it.CreatedAt = now
	}
	if it.UpdatedAt.IsZero() {
		it.UpdatedAt = it.CreatedAt
	}
	return contentSQL{
		ID:                  it.ID,
		Title:               it.Title,
		Source:              it.Source,
		SourceID:            it.SourceID,
		Date:                it.Date,
		ContentType:         string(it.ContentType),
		Content:             it.Content,
		Link:                it.Link,
		Description:         it.Description,
		ExtractedText:       it.ExtractedText,
		Notes:               it.Notes,
		Entities:            jsonColumn[domain.Entity]{vals: it.Entities},
		Themes:              jsonColumn[string]{vals: it.Themes},
		Sentiment:           string(it.Sentiment),
		SentimentConfidence: it.SentimentConfidence,
		Timeframe:           string(it.Timeframe),
		Conviction:          string(it.Conviction),
		MacroRelevanceScore: it.MacroRelevanceScore,
		CreatedAt:           it.CreatedAt,
		UpdatedAt:           it.UpdatedAt,
	}
}

func (c contentSQL) toDomain() domain.ContentItem {
	return domain.ContentItem{
		ID:                  c.ID,
		Title:               c.Title,
		Source:              c.Source,
		SourceID:            c.SourceID,
		Date:                c.Date,
		ContentType:         domain.ContentType(c.ContentType),
		Content:             c.Content,
		Link:                c.Link,
		Description:         c.Description,
		ExtractedText:       c.ExtractedText,
		Notes:               c.Notes,
		Entities:            c.Entities.vals,
		Themes:              c.Themes.vals,
		Sentiment:           domain.Sentiment(c.Sentiment),
		SentimentConfidence: c.SentimentConfidence,
		Timeframe:           domain.Timeframe(c.Timeframe),
		Conviction:          domain.Conviction(c.Conviction),
		MacroRelevanceScore: c.MacroRelevanceScore,
		CreatedAt:           c.CreatedAt.UTC(),
		UpdatedAt:           c.UpdatedAt.UTC(),
	}
}
