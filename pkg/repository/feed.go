package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/makro/pkg/domain"
)

// FeedRepository keeps user-added feeds and fetch status of every polled feed
type FeedRepository struct {
	db *sqlx.DB
}

// feedSQL represents a feed for SQL operations
type feedSQL struct {
	URL         string       `db:"url"`
	Name        string       `db:"name"`
	Category    string       `db:"category"`
	Priority    string       `db:"priority"`
	LastFetched sql.NullTime `db:"last_fetched"`
	LastError   string       `db:"last_error"`
	ErrorCount  int          `db:"error_count"`
	CreatedAt   time.Time    `db:"created_at"`
}

// NewFeedRepository creates a new feed repository
func NewFeedRepository(database *sqlx.DB) *FeedRepository {
	return &FeedRepository{db: database}
}

// AddFeed stores a feed, updating name, category and priority if the url is known
func (r *FeedRepository) AddFeed(ctx context.Context, feed domain.Feed) error {
	query := `
		INSERT INTO feeds (url, name, category, priority)
		VALUES (:url, :name, :category, :priority)
		ON CONFLICT(url) DO UPDATE SET
			name = excluded.name, category = excluded.category, priority = excluded.priority
	`
	return withLockRetry(ctx, "add feed", func() error {
		_, err := r.db.NamedExecContext(ctx, query, feedSQL{URL: feed.URL, Name: feed.Name, Category: feed.Category, Priority: feed.Priority})
		return err
	})
}

// GetFeeds returns stored feeds ordered by name
func (r *FeedRepository) GetFeeds(ctx context.Context) ([]domain.Feed, error) {
	var rows []feedSQL
	if err := r.db.SelectContext(ctx, &rows, "SELECT * FROM feeds ORDER BY name, url"); err != nil {
		return nil, fmt.Errorf("get feeds: %w", err)
	}
	res := make([]domain.Feed, 0, len(rows))
	for _, row := range rows {
		f := domain.Feed{
			ID: row.URL, URL: row.URL, Name: row.Name, Category: row.Category, Priority: row.Priority,
			LastError: row.LastError, ErrorCount: row.ErrorCount,
		}
		if row.LastFetched.Valid {
			ts := row.LastFetched.Time.UTC()
			f.LastFetched = &ts
		}
		res = append(res, f)
	}
	return res, nil
}

// DeleteFeed removes a stored feed
func (r *FeedRepository) DeleteFeed(ctx context.Context, url string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM feeds WHERE url = ?", url)
	if err != nil {
		return fmt.Errorf("delete feed: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("delete feed %s: %w", url, ErrNotFound)
	}
	return nil
}

// UpdateFeedFetched records a successful fetch, the feed row is created if missing
func (r *FeedRepository) UpdateFeedFetched(ctx context.Context, url string, fetched time.Time) error {
	query := `
		INSERT INTO feeds (url, last_fetched) VALUES (?, ?)
		ON CONFLICT(url) DO UPDATE SET last_fetched = excluded.last_fetched, error_count = 0, last_error = ''
	`
	return withLockRetry(ctx, "update feed fetched", func() error {
		_, err := r.db.ExecContext(ctx, query, url, fetched.UTC())
		return err
	})
}

// UpdateFeedError records a failed fetch, the feed row is created if missing
func (r *FeedRepository) UpdateFeedError(ctx context.Context, url, errMsg string) error {
	query := `
		INSERT INTO feeds (url, last_error, error_count) VALUES (?, ?, 1)
		ON CONFLICT(url) DO UPDATE SET last_error = excluded.last_error, error_count = error_count + 1
	`
	return withLockRetry(ctx, "update feed error", func() error {
		_, err := r.db.ExecContext(ctx, query, url, errMsg)
		return err
	})
}
