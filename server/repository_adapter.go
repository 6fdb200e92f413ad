package server

import (
	"context"
	"time"

	"github.com/umputun/makro/pkg/domain"
	"github.com/umputun/makro/pkg/repository"
)

// RepositoryAdapter adapts repositories to server.Database interface
type RepositoryAdapter struct {
	repos *repository.Repositories
}

// NewRepositoryAdapter creates a new repository adapter
func NewRepositoryAdapter(repos *repository.Repositories) *RepositoryAdapter {
	return &RepositoryAdapter{repos: repos}
}

// LoadContent returns all content in stored order
func (r *RepositoryAdapter) LoadContent(ctx context.Context) ([]domain.ContentItem, error) {
	return r.repos.Content.LoadAll(ctx)
}

// GetContent returns a content item by id
func (r *RepositoryAdapter) GetContent(ctx context.Context, id string) (domain.ContentItem, error) {
	return r.repos.Content.Get(ctx, id)
}

// DeleteContent removes a content item and its track record
func (r *RepositoryAdapter) DeleteContent(ctx context.Context, id string) error {
	return r.repos.Content.Delete(ctx, id)
}

// CountContent returns the number of stored items
func (r *RepositoryAdapter) CountContent(ctx context.Context) (int, error) {
	return r.repos.Content.Count(ctx)
}

// LoadSources returns all sources
func (r *RepositoryAdapter) LoadSources(ctx context.Context) ([]domain.Source, error) {
	return r.repos.Source.LoadAll(ctx)
}

// GetSource returns a source by id
func (r *RepositoryAdapter) GetSource(ctx context.Context, id string) (domain.Source, error) {
	return r.repos.Source.Get(ctx, id)
}

// CreateSource stores a new source
func (r *RepositoryAdapter) CreateSource(ctx context.Context, s domain.Source) error {
	return r.repos.Source.Create(ctx, s)
}

// SetOutcome records the outcome of a content item
func (r *RepositoryAdapter) SetOutcome(ctx context.Context, contentID string, outcome domain.Outcome, ts time.Time) error {
	return r.repos.TrackRecord.SetOutcome(ctx, contentID, outcome, ts)
}

// LoadTrackRecords returns outcomes keyed by content id
func (r *RepositoryAdapter) LoadTrackRecords(ctx context.Context) (map[string]domain.TrackRecord, error) {
	return r.repos.TrackRecord.LoadAll(ctx)
}

// GetSetting returns a setting value, empty if not set
func (r *RepositoryAdapter) GetSetting(ctx context.Context, key string) (string, error) {
	return r.repos.Setting.GetSetting(ctx, key)
}

// GetList returns a list setting
func (r *RepositoryAdapter) GetList(ctx context.Context, key string) ([]string, error) {
	return r.repos.Setting.GetList(ctx, key)
}

// SetList stores a list setting
func (r *RepositoryAdapter) SetList(ctx context.Context, key string, vals []string) error {
	return r.repos.Setting.SetList(ctx, key, vals)
}

// AddFeed stores a user feed
func (r *RepositoryAdapter) AddFeed(ctx context.Context, f domain.Feed) error {
	return r.repos.Feed.AddFeed(ctx, f)
}

// DeleteFeed removes a stored feed
func (r *RepositoryAdapter) DeleteFeed(ctx context.Context, url string) error {
	return r.repos.Feed.DeleteFeed(ctx, url)
}
