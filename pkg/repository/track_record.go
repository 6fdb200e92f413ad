package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/makro/pkg/domain"
)

// TrackRecordRepository stores outcomes of logged calls
type TrackRecordRepository struct {
	db *sqlx.DB
}

type trackRecordSQL struct {
	ContentID string    `db:"content_id"`
	Outcome   string    `db:"outcome"`
	UpdatedAt time.Time `db:"updated_at"`
}

// NewTrackRecordRepository creates a new track record repository
func NewTrackRecordRepository(db *sqlx.DB) *TrackRecordRepository {
	return &TrackRecordRepository{db: db}
}

// SetOutcome records the outcome of a content item
func (r *TrackRecordRepository) SetOutcome(ctx context.Context, contentID string, outcome domain.Outcome, ts time.Time) error {
	query := `
		INSERT INTO track_records (content_id, outcome, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(content_id) DO UPDATE SET outcome = excluded.outcome, updated_at = excluded.updated_at
	`
	return withLockRetry(ctx, "set outcome", func() error {
		_, err := r.db.ExecContext(ctx, query, contentID, string(outcome), ts.UTC())
		return err
	})
}

// LoadAll returns all track records keyed by content id
func (r *TrackRecordRepository) LoadAll(ctx context.Context) (map[string]domain.TrackRecord, error) {
	var rows []trackRecordSQL
	if err := r.db.SelectContext(ctx, &rows, "SELECT * FROM track_records"); err != nil {
		return nil, fmt.Errorf("load track records: %w", err)
	}
	res := make(map[string]domain.TrackRecord, len(rows))
	for _, row := range rows {
		res[row.ContentID] = domain.TrackRecord{ContentID: row.ContentID, Outcome: domain.Outcome(row.Outcome), UpdatedAt: row.UpdatedAt.UTC()}
	}
	return res, nil
}
