package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/makro/pkg/domain"
)

// SourceRepository handles source-related database operations
type SourceRepository struct {
	db *sqlx.DB
}

type sourceSQL struct {
	ID         string `db:"id"`
	Name       string `db:"name"`
	Type       string `db:"type"`
	Background string `db:"background"`
	Seq        int64  `db:"seq"`
}

const insertSourceQuery = `
	INSERT INTO sources (id, name, type, background, seq)
	VALUES (:id, :name, :type, :background, :seq)`

// NewSourceRepository creates a new source repository
func NewSourceRepository(db *sqlx.DB) *SourceRepository {
	return &SourceRepository{db: db}
}

// LoadAll returns all sources in stored order
func (r *SourceRepository) LoadAll(ctx context.Context) ([]domain.Source, error) {
	var rows []sourceSQL
	if err := r.db.SelectContext(ctx, &rows, "SELECT * FROM sources ORDER BY seq"); err != nil {
		return nil, fmt.Errorf("load sources: %w", err)
	}
	res := make([]domain.Source, 0, len(rows))
	for _, row := range rows {
		res = append(res, row.toDomain())
	}
	return res, nil
}

// SaveAll replaces all sources, keeping the given order
func (r *SourceRepository) SaveAll(ctx context.Context, sources []domain.Source) error {
	return withLockRetry(ctx, "save sources", func() error {
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin: %w", err)
		}
		defer tx.Rollback() //nolint:errcheck // no-op after commit

		if _, err := tx.ExecContext(ctx, "DELETE FROM sources"); err != nil {
			return fmt.Errorf("clear: %w", err)
		}
		for i, s := range sources {
			row := toSourceSQL(s)
			row.Seq = int64(i + 1)
			if _, err := tx.NamedExecContext(ctx, insertSourceQuery, row); err != nil {
				return fmt.Errorf("insert %s: %w", s.ID, err)
			}
		}
		return tx.Commit()
	})
}

// Create appends a source
func (r *SourceRepository) Create(ctx context.Context, s domain.Source) error {
	return withLockRetry(ctx, "create source", func() error {
		row := toSourceSQL(s)
		if err := r.db.GetContext(ctx, &row.Seq, "SELECT COALESCE(MAX(seq), 0) + 1 FROM sources"); err != nil {
			return fmt.Errorf("next seq: %w", err)
		}
		_, err := r.db.NamedExecContext(ctx, insertSourceQuery, row)
		return err
	})
}

// Get returns a source by id
func (r *SourceRepository) Get(ctx context.Context, id string) (domain.Source, error) {
	var row sourceSQL
	err := r.db.GetContext(ctx, &row, "SELECT * FROM sources WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Source{}, fmt.Errorf("get source %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return domain.Source{}, fmt.Errorf("get source %s: %w", id, err)
	}
	return row.toDomain(), nil
}

func toSourceSQL(s domain.Source) sourceSQL {
	if s.Type == "" {
		s.Type = domain.SourceOther
	}
	return sourceSQL{ID: s.ID, Name: s.Name, Type: string(s.Type), Background: s.Background}
}

func (s sourceSQL) toDomain() domain.Source {
	return domain.Source{ID: s.ID, Name: s.Name, Type: domain.SourceType(s.Type), Background: s.Background}
}
