package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// SettingRepository handles setting-related database operations
type SettingRepository struct {
	db *sqlx.DB
}

// NewSettingRepository creates a new setting repository
func NewSettingRepository(db *sqlx.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// GetSetting retrieves a setting value, empty if not set
func (r *SettingRepository) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.GetContext(ctx, &value, "SELECT value FROM settings WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get setting: %w", err)
	}
	return value, nil
}

// SetSetting stores a setting value
func (r *SettingRepository) SetSetting(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO settings (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	return withLockRetry(ctx, "set setting", func() error {
		_, err := r.db.ExecContext(ctx, query, key, value)
		return err
	})
}

// GetList retrieves a setting stored as a JSON list of strings
func (r *SettingRepository) GetList(ctx context.Context, key string) ([]string, error) {
	value, err := r.GetSetting(ctx, key)
	if err != nil || value == "" {
		return []string{}, err
	}
	res := []string{}
	if err := json.Unmarshal([]byte(value), &res); err != nil {
		return nil, fmt.Errorf("decode setting %s: %w", key, err)
	}
	return res, nil
}

// SetList stores a list of strings as a JSON setting
func (r *SettingRepository) SetList(ctx context.Context, key string, vals []string) error {
	if vals == nil {
		vals = []string{}
	}
	data, err := json.Marshal(vals)
	if err != nil {
		return fmt.Errorf("encode setting %s: %w", key, err)
	}
	return r.SetSetting(ctx, key, string(data))
}
