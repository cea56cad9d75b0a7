package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/hackynews/hackynews/pkg/domain"
)

const lastSyncKey = "last_sync"

// SettingRepository handles setting-related database operations
type SettingRepository struct {
	db *sqlx.DB
}

// NewSettingRepository creates a new setting repository
func NewSettingRepository(db *sqlx.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// GetSetting retrieves a setting value, empty string if not set
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
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`
	return lockRetrier().Do(ctx, func() error {
		if _, err := r.db.ExecContext(ctx, query, key, value); err != nil {
			if isLockError(err) {
				return err
			}
			return &criticalError{err: fmt.Errorf("set setting: %w", err)}
		}
		return nil
	}, errCritical)
}

// SaveSyncRun stores summary of the last sync run
func (r *SettingRepository) SaveSyncRun(ctx context.Context, run domain.SyncRun) error {
	data, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("marshal sync run: %w", err)
	}
	return r.SetSetting(ctx, lastSyncKey, string(data))
}

// LastSyncRun returns summary of the last sync run, nil if no sync recorded yet
func (r *SettingRepository) LastSyncRun(ctx context.Context) (*domain.SyncRun, error) {
	value, err := r.GetSetting(ctx, lastSyncKey)
	if err != nil {
		return nil, err
	}
	if value == "" {
		return nil, nil
	}
	var run domain.SyncRun
	if err := json.Unmarshal([]byte(value), &run); err != nil {
		return nil, fmt.Errorf("unmarshal sync run: %w", err)
	}
	return &run, nil
}
