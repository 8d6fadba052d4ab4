package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SettingsManager handles key/value settings. It satisfies the theme
// controller's store interface.
type SettingsManager struct {
	db *DB
}

// NewSettingsManager creates a new settings manager
func NewSettingsManager(db *DB) *SettingsManager {
	return &SettingsManager{db: db}
}

// Get returns the value stored under key. A missing key is not an error; it
// reports ok=false.
func (sm *SettingsManager) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := sm.db.conn.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get setting %s: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key, overwriting any previous value
func (sm *SettingsManager) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO settings (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key)
		DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`

	if _, err := sm.db.conn.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to set setting %s: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is a no-op.
func (sm *SettingsManager) Delete(ctx context.Context, key string) error {
	if _, err := sm.db.conn.ExecContext(ctx, "DELETE FROM settings WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete setting %s: %w", key, err)
	}
	return nil
}
