package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // SQLite3 driver
	"github.com/user/money-smart-kids/internal/interfaces"
	"github.com/user/money-smart-kids/internal/types"
	"go.uber.org/zap"
)

// SQLiteStorage persists the application state as a single JSON blob in a
// key-value table, keyed by a fixed application identifier.
type SQLiteStorage struct {
	db     *sql.DB
	key    string
	logger *zap.Logger
}

var _ interfaces.StateStorage = (*SQLiteStorage)(nil)

// NewSQLiteStorage opens (and if necessary initializes) the database at dsn.
func NewSQLiteStorage(dsn, key string, logger *zap.Logger) (*SQLiteStorage, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	const schema = `
		CREATE TABLE IF NOT EXISTS app_state (
			slot_key   TEXT PRIMARY KEY,
			payload    TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &SQLiteStorage{
		db:     db,
		key:    key,
		logger: logger,
	}, nil
}

// Save upserts the state blob under the storage key.
func (ss *SQLiteStorage) Save(state types.AppState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	const upsert = `
		INSERT INTO app_state (slot_key, payload, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(slot_key) DO UPDATE SET
			payload = excluded.payload,
			updated_at = excluded.updated_at`
	if _, err := ss.db.Exec(upsert, ss.key, string(data)); err != nil {
		return fmt.Errorf("failed to write state: %w", err)
	}

	return nil
}

// Load reads the state blob back. An empty slot or an unparseable payload
// is reported as absent (ok=false) rather than an error.
func (ss *SQLiteStorage) Load() (types.AppState, bool, error) {
	var payload string
	err := ss.db.QueryRow(
		`SELECT payload FROM app_state WHERE slot_key = ?`, ss.key,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return types.AppState{}, false, nil
	}
	if err != nil {
		return types.AppState{}, false, fmt.Errorf("failed to read state: %w", err)
	}

	var state types.AppState
	if err := json.Unmarshal([]byte(payload), &state); err != nil {
		ss.logger.Warn("Saved state is corrupt, treating as absent",
			zap.String("slot_key", ss.key),
			zap.Error(err))
		return types.AppState{}, false, nil
	}

	normalize(&state)
	return state, true, nil
}

// Close releases the underlying database handle.
func (ss *SQLiteStorage) Close() error {
	return ss.db.Close()
}
