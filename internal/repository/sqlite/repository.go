package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"

	"momentum/internal/errors"
	"momentum/internal/logging"
	"momentum/internal/repository/sqlite/migrations"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// State keys in the app_state table. The layout is shared with earlier
// versions of the app, so the keys are load-bearing.
const (
	stateKeyTasks           = "tasks"
	stateKeyLastStackedDate = "lastStackedDate"
)

// Repository defines the interface for durable state operations.
type Repository interface {
	// LoadTasks reads the persisted task snapshot. A missing or corrupt
	// snapshot yields an empty slice, never an error: it is treated as
	// "no prior data".
	LoadTasks(ctx context.Context) ([]TaskRecord, error)

	// SaveTasks replaces the persisted task snapshot.
	SaveTasks(ctx context.Context, records []TaskRecord) error

	// LastStackedDate returns the day key of the last habit-stacking
	// run, or "" if stacking has never run.
	LastStackedDate(ctx context.Context) (string, error)

	// SetLastStackedDate records the day key of a habit-stacking run.
	SetLastStackedDate(ctx context.Context, day string) error

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewStorageError("open database", err)
	}

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewStorageError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// LoadTasks reads and decodes the task snapshot
func (r *SQLiteRepository) LoadTasks(ctx context.Context) ([]TaskRecord, error) {
	value, found, err := r.getState(ctx, stateKeyTasks)
	if err != nil {
		return nil, err
	}
	if !found {
		return []TaskRecord{}, nil
	}

	var records []TaskRecord
	if err := json.Unmarshal([]byte(value), &records); err != nil {
		// A corrupt snapshot is indistinguishable from no prior data.
		logging.Warn("task snapshot is corrupt, starting empty", zap.Error(err))
		return []TaskRecord{}, nil
	}
	return records, nil
}

// SaveTasks encodes and writes the full task snapshot
func (r *SQLiteRepository) SaveTasks(ctx context.Context, records []TaskRecord) error {
	if records == nil {
		records = []TaskRecord{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return errors.NewStorageError("encode tasks", err)
	}
	return r.setState(ctx, stateKeyTasks, string(data))
}

// LastStackedDate returns the persisted stacking marker
func (r *SQLiteRepository) LastStackedDate(ctx context.Context) (string, error) {
	value, _, err := r.getState(ctx, stateKeyLastStackedDate)
	return value, err
}

// SetLastStackedDate updates the persisted stacking marker
func (r *SQLiteRepository) SetLastStackedDate(ctx context.Context, day string) error {
	return r.setState(ctx, stateKeyLastStackedDate, day)
}

// getState reads a single value from the app_state table
func (r *SQLiteRepository) getState(ctx context.Context, key string) (string, bool, error) {
	query := `SELECT value FROM app_state WHERE key = ?`

	var value string
	err := r.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.NewStorageError("read "+key, err)
	}
	return value, true, nil
}

// setState writes a single value to the app_state table
func (r *SQLiteRepository) setState(ctx context.Context, key, value string) error {
	query := `
	INSERT INTO app_state (key, value) VALUES (?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value`

	if _, err := r.db.ExecContext(ctx, query, key, value); err != nil {
		return errors.NewStorageError("write "+key, err)
	}
	return nil
}
