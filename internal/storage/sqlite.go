// Package storage provides the data persistence layer for the kaasi
// application: a SQLite-backed key-value store holding the serialized
// state tree under a single well-known key.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/aanjelos/kaasi/internal/common"
	"github.com/aanjelos/kaasi/internal/model"
)

// StateKey is the key the state blob is stored under. It matches the
// original storage key so exported data stays recognizable.
const StateKey = "KaasiData"

// SQLiteStore implements service.Store using SQLite.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStore opens (creating if needed) the database at dbPath and
// runs any pending migrations.
func NewSQLiteStore(ctx context.Context, dbPath string) (*SQLiteStore, error) {
	if strings.TrimSpace(dbPath) == "" {
		return nil, common.Invalidf("dbPath", "cannot be empty")
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &SQLiteStore{db: db, dbPath: dbPath}
	if err := s.migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Load returns the persisted state blob, or nil when nothing has been
// saved yet.
func (s *SQLiteStore) Load(ctx context.Context) ([]byte, error) {
	var blob []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM app_state WHERE key = ?`, StateKey).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStorageRead, err)
	}
	return blob, nil
}

// Save serializes the state tree and upserts it under StateKey.
func (s *SQLiteStore) Save(ctx context.Context, state *model.State) error {
	blob, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrStorageWrite, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO app_state (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		StateKey, blob, time.Now().UTC())
	if err != nil {
		if isQuotaError(err) {
			return fmt.Errorf("%w: %v", common.ErrStorageQuotaExceeded, err)
		}
		return fmt.Errorf("%w: %v", common.ErrStorageWrite, err)
	}
	return nil
}

// Wipe removes all persisted data.
func (s *SQLiteStore) Wipe(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM app_state`); err != nil {
		return fmt.Errorf("%w: %v", common.ErrStorageWrite, err)
	}
	return nil
}

// Size reports the stored blob size in bytes.
func (s *SQLiteStore) Size(ctx context.Context) (int64, error) {
	var size sql.NullInt64
	err := s.db.QueryRowContext(ctx,
		`SELECT length(value) FROM app_state WHERE key = ?`, StateKey).Scan(&size)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %v", common.ErrStorageRead, err)
	}
	return size.Int64, nil
}

// isQuotaError reports whether the write failed because the disk or
// database is full.
func isQuotaError(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrFull || sqliteErr.Code == sqlite3.ErrTooBig
	}
	return false
}
