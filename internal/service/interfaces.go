// Package service defines the interfaces the ledger consumes.
package service

import (
	"context"

	"github.com/aanjelos/kaasi/internal/model"
)

// Store is the persistence gateway for the whole state tree. The ledger
// saves synchronously at the end of each successful mutating operation;
// a failed save leaves the in-memory state authoritative.
type Store interface {
	// Load returns the previously persisted blob, or nil when no data
	// has been saved yet. Read failures wrap common.ErrStorageRead.
	Load(ctx context.Context) ([]byte, error)

	// Save persists the entire state tree. Failures wrap
	// common.ErrStorageWrite or common.ErrStorageQuotaExceeded.
	Save(ctx context.Context, state *model.State) error

	// Wipe removes all persisted data.
	Wipe(ctx context.Context) error

	// Size reports the stored blob size in bytes, 0 when empty.
	Size(ctx context.Context) (int64, error)

	Close() error
}
