package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aanjelos/kaasi/internal/common"
	"github.com/aanjelos/kaasi/internal/model"
)

// MemoryStore is an in-memory service.Store used in tests.
type MemoryStore struct {
	blob []byte

	// FailSave, when set, is returned from Save to exercise the
	// surface-but-don't-crash path.
	FailSave error
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Seed pre-populates the store with a raw blob, as if it had been
// persisted by an earlier session.
func (m *MemoryStore) Seed(blob []byte) {
	m.blob = blob
}

// Load returns the stored blob, or nil when empty.
func (m *MemoryStore) Load(_ context.Context) ([]byte, error) {
	return m.blob, nil
}

// Save serializes and stores the state tree.
func (m *MemoryStore) Save(_ context.Context, state *model.State) error {
	if m.FailSave != nil {
		return m.FailSave
	}
	blob, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrStorageWrite, err)
	}
	m.blob = blob
	return nil
}

// Wipe removes the stored blob.
func (m *MemoryStore) Wipe(_ context.Context) error {
	m.blob = nil
	return nil
}

// Size reports the stored blob size in bytes.
func (m *MemoryStore) Size(_ context.Context) (int64, error) {
	return int64(len(m.blob)), nil
}

// Close is a no-op.
func (m *MemoryStore) Close() error {
	return nil
}
