// Package backup exports the state tree to a human-readable JSON
// document and imports such documents back through the merge/repair
// pipeline.
package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aanjelos/kaasi/internal/common"
	"github.com/aanjelos/kaasi/internal/model"
	"github.com/aanjelos/kaasi/internal/schema"
)

// Filename returns the timestamped backup filename for the given
// instant, e.g. kaasi-backup-2026-09-01-14-05-33.json.
func Filename(now time.Time) string {
	return fmt.Sprintf("kaasi-backup-%s.json", now.Format("2006-01-02-15-04-05"))
}

// Export writes the whole state tree as indented JSON into dir and
// returns the file path.
func Export(state *model.State, dir string) (string, error) {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize state: %w", err)
	}

	path := filepath.Join(dir, Filename(time.Now()))
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}
	return path, nil
}

// requiredSections are the top-level collections an import document must
// carry to be accepted.
var requiredSections = []string{"accounts", "transactions", "categories", "creditCard"}

// Import reads and validates a backup document, returning the fully
// repaired state it describes. On any structural mismatch it returns an
// error wrapping common.ErrImportValidation and no state; the caller's
// current state is untouched. A successful import always replaces the
// current state wholesale.
func Import(path string) (*model.State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup: %w", err)
	}
	return Decode(data)
}

// Decode validates and decodes a backup document held in memory.
func Decode(data []byte) (*model.State, error) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: not a JSON object: %v", common.ErrImportValidation, err)
	}
	for _, section := range requiredSections {
		if _, ok := doc[section]; !ok {
			return nil, fmt.Errorf("%w: missing %q", common.ErrImportValidation, section)
		}
	}

	state, err := schema.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrImportValidation, err)
	}
	return state, nil
}
