// Package ledger implements the operations that mutate the kaasi state
// tree while preserving its monetary invariants: every balance-affecting
// operation is a paired effect, applied fully or not at all.
//
// Operations validate everything up front and mutate only after all
// checks pass. Persistence happens synchronously at the end of each
// successful mutation; a failed save is surfaced to the caller but the
// in-memory state remains authoritative.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/aanjelos/kaasi/internal/common"
	"github.com/aanjelos/kaasi/internal/model"
	"github.com/aanjelos/kaasi/internal/schema"
	"github.com/aanjelos/kaasi/internal/service"
)

// Ledger owns a single state tree and the store it persists to. It is
// single-writer: operations run to completion before another starts, so
// no locking is needed.
type Ledger struct {
	state *model.State
	store service.Store
}

// New creates a ledger over an existing state. Used by tests and by
// callers that already decoded a state.
func New(state *model.State, store service.Store) *Ledger {
	return &Ledger{state: state, store: store}
}

// Open loads persisted data from the store and decodes it through the
// merge/repair pipeline. Unparsable data is logged and discarded in
// favor of a fresh default state; only store-level read failures are
// returned.
func Open(ctx context.Context, store service.Store) (*Ledger, error) {
	raw, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}

	state, err := schema.Decode(raw)
	if err != nil {
		if errors.Is(err, common.ErrMalformedData) {
			slog.Warn("persisted data was unparsable, starting fresh", "error", err)
		} else {
			return nil, err
		}
	}
	return &Ledger{state: state, store: store}, nil
}

// State exposes the in-memory state tree for read-only consumption by
// the presentation layer. Callers must not mutate it.
func (l *Ledger) State() *model.State {
	return l.state
}

// persist saves the state after a successful mutation. The mutation has
// already been applied; the returned error only means the save failed
// and the user should be warned that data may be lost.
func (l *Ledger) persist(ctx context.Context) error {
	if err := l.store.Save(ctx, l.state); err != nil {
		slog.Error("failed to persist state", "error", err)
		return err
	}
	return nil
}

// validAmount checks that an amount parses to a finite number > 0.
func validAmount(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return common.Invalidf(field, "must be a positive amount")
	}
	return nil
}

// validLimit allows zero, for fields that are limits rather than amounts.
func validLimit(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return common.Invalidf(field, "must be zero or a positive amount")
	}
	return nil
}

func requireString(field, v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", common.Invalidf(field, "cannot be empty")
	}
	return v, nil
}

func validDate(field, v string) error {
	if model.TimestampFromDate(v) == 0 {
		return common.Invalidf(field, "must be a date in YYYY-MM-DD form")
	}
	return nil
}

// requireAccount resolves an account id or rejects with NotFound.
func (l *Ledger) requireAccount(id string) (*model.Account, error) {
	acc := l.state.Account(id)
	if acc == nil {
		return nil, common.NotFoundf("account", id)
	}
	return acc, nil
}

// requireCategory checks that a referenced category exists.
func (l *Ledger) requireCategory(field, name string) (string, error) {
	name, err := requireString(field, name)
	if err != nil {
		return "", err
	}
	if !l.state.HasCategory(name) {
		return "", common.NotFoundf("category", name)
	}
	return name, nil
}

// insufficient rejects discretionary cash movements that the account
// cannot cover.
func insufficient(acc *model.Account, amount float64) error {
	if acc.Balance < amount {
		return fmt.Errorf("%w: %s has %.2f, need %.2f",
			common.ErrInsufficientFunds, acc.Name, acc.Balance, amount)
	}
	return nil
}
