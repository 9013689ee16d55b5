// Package testutil provides shared fixtures for ledger tests: a fluent
// state builder and an in-memory ledger wired for cleanup.
package testutil

import (
	"context"
	"testing"

	"github.com/aanjelos/kaasi/internal/ledger"
	"github.com/aanjelos/kaasi/internal/model"
	"github.com/aanjelos/kaasi/internal/storage"
)

// StateBuilder assembles a model.State for tests. The zero starting
// point is the default state with initial setup marked done, which is
// the shape every post-setup operation expects.
type StateBuilder struct {
	t     *testing.T
	state *model.State
}

// NewState starts a builder from a configured default state.
func NewState(t *testing.T) *StateBuilder {
	t.Helper()
	s := model.DefaultState()
	s.Settings.InitialSetupDone = true
	return &StateBuilder{t: t, state: s}
}

// WithBalance sets an account's balance.
func (b *StateBuilder) WithBalance(accountID string, balance float64) *StateBuilder {
	acc := b.state.Account(accountID)
	if acc == nil {
		b.t.Fatalf("unknown account %q", accountID)
	}
	acc.Balance = balance
	return b
}

// WithCategory appends a category.
func (b *StateBuilder) WithCategory(name string) *StateBuilder {
	b.state.Categories = append(b.state.Categories, name)
	model.SortCategories(b.state.Categories)
	return b
}

// WithCreditCard enables the credit-card section with the given limit.
func (b *StateBuilder) WithCreditCard(limit float64) *StateBuilder {
	b.state.CreditCard.Limit = limit
	b.state.Settings.ShowCCDashboardSection = true
	return b
}

// WithTransaction appends a prebuilt transaction without touching
// balances; callers set those explicitly via WithBalance.
func (b *StateBuilder) WithTransaction(tx model.Transaction) *StateBuilder {
	b.state.Transactions = append(b.state.Transactions, tx)
	return b
}

// WithDebt appends a prebuilt debt.
func (b *StateBuilder) WithDebt(d model.Debt) *StateBuilder {
	b.state.Debts = append(b.state.Debts, d)
	return b
}

// WithReceivable appends a prebuilt receivable.
func (b *StateBuilder) WithReceivable(r model.Receivable) *StateBuilder {
	b.state.Receivables = append(b.state.Receivables, r)
	return b
}

// WithInstallment appends a prebuilt installment plan.
func (b *StateBuilder) WithInstallment(p model.Installment) *StateBuilder {
	b.state.Installments = append(b.state.Installments, p)
	return b
}

// WithCCCharge appends a prebuilt credit-card charge.
func (b *StateBuilder) WithCCCharge(tx model.CreditCardTransaction) *StateBuilder {
	b.state.CreditCard.Transactions = append(b.state.CreditCard.Transactions, tx)
	return b
}

// Build returns the assembled state.
func (b *StateBuilder) Build() *model.State {
	return b.state
}

// NewLedger wires the state to a fresh in-memory store and returns both.
// The store lets tests assert on persistence without a database file.
func NewLedger(t *testing.T, state *model.State) (*ledger.Ledger, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	led := ledger.New(state, store)
	if err := store.Save(context.Background(), state); err != nil {
		t.Fatalf("failed to seed store: %v", err)
	}
	return led, store
}
