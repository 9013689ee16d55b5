package ledger

import (
	"context"
	"math"
	"strings"

	"github.com/aanjelos/kaasi/internal/common"
	"github.com/aanjelos/kaasi/internal/model"
)

// AccountUpdate is one row of a bulk account edit.
type AccountUpdate struct {
	ID      string
	Name    string
	Balance float64
}

// UpdateAccounts renames and re-balances accounts in one batch. Every
// row is validated before any write, so a single bad row rejects the
// whole batch with no partial state. The cash account's name is fixed
// and its row may only change the balance.
//
// Completing a bulk edit implies the app is configured, so it also
// marks initial setup as done.
func (l *Ledger) UpdateAccounts(ctx context.Context, updates []AccountUpdate) error {
	if len(updates) == 0 {
		return common.Invalidf("accounts", "no rows to update")
	}

	// Resolve and validate every row first.
	resolved := make([]*model.Account, len(updates))
	for i, row := range updates {
		acc := l.state.Account(row.ID)
		if acc == nil {
			return common.NotFoundf("account", row.ID)
		}
		resolved[i] = acc

		if math.IsNaN(row.Balance) || math.IsInf(row.Balance, 0) {
			return common.Invalidf("balance", "invalid balance for account %q", acc.Name)
		}

		if row.ID == model.AccountCash {
			continue
		}
		name := strings.TrimSpace(row.Name)
		if name == "" {
			return common.Invalidf("name", "account name for %q cannot be empty", row.ID)
		}
		if l.nameTaken(name, row.ID, updates) {
			return common.Invalidf("name", "account name %q already exists", name)
		}
	}

	for i, row := range updates {
		acc := resolved[i]
		if row.ID != model.AccountCash {
			acc.Name = strings.TrimSpace(row.Name)
		}
		acc.Balance = row.Balance
	}

	// Managing accounts implies setup is complete.
	l.state.Settings.InitialSetupDone = true

	return l.persist(ctx)
}

// nameTaken checks the proposed name against both existing accounts and
// the other rows of the same batch.
func (l *Ledger) nameTaken(name, selfID string, updates []AccountUpdate) bool {
	for i := range l.state.Accounts {
		acc := &l.state.Accounts[i]
		if acc.ID != selfID && !updatedInBatch(acc.ID, updates) && strings.EqualFold(acc.Name, name) {
			return true
		}
	}
	for _, row := range updates {
		if row.ID != selfID && row.ID != model.AccountCash && strings.EqualFold(strings.TrimSpace(row.Name), name) {
			return true
		}
	}
	return false
}

func updatedInBatch(id string, updates []AccountUpdate) bool {
	for _, row := range updates {
		if row.ID == id {
			return true
		}
	}
	return false
}
