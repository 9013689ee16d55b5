package ledger

import (
	"context"
	"math"
	"strings"

	"github.com/aanjelos/kaasi/internal/common"
	"github.com/aanjelos/kaasi/internal/model"
)

// SetupInput collects the first-run configuration: account names and
// opening balances, optional credit-card enablement, and a starting
// category list (defaults when empty).
type SetupInput struct {
	AccountNames    map[string]string  // account id -> display name
	OpeningBalances map[string]float64 // account id -> balance
	EnableCC        bool
	CCLimit         float64
	Categories      []string
}

// InitialSetup builds a fresh state from the wizard's answers and marks
// setup as done. It runs exactly once per persisted state: a second call
// is rejected until the data is wiped.
func (l *Ledger) InitialSetup(ctx context.Context, in SetupInput) error {
	if l.state.Settings.InitialSetupDone {
		return common.Invalidf("setup", "already completed; wipe all data to run again")
	}

	state := model.DefaultState()

	for i := range state.Accounts {
		acc := &state.Accounts[i]
		if acc.ID != model.AccountCash {
			if name := strings.TrimSpace(in.AccountNames[acc.ID]); name != "" {
				acc.Name = name
			}
		}
		if bal, ok := in.OpeningBalances[acc.ID]; ok && !math.IsNaN(bal) && !math.IsInf(bal, 0) {
			acc.Balance = bal
		}
	}

	state.Settings.ShowCCDashboardSection = in.EnableCC
	if in.EnableCC && in.CCLimit > 0 {
		state.CreditCard.Limit = in.CCLimit
	}

	var cats []string
	for _, c := range in.Categories {
		if c = strings.TrimSpace(c); c != "" {
			cats = append(cats, c)
		}
	}
	if len(cats) > 0 {
		state.Categories = cats
		if !state.HasCategory(model.SentinelCategory) {
			state.Categories = append(state.Categories, model.SentinelCategory)
		}
		model.SortCategories(state.Categories)
	}

	state.Settings.InitialSetupDone = true
	*l.state = *state

	return l.persist(ctx)
}

// SetupDone reports whether first-run setup has completed for this
// state.
func (l *Ledger) SetupDone() bool {
	return l.state.Settings.InitialSetupDone
}
