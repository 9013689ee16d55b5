package schema

import (
	"log/slog"
	"math"

	"github.com/aanjelos/kaasi/internal/model"
)

// Repair normalizes a state in place so it is structurally valid:
// collections exist, the mandatory accounts are present with sane fields,
// the category list carries its sentinel, and legacy records get their
// derived fields back-filled. It never fails and running it twice
// produces the same state as running it once.
func Repair(s *model.State) {
	ensureCollections(s)
	ensureDefaultAccounts(s)
	ensureDefaultCategories(s)

	if !isFinite(s.CreditCard.Limit) {
		slog.Warn("credit limit was invalid, resetting to 0")
		s.CreditCard.Limit = 0
	}

	for i := range s.CreditCard.Transactions {
		t := &s.CreditCard.Transactions[i]
		if !isFinite(t.PaidAmount) {
			t.PaidAmount = 0
		}
		t.PaidOff = t.PaidAmount >= t.Amount-model.AmountTolerance
		if t.Timestamp == 0 {
			t.Timestamp = model.TimestampFromDate(t.Date)
		}
	}

	for i := range s.Transactions {
		if s.Transactions[i].Timestamp == 0 {
			s.Transactions[i].Timestamp = model.TimestampFromDate(s.Transactions[i].Date)
		}
	}

	for i := range s.Debts {
		d := &s.Debts[i]
		if d.Timestamp == 0 {
			d.Timestamp = model.TimestampFromDate(d.DueDate)
		}
		if d.OriginalAmount == 0 {
			d.OriginalAmount = d.Amount
		}
	}

	for i := range s.Receivables {
		r := &s.Receivables[i]
		if r.Timestamp == 0 {
			r.Timestamp = model.TimestampFromDate(r.DateGiven)
		}
		if r.OriginalAmount == 0 {
			r.OriginalAmount = r.Amount
		}
	}

	for i := range s.Installments {
		if s.Installments[i].Timestamp == 0 {
			s.Installments[i].Timestamp = model.TimestampFromDate(s.Installments[i].StartDate)
		}
	}
}

func ensureCollections(s *model.State) {
	if s.Transactions == nil {
		s.Transactions = []model.Transaction{}
	}
	if s.Accounts == nil {
		s.Accounts = []model.Account{}
	}
	if s.Categories == nil {
		s.Categories = []string{}
	}
	if s.Debts == nil {
		s.Debts = []model.Debt{}
	}
	if s.Receivables == nil {
		s.Receivables = []model.Receivable{}
	}
	if s.Installments == nil {
		s.Installments = []model.Installment{}
	}
	if s.CreditCard.Transactions == nil {
		s.CreditCard.Transactions = []model.CreditCardTransaction{}
	}
}

// ensureDefaultAccounts restores any missing mandatory account with a
// zero balance and heals corrupted fields on the ones present. Accounts
// outside the mandatory set are never removed.
func ensureDefaultAccounts(s *model.State) {
	for _, def := range model.DefaultAccounts() {
		existing := s.Account(def.ID)
		if existing == nil {
			slog.Warn("mandatory account was missing, restoring", "account", def.ID)
			s.Accounts = append(s.Accounts, model.Account{ID: def.ID, Name: def.Name, Balance: 0})
			continue
		}
		if existing.Name == "" {
			existing.Name = def.Name
		}
		if !isFinite(existing.Balance) {
			slog.Warn("account balance was invalid, resetting to 0", "account", existing.ID)
			existing.Balance = 0
		}
	}
	// The cash account's name is not user-editable.
	if acc := s.Account(model.AccountCash); acc != nil {
		acc.Name = "Cash"
	}
}

// ensureDefaultCategories repopulates the category list only when it is
// entirely empty, so deliberate deletions survive reloads. The sentinel
// category is always guaranteed.
func ensureDefaultCategories(s *model.State) {
	if len(s.Categories) == 0 {
		slog.Warn("category list was empty, restoring defaults")
		s.Categories = append([]string{}, model.DefaultCategories...)
	}
	model.SortCategories(s.Categories)

	if !s.HasCategory(model.SentinelCategory) {
		slog.Warn("sentinel category was missing, restoring")
		s.Categories = append(s.Categories, model.SentinelCategory)
		model.SortCategories(s.Categories)
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
