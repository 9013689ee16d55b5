package schema

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanjelos/kaasi/internal/model"
)

func TestRepairIsIdempotent(t *testing.T) {
	s := &model.State{
		Accounts:   []model.Account{{ID: model.AccountCash, Name: "Wallet", Balance: math.NaN()}},
		Categories: []string{"zeta", "Alpha"},
		Debts:      []model.Debt{{ID: "d1", Amount: 100, DueDate: "2024-01-01"}},
		CreditCard: model.CreditCard{
			Limit:        math.Inf(1),
			Transactions: []model.CreditCardTransaction{{ID: "c1", Amount: 50, PaidAmount: 50}},
		},
	}

	Repair(s)
	once := *s
	onceCats := append([]string{}, s.Categories...)

	Repair(s)
	assert.Equal(t, once.CreditCard.Limit, s.CreditCard.Limit)
	assert.Equal(t, onceCats, s.Categories)
	assert.Equal(t, once.Debts, s.Debts)
	assert.Len(t, s.Accounts, 4)
}

func TestRepairCreatesMissingCollections(t *testing.T) {
	s := &model.State{}
	Repair(s)

	assert.NotNil(t, s.Transactions)
	assert.NotNil(t, s.Debts)
	assert.NotNil(t, s.Receivables)
	assert.NotNil(t, s.Installments)
	assert.NotNil(t, s.CreditCard.Transactions)
	assert.Len(t, s.Accounts, 4)
	assert.NotEmpty(t, s.Categories)
}

func TestRepairFixesCashAccountName(t *testing.T) {
	s := &model.State{
		Accounts: []model.Account{{ID: model.AccountCash, Name: "Renamed", Balance: 10}},
	}
	Repair(s)
	assert.Equal(t, "Cash", s.Account(model.AccountCash).Name)
	assert.Equal(t, 10.0, s.Account(model.AccountCash).Balance)
}

func TestRepairKeepsCustomBankNames(t *testing.T) {
	s := &model.State{
		Accounts: []model.Account{
			{ID: model.AccountCash, Name: "Cash"},
			{ID: model.AccountBank1, Name: "My Savings", Balance: 5000},
		},
	}
	Repair(s)
	assert.Equal(t, "My Savings", s.Account(model.AccountBank1).Name)
}

func TestRepairRespectsDeliberateCategoryDeletions(t *testing.T) {
	s := &model.State{Categories: []string{"Groceries", model.SentinelCategory}}
	Repair(s)
	// A trimmed but non-empty list is not repopulated.
	assert.Equal(t, []string{"Groceries", model.SentinelCategory}, s.Categories)
}

func TestRepairRestoresSentinelCategory(t *testing.T) {
	s := &model.State{Categories: []string{"Groceries"}}
	Repair(s)
	assert.True(t, s.HasCategory(model.SentinelCategory))
}

func TestRepairDerivesPaidOff(t *testing.T) {
	s := &model.State{
		CreditCard: model.CreditCard{Transactions: []model.CreditCardTransaction{
			{ID: "full", Amount: 100, PaidAmount: 100, PaidOff: false},
			{ID: "near", Amount: 100, PaidAmount: 99.996, PaidOff: false},
			{ID: "partial", Amount: 100, PaidAmount: 40, PaidOff: true},
		}},
	}
	Repair(s)

	assert.True(t, s.CCTransaction("full").PaidOff)
	assert.True(t, s.CCTransaction("near").PaidOff)
	// A stale true flag is corrected back to false.
	assert.False(t, s.CCTransaction("partial").PaidOff)
}

func TestRepairBackfillsTimestampsAndOriginals(t *testing.T) {
	s := &model.State{
		Transactions: []model.Transaction{{ID: "t1", Date: "2023-05-20"}},
		Debts:        []model.Debt{{ID: "d1", Amount: 300, DueDate: "2023-06-01"}},
		Receivables:  []model.Receivable{{ID: "r1", Amount: 150, DateGiven: "2023-04-01"}},
		Installments: []model.Installment{{ID: "i1", StartDate: "2023-01-01"}},
	}
	Repair(s)

	assert.Equal(t, model.TimestampFromDate("2023-05-20"), s.Transactions[0].Timestamp)
	assert.Equal(t, model.TimestampFromDate("2023-06-01"), s.Debts[0].Timestamp)
	assert.Equal(t, 300.0, s.Debts[0].OriginalAmount)
	assert.Equal(t, 150.0, s.Receivables[0].OriginalAmount)
	assert.Equal(t, model.TimestampFromDate("2023-01-01"), s.Installments[0].Timestamp)

	// Records that already carry the fields keep them.
	require.NotZero(t, s.Receivables[0].Timestamp)
	before := s.Receivables[0].Timestamp
	Repair(s)
	assert.Equal(t, before, s.Receivables[0].Timestamp)
}
