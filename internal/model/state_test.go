package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultState(t *testing.T) {
	s := DefaultState()

	require.Len(t, s.Accounts, 4)
	assert.Equal(t, "Cash", s.Accounts[0].Name)
	for _, acc := range s.Accounts {
		assert.Zero(t, acc.Balance)
	}

	assert.Len(t, s.Categories, len(DefaultCategories))
	assert.True(t, s.HasCategory(SentinelCategory))
	assert.False(t, s.Settings.InitialSetupDone)
	assert.True(t, s.Settings.ShowCCDashboardSection)

	// Each call returns an independent copy.
	s.Categories[0] = "mutated"
	s.Accounts[0].Balance = 99
	fresh := DefaultState()
	assert.NotEqual(t, "mutated", fresh.Categories[0])
	assert.Zero(t, fresh.Accounts[0].Balance)
}

func TestStateLookups(t *testing.T) {
	s := DefaultState()
	s.Transactions = append(s.Transactions, Transaction{ID: "t1"})
	s.Debts = append(s.Debts, Debt{ID: "d1"})

	assert.NotNil(t, s.Account(AccountCash))
	assert.Nil(t, s.Account("bank_9"))
	assert.NotNil(t, s.Transaction("t1"))
	assert.Nil(t, s.Transaction("t2"))
	assert.NotNil(t, s.Debt("d1"))
	assert.Nil(t, s.Debt("d2"))

	// Lookups return pointers into the tree, not copies.
	s.Account(AccountCash).Balance = 42.5
	assert.Equal(t, 42.5, s.Accounts[0].Balance)
}

func TestHasCategoryIsCaseInsensitive(t *testing.T) {
	s := DefaultState()
	assert.True(t, s.HasCategory("groceries"))
	assert.True(t, s.HasCategory("GROCERIES"))
	assert.False(t, s.HasCategory("Rocket Fuel"))
}

func TestSortCategories(t *testing.T) {
	cats := []string{"travel", "Bank Charges", "Apple", "apple", "Travel"}
	SortCategories(cats)
	assert.Equal(t, []string{"Apple", "apple", "Bank Charges", "Travel", "travel"}, cats)
}

func TestTransactionSigned(t *testing.T) {
	income := Transaction{Type: TypeIncome, Amount: 100}
	expense := Transaction{Type: TypeExpense, Amount: 40}
	assert.Equal(t, 100.0, income.Signed())
	assert.Equal(t, -40.0, expense.Signed())
}

func TestCCTransactionRemaining(t *testing.T) {
	tx := CreditCardTransaction{Amount: 1000, PaidAmount: 250}
	assert.Equal(t, 750.0, tx.Remaining())
}
