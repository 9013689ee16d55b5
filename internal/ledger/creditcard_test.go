package ledger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanjelos/kaasi/internal/common"
	"github.com/aanjelos/kaasi/internal/ledger"
	"github.com/aanjelos/kaasi/internal/model"
	"github.com/aanjelos/kaasi/internal/testutil"
)

func TestSetCreditLimit(t *testing.T) {
	ctx := context.Background()
	led, _ := testutil.NewLedger(t, testutil.NewState(t).Build())

	require.NoError(t, led.SetCreditLimit(ctx, 150000))
	assert.Equal(t, 150000.0, led.State().CreditCard.Limit)

	// Zero disables the facility; negative is rejected.
	require.NoError(t, led.SetCreditLimit(ctx, 0))
	assert.ErrorIs(t, led.SetCreditLimit(ctx, -1), common.ErrInvalidInput)
}

func TestAddCCChargeDoesNotTouchBalances(t *testing.T) {
	ctx := context.Background()
	led, _ := testutil.NewLedger(t, testutil.NewState(t).
		WithBalance("bank_1", 1000).
		WithCreditCard(100000).
		Build())

	item, err := led.AddCCCharge(ctx, ledger.CCChargeInput{
		Amount: 25000, Description: "new monitor", Date: "2024-05-05",
	})
	require.NoError(t, err)

	assert.False(t, item.PaidOff)
	assert.Zero(t, item.PaidAmount)
	assert.Equal(t, 1000.0, led.State().Account("bank_1").Balance)
	assert.Equal(t, 25000.0, led.OutstandingCC())
	assert.Equal(t, 75000.0, led.AvailableCredit())
}

func TestPayCCItemAccumulates(t *testing.T) {
	ctx := context.Background()
	led, _ := testutil.NewLedger(t, testutil.NewState(t).
		WithBalance("bank_1", 30000).
		WithCreditCard(100000).
		Build())

	item, err := led.AddCCCharge(ctx, ledger.CCChargeInput{
		Amount: 25000, Description: "monitor", Date: "2024-05-05",
	})
	require.NoError(t, err)

	require.NoError(t, led.PayCCItem(ctx, ledger.PayCCInput{
		ItemID: item.ID, Amount: 10000, AccountID: "bank_1",
	}))

	assert.Equal(t, 20000.0, led.State().Account("bank_1").Balance)
	assert.Equal(t, 10000.0, led.State().CCTransaction(item.ID).PaidAmount)
	assert.False(t, led.State().CCTransaction(item.ID).PaidOff)
	assert.Equal(t, 15000.0, led.OutstandingCC())
}

func TestPayCCItemSettlesWithinTolerance(t *testing.T) {
	ctx := context.Background()
	led, _ := testutil.NewLedger(t, testutil.NewState(t).
		WithBalance("bank_1", 30000).
		WithCreditCard(100000).
		WithCCCharge(model.CreditCardTransaction{
			ID: "cc-1", Amount: 100, PaidAmount: 99.997, Date: "2024-05-05", Description: "snack",
		}).
		Build())

	require.NoError(t, led.PayCCItem(ctx, ledger.PayCCInput{
		ItemID: "cc-1", Amount: 0.002, AccountID: "bank_1",
	}))

	item := led.State().CCTransaction("cc-1")
	assert.True(t, item.PaidOff)
	// Paid amount snaps to the charge amount once settled.
	assert.Equal(t, item.Amount, item.PaidAmount)
}

func TestPayCCItemLogsLinkedExpense(t *testing.T) {
	ctx := context.Background()
	led, _ := testutil.NewLedger(t, testutil.NewState(t).
		WithBalance("bank_1", 30000).
		WithCreditCard(100000).
		Build())

	item, err := led.AddCCCharge(ctx, ledger.CCChargeInput{
		Amount: 25000, Description: "a fairly long gadget name", Date: "2024-05-05",
	})
	require.NoError(t, err)

	require.NoError(t, led.PayCCItem(ctx, ledger.PayCCInput{
		ItemID: item.ID, Amount: 5000, AccountID: "bank_1",
		LogAsExpense: true, Category: "Shopping",
	}))

	require.Len(t, led.State().Transactions, 1)
	tx := &led.State().Transactions[0]
	assert.Equal(t, item.ID, tx.LinkedCCTransactionID)
	assert.Equal(t, "CC Pmt: a fairly long gadget...", tx.Description)
	assert.Equal(t, "Shopping", tx.Category)
}

func TestPayCCItemRejectsOverpayment(t *testing.T) {
	ctx := context.Background()
	led, _ := testutil.NewLedger(t, testutil.NewState(t).
		WithBalance("bank_1", 30000).
		WithCreditCard(100000).
		WithCCCharge(model.CreditCardTransaction{
			ID: "cc-1", Amount: 1000, PaidAmount: 800, Date: "2024-05-05", Description: "snack",
		}).
		Build())

	err := led.PayCCItem(ctx, ledger.PayCCInput{ItemID: "cc-1", Amount: 300, AccountID: "bank_1"})
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestPayCCItemBlockedByInsufficientFunds(t *testing.T) {
	ctx := context.Background()
	led, _ := testutil.NewLedger(t, testutil.NewState(t).
		WithBalance("bank_1", 100).
		WithCreditCard(100000).
		WithCCCharge(model.CreditCardTransaction{
			ID: "cc-1", Amount: 1000, Date: "2024-05-05", Description: "snack",
		}).
		Build())

	err := led.PayCCItem(ctx, ledger.PayCCInput{ItemID: "cc-1", Amount: 500, AccountID: "bank_1"})
	assert.ErrorIs(t, err, common.ErrInsufficientFunds)
	assert.Zero(t, led.State().CCTransaction("cc-1").PaidAmount)
}

func TestEditCCTransactionClampsPaidAmount(t *testing.T) {
	ctx := context.Background()
	led, _ := testutil.NewLedger(t, testutil.NewState(t).
		WithCreditCard(100000).
		WithCCCharge(model.CreditCardTransaction{
			ID: "cc-1", Amount: 1000, PaidAmount: 800, Date: "2024-05-05", Description: "snack",
		}).
		Build())

	item, err := led.EditCCTransaction(ctx, "cc-1", ledger.CCChargeInput{
		Amount: 500, Description: "snack (corrected)", Date: "2024-05-05",
	})
	require.NoError(t, err)

	// Shrinking below what was already paid marks it settled.
	assert.Equal(t, 500.0, item.PaidAmount)
	assert.True(t, item.PaidOff)
}

func TestDeleteCCTransactionRemovesLinkedExpensesWithoutRefund(t *testing.T) {
	ctx := context.Background()
	led, _ := testutil.NewLedger(t, testutil.NewState(t).
		WithBalance("bank_1", 30000).
		WithCreditCard(100000).
		Build())

	item, err := led.AddCCCharge(ctx, ledger.CCChargeInput{
		Amount: 5000, Description: "gadget", Date: "2024-05-05",
	})
	require.NoError(t, err)
	require.NoError(t, led.PayCCItem(ctx, ledger.PayCCInput{
		ItemID: item.ID, Amount: 2000, AccountID: "bank_1",
		LogAsExpense: true, Category: "Shopping",
	}))

	// An unrelated expense must survive the cascade.
	_, err = led.RecordTransaction(ctx, ledger.TransactionInput{
		Type: model.TypeExpense, Amount: 100, Account: "bank_1",
		Category: "Groceries", Description: "bread", Date: "2024-05-06",
	})
	require.NoError(t, err)

	require.NoError(t, led.DeleteCCTransaction(ctx, item.ID))

	assert.Nil(t, led.State().CCTransaction(item.ID))
	require.Len(t, led.State().Transactions, 1)
	assert.Equal(t, "bread", led.State().Transactions[0].Description)
	// The 2000 paid stays out of the account.
	assert.Equal(t, 27900.0, led.State().Account("bank_1").Balance)
}

func TestOutstandingSkipsPaidOffItems(t *testing.T) {
	led, _ := testutil.NewLedger(t, testutil.NewState(t).
		WithCreditCard(50000).
		WithCCCharge(model.CreditCardTransaction{ID: "a", Amount: 1000, PaidAmount: 1000, PaidOff: true, Date: "2024-01-01", Description: "x"}).
		WithCCCharge(model.CreditCardTransaction{ID: "b", Amount: 3000, PaidAmount: 500, Date: "2024-01-02", Description: "y"}).
		Build())

	assert.Equal(t, 2500.0, led.OutstandingCC())
	assert.Equal(t, 47500.0, led.AvailableCredit())
}
