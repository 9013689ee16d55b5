package ledger_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanjelos/kaasi/internal/common"
	"github.com/aanjelos/kaasi/internal/ledger"
	"github.com/aanjelos/kaasi/internal/model"
	"github.com/aanjelos/kaasi/internal/testutil"
)

func TestUpdateAccountsBatch(t *testing.T) {
	ctx := context.Background()
	led, _ := testutil.NewLedger(t, testutil.NewState(t).Build())

	err := led.UpdateAccounts(ctx, []ledger.AccountUpdate{
		{ID: model.AccountCash, Balance: 2500},
		{ID: "bank_1", Name: "Commercial Savings", Balance: 80000},
		{ID: "bank_2", Name: "HNB Current", Balance: 15000},
	})
	require.NoError(t, err)

	assert.Equal(t, 2500.0, led.State().Account(model.AccountCash).Balance)
	assert.Equal(t, "Commercial Savings", led.State().Account("bank_1").Name)
	assert.Equal(t, 15000.0, led.State().Account("bank_2").Balance)
	// The untouched account keeps its values.
	assert.Equal(t, "Genie", led.State().Account("bank_3").Name)
}

func TestUpdateAccountsAllOrNothing(t *testing.T) {
	ctx := context.Background()
	led, _ := testutil.NewLedger(t, testutil.NewState(t).Build())

	err := led.UpdateAccounts(ctx, []ledger.AccountUpdate{
		{ID: "bank_1", Name: "Valid Rename", Balance: 100},
		{ID: "bank_2", Name: "  ", Balance: 200},
	})
	require.Error(t, err)

	// The valid first row must not have been applied.
	assert.Equal(t, "Commercial", led.State().Account("bank_1").Name)
	assert.Zero(t, led.State().Account("bank_1").Balance)
}

func TestUpdateAccountsRejectsDuplicateNames(t *testing.T) {
	ctx := context.Background()
	led, _ := testutil.NewLedger(t, testutil.NewState(t).Build())

	// Clashing with an existing account's name.
	err := led.UpdateAccounts(ctx, []ledger.AccountUpdate{
		{ID: "bank_1", Name: "hnb", Balance: 0},
	})
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	// Clashing inside the batch itself.
	err = led.UpdateAccounts(ctx, []ledger.AccountUpdate{
		{ID: "bank_1", Name: "Same", Balance: 0},
		{ID: "bank_2", Name: "same", Balance: 0},
	})
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestUpdateAccountsCashNameIsFixed(t *testing.T) {
	ctx := context.Background()
	led, _ := testutil.NewLedger(t, testutil.NewState(t).Build())

	err := led.UpdateAccounts(ctx, []ledger.AccountUpdate{
		{ID: model.AccountCash, Name: "Wallet", Balance: 300},
	})
	require.NoError(t, err)

	// The balance applies, the rename is ignored.
	assert.Equal(t, "Cash", led.State().Account(model.AccountCash).Name)
	assert.Equal(t, 300.0, led.State().Account(model.AccountCash).Balance)
}

func TestUpdateAccountsRejectsBadValues(t *testing.T) {
	ctx := context.Background()
	led, _ := testutil.NewLedger(t, testutil.NewState(t).Build())

	assert.Error(t, led.UpdateAccounts(ctx, nil))
	assert.ErrorIs(t, led.UpdateAccounts(ctx, []ledger.AccountUpdate{
		{ID: "bank_9", Name: "Ghost", Balance: 0},
	}), common.ErrNotFound)
	assert.ErrorIs(t, led.UpdateAccounts(ctx, []ledger.AccountUpdate{
		{ID: "bank_1", Name: "Ok", Balance: math.NaN()},
	}), common.ErrInvalidInput)
}

func TestUpdateAccountsMarksSetupDone(t *testing.T) {
	ctx := context.Background()
	state := testutil.NewState(t).Build()
	state.Settings.InitialSetupDone = false
	led, _ := testutil.NewLedger(t, state)

	require.NoError(t, led.UpdateAccounts(ctx, []ledger.AccountUpdate{
		{ID: model.AccountCash, Balance: 100},
	}))
	assert.True(t, led.SetupDone())
}
