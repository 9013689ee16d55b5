package ledger_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanjelos/kaasi/internal/common"
	"github.com/aanjelos/kaasi/internal/ledger"
	"github.com/aanjelos/kaasi/internal/model"
	"github.com/aanjelos/kaasi/internal/testutil"
)

func TestAddInstallmentPlanDividesEvenly(t *testing.T) {
	ctx := context.Background()
	led, _ := testutil.NewLedger(t, testutil.NewState(t).Build())

	plan, err := led.AddInstallmentPlan(ctx, ledger.InstallmentInput{
		Description: "phone", FullAmount: 120000, TotalMonths: 12, StartDate: "2024-01-15",
	})
	require.NoError(t, err)

	assert.Equal(t, 10000.0, plan.MonthlyAmount)
	assert.Equal(t, 12, plan.MonthsLeft)
	assert.Equal(t, 120000.0, plan.OriginalFullAmount)
}

func TestAddInstallmentPlanMonthsLeftOverride(t *testing.T) {
	ctx := context.Background()
	led, _ := testutil.NewLedger(t, testutil.NewState(t).Build())

	five := 5
	plan, err := led.AddInstallmentPlan(ctx, ledger.InstallmentInput{
		Description: "laptop", FullAmount: 240000, TotalMonths: 24, MonthsLeft: &five,
		StartDate: "2023-06-01",
	})
	require.NoError(t, err)
	assert.Equal(t, 5, plan.MonthsLeft)

	// Out-of-range overrides fall back to the full term.
	bad := 30
	plan, err = led.AddInstallmentPlan(ctx, ledger.InstallmentInput{
		Description: "fridge", FullAmount: 60000, TotalMonths: 6, MonthsLeft: &bad,
		StartDate: "2024-01-01",
	})
	require.NoError(t, err)
	assert.Equal(t, 6, plan.MonthsLeft)
}

func TestAddInstallmentPlanValidation(t *testing.T) {
	ctx := context.Background()
	led, _ := testutil.NewLedger(t, testutil.NewState(t).Build())

	_, err := led.AddInstallmentPlan(ctx, ledger.InstallmentInput{
		Description: "phone", FullAmount: 1000, TotalMonths: 0, StartDate: "2024-01-01",
	})
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = led.AddInstallmentPlan(ctx, ledger.InstallmentInput{
		Description: " ", FullAmount: 1000, TotalMonths: 6, StartDate: "2024-01-01",
	})
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestPayInstallmentMonthLogsExpense(t *testing.T) {
	ctx := context.Background()
	led, _ := testutil.NewLedger(t, testutil.NewState(t).WithBalance("bank_1", 50000).Build())

	plan, err := led.AddInstallmentPlan(ctx, ledger.InstallmentInput{
		Description: "phone", FullAmount: 60000, TotalMonths: 6, StartDate: "2024-01-15",
	})
	require.NoError(t, err)

	tx, err := led.PayInstallmentMonth(ctx, plan.ID, "bank_1", "Shopping")
	require.NoError(t, err)

	assert.Equal(t, 40000.0, led.State().Account("bank_1").Balance)
	assert.Equal(t, 5, led.State().Installment(plan.ID).MonthsLeft)
	assert.Equal(t, model.TypeExpense, tx.Type)
	assert.Equal(t, "Installment: phone (Month 1/6)", tx.Description)
	assert.Equal(t, "Shopping", tx.Category)
}

func TestPayInstallmentFinalMonthRemovesPlan(t *testing.T) {
	ctx := context.Background()
	led, _ := testutil.NewLedger(t, testutil.NewState(t).WithBalance("bank_1", 100000).Build())

	one := 1
	plan, err := led.AddInstallmentPlan(ctx, ledger.InstallmentInput{
		Description: "tv", FullAmount: 36000, TotalMonths: 12, MonthsLeft: &one,
		StartDate: "2023-03-01",
	})
	require.NoError(t, err)

	tx, err := led.PayInstallmentMonth(ctx, plan.ID, "bank_1", "Shopping")
	require.NoError(t, err)
	assert.Equal(t, "Installment: tv (Month 12/12)", tx.Description)
	assert.Nil(t, led.State().Installment(plan.ID))
}

func TestPayInstallmentBlockedByInsufficientFunds(t *testing.T) {
	ctx := context.Background()
	led, _ := testutil.NewLedger(t, testutil.NewState(t).WithBalance("bank_1", 500).Build())

	plan, err := led.AddInstallmentPlan(ctx, ledger.InstallmentInput{
		Description: "phone", FullAmount: 60000, TotalMonths: 6, StartDate: "2024-01-15",
	})
	require.NoError(t, err)

	_, err = led.PayInstallmentMonth(ctx, plan.ID, "bank_1", "Shopping")
	assert.ErrorIs(t, err, common.ErrInsufficientFunds)
	assert.Equal(t, 6, led.State().Installment(plan.ID).MonthsLeft)
	assert.Empty(t, led.State().Transactions)
}

func TestEditInstallmentPlanRecomputesMonthly(t *testing.T) {
	ctx := context.Background()
	led, _ := testutil.NewLedger(t, testutil.NewState(t).Build())

	plan, err := led.AddInstallmentPlan(ctx, ledger.InstallmentInput{
		Description: "phone", FullAmount: 60000, TotalMonths: 6, StartDate: "2024-01-15",
	})
	require.NoError(t, err)

	three := 3
	updated, err := led.EditInstallmentPlan(ctx, plan.ID, ledger.InstallmentInput{
		Description: "phone (renegotiated)", FullAmount: 48000, TotalMonths: 8, MonthsLeft: &three,
		StartDate: "2024-01-15",
	})
	require.NoError(t, err)
	assert.Equal(t, 6000.0, updated.MonthlyAmount)
	assert.Equal(t, 3, updated.MonthsLeft)
}

func TestDeleteInstallmentPlanKeepsPaidMonths(t *testing.T) {
	ctx := context.Background()
	led, _ := testutil.NewLedger(t, testutil.NewState(t).WithBalance("bank_1", 50000).Build())

	plan, err := led.AddInstallmentPlan(ctx, ledger.InstallmentInput{
		Description: "phone", FullAmount: 60000, TotalMonths: 6, StartDate: "2024-01-15",
	})
	require.NoError(t, err)
	_, err = led.PayInstallmentMonth(ctx, plan.ID, "bank_1", "Shopping")
	require.NoError(t, err)

	require.NoError(t, led.DeleteInstallmentPlan(ctx, plan.ID))
	assert.Nil(t, led.State().Installment(plan.ID))
	// The month already paid stays on the ledger.
	require.Len(t, led.State().Transactions, 1)
	assert.Equal(t, 40000.0, led.State().Account("bank_1").Balance)
}

func TestInstallmentMonthlyAmountPrecision(t *testing.T) {
	ctx := context.Background()
	led, _ := testutil.NewLedger(t, testutil.NewState(t).Build())

	plan, err := led.AddInstallmentPlan(ctx, ledger.InstallmentInput{
		Description: "odd split", FullAmount: 100, TotalMonths: 3, StartDate: "2024-01-01",
	})
	require.NoError(t, err)
	assert.InDelta(t, 33.3333, plan.MonthlyAmount, 0.001,
		fmt.Sprintf("monthly amount %v should be a third of 100", plan.MonthlyAmount))
}
