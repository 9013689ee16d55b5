package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanjelos/kaasi/internal/common"
	"github.com/aanjelos/kaasi/internal/model"
)

func TestDecodeEmptyBlobReturnsDefaults(t *testing.T) {
	state, err := Decode(nil)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultState(), state)
}

func TestDecodeUnparsableBlobFallsBackToDefaults(t *testing.T) {
	state, err := Decode([]byte("{not json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrMalformedData)
	require.NotNil(t, state)
	assert.False(t, state.Settings.InitialSetupDone)
	assert.Len(t, state.Accounts, 4)
}

func TestDecodeRoundTripsACompleteState(t *testing.T) {
	orig := model.DefaultState()
	orig.Settings.InitialSetupDone = true
	orig.Accounts[0].Balance = 1234.56
	orig.Transactions = append(orig.Transactions, model.Transaction{
		ID: "t1", Type: model.TypeExpense, Amount: 250, Account: model.AccountCash,
		Category: "Groceries", Description: "market", Date: "2024-03-10", Timestamp: 1710028800000,
	})
	blob, err := json.Marshal(orig)
	require.NoError(t, err)

	state, err := Decode(blob)
	require.NoError(t, err)
	assert.Equal(t, orig, state)
}

func TestDecodeBackfillsMissingSettings(t *testing.T) {
	// A blob persisted before the settings section existed.
	blob := []byte(`{
		"transactions": [],
		"accounts": [{"id": "cash", "name": "Cash", "balance": 500}],
		"categories": ["Other"],
		"creditCard": {"limit": 0, "transactions": []}
	}`)

	state, err := Decode(blob)
	require.NoError(t, err)

	// Missing sections come from defaults; present data survives.
	assert.False(t, state.Settings.InitialSetupDone)
	assert.Equal(t, "dark", state.Settings.Theme)
	assert.Equal(t, 500.0, state.Account(model.AccountCash).Balance)
	assert.NotNil(t, state.Debts)
	assert.NotNil(t, state.Receivables)
}

func TestDecodeKeepsExplicitSettingValues(t *testing.T) {
	blob := []byte(`{"settings": {"initialSetupDone": true, "showCcDashboardSection": false}}`)

	state, err := Decode(blob)
	require.NoError(t, err)
	assert.True(t, state.Settings.InitialSetupDone)
	assert.False(t, state.Settings.ShowCCDashboardSection)
}

func TestDecodeDropsUndecodableRecords(t *testing.T) {
	blob := []byte(`{"transactions": [
		{"id": "good", "type": "expense", "amount": 10, "account": "cash", "description": "ok", "date": "2024-01-05"},
		{"id": "bad", "amount": "not a number"},
		"not even an object"
	]}`)

	state, err := Decode(blob)
	require.NoError(t, err)
	require.Len(t, state.Transactions, 1)
	assert.Equal(t, "good", state.Transactions[0].ID)
}

func TestDecodeHealsCorruptedAccountBalance(t *testing.T) {
	blob := []byte(`{"accounts": [
		{"id": "cash", "name": "Cash", "balance": {"weird": true}},
		{"id": "bank_1", "name": "Commercial", "balance": "750.25"}
	]}`)

	state, err := Decode(blob)
	require.NoError(t, err)

	// The unreadable balance resets to zero; the account itself survives.
	assert.Equal(t, 0.0, state.Account(model.AccountCash).Balance)
	// A numeric string coerces.
	assert.Equal(t, 750.25, state.Account("bank_1").Balance)
}

func TestDecodeResetsNonArraySections(t *testing.T) {
	blob := []byte(`{"debts": "corrupted", "categories": 42}`)

	state, err := Decode(blob)
	require.NoError(t, err)
	assert.Empty(t, state.Debts)
	// An emptied category list is repopulated with the defaults.
	assert.True(t, state.HasCategory(model.SentinelCategory))
}

func TestDecodeRestoresMissingMandatoryAccounts(t *testing.T) {
	blob := []byte(`{"accounts": [{"id": "cash", "name": "Cash", "balance": 100}]}`)

	state, err := Decode(blob)
	require.NoError(t, err)
	require.Len(t, state.Accounts, 4)
	assert.Equal(t, 100.0, state.Account(model.AccountCash).Balance)
	assert.Equal(t, 0.0, state.Account("bank_3").Balance)
}
