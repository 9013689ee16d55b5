package model

// Well-known account ids. These are fixed constants that round-trip
// through export/import/merge unchanged.
const (
	AccountCash  = "cash"
	AccountBank1 = "bank_1"
	AccountBank2 = "bank_2"
	AccountBank3 = "bank_3"
)

// Account is a cash or bank account. The four mandatory accounts are
// created at state initialization and never deleted; only the cash
// account's name is fixed.
type Account struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Balance float64 `json:"balance"`
}

// DefaultAccounts returns the four mandatory accounts with zero balances.
func DefaultAccounts() []Account {
	return []Account{
		{ID: AccountCash, Name: "Cash", Balance: 0},
		{ID: AccountBank1, Name: "Commercial", Balance: 0},
		{ID: AccountBank2, Name: "HNB", Balance: 0},
		{ID: AccountBank3, Name: "Genie", Balance: 0},
	}
}
