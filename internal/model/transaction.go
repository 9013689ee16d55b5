package model

// TransactionType distinguishes money entering an account from money
// leaving it.
type TransactionType string

// Transaction types.
const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction is a single income or expense entry against an account.
// Category is required for expenses and empty for income. Date is a
// calendar date in YYYY-MM-DD form; Timestamp is the creation instant in
// milliseconds since the epoch.
//
// LinkedCCTransactionID is set on expense transactions logged as payments
// toward a credit-card item, so deleting the item can remove its payment
// records by id instead of matching description text.
type Transaction struct {
	ID                    string          `json:"id"`
	Type                  TransactionType `json:"type"`
	Amount                float64         `json:"amount"`
	Account               string          `json:"account"`
	Category              string          `json:"category,omitempty"`
	Description           string          `json:"description"`
	Date                  string          `json:"date"`
	Timestamp             int64           `json:"timestamp"`
	LinkedCCTransactionID string          `json:"linkedCcTransactionId,omitempty"`
}

// Signed returns the amount with income positive and expense negative.
func (t *Transaction) Signed() float64 {
	if t.Type == TypeIncome {
		return t.Amount
	}
	return -t.Amount
}
