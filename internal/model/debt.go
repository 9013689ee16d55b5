package model

// Debt is money the user owes. OriginalAmount is fixed at creation;
// RemainingAmount only decreases via payments. The record is removed once
// the remaining amount settles to zero. Amount mirrors OriginalAmount for
// compatibility with previously persisted data.
type Debt struct {
	ID              string  `json:"id"`
	Who             string  `json:"who"`
	Why             string  `json:"why"`
	Amount          float64 `json:"amount"`
	OriginalAmount  float64 `json:"originalAmount"`
	RemainingAmount float64 `json:"remainingAmount"`
	DueDate         string  `json:"dueDate"`
	Timestamp       int64   `json:"timestamp"`
}

// ReceivableType says how the money was given out.
type ReceivableType string

// Receivable types.
const (
	ReceivableCash ReceivableType = "cash"
	ReceivableCC   ReceivableType = "cc"
)

// Receivable is money owed to the user. A cash receivable debits its
// source account at creation; a cc receivable never creates a credit-card
// charge automatically. CCTransactionID links to a charge only when a
// previously persisted state carried one.
type Receivable struct {
	ID              string         `json:"id"`
	Who             string         `json:"who"`
	Why             string         `json:"why"`
	Amount          float64        `json:"amount"`
	OriginalAmount  float64        `json:"originalAmount"`
	RemainingAmount float64        `json:"remainingAmount"`
	DateGiven       string         `json:"dateGiven"`
	Type            ReceivableType `json:"type"`
	SourceAccount   string         `json:"sourceAccount,omitempty"`
	CCTransactionID string         `json:"ccTransactionId,omitempty"`
	Timestamp       int64          `json:"timestamp"`
}

// Installment is a fixed-term payment plan. MonthlyAmount is always
// OriginalFullAmount / TotalMonths; paying a month decrements MonthsLeft
// and the plan is removed when it reaches zero.
type Installment struct {
	ID                 string  `json:"id"`
	Description        string  `json:"description"`
	MonthlyAmount      float64 `json:"monthlyAmount"`
	TotalMonths        int     `json:"totalMonths"`
	MonthsLeft         int     `json:"monthsLeft"`
	StartDate          string  `json:"startDate"`
	OriginalFullAmount float64 `json:"originalFullAmount"`
	Timestamp          int64   `json:"timestamp"`
}

// CreditCardTransaction is a single charge on the credit-card facility.
// PaidAmount accumulates toward Amount; PaidOff is derived from the two.
type CreditCardTransaction struct {
	ID          string  `json:"id"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	PaidAmount  float64 `json:"paidAmount"`
	PaidOff     bool    `json:"paidOff"`
	Timestamp   int64   `json:"timestamp"`
}

// Remaining returns the unpaid portion of the charge.
func (t *CreditCardTransaction) Remaining() float64 {
	return SubAmount(t.Amount, t.PaidAmount)
}
