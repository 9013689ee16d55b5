package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/aanjelos/kaasi/internal/common"
	"github.com/aanjelos/kaasi/internal/model"
)

// SetCreditLimit sets the facility limit. No other effect.
func (l *Ledger) SetCreditLimit(ctx context.Context, limit float64) error {
	if err := validLimit("limit", limit); err != nil {
		return err
	}
	l.state.CreditCard.Limit = limit
	return l.persist(ctx)
}

// CCChargeInput carries the fields of a credit-card charge.
type CCChargeInput struct {
	Amount      float64
	Description string
	Date        string
}

func (in *CCChargeInput) validate() error {
	if err := validAmount("amount", in.Amount); err != nil {
		return err
	}
	desc, err := requireString("description", in.Description)
	if err != nil {
		return err
	}
	in.Description = desc
	return validDate("date", in.Date)
}

// AddCCCharge appends a charge to the facility. A charge is not a cash
// movement until it is paid, so no account is touched.
func (l *Ledger) AddCCCharge(ctx context.Context, in CCChargeInput) (*model.CreditCardTransaction, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	charge := model.CreditCardTransaction{
		ID:          model.NewID(),
		Amount:      in.Amount,
		Description: in.Description,
		Date:        in.Date,
		PaidAmount:  0,
		PaidOff:     false,
		Timestamp:   time.Now().UnixMilli(),
	}
	l.state.CreditCard.Transactions = append(l.state.CreditCard.Transactions, charge)

	created := &l.state.CreditCard.Transactions[len(l.state.CreditCard.Transactions)-1]
	return created, l.persist(ctx)
}

// EditCCTransaction updates a charge. A paid amount above the new total
// is clamped to it, and paid-off status is recomputed.
func (l *Ledger) EditCCTransaction(ctx context.Context, id string, in CCChargeInput) (*model.CreditCardTransaction, error) {
	item := l.state.CCTransaction(id)
	if item == nil {
		return nil, common.NotFoundf("credit-card transaction", id)
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	item.Amount = in.Amount
	item.Description = in.Description
	item.Date = in.Date
	item.Timestamp = time.Now().UnixMilli()

	if item.PaidAmount > in.Amount {
		item.PaidAmount = in.Amount
	}
	item.PaidOff = item.PaidAmount >= item.Amount-model.AmountTolerance
	if item.PaidOff {
		item.PaidAmount = item.Amount
	}

	return item, l.persist(ctx)
}

// PayCCInput describes a payment toward a single charge.
type PayCCInput struct {
	ItemID       string
	Amount       float64
	AccountID    string
	LogAsExpense bool
	Category     string // required iff LogAsExpense
}

// PayCCItem debits the chosen account and accumulates the item's paid
// amount; the item is marked paid off when its remaining settles to
// zero. The optional expense transaction carries the item's id so the
// two stay linked.
func (l *Ledger) PayCCItem(ctx context.Context, in PayCCInput) error {
	item := l.state.CCTransaction(in.ItemID)
	if item == nil {
		return common.NotFoundf("credit-card transaction", in.ItemID)
	}
	account, err := l.requireAccount(in.AccountID)
	if err != nil {
		return err
	}
	if err := validAmount("amount", in.Amount); err != nil {
		return err
	}
	if model.Exceeds(in.Amount, item.Remaining()) {
		return common.Invalidf("amount", "exceeds remaining %.2f on item", item.Remaining())
	}
	if in.LogAsExpense {
		if in.Category, err = l.requireCategory("category", in.Category); err != nil {
			return err
		}
	}
	if err := insufficient(account, in.Amount); err != nil {
		return err
	}

	account.Balance = model.SubAmount(account.Balance, in.Amount)
	item.PaidAmount = model.AddAmount(item.PaidAmount, in.Amount)
	if item.PaidAmount >= item.Amount-model.AmountTolerance {
		item.PaidOff = true
		item.PaidAmount = item.Amount
	}

	if in.LogAsExpense {
		l.state.Transactions = append(l.state.Transactions, model.Transaction{
			ID:                    model.NewID(),
			Type:                  model.TypeExpense,
			Amount:                in.Amount,
			Account:               in.AccountID,
			Category:              in.Category,
			Description:           fmt.Sprintf("CC Pmt: %s", truncate(item.Description, 20)),
			Date:                  model.Today(),
			Timestamp:             time.Now().UnixMilli(),
			LinkedCCTransactionID: item.ID,
		})
	}

	return l.persist(ctx)
}

// DeleteCCTransaction removes a charge and every expense transaction
// that was logged as a payment toward it, resolved by the explicit link
// id. Balances are not adjusted: money already paid toward the charge
// genuinely left its account.
func (l *Ledger) DeleteCCTransaction(ctx context.Context, id string) error {
	if l.state.CCTransaction(id) == nil {
		return common.NotFoundf("credit-card transaction", id)
	}

	kept := l.state.Transactions[:0]
	for _, tx := range l.state.Transactions {
		if tx.LinkedCCTransactionID == id {
			continue
		}
		kept = append(kept, tx)
	}
	l.state.Transactions = kept

	l.state.CreditCard.Transactions = removeByID(l.state.CreditCard.Transactions, id,
		func(t model.CreditCardTransaction) string { return t.ID })

	return l.persist(ctx)
}

// AvailableCredit returns limit minus the outstanding remainder across
// unpaid items.
func (l *Ledger) AvailableCredit() float64 {
	return model.SubAmount(l.state.CreditCard.Limit, l.OutstandingCC())
}

// OutstandingCC returns the total unpaid remainder across all charges.
func (l *Ledger) OutstandingCC() float64 {
	var total float64
	for i := range l.state.CreditCard.Transactions {
		t := &l.state.CreditCard.Transactions[i]
		if !t.PaidOff {
			total = model.AddAmount(total, t.Remaining())
		}
	}
	return total
}
