package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/aanjelos/kaasi/internal/common"
	"github.com/aanjelos/kaasi/internal/model"
)

// ReceivableInput carries the fields for a new receivable.
type ReceivableInput struct {
	Type          model.ReceivableType
	Amount        float64
	Who           string
	Why           string
	DateGiven     string
	SourceAccount string // required iff Type is cash
}

// ReceivableEdit carries the editable fields of an existing receivable.
type ReceivableEdit struct {
	Who             string
	Why             string
	OriginalAmount  float64
	RemainingAmount float64
	DateGiven       string
	Type            model.ReceivableType
	SourceAccount   string
}

// AddReceivable records money lent out. A cash receivable debits its
// source account immediately (the money left to be lent), and that
// debit is blocked by insufficient funds. A cc receivable records no
// side effect: the user books the matching credit-card charge
// themselves.
func (l *Ledger) AddReceivable(ctx context.Context, in ReceivableInput) (*model.Receivable, error) {
	who, err := requireString("who", in.Who)
	if err != nil {
		return nil, err
	}
	why, err := requireString("why", in.Why)
	if err != nil {
		return nil, err
	}
	if err := validAmount("amount", in.Amount); err != nil {
		return nil, err
	}
	if err := validDate("dateGiven", in.DateGiven); err != nil {
		return nil, err
	}

	var source *model.Account
	switch in.Type {
	case model.ReceivableCash:
		if in.SourceAccount == "" {
			return nil, common.Invalidf("sourceAccount", "required for a cash loan")
		}
		if source, err = l.requireAccount(in.SourceAccount); err != nil {
			return nil, err
		}
		if err := insufficient(source, in.Amount); err != nil {
			return nil, err
		}
	case model.ReceivableCC:
		in.SourceAccount = ""
	default:
		return nil, common.Invalidf("type", "must be cash or cc")
	}

	rec := model.Receivable{
		ID:              model.NewID(),
		Who:             who,
		Why:             why,
		Amount:          in.Amount,
		OriginalAmount:  in.Amount,
		RemainingAmount: in.Amount,
		DateGiven:       in.DateGiven,
		Type:            in.Type,
		SourceAccount:   in.SourceAccount,
		Timestamp:       time.Now().UnixMilli(),
	}

	if source != nil {
		source.Balance = model.SubAmount(source.Balance, in.Amount)
	}
	l.state.Receivables = append(l.state.Receivables, rec)

	created := &l.state.Receivables[len(l.state.Receivables)-1]
	return created, l.persist(ctx)
}

// EditReceivable reconciles the old type's side effect before applying
// the new one: a cash disbursement is credited back to its old source, a
// linked credit-card charge is removed. The funds check for the new
// source account is done against its post-reversal balance before any
// mutation, so a rejected edit leaves everything untouched.
func (l *Ledger) EditReceivable(ctx context.Context, id string, in ReceivableEdit) (*model.Receivable, error) {
	rec := l.state.Receivable(id)
	if rec == nil {
		return nil, common.NotFoundf("receivable", id)
	}

	who, err := requireString("who", in.Who)
	if err != nil {
		return nil, err
	}
	why, err := requireString("why", in.Why)
	if err != nil {
		return nil, err
	}
	if err := validAmount("originalAmount", in.OriginalAmount); err != nil {
		return nil, err
	}
	if in.RemainingAmount < 0 || in.RemainingAmount > in.OriginalAmount {
		return nil, common.Invalidf("remainingAmount", "must be between 0 and the original amount")
	}
	if err := validDate("dateGiven", in.DateGiven); err != nil {
		return nil, err
	}

	var newSource *model.Account
	switch in.Type {
	case model.ReceivableCash:
		if in.SourceAccount == "" {
			return nil, common.Invalidf("sourceAccount", "required for a cash loan")
		}
		if newSource, err = l.requireAccount(in.SourceAccount); err != nil {
			return nil, err
		}
	case model.ReceivableCC:
		in.SourceAccount = ""
	default:
		return nil, common.Invalidf("type", "must be cash or cc")
	}

	// Funds check against the balance the new source would have after
	// the old disbursement is reversed. Checked before mutating so the
	// whole edit is all-or-nothing.
	oldSource := l.state.Account(rec.SourceAccount)
	if newSource != nil {
		available := newSource.Balance
		if rec.Type == model.ReceivableCash && oldSource != nil && oldSource.ID == newSource.ID {
			available = model.AddAmount(available, rec.OriginalAmount)
		}
		if available < in.OriginalAmount {
			return nil, fmt.Errorf("%w: %s has %.2f after reversal, need %.2f",
				common.ErrInsufficientFunds, newSource.Name, available, in.OriginalAmount)
		}
	}

	// Reverse the old side effect.
	if rec.Type == model.ReceivableCash && oldSource != nil {
		oldSource.Balance = model.AddAmount(oldSource.Balance, rec.OriginalAmount)
	}
	if rec.Type == model.ReceivableCC && rec.CCTransactionID != "" {
		l.state.CreditCard.Transactions = removeByID(l.state.CreditCard.Transactions,
			rec.CCTransactionID, func(t model.CreditCardTransaction) string { return t.ID })
	}

	rec.Who = who
	rec.Why = why
	rec.OriginalAmount = in.OriginalAmount
	rec.Amount = in.OriginalAmount
	rec.RemainingAmount = in.RemainingAmount
	rec.DateGiven = in.DateGiven
	rec.Type = in.Type
	rec.SourceAccount = in.SourceAccount
	rec.CCTransactionID = ""
	rec.Timestamp = time.Now().UnixMilli()

	// Apply the new side effect. A cc receivable gets none.
	if newSource != nil {
		newSource.Balance = model.SubAmount(newSource.Balance, in.OriginalAmount)
	}

	return rec, l.persist(ctx)
}

// ReceivePayment credits the chosen account and decrements the
// receivable's remaining amount. Receiving money is never blocked by a
// balance check. The record is deleted once settled.
func (l *Ledger) ReceivePayment(ctx context.Context, id string, amount float64, accountID string) error {
	rec := l.state.Receivable(id)
	if rec == nil {
		return common.NotFoundf("receivable", id)
	}
	account, err := l.requireAccount(accountID)
	if err != nil {
		return err
	}
	if err := validAmount("amount", amount); err != nil {
		return err
	}
	if model.Exceeds(amount, rec.RemainingAmount) {
		return common.Invalidf("amount", "exceeds remaining %.2f", rec.RemainingAmount)
	}

	account.Balance = model.AddAmount(account.Balance, amount)
	rec.RemainingAmount = model.SubAmount(rec.RemainingAmount, amount)

	if model.Settled(rec.RemainingAmount) {
		l.state.Receivables = removeByID(l.state.Receivables, id,
			func(r model.Receivable) string { return r.ID })
	}

	return l.persist(ctx)
}

// DeleteReceivable removes the record only. The original disbursement is
// not reversed: that money really did leave, and deleting the record is
// not an undo. A linked credit-card charge, if one was carried over from
// older data, is removed along with it.
func (l *Ledger) DeleteReceivable(ctx context.Context, id string) error {
	rec := l.state.Receivable(id)
	if rec == nil {
		return common.NotFoundf("receivable", id)
	}

	if rec.Type == model.ReceivableCC && rec.CCTransactionID != "" {
		l.state.CreditCard.Transactions = removeByID(l.state.CreditCard.Transactions,
			rec.CCTransactionID, func(t model.CreditCardTransaction) string { return t.ID })
	}
	l.state.Receivables = removeByID(l.state.Receivables, id,
		func(r model.Receivable) string { return r.ID })

	return l.persist(ctx)
}
