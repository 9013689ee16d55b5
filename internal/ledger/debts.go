package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/aanjelos/kaasi/internal/common"
	"github.com/aanjelos/kaasi/internal/model"
)

// DebtInput carries the fields for a new debt.
type DebtInput struct {
	Who     string
	Why     string
	Amount  float64
	DueDate string
}

// DebtEdit carries the editable fields of an existing debt. Editing sets
// the amounts directly; only PayDebt moves cash.
type DebtEdit struct {
	Who             string
	Why             string
	OriginalAmount  float64
	RemainingAmount float64
	DueDate         string
}

// AddDebt records a liability. No balance changes: a debt is a record of
// money owed, not a cash movement.
func (l *Ledger) AddDebt(ctx context.Context, in DebtInput) (*model.Debt, error) {
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
	// A due date is optional; a debt without one just never shows up in
	// the due list.
	if in.DueDate != "" {
		if err := validDate("dueDate", in.DueDate); err != nil {
			return nil, err
		}
	}

	debt := model.Debt{
		ID:              model.NewID(),
		Who:             who,
		Why:             why,
		Amount:          in.Amount,
		OriginalAmount:  in.Amount,
		RemainingAmount: in.Amount,
		DueDate:         in.DueDate,
		Timestamp:       time.Now().UnixMilli(),
	}
	l.state.Debts = append(l.state.Debts, debt)

	created := &l.state.Debts[len(l.state.Debts)-1]
	return created, l.persist(ctx)
}

// EditDebt updates a debt record in place, enforcing
// 0 <= remaining <= original.
func (l *Ledger) EditDebt(ctx context.Context, id string, in DebtEdit) (*model.Debt, error) {
	debt := l.state.Debt(id)
	if debt == nil {
		return nil, common.NotFoundf("debt", id)
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
	if in.DueDate != "" {
		if err := validDate("dueDate", in.DueDate); err != nil {
			return nil, err
		}
	}

	debt.Who = who
	debt.Why = why
	debt.OriginalAmount = in.OriginalAmount
	debt.Amount = in.OriginalAmount
	debt.RemainingAmount = in.RemainingAmount
	debt.DueDate = in.DueDate
	debt.Timestamp = time.Now().UnixMilli()

	return debt, l.persist(ctx)
}

// DeleteDebt removes the record only. Any payments already made stay as
// they are.
func (l *Ledger) DeleteDebt(ctx context.Context, id string) error {
	if l.state.Debt(id) == nil {
		return common.NotFoundf("debt", id)
	}
	l.state.Debts = removeByID(l.state.Debts, id, func(d model.Debt) string { return d.ID })
	return l.persist(ctx)
}

// PayDebtInput describes a payment toward a debt.
type PayDebtInput struct {
	DebtID       string
	Amount       float64
	AccountID    string
	LogAsExpense bool
	Category     string // required iff LogAsExpense
}

// PayDebt debits the chosen account and decrements the debt's remaining
// amount; optionally it also logs the payment as an expense transaction.
// The debt record is deleted once its remaining amount settles to zero.
func (l *Ledger) PayDebt(ctx context.Context, in PayDebtInput) error {
	debt := l.state.Debt(in.DebtID)
	if debt == nil {
		return common.NotFoundf("debt", in.DebtID)
	}
	account, err := l.requireAccount(in.AccountID)
	if err != nil {
		return err
	}
	if err := validAmount("amount", in.Amount); err != nil {
		return err
	}
	if model.Exceeds(in.Amount, debt.RemainingAmount) {
		return common.Invalidf("amount", "exceeds remaining %.2f", debt.RemainingAmount)
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
	debt.RemainingAmount = model.SubAmount(debt.RemainingAmount, in.Amount)

	if in.LogAsExpense {
		l.state.Transactions = append(l.state.Transactions, model.Transaction{
			ID:          model.NewID(),
			Type:        model.TypeExpense,
			Amount:      in.Amount,
			Account:     in.AccountID,
			Category:    in.Category,
			Description: fmt.Sprintf("Debt Pmt: %s - %s", debt.Who, truncate(debt.Why, 20)),
			Date:        model.Today(),
			Timestamp:   time.Now().UnixMilli(),
		})
	}

	if model.Settled(debt.RemainingAmount) {
		l.state.Debts = removeByID(l.state.Debts, in.DebtID, func(d model.Debt) string { return d.ID })
	}

	return l.persist(ctx)
}

// removeByID filters one record out of a slice, preserving order.
func removeByID[T any](items []T, id string, idOf func(T) string) []T {
	out := items[:0]
	for _, item := range items {
		if idOf(item) != id {
			out = append(out, item)
		}
	}
	return out
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
