package ledger

import (
	"context"
	"log/slog"
	"time"

	"github.com/aanjelos/kaasi/internal/common"
	"github.com/aanjelos/kaasi/internal/model"
)

// TransactionInput carries the user-entered fields of a transaction.
type TransactionInput struct {
	Type        model.TransactionType
	Amount      float64
	Account     string
	Category    string // required iff Type is expense
	Description string
	Date        string
}

// validate normalizes the input and resolves its references. It does not
// mutate state.
func (l *Ledger) validateTransactionInput(in *TransactionInput) (*model.Account, error) {
	if !in.Type.Valid() {
		return nil, common.Invalidf("type", "must be income or expense")
	}
	if err := validAmount("amount", in.Amount); err != nil {
		return nil, err
	}

	desc, err := requireString("description", in.Description)
	if err != nil {
		return nil, err
	}
	in.Description = desc

	if err := validDate("date", in.Date); err != nil {
		return nil, err
	}

	if in.Type == model.TypeExpense {
		cat, err := l.requireCategory("category", in.Category)
		if err != nil {
			return nil, err
		}
		in.Category = cat
	} else {
		in.Category = ""
	}

	return l.requireAccount(in.Account)
}

// RecordTransaction creates a transaction and adjusts the account
// balance: credit for income, debit for expense. An expense that exceeds
// the balance is still recorded, since the ledger has to reflect
// real-world overspending, and only draws a warning.
func (l *Ledger) RecordTransaction(ctx context.Context, in TransactionInput) (*model.Transaction, error) {
	account, err := l.validateTransactionInput(&in)
	if err != nil {
		return nil, err
	}

	if in.Type == model.TypeExpense && account.Balance < in.Amount {
		slog.Warn("insufficient funds, transaction still added",
			"account", account.Name, "balance", account.Balance, "amount", in.Amount)
	}

	tx := model.Transaction{
		ID:          model.NewID(),
		Type:        in.Type,
		Amount:      in.Amount,
		Account:     in.Account,
		Category:    in.Category,
		Description: in.Description,
		Date:        in.Date,
		Timestamp:   time.Now().UnixMilli(),
	}
	l.state.Transactions = append(l.state.Transactions, tx)
	applyBalance(account, &tx, 1)

	created := &l.state.Transactions[len(l.state.Transactions)-1]
	return created, l.persist(ctx)
}

// EditTransaction reverses the transaction's original balance effect and
// applies the new one as a single step. All validation, including the new
// account lookup, happens before anything is touched, so a failing edit
// leaves both accounts exactly as they were.
func (l *Ledger) EditTransaction(ctx context.Context, id string, in TransactionInput) (*model.Transaction, error) {
	tx := l.state.Transaction(id)
	if tx == nil {
		return nil, common.NotFoundf("transaction", id)
	}

	newAccount, err := l.validateTransactionInput(&in)
	if err != nil {
		return nil, err
	}

	// Old account may be absent in legacy data; skip the reversal then,
	// there is no balance to restore.
	if oldAccount := l.state.Account(tx.Account); oldAccount != nil {
		applyBalance(oldAccount, tx, -1)
	}

	tx.Type = in.Type
	tx.Amount = in.Amount
	tx.Account = in.Account
	tx.Category = in.Category
	tx.Description = in.Description
	tx.Date = in.Date
	tx.Timestamp = time.Now().UnixMilli()

	applyBalance(newAccount, tx, 1)
	if newAccount.Balance < 0 {
		slog.Warn("account has a negative balance after edit",
			"account", newAccount.Name, "balance", newAccount.Balance)
	}

	return tx, l.persist(ctx)
}

// DeleteTransaction reverses the transaction's balance effect and removes
// the record.
func (l *Ledger) DeleteTransaction(ctx context.Context, id string) error {
	tx := l.state.Transaction(id)
	if tx == nil {
		return common.NotFoundf("transaction", id)
	}

	if account := l.state.Account(tx.Account); account != nil {
		applyBalance(account, tx, -1)
	}
	l.removeTransaction(id)

	return l.persist(ctx)
}

// Transfer moves money between two accounts as one unit. Unlike plain
// expenses this is a discretionary allocation, so insufficient funds
// block it.
func (l *Ledger) Transfer(ctx context.Context, amount float64, fromID, toID string) error {
	if err := validAmount("amount", amount); err != nil {
		return err
	}
	if fromID == toID {
		return common.Invalidf("to", "cannot transfer to the same account")
	}

	from, err := l.requireAccount(fromID)
	if err != nil {
		return err
	}
	to, err := l.requireAccount(toID)
	if err != nil {
		return err
	}
	if err := insufficient(from, amount); err != nil {
		return err
	}

	from.Balance = model.SubAmount(from.Balance, amount)
	to.Balance = model.AddAmount(to.Balance, amount)

	return l.persist(ctx)
}

// applyBalance applies (direction=1) or reverses (direction=-1) a
// transaction's effect on an account balance.
func applyBalance(acc *model.Account, tx *model.Transaction, direction float64) {
	delta := tx.Signed() * direction
	acc.Balance = model.AddAmount(acc.Balance, delta)
}

func (l *Ledger) removeTransaction(id string) {
	for i := range l.state.Transactions {
		if l.state.Transactions[i].ID == id {
			l.state.Transactions = append(l.state.Transactions[:i], l.state.Transactions[i+1:]...)
			return
		}
	}
}
