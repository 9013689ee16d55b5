package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/aanjelos/kaasi/internal/common"
	"github.com/aanjelos/kaasi/internal/model"
)

// InstallmentInput carries the fields for a new or edited installment
// plan. MonthsLeft may be nil, meaning the full term is still ahead;
// out-of-range values also fall back to the full term.
type InstallmentInput struct {
	Description string
	FullAmount  float64
	TotalMonths int
	MonthsLeft  *int
	StartDate   string
}

func (in *InstallmentInput) validate() error {
	desc, err := requireString("description", in.Description)
	if err != nil {
		return err
	}
	in.Description = desc

	if err := validAmount("fullAmount", in.FullAmount); err != nil {
		return err
	}
	if in.TotalMonths < 1 {
		return common.Invalidf("totalMonths", "must be at least 1")
	}
	return validDate("startDate", in.StartDate)
}

// monthsLeft resolves the requested months-left, defaulting to the full
// term when omitted or out of range.
func (in *InstallmentInput) monthsLeft() int {
	if in.MonthsLeft == nil || *in.MonthsLeft < 0 || *in.MonthsLeft > in.TotalMonths {
		return in.TotalMonths
	}
	return *in.MonthsLeft
}

// AddInstallmentPlan records a plan; the monthly amount is always the
// full amount divided by the total term.
func (l *Ledger) AddInstallmentPlan(ctx context.Context, in InstallmentInput) (*model.Installment, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	plan := model.Installment{
		ID:                 model.NewID(),
		Description:        in.Description,
		MonthlyAmount:      in.FullAmount / float64(in.TotalMonths),
		TotalMonths:        in.TotalMonths,
		MonthsLeft:         in.monthsLeft(),
		StartDate:          in.StartDate,
		OriginalFullAmount: in.FullAmount,
		Timestamp:          time.Now().UnixMilli(),
	}
	l.state.Installments = append(l.state.Installments, plan)

	created := &l.state.Installments[len(l.state.Installments)-1]
	return created, l.persist(ctx)
}

// EditInstallmentPlan updates a plan in place, recomputing the monthly
// amount from the new full amount and term.
func (l *Ledger) EditInstallmentPlan(ctx context.Context, id string, in InstallmentInput) (*model.Installment, error) {
	plan := l.state.Installment(id)
	if plan == nil {
		return nil, common.NotFoundf("installment", id)
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	plan.Description = in.Description
	plan.TotalMonths = in.TotalMonths
	plan.MonthsLeft = in.monthsLeft()
	plan.StartDate = in.StartDate
	plan.MonthlyAmount = in.FullAmount / float64(in.TotalMonths)
	plan.OriginalFullAmount = in.FullAmount
	plan.Timestamp = time.Now().UnixMilli()

	return plan, l.persist(ctx)
}

// PayInstallmentMonth pays one month of the plan: debits the chosen
// account by the monthly amount, decrements months left, and always logs
// a linked expense transaction. The plan is removed when the last month
// is paid.
func (l *Ledger) PayInstallmentMonth(ctx context.Context, planID, accountID, category string) (*model.Transaction, error) {
	plan := l.state.Installment(planID)
	if plan == nil {
		return nil, common.NotFoundf("installment", planID)
	}
	if plan.MonthsLeft <= 0 {
		return nil, common.Invalidf("installment", "plan is already fully paid")
	}

	account, err := l.requireAccount(accountID)
	if err != nil {
		return nil, err
	}
	category, err = l.requireCategory("category", category)
	if err != nil {
		return nil, err
	}
	if err := insufficient(account, plan.MonthlyAmount); err != nil {
		return nil, err
	}

	account.Balance = model.SubAmount(account.Balance, plan.MonthlyAmount)
	plan.MonthsLeft--

	tx := model.Transaction{
		ID:       model.NewID(),
		Type:     model.TypeExpense,
		Amount:   plan.MonthlyAmount,
		Account:  accountID,
		Category: category,
		Description: fmt.Sprintf("Installment: %s (Month %d/%d)",
			plan.Description, plan.TotalMonths-plan.MonthsLeft, plan.TotalMonths),
		Date:      model.Today(),
		Timestamp: time.Now().UnixMilli(),
	}
	l.state.Transactions = append(l.state.Transactions, tx)

	if plan.MonthsLeft <= 0 {
		l.state.Installments = removeByID(l.state.Installments, planID,
			func(p model.Installment) string { return p.ID })
	}

	created := &l.state.Transactions[len(l.state.Transactions)-1]
	return created, l.persist(ctx)
}

// DeleteInstallmentPlan removes the record only; payments already made
// stay on the ledger.
func (l *Ledger) DeleteInstallmentPlan(ctx context.Context, id string) error {
	if l.state.Installment(id) == nil {
		return common.NotFoundf("installment", id)
	}
	l.state.Installments = removeByID(l.state.Installments, id,
		func(p model.Installment) string { return p.ID })
	return l.persist(ctx)
}
