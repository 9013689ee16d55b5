package ledger

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/aanjelos/kaasi/internal/common"
	"github.com/aanjelos/kaasi/internal/model"
)

// DueItem is a debt with its derived days-until-due, for display.
type DueItem struct {
	Who       string
	Why       string
	Remaining float64
	DueDate   string
	DaysLeft  int
	HasDays   bool
}

// Summary is a read-only snapshot of derived display fields. Computing
// it never mutates ledger data, so it can be refreshed at any time.
type Summary struct {
	Accounts         []model.Account
	NetWorth         float64
	TotalOwed        float64 // debts
	TotalOwing       float64 // receivables
	InstallmentsLeft float64 // remaining installment commitment
	CCLimit          float64
	CCOutstanding    float64
	CCAvailable      float64
	DebtsDue         []DueItem
}

// Summarize computes the dashboard snapshot.
func (l *Ledger) Summarize() Summary {
	s := l.state

	sum := Summary{
		Accounts:      append([]model.Account{}, s.Accounts...),
		CCLimit:       s.CreditCard.Limit,
		CCOutstanding: l.OutstandingCC(),
		CCAvailable:   l.AvailableCredit(),
	}

	net := decimal.Zero
	for i := range s.Accounts {
		net = net.Add(decimal.NewFromFloat(s.Accounts[i].Balance))
	}
	sum.NetWorth = net.InexactFloat64()

	owed := decimal.Zero
	for i := range s.Debts {
		d := &s.Debts[i]
		owed = owed.Add(decimal.NewFromFloat(d.RemainingAmount))
		item := DueItem{
			Who:       d.Who,
			Why:       d.Why,
			Remaining: d.RemainingAmount,
			DueDate:   d.DueDate,
		}
		item.DaysLeft, item.HasDays = model.DaysUntil(d.DueDate)
		sum.DebtsDue = append(sum.DebtsDue, item)
	}
	sum.TotalOwed = owed.InexactFloat64()
	// Soonest first; debts without a due date go last.
	sort.Slice(sum.DebtsDue, func(i, j int) bool {
		di, dj := sum.DebtsDue[i].DueDate, sum.DebtsDue[j].DueDate
		if (di == "") != (dj == "") {
			return di != ""
		}
		return di < dj
	})

	owing := decimal.Zero
	for i := range s.Receivables {
		owing = owing.Add(decimal.NewFromFloat(s.Receivables[i].RemainingAmount))
	}
	sum.TotalOwing = owing.InexactFloat64()

	left := decimal.Zero
	for i := range s.Installments {
		p := &s.Installments[i]
		monthly := decimal.NewFromFloat(p.MonthlyAmount)
		left = left.Add(monthly.Mul(decimal.NewFromInt(int64(p.MonthsLeft))))
	}
	sum.InstallmentsLeft = left.InexactFloat64()

	return sum
}

// CategoryTotal is one row of a monthly breakdown.
type CategoryTotal struct {
	Category string
	Amount   float64
}

// MonthReport aggregates one calendar month of transactions.
type MonthReport struct {
	Month      string // YYYY-MM
	Income     float64
	Expenses   float64
	Net        float64
	ByCategory []CategoryTotal // expenses only, largest first
}

// ReportMonth aggregates income and expenses for a YYYY-MM month.
// Aggregation runs in decimal so totals are exact regardless of how many
// records a month holds.
func (l *Ledger) ReportMonth(month string) (*MonthReport, error) {
	if len(month) != 7 || month[4] != '-' {
		return nil, common.Invalidf("month", "must be in YYYY-MM form")
	}

	income, expenses := decimal.Zero, decimal.Zero
	byCat := make(map[string]decimal.Decimal)

	for i := range l.state.Transactions {
		t := &l.state.Transactions[i]
		if !strings.HasPrefix(t.Date, month) {
			continue
		}
		amt := decimal.NewFromFloat(t.Amount)
		if t.Type == model.TypeIncome {
			income = income.Add(amt)
			continue
		}
		expenses = expenses.Add(amt)
		cat := t.Category
		if cat == "" {
			cat = model.SentinelCategory
		}
		byCat[cat] = byCat[cat].Add(amt)
	}

	report := &MonthReport{
		Month:    month,
		Income:   income.InexactFloat64(),
		Expenses: expenses.InexactFloat64(),
		Net:      income.Sub(expenses).InexactFloat64(),
	}
	for cat, amt := range byCat {
		report.ByCategory = append(report.ByCategory, CategoryTotal{Category: cat, Amount: amt.InexactFloat64()})
	}
	sort.Slice(report.ByCategory, func(i, j int) bool {
		if report.ByCategory[i].Amount != report.ByCategory[j].Amount {
			return report.ByCategory[i].Amount > report.ByCategory[j].Amount
		}
		return report.ByCategory[i].Category < report.ByCategory[j].Category
	})

	return report, nil
}
