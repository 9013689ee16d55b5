package cli

import (
	"math"

	"github.com/Rhymond/go-money"
)

// currencyCode is the display currency. Amounts are stored without a
// currency; this only affects formatting.
const currencyCode = "LKR"

// FormatAmount renders a monetary amount for display, e.g. "Rs 1,500.50".
func FormatAmount(amount float64) string {
	return money.New(int64(math.Round(amount*100)), currencyCode).Display()
}

// FormatBalance renders an amount, styling negatives for attention.
func FormatBalance(amount float64) string {
	s := FormatAmount(amount)
	if amount < 0 {
		return NegativeStyle.Render(s)
	}
	return s
}
