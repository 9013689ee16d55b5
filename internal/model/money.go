package model

import "github.com/shopspring/decimal"

// AmountTolerance is the slack allowed when comparing monetary amounts.
// A remaining amount at or below it counts as settled.
const AmountTolerance = 0.005

// AddAmount returns a + b computed in decimal to avoid binary float
// drift across long runs of balance adjustments.
func AddAmount(a, b float64) float64 {
	return decimal.NewFromFloat(a).Add(decimal.NewFromFloat(b)).InexactFloat64()
}

// SubAmount returns a - b computed in decimal.
func SubAmount(a, b float64) float64 {
	return decimal.NewFromFloat(a).Sub(decimal.NewFromFloat(b)).InexactFloat64()
}

// Settled reports whether a remaining amount is close enough to zero for
// its record to be removed.
func Settled(remaining float64) bool {
	return remaining <= AmountTolerance
}

// Exceeds reports whether a payment is larger than the remaining amount,
// beyond tolerance.
func Exceeds(payment, remaining float64) bool {
	return payment > remaining+AmountTolerance
}

// SameAmount reports whether two amounts are equal within tolerance.
func SameAmount(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= AmountTolerance
}
