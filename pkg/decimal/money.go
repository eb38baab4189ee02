package decimal

import (
	"github.com/shopspring/decimal"
)

// Money represents a monetary amount with proper financial precision.
// Projection math runs in float64; Money is used wherever amounts are
// summarized, rounded or displayed.
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// Sum totals a slice of float amounts without accumulating binary rounding error
func Sum(values []float64) Money {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(decimal.NewFromFloat(v))
	}
	return Money{total}
}

// RoundTo rounds the money amount to the given number of decimal places
func (m Money) RoundTo(places int32) Money {
	return Money{m.Decimal.Round(places)}
}

// Scale divides the amount by a display unit such as 1e7 (crore) or 1e4 (man)
func (m Money) Scale(unit float64) Money {
	if unit == 0 || unit == 1 {
		return m
	}
	return Money{m.Decimal.Div(decimal.NewFromFloat(unit))}
}

// Sub subtracts another Money amount
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// GreaterThan checks if this amount is greater than another
func (m Money) GreaterThan(other Money) bool {
	return m.Decimal.GreaterThan(other.Decimal)
}

// Float64 returns the nearest float64 value
func (m Money) Float64() float64 {
	return m.Decimal.InexactFloat64()
}

// String returns the string representation with two decimals
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}
