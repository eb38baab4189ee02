package output

import (
	"fmt"
	"strconv"

	"github.com/rpgo/savings-calculator/internal/domain"
	"github.com/rpgo/savings-calculator/internal/locale"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal amount in the locale's currency style.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(loc locale.Locale, amount decimal.Decimal) string {
	return loc.FormatCurrency(amount.InexactFloat64())
}

// FormatPercentage formats a fractional rate (0.08) as a percentage with 2 decimals.
func FormatPercentage(rate float64) string {
	return decimal.NewFromFloat(rate).Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}

// formatScaled renders v in scale units with fixed decimals.
func formatScaled(v float64, scale locale.Scale, places int32) string {
	return decimal.NewFromFloat(scale.Apply(v)).StringFixed(places)
}

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }

// growthDescription renders a growth policy with localized labels.
func growthDescription(loc locale.Locale, g domain.GrowthSpec) string {
	switch v := g.(type) {
	case domain.ContinuousGrowth:
		return fmt.Sprintf("%s: %s", loc.Label(locale.LabelGrowthRate), FormatPercentage(v.AnnualGrowthRate))
	case domain.PeriodicRaise:
		return fmt.Sprintf("%s: %s (%d %s)", loc.Label(locale.LabelRaise), FormatPercentage(v.RaiseFraction), v.IntervalYears, loc.Label(locale.LabelYears))
	default:
		return "-"
	}
}

// formatPercentPoints formats a value already expressed in percent (12.5 -> "12.50%").
func formatPercentPoints(pct decimal.Decimal) string { return pct.StringFixed(2) + "%" }

// signed prefixes non-negative amounts with "+".
func signed(s string, d decimal.Decimal) string {
	if d.IsNegative() {
		return s
	}
	return "+" + s
}
