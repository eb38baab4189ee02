package calculation

import (
	"math"

	"github.com/rpgo/savings-calculator/internal/domain"
)

// ApplyFamilyAdjustment returns the contribution actually invested in month.
// From the milestone month onward the family expense is subtracted, floored
// at zero; a zero contribution is a valid steady state.
func ApplyFamilyAdjustment(month int, gross float64, family *domain.FamilyAdjustment) float64 {
	if !family.Active(month) {
		return gross
	}
	return math.Max(0, gross-family.MonthlyExpense)
}
