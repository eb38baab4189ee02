package output

import (
	"github.com/rpgo/savings-calculator/internal/calculation"
	"github.com/rpgo/savings-calculator/internal/domain"
)

// assumptionsFor returns the comparison's assumptions, or the model
// assumptions for its base year when the comparison carries none.
func assumptionsFor(results *domain.ScenarioComparison) []string {
	if len(results.Assumptions) > 0 {
		return results.Assumptions
	}
	baseYear := results.BaseYear
	if baseYear == 0 {
		baseYear = domain.DefaultBaseYear
	}
	return calculation.ModelAssumptions(baseYear)
}
