package output

import (
	"sort"

	"github.com/rpgo/savings-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Recommendation encapsulates the selection result of the best scenario.
// The first configured scenario is the baseline the others are measured against.
type Recommendation struct {
	ScenarioName     string          `json:"scenario_name"`
	BaselineName     string          `json:"baseline_name"`
	FinalReal        decimal.Decimal `json:"final_real"`
	RealChange       decimal.Decimal `json:"real_change"`
	PercentageChange decimal.Decimal `json:"percentage_change"`
}

// AnalyzeScenarios determines the scenario with the highest final real value.
// Extracted from embedded console logic for testability.
func AnalyzeScenarios(results *domain.ScenarioComparison) Recommendation {
	if len(results.Scenarios) == 0 {
		return Recommendation{}
	}
	baseline := results.Scenarios[0]
	type ranked struct {
		name string
		real decimal.Decimal
	}
	ranks := make([]ranked, 0, len(results.Scenarios))
	for _, sc := range results.Scenarios {
		ranks = append(ranks, ranked{sc.Name, sc.FinalReal})
	}
	sort.SliceStable(ranks, func(i, j int) bool { return ranks[i].real.GreaterThan(ranks[j].real) })
	best := ranks[0]
	delta := best.real.Sub(baseline.FinalReal)
	pct := decimal.Zero
	if !baseline.FinalReal.IsZero() {
		pct = delta.Div(baseline.FinalReal).Mul(decimal.NewFromInt(100))
	}
	return Recommendation{
		ScenarioName:     best.name,
		BaselineName:     baseline.Name,
		FinalReal:        best.real,
		RealChange:       delta,
		PercentageChange: pct,
	}
}
