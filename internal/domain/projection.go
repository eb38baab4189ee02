package domain

import (
	"github.com/rpgo/savings-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// MonthlyPoint is one record of a projection
type MonthlyPoint struct {
	Month int `json:"month"`
	Year  int `json:"year"`

	Nominal float64 `json:"nominal"` // balance in then-current currency units
	Real    float64 `json:"real"`    // balance deflated to base-year purchasing power

	// Contribution is the gross amount before any family expense;
	// Applied is what was actually added to the balance this month.
	Contribution float64 `json:"contribution"`
	Applied      float64 `json:"applied"`
}

// MonthlySeries is the engine output, indexed 0..HorizonYears*12
type MonthlySeries struct {
	BaseYear int            `json:"base_year"`
	Points   []MonthlyPoint `json:"points"`
}

// Len returns the number of records
func (s *MonthlySeries) Len() int {
	return len(s.Points)
}

// Final returns the last record
func (s *MonthlySeries) Final() MonthlyPoint {
	if len(s.Points) == 0 {
		return MonthlyPoint{}
	}
	return s.Points[len(s.Points)-1]
}

// YearStarts returns month 0 and every twelfth month after it
func (s *MonthlySeries) YearStarts() []MonthlyPoint {
	out := make([]MonthlyPoint, 0, len(s.Points)/dateutil.MonthsPerYear+1)
	for _, p := range s.Points {
		if dateutil.IsYearBoundary(p.Month) {
			out = append(out, p)
		}
	}
	return out
}

// NominalValues returns the nominal column
func (s *MonthlySeries) NominalValues() []float64 {
	return s.column(func(p MonthlyPoint) float64 { return p.Nominal })
}

// RealValues returns the real column
func (s *MonthlySeries) RealValues() []float64 {
	return s.column(func(p MonthlyPoint) float64 { return p.Real })
}

// ContributionValues returns the gross contribution column
func (s *MonthlySeries) ContributionValues() []float64 {
	return s.column(func(p MonthlyPoint) float64 { return p.Contribution })
}

// AppliedValues returns the applied contribution column
func (s *MonthlySeries) AppliedValues() []float64 {
	return s.column(func(p MonthlyPoint) float64 { return p.Applied })
}

func (s *MonthlySeries) column(f func(MonthlyPoint) float64) []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = f(p)
	}
	return out
}

// ScenarioSummary provides key metrics for one projected scenario
type ScenarioSummary struct {
	Name       string               `json:"name"`
	Parameters SimulationParameters `json:"parameters"`

	FinalNominal      decimal.Decimal `json:"final_nominal"`
	FinalReal         decimal.Decimal `json:"final_real"`
	FinalContribution decimal.Decimal `json:"final_contribution"`
	TotalContributed  decimal.Decimal `json:"total_contributed"`  // applied contributions, months 1..N
	TotalFamilyCost   decimal.Decimal `json:"total_family_cost"`  // gross minus applied, months 1..N
	InvestmentGrowth  decimal.Decimal `json:"investment_growth"`  // final nominal less everything paid in
	FamilyMonths      int             `json:"family_months"`      // months with the family expense active
	ZeroedMonths      int             `json:"zeroed_months"`      // months where the expense consumed the whole contribution
	Assumptions       []string        `json:"assumptions"`

	Series *MonthlySeries `json:"series"`
}

// ScenarioComparison collects every scenario of one configuration run
type ScenarioComparison struct {
	RunID          string            `json:"run_id"`
	Locale         string            `json:"locale"`
	BaseYear       int               `json:"base_year"`
	Scenarios      []ScenarioSummary `json:"scenarios"`
	BestForReal    string            `json:"best_for_real"`
	BestForNominal string            `json:"best_for_nominal"`
	Assumptions    []string          `json:"assumptions"`
}

// FindScenario returns the named scenario summary, if present
func (c *ScenarioComparison) FindScenario(name string) (*ScenarioSummary, bool) {
	for i := range c.Scenarios {
		if c.Scenarios[i].Name == name {
			return &c.Scenarios[i], true
		}
	}
	return nil, false
}
