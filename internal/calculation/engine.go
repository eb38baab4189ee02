package calculation

import (
	"context"
	"fmt"
	"math"

	"github.com/rpgo/savings-calculator/internal/domain"
	"github.com/rpgo/savings-calculator/pkg/dateutil"
	"github.com/rpgo/savings-calculator/pkg/decimal"
)

// ProjectionEngine runs savings projections. It holds no state between
// runs; the same engine may be used from several goroutines.
type ProjectionEngine struct {
	Debug  bool // Log a yearly trace of every projection
	Logger Logger
}

// NewProjectionEngine creates a new projection engine
func NewProjectionEngine() *ProjectionEngine {
	return &ProjectionEngine{
		Logger: NopLogger{},
	}
}

// SetLogger sets the logger for the projection engine. If nil is provided, a no-op logger is used.
func (pe *ProjectionEngine) SetLogger(l Logger) {
	pe.Logger = loggerOrNop(l)
}

// Project validates params and returns the full monthly series. Invalid
// parameters produce a *domain.ValidationError and no series.
func Project(params domain.SimulationParameters) (*domain.MonthlySeries, error) {
	return NewProjectionEngine().Project(params)
}

// Project validates params and returns the full monthly series
func (pe *ProjectionEngine) Project(params domain.SimulationParameters) (*domain.MonthlySeries, error) {
	logger := loggerOrNop(pe.Logger)

	if err := params.Validate(); err != nil {
		logger.Warnf("rejected simulation parameters: %v", err)
		return nil, err
	}

	policy, err := NewContributionPolicy(params.Growth)
	if err != nil {
		return nil, err
	}

	series := project(params, policy)
	if err := checkSeries(series); err != nil {
		logger.Warnf("rejected simulation parameters: %v", err)
		return nil, err
	}

	if pe.Debug {
		for _, p := range series.YearStarts() {
			logger.Debugf("year %d (month %3d): nominal=%.2f real=%.2f contribution=%.2f applied=%.2f",
				p.Year, p.Month, p.Nominal, p.Real, p.Contribution, p.Applied)
		}
	}

	return series, nil
}

// project runs the recurrence on validated parameters. Contribution growth
// feeds the family adjustment, which feeds the accumulator; the deflator is
// a second pass over the finished nominal column.
func project(params domain.SimulationParameters, policy ContributionPolicy) *domain.MonthlySeries {
	months := params.Months()
	baseYear := params.EffectiveBaseYear()
	monthlyReturn := MonthlyRate(params.AnnualReturnRate)

	points := make([]domain.MonthlyPoint, months+1)
	// Month 0 is the opening balance; nothing is invested yet.
	points[0] = domain.MonthlyPoint{
		Month:        0,
		Year:         baseYear,
		Nominal:      params.InitialBalance,
		Contribution: params.InitialContribution,
	}

	for i := 1; i <= months; i++ {
		prev := points[i-1]
		gross := policy.NextContribution(i, prev.Contribution)
		applied := ApplyFamilyAdjustment(i, gross, params.Family)

		points[i] = domain.MonthlyPoint{
			Month:        i,
			Year:         dateutil.YearForMonth(i, baseYear),
			Nominal:      prev.Nominal*(1+monthlyReturn) + applied,
			Contribution: gross,
			Applied:      applied,
		}
	}

	series := &domain.MonthlySeries{BaseYear: baseYear, Points: points}
	for i, v := range Deflate(series.NominalValues(), params.AnnualInflationRate) {
		points[i].Real = v
	}
	return series
}

// checkSeries rejects a finished series holding values that overflowed
// float64, so no caller ever formats or totals an infinite balance.
func checkSeries(series *domain.MonthlySeries) error {
	for _, p := range series.Points {
		for _, v := range [...]float64{p.Nominal, p.Real, p.Contribution} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return &domain.ValidationError{
					Field:   "parameters",
					Message: fmt.Sprintf("overflow the representable range by month %d", p.Month),
				}
			}
		}
	}
	return nil
}

// RunScenario projects a single configured scenario and summarizes it
func (pe *ProjectionEngine) RunScenario(ctx context.Context, config *domain.Configuration, scenario *domain.Scenario) (*domain.ScenarioSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	params := config.ParametersFor(scenario)
	series, err := pe.Project(params)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", scenario.Name, err)
	}

	summary := Summarize(scenario.Name, params, series)
	loggerOrNop(pe.Logger).Debugf("scenario %q: final nominal %s, final real %s",
		scenario.Name, summary.FinalNominal.StringFixed(2), summary.FinalReal.StringFixed(2))
	return &summary, nil
}

// RunScenarios runs all scenarios and returns a comparison
func (pe *ProjectionEngine) RunScenarios(config *domain.Configuration) (*domain.ScenarioComparison, error) {
	return pe.RunScenariosContext(context.Background(), config)
}

// RunScenariosContext is RunScenarios with cancellation checked between scenarios
func (pe *ProjectionEngine) RunScenariosContext(ctx context.Context, config *domain.Configuration) (*domain.ScenarioComparison, error) {
	if len(config.Scenarios) == 0 {
		return nil, fmt.Errorf("no scenarios provided")
	}

	scenarios := make([]domain.ScenarioSummary, len(config.Scenarios))
	for i := range config.Scenarios {
		summary, err := pe.RunScenario(ctx, config, &config.Scenarios[i])
		if err != nil {
			return nil, fmt.Errorf("RunScenario failed: %w", err)
		}
		scenarios[i] = *summary
	}

	baseYear := config.BaseYear
	if baseYear == 0 {
		baseYear = domain.DefaultBaseYear
	}

	comparison := &domain.ScenarioComparison{
		RunID:       newRunID(),
		Locale:      config.Locale,
		BaseYear:    baseYear,
		Scenarios:   scenarios,
		Assumptions: ModelAssumptions(baseYear),
	}
	comparison.BestForReal = bestScenario(scenarios, func(s domain.ScenarioSummary) decimal.Money {
		return decimal.NewMoneyFromDecimal(s.FinalReal)
	})
	comparison.BestForNominal = bestScenario(scenarios, func(s domain.ScenarioSummary) decimal.Money {
		return decimal.NewMoneyFromDecimal(s.FinalNominal)
	})

	loggerOrNop(pe.Logger).Infof("projected %d scenario(s), run %s", len(scenarios), comparison.RunID)
	return comparison, nil
}

// bestScenario returns the name of the scenario with the highest metric; ties keep the earlier one
func bestScenario(scenarios []domain.ScenarioSummary, metric func(domain.ScenarioSummary) decimal.Money) string {
	best := ""
	var bestValue decimal.Money
	for i, sc := range scenarios {
		v := metric(sc)
		if i == 0 || v.GreaterThan(bestValue) {
			best = sc.Name
			bestValue = v
		}
	}
	return best
}
