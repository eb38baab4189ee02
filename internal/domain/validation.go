package domain

import (
	"errors"
	"fmt"
	"math"
)

// Documented parameter bounds. Negative return and inflation rates are
// allowed so drawdown and deflation scenarios can be modeled.
const (
	MaxAmount        = 1e15 // balance, contribution and family expense
	MaxHorizonYears  = 100
	MinReturnRate    = -1.0 // exclusive
	MaxReturnRate    = 1.0
	MinInflationRate = -0.10
	MaxInflationRate = 0.50
	MinBaseYear      = 1900
	MaxBaseYear      = 3000
)

// ErrInvalidParameters is wrapped by every ValidationError
var ErrInvalidParameters = errors.New("invalid simulation parameters")

// ValidationError reports a malformed parameter detected before a run starts
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap lets callers match with errors.Is(err, ErrInvalidParameters)
func (e *ValidationError) Unwrap() error {
	return ErrInvalidParameters
}

func invalidf(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// checkAmount bounds a currency amount to [0, MaxAmount]
func checkAmount(field string, v float64) error {
	if v < 0 {
		return invalidf(field, "cannot be negative, got %.2f", v)
	}
	if v > MaxAmount {
		return invalidf(field, "must be at most %.0f, got %g", MaxAmount, v)
	}
	return nil
}

func checkFinite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return invalidf(field, "must be a finite number")
	}
	return nil
}

// Validate checks the parameters against the documented bounds and returns
// the first violation found.
func (p SimulationParameters) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"initial_balance", p.InitialBalance},
		{"initial_contribution", p.InitialContribution},
		{"annual_return_rate", p.AnnualReturnRate},
		{"annual_inflation_rate", p.AnnualInflationRate},
	}
	for _, f := range fields {
		if err := checkFinite(f.name, f.value); err != nil {
			return err
		}
	}

	if err := checkAmount("initial_balance", p.InitialBalance); err != nil {
		return err
	}
	if err := checkAmount("initial_contribution", p.InitialContribution); err != nil {
		return err
	}
	if p.AnnualReturnRate <= MinReturnRate || p.AnnualReturnRate > MaxReturnRate {
		return invalidf("annual_return_rate", "must be greater than -100%% and at most 100%%, got %.4f", p.AnnualReturnRate)
	}
	if p.AnnualInflationRate < MinInflationRate || p.AnnualInflationRate > MaxInflationRate {
		return invalidf("annual_inflation_rate", "must be between -10%% and 50%%, got %.4f", p.AnnualInflationRate)
	}
	if p.HorizonYears <= 0 || p.HorizonYears > MaxHorizonYears {
		return invalidf("horizon_years", "must be between 1 and %d, got %d", MaxHorizonYears, p.HorizonYears)
	}
	if p.BaseYear != 0 && (p.BaseYear < MinBaseYear || p.BaseYear > MaxBaseYear) {
		return invalidf("base_year", "must be between %d and %d, got %d", MinBaseYear, MaxBaseYear, p.BaseYear)
	}

	switch g := p.Growth.(type) {
	case nil:
		return invalidf("growth", "is required (%s or %s)", GrowthContinuous, GrowthPeriodicRaise)
	case ContinuousGrowth, PeriodicRaise:
		if err := g.validate(); err != nil {
			return err
		}
	default:
		return invalidf("growth", "unsupported variant %T (want %s or %s)", p.Growth, GrowthContinuous, GrowthPeriodicRaise)
	}

	if p.Family != nil {
		if err := p.Family.validate(); err != nil {
			return err
		}
	}

	return nil
}
