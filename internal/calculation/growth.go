package calculation

import (
	"fmt"

	"github.com/rpgo/savings-calculator/internal/domain"
	"github.com/rpgo/savings-calculator/pkg/dateutil"
)

// ContributionPolicy defines how the gross monthly contribution evolves
type ContributionPolicy interface {
	// NextContribution returns the gross contribution for month (>= 1) given
	// the gross contribution of the month before.
	NextContribution(month int, previous float64) float64
	GetPolicyName() string
}

// ContinuousGrowthPolicy compounds the contribution every month
type ContinuousGrowthPolicy struct {
	AnnualGrowthRate  float64
	MonthlyGrowthRate float64
}

// NewContinuousGrowthPolicy creates a policy from an annual growth rate
func NewContinuousGrowthPolicy(annualGrowthRate float64) *ContinuousGrowthPolicy {
	return &ContinuousGrowthPolicy{
		AnnualGrowthRate:  annualGrowthRate,
		MonthlyGrowthRate: MonthlyRate(annualGrowthRate),
	}
}

// NextContribution applies one month of growth
func (p *ContinuousGrowthPolicy) NextContribution(month int, previous float64) float64 {
	return previous * (1 + p.MonthlyGrowthRate)
}

// GetPolicyName returns the name of this policy
func (p *ContinuousGrowthPolicy) GetPolicyName() string {
	return string(domain.GrowthContinuous)
}

// PeriodicRaisePolicy holds the contribution flat within each interval and
// raises it at the first month of every subsequent interval
type PeriodicRaisePolicy struct {
	IntervalMonths int
	RaiseFraction  float64
}

// NewPeriodicRaisePolicy creates a policy from an interval in years and a raise fraction
func NewPeriodicRaisePolicy(intervalYears int, raiseFraction float64) (*PeriodicRaisePolicy, error) {
	if intervalYears < 1 {
		return nil, &domain.ValidationError{Field: "growth.interval_years", Message: fmt.Sprintf("must be at least 1, got %d", intervalYears)}
	}
	return &PeriodicRaisePolicy{
		IntervalMonths: dateutil.MonthsInYears(intervalYears),
		RaiseFraction:  raiseFraction,
	}, nil
}

// NextContribution raises on interval boundaries and carries the previous amount otherwise
func (p *PeriodicRaisePolicy) NextContribution(month int, previous float64) float64 {
	if month%p.IntervalMonths == 0 {
		return previous * (1 + p.RaiseFraction)
	}
	return previous
}

// GetPolicyName returns the name of this policy
func (p *PeriodicRaisePolicy) GetPolicyName() string {
	return string(domain.GrowthPeriodicRaise)
}

// NewContributionPolicy selects the policy for a growth spec variant
func NewContributionPolicy(spec domain.GrowthSpec) (ContributionPolicy, error) {
	switch g := spec.(type) {
	case domain.ContinuousGrowth:
		return NewContinuousGrowthPolicy(g.AnnualGrowthRate), nil
	case domain.PeriodicRaise:
		return NewPeriodicRaisePolicy(g.IntervalYears, g.RaiseFraction)
	case nil:
		return nil, &domain.ValidationError{Field: "growth", Message: "is required"}
	default:
		return nil, fmt.Errorf("unsupported growth spec %T", spec)
	}
}
