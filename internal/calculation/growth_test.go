package calculation

import (
	"errors"
	"math"
	"testing"

	"github.com/rpgo/savings-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContributionPolicy(t *testing.T) {
	tests := []struct {
		name     string
		spec     domain.GrowthSpec
		wantName string
		wantErr  bool
	}{
		{"Continuous", domain.ContinuousGrowth{AnnualGrowthRate: 0.03}, "continuous", false},
		{"Periodic", domain.PeriodicRaise{IntervalYears: 2, RaiseFraction: 0.1}, "periodic_raise", false},
		{"Periodic zero interval", domain.PeriodicRaise{IntervalYears: 0, RaiseFraction: 0.1}, "", true},
		{"Missing", nil, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy, err := NewContributionPolicy(tt.spec)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrInvalidParameters))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, policy.GetPolicyName())
		})
	}
}

func TestContinuousGrowthPolicy(t *testing.T) {
	policy := NewContinuousGrowthPolicy(0.12)
	c := 1000.0
	for month := 1; month <= 12; month++ {
		next := policy.NextContribution(month, c)
		assert.Greater(t, next, c)
		c = next
	}
	assert.InEpsilon(t, 1120.0, c, 1e-9)

	flat := NewContinuousGrowthPolicy(0)
	assert.Equal(t, 500.0, flat.NextContribution(7, 500))

	shrinking := NewContinuousGrowthPolicy(-0.5)
	assert.Less(t, shrinking.NextContribution(1, 500), 500.0)
}

func TestPeriodicRaisePolicy(t *testing.T) {
	policy, err := NewPeriodicRaisePolicy(3, 0.2)
	require.NoError(t, err)
	assert.Equal(t, 36, policy.IntervalMonths)

	c := 100.0
	for month := 1; month <= 72; month++ {
		c = policy.NextContribution(month, c)
		switch {
		case month < 36:
			assert.Equal(t, 100.0, c, "month %d", month)
		case month < 72:
			assert.InDelta(t, 120.0, c, 1e-9, "month %d", month)
		default:
			assert.InDelta(t, 144.0, c, 1e-9, "month %d", month)
		}
	}

	_, err = NewPeriodicRaisePolicy(-1, 0.2)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "growth.interval_years", verr.Field)
}

func TestApplyFamilyAdjustment(t *testing.T) {
	family := &domain.FamilyAdjustment{MilestoneMonth: 24, MonthlyExpense: 300}

	tests := []struct {
		name  string
		month int
		gross float64
		fam   *domain.FamilyAdjustment
		want  float64
	}{
		{"No family", 100, 1000, nil, 1000},
		{"Before milestone", 23, 1000, family, 1000},
		{"At milestone", 24, 1000, family, 700},
		{"After milestone", 200, 1000, family, 700},
		{"Expense exceeds contribution", 30, 250, family, 0},
		{"Expense equals contribution", 30, 300, family, 0},
		{"Zero expense", 30, 250, &domain.FamilyAdjustment{MilestoneMonth: 1}, 250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ApplyFamilyAdjustment(tt.month, tt.gross, tt.fam))
		})
	}
}

func TestDeflate(t *testing.T) {
	nominal := []float64{100, 100, 100, 100}
	deflated := Deflate(nominal, 0.12)
	require.Len(t, deflated, 4)
	assert.Equal(t, 100.0, deflated[0])
	for i := 1; i < len(deflated); i++ {
		assert.Less(t, deflated[i], deflated[i-1])
	}
	assert.InEpsilon(t, 100/math.Pow(1.12, 3.0/12), deflated[3], 1e-12)

	assert.Equal(t, nominal, Deflate(nominal, 0))
	assert.Empty(t, Deflate(nil, 0.03))

	assert.Equal(t, 1.0, DeflationFactor(0.01, 0))
	assert.InEpsilon(t, 1.04, DeflationFactor(MonthlyRate(0.04), 12), 1e-12)
}
