package domain

import (
	"encoding/json"
	"fmt"

	"github.com/rpgo/savings-calculator/pkg/dateutil"
	"gopkg.in/yaml.v3"
)

// DefaultBaseYear is the calendar year of month 0 when none is configured
const DefaultBaseYear = 2024

// GrowthKind identifies a contribution growth policy variant
type GrowthKind string

const (
	GrowthContinuous    GrowthKind = "continuous"
	GrowthPeriodicRaise GrowthKind = "periodic_raise"
)

// GrowthSpec is the tagged variant describing how the monthly contribution
// evolves. Exactly two implementations exist: ContinuousGrowth and PeriodicRaise.
type GrowthSpec interface {
	Kind() GrowthKind
	validate() error
}

// ContinuousGrowth compounds the contribution every month at the
// monthly-equivalent of AnnualGrowthRate.
type ContinuousGrowth struct {
	AnnualGrowthRate float64 `yaml:"annual_growth_rate" json:"annual_growth_rate"`
}

// Kind returns GrowthContinuous
func (ContinuousGrowth) Kind() GrowthKind { return GrowthContinuous }

func (g ContinuousGrowth) validate() error {
	if err := checkFinite("growth.annual_growth_rate", g.AnnualGrowthRate); err != nil {
		return err
	}
	if g.AnnualGrowthRate <= -1 || g.AnnualGrowthRate > 1 {
		return invalidf("growth.annual_growth_rate", "must be greater than -100%% and at most 100%%, got %.4f", g.AnnualGrowthRate)
	}
	return nil
}

// MarshalYAML emits the tagged form
func (g ContinuousGrowth) MarshalYAML() (interface{}, error) { return g.doc(), nil }

// MarshalJSON emits the tagged form
func (g ContinuousGrowth) MarshalJSON() ([]byte, error) { return json.Marshal(g.doc()) }

func (g ContinuousGrowth) doc() growthDoc {
	rate := g.AnnualGrowthRate
	return growthDoc{Type: GrowthContinuous, AnnualGrowthRate: &rate}
}

// PeriodicRaise holds the contribution flat for IntervalYears*12 months and
// then multiplies it by (1+RaiseFraction), repeating. Raises compound.
type PeriodicRaise struct {
	IntervalYears int     `yaml:"interval_years" json:"interval_years"`
	RaiseFraction float64 `yaml:"raise_fraction" json:"raise_fraction"`
}

// Kind returns GrowthPeriodicRaise
func (PeriodicRaise) Kind() GrowthKind { return GrowthPeriodicRaise }

// IntervalMonths is the length of one flat contribution block
func (g PeriodicRaise) IntervalMonths() int { return dateutil.MonthsInYears(g.IntervalYears) }

func (g PeriodicRaise) validate() error {
	if g.IntervalYears < 1 {
		return invalidf("growth.interval_years", "must be at least 1, got %d", g.IntervalYears)
	}
	if g.IntervalYears > MaxHorizonYears {
		return invalidf("growth.interval_years", "must be at most %d, got %d", MaxHorizonYears, g.IntervalYears)
	}
	if err := checkFinite("growth.raise_fraction", g.RaiseFraction); err != nil {
		return err
	}
	if g.RaiseFraction <= -1 || g.RaiseFraction > 1 {
		return invalidf("growth.raise_fraction", "must be greater than -100%% and at most 100%%, got %.4f", g.RaiseFraction)
	}
	return nil
}

// MarshalYAML emits the tagged form
func (g PeriodicRaise) MarshalYAML() (interface{}, error) { return g.doc(), nil }

// MarshalJSON emits the tagged form
func (g PeriodicRaise) MarshalJSON() ([]byte, error) { return json.Marshal(g.doc()) }

func (g PeriodicRaise) doc() growthDoc {
	interval := g.IntervalYears
	raise := g.RaiseFraction
	return growthDoc{Type: GrowthPeriodicRaise, IntervalYears: &interval, RaiseFraction: &raise}
}

// growthDoc is the serialized form shared by both variants
type growthDoc struct {
	Type             GrowthKind `yaml:"type" json:"type"`
	AnnualGrowthRate *float64   `yaml:"annual_growth_rate,omitempty" json:"annual_growth_rate,omitempty"`
	IntervalYears    *int       `yaml:"interval_years,omitempty" json:"interval_years,omitempty"`
	RaiseFraction    *float64   `yaml:"raise_fraction,omitempty" json:"raise_fraction,omitempty"`
}

// DecodeGrowthSpec builds a GrowthSpec from its tagged YAML form
func DecodeGrowthSpec(node *yaml.Node) (GrowthSpec, error) {
	var doc growthDoc
	if err := node.Decode(&doc); err != nil {
		return nil, err
	}

	switch doc.Type {
	case GrowthContinuous:
		if doc.AnnualGrowthRate == nil {
			return nil, fmt.Errorf("annual_growth_rate is required for %s growth", GrowthContinuous)
		}
		if doc.IntervalYears != nil || doc.RaiseFraction != nil {
			return nil, fmt.Errorf("interval_years and raise_fraction are only valid for %s growth", GrowthPeriodicRaise)
		}
		return ContinuousGrowth{AnnualGrowthRate: *doc.AnnualGrowthRate}, nil
	case GrowthPeriodicRaise:
		if doc.IntervalYears == nil {
			return nil, fmt.Errorf("interval_years is required for %s growth", GrowthPeriodicRaise)
		}
		if doc.AnnualGrowthRate != nil {
			return nil, fmt.Errorf("annual_growth_rate is only valid for %s growth", GrowthContinuous)
		}
		g := PeriodicRaise{IntervalYears: *doc.IntervalYears}
		if doc.RaiseFraction != nil {
			g.RaiseFraction = *doc.RaiseFraction
		}
		return g, nil
	case "":
		return nil, fmt.Errorf("growth type is required (%s or %s)", GrowthContinuous, GrowthPeriodicRaise)
	default:
		return nil, fmt.Errorf("unknown growth type %q (want %s or %s)", doc.Type, GrowthContinuous, GrowthPeriodicRaise)
	}
}

// FamilyAdjustment subtracts MonthlyExpense from the contribution from
// MilestoneMonth onward. The milestone is always held in whole months.
type FamilyAdjustment struct {
	MilestoneMonth int     `yaml:"milestone_month" json:"milestone_month"`
	MonthlyExpense float64 `yaml:"monthly_expense" json:"monthly_expense"`
}

// FamilyFromYears builds an adjustment whose milestone is given in whole years
func FamilyFromYears(years int, monthlyExpense float64) *FamilyAdjustment {
	return &FamilyAdjustment{MilestoneMonth: dateutil.MonthsInYears(years), MonthlyExpense: monthlyExpense}
}

// Active reports whether the expense applies to the given month
func (f *FamilyAdjustment) Active(month int) bool {
	return f != nil && month >= f.MilestoneMonth
}

// UnmarshalYAML accepts exactly one of milestone_month or milestone_year
func (f *FamilyAdjustment) UnmarshalYAML(value *yaml.Node) error {
	type Alias struct {
		MilestoneMonth *int    `yaml:"milestone_month"`
		MilestoneYear  *int    `yaml:"milestone_year"`
		MonthlyExpense float64 `yaml:"monthly_expense"`
	}

	var aux Alias
	if err := value.Decode(&aux); err != nil {
		return err
	}

	switch {
	case aux.MilestoneMonth != nil && aux.MilestoneYear != nil:
		return fmt.Errorf("family: specify either milestone_month or milestone_year, not both")
	case aux.MilestoneMonth != nil:
		f.MilestoneMonth = *aux.MilestoneMonth
	case aux.MilestoneYear != nil:
		f.MilestoneMonth = dateutil.MonthsInYears(*aux.MilestoneYear)
	default:
		return fmt.Errorf("family: milestone_month or milestone_year is required")
	}
	f.MonthlyExpense = aux.MonthlyExpense
	return nil
}

func (f *FamilyAdjustment) validate() error {
	if f.MilestoneMonth < 1 {
		return invalidf("family.milestone_month", "must be at least 1, got %d", f.MilestoneMonth)
	}
	if err := checkFinite("family.monthly_expense", f.MonthlyExpense); err != nil {
		return err
	}
	if err := checkAmount("family.monthly_expense", f.MonthlyExpense); err != nil {
		return err
	}
	return nil
}

// SimulationParameters is the immutable input to a single projection run.
// Rates are fractions (0.08 = 8%).
type SimulationParameters struct {
	InitialBalance      float64           `json:"initial_balance"`
	InitialContribution float64           `json:"initial_contribution"`
	AnnualReturnRate    float64           `json:"annual_return_rate"`
	AnnualInflationRate float64           `json:"annual_inflation_rate"`
	HorizonYears        int               `json:"horizon_years"`
	Growth              GrowthSpec        `json:"growth"`
	Family              *FamilyAdjustment `json:"family,omitempty"`
	BaseYear            int               `json:"base_year,omitempty"`
}

// Months is the number of projected steps after month 0
func (p SimulationParameters) Months() int {
	return dateutil.MonthsInYears(p.HorizonYears)
}

// EffectiveBaseYear returns BaseYear or DefaultBaseYear when unset
func (p SimulationParameters) EffectiveBaseYear() int {
	if p.BaseYear == 0 {
		return DefaultBaseYear
	}
	return p.BaseYear
}

// paramsDoc is the YAML form of SimulationParameters
type paramsDoc struct {
	InitialBalance      float64           `yaml:"initial_balance"`
	InitialContribution float64           `yaml:"initial_contribution"`
	AnnualReturnRate    float64           `yaml:"annual_return_rate"`
	AnnualInflationRate float64           `yaml:"annual_inflation_rate"`
	HorizonYears        int               `yaml:"horizon_years"`
	Growth              GrowthSpec        `yaml:"growth,omitempty"`
	Family              *FamilyAdjustment `yaml:"family,omitempty"`
	BaseYear            int               `yaml:"base_year,omitempty"`
}

// MarshalYAML implements yaml.Marshaler
func (p SimulationParameters) MarshalYAML() (interface{}, error) {
	return paramsDoc(p), nil
}

// UnmarshalYAML overlays the node onto the current values, so a
// pre-populated SimulationParameters acts as a set of defaults.
func (p *SimulationParameters) UnmarshalYAML(value *yaml.Node) error {
	type Alias struct {
		InitialBalance      float64    `yaml:"initial_balance"`
		InitialContribution float64    `yaml:"initial_contribution"`
		AnnualReturnRate    float64    `yaml:"annual_return_rate"`
		AnnualInflationRate float64    `yaml:"annual_inflation_rate"`
		HorizonYears        int        `yaml:"horizon_years"`
		Growth              *yaml.Node `yaml:"growth"`
		Family              *yaml.Node `yaml:"family"`
		BaseYear            int        `yaml:"base_year"`
	}

	aux := Alias{
		InitialBalance:      p.InitialBalance,
		InitialContribution: p.InitialContribution,
		AnnualReturnRate:    p.AnnualReturnRate,
		AnnualInflationRate: p.AnnualInflationRate,
		HorizonYears:        p.HorizonYears,
		BaseYear:            p.BaseYear,
	}
	if err := value.Decode(&aux); err != nil {
		return err
	}

	p.InitialBalance = aux.InitialBalance
	p.InitialContribution = aux.InitialContribution
	p.AnnualReturnRate = aux.AnnualReturnRate
	p.AnnualInflationRate = aux.AnnualInflationRate
	p.HorizonYears = aux.HorizonYears
	p.BaseYear = aux.BaseYear

	if aux.Growth != nil {
		growth, err := DecodeGrowthSpec(aux.Growth)
		if err != nil {
			return fmt.Errorf("growth: %w", err)
		}
		p.Growth = growth
	}

	switch {
	case explicitNull(value, "family"):
		p.Family = nil
	case aux.Family != nil:
		var family FamilyAdjustment
		if err := aux.Family.Decode(&family); err != nil {
			return err
		}
		p.Family = &family
	}

	return nil
}

// explicitNull reports whether the mapping sets key to null, which the
// decoder otherwise cannot tell apart from an absent key.
func explicitNull(mapping *yaml.Node, key string) bool {
	if mapping.Kind != yaml.MappingNode {
		return false
	}
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1].ShortTag() == "!!null"
		}
	}
	return false
}
