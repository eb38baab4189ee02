package domain

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Configuration is the top-level input file: a locale for presentation and
// one or more named scenarios to project.
type Configuration struct {
	Locale    string                `yaml:"locale" json:"locale"`
	BaseYear  int                   `yaml:"base_year,omitempty" json:"base_year,omitempty"`
	Defaults  *SimulationParameters `yaml:"defaults,omitempty" json:"defaults,omitempty"`
	Scenarios []Scenario            `yaml:"scenarios" json:"scenarios"`
}

// Scenario is a named parameter set
type Scenario struct {
	Name       string               `json:"name"`
	Parameters SimulationParameters `json:"parameters"`
}

// UnmarshalYAML applies the defaults block to every scenario before the
// scenario's own keys are decoded over it.
func (c *Configuration) UnmarshalYAML(value *yaml.Node) error {
	type Alias struct {
		Locale    string      `yaml:"locale"`
		BaseYear  int         `yaml:"base_year"`
		Defaults  *yaml.Node  `yaml:"defaults"`
		Scenarios []yaml.Node `yaml:"scenarios"`
	}

	var aux Alias
	if err := value.Decode(&aux); err != nil {
		return err
	}

	c.Locale = aux.Locale
	c.BaseYear = aux.BaseYear
	c.Defaults = nil
	c.Scenarios = nil

	var defaults SimulationParameters
	if aux.Defaults != nil {
		if err := aux.Defaults.Decode(&defaults); err != nil {
			return fmt.Errorf("defaults: %w", err)
		}
		d := defaults
		c.Defaults = &d
	}

	for i := range aux.Scenarios {
		sc := Scenario{Parameters: defaults}
		if err := aux.Scenarios[i].Decode(&sc); err != nil {
			return fmt.Errorf("scenario %d: %w", i, err)
		}
		c.Scenarios = append(c.Scenarios, sc)
	}

	return nil
}

// UnmarshalYAML reads the name and overlays the remaining keys onto Parameters
func (s *Scenario) UnmarshalYAML(value *yaml.Node) error {
	var aux struct {
		Name string `yaml:"name"`
	}
	if err := value.Decode(&aux); err != nil {
		return err
	}
	s.Name = aux.Name
	return value.Decode(&s.Parameters)
}

// MarshalYAML flattens Parameters next to the name
func (s Scenario) MarshalYAML() (interface{}, error) {
	return struct {
		Name      string `yaml:"name"`
		paramsDoc `yaml:",inline"`
	}{s.Name, paramsDoc(s.Parameters)}, nil
}

// ParametersFor resolves the configuration-level base year into a scenario's parameters
func (c *Configuration) ParametersFor(s *Scenario) SimulationParameters {
	p := s.Parameters
	if p.BaseYear == 0 {
		p.BaseYear = c.BaseYear
	}
	return p
}

// GenerateAssumptions describes the scenario's modeling assumptions in plain text
func (p SimulationParameters) GenerateAssumptions() []string {
	out := []string{
		fmt.Sprintf("Investment return: %.1f%% annually, compounded monthly", p.AnnualReturnRate*100),
		fmt.Sprintf("Price inflation: %.1f%% annually, compounded monthly", p.AnnualInflationRate*100),
	}
	switch g := p.Growth.(type) {
	case ContinuousGrowth:
		out = append(out, fmt.Sprintf("Contribution growth: %.1f%% annually, applied every month", g.AnnualGrowthRate*100))
	case PeriodicRaise:
		out = append(out, fmt.Sprintf("Contribution raise: %.1f%% every %d year(s)", g.RaiseFraction*100, g.IntervalYears))
	}
	if p.Family != nil {
		out = append(out, fmt.Sprintf("Family expense of %.2f per month from month %d", p.Family.MonthlyExpense, p.Family.MilestoneMonth))
	}
	return out
}
