package config

import (
	"fmt"
	"os"

	"github.com/rpgo/savings-calculator/internal/domain"
	"github.com/rpgo/savings-calculator/internal/locale"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	return ip.Parse(data)
}

// Parse decodes and validates configuration YAML
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Validate the configuration
	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config.Locale != "" {
		if _, err := locale.Lookup(config.Locale); err != nil {
			return err
		}
	}

	if config.BaseYear != 0 && (config.BaseYear < domain.MinBaseYear || config.BaseYear > domain.MaxBaseYear) {
		return fmt.Errorf("base_year must be between %d and %d, got %d", domain.MinBaseYear, domain.MaxBaseYear, config.BaseYear)
	}

	// Validate scenarios
	if len(config.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	seen := make(map[string]int, len(config.Scenarios))
	for i := range config.Scenarios {
		scenario := &config.Scenarios[i]
		if scenario.Name == "" {
			return fmt.Errorf("scenario %d: name is required", i)
		}
		if j, dup := seen[scenario.Name]; dup {
			return fmt.Errorf("scenario %d: name %q already used by scenario %d", i, scenario.Name, j)
		}
		seen[scenario.Name] = i

		params := config.ParametersFor(scenario)
		if err := params.Validate(); err != nil {
			return fmt.Errorf("scenario %d (%s) validation failed: %w", i, scenario.Name, err)
		}
	}

	return nil
}

// CreateExampleConfiguration creates an example configuration using the
// locale's suggested amounts
func (ip *InputParser) CreateExampleConfiguration(loc locale.Locale) *domain.Configuration {
	if loc == nil {
		loc = locale.DefaultLocale
	}
	d := loc.Defaults()

	defaults := domain.SimulationParameters{
		InitialBalance:      d.InitialBalance,
		InitialContribution: d.InitialContribution,
		AnnualReturnRate:    0.08,
		AnnualInflationRate: 0.04,
		HorizonYears:        30,
		Growth:              domain.ContinuousGrowth{AnnualGrowthRate: 0.05},
	}

	raise := defaults
	raise.Growth = domain.PeriodicRaise{IntervalYears: 1, RaiseFraction: 0.05}

	family := defaults
	family.Family = domain.FamilyFromYears(5, d.FamilyExpense)

	conservative := defaults
	conservative.AnnualReturnRate = 0.06
	conservative.Growth = domain.PeriodicRaise{IntervalYears: 2, RaiseFraction: 0.08}

	return &domain.Configuration{
		Locale:   loc.Tag().String(),
		BaseYear: domain.DefaultBaseYear,
		Scenarios: []domain.Scenario{
			{Name: "Continuous Growth", Parameters: defaults},
			{Name: "Annual Raise", Parameters: raise},
			{Name: "Family From Year 5", Parameters: family},
			{Name: "Conservative Biennial Raise", Parameters: conservative},
		},
	}
}
