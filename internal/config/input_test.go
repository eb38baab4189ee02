package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rpgo/savings-calculator/internal/domain"
	"github.com/rpgo/savings-calculator/internal/locale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const validConfig = `locale: en-US
base_year: 2025
defaults:
  initial_balance: 13000
  initial_contribution: 1300
  annual_return_rate: 0.08
  annual_inflation_rate: 0.04
  horizon_years: 30
  growth:
    type: continuous
    annual_growth_rate: 0.05
scenarios:
  - name: "Baseline"
  - name: "Annual Raise"
    growth:
      type: periodic_raise
      interval_years: 1
      raise_fraction: 0.05
  - name: "Family"
    horizon_years: 20
    family:
      milestone_year: 5
      monthly_expense: 650
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadFromFile_Success(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.LoadFromFile(writeTemp(t, validConfig))

	require.NoError(t, err)
	require.NotNil(t, config)
	assert.Equal(t, "en-US", config.Locale)
	assert.Equal(t, 2025, config.BaseYear)
	require.Len(t, config.Scenarios, 3)

	baseline := config.Scenarios[0].Parameters
	assert.Equal(t, 13000.0, baseline.InitialBalance)
	assert.Equal(t, domain.ContinuousGrowth{AnnualGrowthRate: 0.05}, baseline.Growth)
	assert.Nil(t, baseline.Family)

	raise := config.Scenarios[1].Parameters
	assert.Equal(t, domain.PeriodicRaise{IntervalYears: 1, RaiseFraction: 0.05}, raise.Growth)
	assert.Equal(t, 30, raise.HorizonYears)

	family := config.Scenarios[2].Parameters
	assert.Equal(t, 20, family.HorizonYears)
	require.NotNil(t, family.Family)
	assert.Equal(t, 60, family.Family.MilestoneMonth)
	assert.Equal(t, 650.0, family.Family.MonthlyExpense)

	assert.Equal(t, 2025, config.ParametersFor(&config.Scenarios[0]).BaseYear)
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.LoadFromFile("nonexistent_file.yaml")

	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to read file")
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	testConfig := `
scenarios:
	- name: "tabs are not allowed"
		initial_balance: "not-a-number"
`
	parser := NewInputParser()
	config, err := parser.LoadFromFile(writeTemp(t, testConfig))

	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestParse_DecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name: "Unknown growth type",
			yaml: `scenarios:
  - name: a
    horizon_years: 10
    growth: {type: yearly}
`,
			wantErr: "unknown growth type",
		},
		{
			name: "Both milestone units",
			yaml: `scenarios:
  - name: a
    horizon_years: 10
    growth: {type: continuous, annual_growth_rate: 0.05}
    family: {milestone_month: 12, milestone_year: 1, monthly_expense: 10}
`,
			wantErr: "not both",
		},
		{
			name: "Missing milestone",
			yaml: `scenarios:
  - name: a
    horizon_years: 10
    growth: {type: continuous, annual_growth_rate: 0.05}
    family: {monthly_expense: 10}
`,
			wantErr: "milestone_month or milestone_year is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewInputParser().Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "failed to parse YAML")
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateConfiguration_Success(t *testing.T) {
	parser := NewInputParser()
	config := createValidTestConfiguration()

	err := parser.ValidateConfiguration(config)
	assert.NoError(t, err)
}

func TestValidateConfiguration_Failures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *domain.Configuration)
		wantErr string
	}{
		{"No scenarios", func(c *domain.Configuration) { c.Scenarios = nil }, "no scenarios provided"},
		{"Unknown locale", func(c *domain.Configuration) { c.Locale = "not a locale!" }, "unknown locale"},
		{"Base year out of range", func(c *domain.Configuration) { c.BaseYear = 1200 }, "base_year must be between"},
		{"Empty name", func(c *domain.Configuration) { c.Scenarios[1].Name = "" }, "scenario 1: name is required"},
		{"Duplicate name", func(c *domain.Configuration) { c.Scenarios[1].Name = c.Scenarios[0].Name }, "already used by scenario 0"},
		{"Invalid horizon", func(c *domain.Configuration) { c.Scenarios[0].Parameters.HorizonYears = 0 }, "scenario 0 (Baseline) validation failed"},
		{"Invalid raise interval", func(c *domain.Configuration) {
			c.Scenarios[1].Parameters.Growth = domain.PeriodicRaise{IntervalYears: 0, RaiseFraction: 0.05}
		}, "interval_years"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := createValidTestConfiguration()
			tt.mutate(config)
			err := NewInputParser().ValidateConfiguration(config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateConfiguration_WrapsSentinels(t *testing.T) {
	config := createValidTestConfiguration()
	config.Scenarios[0].Parameters.AnnualReturnRate = -1
	err := NewInputParser().ValidateConfiguration(config)
	assert.ErrorIs(t, err, domain.ErrInvalidParameters)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "annual_return_rate", verr.Field)

	config = createValidTestConfiguration()
	config.Locale = "fr-FR"
	assert.ErrorIs(t, NewInputParser().ValidateConfiguration(config), locale.ErrUnknownLocale)
}

func TestCreateExampleConfiguration(t *testing.T) {
	parser := NewInputParser()

	for _, loc := range locale.All() {
		t.Run(loc.Name(), func(t *testing.T) {
			config := parser.CreateExampleConfiguration(loc)
			require.NotNil(t, config)
			assert.NoError(t, parser.ValidateConfiguration(config))
			assert.Len(t, config.Scenarios, 4)

			d := loc.Defaults()
			assert.Equal(t, d.InitialBalance, config.Scenarios[0].Parameters.InitialBalance)
			assert.Equal(t, d.FamilyExpense, config.Scenarios[2].Parameters.Family.MonthlyExpense)

			resolved, err := locale.Lookup(config.Locale)
			require.NoError(t, err)
			assert.Equal(t, loc.Name(), resolved.Name())

			// The example survives a save and reload
			data, err := yaml.Marshal(config)
			require.NoError(t, err)
			reloaded, err := parser.Parse(data)
			require.NoError(t, err)
			assert.Equal(t, config.Scenarios, reloaded.Scenarios)
		})
	}

	assert.Equal(t, locale.DefaultLocale.Tag().String(), parser.CreateExampleConfiguration(nil).Locale)
}

func createValidTestConfiguration() *domain.Configuration {
	base := domain.SimulationParameters{
		InitialBalance:      1000000,
		InitialContribution: 100000,
		AnnualReturnRate:    0.08,
		AnnualInflationRate: 0.04,
		HorizonYears:        30,
		Growth:              domain.ContinuousGrowth{AnnualGrowthRate: 0.05},
	}
	raise := base
	raise.Growth = domain.PeriodicRaise{IntervalYears: 1, RaiseFraction: 0.05}

	return &domain.Configuration{
		Locale:   "India",
		BaseYear: 2024,
		Scenarios: []domain.Scenario{
			{Name: "Baseline", Parameters: base},
			{Name: "Annual Raise", Parameters: raise},
		},
	}
}
