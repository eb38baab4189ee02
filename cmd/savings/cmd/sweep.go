package cmd

import (
	"fmt"

	"github.com/rpgo/savings-calculator/internal/calculation"
	"github.com/rpgo/savings-calculator/internal/domain"
	"github.com/rpgo/savings-calculator/internal/locale"
	"github.com/rpgo/savings-calculator/internal/output"
	"github.com/spf13/cobra"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Vary one rate of a scenario across a range",
	Long: `Sweep re-runs one scenario once per value of a rate, from --from to --to
in steps of --step. Runs are independent and execute concurrently.

Fields: return, inflation, growth (the growth rate or periodic raise fraction).
Formats: table (default), csv, html. With --output, csv writes
sweep_summary.csv and sweep_yearly.csv into that directory and html writes
that file.

Example:
  savings sweep -c config.yaml --scenario "Annual Raise" --field return --from 0.04 --to 0.12 --step 0.01`,
	RunE: runSweep,
}

var (
	sweepConfigPath string
	sweepScenario   string
	sweepField      string
	sweepFrom       float64
	sweepTo         float64
	sweepStep       float64
	sweepLimit      int
	sweepFormat     string
	sweepOutput     string
)

func init() {
	rootCmd.AddCommand(sweepCmd)

	sweepCmd.Flags().StringVarP(&sweepConfigPath, "config", "c", "", "path to YAML config file (required)")
	sweepCmd.Flags().StringVarP(&sweepScenario, "scenario", "s", "", "scenario to sweep (default: the first)")
	sweepCmd.Flags().StringVar(&sweepField, "field", "return", "rate to vary: return, inflation or growth")
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 0.04, "first value")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 0.12, "last value")
	sweepCmd.Flags().Float64Var(&sweepStep, "step", 0.01, "increment between values")
	sweepCmd.Flags().IntVar(&sweepLimit, "limit", calculation.DefaultSweepLimit, "maximum concurrent projections")
	sweepCmd.Flags().StringVarP(&sweepFormat, "format", "f", "table", "output format: table, csv or html")
	sweepCmd.Flags().StringVarP(&sweepOutput, "output", "o", "", "output directory (csv) or file (html)")
	sweepCmd.MarkFlagRequired("config")
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(sweepConfigPath, "")
	if err != nil {
		return err
	}
	scenario, err := pickScenario(cfg, sweepScenario)
	if err != nil {
		return err
	}
	field, err := calculation.ParseSweepField(sweepField)
	if err != nil {
		return err
	}
	values, err := calculation.SweepValues(sweepFrom, sweepTo, sweepStep)
	if err != nil {
		return err
	}
	loc, err := locale.Lookup(cfg.Locale)
	if err != nil {
		return err
	}

	points, err := newEngine(cmd).Sweep(cmd.Context(), cfg.ParametersFor(scenario), field, values, sweepLimit)
	if err != nil {
		return fmt.Errorf("sweep %s: %w", scenario.Name, err)
	}

	out := cmd.OutOrStdout()
	switch sweepFormat {
	case "table":
		fmt.Fprintf(out, "Sweep of %s for %s\n", field, scenario.Name)
		fmt.Fprintf(out, "%10s %20s %20s\n", field, loc.Label(locale.LabelNominalValue), loc.Label(locale.LabelRealValue))
		for _, pt := range points {
			fmt.Fprintf(out, "%10s %20s %20s\n", output.FormatPercentage(pt.Value), loc.FormatCurrency(pt.FinalNominal), loc.FormatCurrency(pt.FinalReal))
		}
		return nil
	case "csv":
		report := &output.SweepCSVReport{Scenario: scenario.Name, Field: field, Points: points, Locale: loc}
		if sweepOutput == "" {
			data, err := report.SummaryCSV()
			if err != nil {
				return err
			}
			_, err = out.Write(data)
			return err
		}
		if err := report.GenerateAllCSVReports(sweepOutput); err != nil {
			return err
		}
		fmt.Fprintf(out, "CSV reports written to %s\n", sweepOutput)
		return nil
	case "html":
		report := &output.SweepHTMLReport{Scenario: scenario.Name, Field: field, Points: points, Locale: loc}
		if sweepOutput == "" {
			data, err := report.Render()
			if err != nil {
				return err
			}
			_, err = out.Write(data)
			return err
		}
		if err := report.GenerateHTMLReport(sweepOutput); err != nil {
			return err
		}
		fmt.Fprintf(out, "HTML report written to %s\n", sweepOutput)
		return nil
	default:
		return fmt.Errorf("%w: %q (want table, csv or html)", output.ErrUnsupportedFormat, sweepFormat)
	}
}

func pickScenario(cfg *domain.Configuration, name string) (*domain.Scenario, error) {
	if name == "" {
		return &cfg.Scenarios[0], nil
	}
	for i := range cfg.Scenarios {
		if cfg.Scenarios[i].Name == name {
			return &cfg.Scenarios[i], nil
		}
	}
	return nil, fmt.Errorf("scenario %q not found in configuration", name)
}
