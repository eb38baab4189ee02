package cmd

import (
	"fmt"

	"github.com/rpgo/savings-calculator/internal/output"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Project every scenario in a config file",
	Long: `Run projects each scenario of a configuration file month by month and
prints a comparison report.

Formats: console (default), console-lite, csv, detailed-csv, json, html, all.
With --output the report is written to that file; "all" writes the verbose
console report and the monthly CSV to timestamped files.

Example:
  savings run -c config.yaml -f detailed-csv -o projection.csv --locale ja-JP`,
	RunE: runRun,
}

var (
	runConfigPath string
	runFormat     string
	runOutput     string
	runLocale     string
)

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runConfigPath, "config", "c", "", "path to YAML config file (required)")
	runCmd.Flags().StringVarP(&runFormat, "format", "f", "console", "report format")
	runCmd.Flags().StringVarP(&runOutput, "output", "o", "", "write the report to this file instead of stdout")
	runCmd.Flags().StringVar(&runLocale, "locale", "", "override the configured locale (en-IN, en-US, ja-JP)")
	runCmd.MarkFlagRequired("config")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(runConfigPath, runLocale)
	if err != nil {
		return err
	}

	results, err := newEngine(cmd).RunScenariosContext(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("run scenarios: %w", err)
	}

	formatter := output.GetFormatterByName(runFormat)
	if formatter == nil {
		files, err := output.GenerateReport(results, runFormat)
		if err != nil {
			return err
		}
		for _, f := range files {
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", f)
		}
		return nil
	}

	if runOutput != "" {
		if err := output.WriteFormattedFile(formatter, results, runOutput); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", runOutput)
		return nil
	}

	data, err := formatter.Format(results)
	if err != nil {
		return fmt.Errorf("format %s: %w", formatter.Name(), err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
