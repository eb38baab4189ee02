package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a config file without running projections",
	RunE:  runValidate,
}

var validateConfigPath string

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateConfigPath, "config", "c", "", "path to YAML config file (required)")
	validateCmd.MarkFlagRequired("config")
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(validateConfigPath, "")
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Configuration is valid: %d scenario(s)\n", len(cfg.Scenarios))
	for _, sc := range cfg.Scenarios {
		fmt.Fprintf(cmd.OutOrStdout(), "  - %s (%d years)\n", sc.Name, cfg.ParametersFor(&sc).HorizonYears)
	}
	return nil
}
