package cmd

import (
	"fmt"

	"github.com/rpgo/savings-calculator/internal/config"
	"github.com/rpgo/savings-calculator/internal/locale"
	"github.com/rpgo/savings-calculator/internal/output"
	"github.com/spf13/cobra"
)

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Write an example configuration file",
	Long: `Write a configuration with four example scenarios using the chosen
locale's default amounts.

Example:
  savings example -o config.yaml --locale en-US`,
	RunE: runExample,
}

var (
	exampleOutput string
	exampleLocale string
)

func init() {
	rootCmd.AddCommand(exampleCmd)

	exampleCmd.Flags().StringVarP(&exampleOutput, "output", "o", "example_config.yaml", "file to write")
	exampleCmd.Flags().StringVar(&exampleLocale, "locale", "", "locale for default amounts (en-IN, en-US, ja-JP)")
}

func runExample(cmd *cobra.Command, args []string) error {
	loc, err := locale.Lookup(exampleLocale)
	if err != nil {
		return err
	}
	cfg := config.NewInputParser().CreateExampleConfiguration(loc)
	if err := output.SaveConfiguration(cfg, exampleOutput); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", exampleOutput)
	return nil
}
