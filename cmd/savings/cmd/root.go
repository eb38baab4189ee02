package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "savings",
	Short: "Project long-horizon savings with contribution growth, family expenses and inflation",
	Long: `Savings projects a monthly investment balance over a multi-decade horizon.

It provides tools for:
  - Comparing named scenarios from a YAML configuration
  - Continuous or periodic-raise contribution growth
  - A family expense that reduces contributions from a milestone onward
  - Nominal and inflation-adjusted (real) balances
  - Sweeping one rate across a range to see how sensitive the outcome is

Reports are localized for India (₹), the US ($) and Japan (¥).`,
	SilenceUsage: true,
}

var debugMode bool

// Execute adds all child commands to the root command and sets flags appropriately.
// An interrupt cancels any projections not yet started.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "log a yearly trace of every projection")
}
