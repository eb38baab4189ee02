package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the current version of the savings CLI.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "savings version %s\n", version)
		fmt.Fprintln(cmd.OutOrStdout(), "Monthly savings and investment projections")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
