// Command valuate computes relative item values for a production-recipe
// catalog and prints or saves them as CSV.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "valuate",
		Short: "Compute relative item values for a recipe catalog",
		Long: `valuate derives a self-consistent relative value for every item in a
production-recipe catalog: each item's value agrees with both the value
of everything made from it and the value of everything needed to make
it, even across recipe cycles. Disconnected recipe families ("economies")
are valued independently.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringP("recipes", "r", "recipes.json", "Recipe catalog JSON file")
	rootCmd.PersistentFlags().String("loads", "", "Machine power loads JSON file (folded into recipe inputs)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		newVersionCmd(),
		newValuesCmd(),
		newEconomiesCmd(),
		newCostCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("valuate version %s\n", version)
		},
	}
}

// newLogger builds the CLI logger: terse production output by default,
// full debug output with --verbose.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.DisableStacktrace = true

	return cfg.Build()
}
