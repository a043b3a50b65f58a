package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/satisgraphery/valuate/economy"
)

func newCostCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cost",
		Short: "Total input cost of a set of recipe counts",
		Long: `Price a production plan: a YAML map of recipe name to count is summed
as value(input) x amount x count over every input of every recipe,
using the catalog's default economy.

Example:
  valuate cost -r recipes.json --counts plan.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			countsPath, _ := cmd.Flags().GetString("counts")

			logger, err := newLogger(verbose)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck // stderr sync failure is harmless

			catalog, err := loadCatalog(cmd)
			if err != nil {
				return err
			}

			raw, err := os.ReadFile(countsPath)
			if err != nil {
				return fmt.Errorf("read counts: %w", err)
			}
			counts := make(map[string]int)
			if err := yaml.Unmarshal(raw, &counts); err != nil {
				return fmt.Errorf("parse counts: %w", err)
			}

			ledger := economy.NewLedger(catalog, economy.WithLogger(logger))
			cost, err := ledger.CostOfRecipes(counts)
			if err != nil {
				return err
			}
			fmt.Printf("%g\n", cost)

			return nil
		},
	}

	cmd.Flags().String("counts", "", "YAML map of recipe name to count")
	_ = cmd.MarkFlagRequired("counts")

	return cmd
}
