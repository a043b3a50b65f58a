package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/satisgraphery/valuate/economy"
)

func newEconomiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "economies",
		Short: "List the independent economies of the catalog",
		Long: `Partition the catalog into independent economies (recipe families that
share no parts) and print a summary line per economy.

Example:
  valuate economies -r recipes.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := loadCatalog(cmd)
			if err != nil {
				return err
			}

			economies := economy.SeparateEconomies(catalog.Recipes())
			for i, eco := range economies {
				partSet := make(map[string]bool)
				for _, r := range eco {
					for part := range r.Inputs {
						partSet[part] = true
					}
					for part := range r.Outputs {
						partSet[part] = true
					}
				}
				parts := make([]string, 0, len(partSet))
				for part := range partSet {
					parts = append(parts, part)
				}
				sort.Strings(parts)

				sample := parts
				if len(sample) > 5 {
					sample = sample[:5]
				}
				fmt.Printf("economy %d: %d recipes, %d parts (%v)\n", i+1, len(eco), len(parts), sample)
			}

			return nil
		},
	}
}
