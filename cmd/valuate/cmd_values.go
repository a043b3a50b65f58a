package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/satisgraphery/valuate/economy"
)

func newValuesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "values",
		Short: "Compute item values and emit them as CSV",
		Long: `Compute a relative value for every item in the catalog and emit the
result in "Item,Value,Pinned" CSV form.

Examples:
  valuate values -r recipes.json
  valuate values -r recipes.json --loads loads.json --pins pins.yaml -o economy.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			pinsPath, _ := cmd.Flags().GetString("pins")
			outPath, _ := cmd.Flags().GetString("out")

			logger, err := newLogger(verbose)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck // stderr sync failure is harmless

			catalog, err := loadCatalog(cmd)
			if err != nil {
				return err
			}

			pins := map[string]float64{}
			if pinsPath != "" {
				if pins, err = loadPins(pinsPath); err != nil {
					return err
				}
			}

			values, err := economy.ComputeItemValues(catalog.Recipes(), pins, economy.WithLogger(logger))
			if err != nil {
				return err
			}

			pinnedSet := make(map[string]bool, len(pins))
			for item := range pins {
				if _, ok := values[item]; ok {
					pinnedSet[item] = true
				}
			}
			text := economy.EconomyToCSV(values, pinnedSet)

			if outPath == "" {
				fmt.Println(text)

				return nil
			}
			if err := os.WriteFile(outPath, []byte(text+"\n"), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", outPath, err)
			}

			return nil
		},
	}

	cmd.Flags().String("pins", "", "Pinned values file (.csv in serializer format, or YAML map)")
	cmd.Flags().StringP("out", "o", "", "Write CSV to this file instead of stdout")

	return cmd
}
