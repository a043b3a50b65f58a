package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/satisgraphery/valuate/economy"
	"github.com/satisgraphery/valuate/recipe"
)

// loadCatalog reads the --recipes document (and the optional --loads
// document) into an immutable recipe catalog.
func loadCatalog(cmd *cobra.Command) (*recipe.Catalog, error) {
	recipesPath, _ := cmd.Flags().GetString("recipes")
	loadsPath, _ := cmd.Flags().GetString("loads")

	raw, err := os.ReadFile(recipesPath)
	if err != nil {
		return nil, fmt.Errorf("read recipe catalog: %w", err)
	}

	var opts []recipe.ParseOption
	if loadsPath != "" {
		rawLoads, err := os.ReadFile(loadsPath)
		if err != nil {
			return nil, fmt.Errorf("read machine loads: %w", err)
		}
		loads, err := recipe.ParseLoadsJSON(rawLoads)
		if err != nil {
			return nil, fmt.Errorf("parse machine loads: %w", err)
		}
		opts = append(opts, recipe.WithMachineLoads(loads))
	}

	catalog, err := recipe.ParseJSON(raw, opts...)
	if err != nil {
		return nil, fmt.Errorf("parse recipe catalog: %w", err)
	}

	return catalog, nil
}

// loadPins reads pinned values from path. A .csv file is read in the
// serializer format, keeping only rows flagged pinned; anything else is
// parsed as a YAML map of item name to value.
func loadPins(path string) (map[string]float64, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pins: %w", err)
	}

	if strings.HasSuffix(path, ".csv") {
		econ, pinnedSet, err := economy.EconomyFromCSV(string(raw))
		if err != nil {
			return nil, fmt.Errorf("parse pins: %w", err)
		}
		pins := make(map[string]float64, len(pinnedSet))
		for item := range pinnedSet {
			pins[item] = econ[item]
		}

		return pins, nil
	}

	pins := make(map[string]float64)
	if err := yaml.Unmarshal(raw, &pins); err != nil {
		return nil, fmt.Errorf("parse pins: %w", err)
	}

	return pins, nil
}
