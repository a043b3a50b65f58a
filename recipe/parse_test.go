package recipe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satisgraphery/valuate/recipe"
)

const ironJSON = `{
  "Miner": {
    "IronOre": {"out": {"Iron Ore": 30}}
  },
  "Smelter": {
    "IronIngot": {"in": {"Iron Ore": 30}, "out": {"Iron Ingot": 30}}
  },
  "Constructor": {
    "IronPlate": {"in": {"Iron Ingot": 30}, "out": {"Iron Plate": 20}}
  }
}`

// TestParseJSON_GameDataLayout verifies decoding of the machine->recipe
// nesting, including a recipe with no "in" object at all.
func TestParseJSON_GameDataLayout(t *testing.T) {
	c, err := recipe.ParseJSON([]byte(ironJSON))
	require.NoError(t, err)

	assert.Equal(t, 3, c.Len())

	ore, err := c.Recipe("IronOre")
	require.NoError(t, err)
	assert.Equal(t, "Miner", ore.Machine)
	assert.Empty(t, ore.Inputs)
	assert.Equal(t, map[string]float64{"Iron Ore": 30}, ore.Outputs)

	ingot, err := c.Recipe("IronIngot")
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"Iron Ore": 30}, ingot.Inputs)
}

// TestParseJSON_BadDocuments verifies the malformed-input errors.
func TestParseJSON_BadDocuments(t *testing.T) {
	_, err := recipe.ParseJSON([]byte(`{"Miner": {`))
	assert.ErrorIs(t, err, recipe.ErrBadCatalogJSON)

	_, err = recipe.ParseJSON([]byte(`[1, 2, 3]`))
	assert.ErrorIs(t, err, recipe.ErrBadCatalogJSON)

	_, err = recipe.ParseJSON([]byte(`{"Miner": "not an object"}`))
	assert.ErrorIs(t, err, recipe.ErrBadCatalogJSON)

	// A valid but empty document still fails catalog construction.
	_, err = recipe.ParseJSON([]byte(`{}`))
	assert.ErrorIs(t, err, recipe.ErrEmptyCatalog)
}

// TestParseJSON_WithMachineLoads verifies that power draw folds into each
// recipe as an extra MWm input, and that unlisted machines draw nothing.
func TestParseJSON_WithMachineLoads(t *testing.T) {
	c, err := recipe.ParseJSON([]byte(ironJSON), recipe.WithMachineLoads(map[string]float64{
		"Smelter":     4,
		"Constructor": 4,
	}))
	require.NoError(t, err)

	ingot, err := c.Recipe("IronIngot")
	require.NoError(t, err)
	assert.Equal(t, 4.0, ingot.Inputs["MWm"])

	ore, err := c.Recipe("IronOre")
	require.NoError(t, err)
	assert.NotContains(t, ore.Inputs, "MWm", "Miner is unlisted and draws no power")

	// MWm becomes a base part: nothing produces it.
	assert.Contains(t, c.BaseParts(), "MWm")
}

// TestParseLoadsJSON verifies the {"machine": megawatts} companion format.
func TestParseLoadsJSON(t *testing.T) {
	loads, err := recipe.ParseLoadsJSON([]byte(`{"Smelter": 4, "Constructor": 4.5}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"Smelter": 4, "Constructor": 4.5}, loads)

	_, err = recipe.ParseLoadsJSON([]byte(`[4]`))
	assert.ErrorIs(t, err, recipe.ErrBadCatalogJSON)
}
