package economy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satisgraphery/valuate/recipe"
)

// TestIndexEconomy_Layout verifies the arena: sorted parts, index-resolved
// recipes, and producer/consumer lookup arrays.
func TestIndexEconomy_Layout(t *testing.T) {
	e, err := indexEconomy(map[string]recipe.Recipe{
		"Smelt": {Machine: "Smelter", Inputs: map[string]float64{"Ore": 30}, Outputs: map[string]float64{"Ingot": 30}},
		"Mine":  {Machine: "Miner", Inputs: map[string]float64{}, Outputs: map[string]float64{"Ore": 30}},
	}, map[string]float64{"Ore": 1.0, "Elsewhere": 9.0})
	require.NoError(t, err)

	assert.Equal(t, []string{"Ingot", "Ore"}, e.parts)
	// Recipes index in sorted name order: Mine, then Smelt.
	require.Len(t, e.recipes, 2)
	assert.Empty(t, e.recipes[0].inputs)
	assert.Equal(t, []portion{{part: 1, amount: 30}}, e.recipes[0].outputs)

	assert.Equal(t, []int{1}, e.producing[0], "Smelt produces Ingot")
	assert.Equal(t, []int{0}, e.producing[1], "Mine produces Ore")
	assert.Empty(t, e.consuming[0], "nothing consumes Ingot")
	assert.Equal(t, []int{1}, e.consuming[1], "Smelt consumes Ore")

	// Pins restrict to parts of this economy.
	assert.Equal(t, map[int]float64{1: 1.0}, e.pins)
}

// TestConsumerEstimate_PerRecipeAttribution verifies the consumer view on
// two consuming recipes with different input totals: each recipe's output
// value is attributed by that recipe's own input share before the results
// are pooled over the amount of the part consumed.
func TestConsumerEstimate_PerRecipeAttribution(t *testing.T) {
	e, err := indexEconomy(map[string]recipe.Recipe{
		"UseBoth": {Machine: "M", Inputs: map[string]float64{"P": 2, "X": 2}, Outputs: map[string]float64{"Y": 1}},
		"UseOne":  {Machine: "M", Inputs: map[string]float64{"P": 1}, Outputs: map[string]float64{"Z": 1}},
	}, nil)
	require.NoError(t, err)
	require.Equal(t, []string{"P", "X", "Y", "Z"}, e.parts)

	values := []float64{1, 1, 4, 3}
	// UseBoth attributes 4·(2/4) = 2, UseOne attributes 3·(1/1) = 3;
	// pooled over 3 units of P consumed: 5/3.
	assert.InDelta(t, 5.0/3.0, e.consumerEstimate(values, 0), 1e-12)
}

// TestProducerEstimate_PerRecipeAttribution verifies the symmetric
// producer view across two producing recipes.
func TestProducerEstimate_PerRecipeAttribution(t *testing.T) {
	e, err := indexEconomy(map[string]recipe.Recipe{
		"MakeP1": {Machine: "M", Inputs: map[string]float64{"X": 4}, Outputs: map[string]float64{"P": 2, "Y": 2}},
		"MakeP2": {Machine: "M", Inputs: map[string]float64{"X": 3}, Outputs: map[string]float64{"P": 1}},
	}, nil)
	require.NoError(t, err)
	require.Equal(t, []string{"P", "X", "Y"}, e.parts)

	values := []float64{1, 2, 5}
	// MakeP1 attributes 8·(2/4) = 4, MakeP2 attributes 6·(1/1) = 6;
	// pooled over 3 units of P produced: 10/3.
	assert.InDelta(t, 10.0/3.0, e.producerEstimate(values, 0), 1e-12)

	// P has no consumers, so its instantaneous value is the producer view.
	assert.InDelta(t, 10.0/3.0, e.instantaneous(values, 0), 1e-12)
}

// TestInstantaneousVector_PinsBypassEstimation verifies that pinned parts
// carry their pinned value instead of a computed estimate.
func TestInstantaneousVector_PinsBypassEstimation(t *testing.T) {
	e, err := indexEconomy(map[string]recipe.Recipe{
		"Smelt": {Machine: "Smelter", Inputs: map[string]float64{"Ore": 30}, Outputs: map[string]float64{"Ingot": 30}},
	}, map[string]float64{"Ore": 7.0})
	require.NoError(t, err)

	inst := e.instantaneousVector([]float64{1, 1})
	assert.Equal(t, 7.0, inst[1], "pinned Ore must bypass estimation")
}

// TestTwoWayRanks verifies rank assignment on the iron chain: the plate,
// a terminal part, anchors at rank 0; ore and ingot both have producers
// and consumers and no finite path to an anchor through producing
// recipes, so they keep the sentinel.
func TestTwoWayRanks(t *testing.T) {
	e, err := indexEconomy(map[string]recipe.Recipe{
		"IronOre":   {Machine: "Miner", Inputs: map[string]float64{}, Outputs: map[string]float64{"Iron Ore": 30}},
		"IronIngot": {Machine: "Smelter", Inputs: map[string]float64{"Iron Ore": 30}, Outputs: map[string]float64{"Iron Ingot": 30}},
		"IronPlate": {Machine: "Constructor", Inputs: map[string]float64{"Iron Ingot": 30}, Outputs: map[string]float64{"Iron Plate": 20}},
	}, nil)
	require.NoError(t, err)
	require.Equal(t, []string{"Iron Ingot", "Iron Ore", "Iron Plate"}, e.parts)

	assert.Equal(t, []int{3, 3, 0}, e.twoWayRanks())
}

// TestTwoWayRanks_AnchoredChain verifies finite ranks when the anchor is
// reachable through producing recipes: consuming Scrap into Ingot makes
// Ingot rank 1 off the rank-0 Scrap.
func TestTwoWayRanks_AnchoredChain(t *testing.T) {
	e, err := indexEconomy(map[string]recipe.Recipe{
		"Recycle": {Machine: "Smelter", Inputs: map[string]float64{"Scrap": 30}, Outputs: map[string]float64{"Ingot": 20}},
		"Cast":    {Machine: "Foundry", Inputs: map[string]float64{"Ingot": 20}, Outputs: map[string]float64{"Scrap": 5, "Rod": 15}},
	}, nil)
	require.NoError(t, err)
	require.Equal(t, []string{"Ingot", "Rod", "Scrap"}, e.parts)

	// Rod is terminal (rank 0). Scrap has both producers (Cast) and
	// consumers (Recycle): through Cast it sees Ingot and Rod, so it
	// lands at rank 1 off Rod. Ingot, produced by Recycle from Scrap,
	// lands at rank 2.
	assert.Equal(t, []int{2, 0, 1}, e.twoWayRanks())
}
