package economy

import (
	"fmt"
	"sort"

	"github.com/satisgraphery/valuate/recipe"
)

// portion is one (part, per-minute amount) entry of an indexed recipe.
type portion struct {
	part   int
	amount float64
}

// indexedRecipe is a recipe with its parts resolved to economy indices.
type indexedRecipe struct {
	inputs  []portion
	outputs []portion
}

// indexedEconomy is the per-solve arena for one economy: the sorted part
// list, its name->index bijection, every recipe in indexed form, and
// fixed-size producer/consumer lookup arrays addressed by part index.
// It is built fresh for each solve and discarded afterwards.
type indexedEconomy struct {
	parts     []string        // sorted part names; index i names values[i]
	recipes   []indexedRecipe // all recipes of this economy
	producing [][]int         // part index -> indices of recipes producing it
	consuming [][]int         // part index -> indices of recipes consuming it
	pins      map[int]float64 // part index -> externally fixed value
}

// indexEconomy builds the arena for one economy. Pins naming parts outside
// the economy are ignored. Returns ErrIsolatedPart if any part has neither
// a producing nor a consuming recipe, since no value estimate exists for it.
func indexEconomy(recipes map[string]recipe.Recipe, pinned map[string]float64) (*indexedEconomy, error) {
	// 1. Collect the part universe and freeze the bijection.
	partSet := make(map[string]bool)
	for _, r := range recipes {
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
	index := make(map[string]int, len(parts))
	for i, part := range parts {
		index[part] = i
	}

	e := &indexedEconomy{
		parts:     parts,
		recipes:   make([]indexedRecipe, 0, len(recipes)),
		producing: make([][]int, len(parts)),
		consuming: make([][]int, len(parts)),
		pins:      make(map[int]float64),
	}

	// 2. Index every recipe, in sorted name order for determinism.
	for _, name := range sortedRecipeNames(recipes) {
		r := recipes[name]
		ir := indexedRecipe{
			inputs:  indexPortions(r.Inputs, index),
			outputs: indexPortions(r.Outputs, index),
		}
		ri := len(e.recipes)
		e.recipes = append(e.recipes, ir)
		for _, in := range ir.inputs {
			e.consuming[in.part] = append(e.consuming[in.part], ri)
		}
		for _, out := range ir.outputs {
			e.producing[out.part] = append(e.producing[out.part], ri)
		}
	}

	// 3. Reject parts with no estimate source.
	for i, part := range parts {
		if len(e.producing[i]) == 0 && len(e.consuming[i]) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrIsolatedPart, part)
		}
	}

	// 4. Restrict pins to parts of this economy.
	for part, value := range pinned {
		if i, ok := index[part]; ok {
			e.pins[i] = value
		}
	}

	return e, nil
}

// indexPortions converts a rate map into index-sorted portions.
func indexPortions(rates map[string]float64, index map[string]int) []portion {
	portions := make([]portion, 0, len(rates))
	for part, amount := range rates {
		portions = append(portions, portion{part: index[part], amount: amount})
	}
	sort.Slice(portions, func(i, j int) bool { return portions[i].part < portions[j].part })

	return portions
}

// clampPins forces every pinned index back to its exact pinned value.
// Idempotent; applied after every operation that may disturb a pin.
func (e *indexedEconomy) clampPins(values []float64) {
	for i, value := range e.pins {
		values[i] = value
	}
}

// instantaneous computes the current estimate for part p as the mean of
// whichever of the consumer and producer views exist. indexEconomy
// guarantees at least one exists.
func (e *indexedEconomy) instantaneous(values []float64, p int) float64 {
	var sum float64
	var views int
	if len(e.consuming[p]) > 0 {
		sum += e.consumerEstimate(values, p)
		views++
	}
	if len(e.producing[p]) > 0 {
		sum += e.producerEstimate(values, p)
		views++
	}

	return sum / float64(views)
}

// consumerEstimate values p from the recipes consuming it: each consumer's
// total output value is attributed to p in proportion to p's share of that
// recipe's inputs, and the attributed value is divided by the amount of p
// consumed.
func (e *indexedEconomy) consumerEstimate(values []float64, p int) float64 {
	var attributed, consumed float64
	for _, ri := range e.consuming[p] {
		r := &e.recipes[ri]
		var outputValue, totalIn, partIn float64
		for _, out := range r.outputs {
			outputValue += values[out.part] * out.amount
		}
		for _, in := range r.inputs {
			totalIn += in.amount
			if in.part == p {
				partIn += in.amount
			}
		}
		attributed += outputValue * (partIn / totalIn)
		consumed += partIn
	}

	return attributed / consumed
}

// producerEstimate is the symmetric view: each producer's total input value
// is attributed to p in proportion to p's share of that recipe's outputs.
func (e *indexedEconomy) producerEstimate(values []float64, p int) float64 {
	var attributed, produced float64
	for _, ri := range e.producing[p] {
		r := &e.recipes[ri]
		var inputValue, totalOut, partOut float64
		for _, in := range r.inputs {
			inputValue += values[in.part] * in.amount
		}
		for _, out := range r.outputs {
			totalOut += out.amount
			if out.part == p {
				partOut += out.amount
			}
		}
		attributed += inputValue * (partOut / totalOut)
		produced += partOut
	}

	return attributed / produced
}

// instantaneousVector computes the full estimate vector; pinned parts take
// their pinned value directly instead of an estimate.
func (e *indexedEconomy) instantaneousVector(values []float64) []float64 {
	inst := make([]float64, len(values))
	for p := range inst {
		if pin, ok := e.pins[p]; ok {
			inst[p] = pin
		} else {
			inst[p] = e.instantaneous(values, p)
		}
	}

	return inst
}
