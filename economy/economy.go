package economy

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/satisgraphery/valuate/recipe"
)

// ComputeItemValues computes a value for every part touched by recipes.
// The recipe set is partitioned into independent economies, each economy
// is solved to its fixed point (economies are disjoint, so they solve in
// parallel), and the per-economy results are merged. Values are relative:
// within each economy the cheapest part is worth exactly 1.0 unless a pin
// forces otherwise, and pinned parts keep their supplied value exactly.
//
// Relative magnitudes between different economies are arbitrary, since no
// recipe relates their parts.
func ComputeItemValues(recipes map[string]recipe.Recipe, pinned map[string]float64, opts ...Option) (Values, error) {
	// 1. Validate input and apply options.
	if len(recipes) == 0 {
		return nil, ErrNoRecipes
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 2. Partition and solve.
	economies := SeparateEconomies(recipes)
	o.Logger.Info("computing item values",
		zap.Int("recipes", len(recipes)),
		zap.Int("economies", len(economies)))

	results, err := solveEconomies(economies, pinned, o)
	if err != nil {
		return nil, err
	}

	// 3. Merge; economies are disjoint, so no key collides.
	merged := make(Values)
	for _, result := range results {
		for part, value := range result {
			merged[part] = value
		}
	}

	return merged, nil
}

// solveEconomies solves each economy concurrently and returns the results
// in the same order as economies.
func solveEconomies(economies []map[string]recipe.Recipe, pinned map[string]float64, o Options) ([]Values, error) {
	results := make([]Values, len(economies))
	var group errgroup.Group
	for i, eco := range economies {
		i, eco := i, eco
		group.Go(func() error {
			values, err := computeEconomyValues(eco, pinned, o)
			if err != nil {
				return err
			}
			results[i] = values

			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// computeEconomyValues solves one economy: index, iterate to equilibrium,
// rank-ordered refinement, normalize, and zip back to part names.
func computeEconomyValues(recipes map[string]recipe.Recipe, pinned map[string]float64, o Options) (Values, error) {
	e, err := indexEconomy(recipes, pinned)
	if err != nil {
		return nil, err
	}

	values, iterations, err := solve(e, o)
	if err != nil {
		return nil, err
	}
	values = e.relax(values)
	e.normalizeAndRound(values)

	o.Logger.Debug("economy solved",
		zap.Int("parts", len(e.parts)),
		zap.Int("recipes", len(e.recipes)),
		zap.Int("iterations", iterations))

	result := make(Values, len(e.parts))
	for i, part := range e.parts {
		result[part] = values[i]
	}

	return result, nil
}

// CostOfRecipes totals the input cost of running each recipe the given
// number of times: for every (recipe, count), each input contributes
// econ[input] × amount × count. Recipe names missing from the catalog
// yield recipe.ErrUnknownRecipe; inputs missing from econ yield
// ErrUnknownPart.
func CostOfRecipes(catalog *recipe.Catalog, counts map[string]int, econ Values) (float64, error) {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	var cost float64
	for _, name := range names {
		r, err := catalog.Recipe(name)
		if err != nil {
			return 0, err
		}
		inputs := make([]string, 0, len(r.Inputs))
		for part := range r.Inputs {
			inputs = append(inputs, part)
		}
		sort.Strings(inputs)
		for _, part := range inputs {
			value, ok := econ[part]
			if !ok {
				return 0, fmt.Errorf("%w: %q (input of recipe %q)", ErrUnknownPart, part, name)
			}
			cost += value * r.Inputs[part] * float64(counts[name])
		}
	}

	return cost, nil
}

// Ledger lazily solves and caches the default (unpinned) economies of one
// catalog. It replaces ad-hoc memoization with an explicit value: build a
// Ledger once next to the Catalog and share it; the solve runs at most
// once, on first use.
type Ledger struct {
	catalog *recipe.Catalog
	opts    []Option

	once      sync.Once
	economies []Values
	merged    Values
	err       error
}

// NewLedger wraps catalog. Options apply to the deferred solve.
func NewLedger(catalog *recipe.Catalog, opts ...Option) *Ledger {
	return &Ledger{catalog: catalog, opts: opts}
}

// compute runs the solve exactly once.
func (l *Ledger) compute() {
	l.once.Do(func() {
		o := DefaultOptions()
		for _, opt := range l.opts {
			opt(&o)
		}
		economies := SeparateEconomies(l.catalog.Recipes())
		results, err := solveEconomies(economies, nil, o)
		if err != nil {
			l.err = err

			return
		}
		l.economies = results
		l.merged = make(Values)
		for _, result := range results {
			for part, value := range result {
				l.merged[part] = value
			}
		}
	})
}

// Economies returns one value map per economy, ordered as
// SeparateEconomies orders them. The returned maps are copies.
func (l *Ledger) Economies() ([]Values, error) {
	l.compute()
	if l.err != nil {
		return nil, l.err
	}
	out := make([]Values, len(l.economies))
	for i, econ := range l.economies {
		out[i] = copyValues(econ)
	}

	return out, nil
}

// Economy returns all economies merged into one value map. Relative
// magnitudes between disconnected economies are arbitrary. The returned
// map is a copy.
func (l *Ledger) Economy() (Values, error) {
	l.compute()
	if l.err != nil {
		return nil, l.err
	}

	return copyValues(l.merged), nil
}

// CostOfRecipes prices recipe counts against the cached default economy.
func (l *Ledger) CostOfRecipes(counts map[string]int) (float64, error) {
	l.compute()
	if l.err != nil {
		return 0, l.err
	}

	return CostOfRecipes(l.catalog, counts, l.merged)
}

// copyValues shallow-copies a value map.
func copyValues(src Values) Values {
	dst := make(Values, len(src))
	for part, value := range src {
		dst[part] = value
	}

	return dst
}
