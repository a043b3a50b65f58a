package recipe

import (
	"fmt"
	"sort"
)

// Catalog is an immutable, fully indexed recipe set. Construct one with
// New or ParseJSON; after construction it is safe for concurrent reads.
type Catalog struct {
	recipes   map[string]Recipe   // recipe name -> recipe
	producing map[string][]string // part -> names of recipes producing it (sorted)
	consuming map[string][]string // part -> names of recipes consuming it (sorted)
	byMachine map[string][]string // machine -> recipe names (sorted)
	parts     []string            // every part touched by any recipe, sorted
	base      map[string]bool     // parts no recipe produces
	terminal  map[string]bool     // parts no recipe consumes
}

// New builds a Catalog from a recipe map. The input maps are deep-copied,
// so later mutation of the caller's maps cannot corrupt the indexes.
// Returns ErrEmptyCatalog for an empty set and ErrNegativeRate if any
// input or output rate is below zero.
func New(recipes map[string]Recipe) (*Catalog, error) {
	// 1. Validate input
	if len(recipes) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		recipes:   make(map[string]Recipe, len(recipes)),
		producing: make(map[string][]string),
		consuming: make(map[string][]string),
		byMachine: make(map[string][]string),
		base:      make(map[string]bool),
		terminal:  make(map[string]bool),
	}

	// 2. Copy recipes and build part/machine indexes
	partSet := make(map[string]bool)
	for name, r := range recipes {
		for part, rate := range r.Inputs {
			if rate < 0 {
				return nil, fmt.Errorf("%w: recipe %q input %q has rate %v", ErrNegativeRate, name, part, rate)
			}
			partSet[part] = true
			c.consuming[part] = append(c.consuming[part], name)
		}
		for part, rate := range r.Outputs {
			if rate < 0 {
				return nil, fmt.Errorf("%w: recipe %q output %q has rate %v", ErrNegativeRate, name, part, rate)
			}
			partSet[part] = true
			c.producing[part] = append(c.producing[part], name)
		}
		c.recipes[name] = r.clone()
		c.byMachine[r.Machine] = append(c.byMachine[r.Machine], name)
	}

	// 3. Sort every index slice for deterministic iteration
	for part := range c.producing {
		sort.Strings(c.producing[part])
	}
	for part := range c.consuming {
		sort.Strings(c.consuming[part])
	}
	for machine := range c.byMachine {
		sort.Strings(c.byMachine[machine])
	}
	c.parts = make([]string, 0, len(partSet))
	for part := range partSet {
		c.parts = append(c.parts, part)
	}
	sort.Strings(c.parts)

	// 4. Classify base (never produced) and terminal (never consumed) parts
	for _, part := range c.parts {
		if len(c.producing[part]) == 0 {
			c.base[part] = true
		}
		if len(c.consuming[part]) == 0 {
			c.terminal[part] = true
		}
	}

	return c, nil
}

// Len reports the number of recipes in the catalog.
func (c *Catalog) Len() int { return len(c.recipes) }

// Recipes returns a copy of the full recipe map. The Recipe values share
// their rate maps with the catalog and must be treated as read-only.
func (c *Catalog) Recipes() map[string]Recipe {
	out := make(map[string]Recipe, len(c.recipes))
	for name, r := range c.recipes {
		out[name] = r
	}

	return out
}

// Recipe looks up one recipe by name.
func (c *Catalog) Recipe(name string) (Recipe, error) {
	r, ok := c.recipes[name]
	if !ok {
		return Recipe{}, fmt.Errorf("%w: %q", ErrUnknownRecipe, name)
	}

	return r, nil
}

// Producing returns the names of recipes producing part, sorted.
func (c *Catalog) Producing(part string) []string {
	return append([]string(nil), c.producing[part]...)
}

// Consuming returns the names of recipes consuming part, sorted.
func (c *Catalog) Consuming(part string) []string {
	return append([]string(nil), c.consuming[part]...)
}

// ByMachine returns the recipes built by machine, keyed by recipe name.
func (c *Catalog) ByMachine(machine string) map[string]Recipe {
	out := make(map[string]Recipe, len(c.byMachine[machine]))
	for _, name := range c.byMachine[machine] {
		out[name] = c.recipes[name]
	}

	return out
}

// Machines returns every machine appearing in the catalog, sorted.
func (c *Catalog) Machines() []string {
	machines := make([]string, 0, len(c.byMachine))
	for machine := range c.byMachine {
		machines = append(machines, machine)
	}
	sort.Strings(machines)

	return machines
}

// Parts returns every part touched by any recipe, sorted.
func (c *Catalog) Parts() []string {
	return append([]string(nil), c.parts...)
}

// BaseParts returns the parts no recipe produces, sorted.
func (c *Catalog) BaseParts() []string { return c.partsWhere(c.base) }

// TerminalParts returns the parts no recipe consumes, sorted.
func (c *Catalog) TerminalParts() []string { return c.partsWhere(c.terminal) }

// partsWhere filters c.parts by membership in set, preserving sort order.
func (c *Catalog) partsWhere(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for _, part := range c.parts {
		if set[part] {
			out = append(out, part)
		}
	}

	return out
}

// FindRecipeName reverse-looks-up the name of a recipe value. Ties are
// broken lexicographically so the answer is deterministic when duplicate
// recipe definitions exist under different names.
func (c *Catalog) FindRecipeName(r Recipe) (string, bool) {
	best, found := "", false
	for name, candidate := range c.recipes {
		if !candidate.equal(r) {
			continue
		}
		if !found || name < best {
			best, found = name, true
		}
	}

	return best, found
}
