package recipe

// Recipe is one production rule: Machine converts Inputs into Outputs.
// All quantities are per-minute rates and must be nonnegative.
//
// A Recipe is treated as an immutable value everywhere in this module;
// callers must not mutate the rate maps after handing a Recipe to a
// Catalog or to the economy package.
type Recipe struct {
	Machine string
	Inputs  map[string]float64
	Outputs map[string]float64
}

// clone returns a deep copy of r, so the Catalog owns its own rate maps.
func (r Recipe) clone() Recipe {
	return Recipe{
		Machine: r.Machine,
		Inputs:  cloneRates(r.Inputs),
		Outputs: cloneRates(r.Outputs),
	}
}

// equal reports whether r and o describe the same production rule.
func (r Recipe) equal(o Recipe) bool {
	if r.Machine != o.Machine {
		return false
	}

	return ratesEqual(r.Inputs, o.Inputs) && ratesEqual(r.Outputs, o.Outputs)
}

// cloneRates copies a rate map; nil maps become empty maps.
func cloneRates(src map[string]float64) map[string]float64 {
	dst := make(map[string]float64, len(src))
	for part, rate := range src {
		dst[part] = rate
	}

	return dst
}

// ratesEqual reports exact equality of two rate maps.
func ratesEqual(a, b map[string]float64) bool {
	if len(a) != len(b) {
		return false
	}
	for part, rate := range a {
		if other, ok := b[part]; !ok || other != rate {
			return false
		}
	}

	return true
}
