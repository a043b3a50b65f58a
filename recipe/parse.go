package recipe

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// powerPart is the synthetic input part carrying machine power draw,
// expressed in megawatt-minutes per minute.
const powerPart = "MWm"

// ParseOption configures ParseJSON via functional arguments.
type ParseOption func(*parseOptions)

// parseOptions holds settings for ParseJSON.
type parseOptions struct {
	loads map[string]float64 // machine -> power draw (MW)
}

// WithMachineLoads folds each machine's power draw into its recipes as an
// extra "MWm" input, so power participates in valuation like any other
// consumed part. Machines absent from loads draw no power.
func WithMachineLoads(loads map[string]float64) ParseOption {
	return func(o *parseOptions) {
		if loads != nil {
			o.loads = loads
		}
	}
}

// ParseJSON builds a Catalog from the raw game-data document layout:
//
//	{
//	  "<machine>": {
//	    "<recipe>": {"in": {"<part>": rate, ...}, "out": {"<part>": rate, ...}},
//	    ...
//	  },
//	  ...
//	}
//
// Recipe names are expected to be unique across machines; a duplicate name
// keeps the lexicographically later machine's definition.
// Returns ErrBadCatalogJSON if raw is not a JSON document, plus any error
// New reports for the assembled recipe set.
func ParseJSON(raw []byte, opts ...ParseOption) (*Catalog, error) {
	// 1. Apply options
	var po parseOptions
	for _, opt := range opts {
		opt(&po)
	}

	// 2. Validate the document
	if !gjson.ValidBytes(raw) {
		return nil, ErrBadCatalogJSON
	}
	doc := gjson.ParseBytes(raw)
	if !doc.IsObject() {
		return nil, fmt.Errorf("%w: top level must be an object", ErrBadCatalogJSON)
	}

	// 3. Walk machines and their recipes
	recipes := make(map[string]Recipe)
	var walkErr error
	doc.ForEach(func(machine, entries gjson.Result) bool {
		if !entries.IsObject() {
			walkErr = fmt.Errorf("%w: machine %q must map recipe names to objects", ErrBadCatalogJSON, machine.String())

			return false
		}
		entries.ForEach(func(name, body gjson.Result) bool {
			r := Recipe{
				Machine: machine.String(),
				Inputs:  parseRates(body.Get("in")),
				Outputs: parseRates(body.Get("out")),
			}
			if load, ok := po.loads[r.Machine]; ok && load > 0 {
				r.Inputs[powerPart] += load
			}
			recipes[name.String()] = r

			return true
		})

		return true
	})
	if walkErr != nil {
		return nil, walkErr
	}

	return New(recipes)
}

// ParseLoadsJSON reads a {"<machine>": megawatts} document for use with
// WithMachineLoads.
func ParseLoadsJSON(raw []byte) (map[string]float64, error) {
	if !gjson.ValidBytes(raw) {
		return nil, ErrBadCatalogJSON
	}
	doc := gjson.ParseBytes(raw)
	if !doc.IsObject() {
		return nil, fmt.Errorf("%w: loads document must be an object", ErrBadCatalogJSON)
	}

	loads := make(map[string]float64)
	doc.ForEach(func(machine, load gjson.Result) bool {
		loads[machine.String()] = load.Float()

		return true
	})

	return loads, nil
}

// parseRates converts one "in"/"out" object into a rate map.
// A missing object yields an empty map, matching recipes with no inputs
// (resource extractors) or no outputs.
func parseRates(obj gjson.Result) map[string]float64 {
	rates := make(map[string]float64)
	if !obj.Exists() {
		return rates
	}
	obj.ForEach(func(part, rate gjson.Result) bool {
		rates[part.String()] = rate.Float()

		return true
	})

	return rates
}
