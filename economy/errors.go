package economy

import "errors"

var (
	// ErrNoRecipes indicates an empty recipe set.
	ErrNoRecipes = errors.New("economy: recipe set must contain at least one recipe")
	// ErrIsolatedPart indicates a part with neither producers nor consumers,
	// for which no value estimate is defined.
	ErrIsolatedPart = errors.New("economy: part has no producers and no consumers")
	// ErrNoConvergence indicates the solver hit its iteration cap before the
	// aggregate change dropped to tolerance.
	ErrNoConvergence = errors.New("economy: solver did not converge within the iteration cap")
	// ErrUnknownPart indicates a cost query referenced a part absent from the
	// supplied economy values.
	ErrUnknownPart = errors.New("economy: part missing from economy values")
	// ErrBadCSV indicates a CSV row whose value field could not be parsed.
	ErrBadCSV = errors.New("economy: malformed CSV value field")
)
