// Package recipe provides an immutable catalog of production recipes.
//
// What:
//
//   - Recipe describes one production rule: a machine converting input
//     part quantities into output part quantities at per-minute rates.
//   - Catalog indexes a recipe set once at construction time: lookups by
//     recipe name, by machine, by produced part and by consumed part, plus
//     base/terminal part classification.
//   - ParseJSON builds a Catalog from the raw game-data layout
//     {"<machine>": {"<recipe>": {"in": {...}, "out": {...}}}}, optionally
//     folding machine power draw into each recipe's inputs.
//
// Why:
//
//   - The valuation engine (package economy) treats the catalog as a
//     read-only collaborator; keeping every lookup table inside one
//     immutable value avoids hidden module-level state.
//
// Errors:
//
//   - ErrEmptyCatalog: the recipe set is empty.
//   - ErrNegativeRate: a recipe carries a negative per-minute rate.
//   - ErrBadCatalogJSON: the raw catalog document is not valid JSON.
//   - ErrUnknownRecipe: a requested recipe name is not in the catalog.
package recipe
