// Package economy computes a self-consistent relative value for every
// part in a production-recipe graph.
//
// What:
//
//   - SeparateEconomies splits a recipe set into independent economies:
//     maximal groups of mutually reachable parts, found by running an
//     iterative Tarjan SCC pass over the part graph in which every recipe
//     links all of its parts into a clique.
//   - ComputeItemValues solves each economy to a fixed point: every part's
//     value agrees with both the value of what it is made into (consumer
//     view) and the value of what it is made from (producer view), even
//     across recipe cycles. The iteration is a damped relaxation whose
//     step size ("temperature") adapts to error/change trends, followed by
//     a deterministic rank-ordered refinement sweep and normalization so
//     the cheapest part is worth exactly 1.0.
//   - Pinned parts keep their caller-supplied value exactly at every
//     observable point.
//   - Ledger caches the solved default economies for one recipe.Catalog.
//   - EconomyToCSV / EconomyFromCSV serialize a value map plus its pinned
//     set as "Item,Value,Pinned" CSV text.
//
// Why:
//
//   - Downstream planners use the value map as cost coefficients when
//     choosing between alternate recipes; all they need is positive
//     values, exact pins, and orderings that reflect recipe structure.
//
// Complexity:
//
//   - SeparateEconomies: O(V + E) over the part graph.
//   - ComputeItemValues: iterative; each sweep is O(parts × recipes
//     touching them). Economies are disjoint and solved in parallel.
//
// Options:
//
//   - WithMaxIterations(n): convergence safety cap (0 disables it).
//   - WithLogger(l): zap progress logging; silent by default.
//
// Errors:
//
//   - ErrNoRecipes: the recipe set is empty.
//   - ErrIsolatedPart: a part has neither producers nor consumers.
//   - ErrNoConvergence: the iteration cap was reached before the residual
//     change dropped to tolerance.
//   - ErrUnknownPart: a cost query referenced a part with no value.
//   - ErrBadCSV: a CSV row carried an unparseable value field.
package economy
