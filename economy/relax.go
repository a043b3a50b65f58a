package economy

import "math"

// twoWayRanks computes each part's distance from the nearest base part
// (no producers) or terminal part (no consumers). Ranks start at the
// sentinel N; parts lacking producers or consumers drop to rank 0, and the
// rest relax Bellman-Ford style through their producing recipes' touched
// parts until no rank changes. Ranks are bounded in [0, N], so the loop
// terminates; parts on pure interior cycles may keep the sentinel.
func (e *indexedEconomy) twoWayRanks() []int {
	n := len(e.parts)
	ranks := make([]int, n)
	for p := range ranks {
		ranks[p] = n
	}

	for changed := true; changed; {
		changed = false
		for p := 0; p < n; p++ {
			if len(e.producing[p]) == 0 || len(e.consuming[p]) == 0 {
				if ranks[p] > 1 {
					ranks[p] = 0
					changed = true
				}

				continue
			}

			for _, ri := range e.producing[p] {
				r := &e.recipes[ri]
				for _, q := range r.inputs {
					if ranks[q.part]+1 < ranks[p] {
						ranks[p] = ranks[q.part] + 1
						changed = true
					}
				}
				for _, q := range r.outputs {
					if ranks[q.part]+1 < ranks[p] {
						ranks[p] = ranks[q.part] + 1
						changed = true
					}
				}
			}
		}
	}

	return ranks
}

// relax sharpens the converged values with one deterministic sweep: rank
// levels are processed from the highest occupied level down to 0, and each
// level is a Jacobi batch — every part at that rank is recomputed from the
// values as they stood before the level started, undamped, with pins
// re-applied before the batch commits.
func (e *indexedEconomy) relax(values []float64) []float64 {
	ranks := e.twoWayRanks()
	maxRank := 0
	for _, rank := range ranks {
		if rank > maxRank {
			maxRank = rank
		}
	}

	for rank := maxRank - 1; rank >= 0; rank-- {
		next := append([]float64(nil), values...)
		for p, partRank := range ranks {
			if partRank == rank {
				next[p] = e.instantaneous(values, p)
			}
		}
		e.clampPins(next)
		values = next
	}

	return values
}

// normalizeAndRound rescales values so the minimum is exactly 1.0,
// restores pins, and rounds everything to 8 decimal places.
func (e *indexedEconomy) normalizeAndRound(values []float64) {
	normalization := 1 / minOf(values)
	for i := range values {
		values[i] *= normalization
	}
	e.clampPins(values)
	for i := range values {
		values[i] = math.Round(values[i]*1e8) / 1e8
	}
}
