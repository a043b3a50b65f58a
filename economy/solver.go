package economy

import (
	"fmt"
	"math"
)

// Solver constants. Temperature is the blend weight of the instantaneous
// estimate per iteration; the cap and cap rate govern how far and how fast
// the controller may raise it again after cooling.
const (
	initialTemperature        = 0.5
	initialTemperatureCap     = 0.5
	initialTemperatureCapRate = 3.0

	// historyWindow is the rolling window of aggregate error/change
	// samples driving trend analysis.
	historyWindow = 100

	// convergenceTolerance is the aggregate per-iteration change below
	// which the solve stops.
	convergenceTolerance = 1e-8
)

// controller holds the adaptive temperature state of one solve.
type controller struct {
	temperature float64
	cap         float64
	capRate     float64
	errHistory  []float64
	chgHistory  []float64
}

func newController() *controller {
	return &controller{
		temperature: initialTemperature,
		cap:         initialTemperatureCap,
		capRate:     initialTemperatureCapRate,
		errHistory:  make([]float64, 0, historyWindow),
		chgHistory:  make([]float64, 0, historyWindow),
	}
}

// record appends one iteration's aggregates, evicting the oldest sample
// once the window is full.
func (c *controller) record(aggError, aggChange float64) {
	c.errHistory = append(c.errHistory, aggError)
	c.chgHistory = append(c.chgHistory, aggChange)
	if len(c.errHistory) > historyWindow {
		c.errHistory = c.errHistory[1:]
		c.chgHistory = c.chgHistory[1:]
	}
}

// trends compares the last half of each history window against the first
// half.
func (c *controller) trends() (errTrend, chgTrend float64) {
	half := historyWindow / 2
	errTrend = sum(c.errHistory[half:]) - sum(c.errHistory[:half])
	chgTrend = sum(c.chgHistory[half:]) - sum(c.chgHistory[:half])

	return errTrend, chgTrend
}

// adjust retunes the temperature from the current trends:
// rising error and change reads as divergence (cool down, freeze the cap);
// falling change reads as convergence (heat up, let the cap approach 1).
// No adjustment happens before the history window fills.
func (c *controller) adjust() {
	if len(c.errHistory) < historyWindow {
		return
	}
	errTrend, chgTrend := c.trends()
	switch {
	case errTrend >= 0 && chgTrend >= 0:
		c.temperature *= 0.999
		// the floor snaps the rate to 8 immediately
		c.capRate = math.Max(c.capRate+0.01, 8)
		c.cap = math.Min(c.cap, c.temperature)
	case chgTrend < 0:
		c.temperature *= 1.01
		c.cap = 1 - (1-c.cap)*(1-math.Pow(10, -c.capRate))
		c.capRate *= 0.999
	}
	c.temperature = math.Min(c.temperature, c.cap)
}

// solve runs the damped fixed-point iteration for one economy and returns
// the converged (unnormalized) value vector plus the iteration count.
// Returns ErrNoConvergence if opts.MaxIterations is positive and reached.
func solve(e *indexedEconomy, opts Options) ([]float64, int, error) {
	// 1. Initialize: every part at 1.0, pins at their fixed value.
	values := make([]float64, len(e.parts))
	for i := range values {
		values[i] = 1
	}
	e.clampPins(values)

	ctl := newController()

	// 2. Iterate to the fixed point.
	for iteration := 1; ; iteration++ {
		// 2a. Instantaneous estimates, rescaled so their minimum is 1;
		//     only relative magnitudes matter.
		inst := e.instantaneousVector(values)
		normalization := 1 / minOf(inst)
		for i := range inst {
			inst[i] *= normalization
		}

		// 2b. Damped blend toward the estimates, pins held exactly.
		next := make([]float64, len(values))
		for i := range values {
			next[i] = values[i]*(1-ctl.temperature) + inst[i]*ctl.temperature
		}
		e.clampPins(next)

		// 2c. Aggregate residuals: squared estimate error, absolute change.
		var aggError, aggChange float64
		for i := range values {
			residual := math.Abs(inst[i] - next[i])
			aggError += residual * residual
			aggChange += math.Abs(next[i] - values[i])
		}

		// 2d. Feed the controller and commit the step.
		ctl.record(aggError, aggChange)
		ctl.adjust()
		values = next

		if aggChange <= convergenceTolerance {
			return values, iteration, nil
		}
		if opts.MaxIterations > 0 && iteration >= opts.MaxIterations {
			return nil, iteration, fmt.Errorf("%w: change %.3g after %d iterations",
				ErrNoConvergence, aggChange, iteration)
		}
	}
}

// minOf returns the minimum element of a non-empty slice.
func minOf(values []float64) float64 {
	low := values[0]
	for _, v := range values[1:] {
		if v < low {
			low = v
		}
	}

	return low
}

// sum totals a slice of float64.
func sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}

	return total
}
