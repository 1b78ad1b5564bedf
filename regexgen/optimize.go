// Package regexgen - literal-probability search.
//
// Two cooperating loops find the literal probability worth generating at:
//
//	inner  — derivative-guided bisection of the composite score over the
//	         search interval; the interval halves every iteration, so
//	         termination needs no cooperation from the (noisy) score.
//	outer  — repeated bisection runs until the trailing results stabilize
//	         or the run ceiling hits; the final estimate averages the
//	         whole run history to damp residual trial noise.
package regexgen

import "time"

// StepFunc observes one bisection iteration: the interval midpoint, the
// probe-averaged score estimate there, and the central-difference
// derivative. iteration counts from 1 within a run.
type StepFunc func(iteration int, mid, score, derivative float64)

// BisectLiteral maximizes score over [lo, hi] by bisecting on the sign of
// a central-difference derivative estimate: probe score(mid±delta); a
// positive slope moves lo up to mid, otherwise hi comes down. The loop
// stops once the interval is no wider than tol and returns its midpoint.
//
// Contracts:
//   - lo < hi and tol > 0; callers resolve both from validated inputs.
//   - score may be stochastic; a wrong sign merely wastes the iteration,
//     the interval still halves, and the iteration count is fixed by the
//     interval width and tol alone.
//   - onStep may be nil. Observation never changes the trajectory: the
//     reported score is the mean of the two probes already paid for.
//
// Complexity: O(log((hi-lo)/tol)) iterations, two score calls each.
func BisectLiteral(score func(float64) float64, lo, hi, tol, delta float64, onStep StepFunc) float64 {
	iteration := 0
	for hi-lo > tol {
		iteration++
		mid := (lo + hi) / 2
		splus := score(mid + delta)
		sminus := score(mid - delta)
		derivative := (splus - sminus) / (2 * delta)
		if onStep != nil {
			onStep(iteration, mid, (splus+sminus)/2, derivative)
		}
		if derivative > 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

// Tune searches for the best literal probability for cfg and returns the
// full session outcome: the averaged estimate, its weight vector, every
// run's individual result, and whether the runs stabilized.
//
// The outer loop reruns the bisection up to opts.MaxRuns times and stops
// early once the spread of the last three results drops below the
// stability threshold. Hitting the ceiling first is not an error; the
// returned TuneResult reports Converged=false and the history shows why.
// A positive opts.TimeLimit is honored between runs, so at least one run
// always completes.
//
// Determinism: fixed Seed and Workers reproduce the session exactly.
func Tune(cfg Config, opts Options) (TuneResult, error) {
	p, err := NewParams(cfg)
	if err != nil {
		return TuneResult{}, err
	}
	o, err := opts.normalized()
	if err != nil {
		return TuneResult{}, err
	}

	ev := newEvaluator(p, o)
	obs := o.Observer
	var deadline time.Time
	if o.TimeLimit > 0 {
		deadline = time.Now().Add(o.TimeLimit)
	}

	res := TuneResult{Runs: make([]float64, 0, o.MaxRuns)}
	for run := 1; run <= o.MaxRuns; run++ {
		var onStep StepFunc
		if obs != nil {
			r := run
			onStep = func(iteration int, mid, score, derivative float64) {
				obs.ObserveStep(r, iteration, mid, score, derivative)
			}
		}

		lit := BisectLiteral(ev.Score, o.SearchLow, o.SearchHigh, p.Precision, o.Delta, onStep)
		res.Runs = append(res.Runs, lit)
		if obs != nil {
			obs.ObserveRun(run, lit)
		}

		if len(res.Runs) >= stableWindow &&
			spread(res.Runs[len(res.Runs)-stableWindow:]) < p.Stability {
			res.Converged = true
			break
		}
		if !deadline.IsZero() && !time.Now().Before(deadline) {
			break
		}
	}

	res.LiteralProb = mean(res.Runs)
	// Runs stay strictly inside (SearchLow, SearchHigh), so the mean does
	// too and the weight derivation cannot fail.
	res.Weights, _ = WeightsFromLiteral(res.LiteralProb)
	return res, nil
}

// mean returns the arithmetic mean of xs; zero for an empty slice.
func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// spread returns max(xs) - min(xs); zero for an empty slice.
func spread(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	lo, hi := xs[0], xs[0]
	for _, x := range xs[1:] {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	return hi - lo
}
