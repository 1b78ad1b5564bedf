// Package regexgen - trial execution and weight-quality estimation.
//
// The tuner never inspects individual candidates; it consumes aggregate
// counts from batches of independent generate-and-check trials. The
// TrialRunner seam keeps the aggregation logic agnostic of HOW trials
// run: inline on one stream, or fanned out over a bounded goroutine pool
// with decorrelated per-chunk streams.
package regexgen

import (
	"math/rand"

	"github.com/sourcegraph/conc/pool"
)

// TrialFunc is one independent stochastic trial. It must draw randomness
// only from rng and must not retain it after returning.
type TrialFunc func(rng *rand.Rand) bool

// TrialRunner maps n independent trials to their boolean outcomes.
//
// Contracts:
//   - The returned slice has exactly n entries.
//   - Outcome order carries no meaning; consumers aggregate with
//     commutative operations (counts, early cut-offs over iid results).
//   - Implementations are deterministic for a fixed construction seed and
//     a fixed worker count, but are NOT safe for concurrent Map calls.
type TrialRunner interface {
	Map(n int, trial TrialFunc) []bool
}

// NewSequentialRunner returns a runner that executes trials one by one on
// a single deterministic stream. seed==0 selects the default stream.
func NewSequentialRunner(seed int64) TrialRunner {
	return &seqRunner{rng: rngFromSeed(seed)}
}

// NewParallelRunner returns a runner that splits trials into
// max(1, n/workers)-sized chunks and executes them on a bounded goroutine
// pool. Each chunk owns a SplitMix64-derived stream, so results are
// reproducible for a fixed (seed, workers) pair. workers < 2 degrades to
// the sequential runner.
func NewParallelRunner(seed int64, workers int) TrialRunner {
	if workers < 2 {
		return NewSequentialRunner(seed)
	}
	return &poolRunner{base: rngFromSeed(seed), workers: workers}
}

// seqRunner runs every trial on one shared stream, in submission order.
type seqRunner struct {
	rng *rand.Rand
}

func (s *seqRunner) Map(n int, trial TrialFunc) []bool {
	if n <= 0 {
		return nil
	}
	out := make([]bool, n)
	for i := range out {
		out[i] = trial(s.rng)
	}
	return out
}

// poolRunner fans chunks out over a conc pool. Chunk streams are derived
// on the submitting goroutine, in chunk order, so the derivation sequence
// never depends on scheduling; each worker then writes into its own chunk
// of the result slice.
type poolRunner struct {
	base    *rand.Rand
	workers int
	stream  uint64
}

func (p *poolRunner) Map(n int, trial TrialFunc) []bool {
	if n <= 0 {
		return nil
	}
	chunk := n / p.workers
	if chunk < 1 {
		chunk = 1
	}

	out := make([]bool, n)
	grp := pool.New().WithMaxGoroutines(p.workers)
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		part := out[start:end]
		rng := deriveRNG(p.base, p.stream)
		p.stream++
		grp.Go(func() {
			for i := range part {
				part[i] = trial(rng)
			}
		})
	}
	grp.Wait()
	return out
}

// Evaluator estimates the quality of a weight vector against one derived
// parameter set. It owns the trial budgets and the runner; one Evaluator
// serves a whole tuning session.
type Evaluator struct {
	params  Params
	runner  TrialRunner
	trials  int
	target  int
	batch   int
	ceiling int
}

// NewEvaluator normalizes opts and binds a runner (opts.Runner if set,
// otherwise one built from Seed and Workers) to the parameter set.
func NewEvaluator(p Params, opts Options) (*Evaluator, error) {
	o, err := opts.normalized()
	if err != nil {
		return nil, err
	}
	return newEvaluator(p, o), nil
}

// newEvaluator assumes o has already been normalized.
func newEvaluator(p Params, o Options) *Evaluator {
	r := o.Runner
	if r == nil {
		r = NewParallelRunner(o.Seed, o.Workers)
	}
	return &Evaluator{
		params:  p,
		runner:  r,
		trials:  o.Trials,
		target:  o.SkipTarget,
		batch:   o.SkipBatch,
		ceiling: o.SkipCeiling,
	}
}

// ValidityCount runs the configured number of generate-and-validate
// trials and returns how many candidates passed the structural rules.
func (e *Evaluator) ValidityCount(w Weights) int {
	outcomes := e.runner.Map(e.trials, func(rng *rand.Rand) bool {
		return IsValid(e.params, Generate(e.params, w, rng))
	})
	n := 0
	for _, ok := range outcomes {
		if ok {
			n++
		}
	}
	return n
}

// SkipCount generates candidates in batches until the target number reach
// the minimum length, then returns the surplus attempts beyond target.
// Only the length floor is checked here; resampling cost against the full
// rule set is folded into the validity signal instead.
//
// The attempt ceiling bounds the loop, so weights that can never reach
// the floor (for example literal ≈ 1 with a tall minimum) still terminate
// with a large, honest skip count.
func (e *Evaluator) SkipCount(w Weights) int {
	attempts, hits := 0, 0
	for hits < e.target && attempts < e.ceiling {
		n := e.batch
		if rem := e.ceiling - attempts; n > rem {
			n = rem
		}
		outcomes := e.runner.Map(n, func(rng *rand.Rand) bool {
			return runeLen(Generate(e.params, w, rng)) >= e.params.MinLength
		})
		for _, ok := range outcomes {
			attempts++
			if ok {
				hits++
				if hits == e.target {
					break
				}
			}
		}
	}
	if skips := attempts - e.target; skips > 0 {
		return skips
	}
	return 0
}

// Score is the composite quality of the weight vector derived from a
// literal probability: the validity fraction minus the skip count
// normalized by the skip target. Higher is better. The probability is
// clamped into [0,1] so derivative probes at the search edges stay legal.
func (e *Evaluator) Score(literal float64) float64 {
	if literal < 0 {
		literal = 0
	} else if literal > 1 {
		literal = 1
	}
	w, _ := WeightsFromLiteral(literal)

	valid := e.ValidityCount(w)
	skips := e.SkipCount(w)
	return float64(valid)/float64(e.trials) - float64(skips)/float64(e.target)
}
