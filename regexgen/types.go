// Package regexgen - core types, defaults, and sentinel errors.
//
// This file is the single source of truth for the public configuration
// surface: Config (what to synthesize), Options (how hard to work at it),
// Weights (the tuned branch probabilities), and the error taxonomy.
package regexgen

import (
	"errors"
	"runtime"
	"time"
)

// Default knobs. Zero-valued Config/Options fields inherit these.
const (
	// DefaultPrecision is the bisection tolerance used when Config.Precision is zero.
	DefaultPrecision = 0.01

	// DefaultStability is the run-spread threshold used when
	// Config.StabilityThreshold is zero.
	DefaultStability = 0.001

	// DefaultTrials is the number of generate-and-validate trials per
	// validity estimate.
	DefaultTrials = 1000

	// DefaultSkipTarget is the number of minimum-length candidates a skip
	// estimate must collect.
	DefaultSkipTarget = 100

	// DefaultSkipBatch is the dispatch size while collecting skip candidates.
	DefaultSkipBatch = 200

	// DefaultSkipCeiling caps total attempts per skip estimate so that
	// pathological weights cannot stall an estimate.
	DefaultSkipCeiling = 10000

	// DefaultSearchLow and DefaultSearchHigh bound the bisection interval
	// for the literal probability.
	DefaultSearchLow  = 0.1
	DefaultSearchHigh = 0.9

	// DefaultDelta is the probe offset for the central-difference
	// derivative estimate.
	DefaultDelta = 0.01

	// DefaultMaxRuns caps the outer stabilization loop.
	DefaultMaxRuns = 40

	// DefaultMaxAttempts caps the generate-until-valid retry loop of
	// GenerateOne and GenerateMany, per returned string.
	DefaultMaxAttempts = 10000
)

// stableWindow is the trailing-run window inspected by the stabilization
// check: once this many runs exist, tuning stops when their spread drops
// below the stability threshold.
const stableWindow = 3

// Branch probability split of the non-literal mass. The star branch takes
// half of what the literal leaves behind, union takes three tenths, and
// concatenation the rest; the four weights always sum to one.
const (
	starShare   = 0.5
	unionShare  = 0.3
	concatShare = 0.2
)

// Sub-expression recursion odds inside composite branches.
const (
	// starRecurseProb is the chance that a star wraps a deeper expression
	// rather than a single symbol.
	starRecurseProb = 0.7

	// unionRecurseProb is the chance that a union side recurses rather
	// than emitting a single symbol. Each side draws independently.
	unionRecurseProb = 0.5
)

// weightSumTol is the absolute tolerance accepted on the weight-vector sum.
const weightSumTol = 1e-9

// Sentinel errors. Every failure mode is a distinct, comparable value;
// callers branch with errors.Is.
var (
	// ErrEmptyAlphabet indicates a Config with no symbols at all.
	ErrEmptyAlphabet = errors.New("regexgen: alphabet must contain at least one symbol")

	// ErrBadAlphabet indicates an alphabet symbol outside [a-zA-Z]; the
	// structural rules count ASCII letters, so any other symbol makes the
	// literal-run requirement unsatisfiable.
	ErrBadAlphabet = errors.New("regexgen: alphabet symbols must be ASCII letters")

	// ErrBadLengthBounds indicates a length window violating 1 ≤ min ≤ max.
	ErrBadLengthBounds = errors.New("regexgen: length bounds must satisfy 1 <= min <= max")

	// ErrBadPrecision indicates a negative bisection tolerance.
	ErrBadPrecision = errors.New("regexgen: precision must be positive")

	// ErrBadStability indicates a negative stabilization threshold.
	ErrBadStability = errors.New("regexgen: stability threshold must be positive")

	// ErrBadLiteralProb indicates a literal probability outside [0, 1].
	ErrBadLiteralProb = errors.New("regexgen: literal probability must lie in [0,1]")

	// ErrBadWeights indicates a weight vector with a negative component or
	// a sum away from 1.
	ErrBadWeights = errors.New("regexgen: weights must be non-negative and sum to 1")

	// ErrBadCount indicates a non-positive requested sample count.
	ErrBadCount = errors.New("regexgen: requested count must be at least 1")

	// ErrBadOptions indicates an Options field outside its legal range
	// (negative budgets, inverted search interval, ceiling below target).
	ErrBadOptions = errors.New("regexgen: options field out of range")

	// ErrExhausted indicates that the per-string attempt budget ran out
	// before any candidate passed the validator.
	ErrExhausted = errors.New("regexgen: generation attempts exhausted without a valid candidate")
)

// Config describes what to synthesize: the symbol set, the admissible
// length window, and the convergence tolerances of the tuner.
//
// Zero Precision and StabilityThreshold inherit DefaultPrecision and
// DefaultStability; negative values are rejected.
type Config struct {
	// Alphabet holds the candidate symbols, one ASCII letter per rune.
	// Duplicates are dropped during parameter derivation.
	Alphabet string

	// MinLength and MaxLength bound the rune length of valid candidates.
	MinLength int
	MaxLength int

	// Precision is the width at which the bisection interval is considered
	// resolved.
	Precision float64

	// StabilityThreshold is the max spread across the last three tuning
	// runs at which the outer loop declares the estimate stable.
	StabilityThreshold float64
}

// Weights carries the four branch probabilities of the generator. A valid
// vector is component-wise non-negative and sums to 1.
type Weights struct {
	Literal float64
	Star    float64
	Union   float64
	Concat  float64
}

// WeightsFromLiteral spreads the probability mass left by literal across
// the composite branches: star 0.5, union 0.3, concatenation 0.2 of the
// remainder. Returns ErrBadLiteralProb when literal is outside [0, 1].
func WeightsFromLiteral(literal float64) (Weights, error) {
	if literal < 0 || literal > 1 {
		return Weights{}, ErrBadLiteralProb
	}
	rem := 1 - literal
	return Weights{
		Literal: literal,
		Star:    starShare * rem,
		Union:   unionShare * rem,
		Concat:  concatShare * rem,
	}, nil
}

// Validate reports ErrBadWeights unless every component is non-negative
// and the components sum to 1 within a small absolute tolerance.
func (w Weights) Validate() error {
	if w.Literal < 0 || w.Star < 0 || w.Union < 0 || w.Concat < 0 {
		return ErrBadWeights
	}
	sum := w.Literal + w.Star + w.Union + w.Concat
	if diff := sum - 1; diff > weightSumTol || diff < -weightSumTol {
		return ErrBadWeights
	}
	return nil
}

// thresholds returns the cumulative branch boundaries used by the
// generator: a uniform draw below tLit selects literal, below tStar star,
// below tUnion union, and anything above concatenation.
func (w Weights) thresholds() (tLit, tStar, tUnion float64) {
	tLit = w.Literal
	tStar = tLit + w.Star
	tUnion = tStar + w.Union
	return tLit, tStar, tUnion
}

// Observer receives diagnostic events from the tuner. Implementations
// must treat the events as read-only telemetry: observers run on the
// tuning goroutine and cannot influence results.
type Observer interface {
	// ObserveStep fires once per bisection iteration with the interval
	// midpoint, the probe-averaged score estimate at the midpoint, and the
	// central-difference derivative. run counts from 1.
	ObserveStep(run, iteration int, mid, score, derivative float64)

	// ObserveRun fires after each completed bisection run with the
	// literal probability that run settled on.
	ObserveRun(run int, literalProb float64)
}

// TuneResult is the outcome of a full tuning session.
type TuneResult struct {
	// LiteralProb is the mean literal probability across all runs.
	LiteralProb float64

	// Weights is LiteralProb spread through WeightsFromLiteral.
	Weights Weights

	// Runs holds each bisection run's result in execution order.
	Runs []float64

	// Converged reports whether the trailing-run spread dropped below the
	// stability threshold before the run ceiling (or time budget) hit.
	// A false value is a quality signal, not a failure.
	Converged bool
}

// Options carries the operational knobs of tuning and generation. The
// zero value of every field means "use the package default"; negative
// values (and an inverted search interval) yield ErrBadOptions.
type Options struct {
	// Seed selects the deterministic random stream. Zero selects the
	// fixed default stream, so the zero value is still reproducible.
	Seed int64

	// Workers bounds trial parallelism. One means fully sequential
	// evaluation. Reproducing a run on another machine requires pinning
	// Workers along with Seed, since the stream split depends on it.
	Workers int

	// Trials is the number of generate-and-validate trials per validity
	// estimate.
	Trials int

	// SkipTarget is the number of minimum-length candidates a skip
	// estimate collects before counting the surplus attempts.
	SkipTarget int

	// SkipBatch is the number of candidates generated per dispatch while
	// collecting toward SkipTarget.
	SkipBatch int

	// SkipCeiling caps total attempts per skip estimate; must be at least
	// SkipTarget.
	SkipCeiling int

	// SearchLow and SearchHigh bound the literal-probability bisection.
	SearchLow  float64
	SearchHigh float64

	// Delta is the probe offset of the derivative estimate.
	Delta float64

	// MaxRuns caps the outer stabilization loop.
	MaxRuns int

	// MaxAttempts caps the generate-until-valid retry loop per returned
	// string.
	MaxAttempts int

	// TimeLimit is a soft wall-clock budget for Tune, checked between
	// bisection runs. At least one run always completes. Zero disables it.
	TimeLimit time.Duration

	// Observer receives tuning diagnostics. Nil disables observation.
	Observer Observer

	// Runner overrides trial execution. Nil builds a runner from Seed and
	// Workers (sequential when Workers == 1, pooled otherwise).
	Runner TrialRunner
}

// DefaultOptions returns the documented defaults: full parallelism on the
// local CPU count and the stock trial and search budgets.
func DefaultOptions() Options {
	return Options{
		Workers:     runtime.NumCPU(),
		Trials:      DefaultTrials,
		SkipTarget:  DefaultSkipTarget,
		SkipBatch:   DefaultSkipBatch,
		SkipCeiling: DefaultSkipCeiling,
		SearchLow:   DefaultSearchLow,
		SearchHigh:  DefaultSearchHigh,
		Delta:       DefaultDelta,
		MaxRuns:     DefaultMaxRuns,
		MaxAttempts: DefaultMaxAttempts,
	}
}

// normalized fills zero fields with defaults and rejects out-of-range
// values. All entry points normalize exactly once, up front.
func (o Options) normalized() (Options, error) {
	d := DefaultOptions()
	if o.Workers == 0 {
		o.Workers = d.Workers
	}
	if o.Trials == 0 {
		o.Trials = d.Trials
	}
	if o.SkipTarget == 0 {
		o.SkipTarget = d.SkipTarget
	}
	if o.SkipBatch == 0 {
		o.SkipBatch = d.SkipBatch
	}
	if o.SkipCeiling == 0 {
		o.SkipCeiling = d.SkipCeiling
	}
	if o.SearchLow == 0 {
		o.SearchLow = d.SearchLow
	}
	if o.SearchHigh == 0 {
		o.SearchHigh = d.SearchHigh
	}
	if o.Delta == 0 {
		o.Delta = d.Delta
	}
	if o.MaxRuns == 0 {
		o.MaxRuns = d.MaxRuns
	}
	if o.MaxAttempts == 0 {
		o.MaxAttempts = d.MaxAttempts
	}

	switch {
	case o.Workers < 1,
		o.Trials < 1,
		o.SkipTarget < 1,
		o.SkipBatch < 1,
		o.SkipCeiling < o.SkipTarget,
		o.MaxRuns < 1,
		o.MaxAttempts < 1,
		o.Delta < 0,
		o.TimeLimit < 0:
		return o, ErrBadOptions
	case o.SearchLow < 0, o.SearchHigh > 1, o.SearchLow >= o.SearchHigh:
		return o, ErrBadOptions
	}
	return o, nil
}
