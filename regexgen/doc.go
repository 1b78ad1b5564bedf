// Package regexgen synthesizes random regular expressions under structural
// constraints and tunes the branch probabilities that drive the synthesis.
//
// 🚀 What does it do?
//
//	regexgen grows candidate expressions by recursive descent over four
//	branches (literal, star, union, concatenation), filters them through a
//	strict structural validator, and searches for the literal-branch
//	probability that maximizes a composite quality score:
//	  • validity rate  — how often raw candidates pass the validator
//	  • skip cost      — how many extra attempts a batch of usable
//	    candidates requires beyond the requested target
//
// ✨ Key features:
//   - parameter derivation from an alphabet and a length window
//     (literal-run floor, recursion ceiling)
//   - total, pure structural validator (length window, star and union
//     budgets, nesting caps, literal-run requirement, trivial-union ban)
//   - deterministic seeded generation; same seed ⇒ same output
//   - derivative-guided bisection of the literal probability with an
//     outer stabilization loop over repeated runs
//   - trial evaluation over a sequential or bounded-parallel runner
//     (sourcegraph/conc), decorrelated SplitMix64 worker streams
//   - observer hook for per-step and per-run diagnostics that cannot
//     influence results
//
// ⚙️ Usage:
//
//	cfg := regexgen.Config{Alphabet: "abcde", MinLength: 4, MaxLength: 20}
//	opts := regexgen.DefaultOptions()
//	opts.Seed = 42
//
//	w, err := regexgen.TuneWeights(cfg, opts)
//	if err != nil {
//	  // handle ErrEmptyAlphabet, ErrBadLengthBounds, ...
//	}
//	samples, err := regexgen.GenerateMany(cfg, w, 10, opts)
//
// Determinism:
//
//	All randomness flows through injected *rand.Rand streams; nothing reads
//	the global source. A fixed Seed and a fixed Workers count reproduce
//	results exactly. Non-convergence of the outer loop is reported through
//	TuneResult.Converged, never as an error.
//
// See example_test.go for runnable examples.
package regexgen
