// Package regexgen_test provides the shared helpers and fixtures used
// across *_test.go files in this package. Helpers stay minimal and
// stdlib-only; each focused test file owns its own scenarios.
package regexgen_test

import (
	"testing"

	"github.com/ragrwal1/CSE-355-Final-Project-SP25/regexgen"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// seedDet is the deterministic seed used wherever a fixed stream matters.
	seedDet = int64(42)

	// litMid is a mid-interval literal probability with healthy validity on
	// the narrow fixture config.
	litMid = 0.5
)

// cfgNarrow is the small fixture: two symbols, tight window. Derived
// values: run floor 2, depth ceiling 5.
func cfgNarrow() regexgen.Config {
	return regexgen.Config{Alphabet: "ab", MinLength: 4, MaxLength: 12}
}

// cfgWide is the end-to-end fixture: five symbols, window [4,20]. Derived
// values: run floor 2, depth ceiling 6.
func cfgWide() regexgen.Config {
	return regexgen.Config{Alphabet: "abcde", MinLength: 4, MaxLength: 20}
}

// tinyOpts returns sequential options with budgets small enough for fast,
// fully deterministic test runs.
func tinyOpts() regexgen.Options {
	o := regexgen.DefaultOptions()
	o.Seed = seedDet
	o.Workers = 1
	o.Trials = 40
	o.SkipTarget = 10
	o.SkipBatch = 10
	o.SkipCeiling = 100
	o.MaxRuns = 5
	return o
}

// mustParams derives Params from cfg or aborts the test.
func mustParams(tb testing.TB, cfg regexgen.Config) regexgen.Params {
	tb.Helper()
	p, err := regexgen.NewParams(cfg)
	if err != nil {
		tb.Fatalf("NewParams(%+v): unexpected error %v", cfg, err)
	}
	return p
}

// mustWeights derives a weight vector from a literal probability or
// aborts the test.
func mustWeights(tb testing.TB, literal float64) regexgen.Weights {
	tb.Helper()
	w, err := regexgen.WeightsFromLiteral(literal)
	if err != nil {
		tb.Fatalf("WeightsFromLiteral(%v): unexpected error %v", literal, err)
	}
	return w
}
