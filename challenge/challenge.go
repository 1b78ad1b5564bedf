// Package challenge - round assembly.
package challenge

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ragrwal1/CSE-355-Final-Project-SP25/dfa"
	"github.com/ragrwal1/CSE-355-Final-Project-SP25/regexgen"
)

// State-count bounds for the machines rounds are played against. Small
// enough to draw by hand, large enough to hide the accept path.
const (
	buildMinStates = 3
	buildMaxStates = 6
)

// Challenge is one playable round: the configuration and weights the
// patterns were generated under, the patterns themselves, and a random
// machine for the walking screens. Machine may be nil for pattern-only
// rounds.
type Challenge struct {
	ID        string
	CreatedAt time.Time
	Config    regexgen.Config
	Weights   regexgen.Weights
	Patterns  []string
	Machine   *dfa.DFA
}

// Build assembles a round: count validator-passing patterns generated
// under cfg and w, plus a random machine over the same alphabet. The
// machine's seed follows opts.Seed, so a fixed seed reproduces the whole
// round except for its UUID and timestamp.
func Build(cfg regexgen.Config, w regexgen.Weights, count int, opts regexgen.Options) (*Challenge, error) {
	patterns, err := regexgen.GenerateMany(cfg, w, count, opts)
	if err != nil {
		return nil, fmt.Errorf("challenge: generate patterns: %w", err)
	}
	machine, err := dfa.Random(cfg.Alphabet, buildMinStates, buildMaxStates, opts.Seed)
	if err != nil {
		return nil, fmt.Errorf("challenge: build machine: %w", err)
	}
	return &Challenge{
		ID:        uuid.New().String(),
		CreatedAt: time.Now().UTC(),
		Config:    cfg,
		Weights:   w,
		Patterns:  patterns,
		Machine:   machine,
	}, nil
}
