// Package regexgen_test - generator behavior.
// Focus: determinism under a fixed stream, branch selection at the
// probability extremes, depth-ceiling enforcement, alphabet closure.
package regexgen_test

import (
	"math/rand"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/ragrwal1/CSE-355-Final-Project-SP25/regexgen"
)

// Two identical streams must reproduce the exact candidate sequence.
func TestGenerate_DeterministicPerSeed(t *testing.T) {
	p := mustParams(t, cfgNarrow())
	w := mustWeights(t, litMid)

	r1 := rand.New(rand.NewSource(seedDet))
	r2 := rand.New(rand.NewSource(seedDet))
	for i := 0; i < 50; i++ {
		a := regexgen.Generate(p, w, r1)
		b := regexgen.Generate(p, w, r2)
		if a != b {
			t.Fatalf("candidate %d diverged: %q vs %q", i, a, b)
		}
	}
}

// A nil stream falls back to the fixed default stream, so two fresh nil
// calls agree with each other.
func TestGenerate_NilRNGIsDefaultStream(t *testing.T) {
	p := mustParams(t, cfgNarrow())
	w := mustWeights(t, litMid)

	if a, b := regexgen.Generate(p, w, nil), regexgen.Generate(p, w, nil); a != b {
		t.Fatalf("nil-stream candidates diverged: %q vs %q", a, b)
	}
}

// Literal probability 1 starves every composite branch: the generator can
// only emit single symbols.
func TestGenerate_AllLiteralEmitsSingleSymbols(t *testing.T) {
	p := mustParams(t, cfgNarrow())
	w := regexgen.Weights{Literal: 1}
	if err := w.Validate(); err != nil {
		t.Fatalf("degenerate literal vector must validate: %v", err)
	}

	r := rand.New(rand.NewSource(seedDet))
	for i := 0; i < 100; i++ {
		s := regexgen.Generate(p, w, r)
		if utf8.RuneCountInString(s) != 1 || !strings.Contains("ab", s) {
			t.Fatalf("candidate %d = %q, want one alphabet symbol", i, s)
		}
	}
}

// Concatenation probability 1 forces a full binary tree that bottoms out
// at the depth ceiling: exactly 2^MaxDepth leaf symbols, no operators.
func TestGenerate_AllConcatRespectsDepthCeiling(t *testing.T) {
	p := mustParams(t, cfgNarrow()) // MaxDepth 5
	w := regexgen.Weights{Concat: 1}

	r := rand.New(rand.NewSource(seedDet))
	for i := 0; i < 10; i++ {
		s := regexgen.Generate(p, w, r)
		if got, want := utf8.RuneCountInString(s), 32; got != want {
			t.Fatalf("candidate %d has %d symbols, want %d", i, got, want)
		}
		if strings.ContainsAny(s, "*|()") {
			t.Fatalf("candidate %d = %q carries operators on a concat-only vector", i, s)
		}
	}
}

// Whatever the weights, emitted characters stay within the alphabet plus
// the four structural operators.
func TestGenerate_AlphabetClosure(t *testing.T) {
	p := mustParams(t, cfgWide())
	w := mustWeights(t, 0.3)

	r := rand.New(rand.NewSource(seedDet))
	for i := 0; i < 200; i++ {
		s := regexgen.Generate(p, w, r)
		if len(s) == 0 {
			t.Fatalf("candidate %d is empty", i)
		}
		for _, ch := range s {
			if !strings.ContainsRune("abcde(|)*", ch) {
				t.Fatalf("candidate %d = %q contains foreign character %q", i, s, ch)
			}
		}
	}
}
