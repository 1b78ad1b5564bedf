// Package regexgen - parameter derivation.
//
// A Config is caller-facing; Params is the derived, generation-ready form:
// de-duplicated symbols, the literal-run floor, the recursion ceiling, and
// a precompiled run pattern. Derivation happens exactly once per entry
// point, before any randomness is drawn.
package regexgen

import (
	"fmt"
	"math"
	"regexp"
)

// Params is the derived parameter set all core operations run against.
// Build it with NewParams; a zero Params is not usable.
type Params struct {
	// Alphabet holds the distinct symbols in first-seen order.
	Alphabet []rune

	// MinLength and MaxLength bound the rune length of valid candidates.
	MinLength int
	MaxLength int

	// RunLength is the minimum count of consecutive letters a candidate
	// must contain somewhere: ceil(MinLength/4) + 1.
	RunLength int

	// MaxDepth is the generator's recursion ceiling:
	// max(2, floor(log2(MaxLength)) + 2).
	MaxDepth int

	// Precision is the resolved bisection tolerance.
	Precision float64

	// Stability is the resolved run-spread threshold.
	Stability float64

	// runPattern matches a literal run of at least RunLength letters.
	runPattern *regexp.Regexp
}

// Validate checks a Config stage by stage and returns the first violated
// sentinel: ErrEmptyAlphabet, ErrBadAlphabet, ErrBadLengthBounds,
// ErrBadPrecision, or ErrBadStability. Zero tolerances are legal and mean
// "use the default".
func (c Config) Validate() error {
	if len(c.Alphabet) == 0 {
		return ErrEmptyAlphabet
	}
	for _, r := range c.Alphabet {
		if !isLetter(r) {
			return ErrBadAlphabet
		}
	}
	if c.MinLength < 1 || c.MaxLength < c.MinLength {
		return ErrBadLengthBounds
	}
	if c.Precision < 0 {
		return ErrBadPrecision
	}
	if c.StabilityThreshold < 0 {
		return ErrBadStability
	}
	return nil
}

// NewParams validates cfg and derives the full parameter set.
//
// Contracts:
//   - Fails fast on the first Config violation; no randomness is touched.
//   - The run pattern is compiled here, once, and shared by every copy of
//     the returned Params.
//
// Complexity: O(len(alphabet)) plus one regexp compilation.
func NewParams(cfg Config) (Params, error) {
	if err := cfg.Validate(); err != nil {
		return Params{}, err
	}

	p := Params{
		Alphabet:  dedupeRunes(cfg.Alphabet),
		MinLength: cfg.MinLength,
		MaxLength: cfg.MaxLength,
		RunLength: runLengthFor(cfg.MinLength),
		MaxDepth:  maxDepthFor(cfg.MaxLength),
		Precision: cfg.Precision,
		Stability: cfg.StabilityThreshold,
	}
	if p.Precision == 0 {
		p.Precision = DefaultPrecision
	}
	if p.Stability == 0 {
		p.Stability = DefaultStability
	}
	p.runPattern = regexp.MustCompile(fmt.Sprintf(`[a-zA-Z]{%d,}`, p.RunLength))
	return p, nil
}

// runLengthFor derives the literal-run floor from the minimum length.
func runLengthFor(minLength int) int {
	return (minLength+3)/4 + 1
}

// maxDepthFor derives the recursion ceiling from the maximum length.
// The floor of 2 keeps composite branches reachable even for tiny windows.
func maxDepthFor(maxLength int) int {
	d := int(math.Floor(math.Log2(float64(maxLength)))) + 2
	if d < 2 {
		d = 2
	}
	return d
}

// isLetter reports whether r is an ASCII letter. The structural rules
// count exactly this class, so the alphabet is restricted to it.
func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// dedupeRunes returns the distinct runes of s in first-seen order.
func dedupeRunes(s string) []rune {
	seen := make(map[rune]struct{}, len(s))
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}
