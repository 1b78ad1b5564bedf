// Package regexgen - probabilistic candidate generation.
package regexgen

import "math/rand"

// Generate grows one candidate expression by recursive descent. A uniform
// draw against the cumulative weight thresholds selects the branch:
//
//	literal — a single random alphabet symbol
//	star    — a sub-expression (deeper with probability 0.7, else a
//	          symbol) followed by '*'
//	union   — "(L|R)" where each side independently recurses (p = 0.5)
//	          or emits a symbol
//	concat  — two one-level-deeper expressions back to back
//
// At MaxDepth the descent bottoms out on a single symbol, so output size
// is bounded and termination is unconditional. Candidates routinely fail
// the structural rules; callers filter through IsValid (GenerateOne and
// GenerateMany do this with a bounded retry).
//
// Contracts:
//   - p must come from NewParams; w must satisfy w.Validate. Both are
//     assumed, not re-checked, this deep in the hot path.
//   - rng==nil falls back to the deterministic default stream.
//
// Complexity: O(2^MaxDepth) worst case, constant in practice for the
// depth ceilings NewParams derives.
func Generate(p Params, w Weights, rng *rand.Rand) string {
	r := rng
	if r == nil {
		r = rngFromSeed(0)
	}
	return growExpr(p, w, r, 0)
}

// growExpr is the recursive core of Generate.
func growExpr(p Params, w Weights, r *rand.Rand, depth int) string {
	if depth >= p.MaxDepth {
		return string(pickSymbol(p, r))
	}

	tLit, tStar, tUnion := w.thresholds()
	u := r.Float64()
	switch {
	case u < tLit:
		return string(pickSymbol(p, r))

	case u < tStar:
		sub := string(pickSymbol(p, r))
		if r.Float64() < starRecurseProb {
			sub = growExpr(p, w, r, depth+1)
		}
		return sub + "*"

	case u < tUnion:
		return "(" + unionSide(p, w, r, depth) + "|" + unionSide(p, w, r, depth) + ")"

	default:
		return growExpr(p, w, r, depth+1) + growExpr(p, w, r, depth+1)
	}
}

// unionSide draws one side of an alternation: deeper expression or a
// single symbol, an even-odds choice per side.
func unionSide(p Params, w Weights, r *rand.Rand, depth int) string {
	if r.Float64() < unionRecurseProb {
		return growExpr(p, w, r, depth+1)
	}
	return string(pickSymbol(p, r))
}

// pickSymbol draws one alphabet symbol uniformly.
func pickSymbol(p Params, r *rand.Rand) rune {
	return p.Alphabet[r.Intn(len(p.Alphabet))]
}
