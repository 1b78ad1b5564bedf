// Package dfa - random machine synthesis.
package dfa

import (
	"math/rand"
	"sort"
)

// defaultSeed replaces a zero Random seed. Zero means "use the fixed
// default stream", never "randomize".
const defaultSeed int64 = 1

// Random builds a uniformly random total machine over the deduplicated
// alphabet, with a state count drawn from [minStates, maxStates]. The
// single accept state is drawn from the set reachable from the random
// start state, so every machine accepts at least one string. The same
// seed reproduces the machine exactly; a zero seed selects the default.
func Random(alphabet string, minStates, maxStates int, seed int64) (*DFA, error) {
	symbols := dedupeRunes(alphabet)
	if len(symbols) == 0 {
		return nil, ErrEmptyAlphabet
	}
	if minStates < 1 || maxStates < minStates {
		return nil, ErrBadStateCount
	}
	if seed == 0 {
		seed = defaultSeed
	}
	rng := rand.New(rand.NewSource(seed))

	n := minStates + rng.Intn(maxStates-minStates+1)
	trans := make(map[State]map[rune]State, n)
	for s := State(0); s < State(n); s++ {
		row := make(map[rune]State, len(symbols))
		for _, sym := range symbols {
			row[sym] = State(rng.Intn(n))
		}
		trans[s] = row
	}
	start := State(rng.Intn(n))

	reachable := reachableFrom(trans, start, symbols)
	accept := reachable[rng.Intn(len(reachable))]

	return New(start, []State{accept}, trans, "")
}

// reachableFrom walks the table breadth-first from start, following
// symbols in the given order, and returns the visited states ascending.
// The start state itself is always included.
func reachableFrom(trans map[State]map[rune]State, start State, symbols []rune) []State {
	seen := map[State]struct{}{start: {}}
	queue := []State{start}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, sym := range symbols {
			t := trans[s][sym]
			if _, ok := seen[t]; !ok {
				seen[t] = struct{}{}
				queue = append(queue, t)
			}
		}
	}
	out := make([]State, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// dedupeRunes keeps the first occurrence of each rune, in input order.
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
