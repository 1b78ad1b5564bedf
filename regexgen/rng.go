// Package regexgen - deterministic random streams.
//
// All randomness in this package flows through *rand.Rand values built
// here. Policy:
//   - seed==0 ⇒ a fixed default seed, so zero-valued Options reproduce.
//   - math/rand.Rand is not goroutine-safe; parallel trial workers each
//     get an independent stream via deriveRNG, never a shared one.
//   - No time-based sources anywhere: same seed ⇒ identical results.
package regexgen

import "math/rand"

// defaultRNGSeed backs the seed==0 policy. Arbitrary but frozen.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand for seed, mapping zero
// to defaultRNGSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream identifier through a
// SplitMix64 finalizer so sibling streams stay decorrelated. Constants
// are the canonical SplitMix64 multipliers (Vigna 2014).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// deriveRNG creates an independent child stream from base and a stream
// identifier. base.Int63() is consumed once per derivation, so reusing a
// stream id by mistake still yields distinct children. nil base derives
// from the default seed. Call during setup, not in hot loops.
func deriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	parent := defaultRNGSeed
	if base != nil {
		parent = base.Int63()
	}
	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}
