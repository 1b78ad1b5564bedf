// Package regexsynth is a constrained random-regex workbench: it grows
// candidate patterns over a small alphabet, filters them through a strict
// structural validator, and tunes the branch probabilities behind the
// growth until the yield stabilizes.
//
// 🚀 What is in the box?
//
//	A pure-Go library that brings together:
//		• Parameter derivation: run-length floor and recursion ceiling from a length window
//		• Generation: recursive descent over literal, star, union, and concat branches
//		• Validation: eight structural rules, from star budgets to trivial-union bans
//		• Tuning: derivative-guided bisection inside an outer stabilization loop
//		• Trials: sequential or bounded-parallel evaluation with per-chunk RNG streams
//		• Rounds: random state machines, UUID-tagged challenges, SQLite persistence
//		• Charts: an observer that records a tuning session and renders it as SVG
//
// ✨ Why this shape?
//
//   - Deterministic – every random draw flows from an injected seed
//   - Observable – tuning emits per-step events without influencing results
//   - Bounded – every loop that could spin carries a cap and a sentinel
//
// Everything is organized under four subpackages:
//
//	regexgen/  — parameters, validator, generator, trial evaluator, tuner, facade
//	dfa/       — validated state tables: stepping, acceptance walks, dead states, JSON
//	challenge/ — playable rounds (patterns + machine) and their SQLite store
//	plotter/   — tuning-session history and a small SVG line renderer
//
// Quick taste:
//
//	cfg := regexgen.Config{Alphabet: "abcde", MinLength: 4, MaxLength: 20}
//	opts := regexgen.DefaultOptions()
//	opts.Seed = 42
//	w, _ := regexgen.TuneWeights(cfg, opts)
//	patterns, _ := regexgen.GenerateMany(cfg, w, 10, opts)
//
// Dive into the per-package docs for contracts, complexity notes, and
// runnable examples.
//
//	go get github.com/ragrwal1/CSE-355-Final-Project-SP25
package regexsynth
