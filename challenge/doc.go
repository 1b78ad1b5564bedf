// Package challenge bundles the synthesis pipeline's artifacts into
// playable rounds and persists them.
//
// 🚀 What does it do?
//
//	A Challenge is one round of the guessing game: the generation config,
//	the branch weights it was played with, a batch of validator-passing
//	patterns, and a random state machine for the walking screens, all
//	under a UUID. Build assembles a round; Store keeps rounds in SQLite
//	(a file path or ":memory:") with Save, Load, List, and Delete.
//
// ⚙️ Usage:
//
//	cfg := regexgen.Config{Alphabet: "abcd", MinLength: 4, MaxLength: 16}
//	opts := regexgen.DefaultOptions()
//	opts.Seed = 42
//
//	w, err := regexgen.TuneWeights(cfg, opts)
//	// ...
//	ch, err := challenge.Build(cfg, w, 10, opts)
//	// ...
//	st, err := challenge.Open("rounds.db")
//	// ...
//	defer st.Close()
//	err = st.Save(ctx, ch)
//
// Storage notes:
//
//	Weights, patterns, and the machine persist as JSON columns; timestamps
//	persist as integer nanoseconds so ordering is exact. Load rebuilds the
//	machine through its validating decoder, so a corrupted row cannot
//	produce a broken automaton.
package challenge
