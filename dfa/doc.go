// Package dfa models deterministic finite automata as validated state
// tables: construction, stepping, acceptance walks, dead-state analysis,
// random machine synthesis, and a JSON codec for the canonical table shape.
//
// 🚀 What does it do?
//
//	A DFA here is a total transition table state × symbol → state with one
//	start state and a set of accept states. The package does not parse or
//	minimize regular expressions; a machine may carry a Label naming the
//	pattern it illustrates, but the label is opaque metadata.
//
// ✨ Key features:
//   - New validates totality and closure up front, so every constructed
//     machine can be stepped without per-step table checks
//   - Accepts walks an input string from the start state; Step exposes
//     single transitions for callers animating a walk
//   - DeadStates reports the states from which no accept state is
//     reachable (reverse search over the table)
//   - Random synthesizes a uniformly random total machine whose accept
//     state is drawn from the start-reachable set, so every machine
//     accepts at least one string
//   - MarshalJSON/UnmarshalJSON round-trip the canonical wire shape
//     (start_state, accept_states, dead_states, transitions, regex)
//
// ⚙️ Usage:
//
//	m, err := dfa.Random("abcd", 3, 6, 42)
//	if err != nil { ... }
//	ok, err := m.Accepts("abba")
//
// Determinism:
//
//	Random draws from a private seeded source; a fixed seed reproduces the
//	machine exactly. Accessors return states and symbols in sorted order,
//	and the JSON encoding is byte-stable for a given machine.
package dfa
