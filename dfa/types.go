// Package dfa - machine type, sentinel errors, construction, table walks.
package dfa

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNoStates is returned when a transition table has no rows.
var ErrNoStates = errors.New("dfa: transition table has no states")

// ErrEmptyAlphabet is returned when the alphabet resolves to zero symbols.
var ErrEmptyAlphabet = errors.New("dfa: alphabet must not be empty")

// ErrPartialTable is returned when a table row misses a symbol or carries
// symbols other rows lack; every row must cover the same alphabet.
var ErrPartialTable = errors.New("dfa: transition table is not total")

// ErrUnknownState is returned when a start, accept, or target state is not
// a row of the transition table.
var ErrUnknownState = errors.New("dfa: unknown state")

// ErrUnknownSymbol is returned by Step and Accepts for symbols outside the
// machine's alphabet.
var ErrUnknownSymbol = errors.New("dfa: symbol not in alphabet")

// ErrBadStateCount is returned by Random when the requested state-count
// bounds do not satisfy 1 <= min <= max.
var ErrBadStateCount = errors.New("dfa: state count bounds must satisfy 1 <= min <= max")

// ErrBadEncoding is returned when a serialized machine cannot be decoded.
var ErrBadEncoding = errors.New("dfa: malformed machine encoding")

// State identifies one row of the transition table.
type State int

// DFA is an immutable deterministic finite automaton over a fixed alphabet:
// a total transition table state × symbol → state, one start state, and a
// (possibly empty) set of accept states. Construct with New or Random;
// the zero value is not usable.
type DFA struct {
	alphabet []rune
	start    State
	accept   map[State]struct{}
	trans    map[State]map[rune]State
	label    string
}

// New validates and copies a transition table into a DFA. The alphabet is
// inferred from the table rows, which must all cover the same symbol set.
// Every transition target, the start state, and every accept state must be
// a row of the table. An empty accept list is allowed; such a machine
// rejects every input. The label is opaque metadata, typically the pattern
// the machine illustrates.
func New(start State, accept []State, transitions map[State]map[rune]State, label string) (*DFA, error) {
	if len(transitions) == 0 {
		return nil, ErrNoStates
	}
	states := make([]State, 0, len(transitions))
	for s := range transitions {
		states = append(states, s)
	}
	sort.Slice(states, func(i, j int) bool { return states[i] < states[j] })

	// The lowest-numbered row fixes the alphabet; every other row must
	// cover exactly the same symbols.
	alphabet := make([]rune, 0, len(transitions[states[0]]))
	for sym := range transitions[states[0]] {
		alphabet = append(alphabet, sym)
	}
	if len(alphabet) == 0 {
		return nil, ErrEmptyAlphabet
	}
	sort.Slice(alphabet, func(i, j int) bool { return alphabet[i] < alphabet[j] })

	trans := make(map[State]map[rune]State, len(transitions))
	for _, s := range states {
		row := transitions[s]
		if len(row) != len(alphabet) {
			return nil, fmt.Errorf("%w: state %d covers %d symbols, want %d", ErrPartialTable, s, len(row), len(alphabet))
		}
		copied := make(map[rune]State, len(row))
		for _, sym := range alphabet {
			target, ok := row[sym]
			if !ok {
				return nil, fmt.Errorf("%w: state %d misses symbol %q", ErrPartialTable, s, sym)
			}
			if _, ok := transitions[target]; !ok {
				return nil, fmt.Errorf("%w: state %d maps %q to undeclared state %d", ErrUnknownState, s, sym, target)
			}
			copied[sym] = target
		}
		trans[s] = copied
	}

	if _, ok := trans[start]; !ok {
		return nil, fmt.Errorf("%w: start state %d", ErrUnknownState, start)
	}
	acceptSet := make(map[State]struct{}, len(accept))
	for _, s := range accept {
		if _, ok := trans[s]; !ok {
			return nil, fmt.Errorf("%w: accept state %d", ErrUnknownState, s)
		}
		acceptSet[s] = struct{}{}
	}

	return &DFA{
		alphabet: alphabet,
		start:    start,
		accept:   acceptSet,
		trans:    trans,
		label:    label,
	}, nil
}

// Start returns the start state.
func (d *DFA) Start() State { return d.start }

// Label returns the pattern annotation, empty when unset.
func (d *DFA) Label() string { return d.label }

// Alphabet returns a copy of the machine's symbols in ascending order.
func (d *DFA) Alphabet() []rune {
	out := make([]rune, len(d.alphabet))
	copy(out, d.alphabet)
	return out
}

// States returns every state in ascending order.
func (d *DFA) States() []State {
	out := make([]State, 0, len(d.trans))
	for s := range d.trans {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// AcceptStates returns the accept set in ascending order. The slice is
// never nil, so an acceptless machine yields an empty list.
func (d *DFA) AcceptStates() []State {
	out := make([]State, 0, len(d.accept))
	for s := range d.accept {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// IsAccepting reports whether s is an accept state.
func (d *DFA) IsAccepting(s State) bool {
	_, ok := d.accept[s]
	return ok
}

// Step follows the single transition out of s on symbol.
func (d *DFA) Step(s State, symbol rune) (State, error) {
	row, ok := d.trans[s]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownState, s)
	}
	target, ok := row[symbol]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSymbol, symbol)
	}
	return target, nil
}

// Accepts walks input symbol by symbol from the start state and reports
// whether the walk ends in an accept state. The walk fails on the first
// symbol outside the machine's alphabet.
func (d *DFA) Accepts(input string) (bool, error) {
	cur := d.start
	for i, sym := range input {
		next, ok := d.trans[cur][sym]
		if !ok {
			return false, fmt.Errorf("%w: %q at byte %d", ErrUnknownSymbol, sym, i)
		}
		cur = next
	}
	return d.IsAccepting(cur), nil
}

// DeadStates returns, in ascending order, the states from which no accept
// state is reachable. Such states are traps: once entered, the machine can
// never accept. Computed by walking the reversed table from the accept set.
func (d *DFA) DeadStates() []State {
	rev := make(map[State][]State, len(d.trans))
	for s, row := range d.trans {
		for _, t := range row {
			rev[t] = append(rev[t], s)
		}
	}

	alive := make(map[State]struct{}, len(d.accept))
	queue := make([]State, 0, len(d.accept))
	for s := range d.accept {
		alive[s] = struct{}{}
		queue = append(queue, s)
	}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, src := range rev[s] {
			if _, seen := alive[src]; !seen {
				alive[src] = struct{}{}
				queue = append(queue, src)
			}
		}
	}

	var dead []State
	for s := range d.trans {
		if _, ok := alive[s]; !ok {
			dead = append(dead, s)
		}
	}
	sort.Slice(dead, func(i, j int) bool { return dead[i] < dead[j] })
	return dead
}
