// Package dfa - JSON codec for the canonical table shape.
package dfa

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"unicode/utf8"
)

// wireDFA is the canonical encoding: decimal state keys, single-character
// symbol keys. dead_states is derived on encode and ignored on decode.
type wireDFA struct {
	StartState   State                       `json:"start_state"`
	AcceptStates []State                     `json:"accept_states"`
	DeadStates   []State                     `json:"dead_states"`
	Transitions  map[string]map[string]State `json:"transitions"`
	Regex        string                      `json:"regex,omitempty"`
}

// MarshalJSON encodes the machine in the canonical shape. State lists are
// sorted and the encoder orders object keys, so equal machines encode to
// equal bytes.
func (d *DFA) MarshalJSON() ([]byte, error) {
	dead := d.DeadStates()
	if dead == nil {
		dead = []State{}
	}
	table := make(map[string]map[string]State, len(d.trans))
	for s, row := range d.trans {
		wireRow := make(map[string]State, len(row))
		for sym, t := range row {
			wireRow[string(sym)] = t
		}
		table[strconv.Itoa(int(s))] = wireRow
	}
	return json.Marshal(wireDFA{
		StartState:   d.start,
		AcceptStates: d.AcceptStates(),
		DeadStates:   dead,
		Transitions:  table,
		Regex:        d.label,
	})
}

// UnmarshalJSON decodes the canonical shape and revalidates the result
// through New, so a decoded machine upholds the same invariants as a
// constructed one. dead_states in the input is ignored and derived fresh.
func (d *DFA) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var w wireDFA
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("%w: %v", ErrBadEncoding, err)
	}
	table := make(map[State]map[rune]State, len(w.Transitions))
	for key, row := range w.Transitions {
		id, err := strconv.Atoi(key)
		if err != nil {
			return fmt.Errorf("%w: state key %q", ErrBadEncoding, key)
		}
		symbols := make(map[rune]State, len(row))
		for sym, t := range row {
			r, size := utf8.DecodeRuneInString(sym)
			if size == 0 || size != len(sym) || (r == utf8.RuneError && size == 1) {
				return fmt.Errorf("%w: symbol key %q", ErrBadEncoding, sym)
			}
			symbols[r] = t
		}
		table[State(id)] = symbols
	}
	built, err := New(w.StartState, w.AcceptStates, table, w.Regex)
	if err != nil {
		return err
	}
	*d = *built
	return nil
}
