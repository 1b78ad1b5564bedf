package dfa_test

import (
	"testing"

	"github.com/ragrwal1/CSE-355-Final-Project-SP25/dfa"
	"github.com/stretchr/testify/require"
)

// fixtureMachine builds the canonical 4-state machine for "(cc|a)c*" over
// the alphabet "abcd": start 3, accept 0, trap state 1.
func fixtureMachine(tb testing.TB) *dfa.DFA {
	tb.Helper()
	m, err := dfa.New(3, []dfa.State{0}, map[dfa.State]map[rune]dfa.State{
		0: {'a': 1, 'b': 1, 'c': 0, 'd': 1},
		1: {'a': 1, 'b': 1, 'c': 1, 'd': 1},
		2: {'a': 1, 'b': 1, 'c': 0, 'd': 1},
		3: {'a': 0, 'b': 1, 'c': 2, 'd': 1},
	}, "(cc|a)c*")
	require.NoError(tb, err)
	return m
}
