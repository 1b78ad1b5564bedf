package dfa_test

import (
	"encoding/json"
	"testing"

	"github.com/ragrwal1/CSE-355-Final-Project-SP25/dfa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestJSON_MarshalShape: the encoding uses the canonical key set with
// sorted state lists and a derived dead_states entry.
func TestJSON_MarshalShape(t *testing.T) {
	m := fixtureMachine(t)

	raw, err := json.Marshal(m)
	require.NoError(t, err)

	s := string(raw)
	assert.Contains(t, s, `"start_state":3`)
	assert.Contains(t, s, `"accept_states":[0]`)
	assert.Contains(t, s, `"dead_states":[1]`)
	assert.Contains(t, s, `"transitions":{"0":`)
	assert.Contains(t, s, `"regex":"(cc|a)c*"`)
}

// TestJSON_OmitsEmptyLabel: unlabeled machines drop the regex key and an
// acceptless machine still encodes explicit empty lists.
func TestJSON_OmitsEmptyLabel(t *testing.T) {
	m, err := dfa.New(0, nil, map[dfa.State]map[rune]dfa.State{
		0: {'a': 0},
	}, "")
	require.NoError(t, err)

	raw, err := json.Marshal(m)
	require.NoError(t, err)

	s := string(raw)
	assert.NotContains(t, s, `"regex"`)
	assert.Contains(t, s, `"accept_states":[]`)
	assert.Contains(t, s, `"dead_states":[0]`)
}

// TestJSON_RoundTrip: decode(encode(m)) preserves both the bytes and the
// recognized language.
func TestJSON_RoundTrip(t *testing.T) {
	m := fixtureMachine(t)

	raw, err := json.Marshal(m)
	require.NoError(t, err)

	var decoded dfa.DFA
	require.NoError(t, json.Unmarshal(raw, &decoded))

	again, err := json.Marshal(&decoded)
	require.NoError(t, err)
	assert.Equal(t, raw, again, "encoding must be byte-stable across a round trip")

	assert.Equal(t, dfa.State(3), decoded.Start())
	assert.Equal(t, "(cc|a)c*", decoded.Label())
	for _, input := range []string{"a", "cc", "accc", "b", "", "ca"} {
		want, err := m.Accepts(input)
		require.NoError(t, err)
		got, err := decoded.Accepts(input)
		require.NoError(t, err)
		assert.Equal(t, want, got, "input %q", input)
	}
}

// TestJSON_DeadStatesIgnoredOnDecode: a lying dead_states entry is
// discarded; the decoder recomputes it from the table.
func TestJSON_DeadStatesIgnoredOnDecode(t *testing.T) {
	raw := []byte(`{
		"start_state": 3,
		"accept_states": [0],
		"dead_states": [0, 2, 3],
		"transitions": {
			"0": {"a": 1, "b": 1, "c": 0, "d": 1},
			"1": {"a": 1, "b": 1, "c": 1, "d": 1},
			"2": {"a": 1, "b": 1, "c": 0, "d": 1},
			"3": {"a": 0, "b": 1, "c": 2, "d": 1}
		}
	}`)

	var m dfa.DFA
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.Equal(t, []dfa.State{1}, m.DeadStates())
}

// TestJSON_DecodeErrors: malformed payloads surface ErrBadEncoding, and
// well-formed payloads describing broken machines surface the
// construction sentinels.
func TestJSON_DecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want error
	}{
		{
			name: "not an object",
			raw:  `[1,2,3]`,
			want: dfa.ErrBadEncoding,
		},
		{
			name: "state key not a number",
			raw:  `{"start_state":0,"accept_states":[],"transitions":{"x":{"a":0}}}`,
			want: dfa.ErrBadEncoding,
		},
		{
			name: "symbol key not a single rune",
			raw:  `{"start_state":0,"accept_states":[],"transitions":{"0":{"ab":0}}}`,
			want: dfa.ErrBadEncoding,
		},
		{
			name: "empty symbol key",
			raw:  `{"start_state":0,"accept_states":[],"transitions":{"0":{"":0}}}`,
			want: dfa.ErrBadEncoding,
		},
		{
			name: "partial table",
			raw:  `{"start_state":0,"accept_states":[],"transitions":{"0":{"a":1,"b":1},"1":{"a":0}}}`,
			want: dfa.ErrPartialTable,
		},
		{
			name: "unknown start",
			raw:  `{"start_state":9,"accept_states":[],"transitions":{"0":{"a":0}}}`,
			want: dfa.ErrUnknownState,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var m dfa.DFA
			err := json.Unmarshal([]byte(tc.raw), &m)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestJSON_NullIsNoOp: decoding a JSON null leaves the receiver untouched,
// matching the convention of the standard library unmarshalers.
func TestJSON_NullIsNoOp(t *testing.T) {
	var m dfa.DFA
	assert.NoError(t, json.Unmarshal([]byte(`null`), &m))
}
