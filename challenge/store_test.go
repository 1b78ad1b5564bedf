package challenge_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ragrwal1/CSE-355-Final-Project-SP25/challenge"
	"github.com/ragrwal1/CSE-355-Final-Project-SP25/dfa"
	"github.com/ragrwal1/CSE-355-Final-Project-SP25/regexgen"
)

// memStore opens an ephemeral store and tears it down with the test.
func memStore(t *testing.T) *challenge.Store {
	t.Helper()
	st, err := challenge.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

// sampleRound builds a fully populated round with a fixed identity, so
// round trips can be compared field by field.
func sampleRound(t *testing.T, id string, at time.Time) *challenge.Challenge {
	t.Helper()
	w, err := regexgen.WeightsFromLiteral(0.4)
	require.NoError(t, err)
	machine, err := dfa.New(3, []dfa.State{0}, map[dfa.State]map[rune]dfa.State{
		0: {'a': 1, 'b': 1, 'c': 0, 'd': 1},
		1: {'a': 1, 'b': 1, 'c': 1, 'd': 1},
		2: {'a': 1, 'b': 1, 'c': 0, 'd': 1},
		3: {'a': 0, 'b': 1, 'c': 2, 'd': 1},
	}, "(cc|a)c*")
	require.NoError(t, err)

	return &challenge.Challenge{
		ID:        id,
		CreatedAt: at,
		Config: regexgen.Config{
			Alphabet:           "abcd",
			MinLength:          4,
			MaxLength:          16,
			Precision:          0.01,
			StabilityThreshold: 0.001,
		},
		Weights:  w,
		Patterns: []string{"aab(ab|ba)*", "(ab|ba)*aab*"},
		Machine:  machine,
	}
}

// TestStore_SaveLoadRoundTrip: every field survives persistence, including
// the exact timestamp and the machine's behavior.
func TestStore_SaveLoadRoundTrip(t *testing.T) {
	st := memStore(t)
	ctx := context.Background()
	at := time.Date(2025, 4, 18, 10, 30, 0, 123456789, time.UTC)
	want := sampleRound(t, "round-1", at)

	require.NoError(t, st.Save(ctx, want))

	got, err := st.Load(ctx, "round-1")
	require.NoError(t, err)

	assert.Equal(t, want.ID, got.ID)
	assert.True(t, want.CreatedAt.Equal(got.CreatedAt), "want %v, got %v", want.CreatedAt, got.CreatedAt)
	assert.Equal(t, want.Config, got.Config)
	assert.Equal(t, want.Weights, got.Weights)
	assert.Equal(t, want.Patterns, got.Patterns)

	require.NotNil(t, got.Machine)
	assert.Equal(t, want.Machine.Label(), got.Machine.Label())
	for _, input := range []string{"a", "cc", "b", ""} {
		wantOK, err := want.Machine.Accepts(input)
		require.NoError(t, err)
		gotOK, err := got.Machine.Accepts(input)
		require.NoError(t, err)
		assert.Equal(t, wantOK, gotOK, "input %q", input)
	}
}

// TestStore_SaveReplaces: saving an existing ID overwrites the row.
func TestStore_SaveReplaces(t *testing.T) {
	st := memStore(t)
	ctx := context.Background()
	round := sampleRound(t, "round-1", time.Now().UTC())

	require.NoError(t, st.Save(ctx, round))

	round.Patterns = []string{"bba(ab|ba)*"}
	require.NoError(t, st.Save(ctx, round))

	got, err := st.Load(ctx, "round-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"bba(ab|ba)*"}, got.Patterns)

	all, err := st.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 1, "replace must not duplicate the row")
}

// TestStore_NilMachineRoundTrip: pattern-only rounds persist with a NULL
// machine column and come back with a nil machine.
func TestStore_NilMachineRoundTrip(t *testing.T) {
	st := memStore(t)
	ctx := context.Background()
	round := sampleRound(t, "round-1", time.Now().UTC())
	round.Machine = nil

	require.NoError(t, st.Save(ctx, round))

	got, err := st.Load(ctx, "round-1")
	require.NoError(t, err)
	assert.Nil(t, got.Machine)
}

// TestStore_LoadMissing: unknown IDs surface ErrNotFound.
func TestStore_LoadMissing(t *testing.T) {
	st := memStore(t)

	_, err := st.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, challenge.ErrNotFound)
}

// TestStore_ListOrderAndLimit: newest first, with an optional cap.
func TestStore_ListOrderAndLimit(t *testing.T) {
	st := memStore(t)
	ctx := context.Background()
	base := time.Date(2025, 4, 18, 12, 0, 0, 0, time.UTC)

	for i, id := range []string{"old", "mid", "new"} {
		round := sampleRound(t, id, base.Add(time.Duration(i)*time.Hour))
		require.NoError(t, st.Save(ctx, round))
	}

	all, err := st.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "new", all[0].ID)
	assert.Equal(t, "mid", all[1].ID)
	assert.Equal(t, "old", all[2].ID)

	top, err := st.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "new", top[0].ID)
	assert.Equal(t, "mid", top[1].ID)
}

// TestStore_Delete: removal is visible to Load, and deleting twice
// surfaces ErrNotFound.
func TestStore_Delete(t *testing.T) {
	st := memStore(t)
	ctx := context.Background()
	round := sampleRound(t, "round-1", time.Now().UTC())

	require.NoError(t, st.Save(ctx, round))
	require.NoError(t, st.Delete(ctx, "round-1"))

	_, err := st.Load(ctx, "round-1")
	assert.ErrorIs(t, err, challenge.ErrNotFound)

	err = st.Delete(ctx, "round-1")
	assert.ErrorIs(t, err, challenge.ErrNotFound)
}

// TestStore_BuildThenPersist: the full pipeline round-trips through the
// store without losing validity of the patterns.
func TestStore_BuildThenPersist(t *testing.T) {
	st := memStore(t)
	ctx := context.Background()

	cfg := regexgen.Config{Alphabet: "abcd", MinLength: 4, MaxLength: 16}
	w, err := regexgen.WeightsFromLiteral(0.5)
	require.NoError(t, err)
	opts := regexgen.DefaultOptions()
	opts.Seed = 42
	opts.Workers = 1

	round, err := challenge.Build(cfg, w, 4, opts)
	require.NoError(t, err)
	require.NoError(t, st.Save(ctx, round))

	got, err := st.Load(ctx, round.ID)
	require.NoError(t, err)

	p, err := regexgen.NewParams(cfg)
	require.NoError(t, err)
	require.Len(t, got.Patterns, 4)
	for _, pat := range got.Patterns {
		assert.True(t, regexgen.IsValid(p, pat), "pattern %q", pat)
	}
	require.NotNil(t, got.Machine)
	assert.NotContains(t, got.Machine.DeadStates(), got.Machine.Start())
}
