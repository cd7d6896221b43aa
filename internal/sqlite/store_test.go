package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinematics-lab/linkage/pkg/types"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "commits.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func samplePayload() Payload {
	return Payload{
		Mechanism:  "M[J[R, color[Green], P[0.0, 0.0], L[ground, L1]]]",
		LinkColors: map[string]string{"ground": "White", "L1": "Blue"},
		Storage:    [][]string{{"Crank", "M[]"}},
		Inputs:     []types.Variable{{Base: 0, Drive: 1, Value: 45}},
		Paths: map[string]types.Path{
			"Path_0": {Coords: [][]types.Coord{{{X: 1, Y: 2}}}},
		},
	}
}

func TestSaveAndGet(t *testing.T) {
	s := openStore(t)

	id, err := s.Save("master", "alice", "initial design", samplePayload())
	require.NoError(t, err)
	require.NotEmpty(t, id)

	c, err := s.Get(id)
	require.NoError(t, err)
	assert.Equal(t, id, c.ID)
	assert.Equal(t, "", c.Previous)
	assert.Equal(t, "master", c.Branch)
	assert.Equal(t, "alice", c.Author)
	assert.Equal(t, "initial design", c.Description)
	want := samplePayload()
	assert.Equal(t, want.Mechanism, c.Payload.Mechanism)
	assert.Equal(t, want.LinkColors, c.Payload.LinkColors)
	assert.Equal(t, want.Storage, c.Payload.Storage)
	assert.Equal(t, want.Inputs, c.Payload.Inputs)
	assert.Equal(t, want.Paths["Path_0"].Coords, c.Payload.Paths["Path_0"].Coords)
	assert.False(t, c.Date.IsZero())
}

func TestCommitChaining(t *testing.T) {
	s := openStore(t)

	first, err := s.Save("master", "alice", "first", samplePayload())
	require.NoError(t, err)
	second, err := s.Save("master", "alice", "second", samplePayload())
	require.NoError(t, err)

	c, err := s.Get(second)
	require.NoError(t, err)
	assert.Equal(t, first, c.Previous)

	head, err := s.Latest("master")
	require.NoError(t, err)
	assert.Equal(t, second, head.ID)

	// A new branch starts its own chain.
	other, err := s.Save("experiment", "bob", "fork", samplePayload())
	require.NoError(t, err)
	c, err = s.Get(other)
	require.NoError(t, err)
	assert.Equal(t, "", c.Previous)
}

func TestLog(t *testing.T) {
	s := openStore(t)

	log, err := s.Log()
	require.NoError(t, err)
	assert.Empty(t, log)

	_, err = s.Save("master", "alice", "first", samplePayload())
	require.NoError(t, err)
	_, err = s.Save("master", "alice", "second", samplePayload())
	require.NoError(t, err)

	log, err = s.Log()
	require.NoError(t, err)
	require.Len(t, log, 2)
	assert.Equal(t, "second", log[0].Description, "newest first")
	assert.Equal(t, "first", log[1].Description)
}

// Ordering must come from the time-sortable commit ids alone. RFC3339Nano
// trims trailing zeros, so the date strings do not sort chronologically
// (".1Z" compares after ".12Z"); a commit whose date string sorts last must
// still log, chain and resolve as head by its id.
func TestOrderingIgnoresDateStrings(t *testing.T) {
	s := openStore(t)

	first, err := s.Save("master", "alice", "first", samplePayload())
	require.NoError(t, err)
	second, err := s.Save("master", "alice", "second", samplePayload())
	require.NoError(t, err)

	_, err = s.db.Exec(`UPDATE commits SET date = ? WHERE commit_id = ?`,
		"2026-08-25T00:00:00.1Z", first)
	require.NoError(t, err)
	_, err = s.db.Exec(`UPDATE commits SET date = ? WHERE commit_id = ?`,
		"2026-08-25T00:00:00.12Z", second)
	require.NoError(t, err)

	head, err := s.Latest("master")
	require.NoError(t, err)
	assert.Equal(t, second, head.ID)

	log, err := s.Log()
	require.NoError(t, err)
	require.Len(t, log, 2)
	assert.Equal(t, second, log[0].ID, "newest first by id")
	assert.Equal(t, first, log[1].ID)

	third, err := s.Save("master", "alice", "third", samplePayload())
	require.NoError(t, err)
	c, err := s.Get(third)
	require.NoError(t, err)
	assert.Equal(t, second, c.Previous)
}

func TestAuthorsAndBranchesInterned(t *testing.T) {
	s := openStore(t)

	for _, desc := range []string{"one", "two", "three"} {
		_, err := s.Save("master", "alice", desc, samplePayload())
		require.NoError(t, err)
	}
	_, err := s.Save("experiment", "bob", "fork", samplePayload())
	require.NoError(t, err)

	authors, err := s.Authors()
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob"}, authors)

	branches, err := s.Branches()
	require.NoError(t, err)
	assert.Equal(t, []string{"experiment", "master"}, branches)
}

func TestNotFound(t *testing.T) {
	s := openStore(t)

	_, err := s.Get("no-such-id")
	assert.ErrorIs(t, err, ErrCommitNotFound)

	_, err = s.Latest("master")
	assert.ErrorIs(t, err, ErrNoCommits)
}

func TestReopenKeepsHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "commits.db")
	s, err := Open(path)
	require.NoError(t, err)
	id, err := s.Save("master", "alice", "persisted", samplePayload())
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	c, err := s.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "persisted", c.Description)
}
