package ledger_test

import (
	"testing"

	"team-inventory/core/ledger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestPlayerStore_AddDeduplicates(t *testing.T) {
	s := ledger.NewPlayerStore(language.English)

	alice, err := s.Add("Alice", intPtr(12))
	require.NoError(t, err)

	again, err := s.Add("  alice ", nil)
	require.NoError(t, err)

	assert.Equal(t, alice.ID, again.ID)
	assert.Equal(t, "Alice", again.Name)
	require.NotNil(t, again.JerseyNumber)
	assert.Equal(t, 12, *again.JerseyNumber)
	assert.Equal(t, 1, s.Len())
}

func TestPlayerStore_AddTrimsAndValidates(t *testing.T) {
	s := ledger.NewPlayerStore(language.English)

	p, err := s.Add("  Bob  ", nil)
	require.NoError(t, err)
	assert.Equal(t, "Bob", p.Name)
	assert.Nil(t, p.JerseyNumber)

	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := s.Add(name, nil)
		assert.ErrorIs(t, err, ledger.ErrValidation)
	}
	assert.Equal(t, 1, s.Len())
}

func TestPlayerStore_RemoveAndClear(t *testing.T) {
	s := ledger.NewPlayerStore(language.English)
	a, _ := s.Add("A", nil)
	_, _ = s.Add("B", nil)

	assert.NoError(t, s.Remove(a.ID))
	assert.ErrorIs(t, s.Remove(a.ID), ledger.ErrNotFound)

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.List())
}

func TestPlayerStore_ListOrderedByName(t *testing.T) {
	s := ledger.NewPlayerStore(language.English)
	for _, name := range []string{"charlie", "Bob", "alice", "Dave"} {
		_, err := s.Add(name, nil)
		require.NoError(t, err)
	}

	var names []string
	for _, p := range s.List() {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"alice", "Bob", "charlie", "Dave"}, names)
}

func TestPlayerStore_Restore(t *testing.T) {
	s := ledger.NewPlayerStore(language.English)
	s.Restore([]ledger.Player{{ID: "p1", Name: "Zed"}, {ID: "", Name: "dropped"}, {ID: "p2", Name: "Amy"}})

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, "Amy", list[0].Name)

	dup, err := s.Add("ZED", nil)
	require.NoError(t, err)
	assert.Equal(t, "p1", dup.ID)
}
