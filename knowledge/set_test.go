package knowledge

import (
	"testing"

	"github.com/stretchr/testify/require"

	"minesweep/game"
)

func TestSetMinus(t *testing.T) {
	s := NewSet(cellA, cellB, cellC)

	got := s.Minus(NewSet(cellB))

	require.True(t, got.Equal(NewSet(cellA, cellC)), "Minus should drop shared cells")
	require.True(t, s.Has(cellB), "Minus should not mutate the receiver")
}

func TestSetSubsetOf(t *testing.T) {
	t.Run("strict subset", func(t *testing.T) {
		require.True(t, NewSet(cellA).SubsetOf(NewSet(cellA, cellB)))
	})

	t.Run("equal sets", func(t *testing.T) {
		require.True(t, NewSet(cellA, cellB).SubsetOf(NewSet(cellA, cellB)))
	})

	t.Run("disjoint sets", func(t *testing.T) {
		require.False(t, NewSet(cellC).SubsetOf(NewSet(cellA, cellB)))
	})

	t.Run("larger than other", func(t *testing.T) {
		require.False(t, NewSet(cellA, cellB).SubsetOf(NewSet(cellA)))
	})
}

func TestSetSorted(t *testing.T) {
	s := NewSet(
		game.Cell{Row: 1, Col: 0},
		game.Cell{Row: 0, Col: 2},
		game.Cell{Row: 0, Col: 1},
	)

	got := s.Sorted()

	want := []game.Cell{{Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 0}}
	require.Equal(t, want, got, "Cells should come out in row-major order")
}

func TestSetClone(t *testing.T) {
	s := NewSet(cellA)
	clone := s.Clone()

	clone.Add(cellB)

	require.False(t, s.Has(cellB), "Mutating a clone should not touch the original")
}
