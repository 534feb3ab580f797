package knowledge

import (
	"testing"

	"github.com/stretchr/testify/require"

	"minesweep/game"
)

var (
	cellA = game.Cell{Row: 0, Col: 0}
	cellB = game.Cell{Row: 0, Col: 1}
	cellC = game.Cell{Row: 0, Col: 2}
)

func TestSentenceKnownMines(t *testing.T) {
	t.Run("count equals set size", func(t *testing.T) {
		s := newSentence(NewSet(cellA, cellB), 2)

		got := s.KnownMines()

		require.True(t, got.Equal(NewSet(cellA, cellB)),
			"Every cell should be a mine when count fills the set")
	})

	t.Run("count below set size", func(t *testing.T) {
		s := newSentence(NewSet(cellA, cellB), 1)

		require.Empty(t, s.KnownMines(),
			"No cell is certain when the count leaves room")
	})

	t.Run("zero count", func(t *testing.T) {
		s := newSentence(NewSet(cellA, cellB), 0)

		require.Empty(t, s.KnownMines(),
			"A zero count proves safes, not mines")
	})
}

func TestSentenceKnownSafes(t *testing.T) {
	t.Run("zero count", func(t *testing.T) {
		s := newSentence(NewSet(cellA, cellB), 0)

		got := s.KnownSafes()

		require.True(t, got.Equal(NewSet(cellA, cellB)),
			"Every cell should be safe when the count is zero")
	})

	t.Run("non-zero count", func(t *testing.T) {
		s := newSentence(NewSet(cellA, cellB), 1)

		require.Empty(t, s.KnownSafes(),
			"No cell is certainly safe while mines remain")
	})
}

func TestSentenceMarkMine(t *testing.T) {
	t.Run("cell in sentence", func(t *testing.T) {
		s := newSentence(NewSet(cellA, cellB), 2)

		s.MarkMine(cellA)

		require.True(t, s.cells.Equal(NewSet(cellB)), "Cell should leave the set")
		require.Equal(t, 1, s.count, "Count should drop by one")
	})

	t.Run("cell not in sentence", func(t *testing.T) {
		s := newSentence(NewSet(cellA, cellB), 1)

		s.MarkMine(cellC)

		require.True(t, s.cells.Equal(NewSet(cellA, cellB)), "Set should not change")
		require.Equal(t, 1, s.count, "Count should not change")
	})
}

func TestSentenceMarkSafe(t *testing.T) {
	t.Run("cell in sentence", func(t *testing.T) {
		s := newSentence(NewSet(cellA, cellB), 1)

		s.MarkSafe(cellA)

		require.True(t, s.cells.Equal(NewSet(cellB)), "Cell should leave the set")
		require.Equal(t, 1, s.count, "Count should stay the same")
	})

	t.Run("cell not in sentence", func(t *testing.T) {
		s := newSentence(NewSet(cellA, cellB), 1)

		s.MarkSafe(cellC)

		require.True(t, s.cells.Equal(NewSet(cellA, cellB)), "Set should not change")
		require.Equal(t, 1, s.count, "Count should not change")
	})
}

func TestSentenceEqual(t *testing.T) {
	t.Run("same cells and count", func(t *testing.T) {
		a := newSentence(NewSet(cellA, cellB), 1)
		b := newSentence(NewSet(cellB, cellA), 1)

		require.True(t, a.Equal(b), "Insertion order should not matter")
	})

	t.Run("different count", func(t *testing.T) {
		a := newSentence(NewSet(cellA, cellB), 1)
		b := newSentence(NewSet(cellA, cellB), 2)

		require.False(t, a.Equal(b), "Counts differ")
	})

	t.Run("different cells", func(t *testing.T) {
		a := newSentence(NewSet(cellA, cellB), 1)
		b := newSentence(NewSet(cellA, cellC), 1)

		require.False(t, a.Equal(b), "Cell sets differ")
	})
}

func TestSentenceSubtract(t *testing.T) {
	large := newSentence(NewSet(cellA, cellB, cellC), 2)
	small := newSentence(NewSet(cellA, cellB), 1)

	got := large.subtract(small)

	require.True(t, got.cells.Equal(NewSet(cellC)),
		"Remainder should hold the cells outside the subset")
	require.Equal(t, 1, got.count,
		"Remainder count should be the difference of the counts")
}
