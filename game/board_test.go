package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBoardPlacesExactMineCount(t *testing.T) {
	board := NewBoard(8, 8, 10, rand.New(rand.NewSource(1)))

	require.Equal(t, 10, board.NumMines())

	count := 0
	for i := 0; i < board.Height(); i++ {
		for j := 0; j < board.Width(); j++ {
			if board.IsMine(Cell{Row: i, Col: j}) {
				count++
			}
		}
	}
	require.Equal(t, 10, count, "Grid and mine set should agree")
}

func TestNewBoardRejectsBadArguments(t *testing.T) {
	t.Run("non-positive dimensions", func(t *testing.T) {
		require.Panics(t, func() {
			NewBoard(0, 8, 1, rand.New(rand.NewSource(1)))
		})
	})

	t.Run("too many mines", func(t *testing.T) {
		require.Panics(t, func() {
			NewBoard(2, 2, 5, rand.New(rand.NewSource(1)))
		})
	})
}

func TestNeighbors(t *testing.T) {
	board := NewBoard(3, 3, 0, rand.New(rand.NewSource(1)))

	t.Run("corner has three neighbors", func(t *testing.T) {
		got := board.Neighbors(Cell{Row: 0, Col: 0})

		require.ElementsMatch(t, []Cell{{0, 1}, {1, 0}, {1, 1}}, got)
	})

	t.Run("edge has five neighbors", func(t *testing.T) {
		got := board.Neighbors(Cell{Row: 0, Col: 1})

		require.Len(t, got, 5)
	})

	t.Run("center has eight neighbors", func(t *testing.T) {
		got := board.Neighbors(Cell{Row: 1, Col: 1})

		require.Len(t, got, 8)
		require.NotContains(t, got, Cell{Row: 1, Col: 1}, "A cell is not its own neighbor")
	})
}

func TestNearbyMines(t *testing.T) {
	t.Run("mine-free board", func(t *testing.T) {
		board := NewBoard(4, 4, 0, rand.New(rand.NewSource(1)))

		for i := 0; i < 4; i++ {
			for j := 0; j < 4; j++ {
				require.Zero(t, board.NearbyMines(Cell{Row: i, Col: j}))
			}
		}
	})

	t.Run("saturated board", func(t *testing.T) {
		board := NewBoard(3, 3, 9, rand.New(rand.NewSource(1)))

		// Every neighbor of every cell is a mine.
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				c := Cell{Row: i, Col: j}
				require.Equal(t, len(board.Neighbors(c)), board.NearbyMines(c))
			}
		}
	})
}

func TestReveal(t *testing.T) {
	board := NewBoard(3, 3, 9, rand.New(rand.NewSource(1)))

	isMine, _ := board.Reveal(Cell{Row: 1, Col: 1})
	require.True(t, isMine, "Every cell on a saturated board is a mine")

	empty := NewBoard(2, 2, 0, rand.New(rand.NewSource(1)))
	isMine, nearby := empty.Reveal(Cell{Row: 0, Col: 0})
	require.False(t, isMine)
	require.Zero(t, nearby)
}
