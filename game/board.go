package game

import (
	"math/rand"
	"strings"
)

// Board holds the hidden mine layout for one game. It answers the oracle
// queries the solving agent is allowed to ask: neighbor enumeration and,
// once a cell is revealed, the count of mines around it. It never leaks
// which specific neighbors are mined.
type Board struct {
	height int
	width  int
	mines  map[Cell]struct{}
	grid   [][]bool
}

// NewBoard creates a board with numMines mines placed at random positions
// drawn from rng. Passing the generator in keeps layouts reproducible under
// a fixed seed.
func NewBoard(height, width, numMines int, rng *rand.Rand) *Board {
	if height <= 0 || width <= 0 {
		panic("board dimensions must be positive")
	}
	if numMines < 0 || numMines > height*width {
		panic("mine count must fit on the board")
	}

	grid := make([][]bool, height)
	for i := range grid {
		grid[i] = make([]bool, width)
	}

	b := &Board{
		height: height,
		width:  width,
		mines:  make(map[Cell]struct{}, numMines),
		grid:   grid,
	}

	for len(b.mines) < numMines {
		i := rng.Intn(height)
		j := rng.Intn(width)
		if !b.grid[i][j] {
			b.grid[i][j] = true
			b.mines[Cell{Row: i, Col: j}] = struct{}{}
		}
	}
	return b
}

func (b *Board) Height() int { return b.height }

func (b *Board) Width() int { return b.width }

func (b *Board) NumMines() int { return len(b.mines) }

// InBounds reports whether cell lies on the board.
func (b *Board) InBounds(cell Cell) bool {
	return cell.Row >= 0 && cell.Row < b.height && cell.Col >= 0 && cell.Col < b.width
}

// IsMine reports whether cell holds a mine.
func (b *Board) IsMine(cell Cell) bool {
	return b.grid[cell.Row][cell.Col]
}

// Neighbors returns every in-bounds cell adjacent to cell, up to 8.
func (b *Board) Neighbors(cell Cell) []Cell {
	neighbors := make([]Cell, 0, 8)
	for di := -1; di <= 1; di++ {
		for dj := -1; dj <= 1; dj++ {
			if di == 0 && dj == 0 {
				continue
			}
			n := Cell{Row: cell.Row + di, Col: cell.Col + dj}
			if b.InBounds(n) {
				neighbors = append(neighbors, n)
			}
		}
	}
	return neighbors
}

// NearbyMines returns the number of mines within one row and column of
// cell, not counting the cell itself.
func (b *Board) NearbyMines(cell Cell) int {
	count := 0
	for _, n := range b.Neighbors(cell) {
		if b.grid[n.Row][n.Col] {
			count++
		}
	}
	return count
}

// Reveal opens a cell. It returns whether the cell was a mine and, if it
// was not, how many of its neighbors are mines.
func (b *Board) Reveal(cell Cell) (isMine bool, nearby int) {
	if b.IsMine(cell) {
		return true, 0
	}
	return false, b.NearbyMines(cell)
}

// String renders the hidden layout, one row per line, X marking mines.
// Intended for debug logs only.
func (b *Board) String() string {
	var sb strings.Builder
	for i := 0; i < b.height; i++ {
		for j := 0; j < b.width; j++ {
			if b.grid[i][j] {
				sb.WriteString("|X")
			} else {
				sb.WriteString("| ")
			}
		}
		sb.WriteString("|\n")
	}
	return sb.String()
}
