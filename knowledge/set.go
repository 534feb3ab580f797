package knowledge

import (
	"minesweep/game"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type void struct{}

// Set is an unordered collection of unique cells.
type Set map[game.Cell]void

func NewSet(cells ...game.Cell) Set {
	s := make(Set, len(cells))
	for _, c := range cells {
		s[c] = void{}
	}
	return s
}

func (s Set) Has(cell game.Cell) bool {
	_, ok := s[cell]
	return ok
}

func (s Set) Add(cell game.Cell) {
	s[cell] = void{}
}

func (s Set) Remove(cell game.Cell) {
	delete(s, cell)
}

func (s Set) Clone() Set {
	return maps.Clone(s)
}

// Minus returns the cells of s not present in other.
func (s Set) Minus(other Set) Set {
	result := make(Set)
	for c := range s {
		if !other.Has(c) {
			result[c] = void{}
		}
	}
	return result
}

// SubsetOf reports whether every cell of s is present in other.
func (s Set) SubsetOf(other Set) bool {
	if len(s) > len(other) {
		return false
	}
	for c := range s {
		if !other.Has(c) {
			return false
		}
	}
	return true
}

func (s Set) Equal(other Set) bool {
	return len(s) == len(other) && s.SubsetOf(other)
}

// Sorted returns the cells in row-major order.
func (s Set) Sorted() []game.Cell {
	cells := maps.Keys(s)
	slices.SortFunc(cells, game.Cell.Compare)
	return cells
}
