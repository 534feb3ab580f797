package knowledge

import (
	"fmt"

	"minesweep/game"
)

// Sentence is a logical statement about the board: exactly count of the
// cells in the set are mines. Sentences only ever shrink as cells are
// resolved; 0 <= count <= len(cells) holds throughout.
type Sentence struct {
	cells Set
	count int
}

func newSentence(cells Set, count int) *Sentence {
	return &Sentence{cells: cells.Clone(), count: count}
}

func (s *Sentence) Count() int { return s.count }

func (s *Sentence) Cells() Set { return s.cells.Clone() }

// KnownMines returns every cell provably a mine: the whole set when the
// count equals its size (and is not zero), nothing otherwise.
func (s *Sentence) KnownMines() Set {
	if s.count > 0 && s.count == len(s.cells) {
		return s.cells.Clone()
	}
	return nil
}

// KnownSafes returns every cell provably safe: the whole set when the
// count is zero, nothing otherwise.
func (s *Sentence) KnownSafes() Set {
	if s.count == 0 {
		return s.cells.Clone()
	}
	return nil
}

// MarkMine folds the fact that cell is a mine into the sentence: the cell
// leaves the set and the count drops by one. No-op when the cell is not in
// the set.
func (s *Sentence) MarkMine(cell game.Cell) {
	if s.cells.Has(cell) {
		s.cells.Remove(cell)
		s.count--
	}
}

// MarkSafe folds the fact that cell is safe into the sentence: the cell
// leaves the set, the count stays. No-op when the cell is not in the set.
func (s *Sentence) MarkSafe(cell game.Cell) {
	if s.cells.Has(cell) {
		s.cells.Remove(cell)
	}
}

// Equal reports whether both sentences constrain the same cells to the
// same count.
func (s *Sentence) Equal(other *Sentence) bool {
	return s.count == other.count && s.cells.Equal(other.cells)
}

// subtract derives the remainder constraint of a strict superset: if s's
// cells strictly contain other's, the cells of s outside other hold
// exactly the difference of the counts.
func (s *Sentence) subtract(other *Sentence) *Sentence {
	return &Sentence{
		cells: s.cells.Minus(other.cells),
		count: s.count - other.count,
	}
}

func (s *Sentence) String() string {
	return fmt.Sprintf("%v = %d", s.cells.Sorted(), s.count)
}
