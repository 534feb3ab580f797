package knowledge

import (
	"errors"
	"fmt"

	"github.com/gammazero/deque"

	"minesweep/experiments/metrics"
	"minesweep/game"
)

var (
	// ErrRepeatMove reports a cell fed to AddKnowledge twice.
	ErrRepeatMove = errors.New("cell already revealed")
	// ErrInconsistent reports knowledge that cannot describe any board,
	// caused by malformed oracle input rather than by inference.
	ErrInconsistent = errors.New("inconsistent knowledge")
)

type Option func(*Base)

func WithCollector(collector metrics.Collector) Option {
	return func(b *Base) {
		if collector != nil {
			b.collector = collector
		}
	}
}

// Base is the agent's knowledge about one game: every constraint derived
// from revealed counts, plus the cells proven safe or mined so far. It
// grows monotonically and is discarded at game end.
type Base struct {
	movesMade Set
	mines     Set
	safes     Set
	sentences []*Sentence
	collector metrics.Collector
}

func NewBase(options ...Option) *Base {
	b := &Base{
		movesMade: NewSet(),
		mines:     NewSet(),
		safes:     NewSet(),
		collector: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(b)
	}
	return b
}

// Mines returns a copy of the cells proven to be mines.
func (b *Base) Mines() Set { return b.mines.Clone() }

// Safes returns a copy of the cells proven safe, revealed or not.
func (b *Base) Safes() Set { return b.safes.Clone() }

// MovesMade returns a copy of the cells already revealed.
func (b *Base) MovesMade() Set { return b.movesMade.Clone() }

// SafeMoves returns the cells proven safe but not yet revealed.
func (b *Base) SafeMoves() Set { return b.safes.Minus(b.movesMade) }

func (b *Base) NumSentences() int { return len(b.sentences) }

// AddKnowledge records that cell was revealed with count mines among
// neighbors, then derives every certain fact reachable by the counting and
// subset rules. Called once per revealed cell; a repeat cell or an
// impossible count is rejected before any state changes.
func (b *Base) AddKnowledge(cell game.Cell, count int, neighbors []game.Cell) (metrics.InferenceMetric, error) {
	b.collector.Start()

	if b.movesMade.Has(cell) {
		return metrics.InferenceMetric{}, fmt.Errorf("%w: %v", ErrRepeatMove, cell)
	}
	if b.mines.Has(cell) {
		return metrics.InferenceMetric{}, fmt.Errorf("%w: revealed cell %v is a proven mine", ErrInconsistent, cell)
	}
	if count < 0 || count > len(neighbors) {
		return metrics.InferenceMetric{}, fmt.Errorf("%w: count %d impossible for %d neighbors of %v",
			ErrInconsistent, count, len(neighbors), cell)
	}

	// Constrain only the neighbors not yet resolved; resolved mines are
	// folded into the count up front. Validation happens before any state
	// changes, so a rejected reveal leaves no trace.
	undetermined := NewSet()
	adjusted := count
	for _, n := range neighbors {
		switch {
		case b.mines.Has(n):
			adjusted--
		case n == cell || b.safes.Has(n) || b.movesMade.Has(n):
		default:
			undetermined.Add(n)
		}
	}
	if adjusted < 0 || adjusted > len(undetermined) {
		return metrics.InferenceMetric{}, fmt.Errorf("%w: %d mines left for %d undetermined neighbors of %v",
			ErrInconsistent, adjusted, len(undetermined), cell)
	}

	b.movesMade.Add(cell)
	// A revealed cell is safe by definition, not by deduction: fold it into
	// the sentences without touching the deduction counters.
	if !b.safes.Has(cell) {
		b.safes.Add(cell)
		for _, s := range b.sentences {
			s.MarkSafe(cell)
		}
	}

	if len(undetermined) > 0 {
		b.sentences = append(b.sentences, newSentence(undetermined, adjusted))
		b.collector.AddSentence()
	}

	if err := b.infer(); err != nil {
		return metrics.InferenceMetric{}, err
	}
	return b.collector.Complete(), nil
}

type fact struct {
	cell game.Cell
	mine bool
}

// infer applies the counting and subset rules until neither produces a
// change. Each pass either resolves a cell, shrinks a sentence or adds a
// sentence over a strictly smaller cell set, so the loop is bounded by the
// board size.
func (b *Base) infer() error {
	var pending deque.Deque[fact]
	for {
		changed := false

		// Counting rule: collect the certainties of every sentence, then
		// fold each resolved cell into the whole base.
		for _, s := range b.sentences {
			for c := range s.KnownMines() {
				pending.PushBack(fact{cell: c, mine: true})
			}
			for c := range s.KnownSafes() {
				pending.PushBack(fact{cell: c, mine: false})
			}
		}
		for pending.Len() > 0 {
			f := pending.PopFront()
			var (
				added bool
				err   error
			)
			if f.mine {
				added, err = b.markMine(f.cell)
			} else {
				added, err = b.markSafe(f.cell)
			}
			if err != nil {
				return err
			}
			changed = changed || added
		}

		if err := b.compact(); err != nil {
			return err
		}

		// Subset rule: a sentence strictly contained in another constrains
		// the remainder to the difference of the counts.
		for i, small := range b.sentences {
			for j, large := range b.sentences {
				if i == j || len(small.cells) >= len(large.cells) {
					continue
				}
				if !small.cells.SubsetOf(large.cells) {
					continue
				}
				derived := large.subtract(small)
				if b.hasSentence(derived) {
					continue
				}
				b.sentences = append(b.sentences, derived)
				b.collector.AddSentence()
				b.collector.AddSubsetInference()
				changed = true
			}
		}

		if !changed {
			return nil
		}
	}
}

// markMine resolves cell as a mine across the whole base. Returns whether
// this was new information.
func (b *Base) markMine(cell game.Cell) (bool, error) {
	if b.safes.Has(cell) {
		return false, fmt.Errorf("%w: %v proven both mine and safe", ErrInconsistent, cell)
	}
	if b.mines.Has(cell) {
		return false, nil
	}
	b.mines.Add(cell)
	b.collector.AddMineDeduction()
	for _, s := range b.sentences {
		s.MarkMine(cell)
	}
	return true, nil
}

// markSafe resolves cell as safe across the whole base. Returns whether
// this was new information.
func (b *Base) markSafe(cell game.Cell) (bool, error) {
	if b.mines.Has(cell) {
		return false, fmt.Errorf("%w: %v proven both safe and mine", ErrInconsistent, cell)
	}
	if b.safes.Has(cell) {
		return false, nil
	}
	b.safes.Add(cell)
	b.collector.AddSafeDeduction()
	for _, s := range b.sentences {
		s.MarkSafe(cell)
	}
	return true, nil
}

// compact drops exhausted sentences and duplicates. A sentence whose count
// falls outside 0..len(cells) describes no board at all: resolving cells
// can shrink a sentence into that state only when the oracle input was
// contradictory, so it surfaces as an inconsistency.
func (b *Base) compact() error {
	kept := b.sentences[:0]
	for _, s := range b.sentences {
		if s.count < 0 || s.count > len(s.cells) {
			return fmt.Errorf("%w: %d mines cannot hide in %d cells", ErrInconsistent, s.count, len(s.cells))
		}
		if len(s.cells) == 0 {
			continue
		}
		dup := false
		for _, k := range kept {
			if k.Equal(s) {
				dup = true
				break
			}
		}
		if !dup {
			kept = append(kept, s)
		}
	}
	b.sentences = kept
	return nil
}

func (b *Base) hasSentence(sentence *Sentence) bool {
	for _, s := range b.sentences {
		if s.Equal(sentence) {
			return true
		}
	}
	return false
}
