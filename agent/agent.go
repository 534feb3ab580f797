package agent

import (
	"math/rand"

	"minesweep/experiments/metrics"
	"minesweep/game"
	"minesweep/knowledge"
)

// Oracle is the board query the agent is allowed to make on its own:
// neighbor enumeration. Reveal results arrive through RecordMoveResult.
type Oracle interface {
	Neighbors(cell game.Cell) []game.Cell
}

// Move is a cell pick plus how it was picked.
type Move struct {
	Cell  game.Cell
	Guess bool // true when no proven-safe cell was available
}

type Option func(*Agent)

// WithRand injects the randomness source behind fallback moves, so games
// replay deterministically under a fixed seed.
func WithRand(rng *rand.Rand) Option {
	return func(a *Agent) {
		if rng != nil {
			a.rng = rng
		}
	}
}

func WithCollector(collector metrics.Collector) Option {
	return func(a *Agent) {
		if collector != nil {
			a.collector = collector
		}
	}
}

// Agent plays one game of Minesweeper: it feeds revealed counts into a
// knowledge base and picks the next move from what the base has proven.
// It owns the base exclusively; construct a fresh agent per game.
type Agent struct {
	height    int
	width     int
	oracle    Oracle
	base      *knowledge.Base
	rng       *rand.Rand
	collector metrics.Collector
}

func New(height, width int, oracle Oracle, options ...Option) *Agent {
	if oracle == nil {
		panic("agent needs a board oracle")
	}
	a := &Agent{
		height:    height,
		width:     width,
		oracle:    oracle,
		rng:       rand.New(rand.NewSource(rand.Int63())),
		collector: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(a)
	}
	a.base = knowledge.NewBase(knowledge.WithCollector(a.collector))
	return a
}

// RecordMoveResult feeds one reveal result into the knowledge base and
// runs inference. The caller must only report non-mine reveals.
func (a *Agent) RecordMoveResult(cell game.Cell, nearbyMines int) (metrics.InferenceMetric, error) {
	return a.base.AddKnowledge(cell, nearbyMines, a.oracle.Neighbors(cell))
}

// ChooseMove picks the next cell to reveal: the first proven-safe
// unrevealed cell in row-major order if any exist, otherwise a uniformly
// random cell that is neither revealed nor a proven mine. Returns ok=false
// when no such cell remains.
func (a *Agent) ChooseMove() (Move, bool) {
	if safes := a.base.SafeMoves(); len(safes) > 0 {
		candidates := safes.Sorted()
		return Move{Cell: candidates[0]}, true
	}

	candidates := a.unknownCells()
	if len(candidates) == 0 {
		return Move{}, false
	}
	return Move{Cell: candidates[a.rng.Intn(len(candidates))], Guess: true}, true
}

// KnownMines returns the cells the agent has proven to be mines.
func (a *Agent) KnownMines() knowledge.Set {
	return a.base.Mines()
}

// MovesMade returns the cells the agent has revealed so far.
func (a *Agent) MovesMade() knowledge.Set {
	return a.base.MovesMade()
}

// unknownCells lists, in row-major order, every cell neither revealed nor
// proven to be a mine.
func (a *Agent) unknownCells() []game.Cell {
	moves := a.base.MovesMade()
	mines := a.base.Mines()
	var cells []game.Cell
	for i := 0; i < a.height; i++ {
		for j := 0; j < a.width; j++ {
			c := game.Cell{Row: i, Col: j}
			if !moves.Has(c) && !mines.Has(c) {
				cells = append(cells, c)
			}
		}
	}
	return cells
}
