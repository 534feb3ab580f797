package engine

import "minesweep/experiments/metrics"

// MaxMoves caps a single game. The agent never repeats a cell, so a game
// cannot outlast the board; the cap is a guard against a broken agent.
const MaxMoves = 10000

type Outcome string

const (
	// Won: every safe cell was revealed, or nothing but proven mines is left.
	Won Outcome = "won"
	// Lost: the agent revealed a mine.
	Lost Outcome = "lost"
	// Stalled: the MaxMoves guard tripped.
	Stalled Outcome = "stalled"
)

type Engine interface {
	// Run plays a game to completion and reports what happened.
	Run() (Outcome, metrics.GameMetric, []metrics.MoveMetric, error)
}
