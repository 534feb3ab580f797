package engine

import (
	"time"

	"github.com/rs/zerolog/log"

	"minesweep/agent"
	"minesweep/experiments/metrics"
	"minesweep/game"
)

// localEngine drives one game between a board and a solving agent: ask the
// agent for a move, reveal it, feed the count back, repeat until the board
// is cleared or a mine goes off.
type localEngine struct {
	board *game.Board
	agent *agent.Agent
}

func LocalEngine(board *game.Board, ag *agent.Agent) Engine {
	if board == nil {
		panic("engine needs a board")
	}
	if ag == nil {
		panic("engine needs an agent")
	}
	return &localEngine{board: board, agent: ag}
}

func (e *localEngine) Run() (Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	safeCells := e.board.Height()*e.board.Width() - e.board.NumMines()

	gameMetric := metrics.GameMetric{
		Height:    e.board.Height(),
		Width:     e.board.Width(),
		Mines:     e.board.NumMines(),
		StartTime: time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("starting game on %dx%d board with %d mines",
		e.board.Height(), e.board.Width(), e.board.NumMines())

	outcome := Stalled
	revealed := 0
	for step := 1; step <= MaxMoves; step++ {
		move, ok := e.agent.ChooseMove()
		if !ok {
			// Nothing left outside revealed cells and proven mines.
			log.Info().Msgf("no moves left after %d steps, board resolved", step-1)
			outcome = Won
			break
		}

		moveMetric := metrics.MoveMetric{
			Step:  step,
			Row:   move.Cell.Row,
			Col:   move.Cell.Col,
			Guess: move.Guess,
		}
		if move.Guess {
			gameMetric.Guesses++
		}

		isMine, nearby := e.board.Reveal(move.Cell)
		if isMine {
			log.Info().Msgf("step %d: revealed a mine at %v (guess=%t)", step, move.Cell, move.Guess)
			moveMetrics = append(moveMetrics, moveMetric)
			gameMetric.TotalMoves = step
			outcome = Lost
			break
		}

		inference, err := e.agent.RecordMoveResult(move.Cell, nearby)
		if err != nil {
			return outcome, gameMetric, moveMetrics, err
		}
		moveMetric.InferenceMetric = inference
		moveMetrics = append(moveMetrics, moveMetric)
		gameMetric.TotalMoves = step

		log.Debug().Msgf("step %d: revealed %v nearby=%d guess=%t safes=%d mines=%d sentences=%d",
			step, move.Cell, nearby, move.Guess,
			inference.SafesDeduced, inference.MinesDeduced, inference.Sentences)

		revealed++
		if revealed == safeCells {
			log.Info().Msgf("cleared all %d safe cells in %d moves (%d guesses)",
				safeCells, step, gameMetric.Guesses)
			outcome = Won
			break
		}
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.Outcome = string(outcome)
	gameMetric.MinesFound = len(e.agent.KnownMines())

	return outcome, gameMetric, moveMetrics, nil
}
