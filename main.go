package main

import (
	"flag"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"minesweep/agent"
	"minesweep/engine"
	"minesweep/experiments"
	"minesweep/experiments/metrics"
	"minesweep/game"
)

func main() {
	height := flag.Int("height", 8, "Board height")
	width := flag.Int("width", 8, "Board width")
	mines := flag.Int("mines", 8, "Number of mines")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Randomness seed")
	experiment := flag.Bool("experiment", false, "Run the solve rate experiment instead of a single game")
	verbose := flag.Bool("verbose", false, "Log every move")
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)

	if *experiment {
		experiments.RunSolveRateExperiment(*seed)
		return
	}

	runDemoGame(*height, *width, *mines, *seed)
}

// runDemoGame plays a single game and logs how it went.
func runDemoGame(height, width, mines int, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	board := game.NewBoard(height, width, mines, rng)

	ag := agent.New(height, width, board,
		agent.WithRand(rand.New(rand.NewSource(rng.Int63()))),
		agent.WithCollector(metrics.NewCollector()))

	outcome, gameMetric, _, err := engine.LocalEngine(board, ag).Run()
	if err != nil {
		log.Fatal().Err(err).Msg("game aborted on inconsistent knowledge")
	}

	log.Info().Msgf("board layout:\n%s", board)
	log.Info().Msgf("outcome: %s in %d moves (%d guesses), %d of %d mines proven",
		outcome, gameMetric.TotalMoves, gameMetric.Guesses,
		gameMetric.MinesFound, board.NumMines())
}
