package experiments

import (
	"fmt"
	"math/rand"

	"github.com/rs/zerolog/log"

	"minesweep/agent"
	"minesweep/engine"
	"minesweep/experiments/metrics"
	"minesweep/game"
)

const NumGames = 100 // Per board config

// Standard Minesweeper difficulties.
var boardConfigs = []metrics.BoardConfig{
	{ID: 1, Height: 9, Width: 9, Mines: 10},
	{ID: 2, Height: 16, Width: 16, Mines: 40},
	{ID: 3, Height: 16, Width: 30, Mines: 99},
}

// RunSolveRateExperiment measures how often pure logical deduction plus
// random fallback clears each standard difficulty, and how many of the
// moves were guesses.
func RunSolveRateExperiment(seed int64) {
	rng := rand.New(rand.NewSource(seed))

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting solve rate experiment with seed %d...", seed)

	for _, config := range boardConfigs {
		wins := 0
		for i := 0; i < NumGames; i++ {
			outcome, gameMetric, moveMetrics, err := runGame(config, rng)
			if err != nil {
				panic(fmt.Sprintf("game on config %d hit inconsistent knowledge: %v", config.ID, err))
			}
			if outcome == engine.Won {
				wins++
			}

			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Board:      config.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}
		}
		log.Info().Msgf("config %d (%dx%d, %d mines): won %d of %d games",
			config.ID, config.Height, config.Width, config.Mines, wins, NumGames)
	}

	log.Info().Msg("completed solve rate experiment")

	// Store experiment metadata
	writer, err := metrics.NewWriter("solve_rate")
	if err != nil {
		panic(fmt.Sprintf("failed to create experiment writer: %v", err))
	}

	err = writer.WriteBoardConfigs(boardConfigs)
	if err != nil {
		panic(fmt.Sprintf("failed to store board configs: %v", err))
	}
	log.Info().Msg("stored board configs")

	// Store experiment results
	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to write game records: %v", err))
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to write move records: %v", err))
	}
	log.Info().Msg("stored move records")
}

// runGame plays a single game on a fresh board drawn from rng.
func runGame(config metrics.BoardConfig, rng *rand.Rand) (engine.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	board := game.NewBoard(config.Height, config.Width, config.Mines, rng)
	ag := agent.New(config.Height, config.Width, board,
		agent.WithRand(rand.New(rand.NewSource(rng.Int63()))),
		agent.WithCollector(metrics.NewCollector()))
	e := engine.LocalEngine(board, ag)
	return e.Run()
}
