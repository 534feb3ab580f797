package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// BoardConfig describes one board difficulty under test.
type BoardConfig struct {
	ID     int
	Height int
	Width  int
	Mines  int
}

type GameRecord struct {
	ID    int
	Board int // BoardConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

func NewWriter(name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join("results", name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) WriteBoardConfigs(configs []BoardConfig) error {
	// Create a file
	path := filepath.Join(w.baseDir, "board_configs.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create board configs file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	// Write header
	header := []string{"id", "height", "width", "mines"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write board configs header: %w", err)
	}

	// Write each row
	for _, config := range configs {
		row := []string{
			strconv.Itoa(config.ID),
			strconv.Itoa(config.Height),
			strconv.Itoa(config.Width),
			strconv.Itoa(config.Mines),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write board config row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	// Create a file
	path := filepath.Join(w.baseDir, "game_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	// Write header
	header := []string{"id", "board", "outcome", "start_time", "end_time", "duration", "total_moves", "guesses", "mines_found"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}

	// Write each row
	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Board),
			record.Outcome,
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
			strconv.Itoa(record.Guesses),
			strconv.Itoa(record.MinesFound),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	// Create a file
	path := filepath.Join(w.baseDir, "move_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create move records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	// Write header
	header := []string{"game", "step", "row", "col", "guess", "duration", "sentences", "subset_inferences", "mines_deduced", "safes_deduced"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write move records header: %w", err)
	}

	// Write each row
	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			strconv.Itoa(record.Row),
			strconv.Itoa(record.Col),
			strconv.FormatBool(record.Guess),
			record.Duration.String(),
			strconv.Itoa(record.Sentences),
			strconv.Itoa(record.SubsetInferences),
			strconv.Itoa(record.MinesDeduced),
			strconv.Itoa(record.SafesDeduced),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write move record row: %w", err)
		}
	}

	return nil
}
