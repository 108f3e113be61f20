package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// GameRecord links a finished game to the agent configurations that played it.
type GameRecord struct {
	ID     int
	Agent0 int
	Agent1 int
	GameMetric
}

// MoveRecord links a move metric to its game.
type MoveRecord struct {
	Game int
	MoveMetric
}

// Writer persists experiment records as CSV files under a base directory.
type Writer struct {
	baseDir string
}

func NewWriter(baseDir string) (*Writer, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	return &Writer{baseDir: baseDir}, nil
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"agent_id", "goroutines", "episodes", "duration_ms", "cutoff"}
	rows := make([][]string, 0, len(configs))
	for _, c := range configs {
		rows = append(rows, []string{
			strconv.Itoa(c.ID),
			strconv.Itoa(c.Goroutines),
			strconv.Itoa(c.Episodes),
			strconv.FormatInt(c.Duration.Milliseconds(), 10),
			strconv.Itoa(c.Cutoff),
		})
	}
	return w.writeCSV("agents.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"game_id", "agent0", "agent1", "winner", "start_time", "duration_ms", "total_moves"}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(r.ID),
			strconv.Itoa(r.Agent0),
			strconv.Itoa(r.Agent1),
			r.Winner,
			r.StartTime.Format("2006-01-02T15:04:05.000"),
			strconv.FormatInt(r.Duration.Milliseconds(), 10),
			strconv.Itoa(r.TotalMoves),
		})
	}
	return w.writeCSV("games.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game_id", "step", "player", "goroutines", "duration_us", "episodes", "cutoff", "full_playouts"}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(r.Game),
			strconv.Itoa(r.Step),
			r.Player,
			strconv.Itoa(r.Goroutines),
			strconv.FormatInt(r.Duration.Microseconds(), 10),
			strconv.Itoa(r.Episodes),
			strconv.Itoa(r.Cutoff),
			strconv.Itoa(r.FullPlayouts),
		})
	}
	return w.writeCSV("moves.csv", header, rows)
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) error {
	file, err := os.Create(filepath.Join(w.baseDir, name))
	if err != nil {
		return fmt.Errorf("creating %s: %w", name, err)
	}
	defer file.Close()

	cw := csv.NewWriter(file)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing %s header: %w", name, err)
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("writing %s rows: %w", name, err)
	}
	cw.Flush()
	return cw.Error()
}
