package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()
	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(filepath.Join(dir, "out"))
	require.NoError(t, err)

	t.Run("agent configs", func(t *testing.T) {
		require.NoError(t, w.WriteAgentConfigs([]AgentConfig{
			{ID: 0, Goroutines: 4, Episodes: 100, Cutoff: 25},
			{ID: 1, Goroutines: 8, Duration: 250 * time.Millisecond},
		}))

		rows := readCSV(t, filepath.Join(dir, "out", "agents.csv"))
		require.Len(t, rows, 3)
		require.Equal(t, []string{"agent_id", "goroutines", "episodes", "duration_ms", "cutoff"}, rows[0])
		require.Equal(t, []string{"0", "4", "100", "0", "25"}, rows[1])
		require.Equal(t, []string{"1", "8", "0", "250", "0"}, rows[2])
	})

	t.Run("game records", func(t *testing.T) {
		start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		require.NoError(t, w.WriteGameRecords([]GameRecord{{
			ID: 0, Agent0: 0, Agent1: 1,
			GameMetric: GameMetric{
				Winner: "Player1", StartTime: start, EndTime: start.Add(time.Second),
				Duration: time.Second, TotalMoves: 42,
			},
		}}))

		rows := readCSV(t, filepath.Join(dir, "out", "games.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, "Player1", rows[1][3])
		require.Equal(t, "1000", rows[1][5])
		require.Equal(t, "42", rows[1][6])
	})

	t.Run("move records", func(t *testing.T) {
		require.NoError(t, w.WriteMoveRecords([]MoveRecord{{
			Game: 3,
			MoveMetric: MoveMetric{
				Step: 7, Player: "Player0",
				SearchMetric: SearchMetric{Goroutines: 2, Duration: time.Millisecond, Episodes: 50, Cutoff: 10, FullPlayouts: 5},
			},
		}}))

		rows := readCSV(t, filepath.Join(dir, "out", "moves.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"3", "7", "Player0", "2", "1000", "50", "10", "5"}, rows[1])
	})
}

func TestDatasetWriter(t *testing.T) {
	t.Run("writes feature rows with the outcome appended", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "positions.csv")
		w, err := NewDatasetWriter(path, 3)
		require.NoError(t, err)

		require.NoError(t, w.Append([]float32{0.5, 0, 1}, -1))
		require.NoError(t, w.Append([]float32{0, 0.25, 0}, 1))
		require.NoError(t, w.Close())

		rows := readCSV(t, path)
		require.Len(t, rows, 2)
		require.Equal(t, []string{"0.5", "0", "1", "-1"}, rows[0])
		require.Equal(t, []string{"0", "0.25", "0", "1"}, rows[1])
	})

	t.Run("rejects rows of the wrong width", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "positions.csv")
		w, err := NewDatasetWriter(path, 3)
		require.NoError(t, err)
		defer w.Close()

		require.ErrorContains(t, w.Append([]float32{1}, 0), "feature vector")
	})
}
