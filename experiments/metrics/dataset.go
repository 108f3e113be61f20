package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// DatasetWriter streams encoded positions to a CSV file for offline training.
// Each row is one feature vector followed by the game outcome from the
// perspective of the player to move in that position.
type DatasetWriter struct {
	file *os.File
	cw   *csv.Writer
	cols int
}

func NewDatasetWriter(path string, featureSize int) (*DatasetWriter, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating dataset file: %w", err)
	}
	return &DatasetWriter{file: file, cw: csv.NewWriter(file), cols: featureSize}, nil
}

// Append writes one position. outcome is +1 for a win by the player to move,
// -1 for a loss and 0 for a draw.
func (w *DatasetWriter) Append(features []float32, outcome float64) error {
	if len(features) != w.cols {
		return fmt.Errorf("feature vector has %d values, want %d", len(features), w.cols)
	}
	row := make([]string, 0, w.cols+1)
	for _, f := range features {
		row = append(row, strconv.FormatFloat(float64(f), 'g', -1, 32))
	}
	row = append(row, strconv.FormatFloat(outcome, 'g', -1, 64))
	return w.cw.Write(row)
}

func (w *DatasetWriter) Close() error {
	w.cw.Flush()
	if err := w.cw.Error(); err != nil {
		w.file.Close()
		return err
	}
	return w.file.Close()
}
