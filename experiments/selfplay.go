package experiments

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"satellites/engine"
	"satellites/experiments/metrics"
	"satellites/game"
	"satellites/searcher/agent"
)

// RunSelfplay generates a training dataset: it plays the configured number
// of self-play games with move sampling and writes every encoded position
// with its eventual outcome to positions.csv under the output directory.
func RunSelfplay(cfg engine.Config) error {
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	topo := game.DefaultTopology()
	dataset, err := metrics.NewDatasetWriter(
		filepath.Join(cfg.OutputDir, "positions.csv"), game.FeatureSize(topo))
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	for g := 0; g < cfg.Games; g++ {
		if err := recordGame(cfg, rng, dataset); err != nil {
			dataset.Close()
			return err
		}
		log.Info().Int("game", g).Msg("self-play game recorded")
	}
	return dataset.Close()
}

type position struct {
	features []float32
	mover    int8
}

func recordGame(cfg engine.Config, rng *rand.Rand, dataset *metrics.DatasetWriter) error {
	agents := []agent.Agent{
		agent.NewTrainingAgent(newMCTS(cfg.Agents[0]), 1.0, rng),
		agent.NewTrainingAgent(newMCTS(cfg.Agents[1]), 1.0, rng),
	}

	var positions []position
	eng := engine.LocalEngine(agents, newState(cfg, rng))
	eng.OnState = func(s *game.GameState) {
		if !s.IsTerminal() {
			positions = append(positions, position{features: s.EncodeFeatures(), mover: s.Turn})
		}
	}
	winner, _ := eng.Run()

	// Outcome from player 0's perspective, flipped per position's mover
	var outcome float64
	switch winner {
	case "Player0":
		outcome = 1
	case "Player1":
		outcome = -1
	}
	for _, p := range positions {
		label := outcome
		if p.mover == 1 {
			label = -outcome
		}
		if err := dataset.Append(p.features, label); err != nil {
			return err
		}
	}
	return nil
}
