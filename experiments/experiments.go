// Package experiments runs agent matchups and self-play data generation,
// persisting results as CSV for offline analysis.
package experiments

import (
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"satellites/engine"
	"satellites/experiments/metrics"
	"satellites/game"
	"satellites/searcher"
	"satellites/searcher/agent"
)

// RunMatchup plays the configured number of games between the two agents,
// alternating which agent moves first, and writes agent, game and move
// records under the output directory.
func RunMatchup(cfg engine.Config) error {
	writer, err := metrics.NewWriter(cfg.OutputDir)
	if err != nil {
		return err
	}
	if err := writer.WriteAgentConfigs(agentConfigs(cfg)); err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord

	for g := 0; g < cfg.Games; g++ {
		first, second := 0, 1
		if g%2 == 1 { // Alternate the starting agent
			first, second = second, first
		}
		agents := []agent.Agent{
			newSearchAgent(cfg.Agents[first]),
			newSearchAgent(cfg.Agents[second]),
		}

		eng := engine.LocalEngine(agents, newState(cfg, rng))
		start := time.Now()
		winner, moves := eng.Run()
		end := time.Now()

		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:     g,
			Agent0: first,
			Agent1: second,
			GameMetric: metrics.GameMetric{
				Winner:     winner,
				StartTime:  start,
				EndTime:    end,
				Duration:   end.Sub(start),
				TotalMoves: len(moves),
			},
		})
		for _, m := range moves {
			moveRecords = append(moveRecords, metrics.MoveRecord{Game: g, MoveMetric: m})
		}
		log.Info().Int("game", g).Str("winner", winner).Int("moves", len(moves)).Msg("game finished")
	}

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return err
	}
	return writer.WriteMoveRecords(moveRecords)
}

func newSearchAgent(cfg engine.AgentConfig) agent.Agent {
	return agent.NewEvaluationAgent(newMCTS(cfg))
}

func newMCTS(cfg engine.AgentConfig) *searcher.MCTS {
	options := []searcher.Option{searcher.WithMetrics()}
	if cfg.Episodes > 0 {
		options = append(options, searcher.WithEpisodes(cfg.Episodes))
	}
	if cfg.Duration > 0 {
		options = append(options, searcher.WithDuration(cfg.Duration.Std()))
	}
	if cfg.Cutoff > 0 {
		options = append(options, searcher.WithCutoff(cfg.Cutoff))
	}
	return searcher.NewMCTS(cfg.Goroutines, options...)
}

func newState(cfg engine.Config, rng *rand.Rand) *game.GameState {
	state := game.NewGameState(nil)
	state.MaxTurns = cfg.MaxTurns
	state.MaxMoveAmount = cfg.MaxMoveAmount
	if cfg.ShuffleSatellites {
		state.ShuffleSatellites(rng)
	}
	return state
}

func agentConfigs(cfg engine.Config) []metrics.AgentConfig {
	configs := make([]metrics.AgentConfig, len(cfg.Agents))
	for i, a := range cfg.Agents {
		configs[i] = metrics.AgentConfig{
			ID:         i,
			Goroutines: a.Goroutines,
			Episodes:   a.Episodes,
			Duration:   a.Duration.Std(),
			Cutoff:     a.Cutoff,
		}
	}
	return configs
}
