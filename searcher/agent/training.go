package agent

import (
	"math"

	"golang.org/x/exp/rand"

	"satellites/experiments/metrics"
	"satellites/game"
	"satellites/searcher"
)

type trainingAgent struct {
	mcts        *searcher.MCTS
	temperature float64
	rng         *rand.Rand
}

// NewTrainingAgent returns an agent that samples moves from the visit
// distribution, softened by the given temperature, for self-play data
// generation.
func NewTrainingAgent(mcts *searcher.MCTS, temperature float64, rng *rand.Rand) Agent {
	if temperature <= 0 {
		temperature = 1.0
	}
	return trainingAgent{mcts: mcts, temperature: temperature, rng: rng}
}

func (a trainingAgent) FindMove(state game.State) (game.Move, metrics.SearchMetric) {
	policy, metric := a.mcts.Simulate(state)
	return a.sample(adjustTemperature(policy, a.temperature)), metric
}

func adjustTemperature(policy map[game.Move]float64, temperature float64) map[game.Move]float64 {
	exponent := 1.0 / temperature
	sum := 0.0
	adjusted := make(map[game.Move]float64, len(policy))
	for move, visits := range policy {
		prob := math.Pow(visits, exponent)
		sum += prob
		adjusted[move] = prob
	}
	for move := range adjusted {
		adjusted[move] /= sum
	}
	return adjusted
}

func (a trainingAgent) sample(policy map[game.Move]float64) game.Move {
	sampled := a.rng.Float64()
	cumulative := 0.0
	var lastMove game.Move
	for move, prob := range policy {
		lastMove = move
		cumulative += prob
		if sampled < cumulative {
			return move
		}
	}
	return lastMove // Guard against rounding errors
}
