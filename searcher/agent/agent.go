package agent

import (
	"satellites/experiments/metrics"
	"satellites/game"
	"satellites/searcher"
)

type Agent interface {
	// FindMove returns the chosen move and search metrics (if collected).
	FindMove(state game.State) (game.Move, metrics.SearchMetric)
}

type evaluationAgent struct {
	mcts *searcher.MCTS
}

// NewEvaluationAgent returns an agent that plays the most-visited root move.
func NewEvaluationAgent(mcts *searcher.MCTS) Agent {
	return evaluationAgent{mcts: mcts}
}

func (a evaluationAgent) FindMove(state game.State) (game.Move, metrics.SearchMetric) {
	policy, metric := a.mcts.Simulate(state)
	return searcher.FindMax(policy), metric
}
