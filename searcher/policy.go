package searcher

import (
	"math"

	"satellites/game"
)

// Hyperparameters for MCTS

const CSquared = 2.0 // Exploration constant

const Win = 1.0   // Reward for a winning outcome
const Loss = -Win // Reward for a loss (negated from the opponent's perspective)

func ucb1(rewards float64, visits int, c2LnN float64) float64 {
	// Prioritize unexplored nodes
	if visits == 0 {
		return math.Inf(1)
	}

	// UCB1 = q/n + sqrt(c^2*ln(N)/n)
	return rewards/float64(visits) + math.Sqrt(c2LnN/float64(visits))
}

// rewarder maps a playout result onto a per-node reward. player is the
// playout winner (or the player at the cutoff state) and score is the reward
// from that player's perspective. An empty player marks a draw.
func rewarder(player string, score float64) func(string) float64 {
	return func(nodePlayer string) float64 {
		if player == "" {
			return 0
		}
		if nodePlayer == player {
			return score
		}
		return -score
	}
}

// FindMax returns the move with the most visits in a policy.
func FindMax(policy map[game.Move]float64) game.Move {
	var maxMove game.Move
	maxVisits := math.Inf(-1)
	for move, visits := range policy {
		if visits > maxVisits {
			maxVisits = visits
			maxMove = move
		}
	}
	return maxMove
}
