package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"satellites/experiments/metrics"
	"satellites/game"
	"satellites/searcher/agent"
)

// greedyAgent always plays the first legal move. Cheap and deterministic,
// which makes full games fast enough to run to the turn limit.
type greedyAgent struct{}

func (greedyAgent) FindMove(state game.State) (game.Move, metrics.SearchMetric) {
	return state.LegalMoves()[0], metrics.SearchMetric{}
}

func TestLocalEngine(t *testing.T) {
	t.Run("requires exactly two agents", func(t *testing.T) {
		require.Panics(t, func() {
			LocalEngine([]agent.Agent{greedyAgent{}}, nil)
		})
	})

	t.Run("plays a game to completion", func(t *testing.T) {
		state := game.NewGameState(nil)
		state.MaxTurns = 4
		eng := LocalEngine([]agent.Agent{greedyAgent{}, greedyAgent{}}, state)

		winner, moves := eng.Run()

		require.True(t, eng.State.IsTerminal())
		require.Contains(t, []string{"Player0", "Player1", "Draw"}, winner)
		require.Equal(t, eng.State.Winner(), winner)
		require.NotEmpty(t, moves)
		for i, m := range moves {
			require.Equal(t, i+1, m.Step)
		}
	})

	t.Run("state hook sees every position", func(t *testing.T) {
		state := game.NewGameState(nil)
		state.MaxTurns = 3
		eng := LocalEngine([]agent.Agent{greedyAgent{}, greedyAgent{}}, state)

		var seen []*game.GameState
		eng.OnState = func(s *game.GameState) { seen = append(seen, s) }
		_, moves := eng.Run()

		require.Len(t, seen, len(moves)+1, "Hook should fire for the initial state and after each move")
		require.True(t, seen[len(seen)-1].IsTerminal())
	})

	t.Run("nil state falls back to the initial position", func(t *testing.T) {
		eng := LocalEngine([]agent.Agent{greedyAgent{}, greedyAgent{}}, nil)
		require.Equal(t, 1, eng.State.TurnCount)
		require.False(t, eng.State.IsTerminal())
	})
}
