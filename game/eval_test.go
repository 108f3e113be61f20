package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluateResources(t *testing.T) {
	t.Run("balanced opening evaluates to zero", func(t *testing.T) {
		require.Zero(t, EvaluateResources(NewGameState(nil)))
	})

	t.Run("score and unit leads favor the current player", func(t *testing.T) {
		topo := DefaultTopology()
		a := arrays(topo)
		a.Scores = [2]int{3, 1}
		cell, _ := topo.CellID(4, 5)
		put(&a, cell, 0, KindBot, 6)
		other, _ := topo.CellID(4, 6)
		put(&a, other, 1, KindBot, 2)
		gs, err := NewGameStateFromArrays(topo, a)
		require.NoError(t, err)

		fromAhead := EvaluateResources(gs)
		require.Greater(t, fromAhead, 0.0)
		require.LessOrEqual(t, fromAhead, 1.0)

		gs.Turn = 1
		require.InDelta(t, -fromAhead, EvaluateResources(gs), 1e-9,
			"Evaluation should negate with the mover")
	})

	t.Run("panics on a foreign state type", func(t *testing.T) {
		require.Panics(t, func() {
			EvaluateResources(nil)
		})
	})
}

func TestEvaluateScore(t *testing.T) {
	topo := DefaultTopology()
	a := arrays(topo)
	a.Scores = [2]int{4, 1}
	gs, err := NewGameStateFromArrays(topo, a)
	require.NoError(t, err)

	require.InDelta(t, (4.0-1.0)/5.0, EvaluateScore(gs), 1e-9)
}
