package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"satellites/game"
)

func TestUCB1(t *testing.T) {
	t.Run("unexplored nodes come first", func(t *testing.T) {
		require.Equal(t, math.Inf(1), ucb1(0, 0, 2.0*math.Log(100)))
	})

	t.Run("computes exploitation plus exploration", func(t *testing.T) {
		c2LnN := 2.0 * math.Log(100)
		got := ucb1(5.0, 10, c2LnN)
		want := 5.0/10 + math.Sqrt(c2LnN/10)
		require.InDelta(t, want, got, 0.0001,
			"Should compute q/n + sqrt(c^2*ln(N)/n)")
	})

	t.Run("exploration term decreases with visits", func(t *testing.T) {
		c2LnN := 2.0 * math.Log(100)
		require.Greater(t, ucb1(5.0, 10, c2LnN), ucb1(10.0, 20, c2LnN),
			"Same mean reward with more visits should score lower")
	})
}

func TestRewarder(t *testing.T) {
	t.Run("winner gets the score, opponent its negation", func(t *testing.T) {
		reward := rewarder("Player0", Win)
		require.Equal(t, Win, reward("Player0"))
		require.Equal(t, Loss, reward("Player1"))
	})

	t.Run("cutoff evaluations propagate fractional scores", func(t *testing.T) {
		reward := rewarder("Player1", 0.25)
		require.Equal(t, 0.25, reward("Player1"))
		require.Equal(t, -0.25, reward("Player0"))
	})

	t.Run("draws reward nobody", func(t *testing.T) {
		reward := rewarder("", 0)
		require.Zero(t, reward("Player0"))
		require.Zero(t, reward("Player1"))
	})
}

func TestFindMax(t *testing.T) {
	a := game.Action{Kind: game.SelectSatellite, Slot: 0}
	b := game.Action{Kind: game.SelectSatellite, Slot: 1}
	policy := map[game.Move]float64{a: 3, b: 17}

	require.Equal(t, b, FindMax(policy))
}
