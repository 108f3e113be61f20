package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFeatureSize(t *testing.T) {
	topo := DefaultTopology()
	require.Equal(t, 88*7+48, FeatureSize(topo))
}

func TestEncodeFeatures(t *testing.T) {
	gs := NewGameState(nil)
	topo := gs.Topo
	feat := gs.EncodeFeatures()
	globals := feat[topo.NumCells()*CellFeatureSize:]

	t.Run("vector has the documented length", func(t *testing.T) {
		require.Len(t, feat, FeatureSize(topo))
	})

	t.Run("cell planes carry normalized stack counts", func(t *testing.T) {
		p0Bots := topo.StartCells(0)[0]
		p0Tanks := topo.StartCells(0)[1]
		p1Bots := topo.StartCells(1)[0]

		require.InDelta(t, 2.0/ArmyCap, feat[p0Bots*CellFeatureSize+0], 1e-6)
		require.InDelta(t, 2.0/ArmyCap, feat[p0Tanks*CellFeatureSize+1], 1e-6)
		require.InDelta(t, 2.0/ArmyCap, feat[p1Bots*CellFeatureSize+2], 1e-6)
		require.Zero(t, feat[p0Bots*CellFeatureSize+1], "Bot stacks leave the tank plane empty")
	})

	t.Run("cell planes carry the board flags", func(t *testing.T) {
		artefactCell, _ := topo.CellID(2, 1)
		require.Equal(t, float32(1), feat[artefactCell*CellFeatureSize+4])
		require.Equal(t, float32(1), feat[topo.StartCells(0)[0]*CellFeatureSize+5])
		require.Equal(t, float32(1), feat[topo.StartCells(1)[0]*CellFeatureSize+6])
		require.Zero(t, feat[topo.StartCells(0)[0]*CellFeatureSize+6])
	})

	t.Run("globals encode the initial bookkeeping", func(t *testing.T) {
		require.Equal(t, float32(1), globals[0], "Player 0 to move")
		require.Zero(t, globals[1])
		require.Zero(t, globals[2], "No score yet")
		require.Zero(t, globals[3])
		require.Equal(t, float32(1), globals[4], "Satellite-choice phase")
		require.Equal(t, float32(1), globals[4+4+numSatelliteSlots], "No active satellite")
		require.InDelta(t, 1.0/DefaultMaxTurns, globals[4+4+7+2], 1e-6, "Turn counter")
	})

	t.Run("globals encode the satellite ring", func(t *testing.T) {
		slots := globals[GlobalFeatureSize-5*numSatelliteSlots:]
		// Slot 0 is a move_tank satellite with 2 charges.
		require.Equal(t, float32(1), slots[0])
		require.InDelta(t, 2.0/3.0, slots[4], 1e-6)
		// Slot 5 is an uncharged add_bot satellite.
		require.Equal(t, float32(1), slots[5*5+3])
		require.Zero(t, slots[5*5+4])
	})

	t.Run("tracks phase and active satellite", func(t *testing.T) {
		next := gs.Copy()
		require.True(t, next.ApplyActionIndex(3, next.MaxMoveAmount))
		g := next.EncodeFeatures()[topo.NumCells()*CellFeatureSize:]

		require.Equal(t, float32(1), g[4+1], "Direction-choice phase")
		require.Equal(t, float32(1), g[4+4+3], "Slot 3 active")
		require.InDelta(t, 2.0/3.0, g[4+4+7+1], 1e-6, "Picked up charges")
	})

	t.Run("never mutates the state", func(t *testing.T) {
		before := gs.Hash()
		gs.EncodeFeatures()
		require.Equal(t, before, gs.Hash())
	})
}
