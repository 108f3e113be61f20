package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTopology(t *testing.T) {
	topo := NewTopology()

	t.Run("cell count matches row widths", func(t *testing.T) {
		total := 0
		for _, w := range RowWidths {
			total += w
		}
		require.Equal(t, total, topo.NumCells(), "Cell count should be the sum of row widths")
		require.Equal(t, 88, topo.NumCells())
	})

	t.Run("row-major cell ids round-trip", func(t *testing.T) {
		id := 0
		for r, w := range RowWidths {
			for c := 0; c < w; c++ {
				got, ok := topo.CellID(r, c)
				require.True(t, ok)
				require.Equal(t, id, got, "Cell ids should be assigned in row-major order")

				gotR, gotC := topo.Coord(id)
				require.Equal(t, r, gotR)
				require.Equal(t, c, gotC)
				id++
			}
		}
	})

	t.Run("rejects out-of-range coordinates", func(t *testing.T) {
		for _, rc := range [][2]int{{-1, 0}, {9, 0}, {0, 8}, {4, 12}, {8, -1}} {
			_, ok := topo.CellID(rc[0], rc[1])
			require.False(t, ok, "Coordinate (%d, %d) should be rejected", rc[0], rc[1])
		}
	})

	t.Run("adjacency is symmetric", func(t *testing.T) {
		for id := 0; id < topo.NumCells(); id++ {
			for _, n := range topo.Neighbors(id) {
				require.Contains(t, topo.Neighbors(n), id,
					"Cell %d lists %d as a neighbor but not vice versa", id, n)
			}
		}
	})

	t.Run("neighbor order on the expanding half", func(t *testing.T) {
		// Top-left corner: right, then the two below.
		require.Equal(t, []int{1, 8, 9}, topo.Neighbors(0))

		// Middle-row left edge: right, one above, one below.
		id, _ := topo.CellID(4, 0)
		above, _ := topo.CellID(3, 0)
		right, _ := topo.CellID(4, 1)
		below, _ := topo.CellID(5, 0)
		require.Equal(t, []int{right, above, below}, topo.Neighbors(id))
	})

	t.Run("neighbor order on the contracting half", func(t *testing.T) {
		// Bottom-left corner: right, then the two above.
		id, _ := topo.CellID(8, 0)
		right, _ := topo.CellID(8, 1)
		up0, _ := topo.CellID(7, 0)
		up1, _ := topo.CellID(7, 1)
		require.Equal(t, []int{right, up0, up1}, topo.Neighbors(id))
	})

	t.Run("interior cells have six neighbors", func(t *testing.T) {
		id, _ := topo.CellID(4, 5)
		require.Len(t, topo.Neighbors(id), 6)
	})

	t.Run("edge ordinals enumerate all neighbor pairs", func(t *testing.T) {
		total := 0
		for id := 0; id < topo.NumCells(); id++ {
			total += len(topo.Neighbors(id))
		}
		require.Equal(t, total, topo.NumEdges())

		for ordinal := 0; ordinal < topo.NumEdges(); ordinal++ {
			src, dst := topo.Edge(ordinal)
			got, ok := topo.EdgeOrdinal(src, dst)
			require.True(t, ok)
			require.Equal(t, ordinal, got, "Edge (%d, %d) should map back to its ordinal", src, dst)
		}
	})

	t.Run("edge ordinal rejects non-adjacent pairs", func(t *testing.T) {
		_, ok := topo.EdgeOrdinal(0, 50)
		require.False(t, ok)
	})

	t.Run("special hexes", func(t *testing.T) {
		artefacts := 0
		for id, set := range topo.InitialArtefacts() {
			if set {
				artefacts++
				r, _ := topo.Coord(id)
				require.Contains(t, []int{2, 4, 6}, r, "Artefacts should sit on rows 2, 4 and 6")
			}
		}
		require.Equal(t, 6, artefacts)

		require.Len(t, topo.StartCells(0), 2)
		require.Len(t, topo.StartCells(1), 2)
		for _, id := range topo.StartCells(0) {
			r, c := topo.Coord(id)
			require.Equal(t, 0, r)
			require.Contains(t, []int{3, 4}, c)
			require.True(t, topo.IsP0Start(id))
			require.False(t, topo.IsP1Start(id))
		}
		for _, id := range topo.StartCells(1) {
			r, _ := topo.Coord(id)
			require.Equal(t, 8, r)
			require.True(t, topo.IsP1Start(id))
		}
		require.Equal(t, topo.StartCells(1), topo.OpponentStartCells(0))
	})
}

func TestDefaultTopology(t *testing.T) {
	t.Run("returns the same instance", func(t *testing.T) {
		require.Same(t, DefaultTopology(), DefaultTopology())
	})
}
