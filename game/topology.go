package game

import "sync"

// RowWidths defines the board shape: 9 rows, widest in the middle.
var RowWidths = [9]int{8, 9, 10, 11, 12, 11, 10, 9, 8}

// Fixed special hexes, as (row, col) pairs.
var (
	artefactCoords = [][2]int{{2, 1}, {2, 8}, {4, 4}, {4, 7}, {6, 1}, {6, 8}}
	p0StartCoords  = [][2]int{{0, 3}, {0, 4}}
	p1StartCoords  = [][2]int{{8, 3}, {8, 4}}
)

// Topology holds the static board structure: cell ids in row-major order,
// per-cell ordered neighbor lists, and the directed-edge ordinal numbering
// derived from them. It never changes after construction and is safe for
// concurrent reads.
type Topology struct {
	numCells  int
	rowOffset [9]int // first cell id of each row
	rowOf     []int
	colOf     []int
	neighbors [][]int
	edgeBase  []int    // first edge ordinal per source cell
	edges     [][2]int // edge ordinal -> (source, dest)
	artefact  []bool
	p0Start   []bool
	p1Start   []bool
	p0Starts  []int // cell ids
	p1Starts  []int
}

var (
	defaultTopology *Topology
	topologyOnce    sync.Once
)

// DefaultTopology returns the shared board topology, built at most once
// regardless of concurrent first access.
func DefaultTopology() *Topology {
	topologyOnce.Do(func() {
		defaultTopology = NewTopology()
	})
	return defaultTopology
}

// NewTopology computes the full board topology.
func NewTopology() *Topology {
	t := &Topology{}
	for r, w := range RowWidths {
		t.rowOffset[r] = t.numCells
		t.numCells += w
	}
	t.rowOf = make([]int, t.numCells)
	t.colOf = make([]int, t.numCells)
	for r, w := range RowWidths {
		for c := 0; c < w; c++ {
			id := t.rowOffset[r] + c
			t.rowOf[id] = r
			t.colOf[id] = c
		}
	}

	t.neighbors = make([][]int, t.numCells)
	t.edgeBase = make([]int, t.numCells)
	for id := 0; id < t.numCells; id++ {
		t.edgeBase[id] = len(t.edges)
		for _, n := range hexNeighborCoords(t.rowOf[id], t.colOf[id]) {
			nid := t.rowOffset[n[0]] + n[1]
			t.neighbors[id] = append(t.neighbors[id], nid)
			t.edges = append(t.edges, [2]int{id, nid})
		}
	}

	t.artefact = make([]bool, t.numCells)
	t.p0Start = make([]bool, t.numCells)
	t.p1Start = make([]bool, t.numCells)
	for _, rc := range artefactCoords {
		t.artefact[t.rowOffset[rc[0]]+rc[1]] = true
	}
	for _, rc := range p0StartCoords {
		id := t.rowOffset[rc[0]] + rc[1]
		t.p0Start[id] = true
		t.p0Starts = append(t.p0Starts, id)
	}
	for _, rc := range p1StartCoords {
		id := t.rowOffset[rc[0]] + rc[1]
		t.p1Start[id] = true
		t.p1Starts = append(t.p1Starts, id)
	}
	return t
}

// hexNeighborCoords lists candidate neighbors of (r, c) in the fixed order
// that defines edge ordinals: same-row left, same-row right, the two cells
// in the row above, then the two in the row below. The column offsets flip
// between the expanding half (rows 0-4) and the contracting half.
func hexNeighborCoords(r, c int) [][2]int {
	cand := make([][2]int, 0, 6)
	cand = append(cand, [2]int{r, c - 1}, [2]int{r, c + 1})
	if r > 0 {
		if r <= 4 { // row above is narrower
			cand = append(cand, [2]int{r - 1, c - 1}, [2]int{r - 1, c})
		} else { // row above is wider
			cand = append(cand, [2]int{r - 1, c}, [2]int{r - 1, c + 1})
		}
	}
	if r < 8 {
		if r < 4 { // row below is wider
			cand = append(cand, [2]int{r + 1, c}, [2]int{r + 1, c + 1})
		} else { // row below is narrower
			cand = append(cand, [2]int{r + 1, c - 1}, [2]int{r + 1, c})
		}
	}
	valid := cand[:0]
	for _, rc := range cand {
		if rc[0] >= 0 && rc[0] < 9 && rc[1] >= 0 && rc[1] < RowWidths[rc[0]] {
			valid = append(valid, rc)
		}
	}
	return valid
}

// NumCells returns the number of cells on the board.
func (t *Topology) NumCells() int { return t.numCells }

// NumEdges returns the number of directed adjacency edges.
func (t *Topology) NumEdges() int { return len(t.edges) }

// Neighbors returns the ordered neighbor cell ids of a cell. The returned
// slice is shared and must not be modified.
func (t *Topology) Neighbors(id int) []int { return t.neighbors[id] }

// Edge returns the (source, dest) pair for a directed edge ordinal.
func (t *Topology) Edge(ordinal int) (src, dst int) {
	e := t.edges[ordinal]
	return e[0], e[1]
}

// EdgeOrdinal returns the ordinal of the directed edge (src, dst), or false
// if dst is not adjacent to src.
func (t *Topology) EdgeOrdinal(src, dst int) (int, bool) {
	for i, n := range t.neighbors[src] {
		if n == dst {
			return t.edgeBase[src] + i, true
		}
	}
	return 0, false
}

// CellID maps a (row, col) coordinate to its cell id.
func (t *Topology) CellID(row, col int) (int, bool) {
	if row < 0 || row > 8 || col < 0 || col >= RowWidths[row] {
		return 0, false
	}
	return t.rowOffset[row] + col, true
}

// Coord maps a cell id back to its (row, col) coordinate.
func (t *Topology) Coord(id int) (row, col int) {
	return t.rowOf[id], t.colOf[id]
}

// InitialArtefacts returns a fresh per-cell artefact mask for a new game.
func (t *Topology) InitialArtefacts() []bool {
	out := make([]bool, t.numCells)
	copy(out, t.artefact)
	return out
}

// IsP0Start reports whether a cell is one of player 0's reserved hexes.
func (t *Topology) IsP0Start(id int) bool { return t.p0Start[id] }

// IsP1Start reports whether a cell is one of player 1's reserved hexes.
func (t *Topology) IsP1Start(id int) bool { return t.p1Start[id] }

// StartCells returns the reserved start hexes of a player. The returned
// slice is shared and must not be modified.
func (t *Topology) StartCells(player int8) []int {
	if player == 0 {
		return t.p0Starts
	}
	return t.p1Starts
}

// OpponentStartCells returns the start hexes the mover may never enter.
func (t *Topology) OpponentStartCells(mover int8) []int {
	return t.StartCells(1 - mover)
}

func (t *Topology) isStartOf(id int, player int8) bool {
	if player == 0 {
		return t.p0Start[id]
	}
	return t.p1Start[id]
}
