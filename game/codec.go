package game

// Codec is the bijection between actions and the dense integer indices that
// a policy network's output logits are masked against. The layout, for a
// board of n cells, E directed edges and max move amount M:
//
//	0..5            choose satellite slot
//	6, 7            distribution direction (6 counter-clockwise, 7 clockwise)
//	8..8+n-1        add unit on cell (index-8)
//	8+n..8+n+E*M-1  move along edge (index-8-n)/M, amount (index-8-n)%M + 1
//
// Indices are stable across processes as long as the board and M match.
type Codec struct {
	topo    *Topology
	maxMove int
}

const (
	numSatelliteSlots = 6
	directionBase     = numSatelliteSlots
	addBase           = directionBase + 2
)

// NewCodec builds a codec over the given topology. maxMove must be positive.
func NewCodec(topo *Topology, maxMove int) Codec {
	return Codec{topo: topo, maxMove: maxMove}
}

// Size returns the total number of action indices.
func (c Codec) Size() int {
	return addBase + c.topo.NumCells() + c.topo.NumEdges()*c.maxMove
}

func (c Codec) moveBase() int { return addBase + c.topo.NumCells() }

// Encode maps an action to its index. It returns false for actions outside
// the space, e.g. a move amount above the codec's maximum.
func (c Codec) Encode(a Action) (int, bool) {
	switch a.Kind {
	case SelectSatellite:
		if a.Slot < 0 || a.Slot >= numSatelliteSlots {
			return 0, false
		}
		return a.Slot, true
	case SetDirection:
		if a.Clockwise {
			return directionBase + 1, true
		}
		return directionBase, true
	case AddUnit:
		if a.Cell < 0 || a.Cell >= c.topo.NumCells() {
			return 0, false
		}
		return addBase + a.Cell, true
	case MoveUnits:
		if a.Amount < 1 || a.Amount > c.maxMove {
			return 0, false
		}
		ordinal, ok := c.topo.EdgeOrdinal(a.From, a.To)
		if !ok {
			return 0, false
		}
		return c.moveBase() + ordinal*c.maxMove + (a.Amount - 1), true
	}
	return 0, false
}

// Decode maps an index back to its action. It returns false for indices
// outside [0, Size).
func (c Codec) Decode(index int) (Action, bool) {
	if index < 0 || index >= c.Size() {
		return Action{}, false
	}
	switch {
	case index < directionBase:
		return Action{Kind: SelectSatellite, Slot: index}, true
	case index < addBase:
		return Action{Kind: SetDirection, Clockwise: index == directionBase+1}, true
	case index < c.moveBase():
		return Action{Kind: AddUnit, Cell: index - addBase}, true
	default:
		offset := index - c.moveBase()
		src, dst := c.topo.Edge(offset / c.maxMove)
		return Action{
			Kind:   MoveUnits,
			From:   src,
			To:     dst,
			Amount: offset%c.maxMove + 1,
		}, true
	}
}

// EncodeMove is a convenience for the move range of the index space.
func (c Codec) EncodeMove(src, dst, amount int) (int, bool) {
	return c.Encode(Action{Kind: MoveUnits, From: src, To: dst, Amount: amount})
}
