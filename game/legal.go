package game

import "fmt"

// LegalActionIndices returns every action index legal in the current state,
// sorted ascending. It is a pure read of the state: enumeration follows the
// codec layout, so the result is sorted by construction.
func (gs *GameState) LegalActionIndices(maxMoveAmount int) []int {
	if maxMoveAmount <= 0 {
		return nil
	}
	switch gs.Phase {
	case PhaseChooseSatellite:
		var out []int
		for i := range gs.Satellites {
			if gs.Satellites[i].Charge > 0 {
				out = append(out, i)
			}
		}
		return out
	case PhaseChooseDirection:
		return []int{directionBase, directionBase + 1}
	case PhasePerformActions:
		if gs.ActionType.IsAdd() {
			return gs.legalAddIndices()
		}
		if gs.ActionType.IsMove() {
			return gs.legalMoveIndices(maxMoveAmount)
		}
	}
	return nil
}

func (gs *GameState) legalAddIndices() []int {
	if gs.UnitTotal(gs.Turn) >= ArmyCap {
		return nil
	}
	var out []int
	for cell := range gs.Owner {
		if gs.addLegalAt(cell) {
			out = append(out, addBase+cell)
		}
	}
	return out
}

func (gs *GameState) legalMoveIndices(maxMoveAmount int) []int {
	moveBase := addBase + gs.Topo.NumCells()
	kind := gs.ActionType.UnitKind()
	var out []int
	for ordinal := 0; ordinal < gs.Topo.NumEdges(); ordinal++ {
		src, dst := gs.Topo.Edge(ordinal)
		lo, hi, ok := moveAmountRange(gs.Topo, gs.Owner, gs.Kind, gs.Count, gs.Artefact,
			gs.Turn, kind, src, dst, maxMoveAmount)
		if !ok {
			continue
		}
		for amount := lo; amount <= hi; amount++ {
			out = append(out, moveBase+ordinal*maxMoveAmount+(amount-1))
		}
	}
	return out
}

// hasLegalPerform reports whether any PerformActions action remains for the
// current action type. Cheaper than full enumeration: it exits on the first
// hit.
func (gs *GameState) hasLegalPerform(maxMoveAmount int) bool {
	switch {
	case gs.ActionType.IsAdd():
		if gs.UnitTotal(gs.Turn) >= ArmyCap {
			return false
		}
		for cell := range gs.Owner {
			if gs.addLegalAt(cell) {
				return true
			}
		}
	case gs.ActionType.IsMove():
		kind := gs.ActionType.UnitKind()
		for src := range gs.Owner {
			if gs.Owner[src] != gs.Turn || gs.Kind[src] != kind || gs.Count[src] <= 0 {
				continue
			}
			for _, dst := range gs.Topo.Neighbors(src) {
				if _, _, ok := moveAmountRange(gs.Topo, gs.Owner, gs.Kind, gs.Count, gs.Artefact,
					gs.Turn, kind, src, dst, maxMoveAmount); ok {
					return true
				}
			}
		}
	}
	return false
}

// moveAmountRange resolves the legal amount range [lo, hi] for moving units
// of reqKind from src to dst. It is the single source of truth for move
// legality, shared by enumeration, application, and the secondary
// enumerator. clamp bounds hi when positive; pass 0 for the unclamped range.
func moveAmountRange(topo *Topology, owner []int8, kind []UnitKind, count []int,
	artefact []bool, mover int8, reqKind UnitKind, src, dst, clamp int) (lo, hi int, ok bool) {
	if owner[src] != mover || kind[src] != reqKind || count[src] <= 0 {
		return 0, 0, false
	}
	if topo.isStartOf(dst, 1-mover) {
		return 0, 0, false
	}
	if reqKind == KindTank && artefact[dst] {
		return 0, 0, false
	}
	switch {
	case owner[dst] == NoOwner:
		lo, hi = 1, count[src]
	case owner[dst] == mover:
		if kind[dst] != reqKind {
			return 0, 0, false
		}
		lo, hi = 1, count[src]
	default:
		// Only tanks attack, and a tank-vs-tank attack must strictly
		// outnumber the defender.
		if reqKind != KindTank {
			return 0, 0, false
		}
		if kind[dst] == KindTank {
			if count[src] <= count[dst] {
				return 0, 0, false
			}
			lo, hi = count[dst]+1, count[src]
		} else {
			lo, hi = 1, count[src]
		}
	}
	if clamp > 0 && hi > clamp {
		hi = clamp
	}
	if lo > hi {
		return 0, 0, false
	}
	return lo, hi, true
}

// GenerateMoveActions lists every legal (source, dest, amount) movement for
// the given flat board arrays, in edge-ordinal order with amounts ascending.
// It applies exactly the same predicates as index enumeration, without the
// max-move-amount clamp. Array lengths must match the board.
func (t *Topology) GenerateMoveActions(owner []int8, kind []UnitKind, count []int,
	mover int8, requested UnitKind, artefact []bool) ([]MoveAction, error) {
	n := t.NumCells()
	if len(owner) != n || len(kind) != n || len(count) != n || len(artefact) != n {
		return nil, fmt.Errorf("array lengths (%d, %d, %d, %d) do not match board size %d",
			len(owner), len(kind), len(count), len(artefact), n)
	}
	if mover != 0 && mover != 1 {
		return nil, fmt.Errorf("mover must be 0 or 1, got %d", mover)
	}
	if requested != KindBot && requested != KindTank {
		return nil, fmt.Errorf("requested kind must be bot or tank, got %d", requested)
	}
	var out []MoveAction
	for ordinal := 0; ordinal < t.NumEdges(); ordinal++ {
		src, dst := t.Edge(ordinal)
		lo, hi, ok := moveAmountRange(t, owner, kind, count, artefact, mover, requested, src, dst, 0)
		if !ok {
			continue
		}
		for amount := lo; amount <= hi; amount++ {
			out = append(out, MoveAction{Source: src, Dest: dst, Amount: amount})
		}
	}
	return out, nil
}
