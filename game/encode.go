package game

// Feature layout constants. Per cell: four mutually exclusive owner-by-kind
// stack counts, then the artefact and start flags. Globals: mover one-hot,
// scores, phase one-hot, active satellite one-hot (7th bucket means none),
// three counters, then per-slot satellite type one-hot plus charge.
const (
	CellFeatureSize   = 7
	GlobalFeatureSize = 2 + 2 + 4 + (numSatelliteSlots + 1) + 3 + 5*numSatelliteSlots
)

// FeatureSize returns the encoded vector length for a board.
func FeatureSize(topo *Topology) int {
	return topo.NumCells()*CellFeatureSize + GlobalFeatureSize
}

// EncodeFeatures projects the state into a fixed-length vector for a policy
// and value network. It never mutates the state and allocates only the
// output slice.
func (gs *GameState) EncodeFeatures() []float32 {
	feat := make([]float32, FeatureSize(gs.Topo))
	p := 0

	for cell := range gs.Owner {
		cnt := float32(gs.Count[cell]) / float32(ArmyCap)
		switch {
		case gs.Owner[cell] == 0 && gs.Kind[cell] == KindBot:
			feat[p+0] = cnt
		case gs.Owner[cell] == 0 && gs.Kind[cell] == KindTank:
			feat[p+1] = cnt
		case gs.Owner[cell] == 1 && gs.Kind[cell] == KindBot:
			feat[p+2] = cnt
		case gs.Owner[cell] == 1 && gs.Kind[cell] == KindTank:
			feat[p+3] = cnt
		}
		if gs.Artefact[cell] {
			feat[p+4] = 1
		}
		if gs.Topo.IsP0Start(cell) {
			feat[p+5] = 1
		}
		if gs.Topo.IsP1Start(cell) {
			feat[p+6] = 1
		}
		p += CellFeatureSize
	}

	// Side to move.
	feat[p+int(gs.Turn)] = 1
	p += 2

	feat[p+0] = float32(gs.Scores[0]) / float32(WinningScore)
	feat[p+1] = float32(gs.Scores[1]) / float32(WinningScore)
	p += 2

	feat[p+int(gs.Phase)] = 1
	p += 4

	active := numSatelliteSlots // "none" bucket
	if gs.ActiveSatellite != NoSatellite {
		active = gs.ActiveSatellite
	}
	feat[p+active] = 1
	p += numSatelliteSlots + 1

	maxTurns := gs.MaxTurns
	if maxTurns < 1 {
		maxTurns = 1
	}
	feat[p+0] = float32(gs.ActionsRemaining) / 3
	feat[p+1] = float32(gs.PickedUpCharges) / 3
	feat[p+2] = float32(gs.TurnCount) / float32(maxTurns)
	p += 3

	for _, sat := range gs.Satellites {
		feat[p+satTypeFeatureIndex(sat.Type)] = 1
		feat[p+4] = float32(sat.Charge) / 3
		p += 5
	}

	return feat
}

// satTypeFeatureIndex fixes the satellite-type one-hot order the network was
// trained against: move_tank, move_bot, add_tank, add_bot.
func satTypeFeatureIndex(t ActionType) int {
	switch t {
	case MoveTank:
		return 0
	case MoveBot:
		return 1
	case AddTank:
		return 2
	default: // AddBot
		return 3
	}
}
