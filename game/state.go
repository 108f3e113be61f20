package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"

	"golang.org/x/exp/rand"
)

// UnitKind is the kind of unit stacked on a cell.
type UnitKind uint8

const (
	KindNone UnitKind = 0
	KindBot  UnitKind = 1
	KindTank UnitKind = 2
)

// Phase is a stage of the turn state machine.
type Phase int

const (
	PhaseChooseSatellite Phase = iota
	PhaseChooseDirection
	PhasePerformActions
	PhaseGameOver
)

// Result is the game outcome. Undetermined means the game is still in
// progress; Draw is only ever set at a confirmed game end.
type Result int8

const (
	ResultUndetermined Result = iota
	ResultPlayer0
	ResultPlayer1
	ResultDraw
)

const (
	// NoOwner marks an empty cell.
	NoOwner int8 = -1
	// NoSatellite marks that no satellite slot is active.
	NoSatellite = -1

	// ArmyCap is the maximum total units a player may own before further
	// add actions become illegal.
	ArmyCap = 20
	// WinningScore ends the game immediately for the mover reaching it.
	WinningScore = 9

	// DefaultMaxTurns bounds game length in full rounds.
	DefaultMaxTurns = 100
	// DefaultMaxMoveAmount is the largest stack transferable in one move.
	DefaultMaxMoveAmount = 20
)

// Satellite is one of the 6 ring-ordered resource slots. Its type is fixed
// for the slot's lifetime; its charge accumulates and is consumed entirely
// when the slot is chosen.
type Satellite struct {
	Type   ActionType
	Charge int
}

// GameState is the full mutable state of one game. It is mutated exclusively
// through ApplyActionIndex and becomes immutable once the phase reaches
// PhaseGameOver. Instances are independent; Copy produces a deep copy safe
// for parallel simulation.
type GameState struct {
	Topo *Topology

	// Per-cell unit state, indexed by cell id. Count > 0 implies an owner
	// and a kind; an empty cell is (NoOwner, KindNone, 0).
	Owner    []int8
	Kind     []UnitKind
	Count    []int
	Artefact []bool // cleared permanently on capture

	Satellites [numSatelliteSlots]Satellite

	Turn             int8 // current mover, 0 or 1
	Scores           [2]int
	Phase            Phase
	ActiveSatellite  int        // slot 0-5, or NoSatellite
	ActionType       ActionType // derived from the active satellite
	ActionsRemaining int
	PickedUpCharges  int
	TurnCount        int
	MaxTurns         int
	MaxMoveAmount    int // used when the caller does not pass one explicitly
	Result           Result
}

// NewGameState sets up the standard initial position: two bots and two tanks
// per player on their start hexes, satellites in their default order with
// the move slots pre-charged. Pass nil to use the shared topology.
func NewGameState(topo *Topology) *GameState {
	if topo == nil {
		topo = DefaultTopology()
	}
	n := topo.NumCells()
	gs := &GameState{
		Topo:            topo,
		Owner:           make([]int8, n),
		Kind:            make([]UnitKind, n),
		Count:           make([]int, n),
		Artefact:        topo.InitialArtefacts(),
		Turn:            0,
		Phase:           PhaseChooseSatellite,
		ActiveSatellite: NoSatellite,
		TurnCount:       1,
		MaxTurns:        DefaultMaxTurns,
		MaxMoveAmount:   DefaultMaxMoveAmount,
	}
	for i := range gs.Owner {
		gs.Owner[i] = NoOwner
	}
	gs.Satellites = [numSatelliteSlots]Satellite{
		{Type: MoveTank, Charge: 2},
		{Type: MoveTank, Charge: 2},
		{Type: MoveBot, Charge: 2},
		{Type: MoveBot, Charge: 2},
		{Type: AddTank, Charge: 0},
		{Type: AddBot, Charge: 0},
	}

	for p := int8(0); p <= 1; p++ {
		starts := topo.StartCells(p)
		gs.placeUnits(starts[0], p, KindBot, 2)
		gs.placeUnits(starts[1], p, KindTank, 2)
	}
	return gs
}

func (gs *GameState) placeUnits(cell int, owner int8, kind UnitKind, count int) {
	gs.Owner[cell] = owner
	gs.Kind[cell] = kind
	gs.Count[cell] = count
}

// ShuffleSatellites randomizes the slot order before play. Deterministic
// given the rand source.
func (gs *GameState) ShuffleSatellites(rng *rand.Rand) {
	rng.Shuffle(len(gs.Satellites), func(i, j int) {
		gs.Satellites[i], gs.Satellites[j] = gs.Satellites[j], gs.Satellites[i]
	})
}

// StateArrays is the flat-array construction surface consumed by the host
// training system. Slice lengths must match the board size and satellite
// slot count exactly.
type StateArrays struct {
	Owner    []int8
	Kind     []uint8
	Count    []int
	Artefact []bool
	P0Start  []bool
	P1Start  []bool

	SatTypes   []uint8
	SatCharges []int

	Turn             int8
	Scores           [2]int
	Phase            Phase
	ActiveSatellite  int
	ActionType       ActionType
	ActionsRemaining int
	PickedUpCharges  int
	TurnCount        int
	MaxTurns         int
	MaxMoveAmount    int
}

// NewGameStateFromArrays builds a GameState from explicit flat arrays,
// validating every length against the topology. Mismatches are hard errors:
// they indicate caller/engine version skew, never something to truncate or
// pad over.
func NewGameStateFromArrays(topo *Topology, a StateArrays) (*GameState, error) {
	if topo == nil {
		topo = DefaultTopology()
	}
	n := topo.NumCells()
	cellArrays := []struct {
		name string
		got  int
	}{
		{"owner", len(a.Owner)},
		{"kind", len(a.Kind)},
		{"count", len(a.Count)},
		{"artefact", len(a.Artefact)},
		{"p0_start", len(a.P0Start)},
		{"p1_start", len(a.P1Start)},
	}
	for _, arr := range cellArrays {
		if arr.got != n {
			return nil, fmt.Errorf("array %q has length %d, board has %d cells", arr.name, arr.got, n)
		}
	}
	if len(a.SatTypes) != numSatelliteSlots || len(a.SatCharges) != numSatelliteSlots {
		return nil, fmt.Errorf("satellite arrays must have length %d, got %d and %d",
			numSatelliteSlots, len(a.SatTypes), len(a.SatCharges))
	}
	if a.Turn != 0 && a.Turn != 1 {
		return nil, fmt.Errorf("turn must be 0 or 1, got %d", a.Turn)
	}
	if a.Phase < PhaseChooseSatellite || a.Phase > PhaseGameOver {
		return nil, fmt.Errorf("invalid phase %d", a.Phase)
	}
	if a.ActiveSatellite != NoSatellite && (a.ActiveSatellite < 0 || a.ActiveSatellite >= numSatelliteSlots) {
		return nil, fmt.Errorf("active satellite %d out of range", a.ActiveSatellite)
	}

	gs := &GameState{
		Topo:             topo,
		Owner:            make([]int8, n),
		Kind:             make([]UnitKind, n),
		Count:            make([]int, n),
		Artefact:         make([]bool, n),
		Turn:             a.Turn,
		Scores:           a.Scores,
		Phase:            a.Phase,
		ActiveSatellite:  a.ActiveSatellite,
		ActionType:       a.ActionType,
		ActionsRemaining: a.ActionsRemaining,
		PickedUpCharges:  a.PickedUpCharges,
		TurnCount:        a.TurnCount,
		MaxTurns:         a.MaxTurns,
		MaxMoveAmount:    a.MaxMoveAmount,
	}
	if gs.MaxTurns <= 0 {
		gs.MaxTurns = DefaultMaxTurns
	}
	if gs.MaxMoveAmount <= 0 {
		gs.MaxMoveAmount = DefaultMaxMoveAmount
	}
	copy(gs.Owner, a.Owner)
	copy(gs.Count, a.Count)
	copy(gs.Artefact, a.Artefact)
	for i, k := range a.Kind {
		gs.Kind[i] = UnitKind(k)
	}
	for i := 0; i < n; i++ {
		if a.P0Start[i] != topo.IsP0Start(i) || a.P1Start[i] != topo.IsP1Start(i) {
			return nil, fmt.Errorf("start flags for cell %d do not match the board topology", i)
		}
		empty := gs.Owner[i] == NoOwner
		if empty != (gs.Count[i] == 0) {
			return nil, fmt.Errorf("cell %d violates the owner/count invariant (owner=%d count=%d)",
				i, gs.Owner[i], gs.Count[i])
		}
		if !empty && gs.Kind[i] != KindBot && gs.Kind[i] != KindTank {
			return nil, fmt.Errorf("occupied cell %d has invalid unit kind %d", i, gs.Kind[i])
		}
	}
	for i := range gs.Satellites {
		t := ActionType(a.SatTypes[i])
		if !t.IsAdd() && !t.IsMove() {
			return nil, fmt.Errorf("satellite slot %d has invalid type %d", i, a.SatTypes[i])
		}
		if a.SatCharges[i] < 0 {
			return nil, fmt.Errorf("satellite slot %d has negative charge %d", i, a.SatCharges[i])
		}
		gs.Satellites[i] = Satellite{Type: t, Charge: a.SatCharges[i]}
	}
	return gs, nil
}

// Copy returns a fully independent deep copy with no aliasing of mutable
// state. The topology is shared; it is immutable.
func (gs *GameState) Copy() *GameState {
	dup := *gs
	dup.Owner = append([]int8(nil), gs.Owner...)
	dup.Kind = append([]UnitKind(nil), gs.Kind...)
	dup.Count = append([]int(nil), gs.Count...)
	dup.Artefact = append([]bool(nil), gs.Artefact...)
	return &dup
}

// UnitTotal returns the total number of units owned by a player.
func (gs *GameState) UnitTotal(player int8) int {
	total := 0
	for i, owner := range gs.Owner {
		if owner == player {
			total += gs.Count[i]
		}
	}
	return total
}

// IsTerminal reports whether the game has ended.
func (gs *GameState) IsTerminal() bool { return gs.Phase == PhaseGameOver }

// CurrentPlayer returns the mover, 0 or 1.
func (gs *GameState) CurrentPlayer() int8 { return gs.Turn }

// ApplyActionIndex applies one action index to the state. It returns true
// iff the state changed. Any index outside the current legal set, a zero
// maxMoveAmount, or a finished game yields false with the state untouched.
func (gs *GameState) ApplyActionIndex(index, maxMoveAmount int) bool {
	if maxMoveAmount <= 0 || gs.Phase == PhaseGameOver {
		return false
	}
	action, ok := NewCodec(gs.Topo, maxMoveAmount).Decode(index)
	if !ok {
		return false
	}
	switch gs.Phase {
	case PhaseChooseSatellite:
		return gs.applySelectSatellite(action)
	case PhaseChooseDirection:
		return gs.applySetDirection(action, maxMoveAmount)
	case PhasePerformActions:
		return gs.applyPerform(action, maxMoveAmount)
	}
	return false
}

func (gs *GameState) applySelectSatellite(a Action) bool {
	if a.Kind != SelectSatellite {
		return false
	}
	sat := &gs.Satellites[a.Slot]
	if sat.Charge <= 0 {
		return false
	}
	gs.ActiveSatellite = a.Slot
	gs.ActionType = sat.Type
	gs.PickedUpCharges = sat.Charge
	sat.Charge = 0
	gs.Phase = PhaseChooseDirection
	return true
}

func (gs *GameState) applySetDirection(a Action, maxMoveAmount int) bool {
	if a.Kind != SetDirection {
		return false
	}
	step := -1
	if a.Clockwise {
		step = 1
	}
	// Walk the ring one charge at a time, starting next to the emptied slot.
	slot := gs.ActiveSatellite
	for i := 0; i < gs.PickedUpCharges; i++ {
		slot = ((slot+step)%numSatelliteSlots + numSatelliteSlots) % numSatelliteSlots
		gs.Satellites[slot].Charge = saturatingAdd(gs.Satellites[slot].Charge, 1)
	}
	if !gs.hasLegalPerform(maxMoveAmount) {
		gs.endTurn()
		return true
	}
	gs.ActionsRemaining = gs.PickedUpCharges
	gs.Phase = PhasePerformActions
	return true
}

func (gs *GameState) applyPerform(a Action, maxMoveAmount int) bool {
	switch {
	case gs.ActionType.IsAdd() && a.Kind == AddUnit:
		return gs.applyAdd(a.Cell, maxMoveAmount)
	case gs.ActionType.IsMove() && a.Kind == MoveUnits:
		return gs.applyMove(a, maxMoveAmount)
	}
	return false
}

func (gs *GameState) applyAdd(cell, maxMoveAmount int) bool {
	// The cap is re-checked at the moment of application, not just at
	// enumeration time.
	if gs.UnitTotal(gs.Turn) >= ArmyCap {
		return false
	}
	if !gs.addLegalAt(cell) {
		return false
	}
	if gs.Owner[cell] == gs.Turn {
		gs.Count[cell] = saturatingAdd(gs.Count[cell], 1)
	} else {
		gs.placeUnits(cell, gs.Turn, gs.ActionType.UnitKind(), 1)
	}
	gs.afterAction(maxMoveAmount)
	return true
}

// addLegalAt is the single add-eligibility predicate shared by enumeration
// and application. It does not include the army cap.
func (gs *GameState) addLegalAt(cell int) bool {
	kind := gs.ActionType.UnitKind()
	if gs.Owner[cell] == gs.Turn && gs.Kind[cell] == kind {
		return true
	}
	if gs.Owner[cell] != NoOwner {
		return false
	}
	if kind == KindTank {
		// New tanks may not appear on the opponent's start or an artefact.
		return !gs.Topo.isStartOf(cell, 1-gs.Turn) && !gs.Artefact[cell]
	}
	// New bots only ever appear on the mover's own start hexes.
	return gs.Topo.isStartOf(cell, gs.Turn)
}

func (gs *GameState) applyMove(a Action, maxMoveAmount int) bool {
	lo, hi, ok := moveAmountRange(gs.Topo, gs.Owner, gs.Kind, gs.Count, gs.Artefact,
		gs.Turn, gs.ActionType.UnitKind(), a.From, a.To, maxMoveAmount)
	if !ok || a.Amount < lo || a.Amount > hi {
		return false
	}

	mover := gs.Turn
	kind := gs.ActionType.UnitKind()
	gs.Count[a.From] -= a.Amount
	if gs.Count[a.From] == 0 {
		gs.Owner[a.From] = NoOwner
		gs.Kind[a.From] = KindNone
	}

	movedIn := true
	switch {
	case gs.Owner[a.To] == NoOwner:
		gs.placeUnits(a.To, mover, kind, a.Amount)
	case gs.Owner[a.To] == mover:
		gs.Count[a.To] = saturatingAdd(gs.Count[a.To], a.Amount)
	default:
		// Ranged resolution: the tank destroys the enemy stack but never
		// enters the cell; the attacking amount returns to the source.
		gs.Owner[a.To] = NoOwner
		gs.Kind[a.To] = KindNone
		gs.Count[a.To] = 0
		if gs.Owner[a.From] == NoOwner {
			gs.placeUnits(a.From, mover, kind, a.Amount)
		} else {
			gs.Count[a.From] = saturatingAdd(gs.Count[a.From], a.Amount)
		}
		movedIn = false
	}

	if movedIn && gs.Artefact[a.To] {
		gs.Artefact[a.To] = false
		gs.Scores[mover] = saturatingAdd(gs.Scores[mover], a.Amount)
	}

	gs.afterAction(maxMoveAmount)
	return true
}

// afterAction runs the shared bookkeeping after every successful
// PerformActions mutation: win check first, then the action budget.
func (gs *GameState) afterAction(maxMoveAmount int) {
	if gs.checkWin() {
		return
	}
	gs.ActionsRemaining--
	if gs.ActionsRemaining <= 0 || !gs.hasLegalPerform(maxMoveAmount) {
		gs.endTurn()
	}
}

func (gs *GameState) remainingArtefacts() int {
	n := 0
	for _, a := range gs.Artefact {
		if a {
			n++
		}
	}
	return n
}

// checkWin evaluates the two immediate win conditions. On artefact
// exhaustion an exact score tie goes to the current mover, unlike the
// turn-limit ending where a tie is a draw.
func (gs *GameState) checkWin() bool {
	if gs.Scores[gs.Turn] >= WinningScore {
		gs.Result = playerResult(gs.Turn)
		gs.Phase = PhaseGameOver
		return true
	}
	if gs.remainingArtefacts() == 0 {
		switch {
		case gs.Scores[0] > gs.Scores[1]:
			gs.Result = ResultPlayer0
		case gs.Scores[1] > gs.Scores[0]:
			gs.Result = ResultPlayer1
		default:
			gs.Result = playerResult(gs.Turn)
		}
		gs.Phase = PhaseGameOver
		return true
	}
	return false
}

// endTurn hands control to the other player, or ends the game at the turn
// limit. A score tie at the limit is a draw, with no mover preference.
func (gs *GameState) endTurn() {
	if gs.TurnCount >= gs.MaxTurns {
		switch {
		case gs.Scores[0] > gs.Scores[1]:
			gs.Result = ResultPlayer0
		case gs.Scores[1] > gs.Scores[0]:
			gs.Result = ResultPlayer1
		default:
			gs.Result = ResultDraw
		}
		gs.Phase = PhaseGameOver
		return
	}
	gs.Turn = 1 - gs.Turn
	if gs.Turn == 0 {
		gs.TurnCount++
	}
	gs.Phase = PhaseChooseSatellite
	gs.ActiveSatellite = NoSatellite
	gs.ActionType = ActionNone
	gs.ActionsRemaining = 0
	gs.PickedUpCharges = 0
}

func playerResult(player int8) Result {
	if player == 0 {
		return ResultPlayer0
	}
	return ResultPlayer1
}

func saturatingAdd(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

// Hash returns an FNV-1a digest of the full game state.
func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(gs.Turn))
	binary.Write(hasher, binary.LittleEndian, int64(gs.Phase))
	binary.Write(hasher, binary.LittleEndian, int64(gs.ActiveSatellite))
	binary.Write(hasher, binary.LittleEndian, int64(gs.ActionType))
	binary.Write(hasher, binary.LittleEndian, int64(gs.ActionsRemaining))
	binary.Write(hasher, binary.LittleEndian, int64(gs.PickedUpCharges))
	binary.Write(hasher, binary.LittleEndian, int64(gs.TurnCount))
	binary.Write(hasher, binary.LittleEndian, int64(gs.Scores[0]))
	binary.Write(hasher, binary.LittleEndian, int64(gs.Scores[1]))

	for i := range gs.Owner {
		binary.Write(hasher, binary.LittleEndian, int64(gs.Owner[i]))
		binary.Write(hasher, binary.LittleEndian, int64(gs.Kind[i]))
		binary.Write(hasher, binary.LittleEndian, int64(gs.Count[i]))
		art := int64(0)
		if gs.Artefact[i] {
			art = 1
		}
		binary.Write(hasher, binary.LittleEndian, art)
	}
	for _, sat := range gs.Satellites {
		binary.Write(hasher, binary.LittleEndian, int64(sat.Type))
		binary.Write(hasher, binary.LittleEndian, int64(sat.Charge))
	}

	return StateHash(hasher.Sum64())
}

// Player returns the identifier of the current player.
func (gs *GameState) Player() string {
	return fmt.Sprintf("Player%d", gs.Turn)
}

// Winner returns the winner's identifier, "Draw" for a confirmed draw, or ""
// while the game is in progress.
func (gs *GameState) Winner() string {
	switch gs.Result {
	case ResultPlayer0:
		return "Player0"
	case ResultPlayer1:
		return "Player1"
	case ResultDraw:
		return "Draw"
	}
	return ""
}

// LegalMoves returns the decoded legal actions under the state's configured
// max move amount.
func (gs *GameState) LegalMoves() []Move {
	codec := NewCodec(gs.Topo, gs.MaxMoveAmount)
	indices := gs.LegalActionIndices(gs.MaxMoveAmount)
	moves := make([]Move, 0, len(indices))
	for _, idx := range indices {
		action, ok := codec.Decode(idx)
		if !ok {
			panic(fmt.Sprintf("legal index %d failed to decode", idx))
		}
		moves = append(moves, action)
	}
	return moves
}

// Play returns a new state with the move applied, leaving the receiver
// untouched. Moves must come from LegalMoves.
func (gs *GameState) Play(move Move) State {
	action, ok := move.(Action)
	if !ok {
		panic(fmt.Sprintf("unexpected move type %T", move))
	}
	next := gs.Copy()
	index, ok := NewCodec(gs.Topo, gs.MaxMoveAmount).Encode(action)
	if !ok {
		panic(fmt.Sprintf("move %v is outside the action space", action))
	}
	if !next.ApplyActionIndex(index, gs.MaxMoveAmount) {
		panic(fmt.Sprintf("illegal move %v in phase %d", action, gs.Phase))
	}
	return next
}
