package game

// StateHash identifies a game state for tree search bookkeeping.
type StateHash uint64

// Move is one decision in the game, as consumed by the searcher.
type Move interface {
	MoveKind() ActionKind
	String() string
}

// State is the searcher-facing view of a game. Operations on State always
// return a new copy; the receiver is never mutated.
type State interface {
	Player() string
	LegalMoves() []Move
	Play(Move) State
	Hash() StateHash
	Winner() string
}

// Evaluate scores a state between -1 and 1 indicating how favorable the
// current player's position is to a winning (positive) outcome.
type Evaluate func(State) float64
