package game

import "fmt"

// ActionType identifies what a chosen satellite lets the mover do. The
// numeric codes are part of the engine's stable contract with the host.
type ActionType uint8

const (
	ActionNone ActionType = 0
	AddTank    ActionType = 1
	AddBot     ActionType = 2
	MoveTank   ActionType = 3
	MoveBot    ActionType = 4
)

func (a ActionType) String() string {
	switch a {
	case AddTank:
		return "add_tank"
	case AddBot:
		return "add_bot"
	case MoveTank:
		return "move_tank"
	case MoveBot:
		return "move_bot"
	}
	return "none"
}

// UnitKind returns the unit kind the action type operates on.
func (a ActionType) UnitKind() UnitKind {
	switch a {
	case AddTank, MoveTank:
		return KindTank
	case AddBot, MoveBot:
		return KindBot
	}
	return KindNone
}

// IsAdd reports whether the action type places new units.
func (a ActionType) IsAdd() bool { return a == AddTank || a == AddBot }

// IsMove reports whether the action type moves existing units.
func (a ActionType) IsMove() bool { return a == MoveTank || a == MoveBot }

// ActionKind tags the variants of an Action.
type ActionKind uint8

const (
	SelectSatellite ActionKind = iota
	SetDirection
	AddUnit
	MoveUnits
)

// Action is one concrete decision in the game. It is a tagged union: which
// fields are meaningful depends on Kind. Actions are comparable and usable
// as map keys.
type Action struct {
	Kind      ActionKind
	Slot      int  // SelectSatellite: satellite slot 0-5
	Clockwise bool // SetDirection
	Cell      int  // AddUnit: target cell id
	From      int  // MoveUnits: source cell id
	To        int  // MoveUnits: destination cell id
	Amount    int  // MoveUnits: units to move
}

// MoveKind satisfies the Move interface.
func (a Action) MoveKind() ActionKind { return a.Kind }

func (a Action) String() string {
	switch a.Kind {
	case SelectSatellite:
		return fmt.Sprintf("select_satellite(%d)", a.Slot)
	case SetDirection:
		if a.Clockwise {
			return "set_direction(cw)"
		}
		return "set_direction(ccw)"
	case AddUnit:
		return fmt.Sprintf("add(%d)", a.Cell)
	case MoveUnits:
		return fmt.Sprintf("move(%d->%d x%d)", a.From, a.To, a.Amount)
	}
	return "invalid"
}

// MoveAction is one legal troop movement in the secondary, non-index-encoded
// enumeration used for direct inspection and testing.
type MoveAction struct {
	Source int
	Dest   int
	Amount int
}
