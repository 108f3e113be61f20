package searcher

import "satellites/game"

type Node interface {
	// SelectOrExpand descends one level of the tree. selected is false when
	// the walk must stop, either because a new child was expanded or because
	// the node is terminal.
	SelectOrExpand(state game.State) (child Node, childState game.State, selected bool)
	// Backup adds a reward for this node's player and returns the parent.
	Backup(reward func(string) float64) Node
	// Visits returns the node's visit count.
	Visits() int
}
