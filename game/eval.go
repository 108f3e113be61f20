package game

// EvaluateResources tallies each player's captured score and fielded units
// to produce a relative score between -1 and 1 from the current player's
// perspective. It is the default rollout-cutoff evaluation for tree search.
func EvaluateResources(s State) float64 {
	gs, ok := s.(*GameState)
	if !ok {
		panic("unexpected state type")
	}
	current := gs.Turn
	opponent := 1 - current

	scoreLead := normalize(float64(gs.Scores[current]), float64(gs.Scores[opponent]))
	unitLead := normalize(float64(gs.UnitTotal(current)), float64(gs.UnitTotal(opponent)))

	return (scoreLead + unitLead) / 2
}

// EvaluateScore only considers captured artefact points. Cheaper and closer
// to the win condition, but blind before the first capture.
func EvaluateScore(s State) float64 {
	gs, ok := s.(*GameState)
	if !ok {
		panic("unexpected state type")
	}
	return normalize(float64(gs.Scores[gs.Turn]), float64(gs.Scores[1-gs.Turn]))
}

// normalize converts two tallies into a single score between -1 and 1.
func normalize(value, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	// [a/(a+b)-0.5]*2 = (a-b)/(a+b)
	return (value - otherValue) / total
}
