package engine

import (
	"satellites/experiments/metrics"
	"satellites/game"
	"satellites/searcher/agent"

	"github.com/rs/zerolog/log"
)

// Engine drives one local game between two agents.
type Engine struct {
	State  *game.GameState
	Agents []agent.Agent

	// OnState, if set, is called with each state the game passes through,
	// starting with the initial one. Hook for dataset recording.
	OnState func(*game.GameState)
}

func LocalEngine(agents []agent.Agent, state *game.GameState) *Engine {
	if len(agents) != 2 {
		panic("need exactly two agents")
	}
	if state == nil {
		state = game.NewGameState(nil)
	}
	return &Engine{State: state, Agents: agents}
}

// Run plays the game to completion and returns the winner with per-move
// search metrics. Termination is guaranteed by the state's turn limit.
func (e *Engine) Run() (string, []metrics.MoveMetric) {
	log.Info().Msgf("%s is starting", e.State.Player())
	if e.OnState != nil {
		e.OnState(e.State)
	}

	var moveMetrics []metrics.MoveMetric
	step := 1
	for !e.State.IsTerminal() {
		mover := e.State.Player()
		move, metric := e.Agents[e.State.Turn].FindMove(e.State)
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       mover,
			SearchMetric: metric,
		})

		newState := e.State.Play(move).(*game.GameState)
		log.Debug().
			Int("step", step).
			Str("player", mover).
			Stringer("move", move).
			Ints("scores", newState.Scores[:]).
			Msg("move played")

		e.State = newState
		if e.OnState != nil {
			e.OnState(e.State)
		}
		step++
	}

	winner := e.State.Winner()
	log.Info().Msgf("game over after %d moves: %s", step-1, winner)
	return winner, moveMetrics
}
