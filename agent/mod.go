package agent

import (
	"threechess/experiments/metrics"
	"threechess/game"
)

type Agent interface {
	// Decide returns the move for the player on turn. state is a copy the agent may modify.
	Decide(state game.State) (game.Move, metrics.SearchMetric)
	// GameEnd is called once with the final position
	GameEnd(final game.State)
	String() string
}
