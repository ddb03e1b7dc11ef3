package searcher

import (
	"threechess/experiments/metrics"
	"threechess/game"
)

type Searcher interface {
	FindNextMove(state game.State) (game.Move, metrics.SearchMetric)
}

// reward scores a finished game for player
func reward(state game.State, player game.Colour) float64 {
	if winner, ok := state.Winner(); ok && winner == player {
		return Win
	}
	if loser, ok := state.Loser(); ok && loser == player {
		return Loss
	}
	return Draw
}
