package searcher

import (
	"fmt"
	"threechess/game"
	"threechess/utils"
)

// livePieces tracks the squares each colour occupies during a rollout, so random moves are
// drawn without scanning the board
type livePieces [game.NumColours][]game.Position

func newLivePieces(state game.State) *livePieces {
	var live livePieces
	for _, c := range game.Colours {
		live[c] = state.Positions(c)
	}
	return &live
}

func (l *livePieces) apply(mover game.Colour, move game.Move, captured bool) {
	if captured {
		for _, c := range game.Colours {
			if c == mover {
				continue
			}
			if remaining, ok := utils.Remove(l[c], move.End); ok {
				l[c] = remaining
				break
			}
		}
	}
	if !utils.Replace(l[mover], move.Start, move.End) {
		panic(fmt.Sprintf("%s moved from %s which it does not occupy", mover, move.Start))
	}
}

// rollout plays uniformly random legal moves on state until the game is over and scores the
// outcome for player
func (m *MCTS) rollout(state game.State, player game.Colour) float64 {
	live := newLivePieces(state)
	for !state.GameOver() {
		mover := state.Turn()
		move := m.randomMove(state, live[mover])

		captured := state.CapturedCount(mover)
		if err := state.Move(move.Start, move.End); err != nil {
			panic(fmt.Sprintf("rollout move %s is not legal: %v", move, err))
		}
		live.apply(mover, move, state.CapturedCount(mover) != captured)
	}

	if _, ok := state.Winner(); ok {
		m.metrics.AddFullPlayout()
	}
	return reward(state, player)
}

// randomMove draws a piece, a step pattern and a repetition count until the result is legal.
// The player must have at least one legal move.
func (m *MCTS) randomMove(state game.State, pieces []game.Position) game.Move {
	if len(pieces) == 0 {
		panic(fmt.Sprintf("%s has no pieces left to move", state.Turn()))
	}
	for {
		start := pieces[m.rng.Intn(len(pieces))]
		piece, ok := state.PieceAt(start)
		if !ok {
			panic(fmt.Sprintf("no piece on %s", start))
		}
		steps := piece.Type.Steps()
		step := steps[m.rng.Intn(len(steps))]
		reps := 1 + m.rng.Intn(piece.Type.StepReps())

		end, ok := walk(state, piece, step, start, reps)
		if ok && state.IsLegalMove(start, end) {
			return game.Move{Start: start, End: end}
		}
	}
}

// walk repeats step reps times from start, reversing once the path has left start's section
func walk(state game.State, piece game.Piece, step []game.Direction, start game.Position, reps int) (game.Position, bool) {
	end := start
	for i := 0; i < reps; i++ {
		next, err := state.Step(piece, step, end, start.Colour != end.Colour)
		if err != nil {
			return start, false
		}
		end = next
	}
	return end, true
}
