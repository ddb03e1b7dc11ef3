package agent

import (
	"fmt"
	"threechess/experiments/metrics"
	"threechess/game"
	"time"

	"golang.org/x/exp/rand"
)

const RandomName = "Random"

// Random plays a uniformly random legal move. It is the baseline opponent in experiments.
type Random struct {
	name string
	rng  *rand.Rand
}

func NewRandom(name string, seed uint64) *Random {
	if name == "" {
		name = RandomName
	}
	return &Random{
		name: name,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

func (a *Random) Decide(state game.State) (game.Move, metrics.SearchMetric) {
	start := time.Now()
	moves := game.LegalMoves(state)
	if len(moves) == 0 {
		panic(fmt.Sprintf("no legal move for %s", state.Turn()))
	}
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{Duration: time.Since(start)}
}

func (a *Random) GameEnd(final game.State) {}

func (a *Random) String() string {
	return a.name
}
