package agent

import (
	"threechess/experiments/metrics"
	"threechess/game"
	"threechess/searcher"

	"github.com/rs/zerolog/log"
)

const MonteName = "Monte"

// MonteCarlo decides every move with a fresh MCTS search
type MonteCarlo struct {
	name     string
	searcher searcher.Searcher
}

func NewMonteCarlo(name string, options ...searcher.Option) *MonteCarlo {
	if name == "" {
		name = MonteName
	}
	return &MonteCarlo{
		name:     name,
		searcher: searcher.NewMCTS(options...),
	}
}

func (a *MonteCarlo) Decide(state game.State) (game.Move, metrics.SearchMetric) {
	return a.searcher.FindNextMove(state)
}

func (a *MonteCarlo) GameEnd(final game.State) {
	winner, ok := final.Winner()
	if !ok {
		log.Debug().Msgf("%s: game over without a winner", a.name)
		return
	}
	log.Debug().Msgf("%s: game over, %s won", a.name, winner)
}

func (a *MonteCarlo) String() string {
	return a.name
}
