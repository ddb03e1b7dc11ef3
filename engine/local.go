package engine

import (
	"fmt"
	"threechess/agent"
	"threechess/experiments/metrics"
	"threechess/game"
	"threechess/meta"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

var _ Engine = (*LocalEngine)(nil)

type Option func(e *LocalEngine)

// WithMaxMoves ends the game without a winner after limit moves. Ignored with WithBoard.
func WithMaxMoves(limit int) Option {
	return func(e *LocalEngine) {
		if limit > 0 {
			e.maxMoves = limit
		}
	}
}

// WithBoard starts from a prepared position instead of the opening
func WithBoard(board *game.Board) Option {
	return func(e *LocalEngine) {
		e.board = board
	}
}

// WithSeed seeds the fallback for illegal agent moves
func WithSeed(seed uint64) Option {
	return func(e *LocalEngine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// LocalEngine owns the authoritative board and asks the agent seated at each colour for its
// moves in turn
type LocalEngine struct {
	board    *game.Board
	agents   [game.NumColours]agent.Agent
	maxMoves int
	rng      *rand.Rand
}

func NewLocalEngine(agents [game.NumColours]agent.Agent, options ...Option) *LocalEngine {
	for c, a := range agents {
		if a == nil {
			panic(fmt.Sprintf("no agent seated at %s", game.Colour(c)))
		}
	}

	e := &LocalEngine{
		agents:   agents,
		maxMoves: meta.MAX_MOVES,
	}
	for _, option := range options {
		option(e)
	}
	if e.board == nil {
		e.board = game.NewBoard(game.WithMoveLimit(e.maxMoves))
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return e
}

func (e *LocalEngine) Board() *game.Board {
	return e.board
}

func (e *LocalEngine) Run() (metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{StartTime: time.Now()}
	for c, a := range e.agents {
		gameMetric.Seats[c] = a.String()
	}
	log.Info().Msgf("game starting: %s (Blue) %s (Green) %s (Red)", gameMetric.Seats[0], gameMetric.Seats[1], gameMetric.Seats[2])

	moveMetrics := []metrics.MoveMetric{}
	for !e.board.GameOver() {
		player := e.board.Turn()
		legal := e.board.LegalMoves()
		if len(legal) == 0 {
			log.Warn().Msgf("%s has no legal move, stopping the game", player)
			break
		}

		a := e.agents[player]
		start := time.Now()
		move, searchMetric := a.Decide(e.board.Clone())
		if searchMetric.Duration == 0 {
			searchMetric.Duration = time.Since(start)
		}

		if !e.board.IsLegalMove(move.Start, move.End) {
			fallback := legal[e.rng.Intn(len(legal))]
			log.Error().
				Str("agent", a.String()).
				Str("player", player.String()).
				Str("move", move.String()).
				Str("fallback", fallback.String()).
				Msg("agent returned an illegal move")
			move = fallback
		}
		if err := e.board.Move(move.Start, move.End); err != nil {
			panic(fmt.Sprintf("checked move %s rejected: %v", move, err))
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         e.board.MoveCount(),
			Player:       player.String(),
			Agent:        a.String(),
			Move:         move.String(),
			SearchMetric: searchMetric,
		})
	}

	for _, a := range e.agents {
		a.GameEnd(e.board.Clone())
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	if winner, ok := e.board.Winner(); ok {
		loser, _ := e.board.Loser()
		gameMetric.Winner = winner.String()
		gameMetric.Loser = loser.String()
		log.Info().Msgf("game over after %d moves: %s (%s) won, %s (%s) lost",
			gameMetric.TotalMoves, winner, e.agents[winner], loser, e.agents[loser])
	} else {
		log.Info().Msgf("game over after %d moves without a winner", gameMetric.TotalMoves)
	}
	return gameMetric, moveMetrics
}
