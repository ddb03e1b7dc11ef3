package searcher

import (
	"fmt"
	"threechess/experiments/metrics"
	"threechess/game"
	"threechess/meta"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(mcts *MCTS)

type MCTS struct {
	duration time.Duration
	episodes int
	rng      *rand.Rand
	metrics  metrics.Collector
}

// WithDuration bounds every search by wall clock time
func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

// WithEpisodes bounds every search by a number of iterations. Combined with WithDuration the
// search stops at whichever limit comes first.
func WithEpisodes(episodes int) Option {
	return func(m *MCTS) {
		if episodes > 0 {
			m.episodes = episodes
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.episodes <= 0 && m.duration <= 0 {
		m.duration = meta.TURN_TIME
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return m
}

// FindNextMove searches from state and returns the move for the player on turn. state is
// not modified. Panics if that player has no legal move.
func (m *MCTS) FindNextMove(state game.State) (game.Move, metrics.SearchMetric) {
	m.metrics.Start()
	root := m.search(state)

	best := root.bestChild()
	if best == nil {
		panic(fmt.Sprintf("no legal move for %s", root.player))
	}
	if best.visits == 0 {
		log.Warn().Msgf("search for %s ended before visiting any move, playing %s", root.player, best.move)
	}
	metric := m.metrics.Complete(best.average())

	log.Debug().
		Str("player", root.player.String()).
		Str("move", best.move.String()).
		Int("visits", best.visits).
		Float64("average", best.average()).
		Int("episodes", root.visits).
		Msg("move found")
	return best.move, metric
}

// search builds a fresh tree for state and runs episodes until the budget is spent. At least
// one episode runs whenever the player on turn has a move.
func (m *MCTS) search(state game.State) *node {
	root := newNode(nil, state.Turn(), game.Move{})
	m.metrics.AddNodes(1 + root.expand(state.Clone()))
	if len(root.children) == 0 { // Nothing to decide between
		return root
	}

	start := time.Now()
	for episodes := 0; episodes == 0 || !m.spent(start, episodes); episodes++ {
		m.simulate(root, state.Clone())
		m.metrics.AddEpisode()
	}
	return root
}

func (m *MCTS) spent(start time.Time, episodes int) bool {
	if m.episodes > 0 && episodes >= m.episodes {
		return true
	}
	return m.duration > 0 && time.Since(start) >= m.duration
}

// simulate runs one episode on a private copy of the root state
func (m *MCTS) simulate(root *node, state game.State) {
	leaf, depth := m.selectThenExpand(root, state)
	m.metrics.AddDepth(depth)
	score := m.rollout(state, root.player)
	backup(leaf, score)
}

// selectThenExpand descends from root while nodes have been visited, replaying each chosen
// move on state. A visited node that was never expanded is expanded on arrival.
func (m *MCTS) selectThenExpand(root *node, state game.State) (*node, int) {
	current := root
	depth := 0
	for current.visits != 0 {
		child := current.pickChild()
		if child == current { // Stagnating on a terminal node
			break
		}
		if err := state.Move(child.move.Start, child.move.End); err != nil {
			panic(fmt.Sprintf("tree move %s is not legal: %v", child.move, err))
		}
		current = child
		depth++

		if current.status == unexpanded && current.visits != 0 {
			m.metrics.AddNodes(current.expand(state))
		}
	}
	return current, depth
}
