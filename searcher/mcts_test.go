package searcher

import (
	"testing"
	"threechess/game"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSearch(t *testing.T) {
	t.Run("every episode visits the root", func(t *testing.T) {
		for _, episodes := range []int{1, 2, 25} {
			m := NewMCTS(WithEpisodes(episodes), WithSeed(3))
			root := m.search(newWinOrLoseBoard())

			require.Equal(t, episodes, root.visits)
			sum := 0
			for _, child := range root.children {
				sum += child.visits
			}
			require.Equal(t, episodes-1, sum, "The first episode should roll out from the root itself")
		}
	})

	t.Run("does not modify the given state", func(t *testing.T) {
		b := game.NewBoard(game.WithMoveLimit(30))
		before := observe(b)

		NewMCTS(WithEpisodes(20), WithSeed(5)).search(b)

		require.Equal(t, before, observe(b))
	})

	t.Run("tree statistics follow the outcomes", func(t *testing.T) {
		root := NewMCTS(WithEpisodes(20), WithSeed(9)).search(newWinOrLoseBoard())

		require.Len(t, root.children, 2)
		lose, win := root.children[0], root.children[1]
		require.Equal(t, -float64(lose.visits), lose.rewards)
		require.Equal(t, float64(win.visits), win.rewards)
		require.Greater(t, win.visits, lose.visits, "UCB1 should favour the winning move")
		require.Equal(t, expanded, win.status, "A revisited child should be expanded")
	})

	t.Run("stops on the duration", func(t *testing.T) {
		start := time.Now()
		NewMCTS(WithDuration(20*time.Millisecond), WithSeed(1)).search(newWinOrLoseBoard())

		require.Less(t, time.Since(start), 2*time.Second)
	})

	t.Run("episodes stop before a long duration", func(t *testing.T) {
		root := NewMCTS(WithDuration(time.Hour), WithEpisodes(5), WithSeed(1)).search(newWinOrLoseBoard())

		require.Equal(t, 5, root.visits)
	})
}

func TestFindNextMove(t *testing.T) {
	t.Run("prefers the winning move", func(t *testing.T) {
		for _, episodes := range []int{3, 50} {
			m := NewMCTS(WithEpisodes(episodes), WithSeed(11))

			move, _ := m.FindNextMove(newWinOrLoseBoard())

			require.Equal(t, mv("BE2-BD2"), move, "with %d episodes", episodes)
		}
	})

	t.Run("single legal move", func(t *testing.T) {
		for _, episodes := range []int{1, 10} {
			m := NewMCTS(WithEpisodes(episodes), WithSeed(1))

			move, _ := m.FindNextMove(newSingleMoveBoard())

			require.Equal(t, mv("BE2-BE3"), move, "with %d episodes", episodes)
		}
	})

	t.Run("reports search metrics", func(t *testing.T) {
		m := NewMCTS(WithEpisodes(12), WithSeed(2), WithMetrics())

		_, metric := m.FindNextMove(newWinOrLoseBoard())

		require.Equal(t, 12, metric.Episodes)
		require.Equal(t, 12, metric.FullPlayouts, "Every rollout ends with a winner")
		require.Equal(t, 1.0, metric.BestAverage)
		require.GreaterOrEqual(t, metric.MaxDepth, 1)
		require.GreaterOrEqual(t, metric.Nodes, 3)
	})

	t.Run("leaves the caller's state alone", func(t *testing.T) {
		b := newWinOrLoseBoard()

		NewMCTS(WithEpisodes(10), WithSeed(1)).FindNextMove(b)

		require.Empty(t, b.history)
	})

	t.Run("finds a capture of a king", func(t *testing.T) {
		b := game.NewEmptyBoard(game.WithMoveLimit(40))
		b.Put(game.MustParsePosition("BH1"), game.Piece{Type: game.King, Colour: game.Blue})
		b.Put(game.MustParsePosition("BA1"), game.Piece{Type: game.Rook, Colour: game.Blue})
		b.Put(game.MustParsePosition("BA4"), game.Piece{Type: game.King, Colour: game.Green})
		b.Put(game.MustParsePosition("RE1"), game.Piece{Type: game.King, Colour: game.Red})

		move, _ := NewMCTS(WithEpisodes(3000), WithSeed(4)).FindNextMove(b)

		require.Equal(t, game.Move{Start: game.MustParsePosition("BA1"), End: game.MustParsePosition("BA4")}, move)
	})

	t.Run("no legal move panics", func(t *testing.T) {
		b := newScriptedBoard(map[string][]game.Move{}, map[string]outcome{"": {}})

		require.Panics(t, func() {
			NewMCTS(WithEpisodes(1)).FindNextMove(b)
		})
	})
}
