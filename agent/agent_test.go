package agent

import (
	"testing"
	"threechess/game"
	"threechess/searcher"

	"github.com/stretchr/testify/require"
)

func kingInReach() *game.Board {
	b := game.NewEmptyBoard(game.WithMoveLimit(40))
	b.Put(game.MustParsePosition("BH1"), game.Piece{Type: game.King, Colour: game.Blue})
	b.Put(game.MustParsePosition("BA1"), game.Piece{Type: game.Rook, Colour: game.Blue})
	b.Put(game.MustParsePosition("BA4"), game.Piece{Type: game.King, Colour: game.Green})
	b.Put(game.MustParsePosition("RE1"), game.Piece{Type: game.King, Colour: game.Red})
	return b
}

func TestMonteCarlo(t *testing.T) {
	t.Run("default name", func(t *testing.T) {
		require.Equal(t, "Monte", NewMonteCarlo("").String())
		require.Equal(t, "deep", NewMonteCarlo("deep").String())
	})

	t.Run("decides a legal move and reports metrics", func(t *testing.T) {
		a := NewMonteCarlo("", searcher.WithEpisodes(30), searcher.WithSeed(1), searcher.WithMetrics())
		b := game.NewBoard(game.WithMoveLimit(50))

		move, metric := a.Decide(b.Clone())

		require.True(t, b.IsLegalMove(move.Start, move.End), "%s should be legal", move)
		require.Equal(t, 30, metric.Episodes)
	})

	t.Run("captures a king in reach", func(t *testing.T) {
		a := NewMonteCarlo("", searcher.WithEpisodes(3000), searcher.WithSeed(4))

		move, _ := a.Decide(kingInReach())

		require.Equal(t, game.Move{Start: game.MustParsePosition("BA1"), End: game.MustParsePosition("BA4")}, move)
	})
}

func TestRandom(t *testing.T) {
	t.Run("plays legal moves", func(t *testing.T) {
		a := NewRandom("", 42)
		b := game.NewBoard()

		for i := 0; i < 30 && !b.GameOver(); i++ {
			move, _ := a.Decide(b.Clone())
			require.True(t, b.IsLegalMove(move.Start, move.End), "%s should be legal", move)
			require.NoError(t, b.Move(move.Start, move.End))
		}
	})

	t.Run("same seed same moves", func(t *testing.T) {
		b := game.NewBoard()
		first, _ := NewRandom("", 9).Decide(b.Clone())
		second, _ := NewRandom("", 9).Decide(b.Clone())

		require.Equal(t, first, second)
	})

	t.Run("no legal move panics", func(t *testing.T) {
		b := game.NewEmptyBoard()

		require.Panics(t, func() {
			NewRandom("", 1).Decide(b)
		})
	})
}
