package searcher

import (
	"fmt"
	"strings"
	"threechess/game"
)

type outcome struct {
	hasWin bool
	winner game.Colour
	loser  game.Colour
}

// scriptedBoard is a State whose legal moves and results are looked up by move history.
// Every colour has a single king, which is enough for the step geometry of the real board.
type scriptedBoard struct {
	moves   map[string][]game.Move // Legal moves after a history
	ends    map[string]outcome     // Histories that end the game
	start   [game.NumColours]game.Position
	history []game.Move
}

var geometry = game.NewEmptyBoard()

func newScriptedBoard(moves map[string][]game.Move, ends map[string]outcome) *scriptedBoard {
	return &scriptedBoard{
		moves: moves,
		ends:  ends,
		start: [game.NumColours]game.Position{
			game.MustParsePosition("BE2"),
			game.MustParsePosition("GE2"),
			game.MustParsePosition("RE2"),
		},
	}
}

func mv(s string) game.Move {
	parts := strings.Split(s, "-")
	return game.Move{Start: game.MustParsePosition(parts[0]), End: game.MustParsePosition(parts[1])}
}

func mvs(s ...string) []game.Move {
	moves := make([]game.Move, len(s))
	for i := range s {
		moves[i] = mv(s[i])
	}
	return moves
}

func (s *scriptedBoard) key() string {
	played := make([]string, len(s.history))
	for i, move := range s.history {
		played[i] = move.String()
	}
	return strings.Join(played, ",")
}

func (s *scriptedBoard) position(c game.Colour) game.Position {
	p := s.start[c]
	for _, move := range s.history {
		if move.Start == p {
			p = move.End
		}
	}
	return p
}

func (s *scriptedBoard) Clone() game.State {
	c := *s
	c.history = append([]game.Move(nil), s.history...)
	return &c
}

func (s *scriptedBoard) Turn() game.Colour {
	return game.Colours[len(s.history)%game.NumColours]
}

func (s *scriptedBoard) Positions(c game.Colour) []game.Position {
	return []game.Position{s.position(c)}
}

func (s *scriptedBoard) PieceAt(p game.Position) (game.Piece, bool) {
	for _, c := range game.Colours {
		if s.position(c) == p {
			return game.Piece{Type: game.King, Colour: c}, true
		}
	}
	return game.Piece{}, false
}

func (s *scriptedBoard) Step(piece game.Piece, step []game.Direction, from game.Position, reverse bool) (game.Position, error) {
	return geometry.Step(piece, step, from, reverse)
}

func (s *scriptedBoard) IsLegalMove(start, end game.Position) bool {
	if s.GameOver() || start != s.position(s.Turn()) {
		return false
	}
	for _, move := range s.moves[s.key()] {
		if move.Start == start && move.End == end {
			return true
		}
	}
	return false
}

func (s *scriptedBoard) Move(start, end game.Position) error {
	if !s.IsLegalMove(start, end) {
		return fmt.Errorf("%w: %s-%s", game.ErrIllegalMove, start, end)
	}
	s.history = append(s.history, game.Move{Start: start, End: end})
	return nil
}

func (s *scriptedBoard) Undo() error {
	if len(s.history) == 0 {
		return game.ErrNoHistory
	}
	s.history = s.history[:len(s.history)-1]
	return nil
}

func (s *scriptedBoard) CapturedCount(c game.Colour) int {
	return 0
}

func (s *scriptedBoard) GameOver() bool {
	_, ok := s.ends[s.key()]
	return ok
}

func (s *scriptedBoard) Winner() (game.Colour, bool) {
	end := s.ends[s.key()]
	return end.winner, end.hasWin
}

func (s *scriptedBoard) Loser() (game.Colour, bool) {
	end := s.ends[s.key()]
	return end.loser, end.hasWin
}

// newWinOrLoseBoard gives Blue a losing move BE2-BE3, enumerated first, and a winning move
// BE2-BD2. Green's only reply decides the game.
func newWinOrLoseBoard() *scriptedBoard {
	return newScriptedBoard(
		map[string][]game.Move{
			"":        mvs("BE2-BE3", "BE2-BD2"),
			"BE2-BE3": mvs("GE2-GE3"),
			"BE2-BD2": mvs("GE2-GE3"),
		},
		map[string]outcome{
			"BE2-BE3,GE2-GE3": {hasWin: true, winner: game.Green, loser: game.Blue},
			"BE2-BD2,GE2-GE3": {hasWin: true, winner: game.Blue, loser: game.Green},
		},
	)
}

// newSingleMoveBoard gives Blue one legal move that ends the game without a winner
func newSingleMoveBoard() *scriptedBoard {
	return newScriptedBoard(
		map[string][]game.Move{"": mvs("BE2-BE3")},
		map[string]outcome{"BE2-BE3": {}},
	)
}
