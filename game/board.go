package game

import (
	"fmt"
)

var backRank = [Columns]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

type Option func(b *Board)

// WithMoveLimit ends the game without a winner once limit moves have been played.
func WithMoveLimit(limit int) Option {
	return func(b *Board) {
		if limit > 0 {
			b.moveLimit = limit
		}
	}
}

// WithTurn sets the colour to play first.
func WithTurn(c Colour) Option {
	return func(b *Board) {
		b.turn = c
	}
}

// record holds what Undo needs to restore the board before a move
type record struct {
	move     Move
	mover    Piece
	target   Piece
	turn     Colour
	over     bool
	hasWin   bool
	winner   Colour
	loser    Colour
	previous int
}

// Board is the threeChess rules engine. It implements State.
type Board struct {
	squares   [NumSquares]Piece
	turn      Colour
	captured  [NumColours][]Piece // Pieces taken by each colour
	moves     int
	moveLimit int
	over      bool
	hasWin    bool
	winner    Colour
	loser     Colour
	history   []record
}

// NewBoard returns a board in the starting position with Blue to play.
func NewBoard(options ...Option) *Board {
	b := NewEmptyBoard(options...)
	for _, c := range Colours {
		for col, t := range backRank {
			b.Put(Position{c, 0, col}, Piece{Type: t, Colour: c})
			b.Put(Position{c, 1, col}, Piece{Type: Pawn, Colour: c})
		}
	}
	return b
}

// NewEmptyBoard returns a board with no pieces, for composing positions by hand.
func NewEmptyBoard(options ...Option) *Board {
	b := &Board{turn: Blue}
	for _, option := range options {
		option(b)
	}
	return b
}

// Put places a piece on a square, replacing anything already there.
func (b *Board) Put(p Position, piece Piece) {
	b.squares[p.index()] = piece
}

func (b *Board) Clone() State {
	return b.Copy()
}

// Copy is Clone with the concrete type.
func (b *Board) Copy() *Board {
	c := *b
	for i := range b.captured {
		c.captured[i] = append([]Piece(nil), b.captured[i]...)
	}
	c.history = append([]record(nil), b.history...)
	return &c
}

func (b *Board) Turn() Colour {
	return b.turn
}

func (b *Board) MoveCount() int {
	return b.moves
}

func (b *Board) Positions(c Colour) []Position {
	positions := make([]Position, 0, 2*Columns)
	for i, piece := range b.squares {
		if !piece.Empty() && piece.Colour == c {
			positions = append(positions, positionAt(i))
		}
	}
	return positions
}

func (b *Board) PieceAt(p Position) (Piece, bool) {
	if !p.Valid() {
		return Piece{}, false
	}
	piece := b.squares[p.index()]
	return piece, !piece.Empty()
}

func (b *Board) Step(piece Piece, step []Direction, from Position, reverse bool) (Position, error) {
	current := from
	for _, d := range step {
		if reverse || (piece.Type == Pawn && piece.Colour != current.Colour) {
			d = d.Reverse()
		}
		next, err := current.Neighbour(d)
		if err != nil {
			return from, err
		}
		if next.Colour != current.Colour {
			reverse = !reverse
		}
		current = next
	}
	return current, nil
}

func (b *Board) IsLegalMove(start, end Position) bool {
	if b.over || !start.Valid() || !end.Valid() || start == end {
		return false
	}
	mover := b.squares[start.index()]
	if mover.Empty() || mover.Colour != b.turn {
		return false
	}
	target := b.squares[end.index()]
	if !target.Empty() && target.Colour == mover.Colour {
		return false
	}

	steps := mover.Type.Steps()
	switch mover.Type {
	case Pawn:
		for i, step := range steps {
			dest, err := b.Step(mover, step, start, false)
			if err != nil || dest != end {
				continue
			}
			switch {
			case i == 0 && target.Empty():
				return true
			case i == 1 && target.Empty() && start.Colour == mover.Colour && start.Row == 1 &&
				b.squares[Position{mover.Colour, 2, start.Column}.index()].Empty():
				return true
			case i > 1 && !target.Empty():
				return true
			}
		}
	case Knight, King:
		for _, step := range steps {
			if dest, err := b.Step(mover, step, start, false); err == nil && dest == end {
				return true
			}
		}
	default:
		// Sliding pieces repeat a step until blocked
		for _, step := range steps {
			current := start
			for i := 0; i < mover.Type.StepReps(); i++ {
				next, err := b.Step(mover, step, current, current.Colour != start.Colour)
				if err != nil {
					break
				}
				if next == end {
					return true
				}
				if !b.squares[next.index()].Empty() {
					break
				}
				current = next
			}
		}
	}
	return false
}

func (b *Board) Move(start, end Position) error {
	if !b.IsLegalMove(start, end) {
		return fmt.Errorf("%w: %s-%s for %s", ErrIllegalMove, start, end, b.turn)
	}

	mover := b.squares[start.index()]
	target := b.squares[end.index()]
	b.history = append(b.history, record{
		move:     Move{start, end},
		mover:    mover,
		target:   target,
		turn:     b.turn,
		over:     b.over,
		hasWin:   b.hasWin,
		winner:   b.winner,
		loser:    b.loser,
		previous: b.moves,
	})

	placed := mover
	if mover.Type == Pawn && end.Colour != mover.Colour && end.Row == 0 {
		placed.Type = Queen
	}
	b.squares[end.index()] = placed
	b.squares[start.index()] = Piece{}

	if !target.Empty() {
		b.captured[mover.Colour] = append(b.captured[mover.Colour], target)
		if target.Type == King {
			b.over = true
			b.hasWin = true
			b.winner = mover.Colour
			b.loser = target.Colour
		}
	}

	b.moves++
	b.turn = b.turn.Next()
	if b.moveLimit > 0 && b.moves >= b.moveLimit {
		b.over = true
	}
	return nil
}

func (b *Board) Undo() error {
	if len(b.history) == 0 {
		return ErrNoHistory
	}
	last := b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]

	b.squares[last.move.Start.index()] = last.mover
	b.squares[last.move.End.index()] = last.target
	if !last.target.Empty() {
		taken := b.captured[last.mover.Colour]
		b.captured[last.mover.Colour] = taken[:len(taken)-1]
	}
	b.turn = last.turn
	b.moves = last.previous
	b.over = last.over
	b.hasWin = last.hasWin
	b.winner = last.winner
	b.loser = last.loser
	return nil
}

// Captured returns the pieces c has taken, in capture order.
func (b *Board) Captured(c Colour) []Piece {
	return append([]Piece(nil), b.captured[c]...)
}

func (b *Board) CapturedCount(c Colour) int {
	return len(b.captured[c])
}

func (b *Board) GameOver() bool {
	return b.over
}

func (b *Board) Winner() (Colour, bool) {
	return b.winner, b.hasWin
}

func (b *Board) Loser() (Colour, bool) {
	return b.loser, b.hasWin
}

// LegalMoves enumerates the distinct legal moves of the colour on turn.
func (b *Board) LegalMoves() []Move {
	return LegalMoves(b)
}
