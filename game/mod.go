package game

import "errors"

var (
	ErrOffBoard    = errors.New("moved off board")
	ErrIllegalMove = errors.New("illegal move")
	ErrNoHistory   = errors.New("no move to undo")
)

// State is what a searching agent needs from the rules engine. Implementations are mutable:
// Move and Undo change the receiver, Clone gives an independent deep copy.
type State interface {
	Clone() State
	Turn() Colour
	// Positions lists the squares occupied by c's pieces in a stable order.
	Positions(c Colour) []Position
	PieceAt(p Position) (Piece, bool)
	// Step applies one step pattern of piece starting from `from`. reverse flips every
	// direction, which is needed once a path has crossed into another colour's section.
	Step(piece Piece, step []Direction, from Position, reverse bool) (Position, error)
	IsLegalMove(start, end Position) bool
	Move(start, end Position) error
	// Undo reverts the most recent Move.
	Undo() error
	// CapturedCount is the number of pieces c has taken so far.
	CapturedCount(c Colour) int
	GameOver() bool
	Winner() (Colour, bool)
	Loser() (Colour, bool)
}
