package game

import (
	"fmt"
)

const (
	Rows       = 4
	Columns    = 8
	NumSquares = NumColours * Rows * Columns
)

// Position is a square of the board. Each colour owns a section of Rows x Columns squares;
// row 0 is the colour's back rank and row 3 borders the centre.
type Position struct {
	Colour Colour
	Row    int
	Column int
}

// Neighbour returns the adjacent square in direction d, seen from the perspective of the
// colour owning p. Moving forward off row 3 enters a neighbouring section at its row 3, with
// the column mirrored.
func (p Position) Neighbour(d Direction) (Position, error) {
	switch d {
	case Forward:
		if p.Row < Rows-1 {
			return Position{p.Colour, p.Row + 1, p.Column}, nil
		}
		if p.Column < Columns/2 {
			return Position{p.Colour.Next(), Rows - 1, Columns - 1 - p.Column}, nil
		}
		return Position{p.Colour.Previous(), Rows - 1, Columns - 1 - p.Column}, nil
	case Backward:
		if p.Row > 0 {
			return Position{p.Colour, p.Row - 1, p.Column}, nil
		}
	case Left:
		if p.Column > 0 {
			return Position{p.Colour, p.Row, p.Column - 1}, nil
		}
	case Right:
		if p.Column < Columns-1 {
			return Position{p.Colour, p.Row, p.Column + 1}, nil
		}
	}
	return p, ErrOffBoard
}

func (p Position) Valid() bool {
	return p.Colour >= Blue && p.Colour <= Red &&
		p.Row >= 0 && p.Row < Rows &&
		p.Column >= 0 && p.Column < Columns
}

func (p Position) index() int {
	return (int(p.Colour)*Rows+p.Row)*Columns + p.Column
}

func positionAt(i int) Position {
	return Position{
		Colour: Colour(i / (Rows * Columns)),
		Row:    i / Columns % Rows,
		Column: i % Columns,
	}
}

// String formats p the threeChess way, e.g. BA1 for Blue's column A, row 1.
func (p Position) String() string {
	return fmt.Sprintf("%c%c%d", p.Colour.letter(), 'A'+p.Column, p.Row+1)
}

// ParsePosition is the inverse of Position.String.
func ParsePosition(s string) (Position, error) {
	if len(s) != 3 {
		return Position{}, fmt.Errorf("invalid position %q", s)
	}
	var colour Colour
	switch s[0] {
	case 'B':
		colour = Blue
	case 'G':
		colour = Green
	case 'R':
		colour = Red
	default:
		return Position{}, fmt.Errorf("invalid colour in position %q", s)
	}
	p := Position{Colour: colour, Row: int(s[2] - '1'), Column: int(s[1] - 'A')}
	if !p.Valid() {
		return Position{}, fmt.Errorf("position %q is off the board", s)
	}
	return p, nil
}

// MustParsePosition panics on malformed input. Meant for tests and fixed layouts.
func MustParsePosition(s string) Position {
	p, err := ParsePosition(s)
	if err != nil {
		panic(err)
	}
	return p
}
