package game

// Direction is relative to the player whose section a position belongs to:
// forward points towards the centre of the board.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
)

func (d Direction) Reverse() Direction {
	switch d {
	case Forward:
		return Backward
	case Backward:
		return Forward
	case Left:
		return Right
	default:
		return Left
	}
}

func (d Direction) String() string {
	return [...]string{"Forward", "Backward", "Left", "Right"}[d]
}
