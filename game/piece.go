package game

type PieceType int

const (
	None PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var (
	pawnSteps = [][]Direction{
		{Forward},
		{Forward, Forward},
		{Forward, Left},
		{Forward, Right},
	}
	knightSteps = [][]Direction{
		{Forward, Forward, Left}, {Forward, Forward, Right},
		{Backward, Backward, Left}, {Backward, Backward, Right},
		{Left, Left, Forward}, {Left, Left, Backward},
		{Right, Right, Forward}, {Right, Right, Backward},
	}
	bishopSteps = [][]Direction{
		{Forward, Left}, {Forward, Right}, {Backward, Left}, {Backward, Right},
	}
	rookSteps = [][]Direction{
		{Forward}, {Backward}, {Left}, {Right},
	}
	royalSteps = append(append([][]Direction{}, rookSteps...), bishopSteps...)
)

// Steps lists the direction sequences a piece of this type may take in one step.
// For pawns the order matters: single advance, double advance, then the two captures.
func (t PieceType) Steps() [][]Direction {
	switch t {
	case Pawn:
		return pawnSteps
	case Knight:
		return knightSteps
	case Bishop:
		return bishopSteps
	case Rook:
		return rookSteps
	case Queen, King:
		return royalSteps
	default:
		return nil
	}
}

// StepReps is the maximum number of times a step may be repeated in a single move.
func (t PieceType) StepReps() int {
	switch t {
	case Bishop, Rook, Queen:
		return Columns
	case None:
		return 0
	default:
		return 1
	}
}

func (t PieceType) Value() int {
	return [...]int{0, 1, 3, 3, 5, 9, 100}[t]
}

func (t PieceType) String() string {
	return [...]string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}[t]
}

// Piece is the content of a square. The zero value is an empty square.
type Piece struct {
	Type   PieceType
	Colour Colour
}

func (p Piece) Empty() bool {
	return p.Type == None
}

func (p Piece) String() string {
	if p.Empty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Type.String()
}
