package game

// Move is a start/end pair of positions.
type Move struct {
	Start Position
	End   Position
}

func (m Move) String() string {
	return m.Start.String() + "-" + m.End.String()
}

// LegalMoves enumerates the distinct legal moves of the colour on turn in s, piece by piece
// in Positions order.
func LegalMoves(s State) []Move {
	if s.GameOver() {
		return nil
	}
	seen := make(map[Move]bool)
	moves := []Move{}
	for _, start := range s.Positions(s.Turn()) {
		piece, ok := s.PieceAt(start)
		if !ok {
			continue
		}
		for _, step := range piece.Type.Steps() {
			end := start
			for i := 0; i < piece.Type.StepReps(); i++ {
				next, err := s.Step(piece, step, end, start.Colour != end.Colour)
				if err != nil {
					break
				}
				end = next
				move := Move{start, end}
				if !seen[move] && s.IsLegalMove(start, end) {
					seen[move] = true
					moves = append(moves, move)
				}
			}
		}
	}
	return moves
}
