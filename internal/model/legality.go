package model

// LegalMoves returns the pseudo-legal destinations from sq that do not leave
// the mover's own king attacked. Each candidate is tried on a derived board
// that is discarded after the check, so the caller's board is never touched.
func LegalMoves(b Board, from Square) []Square {
	piece := b.PieceAt(from)
	if piece == nil {
		return nil
	}
	var legal []Square
	for _, to := range PseudoMoves(b, from) {
		simulated := b.WithMove(from, to)
		if !IsKingInCheck(simulated, piece.Color) {
			legal = append(legal, to)
		}
	}
	return legal
}

// LegalMovesForColor collects every legal move available to color. It feeds
// both the stalemate/checkmate test and the opponent policy.
func LegalMovesForColor(b Board, color Color) []Move {
	var moves []Move
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			from := Square{X: x, Y: y}
			piece := b.PieceAt(from)
			if piece == nil || piece.Color != color {
				continue
			}
			for _, to := range LegalMoves(b, from) {
				moves = append(moves, Move{From: from, To: to})
			}
		}
	}
	return moves
}

// IsKingInCheck reports whether color's king is attacked. A board with no
// king of that color counts as not in check so the engine degrades instead
// of crashing on a broken position.
func IsKingInCheck(b Board, color Color) bool {
	kingSq, ok := b.findKing(color)
	if !ok {
		return false
	}
	return IsSquareAttacked(b, kingSq, color.Opposite())
}
