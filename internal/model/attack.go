package model

// IsSquareAttacked reports whether any piece of color by attacks target. It
// probes attack patterns outward from the target square and never consults
// the legality filter, so check detection cannot recurse.
func IsSquareAttacked(b Board, target Square, by Color) bool {
	if !target.Valid() {
		return false
	}
	for _, d := range rookDirs {
		if slidingAttacker(b, target, by, d, Rook) {
			return true
		}
	}
	for _, d := range bishopDirs {
		if slidingAttacker(b, target, by, d, Bishop) {
			return true
		}
	}
	for _, o := range knightOffsets {
		if pieceOn(b, target.offset(o.dx, o.dy), by, Knight) {
			return true
		}
	}
	for _, o := range kingOffsets {
		if pieceOn(b, target.offset(o.dx, o.dy), by, King) {
			return true
		}
	}
	// A pawn attacks the two diagonals one step in its own forward
	// direction, so the attacker sits one step behind the target along that
	// direction. The probe direction is the attacker's, not the defender's.
	behind := -by.forward()
	for _, dx := range []int{-1, 1} {
		if pieceOn(b, target.offset(dx, behind), by, Pawn) {
			return true
		}
	}
	return false
}

// slidingAttacker walks one ray from target and reports whether the first
// occupied square holds a piece of the given color that slides along that
// ray (the named kind or a queen).
func slidingAttacker(b Board, target Square, by Color, d delta, kind PieceKind) bool {
	for sq := target.offset(d.dx, d.dy); sq.Valid(); sq = sq.offset(d.dx, d.dy) {
		piece := b.PieceAt(sq)
		if piece == nil {
			continue
		}
		return piece.Color == by && (piece.Kind == kind || piece.Kind == Queen)
	}
	return false
}

func pieceOn(b Board, sq Square, color Color, kind PieceKind) bool {
	piece := b.PieceAt(sq)
	return piece != nil && piece.Color == color && piece.Kind == kind
}
