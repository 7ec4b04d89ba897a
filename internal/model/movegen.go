package model

type delta struct {
	dx, dy int
}

var (
	rookDirs   = []delta{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirs = []delta{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	queenDirs  = append(append([]delta{}, rookDirs...), bishopDirs...)

	knightOffsets = []delta{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
	kingOffsets   = []delta{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

// PseudoMoves returns the destinations reachable from sq under piece
// movement rules alone, ignoring whether the mover's own king ends up
// attacked. An empty or off-board source yields nil.
func PseudoMoves(b Board, from Square) []Square {
	piece := b.PieceAt(from)
	if piece == nil {
		return nil
	}
	switch piece.Kind {
	case Pawn:
		return pawnMoves(b, from, *piece)
	case Knight:
		return stepMoves(b, from, *piece, knightOffsets)
	case Bishop:
		return slidingMoves(b, from, *piece, bishopDirs)
	case Rook:
		return slidingMoves(b, from, *piece, rookDirs)
	case Queen:
		return slidingMoves(b, from, *piece, queenDirs)
	case King:
		return append(stepMoves(b, from, *piece, kingOffsets), castlingMoves(b, from, *piece)...)
	}
	return nil
}

func pawnMoves(b Board, from Square, piece Piece) []Square {
	var moves []Square
	dir := piece.Color.forward()

	one := from.offset(0, dir)
	if one.Valid() && b.PieceAt(one) == nil {
		moves = append(moves, one)
		two := from.offset(0, 2*dir)
		if !piece.HasMoved && two.Valid() && b.PieceAt(two) == nil {
			moves = append(moves, two)
		}
	}
	for _, dx := range []int{-1, 1} {
		diag := from.offset(dx, dir)
		if target := b.PieceAt(diag); target != nil && target.Color != piece.Color {
			moves = append(moves, diag)
		}
	}
	return moves
}

func stepMoves(b Board, from Square, piece Piece, offsets []delta) []Square {
	var moves []Square
	for _, o := range offsets {
		to := from.offset(o.dx, o.dy)
		if !to.Valid() {
			continue
		}
		if target := b.PieceAt(to); target == nil || target.Color != piece.Color {
			moves = append(moves, to)
		}
	}
	return moves
}

func slidingMoves(b Board, from Square, piece Piece, dirs []delta) []Square {
	var moves []Square
	for _, d := range dirs {
		for to := from.offset(d.dx, d.dy); to.Valid(); to = to.offset(d.dx, d.dy) {
			target := b.PieceAt(to)
			if target == nil {
				moves = append(moves, to)
				continue
			}
			if target.Color != piece.Color {
				moves = append(moves, to)
			}
			break
		}
	}
	return moves
}

// castlingMoves appends the kingside and queenside castles when every
// precondition holds: unmoved king, matching unmoved rook, empty squares
// between them, and no opponent attack on the king's square, its crossing
// square, or its destination. The conditions are conjunctive; failing any
// one drops the castle entirely.
func castlingMoves(b Board, from Square, king Piece) []Square {
	if king.HasMoved {
		return nil
	}
	var moves []Square
	opponent := king.Color.Opposite()
	if IsSquareAttacked(b, from, opponent) {
		return nil
	}
	type side struct {
		rookFile int
		between  []int
		path     []int // squares the king crosses, destination last
	}
	for _, s := range []side{
		{rookFile: 7, between: []int{5, 6}, path: []int{5, 6}},
		{rookFile: 0, between: []int{1, 2, 3}, path: []int{3, 2}},
	} {
		rook := b.PieceAt(Square{X: s.rookFile, Y: from.Y})
		if rook == nil || rook.Kind != Rook || rook.Color != king.Color || rook.HasMoved {
			continue
		}
		clear := true
		for _, x := range s.between {
			if b.PieceAt(Square{X: x, Y: from.Y}) != nil {
				clear = false
				break
			}
		}
		if !clear {
			continue
		}
		safe := true
		for _, x := range s.path {
			if IsSquareAttacked(b, Square{X: x, Y: from.Y}, opponent) {
				safe = false
				break
			}
		}
		if !safe {
			continue
		}
		moves = append(moves, Square{X: s.path[len(s.path)-1], Y: from.Y})
	}
	return moves
}
