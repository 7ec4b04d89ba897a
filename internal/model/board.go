package model

// Board is a value; copying one is cheap enough that the legality filter
// works on derived copies instead of mutating and reverting. The pieces
// behind the pointers are never written through, only replaced, so shared
// pointers between a board and its derivatives are safe.
type Board struct {
	squares [8][8]*Piece
}

// NewBoard returns the standard starting position: pawns on ranks 1 and 6,
// mirrored back ranks on 0 and 7, white at the bottom.
func NewBoard() Board {
	var b Board
	backRank := []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for x, kind := range backRank {
		b.squares[0][x] = &Piece{Kind: kind, Color: Black}
		b.squares[7][x] = &Piece{Kind: kind, Color: White}
	}
	for x := 0; x < 8; x++ {
		b.squares[1][x] = &Piece{Kind: Pawn, Color: Black}
		b.squares[6][x] = &Piece{Kind: Pawn, Color: White}
	}
	return b
}

// PieceAt returns the piece on sq, or nil for an empty or off-board square.
func (b Board) PieceAt(sq Square) *Piece {
	if !sq.Valid() {
		return nil
	}
	return b.squares[sq.Y][sq.X]
}

// WithMove returns a derived board with the piece on from relocated to to
// and flagged as moved. The source board is left untouched. Castling rook
// relocation and promotion are composed on top of this by the commit path.
func (b Board) WithMove(from, to Square) Board {
	piece := b.PieceAt(from)
	if piece == nil || !to.Valid() {
		return b
	}
	moved := piece.moved()
	b.squares[from.Y][from.X] = nil
	b.squares[to.Y][to.X] = &moved
	return b
}

// WithPiece returns a derived board with sq holding p (nil clears the square).
func (b Board) WithPiece(sq Square, p *Piece) Board {
	if !sq.Valid() {
		return b
	}
	b.squares[sq.Y][sq.X] = p
	return b
}

// Grid exposes the raw 8x8 layout for serialization.
func (b Board) Grid() [8][8]*Piece {
	return b.squares
}

// findKing locates the king of the given color, if one is on the board.
func (b Board) findKing(color Color) (Square, bool) {
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			p := b.squares[y][x]
			if p != nil && p.Kind == King && p.Color == color {
				return Square{X: x, Y: y}, true
			}
		}
	}
	return Square{}, false
}
