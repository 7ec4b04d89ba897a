package model

func sq(x, y int) Square {
	return Square{X: x, Y: y}
}

func place(b Board, s Square, kind PieceKind, color Color, moved bool) Board {
	return b.WithPiece(s, &Piece{Kind: kind, Color: color, HasMoved: moved})
}

// kingsOnly is a minimal valid position: both kings far apart.
func kingsOnly() Board {
	b := Board{}
	b = place(b, sq(4, 7), King, White, true)
	b = place(b, sq(4, 0), King, Black, true)
	return b
}
