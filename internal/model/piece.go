package model

type PieceKind string

const (
	King   PieceKind = "king"
	Queen  PieceKind = "queen"
	Rook   PieceKind = "rook"
	Bishop PieceKind = "bishop"
	Knight PieceKind = "knight"
	Pawn   PieceKind = "pawn"
)

func (p PieceKind) notation() string {
	switch p {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	}
	return ""
}

type Color string

const (
	White Color = "white"
	Black Color = "black"
)

// Opposite returns the other color.
func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

// forward is the rank delta a pawn of this color advances by. White pawns
// move toward rank index 0, black pawns toward 7.
func (c Color) forward() int {
	if c == White {
		return -1
	}
	return 1
}

// promotionRank is the far rank for pawns of this color.
func (c Color) promotionRank() int {
	if c == White {
		return 0
	}
	return 7
}

// Piece is a value type. Boards never mutate a placed piece in place; moving
// one produces a fresh value with HasMoved set.
type Piece struct {
	Kind     PieceKind `json:"type"`
	Color    Color     `json:"color"`
	HasMoved bool      `json:"hasMoved"`
}

// moved returns a copy of the piece flagged as having moved.
func (p Piece) moved() Piece {
	p.HasMoved = true
	return p
}
