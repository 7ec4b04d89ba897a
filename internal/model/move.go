package model

// Move is just a source and destination. Capture, castling and promotion are
// derived at commit time by inspecting the board, never tagged on the move.
type Move struct {
	From Square `json:"from"`
	To   Square `json:"to"`
}

// Challenge describes a pending gated move awaiting an external
// authorization decision.
type Challenge struct {
	ID    int   `json:"moveId"`
	Move  Move  `json:"move"`
	Color Color `json:"color"`
}

// notation renders a short coordinate notation for the move history: piece
// letter, capture marker, destination, plus castling and promotion markers.
func notation(piece Piece, m Move, captured *Piece, promoted bool) string {
	if piece.Kind == King {
		switch m.To.X - m.From.X {
		case -2:
			return "O-O-O"
		case 2:
			return "O-O"
		}
	}
	s := piece.Kind.notation()
	if piece.Kind == Pawn && m.From.X != m.To.X {
		s = m.From.fileNotation()
	}
	if captured != nil {
		s += "x"
	}
	s += m.To.Notation()
	if promoted {
		s += "=Q"
	}
	return s
}
