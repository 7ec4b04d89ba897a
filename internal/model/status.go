package model

type GameStatus string

const (
	StatusOngoing   GameStatus = "ongoing"
	StatusCheck     GameStatus = "check"
	StatusCheckmate GameStatus = "checkmate"
	StatusStalemate GameStatus = "stalemate"
)

// Concluded reports whether the status is terminal.
func (s GameStatus) Concluded() bool {
	return s == StatusCheckmate || s == StatusStalemate
}

// ComputeStatus derives the status for the side now to move. It is a pure
// function of the position, recomputed in full after every commit. If either
// king is missing the computation is skipped and the game stays ongoing.
func ComputeStatus(b Board, toMove Color) GameStatus {
	if _, ok := b.findKing(White); !ok {
		return StatusOngoing
	}
	if _, ok := b.findKing(Black); !ok {
		return StatusOngoing
	}
	inCheck := IsKingInCheck(b, toMove)
	hasMove := hasLegalMove(b, toMove)
	switch {
	case inCheck && !hasMove:
		return StatusCheckmate
	case inCheck:
		return StatusCheck
	case !hasMove:
		return StatusStalemate
	}
	return StatusOngoing
}

func hasLegalMove(b Board, color Color) bool {
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			from := Square{X: x, Y: y}
			piece := b.PieceAt(from)
			if piece == nil || piece.Color != color {
				continue
			}
			if len(LegalMoves(b, from)) > 0 {
				return true
			}
		}
	}
	return false
}
