package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPawnMovesFromStart(t *testing.T) {
	b := NewBoard()

	moves := PseudoMoves(b, sq(4, 6)) // e2
	assert.ElementsMatch(t, []Square{sq(4, 5), sq(4, 4)}, moves)

	moves = PseudoMoves(b, sq(4, 1)) // e7, black mirror
	assert.ElementsMatch(t, []Square{sq(4, 2), sq(4, 3)}, moves)
}

func TestPawnDoubleStepOnlyWhenUnmoved(t *testing.T) {
	b := kingsOnly()
	b = place(b, sq(4, 5), Pawn, White, true)

	moves := PseudoMoves(b, sq(4, 5))
	assert.ElementsMatch(t, []Square{sq(4, 4)}, moves)
}

func TestPawnBlocked(t *testing.T) {
	b := NewBoard()
	b = place(b, sq(4, 5), Knight, Black, true) // blocker directly ahead of e2

	assert.Empty(t, PseudoMoves(b, sq(4, 6)))

	// blocker two ahead only kills the double step
	b = NewBoard()
	b = place(b, sq(4, 4), Knight, Black, true)
	assert.ElementsMatch(t, []Square{sq(4, 5)}, PseudoMoves(b, sq(4, 6)))
}

func TestPawnCapturesDiagonalOnly(t *testing.T) {
	b := kingsOnly()
	b = place(b, sq(4, 4), Pawn, White, true)
	b = place(b, sq(3, 3), Pawn, Black, true)   // capturable
	b = place(b, sq(5, 3), Pawn, White, true)   // friendly, not capturable
	b = place(b, sq(4, 3), Knight, Black, true) // dead ahead, blocks but is not a capture

	moves := PseudoMoves(b, sq(4, 4))
	assert.ElementsMatch(t, []Square{sq(3, 3)}, moves)
}

func TestSlidingStopsAtBlockers(t *testing.T) {
	b := kingsOnly()
	b = place(b, sq(0, 4), Rook, White, true)
	b = place(b, sq(3, 4), Pawn, White, true) // friendly blocker east
	b = place(b, sq(0, 2), Pawn, Black, true) // enemy blocker north

	moves := PseudoMoves(b, sq(0, 4))
	assert.Contains(t, moves, sq(1, 4))
	assert.Contains(t, moves, sq(2, 4))
	assert.NotContains(t, moves, sq(3, 4), "friendly blocker excluded")
	assert.NotContains(t, moves, sq(4, 4), "no jumping blockers")
	assert.Contains(t, moves, sq(0, 3))
	assert.Contains(t, moves, sq(0, 2), "enemy blocker is a capture")
	assert.NotContains(t, moves, sq(0, 1), "ray stops at the capture")
}

func TestKnightMovesClipAtEdge(t *testing.T) {
	b := kingsOnly()
	b = place(b, sq(0, 0), Knight, White, true)

	moves := PseudoMoves(b, sq(0, 0))
	assert.ElementsMatch(t, []Square{sq(2, 1), sq(1, 2)}, moves)
}

func TestQueenCombinesRookAndBishop(t *testing.T) {
	b := kingsOnly()
	b = place(b, sq(3, 3), Queen, White, true)

	moves := PseudoMoves(b, sq(3, 3))
	assert.Contains(t, moves, sq(3, 1))
	assert.Contains(t, moves, sq(1, 3))
	assert.Contains(t, moves, sq(1, 1))
	assert.Contains(t, moves, sq(5, 5))
}

// castleBase is a white back rank ready to castle both ways.
func castleBase() Board {
	b := Board{}
	b = place(b, sq(4, 7), King, White, false)
	b = place(b, sq(0, 7), Rook, White, false)
	b = place(b, sq(7, 7), Rook, White, false)
	b = place(b, sq(4, 0), King, Black, true)
	return b
}

func TestCastlingBothSidesAvailable(t *testing.T) {
	moves := PseudoMoves(castleBase(), sq(4, 7))
	assert.Contains(t, moves, sq(6, 7), "kingside castle")
	assert.Contains(t, moves, sq(2, 7), "queenside castle")
}

func TestCastlingPreconditions(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(Board) Board
		kingside  bool
		queenside bool
	}{
		{
			name:   "king has moved",
			mutate: func(b Board) Board { return place(b, sq(4, 7), King, White, true) },
		},
		{
			name:      "kingside rook has moved",
			mutate:    func(b Board) Board { return place(b, sq(7, 7), Rook, White, true) },
			queenside: true,
		},
		{
			name:      "kingside rook missing",
			mutate:    func(b Board) Board { return b.WithPiece(sq(7, 7), nil) },
			queenside: true,
		},
		{
			name: "kingside rook is the wrong color",
			mutate: func(b Board) Board {
				// the knight shields e1 so the enemy rook on h1 tests only
				// the rook-color condition, not the check condition
				b = place(b, sq(7, 7), Rook, Black, false)
				return place(b, sq(6, 7), Knight, White, false)
			},
			queenside: true,
		},
		{
			name:      "piece between king and kingside rook",
			mutate:    func(b Board) Board { return place(b, sq(5, 7), Bishop, White, false) },
			queenside: true,
		},
		{
			name:     "piece between king and queenside rook",
			mutate:   func(b Board) Board { return place(b, sq(1, 7), Knight, White, false) },
			kingside: true,
		},
		{
			name:   "king in check",
			mutate: func(b Board) Board { return place(b, sq(4, 3), Rook, Black, true) },
		},
		{
			name:      "kingside crossing square attacked",
			mutate:    func(b Board) Board { return place(b, sq(5, 3), Rook, Black, true) },
			queenside: true,
		},
		{
			name:      "kingside destination attacked",
			mutate:    func(b Board) Board { return place(b, sq(6, 3), Rook, Black, true) },
			queenside: true,
		},
		{
			name:     "queenside crossing square attacked",
			mutate:   func(b Board) Board { return place(b, sq(3, 3), Rook, Black, true) },
			kingside: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			moves := PseudoMoves(tt.mutate(castleBase()), sq(4, 7))
			if tt.kingside {
				assert.Contains(t, moves, sq(6, 7))
			} else {
				assert.NotContains(t, moves, sq(6, 7))
			}
			if tt.queenside {
				assert.Contains(t, moves, sq(2, 7))
			} else {
				assert.NotContains(t, moves, sq(2, 7))
			}
		})
	}
}

func TestCastlingRestoredWhenPreconditionsRestored(t *testing.T) {
	b := place(castleBase(), sq(5, 7), Bishop, White, false)
	assert.NotContains(t, PseudoMoves(b, sq(4, 7)), sq(6, 7))

	b = b.WithPiece(sq(5, 7), nil)
	assert.Contains(t, PseudoMoves(b, sq(4, 7)), sq(6, 7))
}

func TestDestinationsAreASet(t *testing.T) {
	b := kingsOnly()
	b = place(b, sq(3, 3), Queen, White, true)

	seen := map[Square]bool{}
	for _, m := range PseudoMoves(b, sq(3, 3)) {
		assert.False(t, seen[m], "duplicate destination %v", m)
		seen[m] = true
	}
}
