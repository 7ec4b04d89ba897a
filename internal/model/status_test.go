package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFoolsMate(t *testing.T) {
	b := NewBoard()
	// 1. f3 e5 2. g4 Qh4#
	b = b.WithMove(sq(5, 6), sq(5, 5))
	b = b.WithMove(sq(4, 1), sq(4, 3))
	b = b.WithMove(sq(6, 6), sq(6, 4))
	b = b.WithMove(sq(3, 0), sq(7, 4))

	assert.True(t, IsKingInCheck(b, White))
	assert.False(t, hasLegalMove(b, White))
	assert.Equal(t, StatusCheckmate, ComputeStatus(b, White))
}

func TestStalemate(t *testing.T) {
	// black king cornered on a8 by queen b6 and king c6: no moves, no check
	b := Board{}
	b = place(b, sq(0, 0), King, Black, true)
	b = place(b, sq(1, 2), Queen, White, true)
	b = place(b, sq(2, 2), King, White, true)

	assert.False(t, IsKingInCheck(b, Black))
	assert.Equal(t, StatusStalemate, ComputeStatus(b, Black))
}

func TestCheckWithEscape(t *testing.T) {
	b := kingsOnly()
	b = place(b, sq(4, 2), Rook, Black, true)

	assert.Equal(t, StatusCheck, ComputeStatus(b, White))
}

func TestOngoing(t *testing.T) {
	assert.Equal(t, StatusOngoing, ComputeStatus(NewBoard(), White))
	assert.Equal(t, StatusOngoing, ComputeStatus(NewBoard(), Black))
}

func TestMissingKingSkipsStatus(t *testing.T) {
	b := Board{}
	b = place(b, sq(4, 7), King, White, true)
	b = place(b, sq(4, 5), Queen, Black, true) // would be mate-ish, but black has no king

	assert.Equal(t, StatusOngoing, ComputeStatus(b, White))
}

func TestPawnDeliversCheck(t *testing.T) {
	// pawn checks depend on the attacker's own forward direction: a black
	// pawn one diagonal step above the white king gives check, one below
	// does not
	b := kingsOnly()
	b = place(b, sq(3, 6), Pawn, Black, true) // d2, attacks e1 going down

	assert.True(t, IsKingInCheck(b, White))
	assert.Equal(t, StatusCheck, ComputeStatus(b, White))

	b = kingsOnly()
	b = place(b, sq(5, 1), Pawn, White, true) // f7, attacks e8 going up
	assert.True(t, IsKingInCheck(b, Black))
}

func TestConcluded(t *testing.T) {
	assert.True(t, StatusCheckmate.Concluded())
	assert.True(t, StatusStalemate.Concluded())
	assert.False(t, StatusCheck.Concluded())
	assert.False(t, StatusOngoing.Concluded())
}
