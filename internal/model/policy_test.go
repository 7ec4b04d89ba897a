package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomPolicyEmptySet(t *testing.T) {
	p := NewRandomPolicy()
	_, ok := p.ChooseMove(nil)
	assert.False(t, ok)
}

func TestRandomPolicySingleMove(t *testing.T) {
	p := NewRandomPolicy()
	only := Move{From: sq(0, 0), To: sq(0, 1)}
	m, ok := p.ChooseMove([]Move{only})
	require.True(t, ok)
	assert.Equal(t, only, m)
}

func TestRandomPolicyChoosesFromSet(t *testing.T) {
	p := NewRandomPolicy()
	moves := LegalMovesForColor(NewBoard(), White)
	for i := 0; i < 50; i++ {
		m, ok := p.ChooseMove(moves)
		require.True(t, ok)
		assert.Contains(t, moves, m)
	}
}
