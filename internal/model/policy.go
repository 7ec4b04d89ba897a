package model

import (
	"math/rand"
	"time"
)

// MovePolicy picks one move from a color's legal set. Implementations are
// pluggable; the engine never looks past this interface.
type MovePolicy interface {
	ChooseMove(moves []Move) (Move, bool)
}

// RandomPolicy is the reference policy: uniform selection over the legal
// set.
type RandomPolicy struct {
	rng *rand.Rand
}

func NewRandomPolicy() *RandomPolicy {
	return &RandomPolicy{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (p *RandomPolicy) ChooseMove(moves []Move) (Move, bool) {
	if len(moves) == 0 {
		return Move{}, false
	}
	return moves[p.rng.Intn(len(moves))], true
}
