package challenge

import (
	"sync"
	"time"
)

// DefaultAnswerTimeout is how long a player has to answer before the
// pending move is denied.
const DefaultAnswerTimeout = 15 * time.Second

// Gate holds at most one open challenge at a time and guarantees exactly one
// decision per pending move: a matching answer resolves it, anything else is
// ignored, and silence past the deadline resolves it as Denied. The resolve
// callback runs without the gate lock held.
type Gate struct {
	timeout time.Duration
	resolve func(id int, decision Decision)

	mu        sync.Mutex
	active    bool
	pendingID int
	question  Question
	timer     *time.Timer
}

func NewGate(timeout time.Duration, resolve func(id int, decision Decision)) *Gate {
	if timeout <= 0 {
		timeout = DefaultAnswerTimeout
	}
	return &Gate{timeout: timeout, resolve: resolve}
}

// Open arms the gate for pending move id with the given question. The
// session allows one pending move at a time, so an open challenge with a
// different id is stale (its move was discarded by a reset) and is replaced;
// reopening the same id is a no-op.
func (g *Gate) Open(id int, q Question) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.active && g.pendingID == id {
		return
	}
	if g.timer != nil {
		g.timer.Stop()
	}
	g.active = true
	g.pendingID = id
	g.question = q
	g.timer = time.AfterFunc(g.timeout, func() { g.conclude(id, Denied) })
}

// Cancel closes an open challenge without resolving it. Used when the
// pending move it was raised for no longer exists, e.g. on game reset.
func (g *Gate) Cancel() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.active = false
	if g.timer != nil {
		g.timer.Stop()
		g.timer = nil
	}
}

// Answer judges the submitted answer for pending move id. Answers for a
// stale or absent challenge are dropped.
func (g *Gate) Answer(id int, answer string) {
	g.mu.Lock()
	if !g.active || g.pendingID != id {
		g.mu.Unlock()
		return
	}
	question := g.question
	g.mu.Unlock()

	decision := Denied
	if question.Check(answer) {
		decision = Authorized
	}
	g.conclude(id, decision)
}

// Question returns the open challenge, if any, so late-joining clients can
// be shown the prompt.
func (g *Gate) Question() (int, Question, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pendingID, g.question, g.active
}

func (g *Gate) conclude(id int, decision Decision) {
	g.mu.Lock()
	if !g.active || g.pendingID != id {
		g.mu.Unlock()
		return
	}
	g.active = false
	if g.timer != nil {
		g.timer.Stop()
		g.timer = nil
	}
	resolve := g.resolve
	g.mu.Unlock()
	if resolve != nil {
		resolve(id, decision)
	}
}
