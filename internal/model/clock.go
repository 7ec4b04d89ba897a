package model

import (
	"sync"
	"time"
)

// Clock is a per-side countdown. Elapsed time is accounted with start/stop
// deltas; a background ticker watches for the zero crossing and fires the
// expiry callback exactly once. The callback runs without the clock lock
// held.
type Clock struct {
	mu          sync.Mutex
	timeLeft    time.Duration
	lastStarted time.Time
	isRunning   bool
	expired     bool
	onExpire    func()
	done        chan struct{}
	haltOnce    sync.Once
}

func NewClock(initial time.Duration, onExpire func()) *Clock {
	c := &Clock{
		timeLeft: initial,
		onExpire: onExpire,
		done:     make(chan struct{}),
	}
	go c.run()
	return c
}

func (c *Clock) run() {
	tick := time.NewTicker(100 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case <-c.done:
			return
		case <-tick.C:
			c.mu.Lock()
			if !c.isRunning || c.expired || c.remainingLocked() > 0 {
				c.mu.Unlock()
				continue
			}
			c.expired = true
			c.isRunning = false
			c.timeLeft = 0
			cb := c.onExpire
			c.mu.Unlock()
			if cb != nil {
				cb()
			}
		}
	}
}

func (c *Clock) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.isRunning && !c.expired {
		c.lastStarted = time.Now()
		c.isRunning = true
	}
}

func (c *Clock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.isRunning {
		c.timeLeft -= time.Since(c.lastStarted)
		if c.timeLeft < 0 {
			c.timeLeft = 0
		}
		c.isRunning = false
	}
}

// TimeLeft returns the remaining time, accounting for a running period.
func (c *Clock) TimeLeft() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	d := c.remainingLocked()
	if d < 0 {
		return 0
	}
	return d
}

func (c *Clock) remainingLocked() time.Duration {
	if c.isRunning {
		return c.timeLeft - time.Since(c.lastStarted)
	}
	return c.timeLeft
}

// Halt stops the watcher goroutine. The clock is unusable afterwards; the
// session calls this on conclusion and reset.
func (c *Clock) Halt() {
	c.Stop()
	c.haltOnce.Do(func() { close(c.done) })
}
