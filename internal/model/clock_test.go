package model

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClockCountsDownOnlyWhileRunning(t *testing.T) {
	c := NewClock(time.Minute, nil)
	defer c.Halt()

	initial := c.TimeLeft()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, initial, c.TimeLeft(), "stopped clock does not tick")

	c.Start()
	time.Sleep(50 * time.Millisecond)
	c.Stop()
	assert.Less(t, c.TimeLeft(), initial)

	after := c.TimeLeft()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, c.TimeLeft())
}

func TestClockExpiresExactlyOnce(t *testing.T) {
	var fired atomic.Int32
	c := NewClock(50*time.Millisecond, func() { fired.Add(1) })
	defer c.Halt()

	c.Start()
	assert.Eventually(t, func() bool { return fired.Load() == 1 },
		2*time.Second, 20*time.Millisecond)

	// stays fired exactly once
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, int32(1), fired.Load())
	assert.Equal(t, time.Duration(0), c.TimeLeft())

	// an expired clock cannot be restarted
	c.Start()
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(1), fired.Load())
}

func TestHaltedClockNeverFires(t *testing.T) {
	var fired atomic.Int32
	c := NewClock(50*time.Millisecond, func() { fired.Add(1) })
	c.Start()
	c.Halt()

	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())
}
