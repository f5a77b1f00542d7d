package utils

import (
	"math"
	"time"
)

// A Timer wrapper that can be reset to a deadline over and over again.
// It relies on the timer semantics of Go 1.23: Stop and Reset never leave a stale value in the channel.
type Timer struct {
	t        *time.Timer
	read     bool
	deadline time.Time
}

// NewTimer creates a new timer that is not set
func NewTimer() *Timer {
	t := time.NewTimer(time.Duration(math.MaxInt64))
	t.Stop()
	return &Timer{t: t}
}

// Chan returns the channel of the wrapped timer
func (t *Timer) Chan() <-chan time.Time {
	return t.t.C
}

// Reset the timer, no matter whether the value was read or not.
// Resetting to the current deadline is a no-op, unless the timer already fired.
// A zero deadline stops the timer.
func (t *Timer) Reset(deadline time.Time) {
	if deadline.Equal(t.deadline) && !t.read {
		return
	}
	t.t.Stop()
	if !deadline.IsZero() {
		t.t.Reset(time.Until(deadline))
	}
	t.read = false
	t.deadline = deadline
}

// SetRead should be called after the value from the chan was read
func (t *Timer) SetRead() {
	t.read = true
}

// Deadline returns the deadline the timer was last reset to.
func (t *Timer) Deadline() time.Time {
	return t.deadline
}

// Stop stops the timer
func (t *Timer) Stop() {
	t.t.Stop()
	t.deadline = time.Time{}
}
