package utils

import (
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/require"
)

const testDuration = 10 * time.Millisecond

func TestTimerCreateAndReset(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		timer := NewTimer()
		select {
		case <-timer.Chan():
			t.Fatal("timer should not have fired")
		default:
		}

		deadline := time.Now().Add(testDuration)
		timer.Reset(deadline)
		require.Equal(t, deadline, timer.Deadline())

		select {
		case <-timer.Chan():
			require.Equal(t, deadline, time.Now())
		case <-time.After(2 * testDuration):
			t.Fatal("timer should have fired")
		}

		timer.SetRead()
		timer.Reset(time.Now().Add(testDuration))

		select {
		case <-timer.Chan():
		case <-time.After(2 * testDuration):
			t.Fatal("timer should have fired")
		}
	})
}

func TestTimerUnsetNeverFires(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		timer := NewTimer()
		select {
		case <-timer.Chan():
			t.Fatal("timer should not have fired")
		case <-time.After(time.Hour):
		}
	})
}

func TestTimerResetWithoutExpiration(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		timer := NewTimer()
		for range 10 {
			timer.Reset(time.Now().Add(time.Hour))
		}
		start := time.Now()
		timer.Reset(time.Now().Add(testDuration))

		select {
		case <-timer.Chan():
			require.Equal(t, testDuration, time.Since(start))
		case <-time.After(2 * testDuration):
			t.Fatal("timer should have fired")
		}
	})
}

func TestTimerSameDeadline(t *testing.T) {
	t.Run("timer read in between", func(t *testing.T) {
		synctest.Test(t, func(t *testing.T) {
			deadline := time.Now().Add(testDuration)
			timer := NewTimer()
			timer.Reset(deadline)
			<-timer.Chan()
			timer.SetRead()

			// the deadline is in the past now, the timer fires immediately
			timer.Reset(deadline)
			select {
			case <-timer.Chan():
			case <-time.After(testDuration):
				t.Fatal("timer should have fired")
			}
		})
	})

	t.Run("resetting to the same deadline doesn't restart the timer", func(t *testing.T) {
		synctest.Test(t, func(t *testing.T) {
			start := time.Now()
			deadline := start.Add(testDuration)
			timer := NewTimer()
			timer.Reset(deadline)
			time.Sleep(testDuration / 2)
			timer.Reset(deadline)
			<-timer.Chan()
			require.Equal(t, testDuration, time.Since(start))
		})
	})
}

func TestTimerZeroDeadline(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		timer := NewTimer()
		timer.Reset(time.Now().Add(testDuration))
		timer.Reset(time.Time{})

		select {
		case <-timer.Chan():
			t.Fatal("timer should not have fired")
		case <-time.After(2 * testDuration):
		}
	})
}

func TestTimerStopping(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		timer := NewTimer()
		timer.Reset(time.Now().Add(testDuration))
		timer.Stop()
		require.True(t, timer.Deadline().IsZero())

		select {
		case <-timer.Chan():
			t.Fatal("timer should not have fired")
		case <-time.After(2 * testDuration):
		}
	})
}
