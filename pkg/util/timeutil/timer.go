// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package timeutil

import (
	"sync"
	"time"
)

var timerPool sync.Pool

// Timer is a single-shot deadline. When it expires the current time is sent
// on C.
//
// Unlike time.Timer there is no constructor: the zero value is ready to use
// and does not count down until Reset is called. C may be selected on before
// the first Reset, in which case it never fires. Stopped timers are returned
// to a pool, so a Timer must not be used after Stop until it is Reset again.
type Timer struct {
	timer *time.Timer
	C     <-chan time.Time
	// Read must be set by the caller after receiving from C, so that a
	// subsequent Reset knows the channel is already drained.
	Read bool
}

// Reset arms the timer to fire after d.
func (t *Timer) Reset(d time.Duration) {
	if t.timer == nil {
		if pooled, ok := timerPool.Get().(*time.Timer); ok {
			t.timer = pooled
			t.timer.Reset(d)
		} else {
			t.timer = time.NewTimer(d)
		}
		t.C = t.timer.C
		t.Read = false
		return
	}
	if !t.timer.Stop() && !t.Read {
		select {
		case <-t.timer.C:
		default:
		}
	}
	t.timer.Reset(d)
	t.Read = false
}

// Stop disarms the timer and releases it. It returns true if the call
// stopped the timer before it fired.
func (t *Timer) Stop() bool {
	var stopped bool
	if t.timer != nil {
		stopped = t.timer.Stop()
		if !stopped && !t.Read {
			select {
			case <-t.timer.C:
			default:
			}
		}
		timerPool.Put(t.timer)
	}
	*t = Timer{}
	return stopped
}
