// Package clock provides the wall-clock source that time-dependent queries
// consult. Callers re-read the clock on every query rather than caching it.
package clock

import (
	"sync/atomic"
	"time"
)

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// Ticker is a Clock backed by a periodic timer. The held value advances on
// a fixed cadence independent of callers; reads never block.
type Ticker struct {
	now  atomic.Pointer[time.Time]
	done chan struct{}
}

// NewTicker starts a clock advancing every interval, seeded with the
// current time.
func NewTicker(interval time.Duration) *Ticker {
	t := &Ticker{done: make(chan struct{})}
	start := time.Now()
	t.now.Store(&start)

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case tick := <-ticker.C:
				t.now.Store(&tick)
			case <-t.done:
				return
			}
		}
	}()
	return t
}

// Now returns the most recent tick.
func (t *Ticker) Now() time.Time {
	return *t.now.Load()
}

// Stop halts the ticker goroutine. The last value remains readable.
func (t *Ticker) Stop() {
	close(t.done)
}

// Fixed is a Clock pinned to a single instant, for tests.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time { return f.T }
