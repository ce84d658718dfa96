package clock

import (
	"sync/atomic"
	"time"
)

// Clock supplies the "now" reference used for bucket derivation.
type Clock interface {
	Now() time.Time
}

// Ticking caches the current instant and refreshes it on a fixed interval,
// so bucket membership (starting-soon, overdue) advances without explicit
// refresh calls from clients. A 60-second period matches the minute
// granularity of the classification windows.
type Ticking struct {
	now  atomic.Pointer[time.Time]
	stop chan struct{}
}

// NewTicking starts a clock refreshing every interval.
func NewTicking(interval time.Duration) *Ticking {
	c := &Ticking{stop: make(chan struct{})}
	start := time.Now()
	c.now.Store(&start)

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case t := <-ticker.C:
				c.now.Store(&t)
			case <-c.stop:
				return
			}
		}
	}()

	return c
}

// Now returns the instant of the most recent tick.
func (c *Ticking) Now() time.Time {
	return *c.now.Load()
}

// Stop halts the refresh goroutine. Now keeps returning the last tick.
func (c *Ticking) Stop() {
	close(c.stop)
}

// Fixed is a Clock pinned to a single instant, for tests.
type Fixed time.Time

func (f Fixed) Now() time.Time { return time.Time(f) }
