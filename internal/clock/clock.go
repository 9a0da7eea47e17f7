package clock

import (
	"sync/atomic"
	"time"

	"github.com/studyring/reputation-backend/internal/ledger"
)

// LogicalClock supplies the monotonic tick the ledger commands run at.
// The engine itself never reads wall time; the server advances the clock
// on a fixed real-time interval, and tests drive it directly.
type LogicalClock struct {
	tick uint64
	stop chan struct{}
}

// New creates a clock starting at the given tick.
func New(start ledger.Tick) *LogicalClock {
	return &LogicalClock{tick: uint64(start)}
}

// Now returns the current tick.
func (c *LogicalClock) Now() ledger.Tick {
	return ledger.Tick(atomic.LoadUint64(&c.tick))
}

// Advance moves the clock forward by n ticks and returns the new value.
func (c *LogicalClock) Advance(n uint64) ledger.Tick {
	return ledger.Tick(atomic.AddUint64(&c.tick, n))
}

// Start advances the clock by one tick per interval until Stop is called.
func (c *LogicalClock) Start(interval time.Duration) {
	if c.stop != nil {
		return
	}
	c.stop = make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.Advance(1)
			case <-c.stop:
				return
			}
		}
	}()
}

// Stop halts the background advancement. The tick value is retained.
func (c *LogicalClock) Stop() {
	if c.stop != nil {
		close(c.stop)
		c.stop = nil
	}
}
