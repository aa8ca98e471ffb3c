package sim

import (
	"time"

	cfg "github.com/automoto/swoopers/config"
)

// TickClock reads simulated time: one tick is 1/TPS seconds. Runs driven by
// a TickClock are reproducible from their seed.
type TickClock struct {
	ticks int64
}

func (c *TickClock) Now() time.Duration {
	return time.Duration(c.ticks) * time.Second / time.Duration(cfg.C.TPS)
}

// Advance moves the clock forward by one tick.
func (c *TickClock) Advance() {
	c.ticks++
}

// WallClock reads real elapsed time from a monotonic source.
type WallClock struct {
	start time.Time
}

func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

func (c *WallClock) Now() time.Duration {
	return time.Since(c.start)
}
