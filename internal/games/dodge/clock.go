package dodge

import "time"

// Clock reports elapsed game time. Spawn intervals, respawn delays and notice
// durations are all measured against it.
type Clock interface {
	Now() time.Duration
}

// advancer is implemented by clocks that move forward once per tick.
type advancer interface {
	Advance()
}

// resetter is implemented by clocks that restart with each episode.
type resetter interface {
	Reset()
}

// TickClock is a virtual clock that advances by a fixed step each tick.
// Two games with the same seed and inputs observe identical times.
type TickClock struct {
	step time.Duration
	now  time.Duration
}

// NewTickClock creates a tick clock for the given simulation rate.
func NewTickClock(tickRate int) *TickClock {
	if tickRate <= 0 {
		tickRate = 30
	}
	return &TickClock{step: time.Second / time.Duration(tickRate)}
}

// Now returns the virtual time elapsed since the clock was created.
func (c *TickClock) Now() time.Duration {
	return c.now
}

// Advance moves the clock forward by one tick.
func (c *TickClock) Advance() {
	c.now += c.step
}

// Reset rewinds the clock to zero.
func (c *TickClock) Reset() {
	c.now = 0
}

// Step returns the duration of a single tick.
func (c *TickClock) Step() time.Duration {
	return c.step
}

// WallClock measures real elapsed time using the monotonic clock.
type WallClock struct {
	start time.Time
}

// NewWallClock creates a wall clock starting now.
func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

// Now returns the real time elapsed since the clock was started.
func (c *WallClock) Now() time.Duration {
	return time.Since(c.start)
}

// Reset restarts the clock from now.
func (c *WallClock) Reset() {
	c.start = time.Now()
}
