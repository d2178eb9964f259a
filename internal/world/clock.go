package world

import "time"

// Clock tracks wall time deltas and accumulated game time. Game time
// only advances while the simulation is not paused.
type Clock struct {
	start    time.Time
	last     time.Time
	delta    float64
	gameTime float64
}

// NewClock starts a clock at now.
func NewClock() *Clock {
	now := time.Now()
	return &Clock{start: now, last: now}
}

// Tick measures the wall delta since the previous Tick and, unless
// paused, advances game time. It returns the delta in seconds.
func (c *Clock) Tick(paused bool) float64 {
	now := time.Now()
	c.delta = now.Sub(c.last).Seconds()
	c.last = now
	if !paused {
		c.gameTime += c.delta
	}
	return c.delta
}

// Delta returns the last tick delta in seconds.
func (c *Clock) Delta() float64 {
	return c.delta
}

// GameTime returns accumulated unpaused seconds.
func (c *Clock) GameTime() float64 {
	return c.gameTime
}

// Uptime returns wall seconds since the clock started.
func (c *Clock) Uptime() float64 {
	return time.Since(c.start).Seconds()
}
