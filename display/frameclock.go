package display

import "time"

// FrameClock yields the monotonic time between consecutive frames. The zero
// value is ready to use; measuring starts at the first Tick, so setup done
// before the first frame is never stepped.
type FrameClock struct {
	last time.Time
	now  func() time.Time
}

// Tick returns seconds since the previous Tick, or 0 on the first call.
func (c *FrameClock) Tick() float64 {
	now := time.Now()
	if c.now != nil {
		now = c.now()
	}
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	return max(0, dt)
}
