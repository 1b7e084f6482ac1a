package service

import "time"

// FrameClock turns successive frame timestamps into elapsed seconds.
// Timestamps must come from time.Now or a time.Ticker so Sub uses the
// monotonic reading and is immune to wall-clock adjustments.
type FrameClock struct {
	last   time.Time
	primed bool
}

// Delta returns the seconds since the previous call. The first call after
// construction or Clear returns 0 and only records now.
func (c *FrameClock) Delta(now time.Time) float64 {
	if !c.primed {
		c.last = now
		c.primed = true
		return 0
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	return dt
}

// Clear forgets the last timestamp.
func (c *FrameClock) Clear() {
	c.last = time.Time{}
	c.primed = false
}
