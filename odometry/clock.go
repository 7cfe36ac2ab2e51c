package odometry

import (
	"time"

	k "odo/kinematics"
)

// Clock measures the real period between integration steps, since ticks of
// a time.Ticker drift under load.
type Clock struct {
	now       func() time.Time
	startTime time.Time
	lastLap   time.Time
}

func NewClock() *Clock {
	return &Clock{now: time.Now}
}

func (c *Clock) Start() {
	c.startTime = c.now()
	c.lastLap = c.startTime
}

// Now is the time since Start.
func (c *Clock) Now() time.Duration {
	return c.now().Sub(c.startTime)
}

// Lap returns the seconds since the previous lap (or Start) and begins a new one.
func (c *Clock) Lap() k.Seconds {
	now := c.now()
	period := now.Sub(c.lastLap).Seconds()
	c.lastLap = now
	return period
}
