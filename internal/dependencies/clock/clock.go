package clock

import "time"

// Clock provides the current time so callers can be tested against a fixed instant
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system clock
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current system time
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// Unix returns the clock's current time as epoch seconds
func Unix(c Clock) int64 {
	return c.Now().Unix()
}
