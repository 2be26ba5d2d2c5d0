package mocks

import (
	"sync"
	"time"

	"github.com/mcoot/dategetter/internal/dependencies/clock"
)

// MockClock is a mock implementation of Clock for testing. It is safe
// for concurrent use.
type MockClock struct {
	mu      sync.Mutex
	current time.Time
	calls   int
}

// Ensure MockClock implements Clock
var _ clock.Clock = (*MockClock)(nil)

// NewMockClock creates a MockClock set to the given time
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{current: t}
}

// NewMockClockAt creates a MockClock set to the given epoch seconds (UTC)
func NewMockClockAt(epoch int64) *MockClock {
	return NewMockClock(time.Unix(epoch, 0).UTC())
}

// Now returns the mocked current time
func (c *MockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	return c.current
}

// Calls returns how many times Now has been called
func (c *MockClock) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

// Advance moves the clock forward by the given duration
func (c *MockClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.current.Add(d)
}

// Set sets the clock to the given time
func (c *MockClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = t
}
