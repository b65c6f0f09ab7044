package clock

import (
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
}

// RealClock reports wall time in a fixed location so logged and persisted
// timestamps read in the shop's local time.
type RealClock struct {
	loc *time.Location
}

func NewRealClock() Clock {
	return NewRealClockIn(time.UTC)
}

func NewRealClockIn(loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return &RealClock{loc: loc}
}

func (c *RealClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// MockClock is safe to advance while checkout passes read it.
type MockClock struct {
	mu          sync.RWMutex
	currentTime time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.currentTime
}

func (c *MockClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentTime = t
}

func (c *MockClock) Add(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentTime = c.currentTime.Add(d)
}
