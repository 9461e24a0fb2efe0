// Package clock injects the notion of "now" into use cases so temporal
// classification and validation can be tested at a fixed instant.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

// RealClock delegates to the system clock.
type RealClock struct{}

func NewRealClock() Clock {
	return RealClock{}
}

func (RealClock) Now() time.Time { return time.Now() }

// MockClock reports a fixed instant until moved with Set or Add. Not safe
// for concurrent use; tests own it.
type MockClock struct {
	now time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{now: t}
}

func (c *MockClock) Now() time.Time { return c.now }

func (c *MockClock) Set(t time.Time) { c.now = t }

func (c *MockClock) Add(d time.Duration) { c.now = c.now.Add(d) }
