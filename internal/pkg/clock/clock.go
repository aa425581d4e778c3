// Package clock provides time utilities for the application
package clock

import "time"

//go:generate mockgen -destination=mock/mock.go -package=mockclock github.com/railforge/railforge/internal/pkg/clock Clock

// Clock provides time functionality. The wall clock drives exactly one
// piece of game state: resource regeneration since the last recovery
// timestamp. Everything else runs on game minutes.
type Clock interface {
	Now() time.Time
}

// Real implements Clock using actual system time
type Real struct{}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now()
}

// New returns a new real clock
func New() Clock {
	return &Real{}
}

// Fixed is a Clock pinned to a settable instant, for tests.
type Fixed struct {
	Time time.Time
}

// Now returns the pinned time
func (c *Fixed) Now() time.Time {
	return c.Time
}

// Advance moves the pinned time forward
func (c *Fixed) Advance(d time.Duration) {
	c.Time = c.Time.Add(d)
}
