// Package types provides the clock abstraction and shared error taxonomy.
package types

import "time"

// Clock provides an abstraction over time operations for testing.
type Clock interface {
	// Now returns the current time
	Now() time.Time
	// Since returns the time elapsed since t
	Since(t time.Time) time.Duration
	// Sleep blocks for the given duration
	Sleep(d time.Duration)
	// After returns a channel that delivers the current time after the duration
	After(d time.Duration) <-chan time.Time
}

// RealClock implements Clock using real time operations.
type RealClock struct{}

// NewRealClock creates a new real clock.
func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

func (c *RealClock) Since(t time.Time) time.Duration {
	return time.Since(t)
}

func (c *RealClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

func (c *RealClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}
