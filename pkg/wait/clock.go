package wait

import (
	"time"

	"github.com/jzx17/uiwait/pkg/types"
)

// DefaultPollInterval is the fixed re-check interval used by Until.
const DefaultPollInterval = 250 * time.Millisecond

// Clock resolves named wait types into actual durations using a session-wide
// multiplier, and owns the poll interval for blocking waits. The multiplier
// is set once at session start and read-only afterwards.
type Clock struct {
	multiplier   float64
	pollInterval time.Duration
	clock        types.Clock
}

// ClockOption is a configuration option for a wait clock.
type ClockOption func(*Clock)

// WithPollInterval sets the re-check interval for blocking waits.
func WithPollInterval(interval time.Duration) ClockOption {
	return func(c *Clock) {
		c.pollInterval = interval
	}
}

// WithClock sets the underlying time source.
func WithClock(clock types.Clock) ClockOption {
	return func(c *Clock) {
		c.clock = clock
	}
}

// NewClock creates a wait clock with the given timeout multiplier. A
// non-positive multiplier falls back to 1.
func NewClock(multiplier float64, opts ...ClockOption) *Clock {
	if multiplier <= 0 {
		multiplier = 1
	}

	c := &Clock{
		multiplier:   multiplier,
		pollInterval: DefaultPollInterval,
		clock:        types.NewRealClock(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Multiplier returns the session-wide timeout multiplier.
func (c *Clock) Multiplier() float64 {
	return c.multiplier
}

// Length returns the wait time for t after applying the multiplier.
func (c *Clock) Length(t Type) time.Duration {
	return time.Duration(float64(t.Default) * c.multiplier)
}

// Timeout is Length under a name that reads better at poll call sites.
func (c *Clock) Timeout(t Type) time.Duration {
	return c.Length(t)
}

// SleepFor sleeps on the client side for the scaled length of t.
func (c *Clock) SleepFor(t Type) {
	c.clock.Sleep(c.Length(t))
}

// SleepSeconds sleeps for an explicit number of seconds, unscaled. Tour
// scripts express per-step sleeps this way.
func (c *Clock) SleepSeconds(seconds float64) {
	c.clock.Sleep(time.Duration(seconds * float64(time.Second)))
}
