package wait

import (
	"time"

	"github.com/jzx17/uiwait/pkg/types"
)

// Condition is a single evaluation of an awaited state. It returns the
// terminal value and ready=true once the state is reached, or ready=false
// while still waiting. A non-nil error aborts the poll immediately; "still
// waiting" is expressed through ready, never through an error.
type Condition[T any] func() (value T, ready bool, err error)

// Until repeatedly evaluates cond until it yields a value or the deadline
// passes. The remote state is mutated concurrently by the application under
// test, so a single synchronous check is never enough; polling tolerates
// that eventual consistency while the deadline keeps the wait bounded.
//
// On expiry it returns a *types.TimeoutError describing the awaited
// condition. Until always terminates: a value, a condition error, or a
// timeout, never an unbounded hang.
func (c *Clock) Until(timeout time.Duration, awaiting string, cond Condition[struct{}]) error {
	_, err := UntilValue(c, timeout, awaiting, cond)
	return err
}

// UntilValue is Until for conditions that produce a value.
func UntilValue[T any](c *Clock, timeout time.Duration, awaiting string, cond Condition[T]) (T, error) {
	var zero T
	deadline := c.clock.Now().Add(timeout)

	for {
		value, ready, err := cond()
		if err != nil {
			return zero, err
		}
		if ready {
			return value, nil
		}

		if c.clock.Now().After(deadline) {
			return zero, types.NewTimeoutError(awaiting, timeout)
		}

		c.clock.Sleep(c.pollInterval)
	}
}

// UntilFor resolves the timeout from the wait-type catalog before polling.
func UntilFor[T any](c *Clock, t Type, awaiting string, cond Condition[T]) (T, error) {
	return UntilValue(c, c.Length(t), awaiting, cond)
}
