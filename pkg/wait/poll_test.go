package wait_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jzx17/uiwait/internal/testutils"
	"github.com/jzx17/uiwait/pkg/types"
	"github.com/jzx17/uiwait/pkg/wait"
)

func TestUntilValue_ReadyAfterSeveralPolls(t *testing.T) {
	fake := testutils.NewFakeClock()
	c := wait.NewClock(1.0, wait.WithClock(fake), wait.WithPollInterval(250*time.Millisecond))

	calls := 0
	value, err := wait.UntilValue(c, 10*time.Second, "job to finish", func() (string, bool, error) {
		calls++
		if calls < 4 {
			return "", false, nil
		}
		return "ok", true, nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", value)
	assert.Equal(t, 4, calls)
	assert.Equal(t, 3, fake.SleepCount(), "one poll sleep per not-ready result")
}

func TestUntilValue_TimesOutCloseToDeadline(t *testing.T) {
	fake := testutils.NewFakeClock()
	c := wait.NewClock(1.0, wait.WithClock(fake), wait.WithPollInterval(250*time.Millisecond))

	start := fake.Now()
	_, err := wait.UntilValue(c, time.Second, "element to appear", func() (string, bool, error) {
		return "", false, nil
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrTimeout))

	var timeoutErr *types.TimeoutError
	require.ErrorAs(t, err, &timeoutErr)
	assert.Contains(t, timeoutErr.Error(), "element to appear")

	// expiry is detected within one poll interval past the deadline
	elapsed := fake.Since(start)
	assert.GreaterOrEqual(t, elapsed, time.Second)
	assert.LessOrEqual(t, elapsed, time.Second+250*time.Millisecond)
}

func TestUntilValue_ConditionErrorAbortsImmediately(t *testing.T) {
	fake := testutils.NewFakeClock()
	c := wait.NewClock(1.0, wait.WithClock(fake))

	genuine := errors.New("session lost")
	calls := 0
	_, err := wait.UntilValue(c, 10*time.Second, "anything", func() (int, bool, error) {
		calls++
		return 0, false, genuine
	})

	require.ErrorIs(t, err, genuine)
	assert.Equal(t, 1, calls)
	assert.Zero(t, fake.SleepCount())
}

func TestUntilValue_ImmediateReadyNeverSleeps(t *testing.T) {
	mock := testutils.NewMockClock(t)
	c := wait.NewClock(1.0, wait.WithClock(testutils.NewClockWrapper(mock)))

	value, err := wait.UntilValue(c, time.Minute, "already there", func() (int, bool, error) {
		return 7, true, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 7, value)
}

func TestUntil_NoValueForm(t *testing.T) {
	fake := testutils.NewFakeClock()
	c := wait.NewClock(1.0, wait.WithClock(fake))

	ready := false
	err := c.Until(5*time.Second, "panel to load", func() (struct{}, bool, error) {
		if ready {
			return struct{}{}, true, nil
		}
		ready = true
		return struct{}{}, false, nil
	})

	require.NoError(t, err)
}

func TestUntilFor_ResolvesTimeoutFromCatalog(t *testing.T) {
	fake := testutils.NewFakeClock()
	c := wait.NewClock(0.001, wait.WithClock(fake), wait.WithPollInterval(time.Millisecond))

	// job-completion at multiplier 0.001 is 30ms; never-ready must expire.
	_, err := wait.UntilFor(c, wait.JobCompletion, "never", func() (string, bool, error) {
		return "", false, nil
	})

	var timeoutErr *types.TimeoutError
	require.ErrorAs(t, err, &timeoutErr)
	assert.Equal(t, 30*time.Millisecond, timeoutErr.Timeout)
}
