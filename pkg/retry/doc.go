// Package retry provides bounded retrying of UI actions during page transitions.
//
// Animated interfaces change the page state over time: fade-ins, overlay
// dismissals and re-renders make atomic input actions take an indeterminate
// amount of time to be reflected on screen. A click that lands mid-transition
// fails with a stale element or not-interactable error even though nothing is
// actually wrong. This package absorbs exactly that class of failure and
// nothing else.
//
// Basic usage:
//
//	err := retry.Call(func() error {
//		return element.Click()
//	})
//
// With a custom budget:
//
//	err := retry.Call(op, retry.WithAttempts(5), retry.WithSleep(50*time.Millisecond))
//
// Operations returning a value use the generic form:
//
//	text, err := retry.Do(func() (string, error) {
//		return element.Text()
//	})
//
// Failures the classifier does not recognize propagate immediately without
// consuming any retry budget. The default budget (10 attempts x 100ms) is
// chosen to outlast typical transition durations while staying far below
// user-visible test latency.
package retry
