// Package types defines error types shared across the waiting and retry layers.
package types

import (
	"errors"
	"fmt"
	"time"
)

// Predefined errors
var (
	// ErrStaleElement indicates a previously located element reference is no
	// longer attached to the DOM because the surrounding subtree re-rendered.
	ErrStaleElement = errors.New("stale element reference")

	// ErrNotInteractable indicates the element exists but cannot currently be
	// interacted with, typically because an animation or overlay obscures it.
	ErrNotInteractable = errors.New("element not interactable")

	// ErrNotReady is the sentinel a poll condition returns while the awaited
	// state has not been reached yet. It never escapes a poll loop.
	ErrNotReady = errors.New("condition not ready")

	// ErrTimeout indicates a poll deadline expired.
	ErrTimeout = errors.New("timed out waiting")

	// ErrReloadDisabled indicates a locator catalog reload was requested but
	// not enabled in configuration.
	ErrReloadDisabled = errors.New("locator catalog reload is disabled")
)

// TimeoutError is raised when a poll deadline expires. It always carries a
// description of what was being awaited and, where available, the last
// observed state for diagnosis.
type TimeoutError struct {
	// Awaiting is a human-readable description of the awaited condition
	Awaiting string

	// LastState is a snapshot of relevant live state at expiry (may be empty)
	LastState string

	// Timeout is the deadline that expired
	Timeout time.Duration
}

// Error implements the error interface
func (e *TimeoutError) Error() string {
	if e.LastState != "" {
		return fmt.Sprintf("timed out after %s waiting for %s - last state: %s", e.Timeout, e.Awaiting, e.LastState)
	}
	return fmt.Sprintf("timed out after %s waiting for %s", e.Timeout, e.Awaiting)
}

// Unwrap returns the timeout sentinel so callers can match with errors.Is.
func (e *TimeoutError) Unwrap() error {
	return ErrTimeout
}

// NewTimeoutError creates a timeout error for the given awaited condition.
func NewTimeoutError(awaiting string, timeout time.Duration) *TimeoutError {
	return &TimeoutError{Awaiting: awaiting, Timeout: timeout}
}

// WithLastState attaches the last observed state snapshot.
func (e *TimeoutError) WithLastState(state string) *TimeoutError {
	e.LastState = state
	return e
}

// PrependMessage returns a copy with extra context in front of the awaited
// description, preserving the rest of the error.
func (e *TimeoutError) PrependMessage(message string) *TimeoutError {
	return &TimeoutError{
		Awaiting:  fmt.Sprintf("%s: %s", message, e.Awaiting),
		LastState: e.LastState,
		Timeout:   e.Timeout,
	}
}

// AssertionError represents a semantic check failure. It is always fatal and
// never retried.
type AssertionError struct {
	Message string
}

// Error implements the error interface
func (e *AssertionError) Error() string {
	return e.Message
}

// NewAssertionError creates an assertion error.
func NewAssertionError(format string, args ...interface{}) *AssertionError {
	return &AssertionError{Message: fmt.Sprintf(format, args...)}
}

// StepError represents a failure inside a tour step. It records where in the
// script execution stopped while preserving the underlying cause.
type StepError struct {
	// Title is the step title, if any
	Title string

	// Index is the step's original position in the script
	Index int

	// Cause is the underlying error
	Cause error
}

// Error implements the error interface
func (e *StepError) Error() string {
	if e.Title != "" {
		return fmt.Sprintf("tour step %d (%s) failed: %v", e.Index, e.Title, e.Cause)
	}
	return fmt.Sprintf("tour step %d failed: %v", e.Index, e.Cause)
}

// Unwrap returns the underlying error
func (e *StepError) Unwrap() error {
	return e.Cause
}

// Is checks if the error is a specific error
func (e *StepError) Is(target error) bool {
	return errors.Is(e.Cause, target)
}

// NewStepError creates a new step error.
func NewStepError(title string, index int, cause error) *StepError {
	return &StepError{Title: title, Index: index, Cause: cause}
}
