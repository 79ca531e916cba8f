package types

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestTimeoutError_Error(t *testing.T) {
	err := NewTimeoutError("history item 3 to become visible", 30*time.Second)

	if !strings.Contains(err.Error(), "history item 3 to become visible") {
		t.Errorf("Expected awaited condition in message, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "30s") {
		t.Errorf("Expected timeout in message, got %q", err.Error())
	}
}

func TestTimeoutError_WithLastState(t *testing.T) {
	err := NewTimeoutError("history to become terminal", time.Second).WithLastState("queued")

	if !strings.Contains(err.Error(), "queued") {
		t.Errorf("Expected last state in message, got %q", err.Error())
	}
}

func TestTimeoutError_Unwrap(t *testing.T) {
	var err error = NewTimeoutError("anything", time.Second)

	if !errors.Is(err, ErrTimeout) {
		t.Error("Expected TimeoutError to match ErrTimeout")
	}
}

func TestTimeoutError_PrependMessage(t *testing.T) {
	err := NewTimeoutError("element to appear", time.Second).WithLastState("hidden")
	enriched := err.PrependMessage("have hids [1 2 3]")

	if !strings.Contains(enriched.Error(), "have hids [1 2 3]") {
		t.Errorf("Expected prepended context, got %q", enriched.Error())
	}
	if !strings.Contains(enriched.Error(), "element to appear") {
		t.Errorf("Expected original condition preserved, got %q", enriched.Error())
	}
	if enriched.LastState != "hidden" {
		t.Errorf("Expected last state preserved, got %q", enriched.LastState)
	}
}

func TestStepError_PreservesCause(t *testing.T) {
	cause := fmt.Errorf("click failed: %w", ErrNotInteractable)
	err := NewStepError("Upload data", 2, cause)

	if !errors.Is(err, ErrNotInteractable) {
		t.Error("Expected StepError to match the wrapped cause")
	}
	if !strings.Contains(err.Error(), "Upload data") {
		t.Errorf("Expected step title in message, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "2") {
		t.Errorf("Expected step index in message, got %q", err.Error())
	}
}

func TestAssertionError(t *testing.T) {
	err := NewAssertionError("expected history state ok, got %q", "error")

	if !strings.Contains(err.Error(), "error") {
		t.Errorf("Expected observed state in message, got %q", err.Error())
	}
}
