package retry

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jzx17/uiwait/pkg/types"
)

func TestSeemsTransitional_SentinelKinds(t *testing.T) {
	if !SeemsTransitional(types.ErrStaleElement) {
		t.Error("Expected stale element sentinel to classify as transitional")
	}
	if !SeemsTransitional(types.ErrNotInteractable) {
		t.Error("Expected not-interactable sentinel to classify as transitional")
	}
	if !SeemsTransitional(fmt.Errorf("click failed: %w", types.ErrStaleElement)) {
		t.Error("Expected wrapped sentinel to classify as transitional")
	}
}

func TestSeemsTransitional_WireMessages(t *testing.T) {
	cases := []string{
		"stale element reference: element is not attached to the page document",
		"element not interactable",
		"Element <button> is not clickable at point (100, 200)",
		"Other element would receive the click: <div class=\"modal\">",
	}
	for _, msg := range cases {
		if !SeemsTransitional(errors.New(msg)) {
			t.Errorf("Expected %q to classify as transitional", msg)
		}
	}
}

func TestSeemsTransitional_RejectsEverythingElse(t *testing.T) {
	cases := []error{
		nil,
		errors.New("no such element: #missing"),
		errors.New("invalid selector"),
		types.ErrTimeout,
		types.NewAssertionError("state was %q", "error"),
	}
	for _, err := range cases {
		if SeemsTransitional(err) {
			t.Errorf("Expected %v not to classify as transitional", err)
		}
	}
}
