package retry

import (
	"errors"
	"strings"

	"github.com/jzx17/uiwait/pkg/types"
)

// webdriver wire-level messages that indicate the two transition error kinds,
// for errors that arrive unclassified from a remote driver.
var staleMessages = []string{
	"stale element reference",
	"stale element not found",
}

var notInteractableMessages = []string{
	"not interactable",
	"is not clickable at point",
	"other element would receive the click",
}

// IsStaleElement reports whether err indicates a previously located element
// is no longer attached because its subtree was re-rendered.
func IsStaleElement(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, types.ErrStaleElement) {
		return true
	}
	return containsAny(err.Error(), staleMessages)
}

// IsNotInteractable reports whether err indicates the element exists but is
// currently obscured by an animation or overlay.
func IsNotInteractable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, types.ErrNotInteractable) {
		return true
	}
	return containsAny(err.Error(), notInteractableMessages)
}

// SeemsTransitional reports whether err is plausibly caused by an in-progress
// page transition rather than a genuine fault. Exactly two failure kinds
// qualify: stale element references and not-interactable elements. Anything
// else must propagate unmodified.
func SeemsTransitional(err error) bool {
	return IsStaleElement(err) || IsNotInteractable(err)
}

func containsAny(msg string, candidates []string) bool {
	msg = strings.ToLower(msg)
	for _, candidate := range candidates {
		if strings.Contains(msg, candidate) {
			return true
		}
	}
	return false
}
