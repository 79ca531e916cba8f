package nav

import (
	"context"
	"errors"
	"fmt"

	"github.com/jzx17/uiwait/pkg/types"
	"github.com/jzx17/uiwait/pkg/wait"
)

// activeStates are the history states that mean work is still in flight.
// Anything else is terminal.
var activeStates = map[string]bool{
	"running": true,
	"queued":  true,
	"new":     true,
	"ready":   true,
}

// WaitForHistory blocks until the current history leaves its active states
// and returns the terminal state. With assertOk, a terminal state other than
// "ok" fails with an assertion error naming the observed state; that failure
// is semantic and never retried.
func (n *Navigator) WaitForHistory(ctx context.Context, assertOk bool) (string, error) {
	finalState, err := wait.UntilFor(n.waits, wait.JobCompletion, "history to become terminal",
		func() (string, bool, error) {
			historyID, err := n.CurrentHistoryID(ctx)
			if err != nil {
				return "", false, err
			}

			var history History
			if err := n.api.Get(ctx, "histories/"+historyID, &history); err != nil {
				return "", false, err
			}

			if activeStates[history.State] {
				return "", false, nil
			}
			return history.State, true, nil
		})
	if err != nil {
		return "", err
	}

	if assertOk && finalState != "ok" {
		return finalState, types.NewAssertionError("expected history state ok, got %q", finalState)
	}
	return finalState, nil
}

// WaitForHistoryToHaveHID blocks until the history's content listing contains
// the given hid. The timeout error reports which hids were present instead.
func (n *Navigator) WaitForHistoryToHaveHID(ctx context.Context, historyID string, hid int) error {
	hids := func() ([]int, error) {
		contents, err := n.HistoryContents(ctx, historyID)
		if err != nil {
			return nil, err
		}
		result := make([]int, 0, len(contents))
		for _, item := range contents {
			result = append(result, item.HID)
		}
		return result, nil
	}

	awaiting := fmt.Sprintf("history %s to have hid %d", historyID, hid)
	err := n.waits.Until(n.waits.Length(wait.JobCompletion), awaiting, func() (struct{}, bool, error) {
		current, err := hids()
		if err != nil {
			return struct{}{}, false, err
		}
		for _, h := range current {
			if h == hid {
				return struct{}{}, true, nil
			}
		}
		return struct{}{}, false, nil
	})

	var timeoutErr *types.TimeoutError
	if errors.As(err, &timeoutErr) {
		if current, hidsErr := hids(); hidsErr == nil {
			return timeoutErr.WithLastState(fmt.Sprintf("have hids %v", current))
		}
	}
	return err
}

// itemByHID resolves the content item currently at the given ordinal
// position. Resolution is uncached: the underlying item id may change across
// refresh or conversion, so every caller re-resolves.
func (n *Navigator) itemByHID(ctx context.Context, historyID string, hid int) (ContentItem, error) {
	contents, err := n.HistoryContents(ctx, historyID)
	if err != nil {
		return ContentItem{}, err
	}
	for _, item := range contents {
		if item.HID == hid {
			return item, nil
		}
	}
	return ContentItem{}, fmt.Errorf("history %s has no item with hid %d", historyID, hid)
}
