package nav

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jzx17/uiwait/pkg/locator"
	"github.com/jzx17/uiwait/pkg/types"
	"github.com/jzx17/uiwait/pkg/wait"
)

// RefreshHistoryPanel clicks the panel's refresh control, forcing the client
// to re-fetch and re-render content.
func (n *Navigator) RefreshHistoryPanel() error {
	n.log.Debug("forcing history panel refresh")
	return n.ClickWhenClickable(n.lookup("history_panel.refresh_button"), wait.DatabaseOperation)
}

// WaitForHIDVisible blocks until the content item at the given hid is
// rendered and displayed in the panel.
//
// Freshly created items sometimes do not appear until the panel is refreshed
// by hand. Up to allowedForceRefreshes timeouts are absorbed by triggering an
// explicit refresh and redoing the whole wait, item resolution included.
// Once the budget is spent the timeout propagates, enriched with the element
// ids that are visible instead.
func (n *Navigator) WaitForHIDVisible(ctx context.Context, hid int, allowedForceRefreshes int) (locator.Locator, error) {
	historyID, err := n.CurrentHistoryID(ctx)
	if err != nil {
		return locator.Locator{}, err
	}
	if err := n.WaitForHistoryToHaveHID(ctx, historyID, hid); err != nil {
		return locator.Locator{}, err
	}

	itemLoc := n.lookup("history_panel.item.by_hid").Resolve(map[string]string{
		"hid": strconv.Itoa(hid),
	})

	err = n.waitWithForceRefresh(allowedForceRefreshes, func() error {
		// re-resolve on every attempt: the item id is not stable across
		// refreshes even though the hid is
		if _, err := n.itemByHID(ctx, historyID, hid); err != nil {
			return err
		}
		_, err := n.WaitForVisible(itemLoc, wait.JobCompletion)
		return err
	})

	var timeoutErr *types.TimeoutError
	if errors.As(err, &timeoutErr) {
		message := fmt.Sprintf("failed waiting on history item %d to become visible, visible datasets include [%s]",
			hid, strings.Join(n.visibleContentIDs(), ","))
		return locator.Locator{}, timeoutErr.PrependMessage(message)
	}
	if err != nil {
		return locator.Locator{}, err
	}
	return itemLoc, nil
}

// WaitForHIDState blocks until the item at hid is visible and carries the
// given state in the panel, with the same bounded forced-refresh fallback as
// WaitForHIDVisible.
func (n *Navigator) WaitForHIDState(ctx context.Context, hid int, state string, allowedForceRefreshes int) (locator.Locator, error) {
	itemLoc, err := n.WaitForHIDVisible(ctx, hid, allowedForceRefreshes)
	if err != nil {
		return locator.Locator{}, err
	}

	stateLoc := n.lookup("history_panel.item.by_hid_state").Resolve(map[string]string{
		"hid":   strconv.Itoa(hid),
		"state": state,
	})

	err = n.waitWithForceRefresh(allowedForceRefreshes, func() error {
		_, err := n.WaitForVisible(stateLoc, wait.JobCompletion)
		return err
	})

	var timeoutErr *types.TimeoutError
	if errors.As(err, &timeoutErr) {
		current := n.currentItemState(itemLoc)
		message := fmt.Sprintf("failed waiting on history item %d state to change to [%s] current state [%s]",
			hid, state, current)
		return locator.Locator{}, timeoutErr.PrependMessage(message)
	}
	if err != nil {
		return locator.Locator{}, err
	}
	return stateLoc, nil
}

// WaitForHIDOK blocks until the item at hid reaches the "ok" state.
func (n *Navigator) WaitForHIDOK(ctx context.Context, hid int, allowedForceRefreshes int) (locator.Locator, error) {
	return n.WaitForHIDState(ctx, hid, "ok", allowedForceRefreshes)
}

// waitWithForceRefresh runs attempt, absorbing up to allowed timeouts by
// clicking refresh and redoing the whole attempt. Only timeouts consume
// refresh credit; any other error propagates at once.
func (n *Navigator) waitWithForceRefresh(allowed int, attempt func() error) error {
	refreshes := 0
	for {
		err := attempt()
		if err == nil {
			return nil
		}
		if !errors.Is(err, types.ErrTimeout) {
			return err
		}
		if refreshes >= allowed {
			return err
		}

		refreshes++
		if refreshErr := n.RefreshHistoryPanel(); refreshErr != nil {
			return fmt.Errorf("force refresh after timeout: %w", refreshErr)
		}
	}
}

// visibleContentIDs snapshots the ids of currently rendered content items
// for timeout diagnostics.
func (n *Navigator) visibleContentIDs() []string {
	elements, err := n.driver.FindAll(n.lookup("history_panel.contents"))
	if err != nil {
		return nil
	}
	ids := make([]string, 0, len(elements))
	for _, element := range elements {
		id, err := element.Attribute("id")
		if err != nil {
			continue
		}
		ids = append(ids, "#"+id)
	}
	return ids
}

// currentItemState reads the item's rendered state attribute, for timeout
// diagnostics. Unknown when the item cannot be read.
func (n *Navigator) currentItemState(itemLoc locator.Locator) string {
	elements, err := n.driver.FindAll(itemLoc)
	if err != nil || len(elements) == 0 {
		return "UNKNOWN"
	}
	state, err := elements[0].Attribute("data-state")
	if err != nil || state == "" {
		return "UNKNOWN"
	}
	return state
}
