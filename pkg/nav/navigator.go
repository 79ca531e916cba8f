// Package nav drives the application UI through the waiting primitives:
// history state polling, content item visibility waits with bounded forced
// refreshes, and retrying click helpers for page objects to build on.
package nav

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/jzx17/uiwait/pkg/driver"
	"github.com/jzx17/uiwait/pkg/locator"
	"github.com/jzx17/uiwait/pkg/retry"
	"github.com/jzx17/uiwait/pkg/wait"
)

// StateClient is the JSON API surface the navigator reads application state
// through.
type StateClient interface {
	Get(ctx context.Context, endpoint string, out interface{}) error
}

// History is the API representation of a job history.
type History struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	State string `json:"state"`
}

// ContentItem is the API representation of one item in a history. HID is an
// ordinal position unique within the history at a point in time; ID may
// change across refresh or conversion, so hid-to-item resolution must be
// redone on every poll and never cached across refreshes.
type ContentItem struct {
	HistoryID   string `json:"history_id"`
	HID         int    `json:"hid"`
	ContentType string `json:"history_content_type"`
	ID          string `json:"id"`
	State       string `json:"state"`
}

// Navigator bundles the collaborators every wait-and-click helper needs.
// A navigator owns one driver session; parallel test sessions must each own
// an independent navigator.
type Navigator struct {
	driver  driver.Driver
	api     StateClient
	waits   *wait.Clock
	catalog *locator.Component
	baseURL string
	log     *slog.Logger
}

// Option is a configuration option for a navigator.
type Option func(*Navigator)

// WithCatalog overrides the process-wide locator catalog.
func WithCatalog(catalog *locator.Component) Option {
	return func(n *Navigator) {
		n.catalog = catalog
	}
}

// WithLogger sets the structured logger.
func WithLogger(log *slog.Logger) Option {
	return func(n *Navigator) {
		n.log = log
	}
}

// New creates a navigator for one driver session.
func New(d driver.Driver, api StateClient, waits *wait.Clock, baseURL string, opts ...Option) (*Navigator, error) {
	n := &Navigator{
		driver:  d,
		api:     api,
		waits:   waits,
		baseURL: baseURL,
		log:     slog.Default(),
	}

	for _, opt := range opts {
		opt(n)
	}

	if n.catalog == nil {
		root, err := locator.Root()
		if err != nil {
			return nil, fmt.Errorf("load locator catalog: %w", err)
		}
		n.catalog = root
	}

	return n, nil
}

// Waits exposes the session wait clock.
func (n *Navigator) Waits() *wait.Clock {
	return n.waits
}

// Home navigates to the application root.
func (n *Navigator) Home() error {
	return n.driver.Navigate(n.baseURL)
}

// CurrentHistoryID returns the id of the most recently used history.
func (n *Navigator) CurrentHistoryID(ctx context.Context) (string, error) {
	var histories []History
	if err := n.api.Get(ctx, "histories", &histories); err != nil {
		return "", fmt.Errorf("list histories: %w", err)
	}
	if len(histories) == 0 {
		return "", fmt.Errorf("no histories for current user")
	}
	return histories[0].ID, nil
}

// HistoryContents fetches the content listing of a history. The listing is
// never cached; callers re-fetch on every poll.
func (n *Navigator) HistoryContents(ctx context.Context, historyID string) ([]ContentItem, error) {
	var contents []ContentItem
	endpoint := fmt.Sprintf("histories/%s/contents", historyID)
	if err := n.api.Get(ctx, endpoint, &contents); err != nil {
		return nil, fmt.Errorf("list history contents: %w", err)
	}
	return contents, nil
}

// User is the API representation of the logged-in user.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// LoggedInUser returns the current session's user.
func (n *Navigator) LoggedInUser(ctx context.Context) (User, error) {
	var user User
	if err := n.api.Get(ctx, "users/current", &user); err != nil {
		return User{}, fmt.Errorf("current user: %w", err)
	}
	return user, nil
}

// IsLoggedIn reports whether the session has an authenticated user.
func (n *Navigator) IsLoggedIn(ctx context.Context) bool {
	user, err := n.LoggedInUser(ctx)
	return err == nil && user.Email != ""
}

// RandomName generates a unique name for created fixtures.
func (n *Navigator) RandomName(prefix string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	if prefix == "" {
		prefix = "test"
	}
	return prefix + "-" + suffix
}

// lookup resolves a dotted catalog path, panicking on catalog drift: a
// missing entry is a programming error, not a runtime condition.
func (n *Navigator) lookup(path string) locator.Locator {
	loc, err := n.catalog.Lookup(path)
	if err != nil {
		panic(fmt.Sprintf("locator catalog: %v", err))
	}
	return loc
}

// WaitForPresent blocks until at least one element matches loc, with the
// timeout resolved from the wait-type catalog.
func (n *Navigator) WaitForPresent(loc locator.Locator, waitType wait.Type) (driver.Element, error) {
	awaiting := fmt.Sprintf("element %s to be present", loc)
	return wait.UntilFor(n.waits, waitType, awaiting, func() (driver.Element, bool, error) {
		elements, err := n.driver.FindAll(loc)
		if err != nil {
			if retry.SeemsTransitional(err) {
				return nil, false, nil
			}
			return nil, false, err
		}
		if len(elements) == 0 {
			return nil, false, nil
		}
		return elements[0], true, nil
	})
}

// WaitForVisible blocks until an element matching loc is displayed.
func (n *Navigator) WaitForVisible(loc locator.Locator, waitType wait.Type) (driver.Element, error) {
	awaiting := fmt.Sprintf("element %s to become visible", loc)
	return wait.UntilFor(n.waits, waitType, awaiting, func() (driver.Element, bool, error) {
		elements, err := n.driver.FindAll(loc)
		if err != nil {
			if retry.SeemsTransitional(err) {
				return nil, false, nil
			}
			return nil, false, err
		}
		for _, element := range elements {
			displayed, err := element.Displayed()
			if err != nil {
				if retry.SeemsTransitional(err) {
					return nil, false, nil
				}
				return nil, false, err
			}
			if displayed {
				return element, true, nil
			}
		}
		return nil, false, nil
	})
}

// ClickWhenClickable waits for loc to become visible and clicks it, retrying
// the whole find-and-click through transitions.
func (n *Navigator) ClickWhenClickable(loc locator.Locator, waitType wait.Type) error {
	return retry.Call(func() error {
		element, err := n.WaitForVisible(loc, waitType)
		if err != nil {
			return err
		}
		return element.Click()
	})
}

// ClickSelector is ClickWhenClickable for a raw CSS selector, as used by
// externally authored tour scripts.
func (n *Navigator) ClickSelector(selector string) error {
	n.log.Debug("clicking", "selector", selector)
	return n.ClickWhenClickable(locator.Locator{Kind: locator.CSS, Value: selector}, wait.JobCompletion)
}

// WaitForSelector blocks until a raw CSS selector is present.
func (n *Navigator) WaitForSelector(selector string) (driver.Element, error) {
	n.log.Debug("waiting for element", "selector", selector)
	return n.WaitForPresent(locator.Locator{Kind: locator.CSS, Value: selector}, wait.JobCompletion)
}

// SleepSeconds pauses the calling test for an explicit number of seconds.
func (n *Navigator) SleepSeconds(seconds float64) {
	n.waits.SleepSeconds(seconds)
}
