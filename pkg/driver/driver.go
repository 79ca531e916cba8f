// Package driver defines the browser-driver collaborator surface and an
// agouti-backed implementation of it.
package driver

import (
	"net/http"

	"github.com/jzx17/uiwait/pkg/locator"
)

// Element is a handle to a located DOM element.
type Element interface {
	// Click clicks the element
	Click() error
	// Text returns the element's visible text
	Text() (string, error)
	// Attribute returns the value of the named attribute
	Attribute(name string) (string, error)
	// Displayed reports whether the element is currently visible
	Displayed() (bool, error)
	// SendKeys types text into the element
	SendKeys(text string) error
}

// Driver is the subset of a browser-automation session the waiting layer
// needs. Implementations must surface stale-element and not-interactable
// failures in a form the transition classifier recognizes.
type Driver interface {
	// Navigate loads the given URL
	Navigate(url string) error
	// Find locates a single element; failing to locate is an error
	Find(loc locator.Locator) (Element, error)
	// FindAll locates every matching element, possibly none
	FindAll(loc locator.Locator) ([]Element, error)
	// Cookies returns the browser's cookie store, used to derive API
	// session credentials
	Cookies() ([]*http.Cookie, error)
}
