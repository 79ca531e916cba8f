package driver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/sclevine/agouti"

	"github.com/jzx17/uiwait/pkg/locator"
	"github.com/jzx17/uiwait/pkg/retry"
	"github.com/jzx17/uiwait/pkg/types"
)

// AgoutiDriver adapts an agouti WebDriver page to the Driver interface.
// WebDriver reports failures as strings, so errors coming off the wire are
// re-wrapped with the module's sentinel kinds where they match.
type AgoutiDriver struct {
	page *agouti.Page
}

// NewAgoutiDriver wraps an already started agouti page.
func NewAgoutiDriver(page *agouti.Page) *AgoutiDriver {
	return &AgoutiDriver{page: page}
}

// Navigate loads the given URL.
func (d *AgoutiDriver) Navigate(url string) error {
	return d.page.Navigate(url)
}

// Find locates a single element by the locator's kind.
func (d *AgoutiDriver) Find(loc locator.Locator) (Element, error) {
	var selection *agouti.Selection
	switch loc.Kind {
	case locator.XPath:
		selection = d.page.FindByXPath(loc.Value)
	default:
		selection = d.page.Find(loc.Value)
	}

	count, err := selection.Count()
	if err != nil {
		return nil, classify(err)
	}
	if count == 0 {
		return nil, fmt.Errorf("no element matching %s", loc)
	}
	return &agoutiElement{selection: selection}, nil
}

// FindAll locates every element matching the locator.
func (d *AgoutiDriver) FindAll(loc locator.Locator) ([]Element, error) {
	var all *agouti.MultiSelection
	switch loc.Kind {
	case locator.XPath:
		all = d.page.AllByXPath(loc.Value)
	default:
		all = d.page.All(loc.Value)
	}

	count, err := all.Count()
	if err != nil {
		return nil, classify(err)
	}

	elements := make([]Element, 0, count)
	for i := 0; i < count; i++ {
		elements = append(elements, &agoutiElement{selection: all.At(i)})
	}
	return elements, nil
}

// Cookies returns the browser session's cookie store.
func (d *AgoutiDriver) Cookies() ([]*http.Cookie, error) {
	return d.page.GetCookies()
}

type agoutiElement struct {
	selection *agouti.Selection
}

func (e *agoutiElement) Click() error {
	return classify(e.selection.Click())
}

func (e *agoutiElement) Text() (string, error) {
	text, err := e.selection.Text()
	return text, classify(err)
}

func (e *agoutiElement) Attribute(name string) (string, error) {
	value, err := e.selection.Attribute(name)
	return value, classify(err)
}

func (e *agoutiElement) Displayed() (bool, error) {
	visible, err := e.selection.Visible()
	return visible, classify(err)
}

func (e *agoutiElement) SendKeys(text string) error {
	return classify(e.selection.SendKeys(text))
}

// classify re-wraps wire-level webdriver failures with the module's sentinel
// error kinds so that errors.Is works downstream. Unrecognized errors pass
// through unmodified.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, types.ErrStaleElement) || errors.Is(err, types.ErrNotInteractable) {
		return err
	}
	if retry.IsStaleElement(err) {
		return fmt.Errorf("%w: %v", types.ErrStaleElement, err)
	}
	if retry.IsNotInteractable(err) {
		return fmt.Errorf("%w: %v", types.ErrNotInteractable, err)
	}
	return err
}
