package nav_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/jzx17/uiwait/pkg/driver"
	"github.com/jzx17/uiwait/pkg/locator"
)

// fakeAPI serves canned responses per endpoint. Each endpoint holds a queue;
// the final entry repeats once exhausted, which models a state that settled.
type fakeAPI struct {
	mu        sync.Mutex
	responses map[string][]interface{}
	calls     map[string]int
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		responses: map[string][]interface{}{},
		calls:     map[string]int{},
	}
}

func (f *fakeAPI) on(endpoint string, responses ...interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[endpoint] = responses
}

func (f *fakeAPI) Get(ctx context.Context, endpoint string, out interface{}) error {
	f.mu.Lock()
	queue := f.responses[endpoint]
	index := f.calls[endpoint]
	f.calls[endpoint]++
	f.mu.Unlock()

	if len(queue) == 0 {
		return fmt.Errorf("no fake response for %s", endpoint)
	}
	if index >= len(queue) {
		index = len(queue) - 1
	}

	response := queue[index]
	if err, ok := response.(error); ok {
		return err
	}
	payload, err := json.Marshal(response)
	if err != nil {
		return err
	}
	return json.Unmarshal(payload, out)
}

// fakeElement is a scripted DOM element handle.
type fakeElement struct {
	id        string
	state     string
	text      string
	displayed bool
	onClick   func() error
}

func (e *fakeElement) Click() error {
	if e.onClick != nil {
		return e.onClick()
	}
	return nil
}

func (e *fakeElement) Text() (string, error) {
	return e.text, nil
}

func (e *fakeElement) Attribute(name string) (string, error) {
	switch name {
	case "id":
		return e.id, nil
	case "data-state":
		return e.state, nil
	}
	return "", nil
}

func (e *fakeElement) Displayed() (bool, error) {
	return e.displayed, nil
}

func (e *fakeElement) SendKeys(text string) error {
	e.text += text
	return nil
}

// fakeDriver maps selector values to element lists and can be mutated from
// element click handlers to model a UI that changes under the test.
type fakeDriver struct {
	mu       sync.Mutex
	elements map[string][]driver.Element
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{elements: map[string][]driver.Element{}}
}

func (d *fakeDriver) place(selector string, elements ...driver.Element) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.elements[selector] = elements
}

func (d *fakeDriver) Navigate(url string) error {
	return nil
}

func (d *fakeDriver) Find(loc locator.Locator) (driver.Element, error) {
	elements, err := d.FindAll(loc)
	if err != nil {
		return nil, err
	}
	if len(elements) == 0 {
		return nil, fmt.Errorf("no element matching %s", loc)
	}
	return elements[0], nil
}

func (d *fakeDriver) FindAll(loc locator.Locator) ([]driver.Element, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]driver.Element(nil), d.elements[loc.Value]...), nil
}

func (d *fakeDriver) Cookies() ([]*http.Cookie, error) {
	return nil, nil
}
