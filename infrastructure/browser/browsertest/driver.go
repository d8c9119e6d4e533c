// Package browsertest provides an in-memory Driver for exercising page
// objects without a browser. Elements are registered per selector and every
// interaction is recorded so tests can assert on the exact UI sequence.
package browsertest

import (
	"context"
	"fmt"
	"sync"

	"streampark_e2e/domain/entities"
	"streampark_e2e/domain/interfaces"
)

// Driver is a fake DOM keyed by selector string
type Driver struct {
	mu       sync.Mutex
	nodes    map[string][]*Element
	findErrs map[string]error
	events   []string
	url      string
	closed   bool
}

var _ interfaces.Driver = (*Driver)(nil)

// NewDriver - creates an empty fake DOM
func NewDriver() *Driver {
	return &Driver{
		nodes:    make(map[string][]*Element),
		findErrs: make(map[string]error),
	}
}

// Name - returns the backend name
func (d *Driver) Name() string {
	return "browsertest"
}

// Set replaces what selector resolves to
func (d *Driver) Set(selector entities.Selector, elements ...*Element) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, el := range elements {
		el.driver = d
	}
	d.nodes[selector.String()] = elements
}

// FailFind makes every FindAll for selector return err until cleared with nil
func (d *Driver) FailFind(selector entities.Selector, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err == nil {
		delete(d.findErrs, selector.String())
		return
	}
	d.findErrs[selector.String()] = err
}

// Navigate - records the navigation
func (d *Driver) Navigate(ctx context.Context, url string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.url = url
	d.events = append(d.events, "navigate "+url)
	return nil
}

// URL - returns the last navigated URL
func (d *Driver) URL() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.url
}

// FindAll - returns the elements registered for selector
func (d *Driver) FindAll(ctx context.Context, selector entities.Selector) ([]interfaces.Element, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil, fmt.Errorf("driver is closed")
	}
	if err := d.findErrs[selector.String()]; err != nil {
		return nil, err
	}

	found := d.nodes[selector.String()]
	out := make([]interfaces.Element, len(found))
	for i, el := range found {
		out[i] = el
	}
	return out, nil
}

// Close - marks the session closed
func (d *Driver) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.closed = true
	return nil
}

// Events - returns a copy of the recorded interactions
func (d *Driver) Events() []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]string, len(d.events))
	copy(out, d.events)
	return out
}

func (d *Driver) record(event string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, event)
}
