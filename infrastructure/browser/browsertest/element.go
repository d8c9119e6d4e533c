package browsertest

import (
	"context"
	"fmt"
	"sync"

	"streampark_e2e/domain/interfaces"
)

// Element is a fake DOM node. New elements are visible and enabled.
type Element struct {
	driver *Driver

	mu      sync.Mutex
	name    string
	text    string
	visible bool
	enabled bool
	value   string
	typed   string
	clicks  int
	onClick func()
}

var _ interfaces.Element = (*Element)(nil)

// NewElement - creates a visible, enabled element. name identifies it in Events.
func NewElement(name, text string) *Element {
	return &Element{
		name:    name,
		text:    text,
		visible: true,
		enabled: true,
	}
}

// SetVisible - toggles visibility
func (e *Element) SetVisible(visible bool) *Element {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.visible = visible
	return e
}

// SetEnabled - toggles whether the element is enabled
func (e *Element) SetEnabled(enabled bool) *Element {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.enabled = enabled
	return e
}

// OnClick - registers a hook run after every click, e.g. to render a dropdown
func (e *Element) OnClick(fn func()) *Element {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onClick = fn
	return e
}

// Clicks - returns how many times the element was clicked
func (e *Element) Clicks() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.clicks
}

// Value - returns the last filled value
func (e *Element) Value() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.value
}

// Typed - returns every keystroke sent through Type
func (e *Element) Typed() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.typed
}

func (e *Element) Text(ctx context.Context) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.text, nil
}

func (e *Element) IsVisible(ctx context.Context) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.visible, nil
}

func (e *Element) IsEnabled(ctx context.Context) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.enabled, nil
}

func (e *Element) Click(ctx context.Context) error {
	e.mu.Lock()
	if !e.visible {
		e.mu.Unlock()
		return fmt.Errorf("element %s is not visible", e.name)
	}
	e.clicks++
	hook := e.onClick
	e.mu.Unlock()

	e.recordf("click %s", e.name)
	if hook != nil {
		hook()
	}
	return nil
}

func (e *Element) Fill(ctx context.Context, text string) error {
	e.mu.Lock()
	if !e.enabled {
		e.mu.Unlock()
		return fmt.Errorf("element %s is disabled", e.name)
	}
	e.value = text
	e.mu.Unlock()

	e.recordf("fill %s %q", e.name, text)
	return nil
}

func (e *Element) Type(ctx context.Context, text string) error {
	e.mu.Lock()
	e.clicks++
	e.typed += text
	e.mu.Unlock()

	e.recordf("type %s %q", e.name, text)
	return nil
}

func (e *Element) recordf(format string, args ...interface{}) {
	if e.driver != nil {
		e.driver.record(fmt.Sprintf(format, args...))
	}
}
