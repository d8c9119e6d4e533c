package interfaces

import (
	"context"

	"streampark_e2e/domain/entities"
)

// Driver defines the browser session the page objects act on
type Driver interface {
	// Name returns the backend name, e.g. "playwright"
	Name() string

	// Navigate navigates to a URL
	Navigate(ctx context.Context, url string) error

	// FindAll resolves a selector against the live DOM, in document order.
	// Zero matches is not an error.
	FindAll(ctx context.Context, selector entities.Selector) ([]Element, error)

	// Close closes the browser
	Close() error
}

// Element is a handle to a live DOM node. It is valid until the next
// navigation or a DOM mutation that detaches the node.
type Element interface {
	// Text returns the rendered text of the element
	Text(ctx context.Context) (string, error)

	// IsVisible checks if the element is displayed
	IsVisible(ctx context.Context) (bool, error)

	// IsEnabled checks if the element accepts input
	IsEnabled(ctx context.Context) (bool, error)

	// Click clicks on the element
	Click(ctx context.Context) error

	// Fill replaces the value of an input element
	Fill(ctx context.Context, text string) error

	// Type clicks the element and sends keystrokes to whatever takes focus
	Type(ctx context.Context, text string) error
}
