// Package pages holds the page objects of the StreamPark console used by the
// e2e scenarios. Every action waits for its precondition, performs the
// driver interactions and either completes or returns an error; nothing is
// retried and nothing is logged here.
package pages

import (
	"context"
	"fmt"
	"strings"

	"streampark_e2e/application/wait"
	"streampark_e2e/domain/entities"
	"streampark_e2e/domain/interfaces"
)

// Page is the base every page object embeds
type Page struct {
	driver interfaces.Driver
	waiter *wait.Waiter
}

// NewPage - binds a page to one driver session
func NewPage(driver interfaces.Driver, waiter *wait.Waiter) *Page {
	return &Page{
		driver: driver,
		waiter: waiter,
	}
}

// Resolve returns what selector matches right now. An empty result is valid:
// actions that need an element wait for it instead, so absence always
// surfaces as a TimeoutError.
func (p *Page) Resolve(ctx context.Context, selector entities.Selector) ([]interfaces.Element, error) {
	elements, err := p.driver.FindAll(ctx, selector)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", selector, err)
	}
	return elements, nil
}

// Click - waits for the element to be clickable and clicks it
func (p *Page) Click(ctx context.Context, selector entities.Selector) error {
	el, err := p.clickable(ctx, selector)
	if err != nil {
		return err
	}
	if err := el.Click(ctx); err != nil {
		return fmt.Errorf("failed to click %s: %w", selector, err)
	}
	return nil
}

// Fill - waits for the input to be clickable and replaces its value
func (p *Page) Fill(ctx context.Context, selector entities.Selector, text string) error {
	el, err := p.clickable(ctx, selector)
	if err != nil {
		return err
	}
	if err := el.Fill(ctx, text); err != nil {
		return fmt.Errorf("failed to fill %s: %w", selector, err)
	}
	return nil
}

// Type - waits for the element to be clickable and sends keystrokes to it
func (p *Page) Type(ctx context.Context, selector entities.Selector, text string) error {
	el, err := p.clickable(ctx, selector)
	if err != nil {
		return err
	}
	if err := el.Type(ctx, text); err != nil {
		return fmt.Errorf("failed to type into %s: %w", selector, err)
	}
	return nil
}

// SelectOptionByLabel opens dropdown and clicks the first option, in DOM
// order, whose text equals label ignoring case. The dropdown stays open when
// no option matches.
func (p *Page) SelectOptionByLabel(ctx context.Context, dropdown Dropdown, label string) error {
	if err := p.Click(ctx, dropdown.Button); err != nil {
		return err
	}

	options, err := p.waiter.Until(ctx, dropdown.Options, wait.AllVisible)
	if err != nil {
		return err
	}

	want := strings.TrimSpace(label)
	available := make([]string, 0, len(options))
	for _, option := range options {
		text, err := option.Text(ctx)
		if err != nil {
			return fmt.Errorf("failed to read %s option: %w", strings.ToLower(dropdown.Context), err)
		}
		text = strings.TrimSpace(text)
		if strings.EqualFold(text, want) {
			if err := option.Click(ctx); err != nil {
				return fmt.Errorf("failed to select %s %q: %w", strings.ToLower(dropdown.Context), label, err)
			}
			return nil
		}
		available = append(available, text)
	}

	return &entities.OptionNotFoundError{
		Context:   dropdown.Context,
		Label:     label,
		Available: available,
	}
}

func (p *Page) clickable(ctx context.Context, selector entities.Selector) (interfaces.Element, error) {
	elements, err := p.waiter.Until(ctx, selector, wait.Clickable)
	if err != nil {
		return nil, err
	}
	return elements[0], nil
}
