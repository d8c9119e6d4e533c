// Package wait polls the DOM until an element condition holds
package wait

import (
	"context"
	"errors"
	"fmt"
	"time"

	"streampark_e2e/domain/entities"
	"streampark_e2e/domain/interfaces"

	k8swait "k8s.io/apimachinery/pkg/util/wait"
)

// Condition is a predicate over the elements a selector currently resolves to
type Condition struct {
	Name  string
	Check func(ctx context.Context, elements []interfaces.Element) (bool, error)
}

// Visible holds when the first matched element is displayed
var Visible = Condition{
	Name: "visibility of element",
	Check: func(ctx context.Context, elements []interfaces.Element) (bool, error) {
		if len(elements) == 0 {
			return false, nil
		}
		return elements[0].IsVisible(ctx)
	},
}

// Clickable holds when the first matched element is displayed and enabled
var Clickable = Condition{
	Name: "element to be clickable",
	Check: func(ctx context.Context, elements []interfaces.Element) (bool, error) {
		if len(elements) == 0 {
			return false, nil
		}
		visible, err := elements[0].IsVisible(ctx)
		if err != nil || !visible {
			return false, err
		}
		return elements[0].IsEnabled(ctx)
	},
}

// AllVisible holds when at least one element matched and all of them are displayed
var AllVisible = Condition{
	Name: "visibility of all elements",
	Check: func(ctx context.Context, elements []interfaces.Element) (bool, error) {
		if len(elements) == 0 {
			return false, nil
		}
		for _, el := range elements {
			visible, err := el.IsVisible(ctx)
			if err != nil || !visible {
				return false, err
			}
		}
		return true, nil
	},
}

// Waiter polls a driver at a fixed interval for a bounded time
type Waiter struct {
	driver   interfaces.Driver
	timeout  time.Duration
	interval time.Duration
}

// NewWaiter - creates new waiter bound to a driver session
func NewWaiter(driver interfaces.Driver, timeout, interval time.Duration) *Waiter {
	return &Waiter{
		driver:   driver,
		timeout:  timeout,
		interval: interval,
	}
}

// Timeout - returns the bound applied to every wait
func (w *Waiter) Timeout() time.Duration {
	return w.timeout
}

// Until - re-resolves selector until cond holds and returns the matched elements.
// Driver errors while polling are treated as "not yet" because the DOM may be
// mutating; the last one is reported in the TimeoutError.
func (w *Waiter) Until(ctx context.Context, selector entities.Selector, cond Condition) ([]interfaces.Element, error) {
	var (
		matched []interfaces.Element
		lastErr error
	)

	err := k8swait.PollUntilContextTimeout(ctx, w.interval, w.timeout, true, func(ctx context.Context) (bool, error) {
		elements, err := w.driver.FindAll(ctx, selector)
		if err != nil {
			lastErr = err
			return false, nil
		}
		ok, err := cond.Check(ctx, elements)
		if err != nil {
			lastErr = err
			return false, nil
		}
		if ok {
			matched = elements
		}
		return ok, nil
	})
	if err == nil {
		return matched, nil
	}

	if ctx.Err() != nil {
		return nil, fmt.Errorf("wait for %s canceled: %w", cond.Name, ctx.Err())
	}
	if k8swait.Interrupted(err) || errors.Is(err, context.DeadlineExceeded) {
		return nil, &entities.TimeoutError{
			Condition: cond.Name,
			Selector:  selector.String(),
			Timeout:   w.timeout,
			Last:      lastErr,
		}
	}
	return nil, err
}
