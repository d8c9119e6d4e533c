package entities

import (
	"fmt"
	"strings"
	"time"
)

// TimeoutError is returned when a required UI state did not appear in time
type TimeoutError struct {
	Condition string
	Selector  string
	Timeout   time.Duration
	// Last is the last driver error seen while polling, if any
	Last error
}

func (e *TimeoutError) Error() string {
	msg := fmt.Sprintf("timed out after %s waiting for %s: %s", e.Timeout, e.Condition, e.Selector)
	if e.Last != nil {
		msg += fmt.Sprintf(" (last error: %v)", e.Last)
	}
	return msg
}

func (e *TimeoutError) Unwrap() error {
	return e.Last
}

// OptionNotFoundError is returned when no rendered option matches the requested label
type OptionNotFoundError struct {
	Context   string
	Label     string
	Available []string
}

func (e *OptionNotFoundError) Error() string {
	msg := fmt.Sprintf("%s not found: %s", e.Context, e.Label)
	if len(e.Available) > 0 {
		msg += fmt.Sprintf(" (available: %s)", strings.Join(e.Available, ", "))
	}
	return msg
}

// UnsupportedVariantError is returned for an enum value with no defined handling
type UnsupportedVariantError struct {
	Kind  string
	Value string
}

func (e *UnsupportedVariantError) Error() string {
	return fmt.Sprintf("unknown %s: %s", e.Kind, e.Value)
}
