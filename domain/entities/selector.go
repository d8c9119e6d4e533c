package entities

import "strings"

// Strategy tells the driver how to interpret a selector step
type Strategy string

const (
	ByCSS       Strategy = "css"
	ByXPath     Strategy = "xpath"
	ByID        Strategy = "id"
	ByClassName Strategy = "class"
)

// Step is one lookup in a selector chain
type Step struct {
	Strategy Strategy `json:"strategy" yaml:"strategy"`
	Value    string   `json:"value" yaml:"value"`
}

// Selector describes zero or more elements. Each step after the first is
// resolved inside the elements matched by the previous one.
//
// A Selector is a value: Within never mutates the receiver.
type Selector struct {
	steps []Step
}

// CSS - creates selector by CSS expression
func CSS(value string) Selector { return newSelector(ByCSS, value) }

// XPath - creates selector by XPath expression
func XPath(value string) Selector { return newSelector(ByXPath, value) }

// ID - creates selector by element id
func ID(value string) Selector { return newSelector(ByID, value) }

// ClassName - creates selector by a single class name
func ClassName(value string) Selector { return newSelector(ByClassName, value) }

func newSelector(strategy Strategy, value string) Selector {
	return Selector{steps: []Step{{Strategy: strategy, Value: value}}}
}

// Within - returns a selector matching inner inside the elements matched by s
func (s Selector) Within(inner Selector) Selector {
	steps := make([]Step, 0, len(s.steps)+len(inner.steps))
	steps = append(steps, s.steps...)
	steps = append(steps, inner.steps...)
	return Selector{steps: steps}
}

// Steps - returns a copy of the lookup chain
func (s Selector) Steps() []Step {
	out := make([]Step, len(s.steps))
	copy(out, s.steps)
	return out
}

// IsZero reports whether the selector has no steps
func (s Selector) IsZero() bool {
	return len(s.steps) == 0
}

// String - returns a stable, human readable form, e.g. css=[codefield=jobType] >> class=ant-select-item-option-content
func (s Selector) String() string {
	parts := make([]string, len(s.steps))
	for i, step := range s.steps {
		parts[i] = string(step.Strategy) + "=" + step.Value
	}
	return strings.Join(parts, " >> ")
}
