package entities

import (
	"fmt"
	"strings"
)

// DevelopmentMode is the "Development Mode" choice of the application form
type DevelopmentMode int

const (
	DevelopmentModeCustomCode DevelopmentMode = iota + 1
	DevelopmentModeFlinkSQL
	DevelopmentModePythonFlink
)

var developmentModeLabels = map[DevelopmentMode]string{
	DevelopmentModeCustomCode:  "custom code",
	DevelopmentModeFlinkSQL:    "flink sql",
	DevelopmentModePythonFlink: "python flink",
}

// DevelopmentModes - returns every defined development mode in declaration order
func DevelopmentModes() []DevelopmentMode {
	return []DevelopmentMode{
		DevelopmentModeCustomCode,
		DevelopmentModeFlinkSQL,
		DevelopmentModePythonFlink,
	}
}

// Label - returns the option text the UI renders for the mode
func (m DevelopmentMode) Label() string {
	return developmentModeLabels[m]
}

// IsValid reports whether m is one of the defined variants
func (m DevelopmentMode) IsValid() bool {
	_, ok := developmentModeLabels[m]
	return ok
}

func (m DevelopmentMode) String() string {
	if label, ok := developmentModeLabels[m]; ok {
		return label
	}
	return fmt.Sprintf("DevelopmentMode(%d)", int(m))
}

// ParseDevelopmentMode - finds the mode whose label equals s, ignoring case
func ParseDevelopmentMode(s string) (DevelopmentMode, error) {
	for _, m := range DevelopmentModes() {
		if strings.EqualFold(strings.TrimSpace(s), m.Label()) {
			return m, nil
		}
	}
	return 0, &UnsupportedVariantError{Kind: "development mode", Value: s}
}

// UnmarshalText allows scenario files to name the mode by its label
func (m *DevelopmentMode) UnmarshalText(text []byte) error {
	parsed, err := ParseDevelopmentMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MarshalText - encodes the mode as its label
func (m DevelopmentMode) MarshalText() ([]byte, error) {
	if !m.IsValid() {
		return nil, &UnsupportedVariantError{Kind: "development mode", Value: m.String()}
	}
	return []byte(m.Label()), nil
}

// ExecutionMode is the "Execution Mode" choice, shown for Flink SQL jobs.
// The zero value means no execution mode was chosen.
type ExecutionMode int

const (
	ExecutionModeUnset ExecutionMode = iota
	ExecutionModeRemote
	ExecutionModeYarnApplication
	ExecutionModeYarnSession
	ExecutionModeKubernetesSession
	ExecutionModeKubernetesApplication
	ExecutionModeYarnPerJob
)

var executionModeLabels = map[ExecutionMode]string{
	ExecutionModeRemote:                "remote",
	ExecutionModeYarnApplication:       "yarn application",
	ExecutionModeYarnSession:           "yarn session",
	ExecutionModeKubernetesSession:     "kubernetes session",
	ExecutionModeKubernetesApplication: "kubernetes application",
	ExecutionModeYarnPerJob:            "yarn per-job (deprecated, please use yarn-application mode)",
}

// ExecutionModes - returns every defined execution mode in declaration order, without ExecutionModeUnset
func ExecutionModes() []ExecutionMode {
	return []ExecutionMode{
		ExecutionModeRemote,
		ExecutionModeYarnApplication,
		ExecutionModeYarnSession,
		ExecutionModeKubernetesSession,
		ExecutionModeKubernetesApplication,
		ExecutionModeYarnPerJob,
	}
}

// Label - returns the option text the UI renders for the mode
func (m ExecutionMode) Label() string {
	return executionModeLabels[m]
}

// IsValid reports whether m is one of the defined variants
func (m ExecutionMode) IsValid() bool {
	_, ok := executionModeLabels[m]
	return ok
}

func (m ExecutionMode) String() string {
	if m == ExecutionModeUnset {
		return "unset"
	}
	if label, ok := executionModeLabels[m]; ok {
		return label
	}
	return fmt.Sprintf("ExecutionMode(%d)", int(m))
}

// ParseExecutionMode - finds the mode whose label equals s, ignoring case.
// An empty string yields ExecutionModeUnset.
func ParseExecutionMode(s string) (ExecutionMode, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ExecutionModeUnset, nil
	}
	for _, m := range ExecutionModes() {
		if strings.EqualFold(s, m.Label()) {
			return m, nil
		}
	}
	return 0, &UnsupportedVariantError{Kind: "execution mode", Value: s}
}

// UnmarshalText allows scenario files to name the mode by its label
func (m *ExecutionMode) UnmarshalText(text []byte) error {
	parsed, err := ParseExecutionMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MarshalText - encodes the mode as its label, unset as empty text
func (m ExecutionMode) MarshalText() ([]byte, error) {
	if m == ExecutionModeUnset {
		return []byte{}, nil
	}
	if !m.IsValid() {
		return nil, &UnsupportedVariantError{Kind: "execution mode", Value: m.String()}
	}
	return []byte(m.Label()), nil
}
