package entities

import "time"

// Scenario is a named, ordered list of steps run against one driver session
type Scenario struct {
	Name  string         `json:"name" yaml:"name"`
	Steps []ScenarioStep `json:"steps" yaml:"steps"`
}

// RunStatus represents the status of a scenario run
type RunStatus string

const (
	RunStatusPending    RunStatus = "pending"
	RunStatusInProgress RunStatus = "in_progress"
	RunStatusPassed     RunStatus = "passed"
	RunStatusFailed     RunStatus = "failed"
)

// RunReport is the persisted record of one scenario run
type RunReport struct {
	ID         string       `json:"id"`
	Scenario   string       `json:"scenario"`
	Driver     string       `json:"driver"`
	Status     RunStatus    `json:"status"`
	StartedAt  time.Time    `json:"started_at"`
	FinishedAt time.Time    `json:"finished_at"`
	Steps      []StepResult `json:"steps"`
	Error      string       `json:"error,omitempty"`
}
