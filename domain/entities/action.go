package entities

// ActionType represents the type of step a scenario can perform
type ActionType string

const (
	ActionNavigate          ActionType = "navigate"
	ActionAddApplication    ActionType = "add_application"
	ActionCancelApplication ActionType = "cancel_application"
)

// ScenarioStep represents a single step of a scenario
type ScenarioStep struct {
	Action      ActionType         `json:"action" yaml:"action"`
	URL         string             `json:"url,omitempty" yaml:"url,omitempty"`
	Application *ApplicationParams `json:"application,omitempty" yaml:"application,omitempty"`
	Description string             `json:"description,omitempty" yaml:"description,omitempty"`
}

// StepResult represents the outcome of a single step
type StepResult struct {
	Action     ActionType `json:"action"`
	Success    bool       `json:"success"`
	Error      string     `json:"error,omitempty"`
	DurationMS int64      `json:"duration_ms"`
}
