package entities

// DynamicParams holds the values of form sections that only some modes render
type DynamicParams struct {
	FlinkSQL string `json:"flink_sql,omitempty" yaml:"flink_sql,omitempty"`
}

// ApplicationParams is everything the user enters into the "add application" form
type ApplicationParams struct {
	DevelopmentMode DevelopmentMode `json:"development_mode" yaml:"development_mode"`
	ExecutionMode   ExecutionMode   `json:"execution_mode,omitempty" yaml:"execution_mode,omitempty"`
	Name            string          `json:"name" yaml:"name"`
	FlinkVersion    string          `json:"flink_version,omitempty" yaml:"flink_version,omitempty"`
	Dynamic         DynamicParams   `json:"dynamic,omitempty" yaml:"dynamic,omitempty"`
}
