package pages

import (
	"fmt"

	"streampark_e2e/domain/entities"
)

// Dropdown binds an ant-design select: the button that opens it and the
// option set it renders.
type Dropdown struct {
	// Context names the dropdown in OptionNotFoundError, e.g. "Development mode"
	Context string
	Button  entities.Selector
	Options entities.Selector
}

// antSelect - builds the dropdown bound to the form item carrying codefield
func antSelect(context, codefield string) Dropdown {
	return Dropdown{
		Context: context,
		Button: entities.XPath(fmt.Sprintf(
			"//div[contains(@codefield, '%s')]//div[contains(@class, 'ant-select-selector')]", codefield)),
		Options: entities.CSS(fmt.Sprintf("[codefield=%s]", codefield)).
			Within(entities.ClassName("ant-select-item-option-content")),
	}
}

// FormSelectors are the selectors of the "add application" form
type FormSelectors struct {
	DevelopmentMode Dropdown
	ExecutionMode   Dropdown
	ApplicationName entities.Selector
	Submit          entities.Selector
	Cancel          entities.Selector
	FlinkSQLJob     FlinkSQLJobSelectors
}

// FlinkSQLJobSelectors are the selectors of the section shown for Flink SQL
// jobs deployed as a yarn application or yarn per-job
type FlinkSQLJobSelectors struct {
	FlinkVersion Dropdown
	Editor       entities.Selector
}

// DefaultFormSelectors - returns the selectors matching the StreamPark console markup
func DefaultFormSelectors() FormSelectors {
	return FormSelectors{
		DevelopmentMode: antSelect("Development mode", "jobType"),
		ExecutionMode:   antSelect("Execution mode", "executionMode"),
		ApplicationName: entities.ID("form_item_jobName"),
		Submit:          entities.XPath("//button[contains(@class, 'ant-btn')]//span[contains(text(), 'Submit')]"),
		Cancel:          entities.XPath("//button[contains(@class, 'ant-btn')]//span[contains(text(), 'Cancel')]"),
		FlinkSQLJob:     DefaultFlinkSQLJobSelectors(),
	}
}

// DefaultFlinkSQLJobSelectors - returns the selectors of the Flink SQL job section
func DefaultFlinkSQLJobSelectors() FlinkSQLJobSelectors {
	return FlinkSQLJobSelectors{
		FlinkVersion: antSelect("Flink version", "versionId"),
		Editor: entities.XPath("//label[contains(@for, 'form_item_flinkSql')]/../.." +
			"//div[contains(@class, 'monaco-editor')]//div[contains(@class, 'view-line')]"),
	}
}
