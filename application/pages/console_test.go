package pages

import (
	"strings"
	"testing"
	"time"

	"streampark_e2e/application/wait"
	"streampark_e2e/domain/entities"
	"streampark_e2e/infrastructure/browser/browsertest"
)

// console renders the "add application" form on the in-memory driver. The
// option sets only appear after their dropdown is clicked, and the Flink SQL
// job section only after a yarn application or yarn per-job mode is chosen.
type console struct {
	driver *browsertest.Driver
	page   *Page
	form   *ApplicationForm

	developmentButton *browsertest.Element
	executionButton   *browsertest.Element
	versionButton     *browsertest.Element
	editor            *browsertest.Element
	name              *browsertest.Element
	submit            *browsertest.Element
	cancel            *browsertest.Element

	developmentOptions map[string]*browsertest.Element
	executionOptions   map[string]*browsertest.Element
	versionOptions     map[string]*browsertest.Element
}

func newConsole(tb testing.TB, flinkVersions ...string) *console {
	tb.Helper()

	if len(flinkVersions) == 0 {
		flinkVersions = []string{"1.13", "1.14", "1.16"}
	}

	driver := browsertest.NewDriver()
	page := NewPage(driver, wait.NewWaiter(driver, 200*time.Millisecond, 2*time.Millisecond))
	sel := DefaultFormSelectors()

	c := &console{
		driver: driver,
		page:   page,
		form:   NewApplicationForm(page, sel),
		name:   browsertest.NewElement("application-name", ""),
		submit: browsertest.NewElement("submit", "Submit"),
		cancel: browsertest.NewElement("cancel", "Cancel"),
		editor: browsertest.NewElement("flink-sql-editor", ""),
	}

	var devLabels []string
	for _, m := range entities.DevelopmentModes() {
		devLabels = append(devLabels, m.Label())
	}
	var execLabels []string
	for _, m := range entities.ExecutionModes() {
		execLabels = append(execLabels, m.Label())
	}

	c.developmentButton, c.developmentOptions = c.dropdown(sel.DevelopmentMode, "development-mode", devLabels)
	c.executionButton, c.executionOptions = c.dropdown(sel.ExecutionMode, "execution-mode", execLabels)

	versionDropdown := sel.FlinkSQLJob.FlinkVersion
	c.versionButton, c.versionOptions = c.dropdown(versionDropdown, "flink-version", flinkVersions)
	driver.Set(versionDropdown.Button)

	showJobSection := func() {
		driver.Set(versionDropdown.Button, c.versionButton)
		driver.Set(sel.FlinkSQLJob.Editor, c.editor)
	}
	c.executionOptions[entities.ExecutionModeYarnApplication.Label()].OnClick(showJobSection)
	c.executionOptions[entities.ExecutionModeYarnPerJob.Label()].OnClick(showJobSection)

	driver.Set(sel.ApplicationName, c.name)
	driver.Set(sel.Submit, c.submit)
	driver.Set(sel.Cancel, c.cancel)

	return c
}

func (c *console) dropdown(d Dropdown, name string, labels []string) (*browsertest.Element, map[string]*browsertest.Element) {
	options := make(map[string]*browsertest.Element, len(labels))
	ordered := make([]*browsertest.Element, 0, len(labels))
	for _, label := range labels {
		el := browsertest.NewElement(name+"-option-"+label, rendered(label))
		options[label] = el
		ordered = append(ordered, el)
	}

	button := browsertest.NewElement(name, "").OnClick(func() {
		c.driver.Set(d.Options, ordered...)
	})
	c.driver.Set(d.Button, button)

	return button, options
}

// rendered capitalises the first letter the way the console shows option text
func rendered(label string) string {
	if label == "" {
		return label
	}
	return strings.ToUpper(label[:1]) + label[1:]
}

func indexOf(events []string, event string) int {
	for i, e := range events {
		if e == event {
			return i
		}
	}
	return -1
}
