package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectorWithinDoesNotMutate(t *testing.T) {
	base := CSS("[codefield=jobType]")
	options := base.Within(ClassName("ant-select-item-option-content"))
	other := base.Within(ClassName("ant-select-item-option-active"))

	assert.Equal(t, "css=[codefield=jobType]", base.String())
	assert.Equal(t, "css=[codefield=jobType] >> class=ant-select-item-option-content", options.String())
	assert.Equal(t, "css=[codefield=jobType] >> class=ant-select-item-option-active", other.String())
}

func TestSelectorStepsIsACopy(t *testing.T) {
	s := ID("form_item_jobName")
	steps := s.Steps()
	steps[0].Value = "changed"

	assert.Equal(t, []Step{{Strategy: ByID, Value: "form_item_jobName"}}, s.Steps())
	assert.False(t, s.IsZero())
	assert.True(t, Selector{}.IsZero())
	assert.Equal(t, "xpath=//div", XPath("//div").String())
}
