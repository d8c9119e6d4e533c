package wait

import (
	"context"
	"errors"
	"testing"
	"time"

	"streampark_e2e/domain/entities"
	"streampark_e2e/infrastructure/browser/browsertest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var options = entities.CSS("[codefield=jobType]").Within(entities.ClassName("ant-select-item-option-content"))

func TestUntilReturnsAsSoonAsConditionHolds(t *testing.T) {
	driver := browsertest.NewDriver()
	a := browsertest.NewElement("a", "custom code")
	b := browsertest.NewElement("b", "flink sql")
	driver.Set(options, a, b)

	w := NewWaiter(driver, time.Second, 10*time.Millisecond)
	start := time.Now()
	elements, err := w.Until(context.Background(), options, AllVisible)
	require.NoError(t, err)
	assert.Len(t, elements, 2)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestUntilPollsUntilElementsRender(t *testing.T) {
	driver := browsertest.NewDriver()
	hidden := browsertest.NewElement("a", "custom code").SetVisible(false)
	driver.Set(options, hidden)

	w := NewWaiter(driver, 2*time.Second, 5*time.Millisecond)

	done := make(chan struct{})
	go func() {
		defer close(done)
		time.Sleep(50 * time.Millisecond)
		hidden.SetVisible(true)
	}()

	elements, err := w.Until(context.Background(), options, Visible)
	<-done
	require.NoError(t, err)
	require.Len(t, elements, 1)
}

func TestUntilTimeout(t *testing.T) {
	driver := browsertest.NewDriver()
	w := NewWaiter(driver, 50*time.Millisecond, 5*time.Millisecond)

	_, err := w.Until(context.Background(), options, AllVisible)

	var timeout *entities.TimeoutError
	require.True(t, errors.As(err, &timeout), "got %v", err)
	assert.Equal(t, "visibility of all elements", timeout.Condition)
	assert.Equal(t, options.String(), timeout.Selector)
	assert.Equal(t, 50*time.Millisecond, timeout.Timeout)
	assert.Nil(t, timeout.Last)
	assert.Contains(t, err.Error(), "timed out after 50ms waiting for visibility of all elements")
}

func TestUntilTimeoutKeepsLastDriverError(t *testing.T) {
	driver := browsertest.NewDriver()
	staleErr := errors.New("stale element reference")
	driver.FailFind(options, staleErr)
	w := NewWaiter(driver, 30*time.Millisecond, 5*time.Millisecond)

	_, err := w.Until(context.Background(), options, Visible)

	var timeout *entities.TimeoutError
	require.True(t, errors.As(err, &timeout), "got %v", err)
	assert.ErrorIs(t, err, staleErr)
}

func TestUntilCanceled(t *testing.T) {
	driver := browsertest.NewDriver()
	w := NewWaiter(driver, time.Minute, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := w.Until(ctx, options, Visible)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)

	var timeout *entities.TimeoutError
	assert.False(t, errors.As(err, &timeout))
}

func TestConditions(t *testing.T) {
	ctx := context.Background()
	visible := browsertest.NewElement("visible", "")
	hidden := browsertest.NewElement("hidden", "").SetVisible(false)
	disabled := browsertest.NewElement("disabled", "").SetEnabled(false)

	tests := []struct {
		name     string
		cond     Condition
		elements []*browsertest.Element
		want     bool
	}{
		{"visible empty", Visible, nil, false},
		{"visible first", Visible, []*browsertest.Element{visible, hidden}, true},
		{"visible hidden first", Visible, []*browsertest.Element{hidden, visible}, false},
		{"clickable", Clickable, []*browsertest.Element{visible}, true},
		{"clickable disabled", Clickable, []*browsertest.Element{disabled}, false},
		{"clickable hidden", Clickable, []*browsertest.Element{hidden}, false},
		{"all visible empty", AllVisible, nil, false},
		{"all visible", AllVisible, []*browsertest.Element{visible, disabled}, true},
		{"all visible one hidden", AllVisible, []*browsertest.Element{visible, hidden}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			driver := browsertest.NewDriver()
			driver.Set(options, tt.elements...)
			elements, err := driver.FindAll(ctx, options)
			require.NoError(t, err)

			got, err := tt.cond.Check(ctx, elements)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
