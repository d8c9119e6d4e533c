package pages

import (
	"context"
	"errors"
	"testing"

	"streampark_e2e/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddApplicationFlinkSQLYarnApplication(t *testing.T) {
	c := newConsole(t)

	form, err := c.form.AddApplication(context.Background(), entities.ApplicationParams{
		DevelopmentMode: entities.DevelopmentModeFlinkSQL,
		ExecutionMode:   entities.ExecutionModeYarnApplication,
		Name:            "job1",
		FlinkVersion:    "1.14",
		Dynamic:         entities.DynamicParams{FlinkSQL: "select 1"},
	})
	require.NoError(t, err)
	assert.Same(t, c.form, form)

	assert.Equal(t, []string{
		"click development-mode",
		"click development-mode-option-flink sql",
		"click execution-mode",
		"click execution-mode-option-yarn application",
		"click flink-version",
		"click flink-version-option-1.14",
		`type flink-sql-editor "select 1"`,
		`fill application-name "job1"`,
		"click submit",
	}, c.driver.Events())

	assert.Equal(t, 1, c.versionOptions["1.14"].Clicks())
	assert.Equal(t, "select 1", c.editor.Typed())
	assert.Equal(t, "job1", c.name.Value())
	assert.Equal(t, 1, c.submit.Clicks())
}

func TestAddApplicationCustomCode(t *testing.T) {
	c := newConsole(t)

	_, err := c.form.AddApplication(context.Background(), entities.ApplicationParams{
		DevelopmentMode: entities.DevelopmentModeCustomCode,
		// ignored: custom code has no execution mode sub-flow
		ExecutionMode: entities.ExecutionModeYarnApplication,
		Name:          "job2",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"click development-mode",
		"click development-mode-option-custom code",
		`fill application-name "job2"`,
		"click submit",
	}, c.driver.Events())
	assert.Equal(t, 0, c.executionButton.Clicks())
	assert.Equal(t, 1, c.submit.Clicks())
}

func TestAddApplicationEveryRoute(t *testing.T) {
	nested := map[entities.ExecutionMode]bool{
		entities.ExecutionModeYarnApplication: true,
		entities.ExecutionModeYarnPerJob:      true,
	}

	for _, exec := range entities.ExecutionModes() {
		t.Run("flink sql/"+exec.String(), func(t *testing.T) {
			c := newConsole(t)

			_, err := c.form.AddApplication(context.Background(), entities.ApplicationParams{
				DevelopmentMode: entities.DevelopmentModeFlinkSQL,
				ExecutionMode:   exec,
				Name:            "sql-job",
				FlinkVersion:    "1.16",
				Dynamic:         entities.DynamicParams{FlinkSQL: "insert into sink select * from source"},
			})
			require.NoError(t, err)

			events := c.driver.Events()
			selected := indexOf(events, "click execution-mode-option-"+exec.Label())
			typed := indexOf(events, `type flink-sql-editor "insert into sink select * from source"`)
			submitted := indexOf(events, "click submit")
			require.NotEqual(t, -1, selected)
			require.NotEqual(t, -1, submitted)

			if nested[exec] {
				assert.Equal(t, 1, c.editor.Clicks(), "editor must be filled exactly once")
				assert.Greater(t, typed, selected)
				assert.Less(t, typed, submitted)
			} else {
				assert.Equal(t, -1, typed)
				assert.Equal(t, 0, c.versionButton.Clicks())
			}
			assert.Equal(t, 1, c.submit.Clicks())
		})
	}

	for _, dev := range []entities.DevelopmentMode{entities.DevelopmentModeCustomCode, entities.DevelopmentModePythonFlink} {
		t.Run(dev.String(), func(t *testing.T) {
			c := newConsole(t)

			_, err := c.form.AddApplication(context.Background(), entities.ApplicationParams{
				DevelopmentMode: dev,
				Name:            "app",
			})
			require.NoError(t, err)
			assert.Equal(t, 1, c.developmentOptions[dev.Label()].Clicks())
			assert.Equal(t, 0, c.executionButton.Clicks())
			assert.Equal(t, 1, c.submit.Clicks())
		})
	}
}

func TestAddApplicationUnsupportedVariant(t *testing.T) {
	tests := []struct {
		name   string
		params entities.ApplicationParams
		kind   string
	}{
		{
			name:   "zero development mode",
			params: entities.ApplicationParams{Name: "x"},
			kind:   "development mode",
		},
		{
			name:   "undefined development mode",
			params: entities.ApplicationParams{DevelopmentMode: entities.DevelopmentMode(42), Name: "x"},
			kind:   "development mode",
		},
		{
			name:   "flink sql without execution mode",
			params: entities.ApplicationParams{DevelopmentMode: entities.DevelopmentModeFlinkSQL, Name: "x"},
			kind:   "execution mode",
		},
		{
			name: "flink sql with undefined execution mode",
			params: entities.ApplicationParams{
				DevelopmentMode: entities.DevelopmentModeFlinkSQL,
				ExecutionMode:   entities.ExecutionMode(42),
				Name:            "x",
			},
			kind: "execution mode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newConsole(t)

			_, err := c.form.AddApplication(context.Background(), tt.params)

			var unsupported *entities.UnsupportedVariantError
			require.True(t, errors.As(err, &unsupported), "got %v", err)
			assert.Equal(t, tt.kind, unsupported.Kind)
			assert.Empty(t, c.driver.Events(), "no UI interaction may happen")
		})
	}
}

func TestAddApplicationAbortsOnMissingFlinkVersion(t *testing.T) {
	c := newConsole(t, "1.13", "1.14")

	_, err := c.form.AddApplication(context.Background(), entities.ApplicationParams{
		DevelopmentMode: entities.DevelopmentModeFlinkSQL,
		ExecutionMode:   entities.ExecutionModeYarnPerJob,
		Name:            "job3",
		FlinkVersion:    "1.18",
		Dynamic:         entities.DynamicParams{FlinkSQL: "select 1"},
	})

	var notFound *entities.OptionNotFoundError
	require.True(t, errors.As(err, &notFound), "got %v", err)
	assert.Equal(t, "Flink version", notFound.Context)
	assert.Equal(t, "1.18", notFound.Label)

	assert.Empty(t, c.editor.Typed())
	assert.Empty(t, c.name.Value())
	assert.Equal(t, 0, c.submit.Clicks())
}

func TestAddApplicationMissingSubmitButton(t *testing.T) {
	c := newConsole(t)
	c.driver.Set(DefaultFormSelectors().Submit)

	_, err := c.form.AddApplication(context.Background(), entities.ApplicationParams{
		DevelopmentMode: entities.DevelopmentModePythonFlink,
		Name:            "py",
	})

	var timeout *entities.TimeoutError
	require.True(t, errors.As(err, &timeout), "got %v", err)
	assert.Equal(t, "py", c.name.Value())
}

func TestPlan(t *testing.T) {
	c := newConsole(t)

	steps, err := c.form.Plan(entities.ApplicationParams{
		DevelopmentMode: entities.DevelopmentModeFlinkSQL,
		ExecutionMode:   entities.ExecutionModeYarnApplication,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"select development mode",
		"select execution mode",
		"add flink sql job",
		"fill application name",
		"submit",
	}, steps)

	steps, err = c.form.Plan(entities.ApplicationParams{DevelopmentMode: entities.DevelopmentModeCustomCode})
	require.NoError(t, err)
	assert.Equal(t, []string{"select development mode", "fill application name", "submit"}, steps)

	_, err = c.form.Plan(entities.ApplicationParams{DevelopmentMode: entities.DevelopmentModeFlinkSQL})
	var unsupported *entities.UnsupportedVariantError
	assert.True(t, errors.As(err, &unsupported))
}

func TestCancel(t *testing.T) {
	c := newConsole(t)

	form, err := c.form.Cancel(context.Background())
	require.NoError(t, err)
	assert.Same(t, c.form, form)
	assert.Equal(t, []string{"click cancel"}, c.driver.Events())
}
