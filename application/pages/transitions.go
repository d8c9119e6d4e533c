package pages

import (
	"context"
	"fmt"

	"streampark_e2e/domain/entities"
)

// formAction is one named UI step of the "add application" flow
type formAction struct {
	name string
	run  func(ctx context.Context, f *ApplicationForm, params entities.ApplicationParams) error
}

var (
	selectDevelopmentMode = formAction{
		name: "select development mode",
		run: func(ctx context.Context, f *ApplicationForm, params entities.ApplicationParams) error {
			return f.SelectOptionByLabel(ctx, f.selectors.DevelopmentMode, params.DevelopmentMode.Label())
		},
	}

	selectExecutionMode = formAction{
		name: "select execution mode",
		run: func(ctx context.Context, f *ApplicationForm, params entities.ApplicationParams) error {
			return f.SelectOptionByLabel(ctx, f.selectors.ExecutionMode, params.ExecutionMode.Label())
		},
	}

	addFlinkSQLJob = formAction{
		name: "add flink sql job",
		run: func(ctx context.Context, f *ApplicationForm, params entities.ApplicationParams) error {
			_, err := NewFlinkSQLJobForm(f.Page, f.selectors.FlinkSQLJob).
				Add(ctx, params.FlinkVersion, params.Dynamic.FlinkSQL)
			return err
		},
	}
)

// route keys the table. Development modes without an execution mode
// sub-flow are keyed with ExecutionModeUnset.
type route struct {
	development entities.DevelopmentMode
	execution   entities.ExecutionMode
}

type transitionTable map[route][]formAction

func defaultTransitions() transitionTable {
	t := transitionTable{
		{entities.DevelopmentModeCustomCode, entities.ExecutionModeUnset}:  {selectDevelopmentMode},
		{entities.DevelopmentModePythonFlink, entities.ExecutionModeUnset}: {selectDevelopmentMode},
	}

	for _, exec := range []entities.ExecutionMode{
		entities.ExecutionModeRemote,
		entities.ExecutionModeYarnSession,
		entities.ExecutionModeKubernetesSession,
		entities.ExecutionModeKubernetesApplication,
	} {
		t[route{entities.DevelopmentModeFlinkSQL, exec}] = []formAction{selectDevelopmentMode, selectExecutionMode}
	}

	for _, exec := range []entities.ExecutionMode{
		entities.ExecutionModeYarnApplication,
		entities.ExecutionModeYarnPerJob,
	} {
		t[route{entities.DevelopmentModeFlinkSQL, exec}] = []formAction{selectDevelopmentMode, selectExecutionMode, addFlinkSQLJob}
	}

	return t
}

// validate checks that every development mode either needs no execution
// mode or handles every execution mode, and that no route names an
// undefined variant.
func (t transitionTable) validate() error {
	for r, actions := range t {
		if !r.development.IsValid() {
			return fmt.Errorf("transition for undefined development mode %s", r.development)
		}
		if r.execution != entities.ExecutionModeUnset && !r.execution.IsValid() {
			return fmt.Errorf("transition for undefined execution mode %s", r.execution)
		}
		if len(actions) == 0 {
			return fmt.Errorf("empty transition for %s / %s", r.development, r.execution)
		}
	}

	for _, dev := range entities.DevelopmentModes() {
		if _, ok := t[route{dev, entities.ExecutionModeUnset}]; ok {
			for _, exec := range entities.ExecutionModes() {
				if _, ok := t[route{dev, exec}]; ok {
					return fmt.Errorf("development mode %s has both a direct and a %s transition", dev, exec)
				}
			}
			continue
		}
		for _, exec := range entities.ExecutionModes() {
			if _, ok := t[route{dev, exec}]; !ok {
				return fmt.Errorf("no transition for %s / %s", dev, exec)
			}
		}
	}

	return nil
}

// lookup fails before any UI interaction when a variant has no route
func (t transitionTable) lookup(dev entities.DevelopmentMode, exec entities.ExecutionMode) ([]formAction, error) {
	if !dev.IsValid() {
		return nil, &entities.UnsupportedVariantError{Kind: "development mode", Value: dev.String()}
	}
	if actions, ok := t[route{dev, entities.ExecutionModeUnset}]; ok {
		return actions, nil
	}
	actions, ok := t[route{dev, exec}]
	if !ok {
		return nil, &entities.UnsupportedVariantError{Kind: "execution mode", Value: exec.String()}
	}
	return actions, nil
}

// CheckRoute reports the UnsupportedVariantError AddApplication would fail
// with for params, without a driver.
func CheckRoute(params entities.ApplicationParams) error {
	_, err := transitions.lookup(params.DevelopmentMode, params.ExecutionMode)
	return err
}

func mustValidate(t transitionTable) transitionTable {
	if err := t.validate(); err != nil {
		panic("pages: " + err.Error())
	}
	return t
}

var transitions = mustValidate(defaultTransitions())
