package pages

import (
	"context"

	"streampark_e2e/domain/entities"
)

// ApplicationForm is the "add application" form of the Flink applications page
type ApplicationForm struct {
	*Page
	selectors   FormSelectors
	transitions transitionTable
}

// NewApplicationForm - binds the form to a page
func NewApplicationForm(page *Page, selectors FormSelectors) *ApplicationForm {
	return &ApplicationForm{
		Page:        page,
		selectors:   selectors,
		transitions: transitions,
	}
}

// Plan returns the names of the UI steps AddApplication performs for params,
// or the UnsupportedVariantError it would fail with.
func (f *ApplicationForm) Plan(params entities.ApplicationParams) ([]string, error) {
	actions, err := f.transitions.lookup(params.DevelopmentMode, params.ExecutionMode)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(actions)+2)
	for _, action := range actions {
		names = append(names, action.name)
	}
	return append(names, "fill application name", "submit"), nil
}

// AddApplication fills the form for the chosen modes and submits it.
// The first failing step aborts the flow and its error is returned as is.
func (f *ApplicationForm) AddApplication(ctx context.Context, params entities.ApplicationParams) (*ApplicationForm, error) {
	actions, err := f.transitions.lookup(params.DevelopmentMode, params.ExecutionMode)
	if err != nil {
		return nil, err
	}

	for _, action := range actions {
		if err := action.run(ctx, f, params); err != nil {
			return nil, err
		}
	}

	if err := f.Fill(ctx, f.selectors.ApplicationName, params.Name); err != nil {
		return nil, err
	}

	if err := f.Click(ctx, f.selectors.Submit); err != nil {
		return nil, err
	}

	return f, nil
}

// Cancel - leaves the form without submitting
func (f *ApplicationForm) Cancel(ctx context.Context) (*ApplicationForm, error) {
	if err := f.Click(ctx, f.selectors.Cancel); err != nil {
		return nil, err
	}
	return f, nil
}
