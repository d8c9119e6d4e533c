package pages

import (
	"context"
)

// FlinkSQLJobForm is the section rendered for Flink SQL jobs running as a
// yarn application or yarn per-job: a Flink version and the SQL itself.
type FlinkSQLJobForm struct {
	*Page
	selectors FlinkSQLJobSelectors
}

// NewFlinkSQLJobForm - binds the section to a page
func NewFlinkSQLJobForm(page *Page, selectors FlinkSQLJobSelectors) *FlinkSQLJobForm {
	return &FlinkSQLJobForm{
		Page:      page,
		selectors: selectors,
	}
}

// Add - selects the Flink version and enters the job SQL
func (f *FlinkSQLJobForm) Add(ctx context.Context, flinkVersion, flinkSQL string) (*FlinkSQLJobForm, error) {
	if err := f.SelectOptionByLabel(ctx, f.selectors.FlinkVersion, flinkVersion); err != nil {
		return nil, err
	}

	if _, err := NewFlinkSQLEditor(f.Page, f.selectors.Editor).Content(ctx, flinkSQL); err != nil {
		return nil, err
	}

	return f, nil
}
