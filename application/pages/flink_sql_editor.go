package pages

import (
	"context"

	"streampark_e2e/domain/entities"
)

// FlinkSQLEditor is the monaco editor of the "Flink SQL" form item
type FlinkSQLEditor struct {
	*Page
	editor entities.Selector
}

// NewFlinkSQLEditor - binds the editor to a page
func NewFlinkSQLEditor(page *Page, editor entities.Selector) *FlinkSQLEditor {
	return &FlinkSQLEditor{
		Page:   page,
		editor: editor,
	}
}

// Content - focuses the editor and types content into it
func (e *FlinkSQLEditor) Content(ctx context.Context, content string) (*FlinkSQLEditor, error) {
	if err := e.Type(ctx, e.editor, content); err != nil {
		return nil, err
	}
	return e, nil
}
