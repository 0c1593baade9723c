package export

import (
	"errors"
	"fmt"
)

// ErrUnknownForm is reported when a snapshot is requested for a form type
// the renderer has no layout for.
var ErrUnknownForm = errors.New("unknown form type")

// ExportError wraps a failure while snapshotting, rendering, or printing a
// form. Stage is one of "snapshot", "render", "print".
type ExportError struct {
	Form  string
	Stage string
	Err   error
}

func (e *ExportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("export %s (%s): %v", e.Form, e.Stage, e.Err)
	}
	return fmt.Sprintf("export %s (%s)", e.Form, e.Stage)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// NewExportError creates a new ExportError.
func NewExportError(form, stage string, err error) *ExportError {
	return &ExportError{Form: form, Stage: stage, Err: err}
}
