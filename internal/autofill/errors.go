package autofill

import "fmt"

// FillError wraps a failure while auto-filling from one document.
type FillError struct {
	FileName string
	Err      error
}

func (e *FillError) Error() string {
	return fmt.Sprintf("auto-fill failed for %s: %v", e.FileName, e.Err)
}

func (e *FillError) Unwrap() error {
	return e.Err
}

// NewFillError creates a new FillError.
func NewFillError(fileName string, err error) *FillError {
	return &FillError{FileName: fileName, Err: err}
}
