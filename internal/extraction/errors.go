package extraction

import "fmt"

// ExtractionError wraps a failure while extracting one document.
type ExtractionError struct {
	FileName string
	Stage    string // "generate", "parse", "decode"
	Err      error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction failed for %s at %s: %v", e.FileName, e.Stage, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(fileName, stage string, err error) *ExtractionError {
	return &ExtractionError{FileName: fileName, Stage: stage, Err: err}
}
