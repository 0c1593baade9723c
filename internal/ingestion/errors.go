package ingestion

import "fmt"

// UploadError reports a rejected upload. FileName is empty for batch-level
// rejections.
type UploadError struct {
	FileName string
	Reason   string
}

func (e *UploadError) Error() string {
	if e.FileName == "" {
		return fmt.Sprintf("upload rejected: %s", e.Reason)
	}
	return fmt.Sprintf("upload rejected for %s: %s", e.FileName, e.Reason)
}

// NewUploadError creates a new UploadError.
func NewUploadError(fileName, reason string) *UploadError {
	return &UploadError{FileName: fileName, Reason: reason}
}
