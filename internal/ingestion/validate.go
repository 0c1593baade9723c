// Package ingestion validates and normalizes uploaded documents before they
// reach extraction: file type and size checks, filename sanitization, and
// plain-text recovery from the formats the dashboard accepts.
package ingestion

import (
	"path/filepath"
	"strings"
)

// Upload constraints.
const (
	DefaultMaxFileSizeMB    = 10
	DefaultMaxFilesPerBatch = 10
)

// AllowedExtensions lists the file types the dashboard accepts, lowercase
// and without the dot.
var AllowedExtensions = []string{"pdf", "doc", "docx", "txt", "html", "htm"}

// ValidateFile checks one file's name, extension, size, and non-emptiness.
// maxSizeMB of 0 falls back to the default limit.
func ValidateFile(fileName string, size int64, maxSizeMB int) error {
	if strings.TrimSpace(fileName) == "" {
		return NewUploadError(fileName, "file name is empty")
	}
	if size == 0 {
		return NewUploadError(fileName, "file is empty")
	}

	if maxSizeMB <= 0 {
		maxSizeMB = DefaultMaxFileSizeMB
	}
	if size > int64(maxSizeMB)*1024*1024 {
		return NewUploadError(fileName, "file exceeds size limit")
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileName), "."))
	for _, allowed := range AllowedExtensions {
		if ext == allowed {
			return nil
		}
	}
	return NewUploadError(fileName, "unsupported file type ."+ext)
}

// ValidateBatch checks the batch-level constraint. maxFiles of 0 falls back
// to the default limit.
func ValidateBatch(count, maxFiles int) error {
	if count == 0 {
		return NewUploadError("", "batch contains no files")
	}
	if maxFiles <= 0 {
		maxFiles = DefaultMaxFilesPerBatch
	}
	if count > maxFiles {
		return NewUploadError("", "too many files in one batch")
	}
	return nil
}
