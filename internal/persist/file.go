package persist

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileKV stores each key as a JSON file under a base directory. It is the
// default backend for local single-user sessions.
type FileKV struct {
	dir string
}

// NewFileKV creates the base directory if needed and returns the store.
func NewFileKV(dir string) (*FileKV, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}
	return &FileKV{dir: dir}, nil
}

// Put writes the value via a temp-file rename so a crash mid-write never
// leaves a truncated blob.
func (f *FileKV) Put(_ context.Context, key string, value []byte) error {
	path := f.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, value, 0644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to commit state file: %w", err)
	}
	return nil
}

// Get returns the stored value, or nil when the key has never been written.
func (f *FileKV) Get(_ context.Context, key string) ([]byte, error) {
	raw, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}
	return raw, nil
}

// Close is a no-op for the file backend.
func (f *FileKV) Close() error { return nil }

func (f *FileKV) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}
