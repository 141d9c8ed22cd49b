// Package record persists the project's single version record.
package record

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrMissingRecord means no prior version record exists (or it is not
// readable). Advancing a version requires a record to already be in place.
var ErrMissingRecord = errors.New("missing version record")

// Store abstracts the version record so tests can substitute an in-memory
// implementation instead of touching a real file.
type Store interface {
	// Load returns the recorded version string, trimmed of surrounding
	// whitespace. Absent or unreadable records fail with ErrMissingRecord.
	Load() (string, error)

	// Save overwrites the record with v as a whole-file operation.
	Save(v string) error
}

// FileStore keeps the record as a single-line text file.
type FileStore struct {
	path string
}

// NewFileStore returns a FileStore for the given file path.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, fmt.Errorf("record: path is required")
	}
	return &FileStore{path: path}, nil
}

// Path returns the record file path.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrMissingRecord, s.path, err)
	}
	v := strings.TrimSpace(string(data))
	if v == "" {
		return "", fmt.Errorf("%w: %s: file is empty", ErrMissingRecord, s.path)
	}
	return v, nil
}

// Save writes the record atomically: the new content lands in a temp file in
// the same directory, then replaces the record in one rename. Readers never
// observe a partially written record.
func (s *FileStore) Save(v string) error {
	dir := filepath.Dir(s.path)

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("record: create temp: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(v + "\n"); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("record: write temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("record: close temp: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("record: chmod temp: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("record: replace %s: %w", s.path, err)
	}
	return nil
}
