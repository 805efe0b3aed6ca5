package cache

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultDir is where summaries live unless configured otherwise.
const DefaultDir = "uploaded_data/summaries"

// FileStore keeps one plain text file per pair. Any file present at an
// entry path is treated as a valid summary.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	if dir = strings.TrimSpace(dir); dir == "" {
		dir = DefaultDir
	}
	return &FileStore{dir: dir}
}

// Dir returns the cache directory.
func (s *FileStore) Dir() string { return s.dir }

// Path returns the file that holds the summary of a pair.
func (s *FileStore) Path(jdID, resume string) string {
	return filepath.Join(s.dir, Key(jdID, resume)+".txt")
}

func (s *FileStore) Get(_ context.Context, jdID, resume string) (string, error) {
	data, err := os.ReadFile(s.Path(jdID, resume))
	if errors.Is(err, fs.ErrNotExist) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("read cached summary: %w", err)
	}
	return string(data), nil
}

func (s *FileStore) Put(_ context.Context, jdID, resume, summary string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}
	if err := os.WriteFile(s.Path(jdID, resume), []byte(summary), 0o644); err != nil {
		return fmt.Errorf("write cached summary: %w", err)
	}
	return nil
}

// Clear removes the cache directory and recreates it empty.
func (s *FileStore) Clear(_ context.Context) error {
	if err := os.RemoveAll(s.dir); err != nil {
		return fmt.Errorf("remove cache dir: %w", err)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}
	return nil
}
