// Package audiostore manages temporary audio files for uploaded answers.
// Each upload is written to a uniquely named file and must be removed once
// the request that created it finishes, whatever the outcome.
package audiostore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

const defaultSuffix = ".webm"

// Store writes uploaded audio into a scratch directory.
type Store struct {
	dir string
}

// New creates a store rooted at dir. An empty dir uses the OS temp directory.
func New(dir string) (*Store, error) {
	if dir == "" {
		dir = os.TempDir()
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("audiostore: resolve dir: %w", err)
	}
	if err := os.MkdirAll(abs, 0o750); err != nil {
		return nil, fmt.Errorf("audiostore: create dir: %w", err)
	}
	return &Store{dir: abs}, nil
}

// Dir returns the scratch directory.
func (s *Store) Dir() string { return s.dir }

// Save writes the reader to a uniquely named file and returns its path.
// The suffix should carry the audio container extension (e.g. ".webm");
// an empty suffix defaults to ".webm".
func (s *Store) Save(reader io.Reader, suffix string) (string, error) {
	if suffix == "" {
		suffix = defaultSuffix
	}
	path := filepath.Join(s.dir, "answer-"+uuid.New().String()+suffix)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("audiostore: create file: %w", err)
	}

	if _, err := io.Copy(f, reader); err != nil {
		f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("audiostore: write file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("audiostore: close file: %w", err)
	}
	return path, nil
}

// Remove deletes a saved file. Returns nil if the file is already gone.
func (s *Store) Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("audiostore: remove file: %w", err)
	}
	return nil
}
