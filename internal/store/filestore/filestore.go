// Package filestore provides a byte store backed by a directory of files.
//
// It works against any afero filesystem, so tests can run on an in-memory
// one while the CLI uses the real OS filesystem.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"csvtable/internal/store"
)

// Store maps resource names to files under a root directory.
type Store struct {
	fs   afero.Fs
	root string
}

// New creates a file store rooted at root, creating the directory if needed.
func New(fsys afero.Fs, root string) (*Store, error) {
	if err := fsys.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("filestore: create root: %w", err)
	}
	return &Store{fs: fsys, root: root}, nil
}

// NewOS creates a file store on the real filesystem.
func NewOS(root string) (*Store, error) {
	return New(afero.NewOsFs(), root)
}

// path maps a resource name to a file path under the root.
func (s *Store) path(name string) (string, error) {
	// Reject names that could escape the root.
	if name == "" || strings.Contains(name, "..") {
		return "", fmt.Errorf("filestore: invalid resource name %q", name)
	}
	return filepath.Join(s.root, name), nil
}

func (s *Store) ReadAll(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path, err := s.path(name)
	if err != nil {
		return "", err
	}

	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%s: %w", name, store.ErrNotExist)
		}
		return "", fmt.Errorf("filestore: read %s: %w", name, err)
	}
	return string(data), nil
}

// WriteAll writes to a temporary file in the root and renames it into place,
// so readers never observe a partially written resource.
func (s *Store) WriteAll(ctx context.Context, name string, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.path(name)
	if err != nil {
		return err
	}

	tmp, err := afero.TempFile(s.fs, s.root, ".write-*")
	if err != nil {
		return fmt.Errorf("filestore: create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		s.fs.Remove(tmpName)
		return fmt.Errorf("filestore: write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		s.fs.Remove(tmpName)
		return fmt.Errorf("filestore: close temp file: %w", err)
	}
	if err := s.fs.Rename(tmpName, path); err != nil {
		s.fs.Remove(tmpName)
		return fmt.Errorf("filestore: rename into %s: %w", name, err)
	}
	return nil
}
