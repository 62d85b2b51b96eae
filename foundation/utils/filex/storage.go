// File: storage.go
// Title: Directory Existence Check
// Description: Storage wraps an afero filesystem and answers whether a path
//              names an existing directory. The OS filesystem is used in
//              production, an in-memory filesystem in tests.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-30
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-30 v0.1.0: Initial implementation on os.Stat
// - 2026-10-14 v0.2.0: Backed by afero.Fs

package filex

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/afero"
)

// Storage answers existence queries against a filesystem
type Storage struct {
	fs afero.Fs
}

// NewStorage creates a Storage over the given filesystem
func NewStorage(fs afero.Fs) *Storage {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Storage{fs: fs}
}

// NewOSStorage creates a Storage over the host filesystem
func NewOSStorage() *Storage {
	return NewStorage(afero.NewOsFs())
}

// Fs returns the underlying filesystem
func (s *Storage) Fs() afero.Fs {
	return s.fs
}

// DirExists reports whether path names an existing directory.
// A missing path is not an error; any other stat failure is returned.
func (s *Storage) DirExists(path string) (bool, error) {
	info, err := s.fs.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	return info.IsDir(), nil
}
