// File: lines.go
// Title: Line Splitting
// Description: Reads everything that is left in a stream and splits it into
//              lines the way a text editor would show them.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-30
// Modified: 2026-09-30
//
// Change History:
// - 2026-09-30 v0.1.0: Initial implementation

package filex

import (
	"fmt"
	"io"
	"strings"
)

// ReadAllLines reads all remaining content of r and splits it on '\n'.
// With fromBeginning set, r is rewound first. A final empty line (after
// trimming '\r') is dropped; '\r' on other lines is kept.
func ReadAllLines(r io.ReadSeeker, fromBeginning bool) ([]string, error) {
	if fromBeginning {
		if _, err := r.Seek(0, io.SeekStart); err != nil {
			return nil, fmt.Errorf("failed to rewind stream: %w", err)
		}
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read stream: %w", err)
	}

	lines := strings.Split(string(data), "\n")
	if strings.TrimRight(lines[len(lines)-1], "\r") == "" {
		lines = lines[:len(lines)-1]
	}

	return lines, nil
}

// ReadFileLines opens path on the storage filesystem and returns its lines
func (s *Storage) ReadFileLines(path string) ([]string, error) {
	f, err := s.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer f.Close()

	return ReadAllLines(f, false)
}
