// Package filex provides the storage access used by the poutil foundation.
//
// Package: filex
// Title: Storage and Stream Helpers
// Description: A directory existence check backed by an afero filesystem and
//              a line splitter for buffered readers. These are the only places
//              the foundation touches storage.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-30
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-30 v0.1.0: Initial implementation
// - 2026-10-14 v0.2.0: Storage moved onto afero
//
// Usage:
//   storage := filex.NewOSStorage()
//   ok, err := storage.DirExists(`C:\`)
//
//   lines, err := filex.ReadAllLines(file, true)
package filex
