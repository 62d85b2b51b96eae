// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across the poutil foundation.
//              Path codes describe why a validator rejected an input.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation with core error codes
// - 2026-10-14 v0.2.0: Added path validation codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Value conversion
	CodeInvalidFormat Code = "INVALID_FORMAT"

	// Path validation
	CodePathEmpty        Code = "PATH_EMPTY"
	CodePathReservedChar Code = "PATH_RESERVED_CHAR"
	CodePathEmptySegment Code = "PATH_EMPTY_SEGMENT"
	CodePathSeparator    Code = "PATH_SEPARATOR"
	CodePathComma        Code = "PATH_COMMA"
	CodePathRootNotFound Code = "PATH_ROOT_NOT_FOUND"
	CodePathStorage      Code = "PATH_STORAGE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeConfigError, CodeInvalidConfig,
		CodeInvalidFormat,
		CodePathEmpty, CodePathReservedChar, CodePathEmptySegment, CodePathSeparator,
		CodePathComma, CodePathRootNotFound, CodePathStorage:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	case CodeInvalidFormat:
		return "conversion"
	case CodePathEmpty, CodePathReservedChar, CodePathEmptySegment, CodePathSeparator,
		CodePathComma, CodePathRootNotFound, CodePathStorage:
		return "path"
	default:
		return "generic"
	}
}

// IsPath reports whether the code was produced by path validation
func (c Code) IsPath() bool {
	return c.Category() == "path"
}
