// File: pad.go
// Title: Byte-Width Padding
// Description: Left and right padding with a single-byte pad character.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-03
// Modified: 2026-10-03
//
// Change History:
// - 2026-10-03 v0.1.0: Initial implementation

package fixedx

// padLeft prepends pad until s is at least width bytes long
func padLeft(s string, width int, pad byte) string {
	if len(s) >= width {
		return s
	}

	result := make([]byte, width)
	padCount := width - len(s)
	for i := 0; i < padCount; i++ {
		result[i] = pad
	}
	copy(result[padCount:], s)

	return string(result)
}

// padRight appends pad until s is at least width bytes long
func padRight(s string, width int, pad byte) string {
	if len(s) >= width {
		return s
	}

	result := make([]byte, width)
	copy(result, s)
	for i := len(s); i < width; i++ {
		result[i] = pad
	}

	return string(result)
}
