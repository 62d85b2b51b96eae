// File: rules.go
// Title: Reserved Character Tables
// Description: The separator and reserved character sets a Validator checks
//              against.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-02
// Modified: 2026-10-02
//
// Change History:
// - 2026-10-02 v0.1.0: Initial implementation

package pathx

// DefaultSeparator is the backslash that delimits path segments
const DefaultSeparator = '\\'

// Rules holds the separator and the reserved character sets
type Rules struct {
	Separator            rune
	InvalidPathChars     []rune
	InvalidFileNameChars []rune
}

// controlChars returns NUL and the C0 control characters 0x01-0x1F
func controlChars() []rune {
	chars := make([]rune, 0, 32)
	for r := rune(0); r < 0x20; r++ {
		chars = append(chars, r)
	}
	return chars
}

// WindowsRules returns the reserved sets of the Windows path convention
func WindowsRules() Rules {
	pathChars := append([]rune{'"', '<', '>', '|'}, controlChars()...)
	fileChars := append([]rune{'"', '<', '>', '|', ':', '*', '?', '\\', '/'}, controlChars()...)

	return Rules{
		Separator:            DefaultSeparator,
		InvalidPathChars:     pathChars,
		InvalidFileNameChars: fileChars,
	}
}

// With returns a copy of r with additional reserved characters
func (r Rules) With(extraPathChars, extraFileNameChars []rune) Rules {
	out := Rules{
		Separator:            r.Separator,
		InvalidPathChars:     make([]rune, 0, len(r.InvalidPathChars)+len(extraPathChars)),
		InvalidFileNameChars: make([]rune, 0, len(r.InvalidFileNameChars)+len(extraFileNameChars)),
	}
	out.InvalidPathChars = append(append(out.InvalidPathChars, r.InvalidPathChars...), extraPathChars...)
	out.InvalidFileNameChars = append(append(out.InvalidFileNameChars, r.InvalidFileNameChars...), extraFileNameChars...)
	return out
}

// findReserved returns the first character of s that is in set, skipping
// the separator.
func findReserved(s string, set []rune, separator rune) (rune, int, bool) {
	for i, c := range s {
		if c == separator {
			continue
		}
		for _, reserved := range set {
			if c == reserved {
				return c, i, true
			}
		}
	}
	return 0, 0, false
}
