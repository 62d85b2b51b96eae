// Package fixedx renders numbers as plain and fixed-width strings.
//
// Package: fixedx
// Title: Fixed-Width Number Formatting
// Description: Converts integers and floats into decimal strings without
//              exponent notation and aligns them into columns. The integer
//              part is left-padded with spaces to a minimum width, the
//              fractional part is rounded and right-padded with zeros to an
//              exact width. NaN is never formatted numerically.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-03
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-03 v0.1.0: Initial implementation
//
// Rounding
//
// Round uses banker's rounding (half to even) on the shortest decimal
// rendering of the value, so Round(0.125, 2) is 0.12 and Round(0.135, 2) is
// 0.14. Formatting a rounded value with the same number of places yields the
// same string as formatting the original.
//
// Widths
//
// Widths count bytes. The decimal separator is always '.', there is no
// grouping.
//
// Usage:
//   fixedx.ToPlainString(1e21)           // "1000000000000000000000", true
//   fixedx.IntToFixedWidth(5, 3)         // "  5"
//   fixedx.ToFixedWidth(3.14159, 4, 2)   // " 3.14"
//   fixedx.ToFixedWidth(3.1, 4, 3)       // " 3.100"
//   fixedx.ToFixedWidth(math.NaN(), 5)   // "  NaN"
//   fixedx.ToFixedWidth(2.75, 3)         // "  2"
package fixedx
