// Package error provides coded errors for the poutil foundation library.
//
// Package: error
// Title: poutil Coded Errors
// Description: Structured errors carrying a code, a severity, free-form details
//              and a captured stack trace. Validators return these instead of
//              bare booleans so callers can tell why an input was rejected.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-14 v0.2.0: Path validation codes, dropped request/user context
//
// Usage:
//   import poerr "github.com/msto63/poutil/foundation/core/error"
//
//   err := poerr.New("path contains an empty segment").
//     WithCode(poerr.CodePathEmptySegment).
//     WithDetail("index", 2)
//
//   if poerr.HasCode(err, poerr.CodePathEmptySegment) {
//     // reject the input
//   }
package error
