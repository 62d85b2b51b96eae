// Package pathx validates backslash-delimited path strings.
//
// Package: pathx
// Title: Path Validation
// Description: Classifies directory paths, file names and full file paths.
//              Validation fails closed: anything ambiguous, including a root
//              that cannot be checked, is reported as invalid. Every Check*
//              method returns a coded error naming the reason; the Is*
//              wrappers collapse that to a bool and never panic.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-02
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-02 v0.1.0: Initial implementation
//
// Rules
//
// A path is split on the separator (backslash by default). The first segment
// is the drive or volume root and must name an existing directory once a
// separator is appended. One trailing separator is tolerated; any other empty
// segment, including a leading one, rejects the path. Reserved characters
// follow the Windows tables returned by WindowsRules.
//
// Usage:
//   v := pathx.NewValidator(pathx.WithStorage(filex.NewStorage(fs)))
//
//   if err := v.CheckFilePath(`C:\Users\report.txt`); err != nil {
//     switch pathx.Reason(err) {
//     case poerr.CodePathRootNotFound:
//       // drive is missing
//     }
//   }
//
//   ok := pathx.IsFileNameValid("report,final.txt") // false
package pathx
