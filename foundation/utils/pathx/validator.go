// File: validator.go
// Title: Path Validator
// Description: Directory path, file name and file path validation with a
//              drive-root existence check against a Storage backend.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-02
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-02 v0.1.0: Initial implementation

package pathx

import (
	"fmt"
	"strings"
	"sync"

	poerr "github.com/msto63/poutil/foundation/core/error"
	polog "github.com/msto63/poutil/foundation/core/log"
	"github.com/msto63/poutil/foundation/utils/filex"
)

// Storage answers whether a path names an existing directory
type Storage interface {
	DirExists(path string) (bool, error)
}

// Validator checks path strings against a set of Rules. It holds no mutable
// state and is safe for concurrent use.
type Validator struct {
	rules   Rules
	storage Storage
	logger  *polog.Logger
}

// Option configures a Validator
type Option func(*Validator)

// WithRules sets the separator and reserved character sets
func WithRules(rules Rules) Option {
	return func(v *Validator) {
		v.rules = rules
	}
}

// WithStorage sets the backend used for the root existence check
func WithStorage(storage Storage) Option {
	return func(v *Validator) {
		v.storage = storage
	}
}

// WithLogger enables debug logging of rejected inputs
func WithLogger(logger *polog.Logger) Option {
	return func(v *Validator) {
		v.logger = logger
	}
}

// NewValidator creates a Validator. Without options it uses WindowsRules and
// the host filesystem.
func NewValidator(opts ...Option) *Validator {
	v := &Validator{rules: WindowsRules()}
	for _, opt := range opts {
		opt(v)
	}

	if v.rules.Separator == 0 {
		v.rules.Separator = DefaultSeparator
	}
	if v.storage == nil {
		v.storage = filex.NewOSStorage()
	}

	return v
}

// Rules returns the rules the validator checks against
func (v *Validator) Rules() Rules {
	return v.rules
}

// CheckDirectoryPath returns nil if path is a well-formed directory path whose
// root exists, otherwise a coded error describing the first failure.
func (v *Validator) CheckDirectoryPath(path string) (err error) {
	const op = "CheckDirectoryPath"
	defer v.guard(op, path, &err)

	return v.checkDirectory(op, path)
}

// CheckFileName returns nil if name can be used as a file name
func (v *Validator) CheckFileName(name string) (err error) {
	const op = "CheckFileName"
	defer v.guard(op, name, &err)

	return v.checkFileName(op, name)
}

// CheckFilePath returns nil if everything before the last separator is a
// valid directory path and the last segment is a valid file name.
func (v *Validator) CheckFilePath(path string) (err error) {
	const op = "CheckFilePath"
	defer v.guard(op, path, &err)

	if path == "" {
		return rejection(op, poerr.CodePathEmpty, "file path is empty").WithDetail("path", path)
	}

	sep := string(v.rules.Separator)
	levels := strings.Split(path, sep)

	var dir strings.Builder
	for _, level := range levels[:len(levels)-1] {
		dir.WriteString(level)
		dir.WriteString(sep)
	}

	if err := v.checkDirectory(op, dir.String()); err != nil {
		return err
	}

	return v.checkFileName(op, levels[len(levels)-1])
}

// IsDirectoryPathValid reports whether CheckDirectoryPath accepts path
func (v *Validator) IsDirectoryPathValid(path string) bool {
	return v.CheckDirectoryPath(path) == nil
}

// IsFileNameValid reports whether CheckFileName accepts name
func (v *Validator) IsFileNameValid(name string) bool {
	return v.CheckFileName(name) == nil
}

// IsFilePathValid reports whether CheckFilePath accepts path
func (v *Validator) IsFilePathValid(path string) bool {
	return v.CheckFilePath(path) == nil
}

func (v *Validator) checkDirectory(op, path string) error {
	if path == "" {
		return rejection(op, poerr.CodePathEmpty, "directory path is empty").WithDetail("path", path)
	}

	sep := v.rules.Separator
	if c, i, found := findReserved(path, v.rules.InvalidPathChars, sep); found {
		return rejection(op, poerr.CodePathReservedChar, fmt.Sprintf("directory path contains reserved character %q", c)).
			WithDetail("path", path).
			WithDetail("char", string(c)).
			WithDetail("index", i)
	}

	segments := strings.Split(strings.TrimSuffix(path, string(sep)), string(sep))
	for i, segment := range segments {
		if segment == "" {
			return rejection(op, poerr.CodePathEmptySegment, fmt.Sprintf("directory path has an empty segment at position %d", i)).
				WithDetail("path", path).
				WithDetail("index", i)
		}
	}

	root := segments[0] + string(sep)
	exists, err := v.storage.DirExists(root)
	if err != nil {
		return poerr.Wrap(err, "root existence check failed").
			WithCode(poerr.CodePathStorage).
			WithOperation(op).
			WithDetail("path", path).
			WithDetail("root", root)
	}
	if !exists {
		return rejection(op, poerr.CodePathRootNotFound, fmt.Sprintf("root %s does not exist", root)).
			WithDetail("path", path).
			WithDetail("root", root)
	}

	return nil
}

func (v *Validator) checkFileName(op, name string) error {
	if name == "" {
		return rejection(op, poerr.CodePathEmpty, "file name is empty").WithDetail("name", name)
	}

	if c, i, found := findReserved(name, v.rules.InvalidFileNameChars, v.rules.Separator); found {
		return rejection(op, poerr.CodePathReservedChar, fmt.Sprintf("file name contains reserved character %q", c)).
			WithDetail("name", name).
			WithDetail("char", string(c)).
			WithDetail("index", i)
	}

	if i := strings.IndexRune(name, v.rules.Separator); i >= 0 {
		return rejection(op, poerr.CodePathSeparator, "file name contains the path separator").
			WithDetail("name", name).
			WithDetail("index", i)
	}

	// commas are reserved for list serialization by callers
	if i := strings.IndexRune(name, ','); i >= 0 {
		return rejection(op, poerr.CodePathComma, "file name contains a comma").
			WithDetail("name", name).
			WithDetail("index", i)
	}

	return nil
}

// guard turns a panic into a storage error and logs rejections
func (v *Validator) guard(op, input string, err *error) {
	if r := recover(); r != nil {
		*err = poerr.New(fmt.Sprintf("%s aborted: %v", op, r)).
			WithCode(poerr.CodePathStorage).
			WithOperation(op).
			WithDetail("panic", fmt.Sprint(r))
	}

	if *err != nil && v.logger != nil {
		v.logger.Debug("path rejected", polog.Fields{
			"operation": op,
			"input":     input,
			"code":      poerr.GetCode(*err).String(),
		}, polog.Err(*err))
	}
}

func rejection(op string, code poerr.Code, message string) *poerr.Error {
	return poerr.New(message).WithCode(code).WithOperation(op)
}

// Reason returns the code of a validation error, or "" for nil
func Reason(err error) poerr.Code {
	if err == nil {
		return ""
	}
	return poerr.GetCode(err)
}

var (
	defaultOnce      sync.Once
	defaultValidator *Validator
)

// Default returns the package validator backed by the host filesystem
func Default() *Validator {
	defaultOnce.Do(func() {
		defaultValidator = NewValidator()
	})
	return defaultValidator
}

// IsDirectoryPathValid reports whether the default validator accepts path
func IsDirectoryPathValid(path string) bool {
	return Default().IsDirectoryPathValid(path)
}

// IsFileNameValid reports whether the default validator accepts name
func IsFileNameValid(name string) bool {
	return Default().IsFileNameValid(name)
}

// IsFilePathValid reports whether the default validator accepts path
func IsFilePathValid(path string) bool {
	return Default().IsFilePathValid(path)
}
