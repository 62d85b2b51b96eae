// ============================================================================
// poutil - Path and Number Utilities
// ============================================================================
//
// Package:     config
// Description: Typed accessors for the free-form [defaults] table
// Author:      Mike Stoffels
// Created:     2026-10-06
// License:     MIT
// ============================================================================

package config

import (
	"github.com/spf13/cast"

	poerr "github.com/msto63/poutil/foundation/core/error"
)

// DefaultString returns the default stored under key as a string
func (c *Config) DefaultString(key string) (string, error) {
	return lookupDefault(c, key, cast.ToStringE)
}

// DefaultInt returns the default stored under key as an int
func (c *Config) DefaultInt(key string) (int, error) {
	return lookupDefault(c, key, cast.ToIntE)
}

// DefaultFloat returns the default stored under key as a float64
func (c *Config) DefaultFloat(key string) (float64, error) {
	return lookupDefault(c, key, cast.ToFloat64E)
}

// DefaultBool returns the default stored under key as a bool
func (c *Config) DefaultBool(key string) (bool, error) {
	return lookupDefault(c, key, cast.ToBoolE)
}

// HasDefault reports whether key is present in the defaults table
func (c *Config) HasDefault(key string) bool {
	_, ok := c.Defaults[key]
	return ok
}

func lookupDefault[T any](c *Config, key string, convert func(interface{}) (T, error)) (T, error) {
	var zero T

	raw, ok := c.Defaults[key]
	if !ok {
		return zero, poerr.Newf("no default for %q", key).
			WithCode(poerr.CodeNotFound).
			WithDetail("key", key)
	}

	v, err := convert(raw)
	if err != nil {
		return zero, poerr.Wrap(err, "default "+key+" has the wrong type").
			WithCode(poerr.CodeInvalidFormat).
			WithDetail("key", key).
			WithDetail("value", raw)
	}

	return v, nil
}
