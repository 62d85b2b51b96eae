// ============================================================================
// poutil - Path and Number Utilities
// ============================================================================
//
// Package:     batch
// Description: Bounded, order-preserving fan-out for path checks and formatting
// Author:      Mike Stoffels
// Created:     2026-10-07
// License:     MIT
// ============================================================================

package batch

import (
	"context"

	"golang.org/x/sync/errgroup"

	polog "github.com/msto63/poutil/foundation/core/log"
	"github.com/msto63/poutil/foundation/utils/fixedx"
)

// Kind selects which check ValidatePaths applies
type Kind string

const (
	KindDirectory Kind = "dir"
	KindFile      Kind = "file"
	KindName      Kind = "name"
)

// ParseKind maps a command-line word to a Kind
func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case KindDirectory, KindFile, KindName:
		return Kind(s), true
	case "directory":
		return KindDirectory, true
	}
	return "", false
}

// PathChecker is implemented by *pathx.Validator
type PathChecker interface {
	CheckDirectoryPath(path string) error
	CheckFileName(name string) error
	CheckFilePath(path string) error
}

// Result is the outcome of validating one input
type Result struct {
	Input string
	Kind  Kind
	Valid bool
	Err   error
}

// Runner fans work out over a bounded number of goroutines
type Runner struct {
	limit  int
	logger *polog.Logger
}

// NewRunner creates a Runner running at most limit items at once. A limit of
// zero or less means no bound.
func NewRunner(limit int, logger *polog.Logger) *Runner {
	if logger == nil {
		logger = polog.Discard()
	}
	return &Runner{limit: limit, logger: logger}
}

// Limit returns the concurrency bound, or -1 when unbounded
func (r *Runner) Limit() int {
	if r.limit <= 0 {
		return -1
	}
	return r.limit
}

// ValidatePaths checks every path with the check selected by kind. Results
// are in input order. Items not reached before ctx is done carry ctx.Err().
func (r *Runner) ValidatePaths(ctx context.Context, checker PathChecker, kind Kind, paths []string) []Result {
	check := checkFor(checker, kind)
	results := make([]Result, len(paths))

	timer := r.logger.StartTimer("batch.ValidatePaths").WithField("count", len(paths))
	defer timer.Stop()

	_ = r.each(ctx, len(paths), func(i int) {
		results[i] = Result{Input: paths[i], Kind: kind, Err: ctx.Err()}
	}, func(i int) {
		err := check(paths[i])
		results[i] = Result{Input: paths[i], Kind: kind, Valid: err == nil, Err: err}
	})

	return results
}

// FormatValues renders every value with fixedx.ToFixedWidth, in input order
func (r *Runner) FormatValues(ctx context.Context, values []float64, pre, post int) ([]string, error) {
	return Map(ctx, r, values, func(v float64) string {
		return fixedx.ToFixedWidth(v, pre, post)
	})
}

// Map applies fn to every item concurrently and returns the outputs in input
// order. It stops scheduling new items once ctx is done and returns ctx.Err().
func Map[T any](ctx context.Context, r *Runner, items []T, fn func(T) string) ([]string, error) {
	out := make([]string, len(items))

	err := r.each(ctx, len(items), nil, func(i int) {
		out[i] = fn(items[i])
	})

	return out, err
}

// each runs work(i) for i in [0, n). skipped(i) is called instead for items
// reached after ctx is done.
func (r *Runner) each(ctx context.Context, n int, skipped, work func(int)) error {
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(r.Limit())

	for i := 0; i < n; i++ {
		if gCtx.Err() != nil {
			if skipped != nil {
				skipped(i)
			}
			continue
		}

		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				if skipped != nil {
					skipped(i)
				}
				return err
			}
			work(i)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

func checkFor(checker PathChecker, kind Kind) func(string) error {
	switch kind {
	case KindFile:
		return checker.CheckFilePath
	case KindName:
		return checker.CheckFileName
	default:
		return checker.CheckDirectoryPath
	}
}
