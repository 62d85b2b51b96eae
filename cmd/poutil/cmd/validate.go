// ============================================================================
// poutil - Path and Number Utilities
// ============================================================================
//
// Package:     cmd
// Description: CLI command for path validation
// Author:      Mike Stoffels
// Created:     2026-10-09
// License:     MIT
// ============================================================================

package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	poerr "github.com/msto63/poutil/foundation/core/error"
	polog "github.com/msto63/poutil/foundation/core/log"
	"github.com/msto63/poutil/internal/batch"
)

var validateFrom string

var validateCmd = &cobra.Command{
	Use:   "validate dir|file|name [input...]",
	Short: "Validates directory paths, file paths or file names",
	Long: `Validates each input and prints ok or invalid with the reason.

Kinds:
  dir    directory path, its root must exist (e.g. C:\Users)
  file   file path, directory part plus file name (e.g. C:\Users\a.txt)
  name   bare file name (e.g. a.txt)

Inputs are taken from the arguments and, with --from, one per line from a
file ("-" reads stdin). The exit status is 1 if any input is invalid.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVar(&validateFrom, "from", "", "read inputs line by line from a file (\"-\" for stdin)")
}

func runValidate(cmd *cobra.Command, args []string) error {
	kind, ok := batch.ParseKind(args[0])
	if !ok {
		return fmt.Errorf("unknown kind %q, want dir, file or name", args[0])
	}

	inputs, err := collectInputs(cmd, args[1:], validateFrom)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return errors.New("no inputs given")
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), appConfig.Batch.Timeout.Duration)
	defer cancel()

	validator := newValidator()
	runner := batch.NewRunner(appConfig.Batch.Concurrency, logger)

	var results []batch.Result
	task := batch.Go(func() error {
		results = runner.ValidatePaths(ctx, validator, kind, inputs)
		return nil
	})
	if err := task.WaitContext(ctx); err != nil {
		logger.ErrorWithErr("validation did not finish", err, polog.Fields{
			"kind":  string(kind),
			"total": len(inputs),
		})
		return fmt.Errorf("validation did not finish: %w", err)
	}

	out := cmd.OutOrStdout()
	invalid := 0
	for _, res := range results {
		if res.Valid {
			fmt.Fprintf(out, "%s  %s\n", statusLabel(true), res.Input)
			continue
		}

		invalid++
		fmt.Fprintf(out, "%s  %s  %s\n", statusLabel(false), res.Input, mutedStyle.Render(describe(res.Err)))
	}

	logger.Info("validation finished", polog.Fields{
		"kind":    string(kind),
		"total":   len(results),
		"invalid": invalid,
	})

	if invalid > 0 {
		return errInvalidInput
	}
	return nil
}

// describe renders a validation error as "CODE: message"
func describe(err error) string {
	if err == nil {
		return ""
	}

	var poErr *poerr.Error
	if errors.As(err, &poErr) {
		return fmt.Sprintf("%s: %s", poErr.Code(), poErr.Message())
	}
	return err.Error()
}
