// ============================================================================
// poutil - Path and Number Utilities
// ============================================================================
//
// Package:     cmd
// Description: CLI commands for fixed-width number formatting
// Author:      Mike Stoffels
// Created:     2026-10-10
// License:     MIT
// ============================================================================

package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	polog "github.com/msto63/poutil/foundation/core/log"
	"github.com/msto63/poutil/foundation/utils/fixedx"
	"github.com/msto63/poutil/internal/batch"
)

var (
	formatFrom  string
	formatWidth int
	formatPre   int
	formatPost  int
)

// absentMarker is printed for values without a plain rendering (NaN)
const absentMarker = "-"

var formatCmd = &cobra.Command{
	Use:   "format",
	Short: "Renders numbers as plain or fixed-width strings",
	Long: `Renders numbers without exponent notation, optionally aligned in columns.

Values come from the arguments and, with --from, one per line from a file
("-" reads stdin). NaN and Inf are accepted. Negative values may be given
directly (format float -3.5 --pre 4) or after "--". Widths default to the
[format] section of the configuration.`,
}

var formatIntCmd = &cobra.Command{
	Use:   "int [value...]",
	Short: "Left-pads integers with spaces to --width",
	RunE:  runFormatInt,
}

var formatFloatCmd = &cobra.Command{
	Use:   "float [value...]",
	Short: "Pads the integer part to --pre and rounds the fraction to --post",
	Long: `Pads the integer part to --pre and rounds the fraction to --post places.

Rounding is half to even. A negative --post drops the fraction without
rounding. NaN is printed as NaN right-aligned to --pre.`,
	RunE: runFormatFloat,
}

var formatPlainCmd = &cobra.Command{
	Use:   "plain [value...]",
	Short: "Prints the shortest plain decimal form of each value",
	RunE:  runFormatPlain,
}

func init() {
	rootCmd.AddCommand(formatCmd)
	formatCmd.AddCommand(formatIntCmd, formatFloatCmd, formatPlainCmd)

	formatCmd.PersistentFlags().StringVar(&formatFrom, "from", "", "read values line by line from a file (\"-\" for stdin)")

	formatIntCmd.Flags().IntVar(&formatWidth, "width", 0, "minimum width (default from config)")
	formatFloatCmd.Flags().IntVar(&formatPre, "pre", 0, "minimum width of the integer part (default from config)")
	formatFloatCmd.Flags().IntVar(&formatPost, "post", fixedx.Unspecified, "fraction width, negative for none (default from config)")
}

func runFormatInt(cmd *cobra.Command, args []string) error {
	width := appConfig.Format.PrePointWidth
	if cmd.Flags().Changed("width") {
		width = formatWidth
	}

	return formatEach(cmd, args, strconv.Atoi, func(v int) string {
		return fixedx.IntToFixedWidth(v, width)
	})
}

func runFormatFloat(cmd *cobra.Command, args []string) error {
	pre := appConfig.Format.PrePointWidth
	if cmd.Flags().Changed("pre") {
		pre = formatPre
	}
	post := appConfig.PostPointWidth()
	if cmd.Flags().Changed("post") {
		post = formatPost
	}

	return formatEach(cmd, args, parseFloat, func(v float64) string {
		return fixedx.ToFixedWidth(v, pre, post)
	})
}

func runFormatPlain(cmd *cobra.Command, args []string) error {
	return formatEach(cmd, args, parseFloat, func(v float64) string {
		if s, ok := fixedx.ToPlainString(v); ok {
			return s
		}
		return absentMarker
	})
}

// parsed is an input after parsing
type parsed[T any] struct {
	value T
	err   error
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

// formatEach parses every input, renders the parsed values through the batch
// runner and prints one line per input in order. Unparseable inputs are
// reported on stderr and make the command fail after all lines are printed.
func formatEach[T any](cmd *cobra.Command, args []string, parse func(string) (T, error), render func(T) string) error {
	inputs, err := collectInputs(cmd, args, formatFrom)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return errors.New("no values given")
	}

	items := make([]parsed[T], len(inputs))
	for i, in := range inputs {
		v, err := parse(strings.TrimSpace(in))
		items[i] = parsed[T]{value: v, err: err}
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), appConfig.Batch.Timeout.Duration)
	defer cancel()

	runner := batch.NewRunner(appConfig.Batch.Concurrency, logger)
	lines, err := batch.Map(ctx, runner, items, func(it parsed[T]) string {
		if it.err != nil {
			return ""
		}
		return render(it.value)
	})
	if err != nil {
		logger.ErrorWithErr("formatting did not finish", err, polog.Fields{
			"command": cmd.Name(),
			"total":   len(items),
		})
		return fmt.Errorf("formatting did not finish: %w", err)
	}

	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	bad := 0
	for i, line := range lines {
		if items[i].err != nil {
			bad++
			fmt.Fprintf(errOut, "%s  %q  %s\n", statusLabel(false), inputs[i], mutedStyle.Render("not a number"))
			continue
		}
		fmt.Fprintln(out, line)
	}

	logger.Info("formatting finished", polog.Fields{
		"command": cmd.Name(),
		"total":   len(lines),
		"invalid": bad,
	})

	if bad > 0 {
		return errInvalidInput
	}
	return nil
}
