// ============================================================================
// poutil - Path and Number Utilities
// ============================================================================
//
// Package:     cmd
// Description: Input collection from arguments, files and stdin
// Author:      Mike Stoffels
// Created:     2026-10-09
// License:     MIT
// ============================================================================

package cmd

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/msto63/poutil/foundation/utils/filex"
)

// collectInputs returns args followed by the lines of from ("-" is stdin)
func collectInputs(cmd *cobra.Command, args []string, from string) ([]string, error) {
	inputs := append([]string(nil), args...)
	if from == "" {
		return inputs, nil
	}

	var (
		lines []string
		err   error
	)
	if from == "-" {
		lines, err = readStdinLines(cmd.InOrStdin())
	} else {
		lines, err = inputStorage.ReadFileLines(from)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read inputs: %w", err)
	}

	for _, line := range lines {
		inputs = append(inputs, strings.TrimSuffix(line, "\r"))
	}
	return inputs, nil
}

func readStdinLines(r io.Reader) ([]string, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		rs = bytes.NewReader(data)
	}
	return filex.ReadAllLines(rs, false)
}

// keepNegativeNumbers moves negative numbers that are not flag values behind
// "--" so pflag does not read "-3.5" as the shorthand -3. Flags following the
// first such number are moved in front of "--". Positional order is kept.
func keepNegativeNumbers(cmd *cobra.Command, args []string) []string {
	head, tail, terminated := args, []string(nil), false
	for i, arg := range args {
		if arg == "--" {
			head, tail, terminated = args[:i], args[i+1:], true
			break
		}
	}

	var before, flags, positional []string
	split := false
	for i := 0; i < len(head); i++ {
		arg := head[i]
		switch {
		case isNegativeNumber(arg):
			split = true
			positional = append(positional, arg)

		case len(arg) > 1 && arg[0] == '-':
			group := []string{arg}
			if takesValue(cmd, arg) && i+1 < len(head) {
				i++
				group = append(group, head[i])
			}
			if split {
				flags = append(flags, group...)
			} else {
				before = append(before, group...)
			}

		case split:
			positional = append(positional, arg)

		default:
			before = append(before, arg)
		}
	}

	if !split {
		return args
	}

	out := make([]string, 0, len(args)+1)
	out = append(out, before...)
	out = append(out, flags...)
	out = append(out, "--")
	out = append(out, positional...)
	if terminated {
		out = append(out, tail...)
	}
	return out
}

func isNegativeNumber(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' || arg[1] == '-' {
		return false
	}
	_, err := strconv.ParseFloat(arg, 64)
	return err == nil
}

// takesValue reports whether the flag argument arg consumes the next argument
func takesValue(cmd *cobra.Command, arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}

	if name, ok := strings.CutPrefix(arg, "--"); ok {
		f := lookupFlag(cmd, func(fs *pflag.FlagSet) *pflag.Flag { return fs.Lookup(name) })
		return f != nil && f.NoOptDefVal == ""
	}

	shorthands := arg[1:]
	for i := 0; i < len(shorthands); i++ {
		c := shorthands[i : i+1]
		f := lookupFlag(cmd, func(fs *pflag.FlagSet) *pflag.Flag { return fs.ShorthandLookup(c) })
		if f == nil {
			return false
		}
		if f.NoOptDefVal == "" {
			// the rest of the group is the value if there is one
			return i == len(shorthands)-1
		}
	}
	return false
}

func lookupFlag(cmd *cobra.Command, lookup func(*pflag.FlagSet) *pflag.Flag) *pflag.Flag {
	for _, fs := range []*pflag.FlagSet{cmd.Flags(), cmd.InheritedFlags()} {
		if f := lookup(fs); f != nil {
			return f
		}
	}
	return nil
}
