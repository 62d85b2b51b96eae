// ============================================================================
// poutil - Path and Number Utilities
// ============================================================================
//
// Package:     cmd
// Description: Root command, global flags and shared command state
// Author:      Mike Stoffels
// Created:     2026-10-09
// License:     MIT
// ============================================================================

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	poerr "github.com/msto63/poutil/foundation/core/error"
	polog "github.com/msto63/poutil/foundation/core/log"
	"github.com/msto63/poutil/foundation/utils/filex"
	"github.com/msto63/poutil/foundation/utils/pathx"
	"github.com/msto63/poutil/pkg/core/config"
	"github.com/msto63/poutil/pkg/core/logging"
)

var (
	cfgFile string
	verbose bool
)

// Shared state, set up by PersistentPreRunE
var (
	appConfig *config.Config
	logger    *polog.Logger
	requestID string
)

// Filesystems used by the commands; tests swap in in-memory ones
var (
	pathStorage  pathx.Storage = filex.NewOSStorage()
	inputStorage               = filex.NewOSStorage()
)

// errInvalidInput signals that the command reported invalid input itself
var errInvalidInput = poerr.New("invalid input").WithCode(poerr.CodeInvalidInput)

var rootCmd = &cobra.Command{
	Use:   "poutil",
	Short: "poutil - Path validation and fixed-width number formatting",
	Long: `poutil checks path strings and renders numbers in aligned columns.

Commands:
  validate  - check directory paths, file paths and file names
  format    - render integers and floats with fixed widths
  check     - interactive checker
  version   - show version information`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the command line of the process
func Execute() error {
	return run(os.Args[1:])
}

// run executes args and prints every error the command did not report itself
func run(args []string) error {
	target, _, err := rootCmd.Find(args)
	if err != nil {
		target = rootCmd
	}
	rootCmd.SetArgs(keepNegativeNumbers(target, args))

	err = rootCmd.Execute()
	if err != nil && !errors.Is(err, errInvalidInput) {
		printError(rootCmd.ErrOrStderr(), "poutil", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $POUTIL_CONFIG or ./configs/poutil.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// setup loads the configuration and builds the request logger
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	appConfig = cfg

	lc := logging.FromConfig(cfg)
	lc.Output = cmd.ErrOrStderr()
	if verbose {
		lc.Level = "debug"
	}
	logger, requestID = logging.WithNewRequestID(logging.NewLogger(lc))

	logger.Debug("command started", polog.Fields{
		"command": cmd.CommandPath(),
		"args":    len(args),
	})

	return nil
}

// loadConfig honors --config strictly; otherwise a missing file falls back
// to the defaults.
func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		return cfg, nil
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		if os.Getenv("POUTIL_CONFIG") != "" {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		return config.Default(), nil
	}
	return cfg, nil
}

// newValidator builds a validator from the loaded configuration
func newValidator() *pathx.Validator {
	return pathx.NewValidator(
		pathx.WithRules(appConfig.ValidatorRules()),
		pathx.WithStorage(pathStorage),
		pathx.WithLogger(logger),
	)
}

func printError(w io.Writer, msg string, err error) {
	fmt.Fprintf(w, "Fehler: %s: %v\n", msg, err)
}
