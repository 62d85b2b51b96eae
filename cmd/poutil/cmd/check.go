// ============================================================================
// poutil - Path and Number Utilities
// ============================================================================
//
// Package:     cmd
// Description: CLI command for the interactive checker TUI
// Author:      Mike Stoffels
// Created:     2026-10-10
// License:     MIT
// ============================================================================

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/poutil/foundation/utils/fixedx"
	"github.com/msto63/poutil/internal/tui/checker"
)

var (
	checkPre  int
	checkPost int
)

var checkCmd = &cobra.Command{
	Use:     "check",
	Aliases: []string{"checker", "tui"},
	Short:   "Starts the interactive checker",
	Long: `Starts the interactive checker.

The input is validated while typing. Tab switches between directory path,
file path, file name and number mode; in number mode the fixed-width
rendering is shown.

Keys:
  Tab / Shift+Tab   switch mode
  Enter             keep the result in the history
  Esc / Ctrl+C      quit`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().IntVar(&checkPre, "pre", 0, "integer width in number mode (default from config)")
	checkCmd.Flags().IntVar(&checkPost, "post", fixedx.Unspecified, "fraction width in number mode (default from config)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg := checker.Config{
		Validator:      newValidator(),
		PrePointWidth:  appConfig.Format.PrePointWidth,
		PostPointWidth: appConfig.PostPointWidth(),
	}
	if cmd.Flags().Changed("pre") {
		cfg.PrePointWidth = checkPre
	}
	if cmd.Flags().Changed("post") {
		cfg.PostPointWidth = checkPost
	}

	return checker.Run(cfg)
}
