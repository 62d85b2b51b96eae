package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/msto63/poutil/pkg/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Shows the version",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "poutil v%s\n", version.Module)
		fmt.Fprintf(out, "  Validator:  %s\n", version.ComponentVersion("validator"))
		fmt.Fprintf(out, "  Formatter:  %s\n", version.ComponentVersion("formatter"))
		fmt.Fprintf(out, "  Git Commit: %s\n", version.Commit)
		fmt.Fprintf(out, "  Build Date: %s\n", version.BuildDate)
		fmt.Fprintf(out, "  Go Version: %s\n", runtime.Version())
		fmt.Fprintf(out, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
		fmt.Fprintf(out, "  Request ID: %s\n", requestID)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
