package cmd

import (
	"fmt"
	"runtime"

	"github.com/msto63/rechenwerk/pkg/core/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Zeigt die Version an",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, version.String())
		fmt.Fprintf(out, "  Rechenkern: %s\n", version.ComponentVersion("calculator"))
		fmt.Fprintf(out, "  Finanzen:   %s\n", version.ComponentVersion("finance"))
		fmt.Fprintf(out, "  TUI:        %s\n", version.ComponentVersion("tui"))
		fmt.Fprintf(out, "  Go Version: %s\n", runtime.Version())
		fmt.Fprintf(out, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
