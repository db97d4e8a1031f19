package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Overridden at link time with -ldflags "-X main.version=...".
var version = "devel"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show ricci version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "ricci %s (%s %s/%s)\n", version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		return nil
	},
}

func init() {
	Root.AddCommand(versionCmd)
}
