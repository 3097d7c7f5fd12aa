package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version, BuildCommit are overridden at build time via -ldflags, the
// same scheme rohankatakam-coderisk's cmd binaries use for their
// Version/BuildTime/GitCommit package vars.
var (
	Version     = "dev"
	BuildCommit = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the saboten version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("saboten %s (%s)\n", Version, BuildCommit)

		return nil
	},
}
