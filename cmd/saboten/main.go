package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "saboten",
	Short: "Decompose a sequence graph into its snarl index",
	Long: `saboten - bidirected-graph snarl decomposer

Reads a sequence graph, runs it through gray contraction, 3-edge-connected
component merging, cactus view construction, and bridge forest
construction, and reports the resulting chain-pair and bridge-pair
snarls.`,
}

func init() {
	rootCmd.AddCommand(decomposeCmd)
	rootCmd.AddCommand(versionCmd)
}
