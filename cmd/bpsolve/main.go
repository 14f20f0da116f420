// SPDX-License-Identifier: MIT

// Command bpsolve builds one of the canonical factor-graph topologies
// fgraph's builder exposes, runs package bp's loopy belief-propagation
// solver over it, and prints the resulting variable marginals and
// partition-function estimate, adapted from the generic graph-generation
// CLI shape the pack's example CLIs (dit-collect, operator-cli) follow.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "bpsolve",
		Short:   "Run loopy belief propagation over a canonical factor graph",
		Version: version,
	}

	rootCmd.AddCommand(newSolveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
