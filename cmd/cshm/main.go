// Command cshm wraps the analyzer/batch core in a cobra CLI: analyze one
// structure, batch many, or list the reference library's coverage for a
// coordination number.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Exit codes per spec.md §6.
const (
	exitSuccess     = 0
	exitOther       = 1
	exitInputError  = 2
	exitNoReference = 3
	exitCancelled   = 4
)

var rootCmd = &cobra.Command{
	Use:   "cshm",
	Short: "Continuous Shape Measure engine for coordination chemistry",
	Long: `cshm computes how closely a central atom's ligand arrangement
matches each reference polyhedron in its coordination-number class,
returning a ranked list of shape measures and derived quality metrics.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.PersistentFlags().String("config", "", "optional YAML config file overriding profile constants and metal indicators")

	rootCmd.AddCommand(analyzeCmd, batchCmd, refsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(exitCodeFor(err))
	}
}
