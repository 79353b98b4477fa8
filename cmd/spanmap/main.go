// Package main provides the spanmap CLI, which loads span files and
// answers point queries against them.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

func main() {
	rootCmd := &cobra.Command{
		Use:   "spanmap",
		Short: "Query values attached to overlapping spans",
		Long: `spanmap loads a YAML file of span insertions and removals and
answers which values are active at a point.

Commands:
  query     Print the values active at each key
  cells     Print the partition the spans produce`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every applied span")

	rootCmd.AddCommand(queryCmd())
	rootCmd.AddCommand(cellsCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
