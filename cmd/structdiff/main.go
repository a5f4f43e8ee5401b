package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "structdiff",
	Short: "Structural comparison tool for nested JSON/YAML data",
	Long: `structdiff compares two nested data structures field by field and
reports missing fields, redundant fields, type conflicts, value changes
and list differences, with optional order-insensitive list matching and
configurable cross-type tolerance.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
