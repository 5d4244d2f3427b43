// Package cli implements the command-line interface for puzzlecube.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath  string
	verbose bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "puzzlecube",
	Short: "NxNxN puzzle cube toolkit",
	Long: `puzzlecube - a toolkit for manipulating NxNxN twisty puzzle cubes.

Create cubes of any size, apply move sequences in standard notation
(including wide and inner-layer turns like 3Fw and 2-4R), scramble them,
apply known patterns, and browse your scramble history.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.puzzlecube/puzzlecube.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// getDBPath returns the database path from flag or default.
func getDBPath() string {
	return dbPath
}
