// Package cli implements the command-line interface for twistcube.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rowanmaddox/twistcube/internal/session"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath  string
	verbose bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "twistcube",
	Short: "Interactive 3x3 cube",
	Long: `twistcube - an interactive 3x3 twisty puzzle for the terminal.

Pick a face, turn its layer with the arrow keys, and watch the state
update live. Play sessions are recorded and can be listed and replayed.`,
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
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.twistcube/twistcube.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// openDB opens the session database at the flag path or the default.
func openDB() (*session.DB, error) {
	if dbPath != "" {
		return session.Open(dbPath)
	}
	return session.OpenDefault()
}
