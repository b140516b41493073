// Package app contains the Cobra command tree for nichewatch.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagVerbose bool
	flagConfig  string
	flagData    []string
)

var rootCmd = &cobra.Command{
	Use:   "nichewatch",
	Short: "Opportunity intelligence for the NicheFinder pipeline",
	Long: `nichewatch reads scored opportunity exports from the NicheFinder pipeline
and turns them into signal levels, KPIs, ranking reasons, builder Q&A and a
prioritized insight feed.

Run 'nichewatch' with no arguments to see the command center overview.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runOverview,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/nichewatch/config.yaml)")
	rootCmd.PersistentFlags().StringSliceVar(&flagData, "data", nil, "Opportunity export file(s); repeat or comma-separate (default: data_file from config)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")
}
