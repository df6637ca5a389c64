// Package commands wires the CLI surface: init scaffolding plus the
// three statement reports (unmatched, summary, chart).
package commands

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vypis-dev/vypis/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands
// registered.
func NewRootCommand(logger *log.Logger) *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:     "vypis",
		Short:   "Categorize bank statement exports and report spending",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(newInitCommand(logger))
	rootCmd.AddCommand(newUnmatchedCommand(logger))
	rootCmd.AddCommand(newSummaryCommand(logger))
	rootCmd.AddCommand(newChartCommand(logger))

	return rootCmd
}
