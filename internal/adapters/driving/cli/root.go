// Package cli implements the fundlens command line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/fundlens/fundlens/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	cfgPath string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "fundlens",
	Short: "Ingest portfolio holdings spreadsheets from Google Drive",
	Long: `fundlens walks a Google Drive folder tree for portfolio holdings
spreadsheets (Google Sheets, Excel, CSV), normalises their
loosely-structured contents into per-holding records, and persists
them idempotently into MongoDB.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default ~/.fundlens/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
