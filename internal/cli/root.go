// Package cli implements the newsdata command line.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hupe1980/newsdata"
	"github.com/hupe1980/newsdata/internal/config"
)

var (
	version = "dev"

	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "newsdata",
	Short: "Inspect labeled news-headline datasets",
	Long: `newsdata loads news-headline tables (CSV, TSV or XLSX, optionally
compressed) and labels each title as popular or not by its up_votes count.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a TOML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

func newLogger(cmd *cobra.Command, cfg config.Config) (*newsdata.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	if verbose {
		level = slog.LevelDebug
	}
	return newsdata.NewLogger(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	})), nil
}
