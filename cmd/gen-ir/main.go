package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/chaowyc/gen-ir/internal/config"
	"github.com/spf13/cobra"
)

var (
	flagDB       string
	flagFormat   string
	flagLogLevel string
)

// logger is the diagnostics sink shared by all commands, configured in
// PersistentPreRunE before any command runs.
var logger *slog.Logger

// errorHandled is set by outputError so main() doesn't double-print.
var errorHandled bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errorHandled {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "gen-ir",
	Short:         "Query build dependency information from Xcode projects and workspaces",
	Long:          "gen-ir parses .xcodeproj and .xcworkspace bundles and answers dependency queries:\nwhich targets and products exist, which packages are declared, and what a target's\ndirect dependencies resolve to. An optional SQLite index serves repeated queries.",
	SilenceErrors: true,
	SilenceUsage:  true,
	// No Run — prints help by default.
}

func init() {
	// Assigned here rather than in the composite literal to avoid an
	// initialization cycle (the closure calls applyConfig, which refers
	// back to rootCmd).
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting cwd: %w", err)
		}
		cfg, err := config.Load(cwd)
		if err != nil {
			return err
		}
		applyConfig(cfg)
		if err := validateFormat(flagFormat); err != nil {
			return err
		}
		logger = newLogger(flagLogLevel, os.Stderr)
		return nil
	}

	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "index database path (default: .gen-ir/index.db)")
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "json", "output format: json|text")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "minimum diagnostic severity: debug|info|warn|error")

	rootCmd.AddCommand(indexCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(resolveCmd)
}

// applyConfig fills in flag values from the config file for flags the user
// didn't set explicitly.
func applyConfig(cfg *config.Config) {
	flags := rootCmd.PersistentFlags()
	if !flags.Changed("db") && cfg.DB != "" {
		flagDB = cfg.DB
	}
	if !flags.Changed("format") && cfg.Format != "" {
		flagFormat = cfg.Format
	}
	if !flags.Changed("log-level") && cfg.LogLevel != "" {
		flagLogLevel = cfg.LogLevel
	}
}

// resolveDBPath returns the index path from the --db flag or the default.
func resolveDBPath() string {
	if flagDB != "" {
		return flagDB
	}
	return filepath.Join(".gen-ir", "index.db")
}
