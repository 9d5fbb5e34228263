package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"linkctl/pkg/errors"
	"linkctl/pkg/logger"

	"github.com/spf13/cobra"
)

const unknownValue = "unknown"

var (
	Version   string
	BuildTime string
	GitCommit string
)

var defaultTimeout = 10 * time.Second
var globalTimeout time.Duration
var outputFormat string
var logLevel string

var rootCmd = &cobra.Command{
	Use:   "linkctl",
	Short: "Copy rich hyperlinks to the system clipboard",
	Long: `linkctl places a styled, email-client-compatible hyperlink on the system
clipboard as a multi-format entry: rich-text targets paste a styled button,
plain-text targets paste the bare URL. Where the multi-format write is not
available it falls back to plain text.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if globalTimeout <= 0 {
			globalTimeout = defaultTimeout
		}
		// Explicit flag takes precedence over the env var.
		level := logLevel
		if !cmd.Flags().Changed("log-level") {
			if envLevel := os.Getenv("LINKCTL_LOG_LEVEL"); envLevel != "" {
				level = envLevel
			}
		}
		logger.SetLevel(level)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		ver := Version
		if ver == "" {
			ver = "dev"
		}
		bt := BuildTime
		if bt == "" {
			bt = unknownValue
		}
		gc := GitCommit
		if gc == "" {
			gc = unknownValue
		}

		fmt.Printf("linkctl version %s\n", ver)
		fmt.Printf("Built: %s\n", bt)
		fmt.Printf("Git commit: %s\n", gc)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		exitCode := errors.HandleReturn(err)
		os.Exit(int(exitCode))
	}
}

// GetContext returns a context bounded by the global timeout; it caps how
// long external clipboard tools may run.
func GetContext() (context.Context, context.CancelFunc) {
	timeout := globalTimeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return context.WithTimeout(context.Background(), timeout)
}

func init() {
	RegisterCommands(rootCmd)

	rootCmd.PersistentFlags().DurationVar(&globalTimeout, "timeout", defaultTimeout, "Timeout for external clipboard tools (e.g., 10s, 1m)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "table", "Output format (table, json, yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}
