package cmd

import (
	"fmt"
	"os"

	"recipe-viewer/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "recipe-viewer",
	Short: "Recipe dataset indexer and lookup service",
	Long: `Recipe Viewer turns a raw recipe dump into partitioned, indexed artifacts
and answers "which recipes use or produce X" over them without loading the whole dataset.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var configDir string

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format at debug level gives readable ISO8601 timestamps for CLI errors
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configDir, "config-dir", ".", "Directory holding the .env file")
}
