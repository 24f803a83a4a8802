package cmd

import (
	"fmt"
	"os"

	"entra-sync/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "entra-sync",
	Short: "eduID to Entra ID account synchronization",
	Long: `entra-sync reconciles the authoritative identity records in the
document store against user accounts in Microsoft Entra ID.

It creates missing accounts, patches accounts whose tracked attributes
drifted from the source of truth, and reports directory accounts that no
longer correspond to any source record.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Use the application's standard logger for error reporting.
		// Console format matches user expectations for a CLI tool.
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
