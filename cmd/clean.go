package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"entra-sync/core/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the clean command
	yesConfirm bool
)

// cleanCmd deletes the directory accounts for every selected source record.
var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Delete the directory accounts of all selected source records",
	Long: `Delete the directory account of every selected source record. Intended
for resetting a test tenant after seeding; never run this against production.

Examples:
  # Delete with interactive confirmation
  entra-sync clean

  # Delete with auto-confirm (non-interactive)
  entra-sync clean --yes`,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm destructive actions (non-interactive)")

	RootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, l, repo, dir, err := bootstrap(ctx)
	if err != nil {
		return err
	}

	if !confirmDestructiveAction() {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	cleaner := reconcile.NewCleaner(repo, dir, reconcileConfig(cfg), l)
	summary, err := cleaner.Run(ctx)
	if err != nil {
		return err
	}

	l.Info("clean finished",
		zap.Int("processed", summary.Processed),
		zap.Int("deleted", summary.Deleted),
		zap.Int("not_found", summary.NotFound),
		zap.Int("invalid", summary.Invalid),
		zap.Int("failed", summary.Failed),
	)

	return nil
}

// confirmDestructiveAction prompts the user for confirmation or uses --yes flag.
func confirmDestructiveAction() bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\n⚠️  Type 'yes' to confirm deletion of directory accounts: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	response = strings.TrimSpace(response)
	return response == "yes"
}
