package cmd

import (
	"context"

	"entra-sync/core/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the sync command
	dryRunSync  bool
	skipOrphans bool
)

// syncCmd runs the reconciliation engine and the orphan scan.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Reconcile source records against directory accounts",
	Long: `Reconcile every selected source record against the directory:
create missing accounts, patch drifted attributes, skip accounts that are
up to date. Afterwards, scan the full directory for orphaned accounts.

Examples:
  # Full run: upsert pass followed by the orphan scan
  entra-sync sync

  # Report planned creates/updates without touching the directory
  entra-sync sync --dry-run

  # Upsert only
  entra-sync sync --skip-orphans`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().BoolVar(&dryRunSync, "dry-run", false, "Report planned actions without calling the directory's mutation endpoints")
	syncCmd.Flags().BoolVar(&skipOrphans, "skip-orphans", false, "Skip the orphan scan after the upsert pass")

	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, l, repo, dir, err := bootstrap(ctx)
	if err != nil {
		return err
	}

	l.Info("starting reconciliation", zap.Bool("dry_run", dryRunSync))

	engine := reconcile.NewEngine(repo, dir, reconcileConfig(cfg), l)
	if _, err := engine.Run(ctx, reconcile.Options{DryRun: dryRunSync}); err != nil {
		return err
	}

	if skipOrphans {
		return nil
	}

	return runOrphanScan(ctx, cfg, l, repo, dir)
}
