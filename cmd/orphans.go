package cmd

import (
	"context"

	"entra-sync/core/config"
	"entra-sync/core/directory"
	"entra-sync/core/reconcile"
	"entra-sync/core/source"
	"entra-sync/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// orphansCmd runs only the orphan scan.
var orphansCmd = &cobra.Command{
	Use:   "orphans",
	Short: "Report directory accounts with no matching source record",
	Long: `Enumerate every account in the directory and report those whose
derived source key has no matching source record, excluding the keep-list.

A non-empty report is written to the artifact file (ORPHANS_REPORT_PATH)
and, when storage is enabled, archived to object storage.`,
	RunE: runOrphans,
}

func init() {
	RootCmd.AddCommand(orphansCmd)
}

func runOrphans(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, l, repo, dir, err := bootstrap(ctx)
	if err != nil {
		return err
	}

	return runOrphanScan(ctx, cfg, l, repo, dir)
}

// runOrphanScan performs the scan, reports every orphan, and persists the
// report artifact when at least one orphan was found.
func runOrphanScan(ctx context.Context, cfg *config.Config, l *zap.Logger, repo source.Repository, dir directory.Client) error {
	scanner := reconcile.NewScanner(repo, dir, reconcileConfig(cfg), cfg.Orphans.KeepListEntries(), l)

	report, err := scanner.Scan(ctx)
	if err != nil {
		return err
	}

	if len(report.Orphans) == 0 {
		l.Info("no orphaned accounts found", zap.Int("accounts", report.Total))
		return nil
	}

	for _, principalName := range report.Orphans {
		l.Warn("orphaned account", zap.String("principal_name", principalName))
	}

	written, err := reconcile.WriteReport(report, cfg.Orphans.ReportPath)
	if err != nil {
		return err
	}
	if written {
		l.Info("orphan report written",
			zap.String("path", cfg.Orphans.ReportPath),
			zap.Int("orphans", len(report.Orphans)),
		)
	}

	if cfg.Storage.Enabled {
		archiveReport(ctx, cfg, l, report)
	}

	return nil
}

// archiveReport uploads the report to object storage. Archiving is best
// effort: failures are logged, never fatal.
func archiveReport(ctx context.Context, cfg *config.Config, l *zap.Logger, report *reconcile.Report) {
	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		l.Warn("report archiving unavailable", zap.Error(err))
		return
	}

	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
	if err != nil || !exists {
		l.Warn("archive bucket unavailable",
			zap.String("bucket", cfg.Storage.Bucket),
			zap.Error(err),
		)
		return
	}

	name, err := reconcile.ArchiveReport(ctx, client, cfg.Storage.Bucket, report)
	if err != nil {
		l.Warn("failed to archive orphan report", zap.Error(err))
		return
	}

	l.Info("orphan report archived",
		zap.String("bucket", cfg.Storage.Bucket),
		zap.String("object", name),
	)
}
