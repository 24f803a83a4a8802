package reconcile

import (
	"context"
	"fmt"

	"entra-sync/core/directory"
	"entra-sync/core/source"

	"go.uber.org/zap"
)

// Cleaner deletes every directory account matching an eligible source
// record. It is the destructive inverse of the engine and is only reachable
// through the clean command's confirmation gate.
type Cleaner struct {
	repo source.Repository
	dir  directory.Client
	cfg  Config
	log  *zap.Logger
}

// NewCleaner creates a bulk-delete pass.
func NewCleaner(repo source.Repository, dir directory.Client, cfg Config, log *zap.Logger) *Cleaner {
	return &Cleaner{repo: repo, dir: dir, cfg: cfg, log: log}
}

// Run looks up each selected record's account by principal name and deletes
// it. Accounts that no longer exist are counted, not treated as failures.
// Per-record failures never abort the pass.
func (c *Cleaner) Run(ctx context.Context) (*CleanSummary, error) {
	records, err := c.repo.Records(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read source records: %w", err)
	}

	summary := &CleanSummary{}

	for _, record := range records {
		summary.Processed++

		if record.UID == "" {
			summary.Invalid++
			c.log.Warn("skipping record: missing uid")
			continue
		}

		principalName := PrincipalName(record.UID, c.cfg.Domain)
		log := c.log.With(zap.String("principal_name", principalName))

		account, err := c.dir.FindByPrincipalName(ctx, principalName, []string{"id", "userPrincipalName"})
		if err != nil {
			summary.Failed++
			log.Error("lookup failed", zap.Error(err))
			continue
		}
		if account == nil {
			summary.NotFound++
			log.Info("no matching account; possibly already deleted")
			continue
		}

		if err := c.dir.Delete(ctx, account.ID); err != nil {
			summary.Failed++
			log.Error("delete failed", zap.String("account_id", account.ID), zap.Error(err))
			continue
		}

		summary.Deleted++
		log.Info("account deleted", zap.String("account_id", account.ID))
	}

	c.log.Info("clean complete",
		zap.Int("processed", summary.Processed),
		zap.Int("deleted", summary.Deleted),
		zap.Int("not_found", summary.NotFound),
		zap.Int("failed", summary.Failed),
	)

	return summary, nil
}
