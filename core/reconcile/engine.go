package reconcile

import (
	"context"
	"fmt"

	"entra-sync/core/directory"
	"entra-sync/core/secret"
	"entra-sync/core/source"

	"go.uber.org/zap"
)

// Engine reconciles source records against directory accounts, one record
// at a time: lookup by derived principal name, then create, update, or
// skip. Execution is strictly sequential; no directory call overlaps
// another, which keeps diff-then-act free of interleaving and avoids
// rate-limit contention.
type Engine struct {
	repo     source.Repository
	dir      directory.Client
	generate func(int) (string, error)
	cfg      Config
	log      *zap.Logger
}

// NewEngine creates a reconciliation engine.
func NewEngine(repo source.Repository, dir directory.Client, cfg Config, log *zap.Logger) *Engine {
	return &Engine{
		repo:     repo,
		dir:      dir,
		generate: secret.Generate,
		cfg:      cfg,
		log:      log,
	}
}

// Run processes every selected source record and returns the aggregated
// summary. A source query failure is fatal; every per-record failure is
// logged, counted, and the loop continues.
//
// Running twice against an unchanged source yields only skips on the second
// pass: lookup is keyed by the deterministic principal name, so no
// duplicate accounts can be created.
func (e *Engine) Run(ctx context.Context, opts Options) (*Summary, error) {
	records, err := e.repo.Records(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read source records: %w", err)
	}

	summary := &Summary{}
	for _, record := range records {
		e.process(ctx, record, opts, summary)
	}

	e.log.Info("reconciliation complete",
		zap.Int("processed", summary.Processed),
		zap.Int("created", summary.Created),
		zap.Int("updated", summary.Updated),
		zap.Int("skipped", summary.Skipped),
		zap.Int("invalid", summary.Invalid),
		zap.Int("failed", summary.Failed),
	)

	return summary, nil
}

func (e *Engine) process(ctx context.Context, record source.Record, opts Options, summary *Summary) {
	summary.Processed++

	// Invalid records are absorbed here: no directory call is made.
	if !record.Valid() {
		summary.Invalid++
		e.log.Warn("skipping record: missing uid or email",
			zap.String("uid", record.UID),
			zap.String("email", record.Email),
		)
		return
	}

	principalName := PrincipalName(record.UID, e.cfg.Domain)
	log := e.log.With(zap.String("principal_name", principalName))

	account, err := e.dir.FindByPrincipalName(ctx, principalName, SelectFields(e.cfg.AffiliationAttribute))
	if err != nil {
		summary.Failed++
		log.Error("lookup failed", zap.Error(err))
		return
	}

	if account == nil {
		e.create(ctx, record, principalName, opts, summary, log)
		return
	}

	// The anchor is write-once: a mismatch is reported, never repaired.
	if account.OnPremisesImmutableID != "" && account.OnPremisesImmutableID != record.UID {
		log.Warn("immutable ID does not match source uid; it will not be updated",
			zap.String("existing", account.OnPremisesImmutableID),
			zap.String("source_uid", record.UID),
		)
	}

	changes := Diff(record, *account, e.cfg.AffiliationAttribute)
	if len(changes) == 0 {
		summary.Skipped++
		log.Info("account up to date")
		return
	}

	for _, change := range changes {
		log.Info("attribute drift",
			zap.String("field", string(change.Field)),
			zap.String("current", change.Current),
			zap.String("desired", change.Desired),
		)
	}

	if opts.DryRun {
		summary.Updated++
		log.Info("dry-run: update not applied", zap.Int("changes", len(changes)))
		return
	}

	if err := e.dir.Update(ctx, account.ID, UpdatePayload(record, e.cfg.AffiliationAttribute)); err != nil {
		summary.Failed++
		log.Error("update failed", zap.String("account_id", account.ID), zap.Error(err))
		return
	}

	summary.Updated++
	log.Info("account updated", zap.String("account_id", account.ID), zap.Int("changes", len(changes)))
}

func (e *Engine) create(ctx context.Context, record source.Record, principalName string, opts Options, summary *Summary, log *zap.Logger) {
	if opts.DryRun {
		summary.Created++
		log.Info("dry-run: account not created")
		return
	}

	credential, err := e.generate(secret.DefaultLength)
	if err != nil {
		summary.Failed++
		log.Error("failed to generate initial credential", zap.Error(err))
		return
	}

	payload := CreatePayload(record, principalName, e.cfg.AffiliationAttribute, record.UID, credential)

	created, err := e.dir.Create(ctx, payload)
	if err != nil {
		summary.Failed++
		log.Error("create failed", zap.Error(err))
		return
	}

	summary.Created++
	log.Info("account created", zap.String("account_id", created.ID))
}
