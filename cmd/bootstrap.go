package cmd

import (
	"context"
	"fmt"

	"entra-sync/core/config"
	"entra-sync/core/directory"
	"entra-sync/core/logger"
	"entra-sync/core/reconcile"
	"entra-sync/core/source"

	"go.uber.org/zap"
)

// bootstrap loads and validates configuration, builds the logger, and
// connects to both backends. Any failure here is fatal: the command
// returns the error and the process exits non-zero before any record is
// processed.
func bootstrap(ctx context.Context) (*config.Config, *zap.Logger, source.Repository, directory.Client, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, nil, err
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	repo, err := source.Connect(ctx, cfg.Mongo)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	dir, err := directory.NewClient(ctx, cfg.Graph)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	return cfg, l, repo, dir, nil
}

// reconcileConfig projects the loaded configuration into the engine's
// policy inputs.
func reconcileConfig(cfg *config.Config) reconcile.Config {
	return reconcile.Config{
		Domain:               cfg.Graph.Domain,
		AffiliationAttribute: cfg.Graph.AffiliationAttribute,
	}
}
