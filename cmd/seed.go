package cmd

import (
	"context"
	"fmt"

	"entra-sync/core/config"
	"entra-sync/core/logger"
	"entra-sync/core/source"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the seed command
	seedCount       int
	seedEmailPrefix string
	seedEmailDomain string
)

// seedCmd inserts randomly generated source records for test runs.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert randomly generated source records",
	Long: `Insert randomly generated source records into the document store,
all marked as eligible for synchronization. Intended for populating a test
environment before a sync run.

Examples:
  # Insert five records with default addressing
  entra-sync seed

  # Insert fifty records under a recognizable prefix
  entra-sync seed --count 50 --email-prefix loadtest`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().IntVar(&seedCount, "count", 5, "Number of records to insert")
	seedCmd.Flags().StringVar(&seedEmailPrefix, "email-prefix", "seeded", "Local-part prefix for generated email addresses")
	seedCmd.Flags().StringVar(&seedEmailDomain, "email-domain", "example.com", "Domain for generated email addresses")

	RootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	seeder, err := source.NewSeeder(ctx, cfg.Mongo)
	if err != nil {
		return err
	}

	inserted, err := seeder.InsertRandom(ctx, seedCount, seedEmailPrefix, seedEmailDomain)
	if err != nil {
		return err
	}

	l.Info("seeded source records",
		zap.Int("inserted", inserted),
		zap.String("collection", cfg.Mongo.Collection),
	)

	return nil
}
