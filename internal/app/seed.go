package app

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/guttosm/tradeseed/config"
	"github.com/guttosm/tradeseed/internal/generator"
	"github.com/guttosm/tradeseed/internal/metrics"
	"github.com/guttosm/tradeseed/internal/seed"
	"github.com/guttosm/tradeseed/internal/validation"
)

// SeedConnector returns a seed.Connector that opens the configured database.
func SeedConnector(cfg config.Config) seed.Connector {
	return func(ctx context.Context) (seed.Store, error) {
		db, err := mongoOpener(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return newRepository(db), nil
	}
}

// RunSeed wires the seeding pipeline from cfg and executes a single run.
// Pipeline metrics are registered on reg.
func RunSeed(ctx context.Context, cfg config.Config, reg prometheus.Registerer) (*seed.Report, error) {
	seeder, err := seed.NewSeeder(
		SeedConnector(cfg),
		generator.New(nil),
		validation.New(),
		metrics.New(reg),
		seed.Options{Count: cfg.Seed.Count, Parallelism: cfg.Seed.Parallelism},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build seeder: %w", err)
	}
	return seeder.Run(ctx)
}
