package main

import (
	"context"
	"fmt"

	"github.com/osse101/PropForecast_Go/internal/bootstrap"
	"github.com/osse101/PropForecast_Go/internal/config"
	"github.com/osse101/PropForecast_Go/internal/database"
	"github.com/osse101/PropForecast_Go/internal/validation"
)

const defaultSeedFile = "configs/seed/sample.json"

type SeedCommand struct{}

func (c *SeedCommand) Name() string {
	return "seed"
}

func (c *SeedCommand) Description() string {
	return "Load fixture propositions, districts and electorate profiles [file]"
}

func (c *SeedCommand) Run(ctx context.Context, args []string) error {
	path := defaultSeedFile
	if len(args) > 0 {
		path = args[0]
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	PrintInfo("Reading %s...", path)
	data, err := bootstrap.LoadSeed(path, validation.NewSchemaValidator())
	if err != nil {
		return err
	}

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		return err
	}

	res, err := bootstrap.ApplySeed(ctx, bootstrap.InitializeRepositories(pool), data)
	if err != nil {
		return err
	}

	PrintSuccess("Seeded %d propositions, %d districts, %d electorate profiles",
		res.Propositions, res.Districts, res.ElectorateProfiles)
	return nil
}
