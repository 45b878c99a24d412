package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/PropForecast_Go/internal/config"
	"github.com/osse101/PropForecast_Go/internal/database"
)

// ResetCommand drops and recreates the application database, then migrates it
type ResetCommand struct{}

func (c *ResetCommand) Name() string {
	return "reset"
}

func (c *ResetCommand) Description() string {
	return "Drop, recreate and migrate the database (destroys all data)"
}

func (c *ResetCommand) Run(ctx context.Context, args []string) error {
	return prepareDatabase(ctx, true)
}

// SetupCommand creates the application database when missing, then migrates it
type SetupCommand struct{}

func (c *SetupCommand) Name() string {
	return "setup"
}

func (c *SetupCommand) Description() string {
	return "Create the database if missing and apply migrations"
}

func (c *SetupCommand) Run(ctx context.Context, args []string) error {
	return prepareDatabase(ctx, false)
}

func prepareDatabase(ctx context.Context, drop bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Administrative statements run against the maintenance database
	admin := *cfg
	admin.DBName = "postgres"
	conn, err := pgx.Connect(ctx, admin.GetDBConnString())
	if err != nil {
		return fmt.Errorf("unable to connect to postgres database: %w", err)
	}
	defer conn.Close(ctx)

	name := pgx.Identifier{cfg.DBName}.Sanitize()

	if drop {
		PrintInfo("Terminating existing connections to %s...", cfg.DBName)
		if _, err := conn.Exec(ctx,
			`SELECT pg_terminate_backend(pid) FROM pg_stat_activity WHERE datname = $1 AND pid <> pg_backend_pid()`,
			cfg.DBName); err != nil {
			PrintError("Failed to terminate connections: %v", err)
		}

		PrintInfo("Dropping database %s if it exists...", cfg.DBName)
		if _, err := conn.Exec(ctx, "DROP DATABASE IF EXISTS "+name); err != nil {
			return fmt.Errorf("failed to drop database: %w", err)
		}
	}

	var exists bool
	if err := conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DBName).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}
	if !exists {
		PrintInfo("Creating database %s...", cfg.DBName)
		if _, err := conn.Exec(ctx, "CREATE DATABASE "+name); err != nil {
			return fmt.Errorf("failed to create database: %w", err)
		}
	}

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		return err
	}

	PrintSuccess("Database %s is ready", cfg.DBName)
	return nil
}
