package main

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/PropForecast_Go/internal/config"
	"github.com/osse101/PropForecast_Go/internal/database"
)

const (
	waitMaxRetries    = 30
	waitRetryInterval = 2 * time.Second
)

type WaitForDBCommand struct{}

func (c *WaitForDBCommand) Name() string {
	return "wait-for-db"
}

func (c *WaitForDBCommand) Description() string {
	return "Wait for database to be ready (with retries)"
}

func (c *WaitForDBCommand) Run(ctx context.Context, args []string) error {
	PrintHeader("Waiting for database...")

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	for i := range waitMaxRetries {
		attemptCtx, cancel := context.WithTimeout(ctx, waitRetryInterval)
		pool, err := database.NewPool(attemptCtx, cfg.GetDBConnString(), 1, time.Minute, time.Minute)
		cancel()
		if err == nil {
			pool.Close()
			PrintSuccess("Database is ready")
			return nil
		}

		fmt.Printf("Database not ready (%d/%d): %v\n", i+1, waitMaxRetries, err)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitRetryInterval):
		}
	}

	return fmt.Errorf("database failed to become ready after %d attempts", waitMaxRetries)
}
