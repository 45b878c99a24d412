// Command migrate applies or rolls back the embedded SQL migrations.
//
//	migrate up
//	migrate down-to <version>
//	migrate status
//	migrate version
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/osse101/PropForecast_Go/internal/config"
	"github.com/osse101/PropForecast_Go/internal/database"
	"github.com/osse101/PropForecast_Go/internal/logger"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger.InitLogger(logger.ForEnvironment(cfg.Environment).
		Override(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName, cfg.Version))

	if err := run(context.Background(), cfg, os.Args[1], os.Args[2:]); err != nil {
		log.Fatalf("migrate %s: %v", os.Args[1], err)
	}
}

func run(ctx context.Context, cfg *config.Config, cmd string, args []string) error {
	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return err
	}
	defer pool.Close()

	m, err := database.NewMigrator(pool)
	if err != nil {
		return err
	}
	defer m.Close()

	switch cmd {
	case "up":
		return m.Up(ctx)
	case "down-to":
		if len(args) < 1 {
			return fmt.Errorf("target version required")
		}
		v, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid version %q: %w", args[0], err)
		}
		return m.DownTo(ctx, v)
	case "status":
		states, err := m.Status(ctx)
		if err != nil {
			return err
		}
		for _, s := range states {
			mark := "pending"
			if s.Applied {
				mark = "applied"
			}
			fmt.Printf("%05d  %-8s %s\n", s.Version, mark, s.Path)
		}
		return nil
	case "version":
		v, err := m.Version(ctx)
		if err != nil {
			return err
		}
		fmt.Println(v)
		return nil
	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func usage() {
	fmt.Println("Usage: migrate <up|down-to VERSION|status|version>")
}
