package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	registry := NewRegistry(
		&WaitForDBCommand{},
		&SeedCommand{},
		&ResetCommand{},
		&SetupCommand{},
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := registry.Dispatch(ctx, os.Args[1:])
	stop()

	if err != nil {
		PrintError("%v", err)
		if errors.Is(err, ErrUnknownCommand) {
			registry.WriteHelp(os.Stderr)
		}
		os.Exit(1)
	}
}
