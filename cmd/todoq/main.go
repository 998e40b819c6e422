// Package main is the entry point for the todoq CLI.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"todoq/internal/backend/googletasks"
	"todoq/internal/backend/local"
	"todoq/internal/backend/memory"
	"todoq/internal/cli"
	"todoq/internal/commands"
	"todoq/internal/config"
	"todoq/internal/task"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create repository factory
	factory := func(ctx context.Context, cfg *config.Config) (task.Repository, error) {
		switch cfg.Backend {
		case config.BackendMemory:
			return memory.New(), nil
		case config.BackendLocal:
			level := slog.LevelWarn
			if cfg.Debug {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			return local.Open(cfg.DataDir, logger)
		case config.BackendGoogleTasks:
			return googletasks.New(ctx, cfg)
		default:
			return nil, fmt.Errorf("unknown backend: %s", cfg.Backend)
		}
	}

	// Create dispatcher
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	// Run and exit with code
	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}
