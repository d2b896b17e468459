package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/awnumar/memguard"

	"github.com/iudanet/passkeeper/internal/cli"
	"github.com/iudanet/passkeeper/internal/config"
	"github.com/iudanet/passkeeper/internal/iocli"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Затираем ключи в памяти при выходе и по сигналу
	memguard.CatchInterrupt()
	defer memguard.Purge()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	c := cli.New(iocli.NewStdio(), cfg, cli.Open, cli.Version{
		Version:   Version,
		BuildDate: BuildDate,
		GitCommit: GitCommit,
	})
	defer func() {
		if err := c.Close(); err != nil {
			slog.Error("failed to close storage", "error", err)
		}
	}()

	if err := c.Command().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
