package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/dmitrijs2005/divergentflow/internal/buildinfo"
	"github.com/dmitrijs2005/divergentflow/internal/client/cli"
	"github.com/dmitrijs2005/divergentflow/internal/client/config"
	"github.com/dmitrijs2005/divergentflow/internal/logging"
)

func main() {
	if err := run(os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run wires the client and blocks until the REPL ends. Deferred cleanup has
// finished by the time it returns.
func run(stdout, stderr io.Writer) error {
	buildinfo.PrintBuildData(stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := config.LoadConfig()

	logger, err := logging.New(cfg.LogBackend, cfg.LogLevel, cfg.LogFormat, stderr)
	if err != nil {
		return err
	}
	if z, ok := logger.(*logging.ZapLogger); ok {
		defer func() { _ = z.Sync() }()
	}

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to start client: %w", err)
	}
	defer app.Close()

	app.Run(ctx)
	return nil
}
