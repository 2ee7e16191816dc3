package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/bidbook/internal/cli"
	"github.com/alexanderramin/bidbook/internal/config"
	"github.com/alexanderramin/bidbook/internal/db"
	"github.com/alexanderramin/bidbook/internal/gateway"
	_ "github.com/joho/godotenv/autoload"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := cfg.NewLogger(os.Stderr)

	database, err := db.OpenDB(cfg.DB.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	svc := gateway.NewServices(database)
	app := &cli.App{
		Services: svc,
		Gateway:  gateway.New(svc, gateway.WithObserver(gateway.NewLogObserver(logger))),
		Config:   cfg,
		Logger:   logger,
	}

	// Forms, confirmations and the stopwatch only run on a terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).ExecuteContext(context.Background())
}
