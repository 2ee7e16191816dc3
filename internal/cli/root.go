// Package cli is the bidbook command tree.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/alexanderramin/bidbook/internal/config"
	"github.com/alexanderramin/bidbook/internal/gateway"
	"github.com/spf13/cobra"
)

// App holds what the commands need: the services, the gateway that exposes
// them by operation name, and runtime settings.
type App struct {
	gateway.Services
	Gateway *gateway.Gateway
	Config  config.Config
	Logger  *slog.Logger

	// IsInteractive reports whether stdin is a terminal, which enables
	// forms and confirmations. Nil means never.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) logger() *slog.Logger {
	if a.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return a.Logger
}

// NewRootCmd creates the top-level "bidbook" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "bidbook",
		Short:         "Leads, quotes, projects and timesheets for freelance work",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newInitCmd(app),
		newLeadCmd(app),
		newFeatureCmd(app),
		newQuoteCmd(app),
		newProjectCmd(app),
		newTaskCmd(app),
		newTimesheetCmd(app),
		newUserCmd(app),
		newTodoCmd(app),
		newCallCmd(app),
		newServeCmd(app),
	)

	return root
}

func newInitCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the database tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Schema.CreateTables(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Database ready at %s\n", app.Config.DB.Path)
			return nil
		},
	}
}
