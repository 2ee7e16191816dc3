package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alexanderramin/bidbook/internal/httpapi"
	"github.com/spf13/cobra"
)

func newCallCmd(app *App) *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "call OPERATION [JSON]",
		Short: "Invoke a named operation and print the JSON envelope",
		Long: "Invoke a named operation the way the HTTP API does.\n" +
			"The payload is the second argument, or stdin when the argument is \"-\".",
		Example: `  bidbook call add-lead '{"client_name":"Acme"}'
  bidbook call calculate-quote '{"lead_id":1,"hourly_rate":600}'
  bidbook call --list`,
		Args: cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if list {
				fmt.Fprintln(out, strings.Join(app.Gateway.Operations(), "\n"))
				return nil
			}
			if len(args) == 0 {
				return cmd.Help()
			}

			var payload []byte
			if len(args) == 2 {
				payload = []byte(args[1])
				if args[1] == "-" {
					b, err := io.ReadAll(cmd.InOrStdin())
					if err != nil {
						return fmt.Errorf("reading payload: %w", err)
					}
					payload = b
				}
			}

			env := app.Gateway.Invoke(cmd.Context(), args[0], payload)
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if err := enc.Encode(env); err != nil {
				return err
			}
			if !env.Success {
				return fmt.Errorf("%s failed", args[0])
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "List operation names")

	return cmd
}

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the operations over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = app.Config.Addr()
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return httpapi.Serve(ctx, addr, app.Gateway, app.logger())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config)")

	return cmd
}
