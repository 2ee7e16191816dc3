package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/bidbook/internal/cli/formatter"
	"github.com/alexanderramin/bidbook/internal/domain"
	"github.com/alexanderramin/bidbook/internal/importer"
	"github.com/spf13/cobra"
)

func newLeadImportCmd(app *App) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import a lead and its features from a JSON or YAML brief",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			brief, err := importer.LoadBrief(args[0])
			if err != nil {
				return err
			}
			if errs := importer.ValidateBrief(brief); len(errs) > 0 {
				msgs := make([]string, len(errs))
				for i, e := range errs {
					msgs[i] = "  " + e.Error()
				}
				return fmt.Errorf("%w: %s has %d problem(s):\n%s",
					domain.ErrInvalidInput, args[0], len(errs), strings.Join(msgs, "\n"))
			}

			lead, features := importer.Convert(brief)
			out := cmd.OutOrStdout()
			if dryRun {
				fmt.Fprintf(out, "%s is valid: lead for %s with %d feature(s)\n",
					args[0], lead.ClientName, len(features))
				return nil
			}

			if err := app.Leads.Import(cmd.Context(), lead, features); err != nil {
				return err
			}
			app.logger().Info("brief imported", "lead_id", lead.ID, "features", len(features))
			fmt.Fprintln(out, formatter.Success(fmt.Sprintf(
				"Imported lead #%d for %s with %d feature(s)", lead.ID, lead.ClientName, len(features))))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "validate the brief without storing it")
	return cmd
}
