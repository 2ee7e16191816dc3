package cli

import (
	"fmt"
	"io"

	"github.com/alexanderramin/bidbook/internal/cli/formatter"
	"github.com/alexanderramin/bidbook/internal/domain"
	"github.com/alexanderramin/bidbook/internal/service"
	"github.com/spf13/cobra"
)

func newLeadCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lead",
		Short: "Manage leads",
	}

	cmd.AddCommand(
		newLeadAddCmd(app),
		newLeadListCmd(app),
		newLeadShowCmd(app),
		newLeadUpdateCmd(app),
		newLeadDeleteCmd(app),
		newLeadConvertCmd(app),
		newLeadImportCmd(app),
	)

	return cmd
}

func newLeadAddCmd(app *App) *cobra.Command {
	var in leadInput
	var status string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new lead",
		Long:  "Record a new lead. Without --client in a terminal, an intake form opens.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("client") && app.interactive() {
				if err := runForm(leadForm(&in)); err != nil {
					return err
				}
			}

			l, err := in.lead()
			if err != nil {
				return err
			}
			if status != "" {
				if l.Status, err = domain.ParseLeadStatus(status); err != nil {
					return err
				}
			}

			if err := app.Leads.Create(cmd.Context(), l); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Created lead #%d for %s", l.ID, l.ClientName)))
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Client, "client", "", "Client name")
	cmd.Flags().StringVar(&in.Project, "project", "", "Project name")
	cmd.Flags().StringVar(&in.BudgetMin, "budget-min", "", "Lower budget bound")
	cmd.Flags().StringVar(&in.BudgetMax, "budget-max", "", "Upper budget bound")
	cmd.Flags().StringVar(&in.Deadline, "deadline", "", "Deadline (YYYY-MM-DD)")
	cmd.Flags().StringVar(&in.Notes, "notes", "", "Free-form notes")
	cmd.Flags().StringVar(&status, "status", "", "Initial status (default lead)")

	return cmd
}

func newLeadListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List leads, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			leads, err := app.Leads.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(leads) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No leads found.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatLeadList(leads))
			return nil
		},
	}
}

func newLeadShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a lead with its features and quotes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			l, err := app.Leads.GetByID(ctx, id)
			if err != nil {
				return err
			}
			features, err := app.Features.ListByLead(ctx, id)
			if err != nil {
				return err
			}
			quotes, err := app.Quotes.ListByLead(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatLeadDetail(l, features, quotes))
			return nil
		},
	}
}

func newLeadUpdateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change lead fields; only the flags given are written",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			fs := cmd.Flags()
			p := domain.LeadPatch{
				ClientName:  optString(fs, "client"),
				ProjectName: optString(fs, "project"),
				Deadline:    optString(fs, "deadline"),
				Notes:       optString(fs, "notes"),
			}
			if p.BudgetMin, err = optInt64(fs, "budget-min"); err != nil {
				return err
			}
			if p.BudgetMax, err = optInt64(fs, "budget-max"); err != nil {
				return err
			}
			if p.Status, err = optStatus(fs, "status", domain.ParseLeadStatus); err != nil {
				return err
			}

			n, err := app.Leads.Update(cmd.Context(), id, p)
			if err != nil {
				return err
			}
			reportChanges(cmd.OutOrStdout(), "lead", id, n)
			return nil
		},
	}

	cmd.Flags().String("client", "", "Client name")
	cmd.Flags().String("project", "", "Project name")
	cmd.Flags().String("budget-min", "", `Lower budget bound ("none" clears)`)
	cmd.Flags().String("budget-max", "", `Upper budget bound ("none" clears)`)
	cmd.Flags().String("deadline", "", "Deadline (YYYY-MM-DD)")
	cmd.Flags().String("notes", "", "Free-form notes")
	cmd.Flags().String("status", "", "lead, qualified, negotiating, won or lost")

	return cmd
}

func newLeadDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a lead with its features and quotes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ok, err := confirm(app, yes, fmt.Sprintf("Delete lead #%d with its features and quotes?", id))
			if err != nil || !ok {
				return err
			}
			n, err := app.Leads.Delete(cmd.Context(), id)
			if err != nil {
				return err
			}
			reportDeleted(cmd.OutOrStdout(), "lead", id, n)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")

	return cmd
}

func newLeadConvertCmd(app *App) *cobra.Command {
	var req service.ConvertRequest

	cmd := &cobra.Command{
		Use:   "convert ID",
		Short: "Mark a lead won and open a project for it",
		Long: "Mark a lead won and open a project for it. Rates not given on the command line\n" +
			"come from the lead's accepted quote, then from the defaults.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			req.LeadID = id
			p, err := app.Leads.Convert(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf(
				"Lead #%d won; project #%d %q at %s/h", id, p.ID, p.Name, formatter.Money(p.HourlyRate))))
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "Project name (default: the lead's project or client name)")
	cmd.Flags().Int64Var(&req.BasePrice, "base-price", 0, "Fixed base price")
	cmd.Flags().Int64Var(&req.HourlyRate, "hourly-rate", 0, "Hourly rate")

	return cmd
}

func reportChanges(w io.Writer, kind string, id, n int64) {
	if n == 0 {
		fmt.Fprintf(w, "No changes to %s #%d.\n", kind, id)
		return
	}
	fmt.Fprintln(w, formatter.Success(fmt.Sprintf("Updated %s #%d", kind, id)))
}

func reportDeleted(w io.Writer, kind string, id, n int64) {
	if n == 0 {
		fmt.Fprintf(w, "No %s #%d to delete.\n", kind, id)
		return
	}
	fmt.Fprintln(w, formatter.Success(fmt.Sprintf("Deleted %s #%d", kind, id)))
}
