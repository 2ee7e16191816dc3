package cli

import (
	"fmt"

	"github.com/alexanderramin/bidbook/internal/cli/formatter"
	"github.com/alexanderramin/bidbook/internal/domain"
	"github.com/alexanderramin/bidbook/internal/estimate"
	"github.com/alexanderramin/bidbook/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newQuoteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Estimate, store and track quotes",
	}

	cmd.AddCommand(
		newQuoteCalcCmd(app),
		newQuoteGenerateCmd(app),
		newQuoteListCmd(app),
		newQuoteShowCmd(app),
		newQuoteUpdateCmd(app),
		newQuoteDeleteCmd(app),
		newQuoteItemCmd(app),
	)

	return cmd
}

// pricingFlags registers --base-price and --hourly-rate. An unset rate uses
// the configured default.
func pricingFlags(fs *pflag.FlagSet, p *estimate.Params) {
	fs.Int64Var(&p.BasePrice, "base-price", 0, "Fixed base price added to the feature total")
	fs.Int64Var(&p.HourlyRate, "hourly-rate", 0, "Hourly rate (default from config)")
}

func (a *App) withDefaultRate(p estimate.Params) estimate.Params {
	if p.HourlyRate == 0 {
		p.HourlyRate = a.Config.Pricing.HourlyRate
	}
	return p
}

func newQuoteCalcCmd(app *App) *cobra.Command {
	var (
		leadID int64
		params estimate.Params
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Price a lead's in-scope features without saving",
		RunE: func(cmd *cobra.Command, args []string) error {
			br, err := app.Quotes.Calculate(cmd.Context(), leadID, app.withDefaultRate(params))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatBreakdown(fmt.Sprintf("Estimate for lead #%d", leadID), br))
			return nil
		},
	}

	cmd.Flags().Int64Var(&leadID, "lead", 0, "Lead ID")
	pricingFlags(cmd.Flags(), &params)
	_ = cmd.MarkFlagRequired("lead")

	return cmd
}

func newQuoteGenerateCmd(app *App) *cobra.Command {
	var req service.GenerateRequest

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Price a lead's features and save the result as a draft quote",
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Params = app.withDefaultRate(req.Params)
			gq, err := app.Quotes.Generate(cmd.Context(), req)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.FormatBreakdown(fmt.Sprintf("Quote #%d", gq.QuoteID), &gq.Breakdown))
			fmt.Fprintln(out, formatter.Success(fmt.Sprintf("Saved quote #%d with %d items", gq.QuoteID, len(gq.QuoteItems))))
			return nil
		},
	}

	cmd.Flags().Int64Var(&req.LeadID, "lead", 0, "Lead ID")
	cmd.Flags().StringVar(&req.Title, "title", "", "Quote title (default Quote-YYYY-MM-DD)")
	cmd.Flags().StringVar(&req.Notes, "notes", "", "Notes")
	pricingFlags(cmd.Flags(), &req.Params)
	_ = cmd.MarkFlagRequired("lead")

	return cmd
}

func newQuoteListCmd(app *App) *cobra.Command {
	var leadID int64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a lead's quotes",
		RunE: func(cmd *cobra.Command, args []string) error {
			quotes, err := app.Quotes.ListByLead(cmd.Context(), leadID)
			if err != nil {
				return err
			}
			if len(quotes) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No quotes found.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatQuoteList(quotes))
			return nil
		},
	}

	cmd.Flags().Int64Var(&leadID, "lead", 0, "Lead ID")
	_ = cmd.MarkFlagRequired("lead")

	return cmd
}

func newQuoteShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "show ID",
		Aliases: []string{"items"},
		Short:   "Show a quote with its line items",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			q, err := app.Quotes.GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			items, err := app.Quotes.ListItems(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatQuoteDetail(q, items))
			return nil
		},
	}
}

func newQuoteUpdateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change quote fields or move it through draft, sent, accepted, rejected",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			fs := cmd.Flags()
			p := domain.QuotePatch{
				Title: optString(fs, "title"),
				Notes: optString(fs, "notes"),
			}
			if p.BasePrice, err = optInt64(fs, "base-price"); err != nil {
				return err
			}
			if p.HourlyRate, err = optInt64(fs, "hourly-rate"); err != nil {
				return err
			}
			if p.TotalPrice, err = optInt64(fs, "total-price"); err != nil {
				return err
			}
			if p.TotalHours, err = optFloat(fs, "total-hours"); err != nil {
				return err
			}
			if p.Status, err = optStatus(fs, "status", domain.ParseQuoteStatus); err != nil {
				return err
			}

			n, err := app.Quotes.Update(cmd.Context(), id, p)
			if err != nil {
				return err
			}
			reportChanges(cmd.OutOrStdout(), "quote", id, n)
			return nil
		},
	}

	cmd.Flags().String("title", "", "Title")
	cmd.Flags().String("notes", "", "Notes")
	cmd.Flags().String("base-price", "", "Base price")
	cmd.Flags().String("hourly-rate", "", "Hourly rate")
	cmd.Flags().String("total-price", "", "Total price")
	cmd.Flags().String("total-hours", "", "Total hours")
	cmd.Flags().String("status", "", "draft, sent, accepted or rejected")

	return cmd
}

func newQuoteDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a quote and its items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ok, err := confirm(app, yes, fmt.Sprintf("Delete quote #%d and its items?", id))
			if err != nil || !ok {
				return err
			}
			n, err := app.Quotes.Delete(cmd.Context(), id)
			if err != nil {
				return err
			}
			reportDeleted(cmd.OutOrStdout(), "quote", id, n)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")

	return cmd
}

func newQuoteItemCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Add or remove quote line items by hand",
	}
	cmd.AddCommand(newQuoteItemAddCmd(app), newQuoteItemDeleteCmd(app))
	return cmd
}

func newQuoteItemAddCmd(app *App) *cobra.Command {
	var (
		it         domain.QuoteItem
		complexity string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a line item to a quote",
		RunE: func(cmd *cobra.Command, args []string) error {
			it.Complexity = domain.Complexity(complexity)
			it.FeatureID = int64Flag(cmd.Flags(), "feature")
			if !cmd.Flags().Changed("total") {
				it.TotalPrice = estimate.Round(it.Hours * float64(it.RatePerHour) * it.Complexity.Factor())
			}
			if err := app.Quotes.AddItem(cmd.Context(), &it); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf(
				"Added item #%d %q at %s", it.ID, it.ItemName, formatter.Money(it.TotalPrice))))
			return nil
		},
	}

	cmd.Flags().Int64Var(&it.QuoteID, "quote", 0, "Quote ID")
	cmd.Flags().StringVar(&it.ItemName, "name", "", "Item name")
	cmd.Flags().StringVar(&it.ItemDescription, "description", "", "Description")
	cmd.Flags().Float64Var(&it.Hours, "hours", 0, "Hours")
	cmd.Flags().Int64Var(&it.RatePerHour, "rate", 0, "Rate per hour")
	cmd.Flags().Int64Var(&it.TotalPrice, "total", 0, "Total price (default hours × rate × complexity)")
	cmd.Flags().StringVar(&complexity, "complexity", "M", "S, M or L")
	cmd.Flags().Int64("feature", 0, "Feature the item was priced from")
	_ = cmd.MarkFlagRequired("quote")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newQuoteItemDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Remove a line item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			n, err := app.Quotes.DeleteItem(cmd.Context(), id)
			if err != nil {
				return err
			}
			reportDeleted(cmd.OutOrStdout(), "quote item", id, n)
			return nil
		},
	}
}
