package cli

import (
	"fmt"

	"github.com/alexanderramin/bidbook/internal/cli/formatter"
	"github.com/alexanderramin/bidbook/internal/domain"
	"github.com/spf13/cobra"
)

func newFeatureCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feature",
		Short: "Manage the feature list of a lead",
	}

	cmd.AddCommand(
		newFeatureAddCmd(app),
		newFeatureListCmd(app),
		newFeatureUpdateCmd(app),
		newFeatureDeleteCmd(app),
	)

	return cmd
}

func newFeatureAddCmd(app *App) *cobra.Command {
	var (
		f          domain.Feature
		complexity string
		outOfScope bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a feature to a lead",
		RunE: func(cmd *cobra.Command, args []string) error {
			f.Complexity = domain.ParseComplexity(complexity)
			f.InScope = !outOfScope
			if f.Name == "" {
				f.Name = domain.UnnamedFeature
			}
			if err := app.Features.Create(cmd.Context(), &f); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf(
				"Added feature #%d %q (%s, %s)", f.ID, f.Name, formatter.Hours(f.HoursEst), f.Complexity)))
			return nil
		},
	}

	cmd.Flags().Int64Var(&f.LeadID, "lead", 0, "Lead ID")
	cmd.Flags().StringVar(&f.Name, "name", "", "Feature name")
	cmd.Flags().Float64Var(&f.HoursEst, "hours", 0, "Estimated hours")
	cmd.Flags().StringVar(&complexity, "complexity", "M", "S, M or L")
	cmd.Flags().BoolVar(&outOfScope, "out-of-scope", false, "Keep the feature but leave it out of quotes")
	_ = cmd.MarkFlagRequired("lead")

	return cmd
}

func newFeatureListCmd(app *App) *cobra.Command {
	var leadID int64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a lead's features",
		RunE: func(cmd *cobra.Command, args []string) error {
			features, err := app.Features.ListByLead(cmd.Context(), leadID)
			if err != nil {
				return err
			}
			if len(features) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No features found.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatFeatureList(features))
			return nil
		},
	}

	cmd.Flags().Int64Var(&leadID, "lead", 0, "Lead ID")
	_ = cmd.MarkFlagRequired("lead")

	return cmd
}

func newFeatureUpdateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change feature fields; only the flags given are written",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			fs := cmd.Flags()
			p := domain.FeaturePatch{Name: optString(fs, "name")}
			if p.HoursEst, err = optFloat(fs, "hours"); err != nil {
				return err
			}
			if p.InScope, err = optBool(fs, "in-scope"); err != nil {
				return err
			}
			if c := optString(fs, "complexity"); c.Set {
				p.Complexity = domain.Some(domain.ParseComplexity(c.Value))
			}

			n, err := app.Features.Update(cmd.Context(), id, p)
			if err != nil {
				return err
			}
			reportChanges(cmd.OutOrStdout(), "feature", id, n)
			return nil
		},
	}

	cmd.Flags().String("name", "", "Feature name")
	cmd.Flags().String("hours", "", "Estimated hours")
	cmd.Flags().String("complexity", "", "S, M or L")
	cmd.Flags().String("in-scope", "", "true or false")

	return cmd
}

func newFeatureDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a feature; quotes keep their priced copy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ok, err := confirm(app, yes, fmt.Sprintf("Delete feature #%d?", id))
			if err != nil || !ok {
				return err
			}
			n, err := app.Features.Delete(cmd.Context(), id)
			if err != nil {
				return err
			}
			reportDeleted(cmd.OutOrStdout(), "feature", id, n)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")

	return cmd
}
