package cli

import (
	"fmt"

	"github.com/alexanderramin/bidbook/internal/cli/formatter"
	"github.com/alexanderramin/bidbook/internal/domain"
	"github.com/spf13/cobra"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectSummaryCmd(app),
		newProjectUpdateCmd(app),
		newProjectDeleteCmd(app),
	)

	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	var (
		p      domain.Project
		status string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Open a project directly, without a lead",
		RunE: func(cmd *cobra.Command, args []string) error {
			p.LeadID = int64Flag(cmd.Flags(), "lead")
			if p.HourlyRate == 0 {
				p.HourlyRate = app.Config.Pricing.HourlyRate
			}
			if status != "" {
				s, err := domain.ParseProjectStatus(status)
				if err != nil {
					return err
				}
				p.Status = s
			}
			if err := app.Projects.Create(cmd.Context(), &p); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Created project #%d %q", p.ID, p.Name)))
			return nil
		},
	}

	cmd.Flags().StringVar(&p.Name, "name", "", "Project name")
	cmd.Flags().Int64("lead", 0, "Lead the project came from")
	cmd.Flags().Int64Var(&p.BasePrice, "base-price", 0, "Fixed base price")
	cmd.Flags().Int64Var(&p.HourlyRate, "hourly-rate", 0, "Hourly rate (default from config)")
	cmd.Flags().StringVar(&status, "status", "", "active, paused or completed")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Projects.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No projects found.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProjectList(projects))
			return nil
		},
	}
}

func newProjectSummaryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "summary ID",
		Aliases: []string{"show"},
		Short:   "Show task progress, logged time and billable amount",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			s, err := app.Projects.Summary(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProjectSummary(p, s))
			return nil
		},
	}
}

func newProjectUpdateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change project fields; only the flags given are written",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			fs := cmd.Flags()
			p := domain.ProjectPatch{Name: optString(fs, "name")}
			if p.LeadID, err = optInt64(fs, "lead"); err != nil {
				return err
			}
			if p.BasePrice, err = optInt64(fs, "base-price"); err != nil {
				return err
			}
			if p.HourlyRate, err = optInt64(fs, "hourly-rate"); err != nil {
				return err
			}
			if p.Status, err = optStatus(fs, "status", domain.ParseProjectStatus); err != nil {
				return err
			}

			n, err := app.Projects.Update(cmd.Context(), id, p)
			if err != nil {
				return err
			}
			reportChanges(cmd.OutOrStdout(), "project", id, n)
			return nil
		},
	}

	cmd.Flags().String("name", "", "Project name")
	cmd.Flags().String("lead", "", `Lead ID ("none" unlinks)`)
	cmd.Flags().String("base-price", "", "Base price")
	cmd.Flags().String("hourly-rate", "", "Hourly rate")
	cmd.Flags().String("status", "", "active, paused or completed")

	return cmd
}

func newProjectDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a project with its tasks and timesheets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ok, err := confirm(app, yes, fmt.Sprintf("Delete project #%d with its tasks and timesheets?", id))
			if err != nil || !ok {
				return err
			}
			n, err := app.Projects.Delete(cmd.Context(), id)
			if err != nil {
				return err
			}
			reportDeleted(cmd.OutOrStdout(), "project", id, n)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")

	return cmd
}
