package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/bidbook/internal/cli/formatter"
	"github.com/alexanderramin/bidbook/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTimesheetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "timesheet",
		Aliases: []string{"ts"},
		Short:   "Log and review time spent on projects",
	}

	cmd.AddCommand(
		newTimesheetAddCmd(app),
		newTimesheetListCmd(app),
		newTimesheetUpdateCmd(app),
		newTimesheetDeleteCmd(app),
		newTimesheetTrackCmd(app),
	)

	return cmd
}

func newTimesheetAddCmd(app *App) *cobra.Command {
	var (
		t          domain.Timesheet
		start, end string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Log time; give --minutes, or --end to derive it",
		RunE: func(cmd *cobra.Command, args []string) error {
			t.TaskID = int64Flag(cmd.Flags(), "task")

			t.StartTime = time.Now()
			if start != "" {
				st, err := parseTimeFlag(start)
				if err != nil {
					return err
				}
				t.StartTime = st
			}
			if end != "" {
				et, err := parseTimeFlag(end)
				if err != nil {
					return err
				}
				t.EndTime = &et
			}

			if err := app.Timesheets.Create(cmd.Context(), &t); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf(
				"Logged %s on project #%d (entry #%d)", formatter.FormatMinutes(t.DurationMinutes), t.ProjectID, t.ID)))
			return nil
		},
	}

	cmd.Flags().Int64Var(&t.ProjectID, "project", 0, "Project ID")
	cmd.Flags().Int64("task", 0, "Task within the project")
	cmd.Flags().StringVar(&t.Description, "description", "", "What was done")
	cmd.Flags().StringVar(&start, "start", "", "Start time (default now)")
	cmd.Flags().StringVar(&end, "end", "", "End time")
	cmd.Flags().IntVar(&t.DurationMinutes, "minutes", 0, "Duration in minutes")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newTimesheetListCmd(app *App) *cobra.Command {
	var projectID int64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a project's time entries, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.Timesheets.ListByProject(cmd.Context(), projectID)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No time logged.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTimesheetList(entries))
			return nil
		},
	}

	cmd.Flags().Int64Var(&projectID, "project", 0, "Project ID")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newTimesheetUpdateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change a time entry; only the flags given are written",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			fs := cmd.Flags()
			p := domain.TimesheetPatch{Description: optString(fs, "description")}
			if p.TaskID, err = optInt64(fs, "task"); err != nil {
				return err
			}
			if p.StartTime, err = optTime(fs, "start"); err != nil {
				return err
			}
			if p.EndTime, err = optTime(fs, "end"); err != nil {
				return err
			}
			if m, err := optInt64(fs, "minutes"); err != nil {
				return err
			} else if m.Set {
				p.DurationMinutes = domain.Optional[int]{Value: int(m.Value), Set: true, Null: m.Null}
			}

			n, err := app.Timesheets.Update(cmd.Context(), id, p)
			if err != nil {
				return err
			}
			reportChanges(cmd.OutOrStdout(), "timesheet", id, n)
			return nil
		},
	}

	cmd.Flags().String("task", "", `Task ID ("none" detaches)`)
	cmd.Flags().String("description", "", "What was done")
	cmd.Flags().String("start", "", "Start time")
	cmd.Flags().String("end", "", `End time ("none" clears)`)
	cmd.Flags().String("minutes", "", "Duration in minutes")

	return cmd
}

func newTimesheetDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a time entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			n, err := app.Timesheets.Delete(cmd.Context(), id)
			if err != nil {
				return err
			}
			reportDeleted(cmd.OutOrStdout(), "timesheet", id, n)
			return nil
		},
	}
}

func newTimesheetTrackCmd(app *App) *cobra.Command {
	var (
		projectID   int64
		description string
	)

	cmd := &cobra.Command{
		Use:   "track",
		Short: "Run a stopwatch and log the time when you stop it",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return errors.New("track needs an interactive terminal; use 'timesheet add --minutes' instead")
			}
			ctx := cmd.Context()
			p, err := app.Projects.GetByID(ctx, projectID)
			if err != nil {
				return err
			}
			taskID := int64Flag(cmd.Flags(), "task")
			label := p.Name
			if taskID != nil {
				t, err := app.ProjectTasks.GetByID(ctx, *taskID)
				if err != nil {
					return err
				}
				label += " › " + t.Title
			}

			prog := tea.NewProgram(newTrackModel(label, time.Now()),
				tea.WithContext(ctx),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			final, err := prog.Run()
			if err != nil {
				return err
			}

			m := final.(trackModel)
			if m.cancelled {
				fmt.Fprintln(cmd.OutOrStdout(), "Discarded.")
				return nil
			}
			entry := m.timesheet(projectID, taskID, description)
			if entry == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Less than a minute tracked; nothing logged.")
				return nil
			}
			if err := app.Timesheets.Create(ctx, entry); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf(
				"Logged %s on %s (entry #%d)", formatter.FormatMinutes(entry.DurationMinutes), label, entry.ID)))
			return nil
		},
	}

	cmd.Flags().Int64Var(&projectID, "project", 0, "Project ID")
	cmd.Flags().Int64("task", 0, "Task within the project")
	cmd.Flags().StringVar(&description, "description", "", "What you are working on")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}
