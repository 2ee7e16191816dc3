package cli

import (
	"fmt"

	"github.com/alexanderramin/bidbook/internal/cli/formatter"
	"github.com/alexanderramin/bidbook/internal/domain"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage project tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskUpdateCmd(app),
		newTaskDoneCmd(app),
		newTaskDeleteCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var (
		t      domain.ProjectTask
		status string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task to a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			if status != "" {
				s, err := domain.ParseTaskStatus(status)
				if err != nil {
					return err
				}
				t.Status = s
			}
			if err := app.ProjectTasks.Create(cmd.Context(), &t); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Added task #%d %q", t.ID, t.Title)))
			return nil
		},
	}

	cmd.Flags().Int64Var(&t.ProjectID, "project", 0, "Project ID")
	cmd.Flags().StringVar(&t.Title, "title", "", "Task title")
	cmd.Flags().StringVar(&t.Description, "description", "", "Description")
	cmd.Flags().StringVar(&status, "status", "", "todo, doing or done")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var projectID int64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a project's tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := app.ProjectTasks.ListByProject(cmd.Context(), projectID)
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tasks found.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTaskList(tasks))
			return nil
		},
	}

	cmd.Flags().Int64Var(&projectID, "project", 0, "Project ID")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newTaskUpdateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change task fields; only the flags given are written",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			fs := cmd.Flags()
			p := domain.ProjectTaskPatch{
				Title:       optString(fs, "title"),
				Description: optString(fs, "description"),
			}
			if p.Status, err = optStatus(fs, "status", domain.ParseTaskStatus); err != nil {
				return err
			}
			n, err := app.ProjectTasks.Update(cmd.Context(), id, p)
			if err != nil {
				return err
			}
			reportChanges(cmd.OutOrStdout(), "task", id, n)
			return nil
		},
	}

	cmd.Flags().String("title", "", "Task title")
	cmd.Flags().String("description", "", "Description")
	cmd.Flags().String("status", "", "todo, doing or done")

	return cmd
}

func newTaskDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done ID",
		Short: "Mark a task done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			n, err := app.ProjectTasks.Update(cmd.Context(), id, domain.ProjectTaskPatch{
				Status: domain.Some(domain.TaskDone),
			})
			if err != nil {
				return err
			}
			reportChanges(cmd.OutOrStdout(), "task", id, n)
			return nil
		},
	}
}

func newTaskDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a task with its timesheets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ok, err := confirm(app, yes, fmt.Sprintf("Delete task #%d with its timesheets?", id))
			if err != nil || !ok {
				return err
			}
			n, err := app.ProjectTasks.Delete(cmd.Context(), id)
			if err != nil {
				return err
			}
			reportDeleted(cmd.OutOrStdout(), "task", id, n)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")

	return cmd
}
