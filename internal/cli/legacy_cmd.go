package cli

import (
	"fmt"

	"github.com/alexanderramin/bidbook/internal/cli/formatter"
	"github.com/alexanderramin/bidbook/internal/domain"
	"github.com/spf13/cobra"
)

func newUserCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}

	var u domain.User
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Users.Create(cmd.Context(), &u); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Added user #%d %s", u.ID, u.Email)))
			return nil
		},
	}
	add.Flags().StringVar(&u.Name, "name", "", "Name")
	add.Flags().StringVar(&u.Email, "email", "", "Email address (unique)")
	_ = add.MarkFlagRequired("name")
	_ = add.MarkFlagRequired("email")

	list := &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := app.Users.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(users) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No users found.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatUserList(users))
			return nil
		},
	}

	cmd.AddCommand(add, list)
	return cmd
}

// newTodoCmd manages the free-standing task list, which predates projects
// and accepts any status string.
func newTodoCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todo",
		Short: "Manage the standalone todo list",
	}

	var t domain.Task
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a todo",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Todos.Create(cmd.Context(), &t); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Added todo #%d %q", t.ID, t.Title)))
			return nil
		},
	}
	add.Flags().StringVar(&t.Title, "title", "", "Title")
	add.Flags().StringVar(&t.Description, "description", "", "Description")
	add.Flags().StringVar(&t.Status, "status", "", "Status (default pending)")
	_ = add.MarkFlagRequired("title")

	list := &cobra.Command{
		Use:   "list",
		Short: "List todos",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := app.Todos.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No todos found.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTodoList(tasks))
			return nil
		},
	}

	status := &cobra.Command{
		Use:   "status ID STATUS",
		Short: "Set a todo's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			n, err := app.Todos.UpdateStatus(cmd.Context(), id, args[1])
			if err != nil {
				return err
			}
			reportChanges(cmd.OutOrStdout(), "todo", id, n)
			return nil
		},
	}

	cmd.AddCommand(add, list, status)
	return cmd
}
