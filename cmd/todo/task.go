package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/todo-api/internal/api"
	"github.com/phrazzld/todo-api/internal/command"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/store"
	"github.com/spf13/cobra"
)

func newTaskCommand(state *cliState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Issue task commands against the configured store",
	}

	cmd.AddCommand(
		newTaskRegisterCommand(state),
		newTaskListCommand(state),
		newTaskCompleteCommand(state),
		newTaskDeadlinesCommand(state),
	)

	return cmd
}

// runWithApp builds the application for a single CLI command and releases
// it afterwards.
func runWithApp(cmd *cobra.Command, state *cliState, fn func(app *application) error) error {
	app, err := newApplication(cmd.Context(), state.config, state.logger)
	if err != nil {
		return err
	}
	defer app.cleanup()

	return fn(app)
}

func newTaskRegisterCommand(state *cliState) *cobra.Command {
	var title, category, due string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dueDate, err := time.ParseInLocation(api.DateLayout, due, time.UTC)
			if err != nil {
				return fmt.Errorf("invalid --due %q: expected YYYY-MM-DD", due)
			}
			cat, err := domain.NewCategory(category)
			if err != nil {
				return err
			}

			return runWithApp(cmd, state, func(app *application) error {
				result := app.commands.Register.Execute(cmd.Context(), command.NewRegisterTask(title, cat, dueDate))
				if result.IsFailure() {
					return result.Err()
				}
				fmt.Fprintf(cmd.OutOrStdout(), "task registered: %s\n", title)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "task title")
	cmd.Flags().StringVar(&category, "category", "", "task category")
	cmd.Flags().StringVar(&due, "due", "", "due date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("due")

	return cmd
}

func newTaskListCommand(state *cliState) *cobra.Command {
	var category, status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks in registration order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var predicates []store.TaskPredicate
			if category != "" {
				predicates = append(predicates, store.ByCategory(category))
			}
			if status != "" {
				s := domain.TaskStatus(status)
				if !domain.IsValidTaskStatus(s) {
					return fmt.Errorf("invalid --status %q", status)
				}
				predicates = append(predicates, store.ByStatus(s))
			}

			return runWithApp(cmd, state, func(app *application) error {
				tasks, err := app.taskStore.GetTasks(cmd.Context(), store.All(predicates...))
				if err != nil {
					return err
				}
				return printTasks(cmd.OutOrStdout(), tasks)
			})
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "only tasks in this category")
	cmd.Flags().StringVar(&status, "status", "", "only tasks with this status (created, overdue, done)")

	return cmd
}

func newTaskCompleteCommand(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "complete <id>",
		Short: "Mark a task as done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid task id %q: %w", args[0], err)
			}

			return runWithApp(cmd, state, func(app *application) error {
				result := app.commands.Complete.Execute(cmd.Context(), command.NewCompleteTask(id, time.Now()))
				if result.IsFailure() {
					return result.Err()
				}
				fmt.Fprintf(cmd.OutOrStdout(), "task completed: %s\n", id)
				return nil
			})
		},
	}
}

func newTaskDeadlinesCommand(state *cliState) *cobra.Command {
	var now string

	cmd := &cobra.Command{
		Use:   "deadlines",
		Short: "Mark past-due tasks as overdue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			at := time.Now()
			if now != "" {
				parsed, err := time.Parse(time.RFC3339, now)
				if err != nil {
					return fmt.Errorf("invalid --now %q: expected RFC3339", now)
				}
				at = parsed
			}

			return runWithApp(cmd, state, func(app *application) error {
				result := app.commands.Deadlines.Execute(cmd.Context(), command.NewManageDeadlines(at))
				if result.IsFailure() {
					return result.Err()
				}
				fmt.Fprintln(cmd.OutOrStdout(), "deadlines checked")
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&now, "now", "", "reference time (RFC3339), defaults to the current time")

	return cmd
}

func printTasks(w io.Writer, tasks []*domain.Task) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tCATEGORY\tDUE\tSTATUS")
	for _, t := range tasks {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			t.ID, t.Title, t.Category.Name, t.DueDate.Format(api.DateLayout), t.Status)
	}
	return tw.Flush()
}
