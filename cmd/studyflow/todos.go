package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/studyflow/studyflow/internal/cli"
	"github.com/studyflow/studyflow/internal/model"
	"github.com/studyflow/studyflow/internal/stats"
)

func todosCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todos",
		Short: "Keep period-scoped todo lists",
		Long: `Checklist items scoped to a day, an ISO week, or a month. Weekly
todos roll over at the ISO week boundary (Monday), independent of the
trailing-7-day window that session reports use.`,
	}

	cmd.AddCommand(listTodosCmd())
	cmd.AddCommand(addTodoCmd())
	cmd.AddCommand(doneTodoCmd())
	cmd.AddCommand(deleteTodoCmd())

	return cmd
}

func todoPeriodKey(periodFlag string) (string, error) {
	period := stats.Period(periodFlag)
	if !period.Valid() {
		return "", fmt.Errorf("invalid period %q (want day, week, or month)", periodFlag)
	}
	return stats.PeriodKey(period, time.Now())
}

func listTodosCmd() *cobra.Command {
	var periodFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List todos for the current period",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			key, err := todoPeriodKey(periodFlag)
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			todos, err := store.ListTodosForPeriod(ctx, key)
			if err != nil {
				return fmt.Errorf("failed to list todos: %w", err)
			}

			if len(todos) == 0 {
				fmt.Println(cli.FormatInfo(fmt.Sprintf("No todos for %s.", key)))
				return nil
			}

			fmt.Println(cli.TitleStyle.Render("Todos — " + key))
			for _, todo := range todos {
				mark := " "
				if todo.Completed {
					mark = cli.SuccessIcon
				}
				fmt.Printf("[%s] %s  %s\n", mark, todo.Title, cli.SubtleStyle.Render(todo.ID))
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&periodFlag, "period", "p", "week", "period (day, week, month)")

	return cmd
}

func addTodoCmd() *cobra.Command {
	var periodFlag string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a todo to the current period",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			key, err := todoPeriodKey(periodFlag)
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			todo := &model.StudyTodo{
				ID:        uuid.New().String(),
				Title:     strings.TrimSpace(args[0]),
				PeriodKey: key,
				CreatedAt: time.Now(),
			}

			if err := store.CreateTodo(ctx, todo); err != nil {
				return fmt.Errorf("failed to create todo: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added todo %q to %s", todo.Title, key)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&periodFlag, "period", "p", "week", "period (day, week, month)")

	return cmd
}

func doneTodoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a todo as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.CompleteTodo(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to complete todo: %w", err)
			}

			fmt.Println(cli.FormatSuccess("Todo completed"))
			return nil
		},
	}
}

func deleteTodoCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Delete a todo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.DeleteTodo(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to delete todo: %w", err)
			}

			fmt.Println(cli.FormatSuccess("Todo deleted"))
			return nil
		},
	}
}
