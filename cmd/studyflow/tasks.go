package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/studyflow/studyflow/internal/cli"
	"github.com/studyflow/studyflow/internal/model"
)

func tasksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Plan study tasks for a day",
	}

	cmd.AddCommand(listTasksCmd())
	cmd.AddCommand(addTaskCmd())
	cmd.AddCommand(doneTaskCmd())
	cmd.AddCommand(deleteTaskCmd())

	return cmd
}

func listTasksCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks for a date",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if date == "" {
				date = model.DateKey(time.Now())
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			tasks, err := store.ListTasksForDate(ctx, date)
			if err != nil {
				return fmt.Errorf("failed to list tasks: %w", err)
			}

			if len(tasks) == 0 {
				fmt.Println(cli.FormatInfo(fmt.Sprintf("No tasks for %s.", date)))
				return nil
			}

			names, err := subjectNames(ctx, store)
			if err != nil {
				return err
			}

			fmt.Println(cli.TitleStyle.Render("Tasks for " + date))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			for _, task := range tasks {
				mark := " "
				if task.Completed {
					mark = cli.SuccessIcon
				}
				subject := names[task.SubjectID]
				planned := ""
				if task.PlannedMin > 0 {
					planned = fmt.Sprintf("%dm", task.PlannedMin)
				}
				fmt.Fprintf(w, "[%s]\t%s\t%s\t%s\t%s\t%s\n",
					mark,
					task.Title,
					string(task.Priority),
					planned,
					subject,
					cli.SubtleStyle.Render(task.ID))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "date (YYYY-MM-DD, default today)")

	return cmd
}

func addTaskCmd() *cobra.Command {
	var (
		date       string
		subject    string
		priority   string
		plannedMin int
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if date == "" {
				date = model.DateKey(time.Now())
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			task := &model.StudyTask{
				ID:         uuid.New().String(),
				Title:      strings.TrimSpace(args[0]),
				Date:       date,
				Priority:   model.TaskPriority(priority),
				PlannedMin: plannedMin,
				CreatedAt:  time.Now(),
			}

			if subject != "" {
				resolved, err := resolveSubject(ctx, store, subject)
				if err != nil {
					return err
				}
				task.SubjectID = resolved.ID
			}

			if err := store.CreateTask(ctx, task); err != nil {
				return fmt.Errorf("failed to create task: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added task %q for %s", task.Title, date)))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&subject, "subject", "", "subject name")
	cmd.Flags().StringVar(&priority, "priority", "medium", "priority (low, medium, high)")
	cmd.Flags().IntVar(&plannedMin, "minutes", 0, "planned minutes")

	return cmd
}

func doneTaskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.CompleteTask(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to complete task: %w", err)
			}

			fmt.Println(cli.FormatSuccess("Task completed"))
			return nil
		},
	}
}

func deleteTaskCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.DeleteTask(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to delete task: %w", err)
			}

			fmt.Println(cli.FormatSuccess("Task deleted"))
			return nil
		},
	}
}
