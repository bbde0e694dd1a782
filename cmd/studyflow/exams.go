package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/studyflow/studyflow/internal/cli"
	"github.com/studyflow/studyflow/internal/model"
)

func examsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exams",
		Short: "Track exam deadlines",
	}

	cmd.AddCommand(listExamsCmd())
	cmd.AddCommand(addExamCmd())
	cmd.AddCommand(prepExamCmd())
	cmd.AddCommand(deleteExamCmd())

	return cmd
}

func listExamsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List exams, soonest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			exams, err := store.ListExams(ctx)
			if err != nil {
				return fmt.Errorf("failed to list exams: %w", err)
			}

			if len(exams) == 0 {
				fmt.Println(cli.FormatInfo("No exams tracked."))
				return nil
			}

			names, err := subjectNames(ctx, store)
			if err != nil {
				return err
			}

			now := time.Now()
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			for _, exam := range exams {
				days := exam.DaysUntil(now)
				var when string
				switch {
				case days < 0:
					when = cli.SubtleStyle.Render("passed")
				case days == 0:
					when = cli.ErrorStyle.Render("today!")
				case days <= 7:
					when = cli.WarningStyle.Render(fmt.Sprintf("in %d days", days))
				default:
					when = fmt.Sprintf("in %d days", days)
				}

				fmt.Fprintf(w, "%s\t%s\t%s\t%d%% prepared\t%s\n",
					exam.Date.Local().Format("2006-01-02"),
					exam.Title,
					names[exam.SubjectID],
					exam.Preparation,
					when)
			}

			return nil
		},
	}
}

func addExamCmd() *cobra.Command {
	var (
		dateFlag string
		subject  string
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add an exam deadline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			date, err := time.ParseInLocation("2006-01-02", dateFlag, time.Local)
			if err != nil {
				return fmt.Errorf("invalid exam date %q (want YYYY-MM-DD): %w", dateFlag, err)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			exam := &model.ExamDeadline{
				ID:        uuid.New().String(),
				Title:     strings.TrimSpace(args[0]),
				Date:      date,
				CreatedAt: time.Now(),
			}

			if subject != "" {
				resolved, err := resolveSubject(ctx, store, subject)
				if err != nil {
					return err
				}
				exam.SubjectID = resolved.ID
			}

			if err := store.CreateExam(ctx, exam); err != nil {
				return fmt.Errorf("failed to create exam: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added exam %q on %s", exam.Title, dateFlag)))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "exam date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&subject, "subject", "", "subject name")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func prepExamCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prep <id> <percent>",
		Short: "Update exam preparation",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			percent, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid percentage %q: %w", args[1], err)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.UpdateExamPreparation(ctx, args[0], percent); err != nil {
				return fmt.Errorf("failed to update preparation: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Preparation set to %d%%", percent)))
			return nil
		},
	}
}

func deleteExamCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Delete an exam",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.DeleteExam(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to delete exam: %w", err)
			}

			fmt.Println(cli.FormatSuccess("Exam deleted"))
			return nil
		},
	}
}
