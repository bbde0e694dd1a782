package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/studyflow/studyflow/internal/cli"
	"github.com/studyflow/studyflow/internal/model"
	"github.com/studyflow/studyflow/internal/timefmt"
)

func subjectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subjects",
		Short: "Manage study subjects",
		Long:  `List, add, and delete the subjects you study.`,
	}

	cmd.AddCommand(listSubjectsCmd())
	cmd.AddCommand(addSubjectCmd())
	cmd.AddCommand(deleteSubjectCmd())

	return cmd
}

func listSubjectsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all subjects",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			subjects, err := store.ListSubjects(ctx)
			if err != nil {
				return fmt.Errorf("failed to list subjects: %w", err)
			}

			if len(subjects) == 0 {
				fmt.Println(cli.InfoStyle.Render("No subjects yet. Use 'studyflow subjects add <name>' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\n",
				cli.TitleStyle.Render("Subject"),
				cli.TitleStyle.Render("Total"),
				cli.TitleStyle.Render("ID"))
			fmt.Fprintf(w, "%s\t%s\t%s\n",
				strings.Repeat("-", 20),
				strings.Repeat("-", 10),
				strings.Repeat("-", 36))

			for _, subject := range subjects {
				name := subject.Name
				if subject.Icon != "" {
					name = subject.Icon + " " + name
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n",
					name,
					timefmt.Seconds(subject.TotalStudySec),
					cli.SubtleStyle.Render(subject.ID))
			}

			return nil
		},
	}
}

func addSubjectCmd() *cobra.Command {
	var (
		color string
		icon  string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new subject",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name := strings.TrimSpace(args[0])

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			subject := &model.Subject{
				ID:    uuid.New().String(),
				Name:  name,
				Color: color,
				Icon:  icon,
			}

			if err := store.CreateSubject(ctx, subject); err != nil {
				return fmt.Errorf("failed to create subject: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added subject %q", name)))
			return nil
		},
	}

	cmd.Flags().StringVar(&color, "color", "", "display color (hex)")
	cmd.Flags().StringVar(&icon, "icon", "", "display icon")

	return cmd
}

func deleteSubjectCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "rm <name>",
		Aliases: []string{"remove"},
		Short:   "Delete a subject",
		Long:  `Delete a subject. Its completed sessions remain in history.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			subject, err := resolveSubject(ctx, store, args[0])
			if err != nil {
				return err
			}

			if !yes {
				ok, err := cli.Confirm(ctx, os.Stdin, os.Stdout,
					fmt.Sprintf("Delete subject %q?", subject.Name))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Println(cli.FormatInfo("Cancelled."))
					return nil
				}
			}

			if err := store.DeleteSubject(ctx, subject.ID); err != nil {
				return fmt.Errorf("failed to delete subject: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted subject %q", subject.Name)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip confirmation")

	return cmd
}
