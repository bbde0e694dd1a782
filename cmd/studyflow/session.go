package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/studyflow/studyflow/internal/cli"
	"github.com/studyflow/studyflow/internal/session"
	"github.com/studyflow/studyflow/internal/timefmt"
	"github.com/studyflow/studyflow/internal/tui"
)

func sessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Control the study session timer",
		Long: `Start, pause, resume, and stop the study timer.

Only one session can be active at a time. Elapsed time is reconstructed
from wall-clock timestamps, so the timer stays accurate even if your
machine sleeps or the process is restarted.`,
	}

	cmd.AddCommand(startSessionCmd())
	cmd.AddCommand(pauseSessionCmd())
	cmd.AddCommand(resumeSessionCmd())
	cmd.AddCommand(statusSessionCmd())
	cmd.AddCommand(stopSessionCmd())
	cmd.AddCommand(watchSessionCmd())

	return cmd
}

func startSessionCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "start <subject>",
		Short: "Start a study session",
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

			tracker, err := initTracker(store)
			if err != nil {
				return err
			}

			// Starting replaces any active session, so ask before
			// discarding one.
			current, err := tracker.Current(ctx)
			if err != nil {
				return fmt.Errorf("failed to read active session: %w", err)
			}
			if current != nil && !yes {
				ok, err := cli.Confirm(ctx, os.Stdin, os.Stdout,
					"A session is already active. Discard it and start fresh?")
				if err != nil {
					return err
				}
				if !ok {
					fmt.Println(cli.FormatInfo("Kept the existing session."))
					return nil
				}
			}

			if _, err := tracker.Start(ctx, subject.ID); err != nil {
				return fmt.Errorf("failed to start session: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Studying %s %s", subject.Name, cli.TimerIcon)))
			fmt.Println(cli.SubtleStyle.Render("Run 'studyflow session watch' for a live timer."))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "discard any active session without asking")

	return cmd
}

func pauseSessionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pause",
		Short: "Pause the active session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			tracker, err := initTracker(store)
			if err != nil {
				return err
			}

			sess, err := tracker.Pause(ctx)
			if err != nil {
				return err
			}

			elapsed := sess.ElapsedSecAt(session.SystemClock{}.Now())
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Paused at %s", timefmt.Clock(elapsed))))
			return nil
		},
	}
}

func resumeSessionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resume",
		Short: "Resume a paused session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			tracker, err := initTracker(store)
			if err != nil {
				return err
			}

			sess, err := tracker.Resume(ctx)
			if err != nil {
				return err
			}

			elapsed := sess.ElapsedSecAt(session.SystemClock{}.Now())
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Resumed at %s", timefmt.Clock(elapsed))))
			return nil
		},
	}
}

func statusSessionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the active session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			tracker, err := initTracker(store)
			if err != nil {
				return err
			}

			sess, err := tracker.Current(ctx)
			if err != nil {
				return fmt.Errorf("failed to read active session: %w", err)
			}
			if sess == nil {
				fmt.Println(cli.FormatInfo("No active session."))
				return nil
			}

			name := sess.SubjectID
			if subject, err := store.GetSubject(ctx, sess.SubjectID); err == nil {
				name = subject.Name
			}

			state := "studying"
			if sess.IsPaused {
				state = "paused"
			}
			elapsed := sess.ElapsedSecAt(session.SystemClock{}.Now())

			fmt.Printf("%s %s — %s (%s)\n",
				cli.BookIcon,
				name,
				cli.TimerStyle.Render(timefmt.Clock(elapsed)),
				state)
			return nil
		},
	}
}

func stopSessionCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "stop",
		Short: "Stop the session and record it",
		Long: `Stop the active session and commit it to history: the session, the
subject's running total, and the day's statistics are updated together.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			tracker, err := initTracker(store)
			if err != nil {
				return err
			}

			current, err := tracker.Current(ctx)
			if err != nil {
				return fmt.Errorf("failed to read active session: %w", err)
			}
			if current == nil {
				fmt.Println(cli.FormatInfo("No active session."))
				return nil
			}

			if !yes {
				elapsed := current.ElapsedSecAt(session.SystemClock{}.Now())
				ok, err := cli.Confirm(ctx, os.Stdin, os.Stdout,
					fmt.Sprintf("Stop the session at %s?", timefmt.Clock(elapsed)))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Println(cli.FormatInfo("Session continues."))
					return nil
				}
			}

			sess, err := tracker.Finalize(ctx)
			if err != nil {
				return fmt.Errorf("failed to record session: %w", err)
			}

			name := sess.SubjectID
			if subject, err := store.GetSubject(ctx, sess.SubjectID); err == nil {
				name = subject.Name
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %s of %s",
				timefmt.Seconds(sess.DurationSec), name)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip confirmation")

	return cmd
}

func watchSessionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the session timer live",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			tracker, err := initTracker(store)
			if err != nil {
				return err
			}

			sess, err := tracker.Current(ctx)
			if err != nil {
				return fmt.Errorf("failed to read active session: %w", err)
			}
			if sess == nil {
				fmt.Println(cli.FormatInfo("No active session. Use 'studyflow session start <subject>' first."))
				return nil
			}

			name := sess.SubjectID
			if subject, err := store.GetSubject(ctx, sess.SubjectID); err == nil {
				name = subject.Name
			}

			return tui.RunWatch(tracker, session.SystemClock{}, name)
		},
	}
}
