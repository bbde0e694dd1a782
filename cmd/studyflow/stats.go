package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/studyflow/studyflow/internal/cli"
	"github.com/studyflow/studyflow/internal/model"
	"github.com/studyflow/studyflow/internal/stats"
	"github.com/studyflow/studyflow/internal/storage"
	"github.com/studyflow/studyflow/internal/timefmt"
)

func statsCmd() *cobra.Command {
	var periodFlag string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show study statistics",
		Long: `Summarize completed sessions: total time, session count, average
length, and streaks. The week period is the trailing 7 days including today.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			period := stats.Period(periodFlag)
			if !period.Valid() {
				return fmt.Errorf("invalid period %q (want day, week, or month)", periodFlag)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			sessions, err := store.ListCompletedSessions(ctx)
			if err != nil {
				return fmt.Errorf("failed to list sessions: %w", err)
			}
			dailyStats, err := store.ListDailyStats(ctx)
			if err != nil {
				return fmt.Errorf("failed to list daily stats: %w", err)
			}

			now := time.Now()
			today := model.DateKey(now)
			filtered := stats.FilterSessions(sessions, period, now)
			summary := stats.Aggregate(filtered, dailyStats, today)

			fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("%s Study stats — %s", cli.BookIcon, period)))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Total time\t%s\n", timefmt.Seconds(summary.TotalStudySec))
			fmt.Fprintf(w, "Sessions\t%d\n", summary.CompletedSessions)
			fmt.Fprintf(w, "Average session\t%s\n", timefmt.Seconds(summary.AverageSessionSec))
			fmt.Fprintf(w, "Current streak\t%s %d days\n", cli.FlameIcon, summary.CurrentStreak)
			fmt.Fprintf(w, "Longest streak\t%d days\n", summary.LongestStreak)
			w.Flush()

			printGoalProgress(ctx, store, dailyStats, today)

			return nil
		},
	}

	cmd.Flags().StringVarP(&periodFlag, "period", "p", "week", "reporting period (day, week, month)")

	return cmd
}

// printGoalProgress shows today's study time against the configured daily
// goal. Best-effort; stats still print if preferences can't be loaded.
func printGoalProgress(ctx context.Context, store *storage.SQLiteStorage, dailyStats []model.DailyStat, today string) {
	prefs, err := store.GetPreferences(ctx)
	if err != nil || prefs.DailyGoalMin <= 0 {
		return
	}

	var todaySec int64
	for _, stat := range dailyStats {
		if stat.Date == today {
			todaySec = stat.TotalStudySec
			break
		}
	}

	goalSec := int64(prefs.DailyGoalMin) * 60
	pct := todaySec * 100 / goalSec
	line := fmt.Sprintf("Today: %s of %s goal (%d%%)",
		timefmt.Seconds(todaySec), timefmt.Seconds(goalSec), pct)
	if todaySec >= goalSec {
		fmt.Println(cli.SuccessStyle.Render(line))
	} else {
		fmt.Println(cli.SubtleStyle.Render(line))
	}
}

func streakCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "streak",
		Short: "Show your study streak",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			dailyStats, err := store.ListDailyStats(ctx)
			if err != nil {
				return fmt.Errorf("failed to list daily stats: %w", err)
			}

			streaks := stats.CalcStreaks(dailyStats, model.DateKey(time.Now()))

			fmt.Printf("%s Current streak: %s\n", cli.FlameIcon,
				cli.TimerStyle.Render(fmt.Sprintf("%d days", streaks.Current)))
			fmt.Printf("   Longest streak: %d days\n", streaks.Longest)

			if streaks.Current == 0 {
				fmt.Println(cli.SubtleStyle.Render("Study today to start a new streak."))
			}
			return nil
		},
	}
}
