package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/studyflow/studyflow/internal/cli"
	"github.com/studyflow/studyflow/internal/model"
	"github.com/studyflow/studyflow/internal/stats"
)

func achievementsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "achievements",
		Short: "Show achievement badges",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

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

			achievements := stats.EvaluateAchievements(sessions, dailyStats, model.DateKey(time.Now()))

			fmt.Println(cli.TitleStyle.Render(cli.BadgeIcon + " Achievements"))
			for _, a := range achievements {
				if a.Unlocked {
					fmt.Printf("%s %s — %s\n", cli.BadgeIcon,
						cli.SuccessStyle.Render(a.Name), a.Description)
				} else {
					fmt.Printf("%s %s — %s\n", cli.LockedIcon,
						cli.SubtleStyle.Render(a.Name),
						cli.SubtleStyle.Render(a.Description))
				}
			}

			return nil
		},
	}
}
