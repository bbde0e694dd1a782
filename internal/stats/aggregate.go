package stats

import (
	"github.com/studyflow/studyflow/internal/model"
)

// Aggregate combines completed sessions and the daily ledger into summary
// statistics. Sessions without an end time are ignored; the average is zero
// when there are no completed sessions.
func Aggregate(sessions []model.StudySession, dailyStats []model.DailyStat, today string) model.Statistics {
	var total int64
	completed := 0
	for i := range sessions {
		if !sessions[i].Completed() {
			continue
		}
		total += sessions[i].DurationSec
		completed++
	}

	var average int64
	if completed > 0 {
		average = total / int64(completed)
	}

	streaks := CalcStreaks(dailyStats, today)

	return model.Statistics{
		TotalStudySec:     total,
		AverageSessionSec: average,
		CompletedSessions: completed,
		CurrentStreak:     streaks.Current,
		LongestStreak:     streaks.Longest,
		DailyStats:        dailyStats,
	}
}
