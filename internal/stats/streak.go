// Package stats derives summary statistics, streaks, period filters, and
// achievements from session history and the daily study-time ledger. All
// functions here are pure: identical inputs always produce identical outputs.
package stats

import (
	"sort"
	"time"

	"github.com/studyflow/studyflow/internal/model"
)

const dateLayout = "2006-01-02"

// CalcStreaks computes the current and longest consecutive-day streaks from
// the daily ledger. A day counts toward a streak only if a DailyStat exists
// for that exact date and its study time is positive.
//
// The current streak walks backward one calendar day at a time starting from
// today; the first day that fails either condition breaks it, including today
// itself. Dates are plain local calendar dates; no timezone conversion is
// performed here.
func CalcStreaks(dailyStats []model.DailyStat, today string) model.Streaks {
	if len(dailyStats) == 0 {
		return model.Streaks{}
	}

	byDate := make(map[string]int64, len(dailyStats))
	for _, d := range dailyStats {
		byDate[d.Date] = d.TotalStudySec
	}

	return model.Streaks{
		Current: currentStreak(byDate, today),
		Longest: longestStreak(byDate),
	}
}

func currentStreak(byDate map[string]int64, today string) int {
	day, err := time.Parse(dateLayout, today)
	if err != nil {
		return 0
	}

	streak := 0
	for {
		key := day.Format(dateLayout)
		if byDate[key] <= 0 {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

func longestStreak(byDate map[string]int64) int {
	active := make([]string, 0, len(byDate))
	for date, total := range byDate {
		if total > 0 {
			active = append(active, date)
		}
	}
	if len(active) == 0 {
		return 0
	}
	sort.Strings(active)

	longest := 1
	run := 1
	for i := 1; i < len(active); i++ {
		prev, err := time.Parse(dateLayout, active[i-1])
		if err != nil {
			run = 1
			continue
		}
		if prev.AddDate(0, 0, 1).Format(dateLayout) == active[i] {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 1
		}
	}
	return longest
}
