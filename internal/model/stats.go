package model

// Streaks holds the current and longest consecutive-day study streaks.
type Streaks struct {
	Current int
	Longest int
}

// Statistics is the derived summary over completed sessions and daily stats.
// It is computed on demand and never persisted.
type Statistics struct {
	DailyStats        []DailyStat
	TotalStudySec     int64
	AverageSessionSec int64
	CompletedSessions int
	CurrentStreak     int
	LongestStreak     int
}
