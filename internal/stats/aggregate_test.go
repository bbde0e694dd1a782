package stats

import (
	"reflect"
	"testing"
	"time"

	"github.com/studyflow/studyflow/internal/model"
)

func completedSession(start time.Time, durationSec int64) model.StudySession {
	end := start.Add(time.Duration(durationSec) * time.Second)
	return model.StudySession{
		ID:          "s-" + start.Format("20060102150405"),
		SubjectID:   "subj-1",
		StartTime:   start,
		EndTime:     &end,
		DurationSec: durationSec,
	}
}

func TestAggregate(t *testing.T) {
	today := day(0)
	base := time.Date(2026, 3, 20, 10, 0, 0, 0, time.Local)

	t.Run("totals and average over completed sessions", func(t *testing.T) {
		sessions := []model.StudySession{
			completedSession(base, 3600),
			completedSession(base.Add(2*time.Hour), 1800),
		}

		got := Aggregate(sessions, nil, today)

		if got.TotalStudySec != 5400 {
			t.Errorf("TotalStudySec = %d, want 5400", got.TotalStudySec)
		}
		if got.AverageSessionSec != 2700 {
			t.Errorf("AverageSessionSec = %d, want 2700", got.AverageSessionSec)
		}
		if got.CompletedSessions != 2 {
			t.Errorf("CompletedSessions = %d, want 2", got.CompletedSessions)
		}
	})

	t.Run("active sessions are excluded", func(t *testing.T) {
		active := model.StudySession{ID: "active", SubjectID: "subj-1", StartTime: base, DurationSec: 0}
		sessions := []model.StudySession{completedSession(base, 600), active}

		got := Aggregate(sessions, nil, today)

		if got.CompletedSessions != 1 {
			t.Errorf("CompletedSessions = %d, want 1", got.CompletedSessions)
		}
		if got.TotalStudySec != 600 {
			t.Errorf("TotalStudySec = %d, want 600", got.TotalStudySec)
		}
	})

	t.Run("no completed sessions yields zero average", func(t *testing.T) {
		got := Aggregate(nil, nil, today)

		if got.AverageSessionSec != 0 {
			t.Errorf("AverageSessionSec = %d, want 0", got.AverageSessionSec)
		}
		if got.TotalStudySec != 0 || got.CompletedSessions != 0 {
			t.Errorf("expected zero totals, got %+v", got)
		}
	})

	t.Run("streak fields come from the daily ledger", func(t *testing.T) {
		dailyStats := []model.DailyStat{
			{Date: day(-1), TotalStudySec: 100},
			{Date: today, TotalStudySec: 100},
		}

		got := Aggregate(nil, dailyStats, today)

		if got.CurrentStreak != 2 || got.LongestStreak != 2 {
			t.Errorf("streaks = %d/%d, want 2/2", got.CurrentStreak, got.LongestStreak)
		}
	})

	t.Run("idempotent for identical inputs", func(t *testing.T) {
		sessions := []model.StudySession{completedSession(base, 3600)}
		dailyStats := []model.DailyStat{{Date: today, TotalStudySec: 3600, SessionsCount: 1}}

		first := Aggregate(sessions, dailyStats, today)
		second := Aggregate(sessions, dailyStats, today)

		if !reflect.DeepEqual(first, second) {
			t.Errorf("repeated aggregation diverged:\nfirst:  %+v\nsecond: %+v", first, second)
		}
	})
}
