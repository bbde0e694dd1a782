package stats

import (
	"fmt"
	"time"

	"github.com/studyflow/studyflow/internal/model"
)

// Period selects a reporting window for session filtering.
type Period string

// Valid reporting periods.
const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// Valid reports whether p is a recognized period.
func (p Period) Valid() bool {
	switch p {
	case PeriodDay, PeriodWeek, PeriodMonth:
		return true
	}
	return false
}

// FilterSessions returns the sessions falling inside the given period
// relative to ref, preserving input order.
//
// The week period is a trailing window of 7 calendar days ending on ref,
// inclusive. It is deliberately not an ISO calendar week; ISO weeks are only
// used for grouping weekly planner items (see ISOWeekID).
func FilterSessions(sessions []model.StudySession, period Period, ref time.Time) []model.StudySession {
	refKey := model.DateKey(ref)

	var matches func(s *model.StudySession) bool
	switch period {
	case PeriodDay:
		matches = func(s *model.StudySession) bool {
			return s.DateKey() == refKey
		}
	case PeriodWeek:
		startKey := model.DateKey(ref.AddDate(0, 0, -6))
		matches = func(s *model.StudySession) bool {
			key := s.DateKey()
			return key >= startKey && key <= refKey
		}
	case PeriodMonth:
		monthKey := model.MonthKey(ref)
		matches = func(s *model.StudySession) bool {
			return model.MonthKey(s.StartTime) == monthKey
		}
	default:
		return nil
	}

	var filtered []model.StudySession
	for i := range sessions {
		if matches(&sessions[i]) {
			filtered = append(filtered, sessions[i])
		}
	}
	return filtered
}

// ISOWeekID returns the ISO 8601 week identifier (YYYY-Www, Monday-start,
// week containing Jan 4 is week 1) for a timestamp. Used for scoping weekly
// planner todos, not for session report filtering.
func ISOWeekID(t time.Time) string {
	year, week := t.Local().ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// PeriodKey returns the planner grouping key for a period at ref: the local
// date for day, the ISO week identifier for week, the month key for month.
func PeriodKey(period Period, ref time.Time) (string, error) {
	switch period {
	case PeriodDay:
		return model.DateKey(ref), nil
	case PeriodWeek:
		return ISOWeekID(ref), nil
	case PeriodMonth:
		return model.MonthKey(ref), nil
	}
	return "", fmt.Errorf("invalid period: %s", period)
}
