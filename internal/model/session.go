package model

import "time"

// StudySession represents a single study session against a subject.
//
// DurationSec is authoritative only once EndTime is set. While a session is
// active, elapsed time is always reconstructed from wall-clock timestamps via
// ElapsedSecAt; it is never maintained as an incrementing counter, so it
// survives process suspension.
type StudySession struct {
	StartTime     time.Time
	EndTime       *time.Time
	PausedAt      *time.Time
	ID            string
	SubjectID     string
	DurationSec   int64
	TotalPausedMS int64
	IsPaused      bool
}

// Completed reports whether the session has been finalized.
func (s *StudySession) Completed() bool {
	return s.EndTime != nil
}

// ElapsedSecAt reconstructs the elapsed study time in whole seconds at the
// given instant: floor((now - start - totalPaused) / 1s), clamped to zero.
// If the session is paused, elapsed time is frozen at the moment of pausing.
func (s *StudySession) ElapsedSecAt(now time.Time) int64 {
	ref := now
	if s.IsPaused && s.PausedAt != nil {
		ref = *s.PausedAt
	}
	ms := ref.UnixMilli() - s.StartTime.UnixMilli() - s.TotalPausedMS
	if ms < 0 {
		return 0
	}
	return ms / 1000
}

// DateKey returns the local calendar date (YYYY-MM-DD) the session started on.
func (s *StudySession) DateKey() string {
	return DateKey(s.StartTime)
}

// DateKey formats a timestamp as a local calendar date key (YYYY-MM-DD).
func DateKey(t time.Time) string {
	return t.Local().Format("2006-01-02")
}

// MonthKey formats a timestamp as a local calendar month key (YYYY-MM).
func MonthKey(t time.Time) string {
	return t.Local().Format("2006-01")
}
