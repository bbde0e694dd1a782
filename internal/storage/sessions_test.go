package storage

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/studyflow/studyflow/internal/common"
	"github.com/studyflow/studyflow/internal/model"
)

func makeCompletedSession(num int, subjectID string, start time.Time, durationSec int64) *model.StudySession {
	end := start.Add(time.Duration(durationSec) * time.Second)
	return &model.StudySession{
		ID:          fmt.Sprintf("sess-%d", num),
		SubjectID:   subjectID,
		StartTime:   start,
		EndTime:     &end,
		DurationSec: durationSec,
	}
}

func TestSQLiteStorage_FinalizeSession(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	subject := makeTestSubject(1)
	if err := store.CreateSubject(ctx, subject); err != nil {
		t.Fatalf("CreateSubject failed: %v", err)
	}

	start := time.Date(2026, 3, 20, 9, 0, 0, 0, time.Local)
	sess := makeCompletedSession(1, subject.ID, start, 1800)
	if err := store.FinalizeSession(ctx, sess); err != nil {
		t.Fatalf("FinalizeSession failed: %v", err)
	}

	// Session is in history.
	sessions, err := store.ListCompletedSessions(ctx)
	if err != nil {
		t.Fatalf("ListCompletedSessions failed: %v", err)
	}
	if len(sessions) != 1 || sessions[0].ID != sess.ID {
		t.Fatalf("expected session %s in history, got %+v", sess.ID, sessions)
	}
	if sessions[0].DurationSec != 1800 {
		t.Errorf("DurationSec = %d, want 1800", sessions[0].DurationSec)
	}

	// Subject total grew.
	got, err := store.GetSubject(ctx, subject.ID)
	if err != nil {
		t.Fatalf("GetSubject failed: %v", err)
	}
	if got.TotalStudySec != 1800 {
		t.Errorf("subject TotalStudySec = %d, want 1800", got.TotalStudySec)
	}

	// DailyStat was created for the session's local date.
	stat, err := store.GetDailyStat(ctx, sess.DateKey())
	if err != nil {
		t.Fatalf("GetDailyStat failed: %v", err)
	}
	if stat.TotalStudySec != 1800 || stat.SessionsCount != 1 {
		t.Errorf("daily stat = %+v, want 1800s over 1 session", stat)
	}
	if !stat.HasSubject(subject.ID) {
		t.Error("daily stat missing the studied subject")
	}
}

func TestSQLiteStorage_FinalizeSessionAdditiveSameDay(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	math := makeTestSubject(1)
	physics := makeTestSubject(2)
	for _, subject := range []*model.Subject{math, physics} {
		if err := store.CreateSubject(ctx, subject); err != nil {
			t.Fatalf("CreateSubject failed: %v", err)
		}
	}

	day := time.Date(2026, 3, 20, 0, 0, 0, 0, time.Local)
	if err := store.FinalizeSession(ctx, makeCompletedSession(1, math.ID, day.Add(9*time.Hour), 600)); err != nil {
		t.Fatalf("FinalizeSession failed: %v", err)
	}
	if err := store.FinalizeSession(ctx, makeCompletedSession(2, physics.ID, day.Add(14*time.Hour), 900)); err != nil {
		t.Fatalf("FinalizeSession failed: %v", err)
	}
	if err := store.FinalizeSession(ctx, makeCompletedSession(3, math.ID, day.Add(20*time.Hour), 300)); err != nil {
		t.Fatalf("FinalizeSession failed: %v", err)
	}

	stat, err := store.GetDailyStat(ctx, model.DateKey(day))
	if err != nil {
		t.Fatalf("GetDailyStat failed: %v", err)
	}

	if stat.TotalStudySec != 1800 {
		t.Errorf("TotalStudySec = %d, want 1800", stat.TotalStudySec)
	}
	if stat.SessionsCount != 3 {
		t.Errorf("SessionsCount = %d, want 3", stat.SessionsCount)
	}
	if len(stat.SubjectIDs) != 2 || !stat.HasSubject(math.ID) || !stat.HasSubject(physics.ID) {
		t.Errorf("SubjectIDs = %v, want exactly both subjects", stat.SubjectIDs)
	}
}

func TestSQLiteStorage_FinalizeSessionIdempotent(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	subject := makeTestSubject(1)
	if err := store.CreateSubject(ctx, subject); err != nil {
		t.Fatalf("CreateSubject failed: %v", err)
	}

	sess := makeCompletedSession(1, subject.ID, time.Date(2026, 3, 20, 9, 0, 0, 0, time.Local), 600)
	if err := store.FinalizeSession(ctx, sess); err != nil {
		t.Fatalf("first FinalizeSession failed: %v", err)
	}
	if err := store.FinalizeSession(ctx, sess); err != nil {
		t.Fatalf("second FinalizeSession failed: %v", err)
	}

	got, err := store.GetSubject(ctx, subject.ID)
	if err != nil {
		t.Fatalf("GetSubject failed: %v", err)
	}
	if got.TotalStudySec != 600 {
		t.Errorf("subject TotalStudySec = %d, want 600 (no double count)", got.TotalStudySec)
	}

	count, err := store.CountCompletedSessions(ctx)
	if err != nil {
		t.Fatalf("CountCompletedSessions failed: %v", err)
	}
	if count != 1 {
		t.Errorf("session count = %d, want 1", count)
	}
}

func TestSQLiteStorage_FinalizeSessionValidation(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	start := time.Now()
	end := start.Add(time.Minute)

	tests := []struct {
		sess *model.StudySession
		name string
	}{
		{name: "nil session", sess: nil},
		{name: "missing id", sess: &model.StudySession{SubjectID: "s", StartTime: start, EndTime: &end}},
		{name: "missing subject", sess: &model.StudySession{ID: "a", StartTime: start, EndTime: &end}},
		{name: "not finalized", sess: &model.StudySession{ID: "a", SubjectID: "s", StartTime: start}},
		{name: "negative duration", sess: &model.StudySession{ID: "a", SubjectID: "s", StartTime: start, EndTime: &end, DurationSec: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := store.FinalizeSession(ctx, tt.sess); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSQLiteStorage_FinalizeSessionUnknownSubject(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	sess := makeCompletedSession(1, "missing-subject", time.Now(), 600)
	err := store.FinalizeSession(ctx, sess)
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown subject, got %v", err)
	}

	// The whole transaction must roll back: no orphan session row.
	count, countErr := store.CountCompletedSessions(ctx)
	if countErr != nil {
		t.Fatalf("CountCompletedSessions failed: %v", countErr)
	}
	if count != 0 {
		t.Errorf("session count = %d, want 0 after rollback", count)
	}
}

func TestSQLiteStorage_ListSessionsBySubject(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	math := makeTestSubject(1)
	physics := makeTestSubject(2)
	for _, subject := range []*model.Subject{math, physics} {
		if err := store.CreateSubject(ctx, subject); err != nil {
			t.Fatalf("CreateSubject failed: %v", err)
		}
	}

	base := time.Date(2026, 3, 20, 9, 0, 0, 0, time.Local)
	if err := store.FinalizeSession(ctx, makeCompletedSession(1, math.ID, base, 600)); err != nil {
		t.Fatalf("FinalizeSession failed: %v", err)
	}
	if err := store.FinalizeSession(ctx, makeCompletedSession(2, physics.ID, base.Add(time.Hour), 600)); err != nil {
		t.Fatalf("FinalizeSession failed: %v", err)
	}

	sessions, err := store.ListSessionsBySubject(ctx, math.ID)
	if err != nil {
		t.Fatalf("ListSessionsBySubject failed: %v", err)
	}
	if len(sessions) != 1 || sessions[0].SubjectID != math.ID {
		t.Errorf("got %+v, want only the math session", sessions)
	}
}

func TestSQLiteStorage_DailyStatsOrderedDescending(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	subject := makeTestSubject(1)
	if err := store.CreateSubject(ctx, subject); err != nil {
		t.Fatalf("CreateSubject failed: %v", err)
	}

	base := time.Date(2026, 3, 18, 9, 0, 0, 0, time.Local)
	for i := 0; i < 3; i++ {
		sess := makeCompletedSession(i+1, subject.ID, base.AddDate(0, 0, i), 600)
		if err := store.FinalizeSession(ctx, sess); err != nil {
			t.Fatalf("FinalizeSession failed: %v", err)
		}
	}

	stats, err := store.ListDailyStats(ctx)
	if err != nil {
		t.Fatalf("ListDailyStats failed: %v", err)
	}
	if len(stats) != 3 {
		t.Fatalf("got %d daily stats, want 3", len(stats))
	}
	for i := 1; i < len(stats); i++ {
		if stats[i].Date >= stats[i-1].Date {
			t.Errorf("daily stats not descending: %s before %s", stats[i-1].Date, stats[i].Date)
		}
	}
}

func TestSQLiteStorage_GetDailyStatNotFound(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	_, err := store.GetDailyStat(context.Background(), "2026-01-01")

	if !errors.Is(err, common.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
