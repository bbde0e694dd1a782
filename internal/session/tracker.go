// Package session implements the active study-session state machine.
//
// A session moves Idle -> Running <-> Paused -> Idle. The tracker keeps no
// session state in memory: every operation re-reads the persisted
// active-session record and every transition writes it back, so elapsed time
// stays correct across process restarts and suspensions. Elapsed time is
// always reconstructed from wall-clock timestamps, never accumulated from
// ticks.
package session

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/studyflow/studyflow/internal/common"
	"github.com/studyflow/studyflow/internal/model"
	"github.com/studyflow/studyflow/internal/service"
)

// Finalizer commits a completed session to durable history. Satisfied by
// service.Storage.
type Finalizer interface {
	FinalizeSession(ctx context.Context, session *model.StudySession) error
}

// Tracker owns the single active session and its transitions.
type Tracker struct {
	active service.ActiveSessionStore
	store  Finalizer
	clock  service.Clock
	retry  service.RetryOptions
}

// NewTracker creates a tracker over the given local active-session store,
// durable store, and clock.
func NewTracker(active service.ActiveSessionStore, store Finalizer, clock service.Clock) *Tracker {
	return &Tracker{
		active: active,
		store:  store,
		clock:  clock,
		retry: service.RetryOptions{
			MaxAttempts:  3,
			InitialDelay: 200 * time.Millisecond,
			MaxDelay:     5 * time.Second,
		},
	}
}

// Current returns the active session, re-read from the persisted record.
// Returns nil without error when no session is active.
func (t *Tracker) Current(ctx context.Context) (*model.StudySession, error) {
	sess, err := t.active.Get(ctx)
	if errors.Is(err, common.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return sess, nil
}

// Start begins a new session for the given subject. Any prior active record
// is overwritten; the model permits only one active session.
func (t *Tracker) Start(ctx context.Context, subjectID string) (*model.StudySession, error) {
	if subjectID == "" {
		return nil, common.NewValidationError("select a subject before starting a session", common.ErrMissingSubject)
	}

	sess := &model.StudySession{
		ID:        uuid.New().String(),
		SubjectID: subjectID,
		StartTime: t.clock.Now(),
	}

	if err := t.active.Set(ctx, sess); err != nil {
		return nil, common.NewPersistenceError("start session", err)
	}

	slog.Info("session started", "session_id", sess.ID, "subject_id", subjectID)
	return sess, nil
}

// Pause freezes the running session. Elapsed time stops at the value computed
// at the instant of pausing.
func (t *Tracker) Pause(ctx context.Context) (*model.StudySession, error) {
	sess, err := t.require(ctx)
	if err != nil {
		return nil, err
	}
	if sess.IsPaused {
		return nil, common.NewValidationError("session is already paused", common.ErrSessionNotRunning)
	}

	now := t.clock.Now()
	sess.IsPaused = true
	sess.PausedAt = &now

	if err := t.active.Set(ctx, sess); err != nil {
		return nil, common.NewPersistenceError("pause session", err)
	}

	slog.Info("session paused", "session_id", sess.ID, "elapsed_sec", sess.ElapsedSecAt(now))
	return sess, nil
}

// Resume continues a paused session. The time spent paused is added to the
// session's cumulative paused total, so elapsed time picks up exactly where
// it froze.
func (t *Tracker) Resume(ctx context.Context) (*model.StudySession, error) {
	sess, err := t.require(ctx)
	if err != nil {
		return nil, err
	}
	if !sess.IsPaused || sess.PausedAt == nil {
		return nil, common.NewValidationError("session is not paused", common.ErrSessionNotPaused)
	}

	now := t.clock.Now()
	sess.TotalPausedMS += now.UnixMilli() - sess.PausedAt.UnixMilli()
	sess.PausedAt = nil
	sess.IsPaused = false

	if err := t.active.Set(ctx, sess); err != nil {
		return nil, common.NewPersistenceError("resume session", err)
	}

	slog.Info("session resumed", "session_id", sess.ID, "total_paused_ms", sess.TotalPausedMS)
	return sess, nil
}

// Elapsed returns the current elapsed seconds of the active session,
// reconstructed from wall-clock timestamps.
func (t *Tracker) Elapsed(ctx context.Context) (int64, error) {
	sess, err := t.require(ctx)
	if err != nil {
		return 0, err
	}
	return sess.ElapsedSecAt(t.clock.Now()), nil
}

// Finalize ends the active session and commits it to durable history: the
// session row, the subject's cumulative total, and the DailyStat for the
// session's date are written in one transaction, with retry on transient
// failure. The active-session slot is cleared only after the durable write
// succeeds; if it never does, the record stays put and the session can be
// finalized again later.
func (t *Tracker) Finalize(ctx context.Context) (*model.StudySession, error) {
	sess, err := t.require(ctx)
	if err != nil {
		return nil, err
	}

	now := t.clock.Now()
	end := now
	sess.DurationSec = sess.ElapsedSecAt(now)
	sess.EndTime = &end
	sess.IsPaused = false
	sess.PausedAt = nil

	err = common.WithRetry(ctx, func() error {
		if saveErr := t.store.FinalizeSession(ctx, sess); saveErr != nil {
			return common.NewPersistenceError("finalize session", saveErr)
		}
		return nil
	}, t.retry)
	if err != nil {
		common.LogError(err, "session finalize not committed, keeping active record", common.Fields{
			"session_id": sess.ID,
		})
		return nil, err
	}

	if err := t.active.Clear(ctx); err != nil {
		// Durable history already holds the session; finalize is idempotent
		// on session ID, so a stale active record is recoverable.
		common.LogError(err, "failed to clear active session after finalize", common.Fields{
			"session_id": sess.ID,
		})
	}

	slog.Info("session finalized",
		"session_id", sess.ID,
		"subject_id", sess.SubjectID,
		"duration_sec", sess.DurationSec)
	return sess, nil
}

func (t *Tracker) require(ctx context.Context) (*model.StudySession, error) {
	sess, err := t.Current(ctx)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, common.NewValidationError("no active study session", common.ErrNoActiveSession)
	}
	return sess, nil
}
