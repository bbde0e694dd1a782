package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/studyflow/studyflow/internal/common"
	"github.com/studyflow/studyflow/internal/model"
)

// FileStore persists the single active-session record as a JSON file. It is
// local scoped storage, deliberately separate from the durable store: the
// record survives process restarts but is never synced anywhere.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed active-session store at path.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, fmt.Errorf("active session path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}
	return &FileStore{path: path}, nil
}

// activeSessionRecord is the on-disk schema. Decoding validates required
// fields instead of silently defaulting them.
type activeSessionRecord struct {
	ID            string `json:"id"`
	SubjectID     string `json:"subject_id"`
	StartTimeMS   int64  `json:"start_time_ms"`
	PausedAtMS    *int64 `json:"paused_at_ms,omitempty"`
	TotalPausedMS int64  `json:"total_paused_ms"`
	IsPaused      bool   `json:"is_paused"`
}

func (r *activeSessionRecord) toModel() (*model.StudySession, error) {
	if r.ID == "" {
		return nil, errors.New("active session record missing id")
	}
	if r.SubjectID == "" {
		return nil, errors.New("active session record missing subject id")
	}
	if r.StartTimeMS <= 0 {
		return nil, errors.New("active session record missing start time")
	}
	if r.IsPaused && r.PausedAtMS == nil {
		return nil, errors.New("active session record paused without paused-at timestamp")
	}

	sess := &model.StudySession{
		ID:            r.ID,
		SubjectID:     r.SubjectID,
		StartTime:     time.UnixMilli(r.StartTimeMS),
		TotalPausedMS: r.TotalPausedMS,
		IsPaused:      r.IsPaused,
	}
	if r.PausedAtMS != nil {
		pausedAt := time.UnixMilli(*r.PausedAtMS)
		sess.PausedAt = &pausedAt
	}
	return sess, nil
}

func recordFromModel(sess *model.StudySession) *activeSessionRecord {
	rec := &activeSessionRecord{
		ID:            sess.ID,
		SubjectID:     sess.SubjectID,
		StartTimeMS:   sess.StartTime.UnixMilli(),
		TotalPausedMS: sess.TotalPausedMS,
		IsPaused:      sess.IsPaused,
	}
	if sess.PausedAt != nil {
		ms := sess.PausedAt.UnixMilli()
		rec.PausedAtMS = &ms
	}
	return rec
}

// Get reads the active-session record. Returns common.ErrNotFound when no
// session is active.
func (s *FileStore) Get(_ context.Context) (*model.StudySession, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read active session: %w", err)
	}

	var rec activeSessionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to decode active session: %w", err)
	}

	sess, err := rec.toModel()
	if err != nil {
		return nil, fmt.Errorf("invalid active session record: %w", err)
	}
	return sess, nil
}

// Set writes the active-session record atomically (temp file + rename).
func (s *FileStore) Set(_ context.Context, sess *model.StudySession) error {
	if sess == nil {
		return errors.New("session cannot be nil")
	}

	data, err := json.MarshalIndent(recordFromModel(sess), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode active session: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write active session: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to commit active session: %w", err)
	}
	return nil
}

// Clear removes the active-session record. Clearing an already-empty slot is
// not an error.
func (s *FileStore) Clear(_ context.Context) error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to clear active session: %w", err)
	}
	return nil
}
