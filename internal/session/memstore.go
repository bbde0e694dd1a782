package session

import (
	"context"

	"github.com/studyflow/studyflow/internal/common"
	"github.com/studyflow/studyflow/internal/model"
)

// MemStore is an in-memory ActiveSessionStore used in tests.
type MemStore struct {
	sess *model.StudySession
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{}
}

// Get returns the stored session or common.ErrNotFound.
func (s *MemStore) Get(_ context.Context) (*model.StudySession, error) {
	if s.sess == nil {
		return nil, common.ErrNotFound
	}
	copied := *s.sess
	return &copied, nil
}

// Set stores a copy of the session.
func (s *MemStore) Set(_ context.Context, sess *model.StudySession) error {
	copied := *sess
	s.sess = &copied
	return nil
}

// Clear empties the store.
func (s *MemStore) Clear(_ context.Context) error {
	s.sess = nil
	return nil
}
