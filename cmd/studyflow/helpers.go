package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/studyflow/studyflow/internal/common"
	"github.com/studyflow/studyflow/internal/config"
	"github.com/studyflow/studyflow/internal/model"
	"github.com/studyflow/studyflow/internal/session"
	"github.com/studyflow/studyflow/internal/storage"
)

// initStorage opens the SQLite database and applies pending migrations.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := config.ExpandPath(viper.GetString("database.path"))

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// initTracker wires the session tracker over the local active-session file
// and the durable store.
func initTracker(store *storage.SQLiteStorage) (*session.Tracker, error) {
	activePath := config.ExpandPath(viper.GetString("session.active_path"))

	active, err := session.NewFileStore(activePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open active session store: %w", err)
	}

	return session.NewTracker(active, store, session.SystemClock{}), nil
}

// resolveSubject finds a subject by name, falling back to ID lookup so
// scripts can pass either.
func resolveSubject(ctx context.Context, store *storage.SQLiteStorage, nameOrID string) (*model.Subject, error) {
	subject, err := store.GetSubjectByName(ctx, nameOrID)
	if err == nil {
		return subject, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up subject: %w", err)
	}

	subject, err = store.GetSubject(ctx, nameOrID)
	if errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("subject %q not found; use 'studyflow subjects add' to create it", nameOrID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up subject: %w", err)
	}
	return subject, nil
}

// subjectNames maps subject IDs to display names for report output.
func subjectNames(ctx context.Context, store *storage.SQLiteStorage) (map[string]string, error) {
	subjects, err := store.ListSubjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list subjects: %w", err)
	}
	names := make(map[string]string, len(subjects))
	for _, s := range subjects {
		names[s.ID] = s.Name
	}
	return names, nil
}
