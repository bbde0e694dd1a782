package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the application expects.
const ExpectedSchemaVersion = 3

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema: subjects, sessions, daily stats",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS subjects (
					id TEXT PRIMARY KEY,
					name TEXT UNIQUE NOT NULL,
					color TEXT NOT NULL DEFAULT '',
					icon TEXT NOT NULL DEFAULT '',
					total_study_sec INTEGER NOT NULL DEFAULT 0,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,

				`CREATE TABLE IF NOT EXISTS sessions (
					id TEXT PRIMARY KEY,
					subject_id TEXT NOT NULL,
					start_time DATETIME NOT NULL,
					end_time DATETIME NOT NULL,
					duration_sec INTEGER NOT NULL,
					total_paused_ms INTEGER NOT NULL DEFAULT 0,
					FOREIGN KEY (subject_id) REFERENCES subjects(id)
				)`,
				`CREATE INDEX idx_sessions_subject ON sessions(subject_id)`,
				`CREATE INDEX idx_sessions_start ON sessions(start_time)`,

				`CREATE TABLE IF NOT EXISTS daily_stats (
					date TEXT PRIMARY KEY,
					total_study_sec INTEGER NOT NULL DEFAULT 0,
					sessions_count INTEGER NOT NULL DEFAULT 0,
					subject_ids TEXT NOT NULL DEFAULT '[]'
				)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Planner tables: tasks, todos, exam deadlines",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS tasks (
					id TEXT PRIMARY KEY,
					subject_id TEXT NOT NULL DEFAULT '',
					title TEXT NOT NULL,
					date TEXT NOT NULL,
					planned_min INTEGER NOT NULL DEFAULT 0,
					priority TEXT NOT NULL DEFAULT 'medium',
					completed INTEGER NOT NULL DEFAULT 0,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_tasks_date ON tasks(date)`,

				`CREATE TABLE IF NOT EXISTS todos (
					id TEXT PRIMARY KEY,
					title TEXT NOT NULL,
					period_key TEXT NOT NULL,
					completed INTEGER NOT NULL DEFAULT 0,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_todos_period ON todos(period_key)`,

				`CREATE TABLE IF NOT EXISTS exams (
					id TEXT PRIMARY KEY,
					subject_id TEXT NOT NULL DEFAULT '',
					title TEXT NOT NULL,
					exam_date DATETIME NOT NULL,
					preparation INTEGER NOT NULL DEFAULT 0,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     3,
		Description: "User preferences",
		Up: func(tx *sql.Tx) error {
			_, err := tx.Exec(`
				CREATE TABLE IF NOT EXISTS preferences (
					id INTEGER PRIMARY KEY CHECK (id = 1),
					theme TEXT NOT NULL DEFAULT 'dark',
					daily_goal_min INTEGER NOT NULL DEFAULT 60
				)
			`)
			return err
		},
	},
}

// Migrate applies any pending schema migrations.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	var currentVersion int
	err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, txErr := s.db.BeginTx(ctx, nil)
		if txErr != nil {
			return fmt.Errorf("failed to begin transaction: %w", txErr)
		}

		if upErr := migration.Up(tx); upErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, upErr)
		}

		if _, execErr := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.Version)); execErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to update schema version: %w", execErr)
		}

		if commitErr := tx.Commit(); commitErr != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, commitErr)
		}

		slog.Info("Applied migration",
			"version", migration.Version,
			"description", migration.Description)
	}

	var finalVersion int
	err = s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&finalVersion)
	if err != nil {
		return fmt.Errorf("failed to verify final schema version: %w", err)
	}

	if finalVersion != ExpectedSchemaVersion {
		return fmt.Errorf("database schema version mismatch: expected %d, got %d", ExpectedSchemaVersion, finalVersion)
	}

	return nil
}
