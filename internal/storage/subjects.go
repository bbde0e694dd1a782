package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/studyflow/studyflow/internal/common"
	"github.com/studyflow/studyflow/internal/model"
)

// CreateSubject inserts a new subject.
func (s *SQLiteStorage) CreateSubject(ctx context.Context, subject *model.Subject) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateSubject(subject); err != nil {
		return err
	}

	if subject.CreatedAt.IsZero() {
		subject.CreatedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO subjects (id, name, color, icon, total_study_sec, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		subject.ID, subject.Name, subject.Color, subject.Icon, subject.TotalStudySec, subject.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert subject %s: %w", subject.Name, err)
	}

	slog.Debug("created subject", "id", subject.ID, "name", subject.Name)
	return nil
}

// GetSubject returns a subject by ID, or common.ErrNotFound.
func (s *SQLiteStorage) GetSubject(ctx context.Context, id string) (*model.Subject, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	return s.scanSubject(s.db.QueryRowContext(ctx, `
		SELECT id, name, color, icon, total_study_sec, created_at
		FROM subjects WHERE id = ?`, id))
}

// GetSubjectByName returns a subject by its unique name, or common.ErrNotFound.
func (s *SQLiteStorage) GetSubjectByName(ctx context.Context, name string) (*model.Subject, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(name, "name"); err != nil {
		return nil, err
	}

	return s.scanSubject(s.db.QueryRowContext(ctx, `
		SELECT id, name, color, icon, total_study_sec, created_at
		FROM subjects WHERE name = ?`, name))
}

func (s *SQLiteStorage) scanSubject(row *sql.Row) (*model.Subject, error) {
	var subject model.Subject
	err := row.Scan(&subject.ID, &subject.Name, &subject.Color, &subject.Icon,
		&subject.TotalStudySec, &subject.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan subject: %w", err)
	}
	return &subject, nil
}

// ListSubjects returns all subjects ordered by name.
func (s *SQLiteStorage) ListSubjects(ctx context.Context) ([]model.Subject, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, color, icon, total_study_sec, created_at
		FROM subjects ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query subjects: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var subjects []model.Subject
	for rows.Next() {
		var subject model.Subject
		if err := rows.Scan(&subject.ID, &subject.Name, &subject.Color, &subject.Icon,
			&subject.TotalStudySec, &subject.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan subject: %w", err)
		}
		subjects = append(subjects, subject)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating subjects: %w", err)
	}

	return subjects, nil
}

// DeleteSubject removes a subject. Its finalized sessions remain in history.
func (s *SQLiteStorage) DeleteSubject(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM subjects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete subject: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}
