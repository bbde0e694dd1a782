package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/studyflow/studyflow/internal/common"
	"github.com/studyflow/studyflow/internal/model"
)

// CreateExam inserts an exam deadline.
func (s *SQLiteStorage) CreateExam(ctx context.Context, exam *model.ExamDeadline) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateExam(exam); err != nil {
		return err
	}

	if exam.CreatedAt.IsZero() {
		exam.CreatedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO exams (id, subject_id, title, exam_date, preparation, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		exam.ID, exam.SubjectID, exam.Title, exam.Date, exam.Preparation, exam.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert exam: %w", err)
	}
	return nil
}

// ListExams returns all exam deadlines, soonest first.
func (s *SQLiteStorage) ListExams(ctx context.Context) ([]model.ExamDeadline, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, subject_id, title, exam_date, preparation, created_at
		FROM exams ORDER BY exam_date`)
	if err != nil {
		return nil, fmt.Errorf("failed to query exams: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var exams []model.ExamDeadline
	for rows.Next() {
		var exam model.ExamDeadline
		if err := rows.Scan(&exam.ID, &exam.SubjectID, &exam.Title, &exam.Date,
			&exam.Preparation, &exam.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan exam: %w", err)
		}
		exams = append(exams, exam)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating exams: %w", err)
	}

	return exams, nil
}

// UpdateExamPreparation sets the preparation percentage for an exam.
func (s *SQLiteStorage) UpdateExamPreparation(ctx context.Context, id string, preparation int) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}
	if preparation < 0 || preparation > 100 {
		return fmt.Errorf("%w: preparation must be between 0 and 100", ErrInvalidExam)
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE exams SET preparation = ? WHERE id = ?`, preparation, id)
	if err != nil {
		return fmt.Errorf("failed to update exam preparation: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check exam update: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}

// DeleteExam removes an exam deadline.
func (s *SQLiteStorage) DeleteExam(ctx context.Context, id string) error {
	return s.updateByID(ctx, id, `DELETE FROM exams WHERE id = ?`, "delete exam")
}
