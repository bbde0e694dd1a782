package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/studyflow/studyflow/internal/common"
	"github.com/studyflow/studyflow/internal/model"
)

// CreateTask inserts a scheduled study task.
func (s *SQLiteStorage) CreateTask(ctx context.Context, task *model.StudyTask) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateTask(task); err != nil {
		return err
	}

	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO tasks (id, subject_id, title, date, planned_min, priority, completed, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		task.ID, task.SubjectID, task.Title, task.Date, task.PlannedMin,
		string(task.Priority), task.Completed, task.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert task: %w", err)
	}
	return nil
}

// ListTasksForDate returns the tasks planned for a date, high priority first.
func (s *SQLiteStorage) ListTasksForDate(ctx context.Context, date string) ([]model.StudyTask, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(date, "date"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, subject_id, title, date, planned_min, priority, completed, created_at
		FROM tasks WHERE date = ?
		ORDER BY CASE priority WHEN 'high' THEN 0 WHEN 'medium' THEN 1 ELSE 2 END, created_at`,
		date)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var tasks []model.StudyTask
	for rows.Next() {
		var task model.StudyTask
		var priority string
		if err := rows.Scan(&task.ID, &task.SubjectID, &task.Title, &task.Date,
			&task.PlannedMin, &priority, &task.Completed, &task.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		task.Priority = model.TaskPriority(priority)
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tasks: %w", err)
	}

	return tasks, nil
}

// CompleteTask marks a task as done.
func (s *SQLiteStorage) CompleteTask(ctx context.Context, id string) error {
	return s.updateByID(ctx, id, `UPDATE tasks SET completed = 1 WHERE id = ?`, "complete task")
}

// DeleteTask removes a task.
func (s *SQLiteStorage) DeleteTask(ctx context.Context, id string) error {
	return s.updateByID(ctx, id, `DELETE FROM tasks WHERE id = ?`, "delete task")
}

// updateByID runs a single-row statement keyed by ID and maps a missing row
// to common.ErrNotFound.
func (s *SQLiteStorage) updateByID(ctx context.Context, id, query, op string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check %s result: %w", op, err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}
