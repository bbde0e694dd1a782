package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/studyflow/studyflow/internal/model"
)

// CreateTodo inserts a period-scoped checklist item.
func (s *SQLiteStorage) CreateTodo(ctx context.Context, todo *model.StudyTodo) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateTodo(todo); err != nil {
		return err
	}

	if todo.CreatedAt.IsZero() {
		todo.CreatedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO todos (id, title, period_key, completed, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		todo.ID, todo.Title, todo.PeriodKey, todo.Completed, todo.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert todo: %w", err)
	}
	return nil
}

// ListTodosForPeriod returns the todos scoped to one period key (a date, an
// ISO week identifier, or a month key), oldest first.
func (s *SQLiteStorage) ListTodosForPeriod(ctx context.Context, periodKey string) ([]model.StudyTodo, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(periodKey, "periodKey"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, period_key, completed, created_at
		FROM todos WHERE period_key = ? ORDER BY created_at`,
		periodKey)
	if err != nil {
		return nil, fmt.Errorf("failed to query todos: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var todos []model.StudyTodo
	for rows.Next() {
		var todo model.StudyTodo
		if err := rows.Scan(&todo.ID, &todo.Title, &todo.PeriodKey, &todo.Completed, &todo.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan todo: %w", err)
		}
		todos = append(todos, todo)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating todos: %w", err)
	}

	return todos, nil
}

// CompleteTodo marks a todo as done.
func (s *SQLiteStorage) CompleteTodo(ctx context.Context, id string) error {
	return s.updateByID(ctx, id, `UPDATE todos SET completed = 1 WHERE id = ?`, "complete todo")
}

// DeleteTodo removes a todo.
func (s *SQLiteStorage) DeleteTodo(ctx context.Context, id string) error {
	return s.updateByID(ctx, id, `DELETE FROM todos WHERE id = ?`, "delete todo")
}
