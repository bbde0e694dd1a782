// Package storage provides the durable persistence layer for studyflow.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/studyflow/studyflow/internal/model"
)

// Validation errors.
var (
	ErrNilContext     = errors.New("context cannot be nil")
	ErrEmptyString    = errors.New("string parameter cannot be empty")
	ErrNilParameter   = errors.New("parameter cannot be nil")
	ErrInvalidSubject = errors.New("invalid subject")
	ErrInvalidSession = errors.New("invalid session")
	ErrInvalidTask    = errors.New("invalid task")
	ErrInvalidTodo    = errors.New("invalid todo")
	ErrInvalidExam    = errors.New("invalid exam")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateSubject validates a subject.
func validateSubject(subject *model.Subject) error {
	if subject == nil {
		return fmt.Errorf("%w: subject", ErrNilParameter)
	}
	if subject.ID == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidSubject)
	}
	if strings.TrimSpace(subject.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidSubject)
	}
	return nil
}

// validateCompletedSession validates a session being committed to history.
// Only finalized sessions are ever written to the durable store.
func validateCompletedSession(sess *model.StudySession) error {
	if sess == nil {
		return fmt.Errorf("%w: session", ErrNilParameter)
	}
	if sess.ID == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidSession)
	}
	if sess.SubjectID == "" {
		return fmt.Errorf("%w: missing subject ID", ErrInvalidSession)
	}
	if sess.StartTime.IsZero() {
		return fmt.Errorf("%w: missing start time", ErrInvalidSession)
	}
	if sess.EndTime == nil {
		return fmt.Errorf("%w: missing end time", ErrInvalidSession)
	}
	if sess.DurationSec < 0 {
		return fmt.Errorf("%w: negative duration", ErrInvalidSession)
	}
	return nil
}

// validateTask validates a study task.
func validateTask(task *model.StudyTask) error {
	if task == nil {
		return fmt.Errorf("%w: task", ErrNilParameter)
	}
	if task.ID == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidTask)
	}
	if strings.TrimSpace(task.Title) == "" {
		return fmt.Errorf("%w: missing title", ErrInvalidTask)
	}
	if task.Date == "" {
		return fmt.Errorf("%w: missing date", ErrInvalidTask)
	}
	switch task.Priority {
	case model.PriorityLow, model.PriorityMedium, model.PriorityHigh:
	default:
		return fmt.Errorf("%w: priority %q", ErrInvalidTask, task.Priority)
	}
	return nil
}

// validateTodo validates a period-scoped todo.
func validateTodo(todo *model.StudyTodo) error {
	if todo == nil {
		return fmt.Errorf("%w: todo", ErrNilParameter)
	}
	if todo.ID == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidTodo)
	}
	if strings.TrimSpace(todo.Title) == "" {
		return fmt.Errorf("%w: missing title", ErrInvalidTodo)
	}
	if todo.PeriodKey == "" {
		return fmt.Errorf("%w: missing period key", ErrInvalidTodo)
	}
	return nil
}

// validateExam validates an exam deadline.
func validateExam(exam *model.ExamDeadline) error {
	if exam == nil {
		return fmt.Errorf("%w: exam", ErrNilParameter)
	}
	if exam.ID == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidExam)
	}
	if strings.TrimSpace(exam.Title) == "" {
		return fmt.Errorf("%w: missing title", ErrInvalidExam)
	}
	if exam.Date.IsZero() {
		return fmt.Errorf("%w: missing date", ErrInvalidExam)
	}
	if exam.Preparation < 0 || exam.Preparation > 100 {
		return fmt.Errorf("%w: preparation must be between 0 and 100", ErrInvalidExam)
	}
	return nil
}
