// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/studyflow/studyflow/internal/model"
)

// Storage defines the contract for the durable persistence layer.
type Storage interface {
	// Subject operations
	CreateSubject(ctx context.Context, subject *model.Subject) error
	GetSubject(ctx context.Context, id string) (*model.Subject, error)
	GetSubjectByName(ctx context.Context, name string) (*model.Subject, error)
	ListSubjects(ctx context.Context) ([]model.Subject, error)
	DeleteSubject(ctx context.Context, id string) error

	// Session operations (completed sessions only; the active session lives
	// in the local ActiveSessionStore until finalized)
	ListCompletedSessions(ctx context.Context) ([]model.StudySession, error)
	ListSessionsBySubject(ctx context.Context, subjectID string) ([]model.StudySession, error)
	CountCompletedSessions(ctx context.Context) (int, error)

	// FinalizeSession commits a completed session atomically: it appends the
	// session to history, adds its duration to the owning subject's total,
	// and additively updates the DailyStat for the session's date, all in a
	// single transaction.
	FinalizeSession(ctx context.Context, session *model.StudySession) error

	// Daily stat operations
	GetDailyStat(ctx context.Context, date string) (*model.DailyStat, error)
	ListDailyStats(ctx context.Context) ([]model.DailyStat, error)

	// Task operations
	CreateTask(ctx context.Context, task *model.StudyTask) error
	ListTasksForDate(ctx context.Context, date string) ([]model.StudyTask, error)
	CompleteTask(ctx context.Context, id string) error
	DeleteTask(ctx context.Context, id string) error

	// Todo operations
	CreateTodo(ctx context.Context, todo *model.StudyTodo) error
	ListTodosForPeriod(ctx context.Context, periodKey string) ([]model.StudyTodo, error)
	CompleteTodo(ctx context.Context, id string) error
	DeleteTodo(ctx context.Context, id string) error

	// Exam operations
	CreateExam(ctx context.Context, exam *model.ExamDeadline) error
	ListExams(ctx context.Context) ([]model.ExamDeadline, error)
	UpdateExamPreparation(ctx context.Context, id string, preparation int) error
	DeleteExam(ctx context.Context, id string) error

	// Preferences
	GetPreferences(ctx context.Context) (*model.Preferences, error)
	SavePreferences(ctx context.Context, prefs *model.Preferences) error

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

// ActiveSessionStore holds the single not-yet-finalized session. It is local
// scoped storage, separate from the durable store, so a process restart
// before finalize does not lose the session.
type ActiveSessionStore interface {
	Get(ctx context.Context) (*model.StudySession, error)
	Set(ctx context.Context, session *model.StudySession) error
	Clear(ctx context.Context) error
}

// Clock abstracts the single wall-clock read used for all elapsed-time math.
type Clock interface {
	Now() time.Time
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
