package model

import "time"

// TaskPriority orders planned tasks within a day.
type TaskPriority string

// Valid task priorities.
const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// StudyTask is a scheduled unit of work for a specific date.
type StudyTask struct {
	CreatedAt  time.Time
	ID         string
	SubjectID  string
	Title      string
	Date       string // YYYY-MM-DD, local
	Priority   TaskPriority
	PlannedMin int
	Completed  bool
}
