package model

import "time"

// StudyTodo is a lightweight checklist item scoped to a planner period.
//
// PeriodKey identifies the period the todo belongs to: a date (YYYY-MM-DD)
// for daily items, an ISO week identifier (YYYY-Www) for weekly items, or a
// month identifier (YYYY-MM) for monthly items. Note that weekly todos use
// ISO week numbering while session reports use a trailing 7-day window; the
// two week definitions are intentionally distinct.
type StudyTodo struct {
	CreatedAt time.Time
	ID        string
	Title     string
	PeriodKey string
	Completed bool
}
