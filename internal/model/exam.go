package model

import "time"

// ExamDeadline tracks an upcoming exam date and how prepared the user feels.
type ExamDeadline struct {
	Date        time.Time
	CreatedAt   time.Time
	ID          string
	SubjectID   string
	Title       string
	Preparation int // 0-100 percent
}

// DaysUntil returns the number of whole calendar days between now and the
// exam date, negative if the exam has passed.
func (e *ExamDeadline) DaysUntil(now time.Time) int {
	examDay := time.Date(e.Date.Year(), e.Date.Month(), e.Date.Day(), 0, 0, 0, 0, now.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return int(examDay.Sub(today).Hours() / 24)
}
