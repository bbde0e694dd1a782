// Package model defines the core domain types for the studyflow application.
package model

import "time"

// Subject represents a topic the user studies, e.g. "Linear Algebra".
// TotalStudySec accumulates the durations of finalized sessions.
type Subject struct {
	CreatedAt     time.Time
	ID            string
	Name          string
	Color         string
	Icon          string
	TotalStudySec int64
}
