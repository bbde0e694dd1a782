package model

// DailyStat aggregates study activity for one local calendar date.
// There is exactly one record per date; it is only ever updated additively
// when a session finalizes on that date, so TotalStudySec never decreases.
type DailyStat struct {
	Date          string // YYYY-MM-DD, local
	SubjectIDs    []string
	TotalStudySec int64
	SessionsCount int
}

// HasSubject reports whether the given subject was studied on this date.
func (d *DailyStat) HasSubject(subjectID string) bool {
	for _, id := range d.SubjectIDs {
		if id == subjectID {
			return true
		}
	}
	return false
}
