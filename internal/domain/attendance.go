package domain

import "time"

// Attendance records one session of a group: who led it and which
// students showed up. One record per group per date is a convention, not
// an enforced constraint.
type Attendance struct {
	ID           string
	GroupID      string
	Date         time.Time
	MentorID     *string
	Participants []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
