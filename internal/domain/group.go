package domain

import "time"

// Group is a class cohort taught by a mentor on a weekly schedule.
//
// MentorID is honored for earnings attribution only when it resolves to an
// employee whose role is mentor; other references are treated as
// unassigned.
type Group struct {
	ID           string
	Specialty    string
	ScheduleDays string
	TimeOfDay    string
	StartDate    *time.Time
	Seats        int
	Price        float64
	MentorID     *string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
