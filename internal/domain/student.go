package domain

import "time"

// Student is an enrolled learner. A student belongs to at most one group
// at a time.
type Student struct {
	ID        string
	Email     string
	FullName  string
	Phone     string
	GroupID   *string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
