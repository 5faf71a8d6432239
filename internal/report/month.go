package report

import (
	"fmt"
	"time"
)

const monthLayout = "2006-01"

// Month identifies one calendar month. The aggregator works on whole
// months only; callers parse and validate month strings before computing.
type Month struct {
	Year  int
	Month time.Month
}

// ParseMonth parses a "YYYY-MM" string.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(monthLayout, s)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q: %w", s, err)
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

// String renders the month back to "YYYY-MM".
func (m Month) String() string {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).Format(monthLayout)
}

// Range returns the half-open interval [start, end) covering the month.
func (m Month) Range() (start, end time.Time) {
	start = time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// Contains reports whether t falls within the month.
func (m Month) Contains(t time.Time) bool {
	start, end := m.Range()
	t = t.UTC()
	return !t.Before(start) && t.Before(end)
}

// Days returns every day of the month in order.
func (m Month) Days() []time.Time {
	start, end := m.Range()
	days := make([]time.Time, 0, 31)
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}
