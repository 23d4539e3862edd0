package datemath

import (
	"fmt"
	"time"
)

// Calendar performs calendar-day arithmetic in a fixed timezone.
type Calendar struct {
	location *time.Location
}

// NewCalendar creates a calendar for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewCalendar(timezone string) (*Calendar, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Calendar{location: loc}, nil
}

// Location returns the calendar's timezone.
func (c *Calendar) Location() *time.Location {
	return c.location
}

// StartOfDay returns midnight at the start of the given day in the calendar's timezone.
func (c *Calendar) StartOfDay(t time.Time) time.Time {
	t = t.In(c.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.location)
}

// AddDays returns the start of the day n calendar days after base.
// Month and year boundaries roll over naturally.
func (c *Calendar) AddDays(base time.Time, n int) time.Time {
	return c.StartOfDay(base).AddDate(0, 0, n)
}

// NextWeekday returns the next occurrence of target strictly after base.
// If base already falls on target the result is one week later.
func (c *Calendar) NextWeekday(base time.Time, target time.Weekday) time.Time {
	current := base.In(c.location).Weekday()
	daysUntil := int(target - current)
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return c.AddDays(base, daysUntil)
}

// DaysBetween returns the number of calendar days from base to target.
// Time of day is ignored, so 23:59 today and 00:01 tomorrow are one day apart.
func (c *Calendar) DaysBetween(base, target time.Time) int {
	b := base.In(c.location)
	t := target.In(c.location)
	// UTC midnights avoid DST-shortened days skewing the division.
	from := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}
