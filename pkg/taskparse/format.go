package taskparse

import (
	"fmt"
	"time"

	"task-intake/pkg/datemath"
)

// Locale holds the labels used when rendering stored fields for display.
type Locale struct {
	Today    string
	Tomorrow string
	Weekdays [7]string // indexed by time.Weekday
	// MonthLabel sits between day and month number in short dates ("19 thg 10").
	MonthLabel string

	MinutesUnit  string
	HoursUnit    string
	HourSuffix   string
	MinuteSuffix string
}

// DefaultLocale returns the Vietnamese display labels.
func DefaultLocale() Locale {
	return Locale{
		Today:    "Hôm nay",
		Tomorrow: "Ngày mai",
		Weekdays: [7]string{
			time.Sunday:    "Chủ Nhật",
			time.Monday:    "Thứ Hai",
			time.Tuesday:   "Thứ Ba",
			time.Wednesday: "Thứ Tư",
			time.Thursday:  "Thứ Năm",
			time.Friday:    "Thứ Sáu",
			time.Saturday:  "Thứ Bảy",
		},
		MonthLabel:   "thg",
		MinutesUnit:  "minutes",
		HoursUnit:    "hours",
		HourSuffix:   "h",
		MinuteSuffix: "p",
	}
}

// Formatter renders stored task fields as short labels.
// All methods return "" for absent input.
type Formatter struct {
	locale Locale
	cal    *datemath.Calendar
}

// NewFormatter creates a Formatter for the given locale and timezone.
func NewFormatter(locale Locale, cal *datemath.Calendar) *Formatter {
	return &Formatter{locale: locale, cal: cal}
}

// FormatDueDate labels d relative to the calendar day of ref: today,
// tomorrow, a weekday name up to a week ahead, otherwise "day month".
func (f *Formatter) FormatDueDate(d *Date, ref time.Time) string {
	if d == nil {
		return ""
	}
	target := d.In(f.cal.Location())
	switch days := f.cal.DaysBetween(ref, target); {
	case days == 0:
		return f.locale.Today
	case days == 1:
		return f.locale.Tomorrow
	case days >= 2 && days <= 7:
		return f.locale.Weekdays[target.Weekday()]
	default:
		return fmt.Sprintf("%d %s %d", d.Day, f.locale.MonthLabel, int(d.Month))
	}
}

// FormatTime renders a 24-hour clock as "3 PM" or "9:30 AM".
func (f *Formatter) FormatTime(c *Clock) string {
	if c == nil {
		return ""
	}
	hour := c.Hour % 12
	if hour == 0 {
		hour = 12
	}
	period := "AM"
	if c.Hour >= 12 {
		period = "PM"
	}
	if c.Minute == 0 {
		return fmt.Sprintf("%d %s", hour, period)
	}
	return fmt.Sprintf("%d:%02d %s", hour, c.Minute, period)
}

// FormatEstimatedTime renders minutes as "45 minutes", "2 hours" or "1h 30p".
func (f *Formatter) FormatEstimatedTime(minutes *int) string {
	if minutes == nil || *minutes <= 0 {
		return ""
	}
	m := *minutes
	if m < 60 {
		return fmt.Sprintf("%d %s", m, f.locale.MinutesUnit)
	}
	hours, rest := m/60, m%60
	if rest == 0 {
		return fmt.Sprintf("%d %s", hours, f.locale.HoursUnit)
	}
	return fmt.Sprintf("%d%s %d%s", hours, f.locale.HourSuffix, rest, f.locale.MinuteSuffix)
}
