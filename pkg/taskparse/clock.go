package taskparse

import (
	"regexp"
	"strconv"
	"strings"
)

// Phrase templates for a time of day, tried in order.
var timeTemplates = []*regexp.Regexp{
	regexp.MustCompile(`(?i)lúc\s*\d{1,2}\s*h(?:\s*\d{1,2})?(?:\s*(?:sáng|chiều|tối))?`),
	regexp.MustCompile(`(?i)\bat\s+\d{1,2}(?::\d{2})?(?:\s*(?:am|pm))?\b`),
	regexp.MustCompile(`(?i)vào\s*\d{1,2}\s*h`),
}

var (
	viClockPattern      = regexp.MustCompile(`(?i)(\d{1,2})\s*h\s*(\d{1,2})?\s*(sáng|chiều|tối)?`)
	genericClockPattern = regexp.MustCompile(`(?i)(\d{1,2})(?::(\d{2}))?\s*(am|pm)?`)
)

// ParseTime interprets a time phrase such as "lúc 3h chiều", "at 5:30pm" or
// "vào 9h" as a 24-hour clock reading. It reports false when no hour can be
// read or the hour or minute is out of range.
func ParseTime(snippet string) (Clock, bool) {
	if m := viClockPattern.FindStringSubmatch(snippet); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		switch strings.ToLower(m[3]) {
		case "chiều", "tối":
			if hour < 12 {
				hour += 12
			}
		case "sáng":
			if hour == 12 {
				hour = 0
			}
		}
		return validClock(hour, minute)
	}

	if m := genericClockPattern.FindStringSubmatch(snippet); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		switch strings.ToLower(m[3]) {
		case "pm":
			if hour != 12 {
				hour += 12
			}
		case "am":
			if hour == 12 {
				hour = 0
			}
		}
		return validClock(hour, minute)
	}

	return Clock{}, false
}

func validClock(hour, minute int) (Clock, bool) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return Clock{}, false
	}
	return Clock{Hour: hour, Minute: minute}, true
}
