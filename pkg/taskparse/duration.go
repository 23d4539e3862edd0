package taskparse

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	hourUnits    = `(?:hours|hour|hrs|hr|tiếng|h)`
	minuteUnits  = `(?:minutes|minute|mins|min|phút|p|m)`
	durationExpr = `\d+\s*` + hourUnits + `(?:\s*\d+(?:\s*` + minuteUnits + `)?)?|\d+\s*` + minuteUnits
)

// Phrase templates for an effort estimate, tried in order. Group 1 is the
// duration expression handed to ParseDuration.
var durationTemplates = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:mất|takes|estimated|estimate)\s*:?\s*(` + durationExpr + `)`),
	regexp.MustCompile(`(?i)\(\s*(` + durationExpr + `)\s*\)`),
}

var (
	compactDurationPattern = regexp.MustCompile(`(?i)^(?:(\d+)\s*(?:h|tiếng)(?:\s*(\d+)\s*(?:p|phút)?)?|(\d+)\s*(?:p|phút))$`)
	hoursPattern           = regexp.MustCompile(`(?i)(\d+)\s*(?:hours?|hrs?|h)\b`)
	// \b stops the "m" of "mon..." from reading as minutes.
	minutesPattern = regexp.MustCompile(`(?i)(\d+)\s*(?:minutes?|mins?|m)\b`)
)

// ParseDuration converts a duration expression such as "1h30p", "2 tiếng",
// "45p" or "1 hour 15 minutes" into minutes. It reports false when no
// positive amount can be read.
func ParseDuration(snippet string) (int, bool) {
	snippet = strings.TrimSpace(snippet)

	if m := compactDurationPattern.FindStringSubmatch(snippet); m != nil {
		hours, _ := strconv.Atoi(m[1])
		minutes, _ := strconv.Atoi(m[2])
		if m[3] != "" {
			minutes, _ = strconv.Atoi(m[3])
		}
		if total := hours*60 + minutes; total > 0 {
			return total, true
		}
	}

	total, found := 0, false
	if m := hoursPattern.FindStringSubmatch(snippet); m != nil {
		hours, _ := strconv.Atoi(m[1])
		total += hours * 60
		found = true
	}
	if m := minutesPattern.FindStringSubmatch(snippet); m != nil {
		minutes, _ := strconv.Atoi(m[1])
		total += minutes
		found = true
	}
	if !found || total <= 0 {
		return 0, false
	}
	return total, true
}
