package taskparse

import (
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"task-intake/pkg/datemath"
)

// Parser turns one freeform line of text into a ParseResult.
// It holds only immutable compiled tables and is safe for concurrent use.
type Parser struct {
	cal        *datemath.Calendar
	priorities []keyword[Priority]
	dates      []keyword[int]
	weekdays   []keyword[time.Weekday]
}

// NewParser compiles lex for use in the calendar's timezone.
func NewParser(lex Lexicon, cal *datemath.Calendar) *Parser {
	return &Parser{
		cal: cal,
		priorities: compileKeywords(lex.Priorities, func(k PriorityKeyword) (string, Priority) {
			return k.Phrase, k.Priority
		}),
		dates: compileKeywords(lex.Dates, func(k DateKeyword) (string, int) {
			return k.Phrase, k.Offset
		}),
		weekdays: compileKeywords(lex.Weekdays, func(k WeekdayKeyword) (string, time.Weekday) {
			return k.Phrase, k.Weekday
		}),
	}
}

// Parse extracts tags, priority, due date, due time and estimate from text,
// in that order, and keeps whatever is left as the title. ref is the
// reference instant that relative dates are resolved against.
//
// Every step is best effort: an unrecognised or rejected phrase leaves its
// field at the default and the text untouched.
func (p *Parser) Parse(text string, ref time.Time) ParseResult {
	original := strings.TrimSpace(text)
	text = norm.NFC.String(text)
	w := &workingText{s: text}

	result := ParseResult{
		Priority: PriorityMedium,
		Tags:     extractTags(w),
	}

	if level, ok := p.extractPriority(w); ok {
		result.Priority = level
	}

	if date, ok := p.extractDateKeyword(w, ref); ok {
		result.DueDate = &date
	} else if date, ok := p.extractWeekday(w, ref); ok {
		result.DueDate = &date
	}

	if clock, ok := extractTime(w); ok {
		result.DueTime = &clock
	}

	if minutes, ok := extractDuration(w); ok {
		result.EstimatedMinutes = &minutes
	}

	result.Title = sanitizeTitle(w.s, original)

	// Urgent tasks without a date are due today.
	if result.DueDate == nil && result.Priority == PriorityHigh {
		today := DateOf(p.cal.StartOfDay(ref))
		result.DueDate = &today
	}

	return result
}
