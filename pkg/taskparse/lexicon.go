package taskparse

import (
	"regexp"
	"time"
)

// DateKeyword maps a relative-date phrase to a day offset from the reference day.
type DateKeyword struct {
	Phrase string
	Offset int
}

// WeekdayKeyword maps a weekday name to its weekday.
type WeekdayKeyword struct {
	Phrase  string
	Weekday time.Weekday
}

// PriorityKeyword maps a phrase to a priority level.
type PriorityKeyword struct {
	Phrase   string
	Priority Priority
}

// Lexicon holds the phrase tables consulted by the extractors.
// Tables are scanned in slice order and the first hit wins, so a longer
// phrase that contains a shorter one must be declared before it.
type Lexicon struct {
	Dates      []DateKeyword
	Weekdays   []WeekdayKeyword
	Priorities []PriorityKeyword
}

// DefaultLexicon returns a fresh copy of the built-in Vietnamese/English tables.
func DefaultLexicon() Lexicon {
	return Lexicon{
		Priorities: []PriorityKeyword{
			{"không gấp", PriorityLow},
			{"#gấp", PriorityHigh},
			{"#urgent", PriorityHigh},
			{"gấp:", PriorityHigh},
			{"gấp", PriorityHigh},
			{"khẩn cấp", PriorityHigh},
			{"urgent", PriorityHigh},
			{"asap", PriorityHigh},
			{"quan trọng", PriorityHigh},
			{"important", PriorityHigh},
			{"ưu tiên cao", PriorityHigh},
			{"high priority", PriorityHigh},
			{"ưu tiên thấp", PriorityLow},
			{"low priority", PriorityLow},
			{"#low", PriorityLow},
			{"ưu tiên trung bình", PriorityMedium},
			{"medium priority", PriorityMedium},
		},
		Dates: []DateKeyword{
			{"hôm nay", 0},
			{"today", 0},
			{"tonight", 0},
			{"ngày kia", 2},
			{"ngày mốt", 2},
			{"day after tomorrow", 2},
			{"ngày mai", 1},
			{"tomorrow", 1},
			{"tuần sau", 7},
			{"tuần tới", 7},
			{"next week", 7},
		},
		Weekdays: []WeekdayKeyword{
			{"chủ nhật", time.Sunday},
			{"thứ hai", time.Monday},
			{"thứ ba", time.Tuesday},
			{"thứ tư", time.Wednesday},
			{"thứ năm", time.Thursday},
			{"thứ sáu", time.Friday},
			{"thứ bảy", time.Saturday},
			{"thứ 2", time.Monday},
			{"thứ 3", time.Tuesday},
			{"thứ 4", time.Wednesday},
			{"thứ 5", time.Thursday},
			{"thứ 6", time.Friday},
			{"thứ 7", time.Saturday},
			{"sunday", time.Sunday},
			{"monday", time.Monday},
			{"tuesday", time.Tuesday},
			{"wednesday", time.Wednesday},
			{"thursday", time.Thursday},
			{"friday", time.Friday},
			{"saturday", time.Saturday},
		},
	}
}

// keyword is a compiled lexicon entry.
type keyword[T any] struct {
	pattern *regexp.Regexp
	value   T
}

// compilePhrase builds a case-insensitive literal matcher for phrase.
func compilePhrase(phrase string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + regexp.QuoteMeta(phrase))
}

func compileKeywords[E any, T any](entries []E, split func(E) (string, T)) []keyword[T] {
	out := make([]keyword[T], 0, len(entries))
	for _, e := range entries {
		phrase, value := split(e)
		if phrase == "" {
			continue
		}
		out = append(out, keyword[T]{pattern: compilePhrase(phrase), value: value})
	}
	return out
}

// firstKeyword scans table in order and returns the value and location of the
// first entry found anywhere in text.
func firstKeyword[T any](table []keyword[T], text string) (T, []int, bool) {
	for _, kw := range table {
		if loc := kw.pattern.FindStringIndex(text); loc != nil {
			return kw.value, loc, true
		}
	}
	var zero T
	return zero, nil, false
}
