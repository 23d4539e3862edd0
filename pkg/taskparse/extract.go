package taskparse

import (
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

var (
	tagPattern        = regexp.MustCompile(`@([\p{L}\p{N}_]+)`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// titleTrimSet is stripped from both ends of the remaining text.
const titleTrimSet = ",.-"

// workingText is the mutable copy of the input that extractors consume.
type workingText struct {
	s string
}

// cut removes s[loc[0]:loc[1]], leaving a space so neighbouring words stay apart.
func (w *workingText) cut(loc []int) {
	w.s = w.s[:loc[0]] + " " + w.s[loc[1]:]
}

// extractTags removes every @mention and returns the lowercased names in order.
func extractTags(w *workingText) []string {
	tags := make([]string, 0)
	for _, m := range tagPattern.FindAllStringSubmatch(w.s, -1) {
		tags = append(tags, strings.ToLower(m[1]))
	}
	w.s = tagPattern.ReplaceAllString(w.s, " ")
	return tags
}

func (p *Parser) extractPriority(w *workingText) (Priority, bool) {
	level, loc, ok := firstKeyword(p.priorities, w.s)
	if !ok {
		return "", false
	}
	w.cut(loc)
	return level, true
}

func (p *Parser) extractDateKeyword(w *workingText, ref time.Time) (Date, bool) {
	offset, loc, ok := firstKeyword(p.dates, w.s)
	if !ok {
		return Date{}, false
	}
	w.cut(loc)
	return DateOf(p.cal.AddDays(ref, offset)), true
}

func (p *Parser) extractWeekday(w *workingText, ref time.Time) (Date, bool) {
	weekday, loc, ok := firstKeyword(p.weekdays, w.s)
	if !ok {
		return Date{}, false
	}
	w.cut(loc)
	return DateOf(p.cal.NextWeekday(ref, weekday)), true
}

func extractTime(w *workingText) (Clock, bool) {
	for _, tmpl := range timeTemplates {
		loc := firstBounded(tmpl, w.s, 0)
		if loc == nil {
			continue
		}
		clock, ok := ParseTime(w.s[loc[0]:loc[1]])
		if !ok {
			continue
		}
		w.cut(loc)
		return clock, true
	}
	return Clock{}, false
}

func extractDuration(w *workingText) (int, bool) {
	for _, tmpl := range durationTemplates {
		loc := firstBounded(tmpl, w.s, 1)
		if loc == nil {
			continue
		}
		minutes, ok := ParseDuration(w.s[loc[2]:loc[3]])
		if !ok {
			continue
		}
		w.cut(loc[:2])
		return minutes, true
	}
	return 0, false
}

// firstBounded returns the submatch indexes of the first match of re whose
// end does not run into a letter or digit, so "lúc 3 hôm" is not read as
// "lúc 3 h". groups is the number of capture groups that must be present.
func firstBounded(re *regexp.Regexp, s string, groups int) []int {
	for _, loc := range re.FindAllStringSubmatchIndex(s, -1) {
		if len(loc) < 2*(groups+1) || (groups > 0 && loc[2*groups] < 0) {
			continue
		}
		if r, _ := utf8.DecodeRuneInString(s[loc[1]:]); r != utf8.RuneError && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			continue
		}
		return loc
	}
	return nil
}

// sanitizeTitle collapses whitespace and trims separators. An empty result
// falls back to the untouched input.
func sanitizeTitle(remaining, original string) string {
	title := whitespacePattern.ReplaceAllString(remaining, " ")
	title = strings.TrimFunc(title, func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune(titleTrimSet, r)
	})
	if title == "" {
		return original
	}
	return title
}
