package normalise

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

const isoDay = "2006-01-02"

// dateMatcher attempts one date pattern against free text.
// Returns ok=false when the pattern does not apply.
type dateMatcher func(s string) (time.Time, bool)

// dateMatchers is the coercion cascade, evaluated in priority order.
// The first successful pattern wins.
var dateMatchers = []dateMatcher{
	matchNativeLayouts,
	matchDayMonthNameYear,
	matchMonthNameDayYear,
	matchDayMonthYear,
}

// ParseDate parses free-text date prose into YYYY-MM-DD.
// Returns the empty string when no pattern matches.
func ParseDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	for _, match := range dateMatchers {
		if t, ok := match(s); ok {
			return t.Format(isoDay)
		}
	}
	return ""
}

var nativeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	isoDay,
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
}

func matchNativeLayouts(s string) (time.Time, bool) {
	for _, layout := range nativeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

var (
	dayMonthNameYearRe = regexp.MustCompile(`(\d{1,2})[\s\-/]+([A-Za-z]{3,})[\s\-/]+(\d{2,4})`)
	monthNameDayYearRe = regexp.MustCompile(`([A-Za-z]{3,})\s+(\d{1,2}),\s*(\d{2,4})`)
	dayMonthYearRe     = regexp.MustCompile(`(\d{1,2})[/\-](\d{1,2})[/\-](\d{2,4})`)
)

// matchDayMonthNameYear handles "15-Aug-2025", "15 August 2025".
func matchDayMonthNameYear(s string) (time.Time, bool) {
	m := dayMonthNameYearRe.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}
	day, _ := strconv.Atoi(m[1])
	month, ok := monthNumber(m[2])
	if !ok {
		return time.Time{}, false
	}
	return makeDate(expandYear(m[3]), month, day)
}

// matchMonthNameDayYear handles "Aug 15, 2025", "August 15, 25".
func matchMonthNameDayYear(s string) (time.Time, bool) {
	m := monthNameDayYearRe.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}
	month, ok := monthNumber(m[1])
	if !ok {
		return time.Time{}, false
	}
	day, _ := strconv.Atoi(m[2])
	return makeDate(expandYear(m[3]), month, day)
}

// matchDayMonthYear handles "15/08/2025", "15-08-2025" (day first).
func matchDayMonthYear(s string) (time.Time, bool) {
	m := dayMonthYearRe.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	return makeDate(expandYear(m[3]), month, day)
}

var monthNames = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

func monthNumber(name string) (int, bool) {
	key := strings.ToLower(name)
	if len(key) > 3 {
		key = key[:3]
	}
	n, ok := monthNames[key]
	return n, ok
}

func expandYear(s string) int {
	y, _ := strconv.Atoi(s)
	if y < 100 {
		y += 2000
	}
	return y
}

func makeDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}
