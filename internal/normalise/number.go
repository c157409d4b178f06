package normalise

import (
	"math"
	"strconv"
	"strings"
)

// ParseNumber coerces a locale-formatted cell into a number. Thousands
// separators and a trailing percent sign are stripped (percent values
// are not divided). "-", "nil" (any case) and blanks map to nil, as do
// non-finite results.
func ParseNumber(v any) *float64 {
	switch c := v.(type) {
	case nil:
		return nil
	case float64:
		return finite(c)
	case int:
		f := float64(c)
		return &f
	case string:
		return parseNumberString(c)
	default:
		return nil
	}
}

func parseNumberString(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" || strings.EqualFold(s, "nil") {
		return nil
	}
	s = strings.TrimSuffix(s, "%")
	s = strings.ReplaceAll(s, ",", "")

	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil
	}
	return finite(f)
}

func finite(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}
