package normalise

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	spaceRe = regexp.MustCompile(`\s+`)
	dashRe  = regexp.MustCompile(`[\x{2013}\x{2014}-]+`)
)

// cellString renders a raw cell for text handling. Hosted-sheet grids
// carry unformatted values, so numbers arrive as float64.
func cellString(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case float64:
		return strconv.FormatFloat(c, 'f', -1, 64)
	case int:
		return strconv.Itoa(c)
	case bool:
		if c {
			return "TRUE"
		}
		return "FALSE"
	default:
		return ""
	}
}

// norm lowercases, collapses whitespace and unifies dash variants, so
// header and label comparisons tolerate human formatting.
func norm(v any) string {
	s := strings.ToLower(cellString(v))
	s = spaceRe.ReplaceAllString(s, " ")
	s = dashRe.ReplaceAllString(s, "-")
	return strings.TrimSpace(s)
}

// hasText reports whether a cell carries non-blank content.
func hasText(v any) bool {
	return strings.TrimSpace(cellString(v)) != ""
}

// rowBlank reports whether every cell in the row is blank.
func rowBlank(row []any) bool {
	for _, c := range row {
		if hasText(c) {
			return false
		}
	}
	return true
}

// rowText joins a row's cells into one line for banner scanning.
func rowText(row []any) string {
	parts := make([]string, 0, len(row))
	for _, c := range row {
		parts = append(parts, cellString(c))
	}
	return strings.TrimSpace(spaceRe.ReplaceAllString(strings.Join(parts, " "), " "))
}
