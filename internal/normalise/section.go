package normalise

import "strings"

// sectionLabels demarcate sub-table groupings. A row starting with one
// carries no holding data and is skipped; extraction continues.
var sectionLabels = []string{
	"debt instruments",
	"government securities",
	"money market instruments",
	"treps",
	"reverse repo",
	"others",
	"cash margin",
	"net current assets",
	"state development loans",
	"psu bonds",
	"corporate bonds",
}

// totalLabels mark subtotal/total lines. Matched exactly, not by prefix,
// so instrument names containing "total" survive.
var totalLabels = []string{
	"subtotal",
	"sub total",
	"total",
	"grand total",
	"total (a+b)",
}

// strictTotalLabels halt sheet processing entirely: everything after a
// grand total is assumed non-tabular. Section labels merely skip their
// own row; this asymmetry is load-bearing on multi-section sheets.
var strictTotalLabels = []string{
	"total",
	"grand total",
	"subtotal",
	"sub total",
}

// isSectionOrTotal reports whether a first-cell value is a section
// heading or a total line.
func isSectionOrTotal(v any) bool {
	s := norm(v)
	if s == "" {
		return false
	}
	for _, label := range sectionLabels {
		if strings.HasPrefix(s, label) {
			return true
		}
	}
	for _, label := range totalLabels {
		if s == label {
			return true
		}
	}
	return false
}

// isStrictTotal reports whether a first-cell value is a hard stop.
func isStrictTotal(v any) bool {
	s := norm(v)
	for _, label := range strictTotalLabels {
		if s == label {
			return true
		}
	}
	return false
}
