package normalise

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// bannerScanRows bounds how deep into the sheet the banner search goes.
const bannerScanRows = 15

var (
	// asOnRe matches "as on <date text>" / "as of: <date text>" lines,
	// with the date taken as the trailing text.
	asOnRe = regexp.MustCompile(`(?i)\b(as on|as of)\b\s*[:\-]?\s*(.+)$`)

	// fundNameRe captures a fund-name-like run ending in "fund".
	fundNameRe = regexp.MustCompile(`(?i)([A-Za-z0-9 .&()\-]+fund)\b`)

	// bannerLabelRe matches boilerplate banner lines that are never a
	// scheme name on their own.
	bannerLabelRe = regexp.MustCompile(`(?i)portfolio|statement|fortnightly|monthly`)

	// genericSchemeRe matches scheme candidates too generic to keep.
	genericSchemeRe = regexp.MustCompile(`(?i)^index`)

	leadingPunctRe = regexp.MustCompile(`^\s*[:\-]\s*`)
)

// banner holds the metadata extracted from the free-text lines above
// the tabular header.
type banner struct {
	// reportDate is the raw date text as it appears in the banner.
	reportDate string

	// schemeName is the scheme/fund name candidate, already fallen back
	// to a filename derivation when the banner gave nothing usable.
	schemeName string
}

// extractBanner scans the top rows for a report date and scheme name.
func extractBanner(rows [][]any, fileName string) banner {
	limit := len(rows)
	if limit > bannerScanRows {
		limit = bannerScanRows
	}
	top := make([]string, limit)
	for i := 0; i < limit; i++ {
		top[i] = rowText(rows[i])
	}

	var date, scheme string

	// A) An "as on/as of" line carries the date; the scheme usually sits
	// within a few lines of it.
	for i, line := range top {
		m := asOnRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		date = strings.TrimSpace(leadingPunctRe.ReplaceAllString(m[2], ""))

		for j := i - 2; j <= i+4; j++ {
			if j < 0 || j >= len(top) || top[j] == "" {
				continue
			}
			if mf := fundNameRe.FindStringSubmatch(top[j]); mf != nil {
				scheme = collapseSpaces(mf[1])
				break
			}
		}
		if scheme == "" {
			for j := i + 1; j < len(top); j++ {
				if top[j] != "" && !bannerLabelRe.MatchString(top[j]) {
					scheme = top[j]
					break
				}
			}
		}
		break
	}

	// B) No "as on" line: any banner line ending in a fund-like token.
	if scheme == "" {
		for _, line := range top {
			if mf := fundNameRe.FindStringSubmatch(line); mf != nil {
				scheme = collapseSpaces(mf[1])
				break
			}
		}
	}

	// C) First non-empty line that is not banner boilerplate.
	if scheme == "" {
		for _, line := range top {
			if line != "" && !bannerLabelRe.MatchString(line) {
				scheme = line
				break
			}
		}
	}

	if scheme == "" || genericSchemeRe.MatchString(scheme) || strings.EqualFold(scheme, "n/a") {
		scheme = schemeFromFileName(fileName)
	}

	// The date may live on a line of its own, without an "as on" label.
	if date == "" {
		for _, line := range top {
			if line != "" && ParseDate(line) != "" {
				date = line
				break
			}
		}
	}

	return banner{reportDate: date, schemeName: scheme}
}

var (
	extensionRe   = regexp.MustCompile(`(?i)\.(xlsx?|csv)$`)
	hexPrefixRe   = regexp.MustCompile(`(?i)^[0-9a-f]{6,}-`)
	separatorRe   = regexp.MustCompile(`[-_]+`)
	trailingDayRe = regexp.MustCompile(`(?i)\b\d{1,2}\s?[a-z]{3,}\s?\d{2,4}\b`)
	trailingIsoRe = regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`)
)

// schemeFromFileName derives a readable scheme name from the file name:
// strip the extension and any leading hash-like id, turn separators into
// spaces, drop trailing date tokens and title-case the remainder.
func schemeFromFileName(fileName string) string {
	if fileName == "" {
		return ""
	}
	base := extensionRe.ReplaceAllString(fileName, "")
	base = hexPrefixRe.ReplaceAllString(base, "")
	// ISO tokens go first: their dashes would otherwise be eaten by the
	// separator replacement below.
	base = trailingIsoRe.ReplaceAllString(base, "")
	base = separatorRe.ReplaceAllString(base, " ")
	base = trailingDayRe.ReplaceAllString(base, "")
	return titleCase(collapseSpaces(base))
}

func collapseSpaces(s string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		// First rune, not first byte: file names are not ASCII-only.
		first, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(first)) + strings.ToLower(w[size:])
	}
	return strings.Join(words, " ")
}
