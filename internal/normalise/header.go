package normalise

import (
	"regexp"
	"strings"
)

// headerScanRows bounds the header search.
const headerScanRows = 80

// field identifies a canonical holding column.
type field int

const (
	fieldNone field = iota
	fieldInstrumentName
	fieldISIN
	fieldRating
	fieldQuantity
	fieldMarketValue
	fieldPctToNAV
	fieldYTM
)

// fieldSynonyms maps normalised header spellings to canonical fields.
// Evaluated in order so exact matching stays deterministic.
var fieldSynonyms = []struct {
	field field
	names []string
}{
	{fieldInstrumentName, []string{
		"name of the instrument", "name of instrument", "instrument",
		"security name", "name", "security",
	}},
	{fieldISIN, []string{"isin", "i s i n"}},
	{fieldRating, []string{
		"industry / rating", "industry/rating", "industry rating", "rating",
		"industry", "credit rating", "credit/ rating",
	}},
	{fieldQuantity, []string{"quantity", "qty", "units", "no. of units", "no of units"}},
	{fieldMarketValue, []string{
		"market/fair value ( rs. in lakhs)", "market/ fair value ( rs. in lakhs)",
		"market/fair value ( rs. in lacs)", "market value (rs. in lakhs)",
		"market value (rs. in lacs)", "market/fair value", "market value",
		"fair value", "market / fair value",
	}},
	{fieldPctToNAV, []string{
		"% to nav", "% to net assets", "% to net asset", "% to nav.",
		"percent to nav", "pct to nav", "percentage to nav", "% to total assets",
	}},
	{fieldYTM, []string{"ytm", "yield", "yield to maturity", "yield%", "ytm~", "coupon / ytm"}},
}

// fieldFallbacks are permissive heuristics applied to headers that miss
// every exact synonym, in priority order.
var fieldFallbacks = []struct {
	re    *regexp.Regexp
	field field
}{
	{regexp.MustCompile(`isin`), fieldISIN},
	{regexp.MustCompile(`instrument|security`), fieldInstrumentName},
	{regexp.MustCompile(`%\s*to\s*(nav|net assets)`), fieldPctToNAV},
	{regexp.MustCompile(`yield|ytm`), fieldYTM},
	{regexp.MustCompile(`\bqty\b|\bquantity\b|\bunits?\b`), fieldQuantity},
	{regexp.MustCompile(`market.*value|fair.*value`), fieldMarketValue},
	{regexp.MustCompile(`\brating\b|\bindustry\b`), fieldRating},
}

// Header signal tokens. A row is the header when at least two hit.
var headerSignals = []*regexp.Regexp{
	regexp.MustCompile(`\binstrument\b|\bsecurity\b`),
	regexp.MustCompile(`\bisin\b`),
	regexp.MustCompile(`%\s*to\s*(nav|net assets)`),
	regexp.MustCompile(`\bytm\b|\byield\b`),
}

// findHeaderRow scans the first rows for the column header. The first
// row matching at least two signal tokens wins; row 0 is the last-resort
// fallback so extraction degrades instead of failing.
func findHeaderRow(rows [][]any) int {
	limit := len(rows)
	if limit > headerScanRows {
		limit = headerScanRows
	}
	for i := 0; i < limit; i++ {
		cells := make([]string, 0, len(rows[i]))
		for _, c := range rows[i] {
			cells = append(cells, norm(c))
		}
		joined := strings.Join(cells, " | ")

		hits := 0
		for _, sig := range headerSignals {
			if sig.MatchString(joined) {
				hits++
			}
		}
		if hits >= 2 {
			return i
		}
	}
	return 0
}

// buildColumnMap maps column indexes to canonical fields, built once per
// sheet. Unmatched headers are left unmapped.
func buildColumnMap(header []any) map[int]field {
	m := make(map[int]field)

	for i, h := range header {
		n := norm(h)
		if n == "" {
			continue
		}

		mapped := fieldNone
		for _, syn := range fieldSynonyms {
			for _, name := range syn.names {
				if n == name {
					mapped = syn.field
					break
				}
			}
			if mapped != fieldNone {
				break
			}
		}
		if mapped == fieldNone {
			for _, fb := range fieldFallbacks {
				if fb.re.MatchString(n) {
					mapped = fb.field
					break
				}
			}
		}
		if mapped != fieldNone {
			m[i] = mapped
		}
	}
	return m
}
