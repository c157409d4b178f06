package normalise

import (
	"strings"

	"github.com/fundlens/fundlens/internal/core/domain"
)

// Normalise transforms one sheet's raw grid into holding records.
// Output order is row order; no cross-row aggregation. Malformed input
// never raises - the worst case is an empty slice.
func Normalise(rows [][]any, prov domain.Provenance) []domain.Holding {
	if len(rows) == 0 {
		return nil
	}

	b := extractBanner(rows, prov.FileName)

	iso := ParseDate(b.reportDate)
	if iso == "" && !prov.ModifiedAt.IsZero() {
		// Unparseable banner date: fall back to the source file's
		// modification day.
		iso = prov.ModifiedAt.UTC().Format(isoDay)
	}
	reportDate := b.reportDate
	if reportDate == "" {
		reportDate = iso
	}

	headerIdx := findHeaderRow(rows)
	colMap := buildColumnMap(rows[headerIdx])

	var out []domain.Holding
	for r := headerIdx + 1; r < len(rows); r++ {
		row := rows[r]
		if rowBlank(row) {
			continue
		}

		var first any
		if len(row) > 0 {
			first = row[0]
		}
		if isSectionOrTotal(first) {
			if isStrictTotal(first) {
				// Everything after a grand total is assumed
				// non-tabular; stop the sheet here.
				break
			}
			continue
		}

		h := domain.Holding{
			SchemeName:       b.schemeName,
			ReportDate:       reportDate,
			ReportDateISO:    iso,
			SourceFileID:     prov.FileID,
			SourceFileName:   prov.FileName,
			SheetTitle:       prov.SheetTitle,
			RowIndex:         r - headerIdx,
			SourceModifiedAt: prov.ModifiedAt,
			SourceOrigin:     prov.Origin,
		}

		for idx, f := range colMap {
			if idx >= len(row) {
				continue
			}
			val := row[idx]
			switch f {
			case fieldInstrumentName:
				h.InstrumentName = strings.TrimSpace(cellString(val))
			case fieldISIN:
				h.ISIN = strings.TrimSpace(cellString(val))
			case fieldRating:
				h.Rating = strings.TrimSpace(cellString(val))
			case fieldQuantity:
				h.Quantity = ParseNumber(val)
			case fieldMarketValue:
				h.MarketValueLacs = ParseNumber(val)
			case fieldPctToNAV:
				h.PctToNAV = ParseNumber(val)
			case fieldYTM:
				h.YTM = ParseNumber(val)
			}
		}

		if !h.Identified() {
			continue
		}
		if isSectionOrTotal(h.InstrumentName) {
			continue
		}

		h.Issuer = InferIssuer(h.InstrumentName)
		out = append(out, h)
	}

	return out
}
