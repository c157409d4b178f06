package decode

import (
	"github.com/xuri/excelize/v2"

	"github.com/fundlens/fundlens/internal/core/domain"
	"github.com/fundlens/fundlens/internal/logger"
)

// Excel decodes an OOXML .xlsx workbook into one bundle per sheet.
// Sheets that fail to read are skipped; a workbook that fails to open
// yields nil.
func Excel(path string) []domain.SheetBundle {
	f, err := excelize.OpenFile(path)
	if err != nil {
		logger.Warn("decode: open workbook %s: %v", path, err)
		return nil
	}
	defer f.Close()

	var bundles []domain.SheetBundle
	for _, sheetName := range f.GetSheetList() {
		rows, err := f.GetRows(sheetName)
		if err != nil {
			logger.Warn("decode: read sheet %q in %s: %v", sheetName, path, err)
			continue
		}
		if len(rows) == 0 {
			continue
		}
		bundles = append(bundles, domain.SheetBundle{
			SheetTitle: sheetName,
			Rows:       toCells(rows),
		})
	}
	return bundles
}

// toCells widens string grids to the bundle's cell shape.
func toCells(rows [][]string) [][]any {
	out := make([][]any, len(rows))
	for i, row := range rows {
		cells := make([]any, len(row))
		for j, v := range row {
			cells[j] = v
		}
		out[i] = cells
	}
	return out
}
