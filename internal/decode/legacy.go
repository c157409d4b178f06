package decode

import (
	"fmt"

	"github.com/shakinm/xlsReader/xls"

	"github.com/fundlens/fundlens/internal/core/domain"
	"github.com/fundlens/fundlens/internal/logger"
)

// LegacyExcel decodes a pre-OOXML .xls workbook (OLE2 container, BIFF
// records) into one bundle per sheet. Sheets that fail to read are
// skipped; a workbook that fails to open yields nil.
func LegacyExcel(path string) []domain.SheetBundle {
	wb, err := xls.OpenFile(path)
	if err != nil {
		logger.Warn("decode: open legacy workbook %s: %v", path, err)
		return nil
	}

	var bundles []domain.SheetBundle
	for i := 0; i < wb.GetNumberSheets(); i++ {
		sh, err := wb.GetSheet(i)
		if err != nil || sh == nil {
			logger.Warn("decode: read sheet %d in %s: %v", i, path, err)
			continue
		}

		var rows [][]any
		for r := 0; r <= sh.GetNumberRows(); r++ {
			row, err := sh.GetRow(r)
			if err != nil || row == nil {
				continue
			}
			cols := row.GetCols()
			cells := make([]any, len(cols))
			for c, cell := range cols {
				cells[c] = cell.GetString()
			}
			rows = append(rows, cells)
		}
		if len(rows) == 0 {
			continue
		}

		title := sh.GetName()
		if title == "" {
			title = fmt.Sprintf("Sheet%d", i+1)
		}
		bundles = append(bundles, domain.SheetBundle{
			SheetTitle: title,
			Rows:       rows,
		})
	}
	return bundles
}
