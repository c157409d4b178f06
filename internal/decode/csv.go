package decode

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io"
	"os"

	"github.com/fundlens/fundlens/internal/core/domain"
	"github.com/fundlens/fundlens/internal/logger"
)

// utf8BOM is stripped before parsing; exports from spreadsheet tools
// routinely carry it.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSV decodes a comma-separated file into a single bundle. Ragged rows
// are allowed; rows that fail to parse are skipped. An unreadable file
// yields nil.
func CSV(path string) []domain.SheetBundle {
	f, err := os.Open(path)
	if err != nil {
		logger.Warn("decode: open csv %s: %v", path, err)
		return nil
	}
	defer f.Close()

	br := bufio.NewReader(f)
	if peeked, err := br.Peek(len(utf8BOM)); err == nil && string(peeked) == string(utf8BOM) {
		br.Discard(len(utf8BOM))
	}

	r := csv.NewReader(br)
	r.FieldsPerRecord = -1 // ragged rows allowed
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	var rows [][]any
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			logger.Debug("decode: csv row in %s: %v", path, err)
			continue
		}
		cells := make([]any, len(record))
		for i, v := range record {
			cells[i] = v
		}
		rows = append(rows, cells)
	}

	if len(rows) == 0 {
		return nil
	}
	return []domain.SheetBundle{{SheetTitle: "CSV", Rows: rows}}
}
