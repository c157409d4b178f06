package domain

import "time"

// SheetBundle is one tab's raw rectangular cell grid, prior to
// normalisation. Rows may be ragged; absent cells are nil. A bundle is
// owned by a single ingestion task and consumed once.
type SheetBundle struct {
	// SheetTitle is the tab's display title.
	SheetTitle string

	// Rows holds the raw cell values. Hosted sheets yield unformatted
	// values (numbers as float64, text as string); local decodes yield
	// strings.
	Rows [][]any
}

// Provenance records where a normalised holding came from.
// It travels with every record produced from one sheet.
type Provenance struct {
	// FileID is the source file's remote identifier.
	FileID string

	// FileName is the source file's display name.
	FileName string

	// SheetTitle is the tab the record was extracted from.
	SheetTitle string

	// ModifiedAt is the source file's last modification time. It is the
	// report-date fallback when the banner carries no parseable date.
	ModifiedAt time.Time

	// Origin names the drive provider, e.g. "google_drive".
	Origin string
}
