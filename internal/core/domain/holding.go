package domain

import "time"

// Holding is the persisted unit: one normalised per-holding record
// extracted from a portfolio statement sheet.
//
// Nullable text fields use the empty string; nullable numerics use nil
// pointers so that "no value" survives the round trip to the store.
type Holding struct {
	// Semantic fields.
	InstrumentName  string
	ISIN            string
	Rating          string
	Quantity        *float64
	MarketValueLacs *float64
	PctToNAV        *float64
	YTM             *float64
	Issuer          string
	SchemeName      string

	// ReportDate is the banner's date text as displayed.
	ReportDate string

	// ReportDateISO is the parsed YYYY-MM-DD form, or empty when no
	// pattern matched and no modification-time fallback was available.
	ReportDateISO string

	// Provenance fields.
	SourceFileID     string
	SourceFileName   string
	SheetTitle       string
	RowIndex         int
	SourceModifiedAt time.Time
	SourceOrigin     string
}

// BusinessKey is the tuple that decides whether two holdings are the
// same real-world fact. Records sharing a key overwrite, never duplicate.
type BusinessKey struct {
	SchemeName     string
	ReportDate     string
	ISIN           string
	InstrumentName string
	SourceFileID   string
	SheetTitle     string
}

// Key returns the holding's business key.
func (h Holding) Key() BusinessKey {
	return BusinessKey{
		SchemeName:     h.SchemeName,
		ReportDate:     h.ReportDate,
		ISIN:           h.ISIN,
		InstrumentName: h.InstrumentName,
		SourceFileID:   h.SourceFileID,
		SheetTitle:     h.SheetTitle,
	}
}

// Identified reports whether the holding carries enough identity to be
// retained: at least one of instrument name and ISIN must be non-empty.
func (h Holding) Identified() bool {
	return h.InstrumentName != "" || h.ISIN != ""
}
