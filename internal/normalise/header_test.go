package normalise

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindHeaderRow_AfterBannerRows(t *testing.T) {
	// Ten banner/blank rows before the header must not defeat detection.
	rows := make([][]any, 0, 12)
	rows = append(rows, []any{"Portfolio Statement as on August 15, 2025"})
	for i := 0; i < 9; i++ {
		rows = append(rows, []any{})
	}
	rows = append(rows, []any{"Name of the Instrument", "ISIN", "% to NAV"})
	rows = append(rows, []any{"7.26% GOI 2033", "IN0020220151", "4.5"})

	assert.Equal(t, 10, findHeaderRow(rows))
}

func TestFindHeaderRow_RequiresTwoSignals(t *testing.T) {
	rows := [][]any{
		{"Just the instrument column"}, // one signal only
		{"Security", "ISIN"},           // two signals
	}
	assert.Equal(t, 1, findHeaderRow(rows))
}

func TestFindHeaderRow_FallsBackToRowZero(t *testing.T) {
	rows := [][]any{
		{"nothing", "matches"},
		{"here", "either"},
	}
	assert.Equal(t, 0, findHeaderRow(rows))
}

func TestFindHeaderRow_ScanBound(t *testing.T) {
	// A header buried beyond the scan bound is not found.
	rows := make([][]any, 0, headerScanRows+2)
	for i := 0; i < headerScanRows; i++ {
		rows = append(rows, []any{"filler"})
	}
	rows = append(rows, []any{"Name of the Instrument", "ISIN", "% to NAV"})

	assert.Equal(t, 0, findHeaderRow(rows))
}

func TestBuildColumnMap_Synonyms(t *testing.T) {
	header := []any{
		"Name of the Instrument",
		"Industry / Rating",
		"ISIN",
		"Quantity",
		"Market/Fair Value ( Rs. in Lakhs)",
		"% to NAV",
		"YTM",
	}

	m := buildColumnMap(header)
	assert.Equal(t, map[int]field{
		0: fieldInstrumentName,
		1: fieldRating,
		2: fieldISIN,
		3: fieldQuantity,
		4: fieldMarketValue,
		5: fieldPctToNAV,
		6: fieldYTM,
	}, m)
}

func TestBuildColumnMap_RegexFallback(t *testing.T) {
	header := []any{
		"Instrument-wise break up", // no exact synonym
		"ISIN code",
		"Gross Yield ^",
		"% To Net Assets##",
		"No Of Units Held",
	}

	m := buildColumnMap(header)
	assert.Equal(t, fieldInstrumentName, m[0])
	assert.Equal(t, fieldISIN, m[1])
	assert.Equal(t, fieldYTM, m[2])
	assert.Equal(t, fieldPctToNAV, m[3])
	assert.Equal(t, fieldQuantity, m[4])
}

func TestBuildColumnMap_UnmappedLeftOut(t *testing.T) {
	m := buildColumnMap([]any{"Remarks", "", nil, "ISIN"})
	assert.Equal(t, map[int]field{3: fieldISIN}, m)
}
