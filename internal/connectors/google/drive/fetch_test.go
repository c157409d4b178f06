package drive

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/sheets/v4"

	"github.com/fundlens/fundlens/internal/core/domain"
)

func hostedFile() domain.SpreadsheetFile {
	return domain.SpreadsheetFile{ID: "sheet1", Name: "holdings", MIMEType: domain.MimeTypeHostedSheet}
}

func csvFile() domain.SpreadsheetFile {
	return domain.SpreadsheetFile{ID: "f1", Name: "july holdings.csv", MIMEType: domain.MimeTypeCSV}
}

func TestFetchBundles_Hosted(t *testing.T) {
	api := &fakeAPI{
		meta: &sheets.Spreadsheet{Sheets: []*sheets.Sheet{
			{Properties: &sheets.SheetProperties{
				Title:          "Holdings",
				GridProperties: &sheets.GridProperties{RowCount: 100000, ColumnCount: 500},
			}},
			{Properties: &sheets.SheetProperties{
				Title:          "Ko's Tab",
				GridProperties: &sheets.GridProperties{RowCount: 10, ColumnCount: 3},
			}},
		}},
		values: map[string][][]any{
			"'Holdings'!A1:GR50000": {{"ISIN", "Name"}, {"IN000", "Thing"}},
			"'Ko''s Tab'!A1:C10":    {{"x"}},
		},
	}
	src := newTestSource(api, Config{RootFolderID: "root"})

	bundles, err := src.FetchBundles(context.Background(), hostedFile())
	require.NoError(t, err)
	require.Len(t, bundles, 2)

	// Extents are capped at 50000x200.
	assert.Equal(t, []string{"'Holdings'!A1:GR50000", "'Ko''s Tab'!A1:C10"}, api.gotRanges)
	assert.Equal(t, "Holdings", bundles[0].SheetTitle)
	require.Len(t, bundles[0].Rows, 2)
	assert.Equal(t, "IN000", bundles[0].Rows[1][0])
	assert.Equal(t, "Ko's Tab", bundles[1].SheetTitle)
}

func TestFetchBundles_HostedDefaultExtents(t *testing.T) {
	api := &fakeAPI{
		meta: &sheets.Spreadsheet{Sheets: []*sheets.Sheet{
			{Properties: &sheets.SheetProperties{Title: "Tab"}},
		}},
	}
	src := newTestSource(api, Config{RootFolderID: "root"})

	_, err := src.FetchBundles(context.Background(), hostedFile())
	require.NoError(t, err)
	assert.Equal(t, []string{"'Tab'!A1:Z1000"}, api.gotRanges)
}

func TestFetchBundles_HostedMetaError(t *testing.T) {
	src := newTestSource(&fakeAPI{metaErr: assert.AnError}, Config{RootFolderID: "root"})

	_, err := src.FetchBundles(context.Background(), hostedFile())
	assert.ErrorIs(t, err, assert.AnError)
}

func TestFetchBundles_Unsupported(t *testing.T) {
	src := newTestSource(&fakeAPI{}, Config{RootFolderID: "root"})

	_, err := src.FetchBundles(context.Background(), domain.SpreadsheetFile{
		ID: "p1", Name: "scan.pdf", MIMEType: "application/pdf",
	})
	assert.ErrorIs(t, err, domain.ErrUnsupportedKind)
}

func TestFetchBundles_BinaryCSV(t *testing.T) {
	dir := t.TempDir()
	api := &fakeAPI{payload: []byte("ISIN,Name\nIN000,Thing\n")}
	src := newTestSource(api, Config{RootFolderID: "root", ScratchDir: dir})

	bundles, err := src.FetchBundles(context.Background(), csvFile())
	require.NoError(t, err)
	require.Len(t, bundles, 1)
	assert.Equal(t, "CSV", bundles[0].SheetTitle)
	assert.Len(t, bundles[0].Rows, 2)
	assert.Equal(t, 1, api.downloads)

	// Scratch file removed after decoding.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFetchBundles_EmptyDecodeRedownloadsOnce(t *testing.T) {
	dir := t.TempDir()
	api := &fakeAPI{payload: nil} // empty body decodes to nothing
	src := newTestSource(api, Config{RootFolderID: "root", ScratchDir: dir})

	bundles, err := src.FetchBundles(context.Background(), csvFile())
	require.NoError(t, err)
	assert.Empty(t, bundles)
	assert.Equal(t, 2, api.downloads)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFetchBundles_DownloadErrorCleansUp(t *testing.T) {
	dir := t.TempDir()
	api := &fakeAPI{downloadErr: assert.AnError}
	src := newTestSource(api, Config{RootFolderID: "root", ScratchDir: dir})

	_, err := src.FetchBundles(context.Background(), csvFile())
	assert.ErrorIs(t, err, assert.AnError)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestScratchPath(t *testing.T) {
	src := newTestSource(&fakeAPI{}, Config{RootFolderID: "root", ScratchDir: "/scratch"})

	path := src.scratchPath(csvFile())
	assert.Equal(t, "/scratch", filepath.Dir(path))
	assert.Regexp(t, regexp.MustCompile(`^drive_f1_\d+_july_holdings_csv$`), filepath.Base(path))
}

func TestToA1(t *testing.T) {
	cases := map[int]string{1: "A", 26: "Z", 27: "AA", 52: "AZ", 53: "BA", 200: "GR"}
	for n, want := range cases {
		assert.Equal(t, want, toA1(n), "toA1(%d)", n)
	}
}
