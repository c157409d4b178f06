package drive

import (
	"context"
	"io"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/sheets/v4"

	"github.com/fundlens/fundlens/internal/core/domain"
)

// fakeAPI implements apiClient in memory.
type fakeAPI struct {
	mu sync.Mutex

	pages   map[string][]*drive.FileList // folder id -> ordered result pages
	listErr map[string]error

	meta    *sheets.Spreadsheet
	metaErr error

	values    map[string][][]any // read range -> grid
	valuesErr error
	gotRanges []string

	payload     []byte
	downloadErr error
	downloads   int
}

func (f *fakeAPI) listChildren(_ context.Context, folderID, pageToken string) (*drive.FileList, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.listErr[folderID]; err != nil {
		return nil, err
	}
	idx := 0
	if pageToken != "" {
		idx, _ = strconv.Atoi(pageToken)
	}
	pages := f.pages[folderID]
	if idx >= len(pages) {
		return &drive.FileList{}, nil
	}
	return pages[idx], nil
}

func (f *fakeAPI) spreadsheetMeta(context.Context, string) (*sheets.Spreadsheet, error) {
	return f.meta, f.metaErr
}

func (f *fakeAPI) readValues(_ context.Context, _ string, readRange string) ([][]any, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.valuesErr != nil {
		return nil, f.valuesErr
	}
	f.gotRanges = append(f.gotRanges, readRange)
	return f.values[readRange], nil
}

func (f *fakeAPI) download(_ context.Context, _ string, dst io.Writer) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.downloads++
	if f.downloadErr != nil {
		return f.downloadErr
	}
	_, err := dst.Write(f.payload)
	return err
}

// pagesOf chains file batches into paginated FileLists.
func pagesOf(batches ...[]*drive.File) []*drive.FileList {
	out := make([]*drive.FileList, len(batches))
	for i, fs := range batches {
		fl := &drive.FileList{Files: fs}
		if i < len(batches)-1 {
			fl.NextPageToken = strconv.Itoa(i + 1)
		}
		out[i] = fl
	}
	return out
}

func newTestSource(api apiClient, cfg Config) *Source {
	return &Source{api: api, cfg: cfg.withDefaults()}
}

func TestListFiles_WalksTreeWithPagination(t *testing.T) {
	api := &fakeAPI{
		pages: map[string][]*drive.FileList{
			"root": pagesOf(
				[]*drive.File{
					{Id: "g1", Name: "hosted", MimeType: domain.MimeTypeHostedSheet, ModifiedTime: "2025-08-20T10:00:00Z"},
					{Id: "sub", Name: "2025", MimeType: domain.MimeTypeFolder},
				},
				[]*drive.File{
					{Id: "x1", Name: "monthly.xlsx", MimeType: domain.MimeTypeXLSX, ModifiedTime: "2025-08-21T10:00:00Z"},
					{Id: "n1", Name: "notes.txt", MimeType: "text/plain", ModifiedTime: "2025-08-21T10:00:00Z"},
				},
			),
			"sub": pagesOf([]*drive.File{
				{Id: "c1", Name: "fortnight.csv", MimeType: domain.MimeTypeCSV, ModifiedTime: "2025-08-22T10:00:00Z"},
				// Cycle back to the root; the visited set must absorb it.
				{Id: "root", Name: "parent", MimeType: domain.MimeTypeFolder},
			}),
		},
	}
	src := newTestSource(api, Config{RootFolderID: "root"})

	files, err := src.ListFiles(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, files, 3)

	ids := []string{files[0].ID, files[1].ID, files[2].ID}
	assert.Equal(t, []string{"g1", "x1", "c1"}, ids)
	assert.Equal(t, "sub", files[2].ParentFolderID)
	assert.Equal(t, domain.KindCSV, files[2].Kind())
}

func TestListFiles_SinceFilterIsStrict(t *testing.T) {
	api := &fakeAPI{
		pages: map[string][]*drive.FileList{
			"root": pagesOf([]*drive.File{
				{Id: "old", Name: "old.csv", MimeType: domain.MimeTypeCSV, ModifiedTime: "2025-08-01T00:00:00Z"},
				{Id: "new", Name: "new.csv", MimeType: domain.MimeTypeCSV, ModifiedTime: "2025-08-01T00:00:01Z"},
			}),
		},
	}
	src := newTestSource(api, Config{RootFolderID: "root"})

	files, err := src.ListFiles(context.Background(), "2025-08-01T00:00:00Z")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "new", files[0].ID)
}

func TestListFiles_BareDaySince(t *testing.T) {
	api := &fakeAPI{
		pages: map[string][]*drive.FileList{
			"root": pagesOf([]*drive.File{
				{Id: "f", Name: "f.csv", MimeType: domain.MimeTypeCSV, ModifiedTime: "2025-08-15T09:00:00Z"},
			}),
		},
	}
	src := newTestSource(api, Config{RootFolderID: "root"})

	files, err := src.ListFiles(context.Background(), "2025-08-15")
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestListFiles_BadSince(t *testing.T) {
	src := newTestSource(&fakeAPI{}, Config{RootFolderID: "root"})

	_, err := src.ListFiles(context.Background(), "last tuesday")
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestListFiles_SubtreeFailureReturnsPartial(t *testing.T) {
	api := &fakeAPI{
		pages: map[string][]*drive.FileList{
			"root": pagesOf([]*drive.File{
				{Id: "bad", Name: "broken", MimeType: domain.MimeTypeFolder},
				{Id: "ok", Name: "ok.csv", MimeType: domain.MimeTypeCSV, ModifiedTime: "2025-08-20T10:00:00Z"},
			}),
		},
		listErr: map[string]error{"bad": assert.AnError},
	}
	src := newTestSource(api, Config{RootFolderID: "root"})

	files, err := src.ListFiles(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrEnumeration)
	require.Len(t, files, 1)
	assert.Equal(t, "ok", files[0].ID)
}

func TestListFiles_RootFailure(t *testing.T) {
	api := &fakeAPI{listErr: map[string]error{"root": assert.AnError}}
	src := newTestSource(api, Config{RootFolderID: "root"})

	files, err := src.ListFiles(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrEnumeration)
	assert.Empty(t, files)
}
