package drive

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/fundlens/fundlens/internal/core/domain"
	"github.com/fundlens/fundlens/internal/decode"
	"github.com/fundlens/fundlens/internal/logger"
)

// Range bounds for hosted-sheet reads. Pathological sheets report
// grids far beyond their populated region; the cap keeps one tab from
// exhausting memory.
const (
	maxReadRows = 50000
	maxReadCols = 200

	defaultGridRows = 1000
	defaultGridCols = 26
)

// FetchBundles retrieves one bundle per tab of the given file.
func (s *Source) FetchBundles(ctx context.Context, file domain.SpreadsheetFile) ([]domain.SheetBundle, error) {
	switch file.Kind() {
	case domain.KindHostedSheet:
		return s.fetchHosted(ctx, file)
	case domain.KindExcel, domain.KindLegacyExcel, domain.KindCSV:
		return s.fetchBinary(ctx, file)
	default:
		return nil, fmt.Errorf("%w: %s (%s)", domain.ErrUnsupportedKind, file.Name, file.MIMEType)
	}
}

// fetchHosted reads a hosted spreadsheet tab-by-tab: metadata for tab
// titles and grid extents, then one bounded values read per tab.
func (s *Source) fetchHosted(ctx context.Context, file domain.SpreadsheetFile) ([]domain.SheetBundle, error) {
	meta, err := s.api.spreadsheetMeta(ctx, file.ID)
	if err != nil {
		return nil, fmt.Errorf("spreadsheet metadata for %s: %w", file.ID, err)
	}

	var bundles []domain.SheetBundle
	for _, sh := range meta.Sheets {
		if sh.Properties == nil {
			continue
		}

		title := sh.Properties.Title
		if title == "" {
			title = "Sheet1"
		}

		rows, cols := int64(defaultGridRows), int64(defaultGridCols)
		if gp := sh.Properties.GridProperties; gp != nil {
			if gp.RowCount > 0 {
				rows = gp.RowCount
			}
			if gp.ColumnCount > 0 {
				cols = gp.ColumnCount
			}
		}
		rows = min(rows, maxReadRows)
		cols = min(cols, maxReadCols)

		readRange := fmt.Sprintf("'%s'!A1:%s%d", escapeTitle(title), toA1(int(cols)), rows)
		values, err := s.api.readValues(ctx, file.ID, readRange)
		if err != nil {
			return nil, fmt.Errorf("read %s of %s: %w", readRange, file.ID, err)
		}

		bundles = append(bundles, domain.SheetBundle{SheetTitle: title, Rows: values})
	}
	return bundles, nil
}

// fetchBinary downloads the file to a scratch path and decodes it. An
// empty decode triggers exactly one re-download, which catches a
// partial or interrupted stream before accepting the file as empty.
func (s *Source) fetchBinary(ctx context.Context, file domain.SpreadsheetFile) ([]domain.SheetBundle, error) {
	bundles, err := s.downloadAndDecode(ctx, file)
	if err != nil {
		return nil, err
	}
	if len(bundles) > 0 {
		return bundles, nil
	}

	logger.Debug("drive: empty decode for %s (%s), re-downloading once", file.ID, file.Name)
	return s.downloadAndDecode(ctx, file)
}

func (s *Source) downloadAndDecode(ctx context.Context, file domain.SpreadsheetFile) ([]domain.SheetBundle, error) {
	path, err := s.downloadToScratch(ctx, file)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", file.ID, err)
	}
	defer os.Remove(path)

	return decode.File(path, file.Kind()), nil
}

var nonWordRe = regexp.MustCompile(`\W+`)

// scratchPath builds the per-download file name
// <prefix>_<fileId>_<timestamp>_<sanitizedName>. The timestamp keeps
// concurrent downloads from colliding.
func (s *Source) scratchPath(file domain.SpreadsheetFile) string {
	safe := nonWordRe.ReplaceAllString(file.Name, "_")
	name := fmt.Sprintf("%s_%s_%d_%s", s.cfg.ScratchPrefix, file.ID, time.Now().UnixMilli(), safe)
	return filepath.Join(s.cfg.ScratchDir, name)
}

// downloadToScratch streams the file body to a scratch file. On any
// failure the scratch is removed before returning.
func (s *Source) downloadToScratch(ctx context.Context, file domain.SpreadsheetFile) (string, error) {
	path := s.scratchPath(file)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create scratch file: %w", err)
	}

	if err := s.api.download(ctx, file.ID, f); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("close scratch file: %w", err)
	}
	return path, nil
}

// escapeTitle doubles single quotes for use inside a quoted A1 sheet
// reference.
func escapeTitle(title string) string {
	return strings.ReplaceAll(title, "'", "''")
}

// toA1 converts a 1-based column count to its A1 column letters.
func toA1(n int) string {
	var s []byte
	for n > 0 {
		m := (n - 1) % 26
		s = append([]byte{byte('A' + m)}, s...)
		n = (n - 1) / 26
	}
	return string(s)
}
