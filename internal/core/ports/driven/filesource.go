package driven

import (
	"context"

	"github.com/fundlens/fundlens/internal/core/domain"
)

// FileSource is the remote-drive collaborator. It enumerates
// spreadsheet-like files and retrieves their raw sheet grids.
type FileSource interface {
	// ListFiles returns the spreadsheet-like files transitively
	// reachable under the configured root folder, excluding trashed
	// items, restricted to files modified strictly after sinceISO
	// (RFC 3339) when non-empty.
	//
	// A subtree listing failure returns the partial result together
	// with an error wrapping domain.ErrEnumeration; a failure on the
	// root folder returns no files.
	ListFiles(ctx context.Context, sinceISO string) ([]domain.SpreadsheetFile, error)

	// FetchBundles retrieves one bundle per tab of the given file.
	// Files of unsupported kind return domain.ErrUnsupportedKind.
	// Undecodable content yields zero bundles and no error, so one
	// corrupt file cannot abort a run.
	FetchBundles(ctx context.Context, file domain.SpreadsheetFile) ([]domain.SheetBundle, error)
}
