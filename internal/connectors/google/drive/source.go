package drive

import (
	"context"
	"io"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/sheets/v4"

	"github.com/fundlens/fundlens/internal/connectors/google"
)

// apiClient is the capability surface consumed from Google: paginated
// folder listing, spreadsheet metadata, bounded range reads and byte
// downloads. Narrow so tests can substitute a fake.
type apiClient interface {
	listChildren(ctx context.Context, folderID, pageToken string) (*drive.FileList, error)
	spreadsheetMeta(ctx context.Context, fileID string) (*sheets.Spreadsheet, error)
	readValues(ctx context.Context, fileID, readRange string) ([][]any, error)
	download(ctx context.Context, fileID string, dst io.Writer) error
}

// Source enumerates and fetches spreadsheet files from Google Drive.
// It implements the driven.FileSource port.
type Source struct {
	api apiClient
	cfg Config
}

// New creates a drive source over already-authorised Drive and Sheets
// services.
func New(driveSvc *drive.Service, sheetsSvc *sheets.Service, cfg Config) *Source {
	return &Source{
		api: &client{
			drive:         driveSvc,
			sheets:        sheetsSvc,
			pageSize:      cfg.withDefaults().PageSize,
			driveLimiter:  google.NewRateLimiter(google.ServiceDrive),
			sheetsLimiter: google.NewRateLimiter(google.ServiceSheets),
		},
		cfg: cfg.withDefaults(),
	}
}
