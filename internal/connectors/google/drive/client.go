package drive

import (
	"context"
	"fmt"
	"io"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/sheets/v4"

	"github.com/fundlens/fundlens/internal/connectors/google"
)

// client is the real apiClient over the Drive and Sheets services.
// Every call waits on the owning service's rate limiter first.
type client struct {
	drive         *drive.Service
	sheets        *sheets.Service
	pageSize      int64
	driveLimiter  *google.RateLimiter
	sheetsLimiter *google.RateLimiter
}

func (c *client) listChildren(ctx context.Context, folderID, pageToken string) (*drive.FileList, error) {
	if err := c.driveLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	call := c.drive.Files.List().
		Q(fmt.Sprintf("'%s' in parents and trashed = false", folderID)).
		Spaces("drive").
		Fields("nextPageToken, files(id, name, mimeType, modifiedTime, parents)").
		PageSize(c.pageSize).
		SupportsAllDrives(true).
		IncludeItemsFromAllDrives(true).
		Context(ctx)
	if pageToken != "" {
		call.PageToken(pageToken)
	}

	list, err := call.Do()
	if err != nil {
		return nil, note(c.driveLimiter, err)
	}
	return list, nil
}

func (c *client) spreadsheetMeta(ctx context.Context, fileID string) (*sheets.Spreadsheet, error) {
	if err := c.sheetsLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	meta, err := c.sheets.Spreadsheets.Get(fileID).
		Fields("sheets(properties(title,gridProperties(rowCount,columnCount)))").
		Context(ctx).Do()
	if err != nil {
		return nil, note(c.sheetsLimiter, err)
	}
	return meta, nil
}

func (c *client) readValues(ctx context.Context, fileID, readRange string) ([][]any, error) {
	if err := c.sheetsLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	resp, err := c.sheets.Spreadsheets.Values.Get(fileID, readRange).
		MajorDimension("ROWS").
		ValueRenderOption("UNFORMATTED_VALUE").
		Context(ctx).Do()
	if err != nil {
		return nil, note(c.sheetsLimiter, err)
	}
	return resp.Values, nil
}

func (c *client) download(ctx context.Context, fileID string, dst io.Writer) error {
	if err := c.driveLimiter.Wait(ctx); err != nil {
		return err
	}

	resp, err := c.drive.Files.Get(fileID).
		SupportsAllDrives(true).
		Context(ctx).
		Download()
	if err != nil {
		return note(c.driveLimiter, err)
	}
	defer resp.Body.Close()

	if _, err := io.Copy(dst, resp.Body); err != nil {
		return fmt.Errorf("stream file body: %w", err)
	}
	return nil
}

// note records 429 backoff on the limiter before mapping the error.
func note(l *google.RateLimiter, err error) error {
	if google.IsRateLimited(err) {
		l.RecordRateLimitError(0)
	}
	return google.WrapError(err)
}
