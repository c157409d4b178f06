package drive

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/api/drive/v3"

	"github.com/fundlens/fundlens/internal/core/domain"
	"github.com/fundlens/fundlens/internal/logger"
)

// ListFiles walks the folder tree under the configured root with an
// explicit work queue and returns every spreadsheet-like file, newest
// modification first not guaranteed (provider order). Trashed items
// are excluded server-side; folders are visited at most once.
//
// A listing failure under the root abandons that subtree only: the
// partial result is returned together with an error wrapping
// domain.ErrEnumeration. A failure on the root itself returns no
// files.
func (s *Source) ListFiles(ctx context.Context, sinceISO string) ([]domain.SpreadsheetFile, error) {
	since, err := parseSince(sinceISO)
	if err != nil {
		return nil, err
	}

	queue := []string{s.cfg.RootFolderID}
	visited := map[string]bool{s.cfg.RootFolderID: true}

	var files []domain.SpreadsheetFile
	var walkErr error

	for len(queue) > 0 {
		folderID := queue[0]
		queue = queue[1:]

		pageToken := ""
		for {
			list, err := s.api.listChildren(ctx, folderID, pageToken)
			if err != nil {
				err = fmt.Errorf("%w: list folder %s: %w", domain.ErrEnumeration, folderID, err)
				if folderID == s.cfg.RootFolderID {
					return nil, err
				}
				logger.Warn("drive: %v", err)
				walkErr = errors.Join(walkErr, err)
				break
			}

			for _, f := range list.Files {
				if f.MimeType == domain.MimeTypeFolder {
					if !visited[f.Id] {
						visited[f.Id] = true
						queue = append(queue, f.Id)
					}
					continue
				}

				sf := toSpreadsheetFile(f, folderID)
				if sf.Kind() == domain.KindUnsupported {
					continue
				}
				if !since.IsZero() && !sf.ModifiedAt.After(since) {
					continue
				}
				files = append(files, sf)
			}

			if list.NextPageToken == "" {
				break
			}
			pageToken = list.NextPageToken
		}
	}

	logger.Debug("drive: enumeration found %d files under %s", len(files), s.cfg.RootFolderID)
	return files, walkErr
}

// parseSince accepts an RFC 3339 timestamp or a bare ISO day.
func parseSince(sinceISO string) (time.Time, error) {
	if sinceISO == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, sinceISO); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", sinceISO); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: since timestamp %q is not ISO-8601", domain.ErrConfiguration, sinceISO)
}

func toSpreadsheetFile(f *drive.File, parentFolderID string) domain.SpreadsheetFile {
	modified, _ := time.Parse(time.RFC3339, f.ModifiedTime)
	return domain.SpreadsheetFile{
		ID:             f.Id,
		Name:           f.Name,
		MIMEType:       f.MimeType,
		ModifiedAt:     modified,
		ParentFolderID: parentFolderID,
	}
}
